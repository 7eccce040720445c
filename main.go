package main

import "github.com/restyled-io/go-restyled/cmd"

func main() {
	cmd.Execute()
}
