// Example program demonstrating the restyled library API.
//
// Run from the repo root:
//
//	go run ./example/
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/restyled-io/go-restyled/pkg/restyled"
)

func main() {
	result, err := restyled.Load(context.Background(), restyled.Options{
		Dir: ".",
	})
	if err != nil {
		log.Fatalf("resolving configuration failed: %v", err)
	}

	fmt.Printf("enabled:           %v\n", result.Enabled)
	fmt.Printf("auto:              %v\n", result.Auto)
	fmt.Printf("restylers_version: %s\n", result.RestylersVersion)
	fmt.Printf("request_review:    %s\n", result.RequestReview)
	fmt.Println()

	fmt.Println("=== Restylers ===")
	for _, r := range result.Restylers {
		fmt.Printf("%-20s %s\n", r.Name, r.Image)
	}
}
