package config

// When runs fn only when pred holds for cfg.
func When(cfg *Config, pred func(*Config) bool, fn func() error) error {
	if !pred(cfg) {
		return nil
	}
	return fn()
}

// WhenNonEmpty runs fn over a Config-derived list only when it has
// elements.
func WhenNonEmpty[T any](cfg *Config, get func(*Config) []T, fn func([]T) error) error {
	items := get(cfg)
	if len(items) == 0 {
		return nil
	}
	return fn(items)
}

// WhenPresent runs fn over a Config-derived optional value only when it
// is present.
func WhenPresent[T any](cfg *Config, get func(*Config) *T, fn func(T) error) error {
	v := get(cfg)
	if v == nil {
		return nil
	}
	return fn(*v)
}
