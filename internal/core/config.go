// Package core defines the platform-neutral input vocabulary of the estimator
// and the runtime settings handed to every front end.
package core

// RuntimeConfig contains settings passed to a front end at startup.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Title   string // Heading shown above the form
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Title:   "Server Cost Estimator",
	}
}
