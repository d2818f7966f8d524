package config

import (
	_ "embed"
)

//go:embed defaults/hostcost.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Title: "Server Cost Estimator",
			Defaults: map[string]string{
				"ram":     "8",
				"players": "20",
				"worlds":  "1",
				"plugins": "10",
				"mods":    "0",
				"servers": "1",
			},
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleMinutes: 30,
		},
		HTTP: HTTPConfig{
			Address: "",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
