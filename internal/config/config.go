// Package config provides YAML-based configuration loading for hostcost.
// Rates are deliberately absent: the rate card is fixed in the pricing package.
package config

import "time"

// Config contains all runtime configuration.
type Config struct {
	UI   UIConfig   `yaml:"ui"`
	SSH  SSHConfig  `yaml:"ssh"`
	HTTP HTTPConfig `yaml:"http"`
	Log  LogConfig  `yaml:"log"`
}

// UIConfig defines presentation settings for the interactive estimator.
type UIConfig struct {
	Title string `yaml:"title"`
	// Defaults seeds the form, keyed by dimension key (ram, players, ...).
	Defaults map[string]string `yaml:"defaults"`
}

// SSHConfig defines the SSH front end served by `hostcost serve`.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"` // Empty = ~/.hostcost/host_key
	IdleMinutes int    `yaml:"idle_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleMinutes) * time.Minute
}

// HTTPConfig defines the JSON API served by `hostcost serve`.
type HTTPConfig struct {
	Address string `yaml:"address"` // Empty disables the API
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
