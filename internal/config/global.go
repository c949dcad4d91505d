// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

var (
	mu      sync.RWMutex
	current *Config

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride is set by the --config flag.
	configFilePathOverride string
)

// Load resolves and caches the configuration, honoring any overrides set
// beforehand. The loaded value becomes what Get returns.
func Load() (*Config, error) {
	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		return nil, err
	}

	mu.Lock()
	current = cfg
	mu.Unlock()
	return cfg, nil
}

// Get returns the cached configuration, or the defaults when Load has not
// run (or failed).
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return DefaultConfig()
	}
	return current
}

// SetConfigFilePathOverride forces loading from a specific config file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears test overrides and the cached config. Call from test cleanup
// to restore defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
	configDirOverride = ""
	configFilePathOverride = ""
}
