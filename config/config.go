// Package config loads propdrift configuration from TOML files and the
// environment via Viper. File precedence mirrors the usual layering:
// system config, then user config, then the nearest propdrift.toml found
// by walking up from the working directory, with environment variables
// on top.
package config

// Config represents the propdrift configuration
type Config struct {
	Scan  ScanConfig  `mapstructure:"scan"`
	Watch WatchConfig `mapstructure:"watch"`
	Log   LogConfig   `mapstructure:"log"`
}

// ScanConfig configures a drift scan
type ScanConfig struct {
	Root           string `mapstructure:"root"`            // Source root holding per-module trees (default: ".")
	DeclaredSuffix string `mapstructure:"declared_suffix"` // Generated-file suffix (default: ".generated.ts")
	Output         string `mapstructure:"output"`          // JSON report path; empty disables persistence
	FailOnDrift    bool   `mapstructure:"fail_on_drift"`   // Exit non-zero when drift is found
}

// WatchConfig configures watch mode
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms"` // Delay between a change and the rescan (default: 500)
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // Emit machine-readable JSON instead of the console format
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
