package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/propdrift/scan"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Scan defaults
	v.SetDefault("scan.root", ".")
	v.SetDefault("scan.declared_suffix", scan.DefaultDeclaredSuffix)
	v.SetDefault("scan.output", "")
	v.SetDefault("scan.fail_on_drift", false)

	// Watch defaults
	v.SetDefault("watch.debounce_ms", 500)

	// Log defaults
	v.SetDefault("log.json", false)
}
