package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("author", "")

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	// Import defaults
	v.SetDefault("import.default_policy", "skip")

	// Namespace pack defaults
	v.SetDefault("namespaces.packs", []string{})
}

// BindEnvVars explicitly binds configuration keys to REALMS_* environment
// variables, so they are visible to Unmarshal even when no file sets them.
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("author", "REALMS_AUTHOR")
	v.BindEnv("log.json", "REALMS_LOG_JSON")
	v.BindEnv("log.verbosity", "REALMS_LOG_VERBOSITY")
	v.BindEnv("import.default_policy", "REALMS_IMPORT_DEFAULT_POLICY")
}

// Default returns the built-in defaults as a Config, without consulting
// files or the environment.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var config Config
	// Static defaults always unmarshal
	_ = v.Unmarshal(&config)
	return &config
}
