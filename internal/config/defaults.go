package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Query.MinTermLength == 0 {
		cfg.Query.MinTermLength = 2
	}
	if cfg.Query.MaxQueryRunes == 0 {
		cfg.Query.MaxQueryRunes = 256
	}
	if cfg.Query.TimeoutSeconds == 0 {
		cfg.Query.TimeoutSeconds = 10
	}
	// PrefixMatch defaults to true when unset (nil).
	if cfg.Query.PrefixMatch == nil {
		t := true
		cfg.Query.PrefixMatch = &t
	}
}
