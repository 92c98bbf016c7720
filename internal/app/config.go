package app

// Config holds all the necessary configuration for an App instance to run.
// The env tags name the variables used as defaults before flag parsing.
type Config struct {
	// ConfigPath points at a bindings file or a directory of bindings
	// files. Empty means "use the embedded default bindings".
	ConfigPath string `env:"BINDMAP_CONFIG"`

	// Lookup selects a single descriptor as "<language>:<AbstractType>".
	// Empty means "render the full report".
	Lookup string

	Format    string `env:"BINDMAP_FORMAT"`
	LogFormat string `env:"BINDMAP_LOG_FORMAT"`
	LogLevel  string `env:"BINDMAP_LOG_LEVEL"`
}

// NewConfig applies defaults and returns a validated Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
