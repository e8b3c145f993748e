package dispatcher

import "github.com/etchedjs/dispatcher/pkg/config"

// Config holds environment-driven dispatcher settings.
type Config struct {
	Name        string      `env:"DISPATCHER_NAME" envDefault:"dispatcher"`
	ErrorPolicy ErrorPolicy `env:"DISPATCHER_ERROR_POLICY" envDefault:"fail_fast"`
}

// LoadConfig reads Config from the environment and the default .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a dispatcher from cfg. Options are applied after the
// config values and can override them.
func NewFromConfig(cfg Config, opts ...Option) (*Dispatcher, error) {
	if _, err := cfg.ErrorPolicy.MarshalText(); err != nil {
		return nil, err
	}
	base := []Option{WithName(cfg.Name), WithErrorPolicy(cfg.ErrorPolicy)}
	return New(append(base, opts...)...), nil
}
