// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing tagged structs:
//
//	type Config struct {
//	    Name        string `env:"DISPATCHER_NAME" envDefault:"dispatcher"`
//	    ErrorPolicy string `env:"DISPATCHER_ERROR_POLICY" envDefault:"fail_fast"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load reads the default .env file once per process, then parses the
// environment into the struct. Parsed values are cached by type, so repeated
// loads of the same struct are cheap and consistent. ResetCache and
// ForceReload exist for tests that change the environment.
//
// LoadEnv loads explicit .env files. Variables already present in the process
// environment are never overridden.
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
