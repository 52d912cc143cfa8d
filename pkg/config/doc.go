// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct tag parsing and
// github.com/joho/godotenv for .env files:
//
//	type Config struct {
//	    Lang       string `env:"FORMCHECK_LANG" envDefault:"en"`
//	    LocalesDir string `env:"FORMCHECK_LOCALES_DIR"`
//	}
//
//	if err := config.LoadEnv("./.env.local"); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each configuration type is parsed once per process and served from an
// in-memory cache afterwards. A failed parse is not cached. ResetCache clears
// the cache between tests.
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer and ErrConfigNotLoaded; compare them with errors.Is.
package config
