// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with caarlos0/env tags; dotenv files are read with
// joho/godotenv before parsing so local development can keep settings in a
// .env file. Values already present in the process environment always win
// over values from files.
//
//	type Config struct {
//	    Locale string `env:"LOCALE" envDefault:"pt-BR"`
//	    Output string `env:"OUTPUT" envDefault:"text"`
//	}
//
//	cfg, err := config.Load[Config](
//	    config.WithPrefix("STUDENTCHECK_"),
//	    config.WithEnvFiles(".env"),
//	)
//
// Missing env files are ignored unless WithRequiredEnvFiles is used.
package config
