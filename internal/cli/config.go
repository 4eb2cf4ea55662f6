package cli

import (
	"github.com/dmitrymomot/humanids/pkg/config"
	"github.com/dmitrymomot/humanids/pkg/httpserver"
)

// EnvPrefix scopes every environment variable read by the CLI.
const EnvPrefix = "HUMANID_"

// Config holds flag defaults. Environment variables (and a .env file in the
// working directory) override the built-in values; explicit flags override both.
type Config struct {
	Separator  string `env:"SEPARATOR" envDefault:"-"`
	Capitalize bool   `env:"CAPITALIZE" envDefault:"false"`
	Adverb     bool   `env:"ADVERB" envDefault:"false"`
	Adjectives uint   `env:"ADJECTIVES" envDefault:"1"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`

	HTTP httpserver.Config
}

// LoadConfig reads Config from HUMANID_* variables.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
