package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server. It is read once at startup and
// passed by value; nothing downstream reads the environment.
type Config struct {
	Env        string `env:"APP_ENV" env-default:"local"`
	Port       string `env:"PORT" env-default:"3000"`
	Provider   string `env:"PROVIDER" env-default:"cheapshark"`
	CheapShark CheapSharkConfig
	Search     SearchConfig
	CORS       CORSConfig
	Log        LogConfig
	Metrics    MetricsConfig
}

// CheapSharkConfig controls how we talk to the upstream pricing API.
type CheapSharkConfig struct {
	BaseURL     string        `env:"CHEAPSHARK_BASE_URL" env-default:"https://www.cheapshark.com/api/1.0"`
	RedirectURL string        `env:"CHEAPSHARK_REDIRECT_URL" env-default:"https://www.cheapshark.com/redirect"`
	Timeout     time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"5s"`
}

// SearchConfig holds the fixed parameters sent with every title search.
type SearchConfig struct {
	Limit int  `env:"SEARCH_LIMIT" env-default:"10"`
	Exact bool `env:"SEARCH_EXACT" env-default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

// Load reads an optional dotenv file and then the environment.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	return cfg.normalize(), nil
}

// MustLoad is Load for main; it panics on an unreadable environment.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func loadDotEnv() error {
	path := os.Getenv(envFile)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: load %s: %w", path, err)
}

func (c Config) normalize() Config {
	if c.Search.Limit <= 0 {
		c.Search.Limit = defaultSearchLimit
	}
	if c.CheapShark.Timeout <= 0 {
		c.CheapShark.Timeout = defaultTimeout
	}
	return c
}
