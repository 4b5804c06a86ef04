package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Server     Server     `yaml:"server"`
	Seed       Seed       `yaml:"seed"`
	Summarizer Summarizer `yaml:"summarizer"`
}

type Server struct {
	Host        string        `yaml:"host" env-default:"localhost"`
	Port        string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Seed points at the YAML dataset loaded into the in-memory store at startup.
// When Path is empty the embedded default dataset is used.
type Seed struct {
	Path string `yaml:"path" env:"SEED_PATH"`
}

// Summarizer configures the abstract-summarization collaborator. The feature
// is disabled when APIKey is empty.
type Summarizer struct {
	Endpoint string        `yaml:"endpoint" env-default:"https://api.openai.com/v1/chat/completions"`
	Model    string        `yaml:"model" env-default:"gpt-4o-mini"`
	APIKey   string        `yaml:"api_key" env:"SUMMARIZER_API_KEY"`
	Timeout  time.Duration `yaml:"timeout" env-default:"20s"`
}

func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil, errors.New("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}
