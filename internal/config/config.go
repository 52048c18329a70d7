package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:""`
	Referee  Referee `yaml:"referee"`
	Search   Search  `yaml:"search"`
	Redis    Redis   `yaml:"redis"`
}

type Referee struct {
	Host string `yaml:"host" env:"REFEREE_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REFEREE_PORT" env-default:"12345"`
}

type Search struct {
	MaxDepth   int           `yaml:"max-depth" env:"SEARCH_MAX_DEPTH" env-default:"4"`
	TimeBudget time.Duration `yaml:"time-budget" env:"SEARCH_TIME_BUDGET" env-default:"2s"`
	NodeBudget int64         `yaml:"node-budget" env:"SEARCH_NODE_BUDGET" env-default:"0"`
	Heuristic  string        `yaml:"heuristic" env:"SEARCH_HEURISTIC" env-default:"lines"`
	Trace      bool          `yaml:"trace" env:"SEARCH_TRACE" env-default:"false"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Referee) GetRefereeAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
