package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// LogConfig controls the global logger
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// ServerConfig controls the classification service
type ServerConfig struct {
	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":7777"`
	PingInterval time.Duration `env:"WS_PING_INTERVAL" envDefault:"10s"`
	SendBuffer   int           `env:"WS_SEND_BUFFER" envDefault:"256"`
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
