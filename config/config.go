package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	AWSRegion     string `env:"AWS_REGION" envDefault:"ap-northeast-2"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	KakaoAPIKey   string `env:"KAKAO_API_KEY"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
