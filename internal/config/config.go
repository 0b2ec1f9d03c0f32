package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
	Auth   Auth   `yaml:"auth"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Auth struct {
	JWTSecret          string `yaml:"jwtSecret"`
	TokenExpiryMinutes int    `yaml:"tokenExpiryMinutes"`
	// ProviderURL is the optional external identity provider. Empty means
	// no provider check is ever attempted.
	ProviderURL        string `yaml:"providerUrl"`
	ProviderServiceKey string `yaml:"providerServiceKey"`
}

func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Auth.TokenExpiryMinutes == 0 {
		config.Auth.TokenExpiryMinutes = 300
	}

	return config, nil
}
