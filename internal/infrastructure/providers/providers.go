package providers

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fablestream/fablestream/client"
	"github.com/fablestream/fablestream/internal/config"
	"github.com/fablestream/fablestream/internal/infrastructure/database"
	"github.com/fablestream/fablestream/internal/infrastructure/gateway"
)

// NewDatabase opens a Postgres connection using the configured DSN.
func NewDatabase(conf config.Server) (*gorm.DB, error) {
	return database.NewPostgres(conf.PostgresDsn)
}

// MigrateDatabase applies migrations for the application models.
func MigrateDatabase(db *gorm.DB) error {
	return database.MigratePostgres(db)
}

// NewRedis creates the redis client backing engagement counters.
func NewRedis(conf config.Server) *redis.Client {
	return database.NewRedis(conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
}

// NewProviderGateway builds the identity-provider gateway, or nil when no
// provider is configured.
func NewProviderGateway(conf config.Auth) *gateway.ProviderGateway {
	if conf.ProviderURL == "" {
		return nil
	}
	return gateway.NewProviderGateway(client.New(conf.ProviderURL, conf.ProviderServiceKey))
}
