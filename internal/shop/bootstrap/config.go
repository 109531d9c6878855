package bootstrap

import (
	"fmt"
	"strings"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/kelseyhightower/envconfig"
)

type ShopConfig struct {
	HTTPPort       string `envconfig:"HTTP_PORT" default:":8080"`
	DbSettings     database.PostgresSettings
	JwtSecret      string `envconfig:"JWT_SECRET" required:"true"`
	MigrateOnStart bool   `envconfig:"MIGRATE_ON_START" default:"true"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadShopConfig reads the configuration from the process environment.
func LoadShopConfig() (ShopConfig, error) {
	var cfg ShopConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return ShopConfig{}, fmt.Errorf("failed to process config: %w", err)
	}

	if strings.TrimSpace(cfg.JwtSecret) == "" {
		return ShopConfig{}, fmt.Errorf("JWT_SECRET must not be blank")
	}

	if !strings.HasPrefix(cfg.HTTPPort, ":") {
		cfg.HTTPPort = ":" + cfg.HTTPPort
	}

	return cfg, nil
}
