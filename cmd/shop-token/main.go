package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Lexv0lk/shop/internal/pkg/jwt"
	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type tokenConfig struct {
	JwtSecret string `envconfig:"JWT_SECRET" required:"true"`
}

// shop-token prints a bearer token naming an operator, for use in the
// Authorization header of shop API calls.
func main() {
	logger := logging.StdoutLogger

	username := flag.String("username", "", "operator recorded as the author of changes")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *username == "" {
		logger.Error("username is required")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env file", "error", err.Error())
	}

	var cfg tokenConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(cfg.JwtSecret), *username, *ttl)
	if err != nil {
		logger.Error("failed to issue token", "error", err.Error())
		os.Exit(1)
	}

	fmt.Println(token)
}
