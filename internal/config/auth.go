package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "dev-secret-key-change-in-production"
			log.Println("Warning: JWT_SECRET not set, using insecure default")
		}
		ttl := 24 * time.Hour
		if raw := os.Getenv("TOKEN_TTL"); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err == nil {
				ttl = parsed
			}
		}
		authConfig = &AuthConfig{
			JWTSecret: secret,
			TokenTTL:  ttl,
		}
	})
	return authConfig
}
