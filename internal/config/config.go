package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	JWTSecret         string
	JWTAlgorithm      string
	AccessTokenTTL    time.Duration
	FallbackAdminUser string
	FallbackAdminPass string
	CORSOrigins       string
	SMTPHost          string
	SMTPPort          int
	SMTPUser          string
	SMTPPassword      string
	SMTPFromName      string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// SMTPConfigured reports whether outbound email can be attempted at all.
func (c Config) SMTPConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPassword != ""
}

// FallbackConfigured reports whether the bootstrap admin credential pair is set.
func (c Config) FallbackConfigured() bool {
	return c.FallbackAdminUser != "" && c.FallbackAdminPass != ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BIOSCI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "BiosciZone API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("access_token_expire_minutes", 1440)
	v.SetDefault("cors.origins", "*")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from_name", "BiosciZone")

	expireMinutes := v.GetInt("access_token_expire_minutes")
	if expireMinutes <= 0 {
		expireMinutes = 1440
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		JWTSecret:         v.GetString("jwt.secret"),
		JWTAlgorithm:      strings.ToUpper(strings.TrimSpace(v.GetString("jwt.algorithm"))),
		AccessTokenTTL:    time.Duration(expireMinutes) * time.Minute,
		FallbackAdminUser: v.GetString("admin.username"),
		FallbackAdminPass: v.GetString("admin.password"),
		CORSOrigins:       v.GetString("cors.origins"),
		SMTPHost:          v.GetString("smtp.host"),
		SMTPPort:          v.GetInt("smtp.port"),
		SMTPUser:          v.GetString("smtp.user"),
		SMTPPassword:      v.GetString("smtp.password"),
		SMTPFromName:      v.GetString("smtp.from_name"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if !strings.HasPrefix(cfg.JWTAlgorithm, "HS") {
		return Config{}, fmt.Errorf("unsupported jwt algorithm %q", cfg.JWTAlgorithm)
	}

	return cfg, nil
}
