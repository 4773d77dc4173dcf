// Package config loads process configuration from the environment so
// main stays lean.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "sitedoctor/pkg/platform/strings"
)

// Config is the full process configuration.
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Doctor   DoctorConfig
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	Addr          string
	JWTSigningKey string
}

// PostgresConfig carries the connection settings for the content store.
type PostgresConfig struct {
	URL string
}

// RedisConfig carries the connection settings for the flash store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DoctorConfig tunes the diagnostic layer.
type DoctorConfig struct {
	// SiteConfigPath points at the YAML site configuration file the
	// advisory checks read from.
	SiteConfigPath string

	// CacheDir, ConfigDir and FilesDir are the storage areas probed for
	// writability.
	CacheDir  string
	ConfigDir string
	FilesDir  string

	// DefaultPasswords overrides the built-in list of well-known
	// passwords the admin account is tested against.
	DefaultPasswords []string

	// FlashTTL bounds how long undelivered notices survive in the
	// flash store.
	FlashTTL time.Duration
}

// FromEnv builds the configuration from environment variables, applying
// development defaults where a variable is unset.
func FromEnv() Config {
	return Config{
		Server: ServerConfig{
			Addr:          envOr("SITEDOCTOR_ADDR", ":8080"),
			JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		},
		Postgres: PostgresConfig{
			URL: os.Getenv("POSTGRES_URL"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Doctor: DoctorConfig{
			SiteConfigPath:   envOr("SITE_CONFIG_PATH", "siteconfig.yaml"),
			CacheDir:         envOr("SITE_CACHE_DIR", "var/cache"),
			ConfigDir:        envOr("SITE_CONFIG_DIR", "var/config"),
			FilesDir:         envOr("SITE_FILES_DIR", "var/files"),
			DefaultPasswords: envList("DOCTOR_EXTRA_PASSWORDS"),
			FlashTTL:         envDuration("DOCTOR_FLASH_TTL", 30*time.Minute),
		},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// envList parses a comma separated variable into a cleaned list.
func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return platformstrings.DedupeAndTrimLower(strings.Split(v, ","))
}
