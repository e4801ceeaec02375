package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	AllowedOrigins []string
	SessionTTL     time.Duration
	SecureCookies  bool
}

// ParseFlags validates flags, falling back to environment variables and a
// local .env file.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string
	var ttl string

	// .env is optional; real env vars win over it
	_ = godotenv.Load()

	fs := flag.NewFlagSet("listly", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (connection string or sqlite file path)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&origins, "origins", "", "Comma-separated allowed CORS origins")
	fs.StringVar(&ttl, "session-ttl", "", "Session lifetime (e.g. 24h)")
	fs.BoolVar(&cfg.SecureCookies, "secure-cookies", false, "Mark session cookies Secure (HTTPS deployments)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "listly.db"
		} else {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if ttl == "" {
		ttl = os.Getenv("SESSION_TTL")
	}
	if ttl == "" {
		cfg.SessionTTL = 24 * time.Hour
	} else {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid session TTL")
		}
		cfg.SessionTTL = d
	}

	if !cfg.SecureCookies && os.Getenv("SECURE_COOKIES") == "true" {
		cfg.SecureCookies = true
	}

	return cfg, nil
}
