package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct{ v *viper.Viper }

func New() *Config {
	vv := viper.New()
	vv.AutomaticEnv()
	return &Config{v: vv}
}

// GetDsn resolves the final DSN using env vars
func (c *Config) GetDsn() (*url.URL, error) {
	source := c.v.GetString("DSN")
	if source == "" {
		user := c.v.GetString("PGUSER")
		if user == "" {
			user = c.v.GetString("USER")
		}
		if user == "" {
			user = "postgres"
		}

		dbName := c.v.GetString("PGDATABASE")
		if dbName == "" {
			dbName = "postgres"
		}

		host := c.v.GetString("PGHOST")
		if host == "" {
			host = "localhost"
		}

		port := c.v.GetString("PGPORT")
		hasPortEnv := port != ""
		if !hasPortEnv || port == "" {
			port = "5432"
		}

		if strings.HasPrefix(host, "/") {
			socketDir := host

			// If PGHOST points to a file, derive directory and only infer port when PGPORT isn't set.
			if fi, err := os.Stat(host); err == nil && !fi.IsDir() {
				socketDir = filepath.Dir(host)
				if !hasPortEnv {
					base := filepath.Base(host)
					// Expected filename pattern: ".s.PGSQL.<port>"
					if strings.HasPrefix(base, ".s.PGSQL.") {
						if inferred := strings.TrimPrefix(base, ".s.PGSQL."); inferred != "" {
							if _, err := strconv.Atoi(inferred); err == nil {
								port = inferred
							}
						}
					}
				}
			}

			q := url.Values{}
			q.Set("host", socketDir)
			q.Set("port", port)
			q.Set("sslmode", "disable")
			source = "postgres://" + user + "@/" + dbName + "?" + q.Encode()
		} else {
			source = "postgres://" + user + "@" + host + ":" + port + "/" + dbName + "?sslmode=disable"
		}
	}

	u, err := url.Parse(source)
	if err != nil || u.Scheme == "" {
		return nil, errors.New("invalid DSN: must be in format driver://dataSourceName")
	}
	return u, nil
}

func (c *Config) GetGitHubToken() string {
	if t := c.v.GetString("GITHUB_TOKEN"); t != "" {
		return t
	}
	return c.v.GetString("GH_TOKEN")
}

// GetAddr returns ADDR when set, otherwise HOST:PORT with localhost:8080 as
// defaults.
func (c *Config) GetAddr() string {
	if addr := c.v.GetString("ADDR"); addr != "" {
		return addr
	}
	port := c.v.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	host := c.v.GetString("HOST")
	if host == "" {
		host = "localhost"
	}
	return host + ":" + port
}

// GetCatalogCacheTTL returns how long a user's repository listing stays fresh.
// Reads duration from env var CATALOG_CACHE_TTL; defaults to 10m. Zero
// disables refresh.
func (c *Config) GetCatalogCacheTTL() time.Duration {
	return c.getDuration("CATALOG_CACHE_TTL", 10*time.Minute)
}

// GetSessionIdleTTL returns how long an untouched edit session is kept.
// Reads duration from env var SESSION_IDLE_TTL; defaults to 30m.
func (c *Config) GetSessionIdleTTL() time.Duration {
	return c.getDuration("SESSION_IDLE_TTL", 30*time.Minute)
}

// GetJWTSecret returns the session token signing key from env var JWT_SECRET.
func (c *Config) GetJWTSecret() []byte { return []byte(c.v.GetString("JWT_SECRET")) }

// GetTokenTTL returns the validity of minted session tokens.
// Reads duration from env var TOKEN_TTL; defaults to 24h.
func (c *Config) GetTokenTTL() time.Duration {
	return c.getDuration("TOKEN_TTL", 24*time.Hour)
}

// GetServiceName returns the OpenTelemetry service name from env var
// OTEL_SERVICE_NAME; defaults to "repobulletin".
func (c *Config) GetServiceName() string {
	if n := c.v.GetString("OTEL_SERVICE_NAME"); n != "" {
		return n
	}
	return "repobulletin"
}

func (c *Config) getDuration(key string, def time.Duration) time.Duration {
	if v := c.v.GetString(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		slog.Warn("Ignoring invalid duration", "key", key, "value", v, "default", def)
	}
	return def
}

func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

// GetLogLevel returns the log level from env var LOG_LEVEL mapped to slog.Level.
// Recognized values: debug, info (default), warn|warning, error.
func (c *Config) GetLogLevel() slog.Level {
	switch strings.ToLower(c.v.GetString("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetLogFormat returns "json" when env var LOG_FORMAT asks for it, "text" otherwise.
func (c *Config) GetLogFormat() string {
	if strings.EqualFold(c.v.GetString("LOG_FORMAT"), "json") {
		return "json"
	}
	return "text"
}

// GetGitHubAPIURL returns the GitHub API root from env var GITHUB_API_URL,
// empty for api.github.com.
func (c *Config) GetGitHubAPIURL() string { return c.v.GetString("GITHUB_API_URL") }

// OnLogLevelChange calls fn with the slog.Level whenever it changes.
// The initial call is made immediately.
func (c *Config) OnLogLevelChange(fn func(slog.Level)) {
	apply := func() { fn(c.GetLogLevel()) }
	apply()
	c.v.OnConfigChange(func(e fsnotify.Event) { apply() })
}

// ReadFile loads settings from a config file. Environment variables still
// take precedence.
func (c *Config) ReadFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Watch reloads the config file on change until ctx is done. It does
// nothing when no file was read.
func (c *Config) Watch(ctx context.Context) {
	if c.v.ConfigFileUsed() == "" {
		return
	}
	c.v.WatchConfig()
	go func() {
		<-ctx.Done()
		slog.Debug("Stopped watching config file", "path", c.v.ConfigFileUsed())
	}()
}
