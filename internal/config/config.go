// Package config loads the server configuration from the environment,
// with an optional .env file for development.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/mrghanchi007/tph-live-r2/internal/assets"
)

type Config struct {
	Addr     string `envconfig:"ADDR" default:":8080"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// SiteOrigin is the canonical public origin, used when a request
	// carries no usable Host (CLI tools, tests).
	SiteOrigin string `envconfig:"SITE_ORIGIN" default:"https://tphlive.com"`

	// StaticDir is served at /; TemplatePath is the SPA shell the meta
	// rewriter patches. TemplateURL switches the rewriter to fetching
	// the shell over HTTP instead (edge-style deployments).
	StaticDir    string `envconfig:"STATIC_DIR" default:"./static"`
	TemplatePath string `envconfig:"TEMPLATE_PATH" default:"./static/index.html"`
	TemplateURL  string `envconfig:"TEMPLATE_URL"`

	WhatsAppNumber string `envconfig:"WHATSAPP_NUMBER" default:"923328888935"`

	AssetsDriver    string `envconfig:"ASSETS_DRIVER" default:"local"`
	AssetsLocalDir  string `envconfig:"ASSETS_LOCAL_DIR" default:"./static/images"`
	AssetsURLPrefix string `envconfig:"ASSETS_URL_PREFIX" default:"/images"`
	S3Region        string `envconfig:"S3_REGION"`
	S3Bucket        string `envconfig:"S3_BUCKET"`
	S3Prefix        string `envconfig:"S3_PREFIX" default:"images"`
	S3PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL"`
}

// Load reads .env if present (prod uses real env vars) and processes
// the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	return c, nil
}

// Assets maps the flat env fields onto the assets driver config.
func (c Config) Assets() assets.Config {
	return assets.Config{
		Driver:          c.AssetsDriver,
		LocalDir:        c.AssetsLocalDir,
		LocalURLPrefix:  c.AssetsURLPrefix,
		S3Region:        c.S3Region,
		S3Bucket:        c.S3Bucket,
		S3Prefix:        c.S3Prefix,
		S3PublicBaseURL: c.S3PublicBaseURL,
	}
}

// SlogLevel maps the LOG_LEVEL string onto a slog level, defaulting to
// info for unknown values.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
