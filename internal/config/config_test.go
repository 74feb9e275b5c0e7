package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "https://tphlive.com", c.SiteOrigin)
	assert.Equal(t, "./static/index.html", c.TemplatePath)
	assert.Equal(t, "923328888935", c.WhatsAppNumber)
	assert.Equal(t, "local", c.AssetsDriver)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ASSETS_DRIVER", "s3")
	t.Setenv("S3_BUCKET", "tph-assets")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", c.Addr)
	assert.Equal(t, slog.LevelDebug, c.SlogLevel())
	assert.Equal(t, "s3", c.Assets().Driver)
	assert.Equal(t, "tph-assets", c.Assets().S3Bucket)
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "verbose"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
}
