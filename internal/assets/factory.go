package assets

import (
	"context"
	"fmt"
)

// Config selects and parameterises a store driver.
type Config struct {
	Driver string // "local" (default) or "s3"

	LocalDir       string
	LocalURLPrefix string

	S3Region        string
	S3Bucket        string
	S3Prefix        string
	S3PublicBaseURL string
}

// New builds the configured store.
func New(ctx context.Context, cfg Config) (Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "local"
	}

	switch driver {
	case "local":
		baseDir := cfg.LocalDir
		if baseDir == "" {
			baseDir = "./static/images"
		}
		urlPrefix := cfg.LocalURLPrefix
		if urlPrefix == "" {
			urlPrefix = "/images"
		}
		return NewLocal(baseDir, urlPrefix), nil

	case "s3":
		if cfg.S3Region == "" || cfg.S3Bucket == "" || cfg.S3PublicBaseURL == "" {
			return nil, fmt.Errorf("s3 assets config missing: region, bucket and public base URL required")
		}
		prefix := cfg.S3Prefix
		if prefix == "" {
			prefix = "images"
		}
		return NewS3(ctx, S3Config{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			Prefix:        prefix,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})

	default:
		return nil, fmt.Errorf("unknown assets driver: %s", driver)
	}
}
