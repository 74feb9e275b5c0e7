// Package assets publishes product imagery to a public store. The site
// itself never writes at request time; publishing happens from
// cmd/tools/syncimages and deployment scripts.
package assets

import (
	"context"
	"io"
)

type PublishInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PublishResult struct {
	Key string
	URL string
}

type Store interface {
	Publish(ctx context.Context, r io.Reader, in PublishInput) (PublishResult, error)
	Remove(ctx context.Context, key string) error
}
