// syncimages publishes a directory of product images to the configured
// asset store (local static dir by default, S3 with ASSETS_DRIVER=s3)
// and prints the resulting public URLs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrghanchi007/tph-live-r2/internal/assets"
	"github.com/mrghanchi007/tph-live-r2/internal/config"
)

func main() {
	src := flag.String("src", "./images", "directory of images to publish")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	store, err := assets.New(ctx, cfg.Assets())
	if err != nil {
		log.Fatalf("assets: %v", err)
	}

	entries, err := os.ReadDir(*src)
	if err != nil {
		log.Fatalf("read %s: %v", *src, err)
	}

	published := 0
	for _, e := range entries {
		if e.IsDir() || !isImage(e.Name()) {
			continue
		}
		path := filepath.Join(*src, e.Name())
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("open %s: %v", path, err)
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			log.Fatalf("stat %s: %v", path, err)
		}
		res, err := store.Publish(ctx, f, assets.PublishInput{
			Filename:    e.Name(),
			ContentType: contentTypeFor(e.Name()),
			Size:        info.Size(),
		})
		f.Close()
		if err != nil {
			log.Fatalf("publish %s: %v", e.Name(), err)
		}
		fmt.Printf("%s -> %s\n", e.Name(), res.URL)
		published++
	}
	fmt.Printf("published %d image(s) via %v\n", published, store)
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return true
	default:
		return false
	}
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
