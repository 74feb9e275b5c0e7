package seo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
)

// titleSuffix trails the product name in the rewritten <title>.
const titleSuffix = "TPH Int."

// TemplateSource serves the static shell the rewriter patches. One
// fetch per rewritten request, no other I/O.
type TemplateSource interface {
	Template(ctx context.Context) ([]byte, error)
}

// HTTPTemplateSource fetches the shell from the origin over HTTP.
type HTTPTemplateSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPTemplateSource) Template(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("template fetch: status %d from %s", res.StatusCode, s.URL)
	}
	return io.ReadAll(res.Body)
}

// FileTemplateSource reads the shell from disk. Used when the server
// hosts its own static files.
type FileTemplateSource struct {
	Path string
}

func (s *FileTemplateSource) Template(context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

// Rewriter patches the static shell's <title> and social meta tags for
// product detail pages, so link-preview crawlers see product-specific
// metadata without running the client application.
type Rewriter struct {
	catalog *catalog.Catalog
	cfg     *Config
	source  TemplateSource
	log     *slog.Logger
}

func NewRewriter(c *catalog.Catalog, cfg *Config, src TemplateSource, log *slog.Logger) *Rewriter {
	return &Rewriter{catalog: c, cfg: cfg, source: src, log: log}
}

// MatchSlug reports whether a request path is a product detail route
// and extracts its slug. Paths with a file extension and asset prefixes
// never match.
func MatchSlug(path string) (string, bool) {
	if strings.Contains(path, ".") ||
		strings.HasPrefix(path, "/assets") ||
		strings.HasPrefix(path, "/images") {
		return "", false
	}
	rest, ok := strings.CutPrefix(path, "/product/")
	if !ok {
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

// Rewrite returns the patched shell for a product path. ok is false
// whenever the request should fall through to the normal pipeline
// instead: non-product paths, unknown slugs, and template fetch
// failures all pass through rather than surfacing an error.
func (rw *Rewriter) Rewrite(ctx context.Context, path, origin string) ([]byte, bool) {
	slug, ok := MatchSlug(path)
	if !ok {
		return nil, false
	}
	p, ok := rw.catalog.FindBySlug(slug)
	if !ok {
		return nil, false
	}
	tpl, err := rw.source.Template(ctx)
	if err != nil {
		rw.log.LogAttrs(ctx, slog.LevelWarn, "meta rewrite: template fetch failed, passing through",
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	return rw.apply(tpl, p, origin), true
}

func (rw *Rewriter) apply(doc []byte, p catalog.Product, origin string) []byte {
	image := p.Image
	if strings.HasPrefix(image, "/") {
		image = origin + image
	}
	description := p.Description
	if description == "" && rw.cfg != nil {
		description = rw.cfg.ForProduct(p.Slug).Description
	}
	name := escapeAttr(p.Name)
	desc := escapeAttr(description)
	img := escapeAttr(image)

	html := string(doc)
	html = setTitle(html, name+" | "+titleSuffix)
	html = setMeta(html, "og:title", name)
	html = setMeta(html, "og:description", desc)
	html = setMeta(html, "og:image", img)
	html = setMeta(html, "twitter:card", "summary_large_image")
	html = setMeta(html, "twitter:title", name)
	html = setMeta(html, "twitter:description", desc)
	html = setMeta(html, "twitter:image", img)
	return []byte(html)
}

var (
	titleRe   = regexp.MustCompile(`(?is)<title>.*?</title>`)
	contentRe = regexp.MustCompile(`(?i)content=("[^"]*"|'[^']*')`)

	// One tag matcher per rewritten meta key, tolerant of attribute
	// order and of name= vs property=.
	metaRes = func() map[string]*regexp.Regexp {
		keys := []string{
			"og:title", "og:description", "og:image",
			"twitter:card", "twitter:title", "twitter:description", "twitter:image",
		}
		m := make(map[string]*regexp.Regexp, len(keys))
		for _, k := range keys {
			m[k] = regexp.MustCompile(`(?i)<meta\b[^>]*(?:name|property)=["']` + regexp.QuoteMeta(k) + `["'][^>]*>`)
		}
		return m
	}()
)

func setTitle(html, title string) string {
	return titleRe.ReplaceAllStringFunc(html, func(string) string {
		return "<title>" + title + "</title>"
	})
}

// setMeta replaces the content attribute of every meta tag carrying the
// key, whatever its current value. Replacing the value wholesale keeps
// the rewrite idempotent.
func setMeta(html, key, value string) string {
	re, ok := metaRes[key]
	if !ok {
		return html
	}
	return re.ReplaceAllStringFunc(html, func(tag string) string {
		return contentRe.ReplaceAllStringFunc(tag, func(string) string {
			return `content="` + value + `"`
		})
	})
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
