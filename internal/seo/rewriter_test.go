package seo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
)

const shell = `<!doctype html>
<html>
<head>
<title>TPH | The Planner Herbal International</title>
<meta property="og:title" content="Premium Health Products | The Planner Herbal International">
<meta property="og:description" content="Premium herbal health products from The Planner Herbal International.">
<meta property="og:image" content="/favicon.png">
<meta name="twitter:card" content="summary">
<meta name="twitter:title" content="Premium Health Products | The Planner Herbal International">
<meta name="twitter:description" content="Premium herbal health products from The Planner Herbal International.">
<meta name="twitter:image" content="/favicon.png">
</head>
<body><div id="root"></div></body>
</html>`

type staticSource struct {
	body []byte
	err  error
}

func (s *staticSource) Template(context.Context) ([]byte, error) {
	return s.body, s.err
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Category{
		{
			Label: "Men",
			Products: []catalog.Product{
				{Name: "B-Maxman Royal Special Treatment", Price: 2500, Image: "/images/B-Maxman.png", Description: "Premium herbal formula for men."},
				{Name: `Shahi "Gold" & Co`, Price: 5000, Image: "https://cdn.tphlive.com/shahi.png", Description: `Royal blend with <care>.`},
			},
		},
	})
}

func newTestRewriter(src TemplateSource) *Rewriter {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRewriter(testCatalog(), DefaultConfig(), src, log)
}

func TestMatchSlug(t *testing.T) {
	cases := []struct {
		path string
		slug string
		ok   bool
	}{
		{"/product/b-maxman-royal-special-treatment", "b-maxman-royal-special-treatment", true},
		{"/product/some-slug/", "some-slug", true},
		{"/product/", "", false},
		{"/product/a/b", "", false},
		{"/shop", "", false},
		{"/", "", false},
		{"/product/logo.png", "", false},
		{"/assets/product/app.js", "", false},
		{"/images/product/hero", "", false},
	}
	for _, c := range cases {
		slug, ok := MatchSlug(c.path)
		assert.Equal(t, c.ok, ok, "path %q", c.path)
		assert.Equal(t, c.slug, slug, "path %q", c.path)
	}
}

func TestRewriteProductPage(t *testing.T) {
	rw := newTestRewriter(&staticSource{body: []byte(shell)})
	out, ok := rw.Rewrite(context.Background(), "/product/b-maxman-royal-special-treatment", "https://tphlive.com")
	require.True(t, ok)
	html := string(out)

	assert.Contains(t, html, "<title>B-Maxman Royal Special Treatment | TPH Int.</title>")
	assert.Contains(t, html, `property="og:title" content="B-Maxman Royal Special Treatment"`)
	assert.Contains(t, html, `property="og:description" content="Premium herbal formula for men."`)
	// Root-relative image becomes absolute against the request origin.
	assert.Contains(t, html, `property="og:image" content="https://tphlive.com/images/B-Maxman.png"`)
	assert.Contains(t, html, `name="twitter:card" content="summary_large_image"`)
	assert.Contains(t, html, `name="twitter:image" content="https://tphlive.com/images/B-Maxman.png"`)
	assert.NotContains(t, html, "Premium Health Products")
	// Only the head metadata changes.
	assert.Contains(t, html, `<div id="root"></div>`)
}

func TestRewriteAbsoluteImageUnchanged(t *testing.T) {
	rw := newTestRewriter(&staticSource{body: []byte(shell)})
	out, ok := rw.Rewrite(context.Background(), "/product/shahi-gold-and-co", "https://tphlive.com")
	require.True(t, ok)
	assert.Contains(t, string(out), `content="https://cdn.tphlive.com/shahi.png"`)
}

func TestRewriteEscapesAttributeValues(t *testing.T) {
	rw := newTestRewriter(&staticSource{body: []byte(shell)})
	out, ok := rw.Rewrite(context.Background(), "/product/shahi-gold-and-co", "https://tphlive.com")
	require.True(t, ok)
	html := string(out)

	assert.Contains(t, html, `content="Shahi &quot;Gold&quot; &amp; Co"`)
	assert.Contains(t, html, `content="Royal blend with &lt;care&gt;."`)
	// The raw quote must never land inside an attribute.
	assert.NotContains(t, html, `content="Shahi "Gold"`)
}

func TestRewriteIdempotent(t *testing.T) {
	rw := newTestRewriter(&staticSource{body: []byte(shell)})
	once, ok := rw.Rewrite(context.Background(), "/product/b-maxman-royal-special-treatment", "https://tphlive.com")
	require.True(t, ok)

	rw2 := newTestRewriter(&staticSource{body: once})
	twice, ok := rw2.Rewrite(context.Background(), "/product/b-maxman-royal-special-treatment", "https://tphlive.com")
	require.True(t, ok)
	assert.Equal(t, string(once), string(twice))
}

func TestRewriteToleratesAttributeOrder(t *testing.T) {
	doc := `<meta content="old" property="og:title"><meta content='old' name='twitter:card'>`
	rw := newTestRewriter(&staticSource{body: []byte(doc)})
	out, ok := rw.Rewrite(context.Background(), "/product/b-maxman-royal-special-treatment", "https://tphlive.com")
	require.True(t, ok)
	html := string(out)
	assert.Contains(t, html, `content="B-Maxman Royal Special Treatment" property="og:title"`)
	assert.Contains(t, html, `content="summary_large_image" name='twitter:card'`)
}

func TestRewriteDescriptionFallsBackToSEODefaults(t *testing.T) {
	cat := catalog.New([]catalog.Category{
		{
			Label: "Men",
			Products: []catalog.Product{
				{Name: "B-Maxman Royal Special Treatment", Price: 2500, Image: "/images/B-Maxman.png"},
			},
		},
	})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rw := NewRewriter(cat, DefaultConfig(), &staticSource{body: []byte(shell)}, log)

	out, ok := rw.Rewrite(context.Background(), "/product/b-maxman-royal-special-treatment", "https://tphlive.com")
	require.True(t, ok)
	assert.Contains(t, string(out), "Premium herbal supplement for men's vitality &amp; performance")
}

func TestRewritePassThrough(t *testing.T) {
	rw := newTestRewriter(&staticSource{body: []byte(shell)})

	for _, path := range []string{"/", "/shop", "/product/unknown-product", "/product/logo.png"} {
		out, ok := rw.Rewrite(context.Background(), path, "https://tphlive.com")
		assert.False(t, ok, "path %q", path)
		assert.Nil(t, out, "path %q", path)
	}
}

func TestRewriteFailOpen(t *testing.T) {
	rw := newTestRewriter(&staticSource{err: errors.New("origin unreachable")})
	out, ok := rw.Rewrite(context.Background(), "/product/b-maxman-royal-special-treatment", "https://tphlive.com")
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestHTTPTemplateSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/index.html" {
			io.WriteString(w, shell)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src := &HTTPTemplateSource{URL: srv.URL + "/index.html", Client: srv.Client()}
	body, err := src.Template(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "<title>"))

	bad := &HTTPTemplateSource{URL: srv.URL + "/missing.html", Client: srv.Client()}
	_, err = bad.Template(context.Background())
	assert.Error(t, err)
}
