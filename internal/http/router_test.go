package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
	"github.com/mrghanchi007/tph-live-r2/internal/content"
	"github.com/mrghanchi007/tph-live-r2/internal/http/langcookie"
	"github.com/mrghanchi007/tph-live-r2/internal/seo"
)

const testShell = `<!doctype html>
<html>
<head>
<title>TPH | The Planner Herbal International</title>
<meta property="og:title" content="Premium Health Products | The Planner Herbal International">
<meta property="og:description" content="Premium herbal health products from The Planner Herbal International.">
<meta property="og:image" content="/favicon.png">
<meta name="twitter:card" content="summary">
</head>
<body><div id="root"></div></body>
</html>`

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	tplPath := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(tplPath, []byte(testShell), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := catalog.Default()
	resolver := content.NewResolver(content.DefaultDictionary(), content.DefaultOverrides())
	seoCfg := seo.DefaultConfig()
	rewriter := seo.NewRewriter(cat, seoCfg, &seo.FileTemplateSource{Path: tplPath}, logger)

	return NewRouter(Deps{
		Logger:         logger,
		Catalog:        cat,
		Resolver:       resolver,
		SEO:            seoCfg,
		Rewriter:       rewriter,
		Cookies:        langcookie.New(false),
		WhatsAppNumber: "923328888935",
		TemplatePath:   tplPath,
		SiteOrigin:     "https://tphlive.com",
	})
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w, _ := doJSON(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestContentEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w, env := doJSON(t, r, http.MethodGet, "/api/content/b-maxtime-super-active?lang=ur", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusOK, env.Code)

	var page struct {
		Lang    string `json:"lang"`
		Product *struct {
			Slug string `json:"slug"`
		} `json:"product"`
		Content     content.Content `json:"content"`
		Units       struct{ Singular, Plural string }
		PriceBreaks []int `json:"priceBreaks"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))

	assert.Equal(t, "ur", page.Lang)
	require.NotNil(t, page.Product)
	assert.Equal(t, "b-maxtime-super-active", page.Product.Slug)
	// Pricing pinned to English regardless of the requested language.
	assert.Equal(t, "Affordable Packages", page.Content.Pricing.Title)
	assert.Equal(t, []int{1200, 2000, 3000}, page.PriceBreaks)
	// The language choice sticks via cookie.
	assert.Contains(t, strings.Join(w.Header().Values("Set-Cookie"), ";"), langcookie.LangCookie+"=ur")
}

func TestContentEndpointUnknownSlugStillResolves(t *testing.T) {
	r := newTestRouter(t)
	w, env := doJSON(t, r, http.MethodGet, "/api/content/mystery-tonic", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Product *json.RawMessage `json:"product"`
		Content content.Content  `json:"content"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Nil(t, page.Product)
	assert.NotEmpty(t, page.Content.Hero.Title)
}

func TestLangCookieResolvesLanguage(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/content/b-maxman-royal-special-treatment", nil)
	req.AddCookie(&http.Cookie{Name: langcookie.LangCookie, Value: "ur"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lang":"ur"`)
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cats []struct {
		Slug     string `json:"slug"`
		Products []struct {
			Slug string `json:"slug"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cats))
	require.Len(t, cats, 3)
	assert.Equal(t, "men", cats[0].Slug)
	assert.NotEmpty(t, cats[0].Products)

	w, env = doJSON(t, r, http.MethodGet, "/api/catalog/weight-lose", "")
	require.Equal(t, http.StatusOK, w.Code)
	var one struct {
		Label    string `json:"label"`
		Products []struct {
			Slug string `json:"slug"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &one))
	assert.Len(t, one.Products, 2)

	w, _ = doJSON(t, r, http.MethodGet, "/api/catalog/electronics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Category not found.")
}

func TestPriceQuote(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/price?slug=slim-n-shape-tea&qty=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	var quote struct {
		Total int    `json:"total"`
		Unit  string `json:"unit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	assert.Equal(t, 2699, quote.Total)
	assert.Equal(t, "Packs", quote.Unit)

	w, _ = doJSON(t, r, http.MethodGet, "/api/price?slug=slim-n-shape-tea&qty=0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/price?qty=2", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderEndpoint(t *testing.T) {
	r := newTestRouter(t)

	body := `{"slug":"b-maxtime-super-active","name":"Ahmed Khan","phone":"03001234567","address":"House 12, Street 4","city":"Karachi","quantity":2}`
	w, env := doJSON(t, r, http.MethodPost, "/api/order", body)
	require.Equal(t, http.StatusOK, w.Code)

	var receipt struct {
		Reference   string `json:"reference"`
		Total       int    `json:"total"`
		WhatsAppURL string `json:"whatsappUrl"`
		Message     string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.True(t, strings.HasPrefix(receipt.Reference, "ORD-"))
	assert.Equal(t, 2000, receipt.Total)
	assert.True(t, strings.HasPrefix(receipt.WhatsAppURL, "https://wa.me/923328888935?"))
	assert.Contains(t, receipt.Message, "Quantity: 2 Packs")
	assert.Contains(t, receipt.Message, "B-Maxtime Super Active")
}

func TestOrderValidation(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/order", `{"slug":"b-maxtime-super-active","name":"A","quantity":2}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "phone")
	assert.Contains(t, resp.Fields, "name")

	w, _ = doJSON(t, r, http.MethodPost, "/api/order", `{"slug":"nope","name":"Ahmed Khan","phone":"03001234567","address":"House 12, Street 4","city":"Karachi","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSEOEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/seo/product/slim-n-shape-tea", "")
	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Meta struct {
			Title string `json:"title"`
		} `json:"meta"`
		StructuredData json.RawMessage `json:"structuredData"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Contains(t, payload.Meta.Title, "Slim n Shape Tea")
	assert.NotEmpty(t, payload.StructuredData)

	w, _ = doJSON(t, r, http.MethodGet, "/api/seo/site/whatever", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrefsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/lang", `{"lang":"ur"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, strings.Join(w.Header().Values("Set-Cookie"), ";"), langcookie.LangCookie+"=ur")

	w, _ = doJSON(t, r, http.MethodPost, "/api/lang", `{"lang":"fr"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/consent", `{"decision":"accepted"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, strings.Join(w.Header().Values("Set-Cookie"), ";"), langcookie.ConsentCookie+"=accepted")
}

func TestMetaRewriteOnProductPath(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/product/b-maxman-royal-special-treatment", nil)
	req.Host = "tphlive.com"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	html := w.Body.String()
	assert.Contains(t, html, "<title>B-Maxman Royal Special Treatment | TPH Int.</title>")
	assert.Contains(t, html, `content="http://tphlive.com/images/B-Maxman Royal Special Treatment.png"`)
	assert.Contains(t, html, `content="summary_large_image"`)
}

func TestSpaFallback(t *testing.T) {
	r := newTestRouter(t)

	// Unknown product slug: the shell is served unmodified.
	w, _ := doJSON(t, r, http.MethodGet, "/product/unknown-product", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TPH | The Planner Herbal International")

	// Client routes get the shell too.
	w, _ = doJSON(t, r, http.MethodGet, "/shop/men", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<div id="root"></div>`)

	// Asset misses stay 404.
	w, _ = doJSON(t, r, http.MethodGet, "/missing.js", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown API routes return the JSON envelope.
	w, _ = doJSON(t, r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"msg":"not found"`)
}
