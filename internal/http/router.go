package http

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
	"github.com/mrghanchi007/tph-live-r2/internal/content"
	"github.com/mrghanchi007/tph-live-r2/internal/http/handlers"
	"github.com/mrghanchi007/tph-live-r2/internal/http/langcookie"
	"github.com/mrghanchi007/tph-live-r2/internal/http/middleware"
	"github.com/mrghanchi007/tph-live-r2/internal/http/render"
	"github.com/mrghanchi007/tph-live-r2/internal/seo"
)

// Deps carries everything the router wires together.
type Deps struct {
	Logger   *slog.Logger
	Catalog  *catalog.Catalog
	Resolver *content.Resolver
	SEO      *seo.Config
	Rewriter *seo.Rewriter
	Cookies  *langcookie.Codec

	WhatsAppNumber string
	StaticDir      string
	TemplatePath   string
	// SiteOrigin backs the rewriter when the request has no Host.
	SiteOrigin string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))
	r.Use(middleware.Lang(d.Cookies))
	if d.Rewriter != nil {
		r.Use(middleware.MetaRewrite(d.Rewriter, d.SiteOrigin))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	contentH := handlers.NewContentHandler(d.Resolver, d.Catalog)
	catalogH := handlers.NewCatalogHandler(d.Catalog)
	priceH := handlers.NewPriceHandler(d.Resolver)
	orderH := handlers.NewOrderHandler(d.Resolver, d.Catalog, d.WhatsAppNumber)
	seoH := handlers.NewSEOHandler(d.SEO, d.Catalog, d.Logger)
	prefsH := handlers.NewPrefsHandler(d.Cookies)

	api := r.Group("/api")
	{
		api.GET("/content/:slug", contentH.Show)
		api.GET("/catalog", catalogH.List)
		api.GET("/catalog/:categorySlug", catalogH.Category)
		api.GET("/price", priceH.Quote)
		api.POST("/order", orderH.Create)
		api.GET("/seo/:kind/:slug", seoH.Show)
		api.POST("/lang", prefsH.SetLang)
		api.POST("/consent", prefsH.SetConsent)
	}

	if d.StaticDir != "" {
		r.Static("/assets", filepath.Join(d.StaticDir, "assets"))
		r.Static("/images", filepath.Join(d.StaticDir, "images"))
	}

	// Everything else is the client application: serve the shell and
	// let it route. Asset misses stay 404s.
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			render.Error(c, http.StatusNotFound, "not found")
			return
		}
		if strings.Contains(path, ".") || d.TemplatePath == "" {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(d.TemplatePath)
	})

	return r
}
