package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
	"github.com/mrghanchi007/tph-live-r2/internal/http/middleware"
	"github.com/mrghanchi007/tph-live-r2/internal/http/render"
	"github.com/mrghanchi007/tph-live-r2/internal/seo"
	"github.com/mrghanchi007/tph-live-r2/internal/shared/apperr"
	"github.com/mrghanchi007/tph-live-r2/pkg/view"
)

// SEOHandler exposes the SEO registry to the client application.
type SEOHandler struct {
	config  *seo.Config
	catalog *catalog.Catalog
	log     *slog.Logger
}

func NewSEOHandler(cfg *seo.Config, cat *catalog.Catalog, log *slog.Logger) *SEOHandler {
	return &SEOHandler{config: cfg, catalog: cat, log: log}
}

// Show handles GET /api/seo/:kind/:slug where kind is page, category
// or product. Unknown slugs fall back to the site default record.
func (h *SEOHandler) Show(c *gin.Context) {
	kind := c.Param("kind")
	slug := c.Param("slug")

	payload := view.SEOPayload{}
	switch kind {
	case "page":
		payload.Meta = h.config.ForPage(slug)
	case "category":
		payload.Meta = h.config.ForCategory(slug)
	case "product":
		payload.Meta = h.config.ForProduct(slug)
		if p, ok := h.catalog.FindBySlug(slug); ok {
			cat, _ := h.catalog.FindCategory(p.CategorySlug)
			ld, err := seo.ProductStructuredData(p, cat.Label)
			if err != nil {
				h.log.LogAttrs(c.Request.Context(), slog.LevelWarn, "structured data build failed",
					slog.String("slug", slug),
					slog.String("error", err.Error()),
				)
			} else {
				payload.StructuredData = ld
			}
		}
	default:
		middleware.Fail(c, apperr.InvalidErr("Unknown SEO kind.", map[string]string{"kind": "Must be page, category or product."}))
		return
	}

	render.OK(c, payload)
}
