package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
	"github.com/mrghanchi007/tph-live-r2/internal/content"
	"github.com/mrghanchi007/tph-live-r2/internal/http/middleware"
	"github.com/mrghanchi007/tph-live-r2/internal/http/render"
	"github.com/mrghanchi007/tph-live-r2/pkg/view"
)

// ContentHandler serves resolved landing-page content.
type ContentHandler struct {
	resolver *content.Resolver
	catalog  *catalog.Catalog
}

func NewContentHandler(resolver *content.Resolver, cat *catalog.Catalog) *ContentHandler {
	return &ContentHandler{resolver: resolver, catalog: cat}
}

// Show returns the merged content document for a product page. Unknown
// slugs still resolve (the dictionary carries the page); only the
// product card is omitted then.
func (h *ContentHandler) Show(c *gin.Context) {
	slug := c.Param("slug")
	lang := middleware.RequestLang(c)

	singular, plural := h.resolver.Units(slug)
	page := view.ContentPage{
		Lang:        string(lang),
		Slug:        slug,
		Content:     h.resolver.Resolve(lang, slug),
		Units:       view.UnitLabels{Singular: singular, Plural: plural},
		PriceBreaks: h.resolver.PriceBreaks(slug),
	}
	if p, ok := h.catalog.FindBySlug(slug); ok {
		card := view.NewProductCard(p)
		page.Product = &card
	}

	render.OK(c, page)
}
