package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
	"github.com/mrghanchi007/tph-live-r2/internal/http/middleware"
	"github.com/mrghanchi007/tph-live-r2/internal/http/render"
	"github.com/mrghanchi007/tph-live-r2/internal/shared/apperr"
	"github.com/mrghanchi007/tph-live-r2/pkg/view"
)

// CatalogHandler serves the category/product browsing API.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// List returns every category with its products in display order.
func (h *CatalogHandler) List(c *gin.Context) {
	cats := h.catalog.Categories()
	out := make([]view.CategoryView, len(cats))
	for i, cat := range cats {
		out[i] = view.NewCategoryView(cat)
	}
	render.OK(c, out)
}

// Category returns a single category by slug.
func (h *CatalogHandler) Category(c *gin.Context) {
	slug := c.Param("categorySlug")
	cat, ok := h.catalog.FindCategory(slug)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Category not found."))
		return
	}
	render.OK(c, view.NewCategoryView(cat))
}
