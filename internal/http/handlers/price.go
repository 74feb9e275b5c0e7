package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrghanchi007/tph-live-r2/internal/content"
	"github.com/mrghanchi007/tph-live-r2/internal/http/middleware"
	"github.com/mrghanchi007/tph-live-r2/internal/http/render"
	"github.com/mrghanchi007/tph-live-r2/internal/shared/apperr"
	"github.com/mrghanchi007/tph-live-r2/pkg/view"
)

// PriceHandler quotes order totals.
type PriceHandler struct {
	resolver *content.Resolver
}

func NewPriceHandler(resolver *content.Resolver) *PriceHandler {
	return &PriceHandler{resolver: resolver}
}

// Quote handles GET /api/price?slug=&qty=.
func (h *PriceHandler) Quote(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing product slug.", map[string]string{"slug": "This field is required."}))
		return
	}

	qty, err := strconv.Atoi(c.DefaultQuery("qty", "1"))
	if err != nil || qty < 1 || qty > 99 {
		middleware.Fail(c, apperr.InvalidErr("Quantity must be between 1 and 99.", map[string]string{"qty": "Must be a number between 1 and 99."}))
		return
	}

	singular, plural := h.resolver.Units(slug)
	unit := plural
	if qty == 1 {
		unit = singular
	}

	render.OK(c, view.PriceQuote{
		Slug:     slug,
		Quantity: qty,
		Unit:     unit,
		Total:    h.resolver.ComputeTotal(slug, qty),
	})
}
