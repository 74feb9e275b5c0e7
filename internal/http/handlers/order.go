package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
	"github.com/mrghanchi007/tph-live-r2/internal/content"
	"github.com/mrghanchi007/tph-live-r2/internal/http/middleware"
	"github.com/mrghanchi007/tph-live-r2/internal/http/render"
	"github.com/mrghanchi007/tph-live-r2/internal/http/validation"
	"github.com/mrghanchi007/tph-live-r2/internal/shared/apperr"
	"github.com/mrghanchi007/tph-live-r2/internal/whatsapp"
	"github.com/mrghanchi007/tph-live-r2/pkg/view"
)

// OrderHandler turns a validated order form into a WhatsApp deep link.
// Orders are not persisted; WhatsApp is the order channel.
type OrderHandler struct {
	resolver *content.Resolver
	catalog  *catalog.Catalog
	number   string
}

func NewOrderHandler(resolver *content.Resolver, cat *catalog.Catalog, number string) *OrderHandler {
	return &OrderHandler{resolver: resolver, catalog: cat, number: number}
}

type orderRequest struct {
	Slug     string `json:"slug" binding:"required"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"required,min=7,max=20"`
	Address  string `json:"address" binding:"required,min=5,max=300"`
	City     string `json:"city" binding:"required,min=2,max=100"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=99"`
}

// Create handles POST /api/order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please check the order form.", validation.FromBindError(err, &req)))
		return
	}

	product, ok := h.catalog.FindBySlug(req.Slug)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	// The message carries the English page title, which is what the
	// shop matches orders against.
	title := h.resolver.Resolve(content.English, req.Slug).Hero.Title
	if title == "" {
		title = product.Name
	}

	singular, plural := h.resolver.Units(req.Slug)
	total := h.resolver.ComputeTotal(req.Slug, req.Quantity)
	ref := "ORD-" + strings.Split(uuid.NewString(), "-")[0]

	order := whatsapp.Order{
		ProductTitle: title,
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Quantity:     req.Quantity,
		Total:        total,
		UnitSingular: singular,
		UnitPlural:   plural,
		Reference:    ref,
	}

	render.OK(c, view.OrderReceipt{
		Reference:   ref,
		Total:       total,
		WhatsAppURL: whatsapp.Link(h.number, order),
		Message:     whatsapp.Message(order),
	})
}
