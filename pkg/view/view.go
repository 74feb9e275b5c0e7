// Package view holds the models the API serialises. Handlers map
// domain types in here; nothing in this package reaches back into the
// domain packages' behaviour.
package view

import (
	"encoding/json"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
	"github.com/mrghanchi007/tph-live-r2/internal/content"
	"github.com/mrghanchi007/tph-live-r2/internal/seo"
)

type ProductCard struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Price        int    `json:"price"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	CategorySlug string `json:"categorySlug"`
}

func NewProductCard(p catalog.Product) ProductCard {
	return ProductCard{
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        p.Price,
		Image:        p.Image,
		Description:  p.Description,
		CategorySlug: p.CategorySlug,
	}
}

type CategoryView struct {
	Slug        string        `json:"slug"`
	Label       string        `json:"label"`
	Image       string        `json:"image,omitempty"`
	Description string        `json:"description,omitempty"`
	Products    []ProductCard `json:"products"`
}

func NewCategoryView(cat catalog.Category) CategoryView {
	cards := make([]ProductCard, len(cat.Products))
	for i, p := range cat.Products {
		cards[i] = NewProductCard(p)
	}
	return CategoryView{
		Slug:        cat.Slug,
		Label:       cat.Label,
		Image:       cat.Image,
		Description: cat.Description,
		Products:    cards,
	}
}

type UnitLabels struct {
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// ContentPage is the full payload for one product landing page.
// Product is nil for slugs outside the catalog; the content document is
// always complete.
type ContentPage struct {
	Lang        string          `json:"lang"`
	Slug        string          `json:"slug"`
	Product     *ProductCard    `json:"product,omitempty"`
	Content     content.Content `json:"content"`
	Units       UnitLabels      `json:"units"`
	PriceBreaks []int           `json:"priceBreaks"`
}

type PriceQuote struct {
	Slug     string `json:"slug"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Total    int    `json:"total"`
}

type OrderReceipt struct {
	Reference   string `json:"reference"`
	Total       int    `json:"total"`
	WhatsAppURL string `json:"whatsappUrl"`
	Message     string `json:"message"`
}

type SEOPayload struct {
	Meta           seo.Meta        `json:"meta"`
	StructuredData json.RawMessage `json:"structuredData,omitempty"`
}
