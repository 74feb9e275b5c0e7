package seo

import (
	"encoding/json"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
)

const brandName = "TPH Live"

type brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type offer struct {
	Type          string `json:"@type"`
	Price         int    `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
	Seller        brand  `json:"seller"`
}

type aggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	ReviewCount string `json:"reviewCount"`
}

type productLD struct {
	Context         string          `json:"@context"`
	Type            string          `json:"@type"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	Brand           brand           `json:"brand"`
	Offers          offer           `json:"offers"`
	Category        string          `json:"category"`
	AggregateRating aggregateRating `json:"aggregateRating"`
}

// ProductStructuredData renders a schema.org Product JSON-LD document
// for embedding in the page head.
func ProductStructuredData(p catalog.Product, categoryLabel string) ([]byte, error) {
	ld := productLD{
		Context:     "https://schema.org/",
		Type:        "Product",
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Brand:       brand{Type: "Brand", Name: brandName},
		Offers: offer{
			Type:          "Offer",
			Price:         p.Price,
			PriceCurrency: "PKR",
			Availability:  "https://schema.org/InStock",
			Seller:        brand{Type: "Organization", Name: brandName},
		},
		Category:        categoryLabel,
		AggregateRating: aggregateRating{Type: "AggregateRating", RatingValue: "4.8", ReviewCount: "150"},
	}
	return json.Marshal(ld)
}
