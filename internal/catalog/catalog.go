package catalog

import (
	"fmt"

	"github.com/mrghanchi007/tph-live-r2/internal/shared/slug"
)

// Product is one sellable item. The catalog is static configuration:
// products are created at startup and never mutated afterwards.
type Product struct {
	Name        string
	Price       int // smallest unit of the local currency (PKR rupees)
	Image       string
	Description string
	Benefits    []string

	// Derived at catalog build time.
	Slug         string
	CategorySlug string
}

// Category owns an ordered list of products; the order is display order.
type Category struct {
	Slug        string
	Label       string
	Image       string
	Description string
	Products    []Product
}

// Catalog is the immutable product/category set with a slug index.
// Safe for concurrent use without locking.
type Catalog struct {
	categories []Category
	bySlug     map[string]*Product
	byCategory map[string]*Category
}

// New derives product slugs, indexes them, and returns the catalog.
// The input is treated as owned by the catalog from here on.
func New(categories []Category) *Catalog {
	c := &Catalog{
		categories: categories,
		bySlug:     make(map[string]*Product),
		byCategory: make(map[string]*Category, len(categories)),
	}
	for i := range c.categories {
		cat := &c.categories[i]
		c.byCategory[cat.Slug] = cat
		for j := range cat.Products {
			p := &cat.Products[j]
			p.Slug = slug.Make(p.Name)
			p.CategorySlug = cat.Slug
			if _, dup := c.bySlug[p.Slug]; !dup {
				// first match wins on duplicates; Validate reports them
				c.bySlug[p.Slug] = p
			}
		}
	}
	return c
}

// Categories returns the display-ordered category list.
func (c *Catalog) Categories() []Category { return c.categories }

// FindBySlug resolves a product by its URL slug. A miss is normal
// control flow (the caller falls back to default page behaviour).
func (c *Catalog) FindBySlug(s string) (Product, bool) {
	p, ok := c.bySlug[s]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

// FindCategory resolves a category by slug.
func (c *Catalog) FindCategory(s string) (Category, bool) {
	cat, ok := c.byCategory[s]
	if !ok {
		return Category{}, false
	}
	return *cat, true
}

// All returns every product across categories in display order.
func (c *Catalog) All() []Product {
	var out []Product
	for _, cat := range c.categories {
		out = append(out, cat.Products...)
	}
	return out
}

// Validate reports configuration defects: product slugs must be unique
// across the whole catalog, names and prices must be present. Run from
// tests and cmd/tools/checkcatalog, never at request time.
func (c *Catalog) Validate() []error {
	var errs []error
	seen := make(map[string]string) // slug -> category of first occurrence
	for _, cat := range c.categories {
		for _, p := range cat.Products {
			if p.Name == "" {
				errs = append(errs, fmt.Errorf("category %q: product with empty name", cat.Slug))
				continue
			}
			if p.Price <= 0 {
				errs = append(errs, fmt.Errorf("product %q: non-positive price %d", p.Name, p.Price))
			}
			s := slug.Make(p.Name)
			if s == "" {
				errs = append(errs, fmt.Errorf("product %q: name slugs to empty string", p.Name))
				continue
			}
			if first, dup := seen[s]; dup {
				errs = append(errs, fmt.Errorf("duplicate slug %q (categories %q and %q)", s, first, cat.Slug))
				continue
			}
			seen[s] = cat.Slug
		}
	}
	return errs
}
