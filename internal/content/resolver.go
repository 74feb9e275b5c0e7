package content

import "sync"

// Resolver merges the language dictionary with per-product overrides.
// Resolution is pure: the same (lang, slug) pair always yields the same
// content, so results are memoized after the first build.
type Resolver struct {
	dict      *Dictionary
	overrides map[string]*ProductOverride

	mu   sync.RWMutex
	memo map[memoKey]Content
}

type memoKey struct {
	lang Lang
	slug string
}

func NewResolver(dict *Dictionary, overrides map[string]*ProductOverride) *Resolver {
	if overrides == nil {
		overrides = map[string]*ProductOverride{}
	}
	return &Resolver{
		dict:      dict,
		overrides: overrides,
		memo:      make(map[memoKey]Content),
	}
}

// Resolve returns the fully merged content for a product page. Unknown
// slugs resolve to the plain dictionary for the language, so every
// (lang, slug) pair yields a complete document.
func (r *Resolver) Resolve(lang Lang, slug string) Content {
	key := memoKey{lang: lang, slug: slug}

	r.mu.RLock()
	c, ok := r.memo[key]
	r.mu.RUnlock()
	if ok {
		return c
	}

	c = r.build(lang, slug)

	r.mu.Lock()
	r.memo[key] = c
	r.mu.Unlock()
	return c
}

// Units returns the quantity unit labels for a product, defaulting to
// bottles when the product does not declare its own.
func (r *Resolver) Units(slug string) (singular, plural string) {
	if ov := r.overrides[slug]; ov != nil && ov.UnitSingular != "" {
		return ov.UnitSingular, ov.UnitPlural
	}
	return "Bottle", "Bottles"
}

func (r *Resolver) build(lang Lang, slug string) Content {
	c := r.dict.Base(lang)
	ov := r.overrides[slug]
	if ov == nil {
		return c
	}

	var ur *SectionOverrides
	if lang == Urdu {
		ur = ov.Urdu
	}

	c = ov.SectionOverrides.applyTo(c)
	c = ur.applyTo(c)

	// Pricing merges separately because override packages fall back to
	// the previous layer's feature lists index by index, and because a
	// product can pin its pricing to the English dictionary regardless
	// of the requested language.
	if ov.ForceEnglishPricing {
		base := r.dict.Base(English).Pricing
		c.Pricing = ov.Pricing.apply(base, base.Packages)
		return c
	}
	c.Pricing = ov.Pricing.apply(c.Pricing, c.Pricing.Packages)
	if ur != nil {
		c.Pricing = ur.Pricing.apply(c.Pricing, c.Pricing.Packages)
	}
	return c
}

// applyTo merges every section except pricing, which carries its own
// fallback rules.
func (s *SectionOverrides) applyTo(c Content) Content {
	if s == nil {
		return c
	}
	c.Hero = s.Hero.apply(c.Hero)
	c.Problems = s.Problems.apply(c.Problems)
	c.BeforeAfter = s.BeforeAfter.apply(c.BeforeAfter)
	c.Ingredients = s.Ingredients.apply(c.Ingredients)
	c.Benefits = s.Benefits.apply(c.Benefits)
	if s.Testimonials != nil {
		c.Testimonials.List = s.Testimonials
	}
	c.Usage = s.Usage.apply(c.Usage)
	c.OrderForm = s.OrderForm.apply(c.OrderForm)
	c.FAQ = s.FAQ.apply(c.FAQ)
	if s.CompanyName != nil {
		c.CompanyName = *s.CompanyName
	}
	return c
}
