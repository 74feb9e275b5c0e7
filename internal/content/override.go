package content

// Override layers. A nil pointer or nil slice means "not overridden";
// a pointer to an empty string or a non-nil empty slice is an explicit
// override and wins like any other value.

type SectionOverrides struct {
	Hero         *HeroOverride
	Problems     *ProblemsOverride
	BeforeAfter  *BeforeAfterOverride
	Ingredients  *IngredientsOverride
	Benefits     *BenefitsOverride
	Testimonials []Testimonial
	Usage        *UsageOverride
	Pricing      *PricingOverride
	OrderForm    *OrderFormOverride
	FAQ          *FAQOverride
	CompanyName  *string
}

// ProductOverride shadows the dictionary for one product. Urdu, when
// present, shadows both the dictionary and the product layer, but only
// while the page renders in Urdu.
type ProductOverride struct {
	SectionOverrides

	// ForceEnglishPricing quotes pricing from the English dictionary
	// regardless of the display language. Product-level pricing
	// overrides still apply on top; Urdu pricing overrides do not.
	ForceEnglishPricing bool

	// Quantity unit labels for the WhatsApp order message
	// ("Pack"/"Packs", "Month Pack"/"Months Pack"). Empty means
	// the default bottle/bottles.
	UnitSingular string
	UnitPlural   string

	Urdu *SectionOverrides
}

type HeroOverride struct {
	Badge              *string
	Title              *string
	Subtitle           *string
	Features           []string
	Trusted            *string
	SpecialPrice       *string
	SpecialPriceAmount *string
	Delivery           *string
	Image              *string
}

type ProblemsOverride struct {
	Title    *string
	Subtitle *string
	List     []string
	Solution *string
}

type BeforeAfterOverride struct {
	Title    *string
	Subtitle *string
}

type IngredientsOverride struct {
	Title    *string
	Subtitle *string
	List     []Ingredient
	Natural  *string
}

type BenefitsOverride struct {
	Title *string
	List  []BenefitItem
}

type UsageEntryOverride struct {
	Title *string
	Text  *string
}

type UsageOverride struct {
	Title  *string
	Dosage *UsageEntryOverride
	Course *UsageEntryOverride
	Best   *UsageEntryOverride
}

type PackageOverride struct {
	Title       *string
	HeaderTitle *string
	Price       *int
	SaveAmount  *int
	Features    []string
}

type PricingOverride struct {
	Title    *string
	Subtitle *string
	Popular  *string
	Save     *string
	Packages []PackageOverride
}

type OrderFormOverride struct {
	Title           *string
	Subtitle        *string
	QuantityOptions []string
}

type FAQOverride struct {
	Title    *string
	Subtitle *string
	Items    []FAQItem
}

// str is a literal helper for override tables.
func str(s string) *string { return &s }

func num(n int) *int { return &n }

func override(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (o *HeroOverride) apply(h Hero) Hero {
	if o == nil {
		return h
	}
	override(&h.Badge, o.Badge)
	override(&h.Title, o.Title)
	override(&h.Subtitle, o.Subtitle)
	if o.Features != nil {
		h.Features = o.Features
	}
	override(&h.Trusted, o.Trusted)
	override(&h.SpecialPrice, o.SpecialPrice)
	override(&h.SpecialPriceAmount, o.SpecialPriceAmount)
	override(&h.Delivery, o.Delivery)
	override(&h.Image, o.Image)
	return h
}

func (o *ProblemsOverride) apply(p Problems) Problems {
	if o == nil {
		return p
	}
	override(&p.Title, o.Title)
	override(&p.Subtitle, o.Subtitle)
	if o.List != nil {
		p.List = o.List
	}
	override(&p.Solution, o.Solution)
	return p
}

func (o *BeforeAfterOverride) apply(b BeforeAfter) BeforeAfter {
	if o == nil {
		return b
	}
	override(&b.Title, o.Title)
	override(&b.Subtitle, o.Subtitle)
	return b
}

func (o *IngredientsOverride) apply(in Ingredients) Ingredients {
	if o == nil {
		return in
	}
	override(&in.Title, o.Title)
	override(&in.Subtitle, o.Subtitle)
	if o.List != nil {
		in.List = o.List
	}
	override(&in.Natural, o.Natural)
	return in
}

func (o *BenefitsOverride) apply(b Benefits) Benefits {
	if o == nil {
		return b
	}
	override(&b.Title, o.Title)
	if o.List != nil {
		b.List = o.List
	}
	return b
}

func (o *UsageEntryOverride) apply(e UsageEntry) UsageEntry {
	if o == nil {
		return e
	}
	override(&e.Title, o.Title)
	override(&e.Text, o.Text)
	return e
}

func (o *UsageOverride) apply(u Usage) Usage {
	if o == nil {
		return u
	}
	override(&u.Title, o.Title)
	u.Dosage = o.Dosage.apply(u.Dosage)
	u.Course = o.Course.apply(u.Course)
	u.Best = o.Best.apply(u.Best)
	return u
}

func (o *OrderFormOverride) apply(f OrderForm) OrderForm {
	if o == nil {
		return f
	}
	override(&f.Title, o.Title)
	override(&f.Subtitle, o.Subtitle)
	if o.QuantityOptions != nil {
		f.QuantityOptions = o.QuantityOptions
	}
	return f
}

func (o *FAQOverride) apply(f FAQ) FAQ {
	if o == nil {
		return f
	}
	override(&f.Title, o.Title)
	override(&f.Subtitle, o.Subtitle)
	if o.Items != nil {
		f.Items = o.Items
	}
	return f
}

// apply merges a pricing override over the current pricing. dictPkgs is
// the dictionary's package list, used for the per-index features
// fallback when an override package omits its feature list. Package
// lists otherwise replace wholesale.
func (o *PricingOverride) apply(p Pricing, dictPkgs []Package) Pricing {
	if o == nil {
		return p
	}
	override(&p.Title, o.Title)
	override(&p.Subtitle, o.Subtitle)
	override(&p.Popular, o.Popular)
	override(&p.Save, o.Save)
	if o.Packages != nil {
		p.Packages = resolvePackages(o.Packages, dictPkgs)
	}
	return p
}

func resolvePackages(ovs []PackageOverride, dictPkgs []Package) []Package {
	out := make([]Package, len(ovs))
	for i, ov := range ovs {
		var base Package
		if i < len(dictPkgs) {
			base = dictPkgs[i]
		}
		pkg := Package{Features: base.Features}
		if ov.Title != nil {
			pkg.Title = *ov.Title
		} else {
			pkg.Title = base.Title
		}
		if ov.HeaderTitle != nil {
			pkg.HeaderTitle = *ov.HeaderTitle
		} else {
			pkg.HeaderTitle = base.HeaderTitle
		}
		if ov.Price != nil {
			pkg.Price = *ov.Price
		} else {
			pkg.Price = base.Price
		}
		if ov.SaveAmount != nil {
			pkg.SaveAmount = *ov.SaveAmount
		} else {
			pkg.SaveAmount = base.SaveAmount
		}
		if ov.Features != nil {
			pkg.Features = ov.Features
		}
		if pkg.Features == nil {
			pkg.Features = []string{}
		}
		out[i] = pkg
	}
	return out
}
