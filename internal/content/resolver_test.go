package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(DefaultDictionary(), DefaultOverrides())
}

// Every (lang, slug) pair resolves to a complete document, even for
// slugs nobody has heard of.
func TestResolveTotality(t *testing.T) {
	r := newTestResolver()
	slugs := []string{
		"b-maxman-royal-special-treatment",
		"b-maxtime-super-active",
		"slim-n-shape-garcinia-cambogia-capsules",
		"slim-n-shape-tea",
		"shahi-sultan-health-booster",
		"no-such-product",
		"",
	}
	for _, lang := range []Lang{English, Urdu} {
		for _, s := range slugs {
			c := r.Resolve(lang, s)
			assert.NotEmpty(t, c.Hero.Title, "%s/%s hero title", lang, s)
			assert.NotEmpty(t, c.Problems.List, "%s/%s problems list", lang, s)
			assert.NotEmpty(t, c.Pricing.Packages, "%s/%s packages", lang, s)
			assert.NotEmpty(t, c.FAQ.Items, "%s/%s faq", lang, s)
			assert.NotEmpty(t, c.CompanyName, "%s/%s company name", lang, s)
			for i, pkg := range c.Pricing.Packages {
				assert.NotNil(t, pkg.Features, "%s/%s package %d features", lang, s, i)
			}
		}
	}
}

func TestResolveUnknownSlugIsDictionary(t *testing.T) {
	r := newTestResolver()
	base := DefaultDictionary().Base(English)
	got := r.Resolve(English, "no-such-product")
	assert.Equal(t, base.Hero.Title, got.Hero.Title)
	assert.Equal(t, base.Pricing, got.Pricing)
}

// Product overrides win over the dictionary; untouched fields fall
// through unchanged.
func TestResolveProductOverridePrecedence(t *testing.T) {
	r := newTestResolver()
	c := r.Resolve(English, "b-maxman-royal-special-treatment")

	assert.Equal(t, "B-Maxman Royal Special Treatment", c.Hero.Title)
	assert.Equal(t, "BEST SELLER", c.Hero.Badge)
	// Subtitle is overridden, but hero features are not.
	assert.Equal(t, []string{"Boost Performance", "Restore Confidence", "Live Strong"}, c.Hero.Features)
	// Problems list falls through to the dictionary.
	assert.Contains(t, c.Problems.List, "Premature Ejaculation (P.E)")
	assert.Equal(t, "B-Maxman Royal Special Treatment is the ultimate solution you've been looking for!", c.Problems.Solution)
}

// The Urdu layer sits on top of the product layer, which sits on top of
// the Urdu dictionary.
func TestResolveUrduLayering(t *testing.T) {
	r := newTestResolver()
	c := r.Resolve(Urdu, "b-maxman-royal-special-treatment")

	// Urdu override wins over both layers below it.
	assert.Equal(t, "بی میکس مین رائل سپیشل ٹریٹمنٹ کے فوائد", c.Benefits.Title)
	assert.Equal(t, "بی میکس مین رائل اسپیشل ٹریٹمنٹ وہ بہترین حل ہے جس کی آپ تلاش کر رہے تھے!", c.Problems.Solution)
	// No Urdu hero override: the English product override shows through.
	assert.Equal(t, "B-Maxman Royal Special Treatment", c.Hero.Title)
	// No override at all: the Urdu dictionary shows through.
	assert.Equal(t, "🧠 آج کل مردوں کو درپیش عام مسائل", c.Problems.Title)
}

// Urdu overrides never leak into English resolutions.
func TestResolveEnglishIgnoresUrduLayer(t *testing.T) {
	r := newTestResolver()
	c := r.Resolve(English, "b-maxtime-super-active")
	assert.Equal(t, "Benefits of B-Maxtime Super Active", c.Benefits.Title)
	assert.Equal(t, "FAQs – B-Maxtime Super Active", c.FAQ.Title)
}

// Products pinned to English pricing serve the same package table in
// both languages, even when an Urdu pricing override is authored.
func TestResolveForcedEnglishPricing(t *testing.T) {
	r := newTestResolver()
	for _, slug := range []string{"b-maxtime-super-active", "slim-n-shape-garcinia-cambogia-capsules"} {
		en := r.Resolve(English, slug)
		ur := r.Resolve(Urdu, slug)
		assert.Equal(t, en.Pricing, ur.Pricing, "pricing for %s must not vary by language", slug)
	}

	ur := r.Resolve(Urdu, "b-maxtime-super-active")
	assert.Equal(t, "Affordable Packages", ur.Pricing.Title)
	require.Len(t, ur.Pricing.Packages, 3)
	assert.Equal(t, 1200, ur.Pricing.Packages[0].Price)
	// The Urdu sections outside pricing still apply.
	assert.Equal(t, "اجزاء / سائنسی طور پر ثابت شدہ", ur.Ingredients.Title)
}

// An Urdu pricing package without its own feature list inherits the
// features of the same-index package from the layer below.
func TestResolvePricingFeatureFallback(t *testing.T) {
	r := newTestResolver()
	en := r.Resolve(English, "slim-n-shape-tea")
	ur := r.Resolve(Urdu, "slim-n-shape-tea")

	require.Len(t, en.Pricing.Packages, 3)
	require.Len(t, ur.Pricing.Packages, 3)
	for i := range ur.Pricing.Packages {
		assert.Equal(t, en.Pricing.Packages[i].Features, ur.Pricing.Packages[i].Features, "package %d", i)
	}
	// Titles and prices come from the Urdu layer.
	assert.Equal(t, "١ پیک", ur.Pricing.Packages[0].Title)
	assert.Equal(t, 999, ur.Pricing.Packages[0].Price)
	assert.Equal(t, "سستی پیکجز", ur.Pricing.Title)
}

func TestResolveExplicitEmptyOverride(t *testing.T) {
	dict := DefaultDictionary()
	r := NewResolver(dict, map[string]*ProductOverride{
		"blank": {
			SectionOverrides: SectionOverrides{
				Hero:     &HeroOverride{Badge: str(""), Features: []string{}},
				Problems: &ProblemsOverride{List: []string{}},
			},
		},
	})
	c := r.Resolve(English, "blank")
	// Explicit empty values are overrides, not absences.
	assert.Empty(t, c.Hero.Badge)
	assert.NotNil(t, c.Hero.Features)
	assert.Len(t, c.Hero.Features, 0)
	assert.Len(t, c.Problems.List, 0)
	// Untouched siblings still fall through.
	assert.Equal(t, dict.Base(English).Hero.Title, c.Hero.Title)
}

func TestResolveDeterministic(t *testing.T) {
	r := newTestResolver()
	first := r.Resolve(Urdu, "slim-n-shape-garcinia-cambogia-capsules")
	second := r.Resolve(Urdu, "slim-n-shape-garcinia-cambogia-capsules")
	assert.Equal(t, first, second)
}

func TestUnits(t *testing.T) {
	r := newTestResolver()

	s, p := r.Units("slim-n-shape-garcinia-cambogia-capsules")
	assert.Equal(t, "Month Pack", s)
	assert.Equal(t, "Months Pack", p)

	s, p = r.Units("b-maxman-royal-special-treatment")
	assert.Equal(t, "Bottle", s)
	assert.Equal(t, "Bottles", p)

	s, p = r.Units("no-such-product")
	assert.Equal(t, "Bottle", s)
	assert.Equal(t, "Bottles", p)
}

func TestParseLang(t *testing.T) {
	assert.Equal(t, English, ParseLang("en"))
	assert.Equal(t, Urdu, ParseLang("ur"))
	assert.Equal(t, English, ParseLang(""))
	assert.Equal(t, English, ParseLang("fr"))
}
