// checkcatalog validates the static data tables: catalog integrity,
// override keys, SEO coverage, and full content resolution for every
// language/product pair. Run it in CI and before deploys.
package main

import (
	"fmt"
	"os"

	"github.com/mrghanchi007/tph-live-r2/internal/catalog"
	"github.com/mrghanchi007/tph-live-r2/internal/content"
	"github.com/mrghanchi007/tph-live-r2/internal/seo"
)

func main() {
	problems := 0
	fail := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
		problems++
	}

	cat := catalog.Default()
	for _, err := range cat.Validate() {
		fail("catalog: %v", err)
	}

	overrides := content.DefaultOverrides()
	for slug := range overrides {
		if _, ok := cat.FindBySlug(slug); !ok {
			fail("override for unknown product slug %q", slug)
		}
	}

	cfg := seo.DefaultConfig()
	for _, p := range cat.All() {
		if _, ok := cfg.Products[p.Slug]; !ok {
			fail("no SEO record for product %q", p.Slug)
		}
	}
	for _, c := range cat.Categories() {
		if _, ok := cfg.Categories[c.Slug]; !ok {
			fail("no SEO record for category %q", c.Slug)
		}
	}

	resolver := content.NewResolver(content.DefaultDictionary(), overrides)
	for _, lang := range []content.Lang{content.English, content.Urdu} {
		for _, p := range cat.All() {
			doc := resolver.Resolve(lang, p.Slug)
			if doc.Hero.Title == "" {
				fail("%s/%s: empty hero title", lang, p.Slug)
			}
			if len(doc.Pricing.Packages) == 0 {
				fail("%s/%s: no pricing packages", lang, p.Slug)
			}
			if total := resolver.ComputeTotal(p.Slug, 1); total <= 0 {
				fail("%s/%s: non-positive unit total %d", lang, p.Slug, total)
			}
		}
	}

	if problems > 0 {
		fmt.Fprintf(os.Stderr, "%d problem(s) found\n", problems)
		os.Exit(1)
	}
	fmt.Printf("catalog OK: %d products, %d categories, %d overrides\n",
		len(cat.All()), len(cat.Categories()), len(overrides))
}
