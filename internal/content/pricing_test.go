package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceBreaksDefaultTable(t *testing.T) {
	r := newTestResolver()
	// No pricing override at all.
	assert.Equal(t, []int{2500, 4500, 6000}, r.PriceBreaks("b-maxman-royal-special-treatment"))
	assert.Equal(t, []int{2500, 4500, 6000}, r.PriceBreaks("no-such-product"))
}

func TestPriceBreaksFromOverride(t *testing.T) {
	r := newTestResolver()
	assert.Equal(t, []int{1200, 2000, 3000}, r.PriceBreaks("b-maxtime-super-active"))
	assert.Equal(t, []int{2000, 3800, 5500}, r.PriceBreaks("slim-n-shape-garcinia-cambogia-capsules"))
	assert.Equal(t, []int{999, 1899, 2699}, r.PriceBreaks("slim-n-shape-tea"))
	assert.Equal(t, []int{9500, 18000, 25000}, r.PriceBreaks("shahi-sultan-health-booster"))
}

func TestComputeTotal(t *testing.T) {
	r := newTestResolver()
	cases := []struct {
		slug string
		qty  int
		want int
	}{
		{"b-maxman-royal-special-treatment", 1, 2500},
		{"b-maxman-royal-special-treatment", 2, 4500},
		{"b-maxman-royal-special-treatment", 3, 6000},
		// Beyond the table: single-unit price times quantity.
		{"b-maxman-royal-special-treatment", 4, 10000},
		{"b-maxman-royal-special-treatment", 7, 17500},
		{"b-maxtime-super-active", 1, 1200},
		{"b-maxtime-super-active", 3, 3000},
		{"b-maxtime-super-active", 5, 6000},
		{"slim-n-shape-tea", 2, 1899},
		{"slim-n-shape-tea", 10, 9990},
		{"no-such-product", 1, 2500},
		{"no-such-product", 4, 10000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, r.ComputeTotal(c.slug, c.qty), "%s qty=%d", c.slug, c.qty)
	}
}

func TestComputeTotalIsTotal(t *testing.T) {
	r := newTestResolver()
	// Zero and negative quantities clamp to one unit.
	assert.Equal(t, 2500, r.ComputeTotal("b-maxman-royal-special-treatment", 0))
	assert.Equal(t, 999, r.ComputeTotal("slim-n-shape-tea", -3))
	// Every catalog product yields a positive total for any quantity.
	for _, slug := range []string{
		"b-maxman-royal-special-treatment",
		"b-maxtime-super-active",
		"shahi-sultan-health-booster",
		"shahi-tila",
		"sultan-majoon",
		"bustmax-breast-oil",
		"g-max-passion",
		"malka-shahi-gold-health-booster",
		"slim-n-shape-garcinia-cambogia-capsules",
		"slim-n-shape-tea",
	} {
		for qty := -1; qty <= 12; qty++ {
			assert.Positive(t, r.ComputeTotal(slug, qty), "%s qty=%d", slug, qty)
		}
	}
}
