package content

// defaultBreaks is the house price table for products that ship no
// pricing override: 1, 2 and 3 units.
var defaultBreaks = []int{2500, 4500, 6000}

// PriceBreaks returns the quantity price table for a product. Index i
// holds the total for i+1 units. Products without pricing overrides use
// the default table; override packages missing a price fall back to the
// default table at the same index.
func (r *Resolver) PriceBreaks(slug string) []int {
	ov := r.overrides[slug]
	if ov == nil || ov.Pricing == nil || len(ov.Pricing.Packages) == 0 {
		out := make([]int, len(defaultBreaks))
		copy(out, defaultBreaks)
		return out
	}
	out := make([]int, len(ov.Pricing.Packages))
	for i, p := range ov.Pricing.Packages {
		switch {
		case p.Price != nil:
			out[i] = *p.Price
		case i < len(defaultBreaks):
			out[i] = defaultBreaks[i]
		default:
			out[i] = out[0] * (i + 1)
		}
	}
	return out
}

// ComputeTotal returns the order total for qty units of a product.
// Quantities covered by the price table use the package total directly;
// anything beyond it is charged at the single-unit price. Quantities
// below one are treated as one, so the function is total over all
// inputs.
func (r *Resolver) ComputeTotal(slug string, qty int) int {
	if qty < 1 {
		qty = 1
	}
	breaks := r.PriceBreaks(slug)
	if qty <= len(breaks) {
		return breaks[qty-1]
	}
	return qty * breaks[0]
}
