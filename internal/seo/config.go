package seo

// Meta is one resolved set of page metadata. Empty fields in the
// specific entries fall back to the site default at lookup time.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Image       string `json:"image"`
	URL         string `json:"url"`
}

// Config is the central SEO registry: one default plus per-page,
// per-category and per-product entries keyed by slug.
type Config struct {
	Default    Meta
	Pages      map[string]Meta
	Categories map[string]Meta
	Products   map[string]Meta
}

func (c *Config) ForPage(slug string) Meta     { return c.merge(c.Pages[slug]) }
func (c *Config) ForCategory(slug string) Meta { return c.merge(c.Categories[slug]) }
func (c *Config) ForProduct(slug string) Meta  { return c.merge(c.Products[slug]) }

func (c *Config) merge(m Meta) Meta {
	out := c.Default
	if m.Title != "" {
		out.Title = m.Title
	}
	if m.Description != "" {
		out.Description = m.Description
	}
	if m.Keywords != "" {
		out.Keywords = m.Keywords
	}
	if m.Image != "" {
		out.Image = m.Image
	}
	if m.URL != "" {
		out.URL = m.URL
	}
	return out
}

// DefaultConfig builds the TPH SEO registry.
func DefaultConfig() *Config {
	return &Config{
		Default: Meta{
			Title:       "TPH Live - Premium Herbal Products Pakistan | Natural Health Solutions",
			Description: "Pakistan's trusted herbal products store. Premium natural supplements for men, women & weight loss. 100% authentic herbal medicines with proven results. Order now!",
			Keywords:    "herbal products Pakistan, natural supplements, ayurvedic medicine, herbal store, health products, natural remedies",
			Image:       "/images/tph-live-logo.png",
			URL:         "https://tphlive.com",
		},
		Pages: map[string]Meta{
			"home": {
				Title:       "TPH Live - Best Herbal Products in Pakistan | Natural Health Store",
				Description: "Discover Pakistan's #1 herbal products store. Premium natural supplements for men's health, women's wellness & weight management. Free delivery across Pakistan!",
				Keywords:    "best herbal products Pakistan, natural health store, ayurvedic supplements, herbal medicine online",
			},
			"shop": {
				Title:       "Shop Herbal Products Online Pakistan | TPH Live Store",
				Description: "Shop authentic herbal products online in Pakistan. Wide range of natural supplements for men, women & weight loss. Cash on delivery available nationwide.",
				Keywords:    "buy herbal products online Pakistan, herbal supplements shop, natural medicine store",
			},
			"about": {
				Title:       "About TPH Live - Pakistan's Trusted Herbal Products Company",
				Description: "Learn about TPH Live's journey in providing authentic herbal products in Pakistan. Our commitment to quality, natural ingredients & customer satisfaction.",
				Keywords:    "TPH Live company, herbal products manufacturer Pakistan, natural supplements company",
			},
			"contact": {
				Title:       "Contact TPH Live - Herbal Products Pakistan | Customer Support",
				Description: "Get in touch with TPH Live for herbal product inquiries. Expert consultation, order support & customer service. Call now for personalized health solutions.",
				Keywords:    "TPH Live contact, herbal products consultation Pakistan, customer support",
			},
		},
		Categories: map[string]Meta{
			"men": {
				Title:       "Men's Herbal Products Pakistan | Natural Supplements for Men | TPH Live",
				Description: "Premium herbal products for men's health in Pakistan. Natural supplements for stamina, vitality & performance. Trusted by thousands. Order with confidence!",
				Keywords:    "men herbal products Pakistan, natural supplements for men, male health products, stamina booster",
			},
			"women": {
				Title:       "Women's Herbal Products Pakistan | Natural Health Supplements | TPH Live",
				Description: "Authentic herbal products for women's health in Pakistan. Natural supplements for hormonal balance, beauty & wellness. Safe & effective solutions.",
				Keywords:    "women herbal products Pakistan, female health supplements, natural beauty products, hormonal balance",
			},
			"weight-lose": {
				Title:       "Weight Loss Herbal Products Pakistan | Natural Fat Burners | TPH Live",
				Description: "Best herbal weight loss products in Pakistan. Natural fat burners, metabolism boosters & appetite suppressants. Safe & effective weight management solutions.",
				Keywords:    "weight loss products Pakistan, herbal fat burner, natural weight loss supplements, slim products",
			},
		},
		Products: map[string]Meta{
			"b-maxman-royal-special-treatment": {
				Title:       "B-Maxman Royal Special Treatment Pakistan | Men's Herbal Supplement | TPH Live",
				Description: "B-Maxman Royal Special Treatment - Premium herbal supplement for men's vitality & performance. 30+ natural herbs formula. Price: Rs 2,500. Order now!",
				Keywords:    "B-Maxman Royal Pakistan, men vitality supplement, herbal performance booster, natural testosterone",
			},
			"b-maxtime-super-active": {
				Title:       "B-Maxtime Super Active Pakistan | Performance Enhancement | TPH Live",
				Description: "B-Maxtime Super Active herbal supplement for enhanced performance & stamina. Natural formula for lasting power. Price: Rs 1,200. Free delivery!",
				Keywords:    "B-Maxtime Super Active Pakistan, performance enhancement, natural stamina booster",
			},
			"shahi-sultan-health-booster": {
				Title:       "Shahi Sultan Health Booster Pakistan | Premium Men's Tonic | TPH Live",
				Description: "Shahi Sultan Health Booster - Royal herbal tonic for men's power & vitality. Premium ingredients for overall wellness. Price: Rs 9,500. Authentic product!",
				Keywords:    "Shahi Sultan Health Booster Pakistan, royal herbal tonic, men power supplement",
			},
			"shahi-tila": {
				Title:       "Shahi Tila Pakistan | Herbal Oil Supplement | TPH Live",
				Description: "Shahi Tila herbal oil for strength & vitality. Royal formula with natural ingredients. Price: Rs 2,500. Genuine product guaranteed!",
				Keywords:    "Shahi Tila Pakistan, herbal oil supplement, royal strength formula",
			},
			"sultan-majoon": {
				Title:       "Sultan Majoon Pakistan | Royal Herbal Jam | TPH Live",
				Description: "Sultan Majoon - Traditional royal herbal jam for strength & energy. Premium quality ingredients. Price: Rs 8,000. Order authentic product!",
				Keywords:    "Sultan Majoon Pakistan, royal herbal jam, traditional strength booster",
			},
			"bustmax-breast-oil": {
				Title:       "BustMax Breast Oil Pakistan | Natural Breast Enhancement | TPH Live",
				Description: "BustMax Breast Oil - Natural breast enhancement oil for women. Safe herbal formula for breast firming & enhancement. Price: Rs 2,500. Genuine product!",
				Keywords:    "BustMax Breast Oil Pakistan, natural breast enhancement, breast firming oil, women health products",
			},
			"g-max-passion": {
				Title:       "G-Max Passion Pakistan | Women's Vitality Supplement | TPH Live",
				Description: "G-Max Passion - Enhance feminine vitality & desire naturally. Premium herbal supplement for women's wellness. Price: Rs 2,000. Order now!",
				Keywords:    "G-Max Passion Pakistan, women vitality supplement, feminine health, natural desire enhancer",
			},
			"malka-shahi-gold-health-booster": {
				Title:       "Malka Shahi Gold Health Booster Pakistan | Women's Premium Tonic | TPH Live",
				Description: "Malka Shahi Gold Health Booster - Premium herbal tonic for women's health & beauty. Royal formula with natural ingredients. Price: Rs 7,500!",
				Keywords:    "Malka Shahi Gold Pakistan, women health booster, premium herbal tonic, royal women supplement",
			},
			"slim-n-shape-garcinia-cambogia-capsules": {
				Title:       "Slim n Shape Garcinia Cambogia Pakistan | Weight Loss Capsules | TPH Live",
				Description: "Best Slim n Shape Garcinia Cambogia capsules in Pakistan. Natural weight loss & belly fat burner. Proven results. Price: Rs 2,000. Order now!",
				Keywords:    "Slim n Shape Garcinia Pakistan, weight loss capsules, natural fat burner, belly fat reducer, garcinia cambogia",
			},
			"slim-n-shape-tea": {
				Title:       "Slim n Shape Tea Pakistan | Herbal Weight Loss Tea | TPH Live",
				Description: "Slim n Shape detox tea for natural weight management. Herbal blend for metabolism boost & fat burning. Price: Rs 999. Authentic product!",
				Keywords:    "Slim n Shape Tea Pakistan, weight loss tea, herbal detox tea, metabolism booster",
			},
		},
	}
}
