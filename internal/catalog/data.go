package catalog

// Static catalog data. Descriptions are authored content and may mix
// English and Urdu in one string.

// Default builds the TPH catalog.
func Default() *Catalog {
	return New([]Category{
		{
			Slug:        "men",
			Label:       "MEN",
			Image:       "/images/MEN.png",
			Description: "Premium herbal supplements for men's health and vitality",
			Products: []Product{
				{
					Name:        "B-Maxman Royal Special Treatment",
					Price:       2500,
					Image:       "/images/B-Maxman Royal Special Treatment.png",
					Description: "۳۰+ عالمی شہرت یافتہ جڑی بوٹیوں کا طاقتور امتزاج، صدیوں سے قابل اعتماد\nEnhance male vitality and performance naturally",
					Benefits: []string{
						"Boosts testosterone levels",
						"Improves stamina and energy",
						"Enhances muscle growth",
						"Supports reproductive health",
					},
				},
				{
					Name:        "B-Maxtime Super Active",
					Price:       1200,
					Image:       "/images/B-Maxtime Super Active.png",
					Description: "Prolong performance and satisfaction",
					Benefits: []string{
						"Delays premature ejaculation",
						"Increases staying power",
						"Enhances pleasure",
						"Natural herbal formula",
					},
				},
				{
					Name:        "Shahi Sultan Health Booster",
					Price:       9500,
					Image:       "/images/Shahi Sultan Health Booster.png",
					Description: "To Live Life Powerfully / Actively / Strongly💪\nEnergetic • Men Power • Wellness in All Ages",
					Benefits: []string{
						"Boosts immunity",
						"Enhances vitality",
						"Improves overall health",
						"Premium herbal ingredients",
					},
				},
				{
					Name:        "Shahi Tila",
					Price:       2500,
					Image:       "/images/Shahi Tila.png",
					Description: "Traditional herbal supplement for men",
					Benefits: []string{
						"Increases energy",
						"Supports male health",
						"Natural ingredients",
						"Traditional formula",
					},
				},
				{
					Name:        "Sultan Majoon",
					Price:       8000,
					Image:       "/images/Sultan Majoon.png",
					Description: "Royal herbal jam for strength and vitality",
					Benefits: []string{
						"Boosts energy",
						"Enhances stamina",
						"Supports immunity",
						"Traditional recipe",
					},
				},
			},
		},
		{
			Slug:        "women",
			Label:       "WOMEN",
			Image:       "/images/WOMEN.png",
			Description: "Natural wellness products for women's health",
			Products: []Product{
				{
					Name:        "BustMax Breast Oil",
					Price:       2500,
					Image:       "/images/BustMax Breast Oil.png",
					Description: "Natural breast enhancement oil",
					Benefits: []string{
						"Firms and tones",
						"Natural breast enhancement",
						"Improves skin texture",
						"Herbal formula",
					},
				},
				{
					Name:        "G-Max Passion",
					Price:       2000,
					Image:       "/images/G-Max Passion.png",
					Description: "Enhance feminine vitality and desire",
					Benefits: []string{
						"Boosts libido",
						"Enhances pleasure",
						"Balances hormones",
						"Natural ingredients",
					},
				},
				{
					Name:        "Malka Shahi Gold Health Booster",
					Price:       7500,
					Image:       "/images/Malka Shahi Gold Health Booster.png",
					Description: "Premium herbal tonic for women",
					Benefits: []string{
						"Supports hormonal balance",
						"Enhances vitality",
						"Boosts immunity",
						"Rich in nutrients",
					},
				},
			},
		},
		{
			Slug:        "weight-lose",
			Label:       "WEIGHT LOSE",
			Image:       "/images/WEIGHT LOSE.png",
			Description: "Herbal solutions for healthy weight management",
			Products: []Product{
				{
					Name:        "Slim n Shape Garcinia Cambogia Capsules",
					Price:       2000,
					Image:       "/images/Slim n Shape Garcinia.png",
					Description: "Best Herbal Weight Loss Capsules in Pakistan | Natural Belly Fat Burner | Metabolism Booster for Men & Women\n\nPremium herbal formula for safe & effective weight loss.",
					Benefits: []string{
						"Burn Belly Fat Naturally",
						"Control Appetite & Cravings",
						"Boost Energy & Metabolism",
						"Trusted by Thousands in Pakistan",
						"Special Price: Rs 2,000/-",
					},
				},
				{
					Name:        "Slim n Shape Tea",
					Price:       999,
					Image:       "/images/Slim n Shape Tea.png",
					Description: "Detox and weight management tea",
					Benefits: []string{
						"Aids digestion",
						"Boosts metabolism",
						"Natural detox",
						"Antioxidant rich",
					},
				},
			},
		},
	})
}
