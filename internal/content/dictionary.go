package content

// Dictionary is the base bilingual copy for a generic product page.
// Both languages are field-complete: sections never translated to Urdu
// keep their English text, filled in at construction time.
type Dictionary struct {
	byLang map[Lang]Content
}

// Base returns the base content for a language. The returned value is a
// copy of the top-level struct; callers must not mutate the shared
// slices it references.
func (d *Dictionary) Base(l Lang) Content {
	if c, ok := d.byLang[l]; ok {
		return c
	}
	return d.byLang[English]
}

// DefaultDictionary builds the TPH base copy.
func DefaultDictionary() *Dictionary {
	en := englishContent()

	ur := en // start from English, translate section by section
	ur.Problems = Problems{
		Title:    "🧠 آج کل مردوں کو درپیش عام مسائل",
		Subtitle: "لاکھوں مرد خاموشی سے ان مسائل سے جدوجہد کرتے ہیں — لیکن آپ کو ایسا کرنے کی ضرورت نہیں ہے۔",
		List: []string{
			"جلد انزال (پی۔ای)",
			"نامردی (ای۔ڈی)",
			"کم جنسی خواہش",
			"کم ٹیسٹوسٹیرون کی سطح",
			"کمزوری، تھکاوٹ اور تناؤ",
			"اعتماد کی کمی اور ازدواجی مسائل",
		},
		Solution: "🔥 بی-میکس مین فطری طور پر آپ کی مدد کرتا ہے تاکہ آپ پُر اعتماد زندگی گزار سکیں۔",
	}
	ur.Ingredients = Ingredients{
		Title:    "🌿 جڑی بوٹیوں کی طاقت۔ سائنس کی تائید شدہ۔",
		Subtitle: "15+ عالمی شہرت یافتہ جڑی بوٹیوں کا طاقتور مرکب، صدیوں سے قابل اعتماد",
		List: []Ingredient{
			{Name: "ٹونگکت علی", Benefit: "قدرتی ٹیسٹوسٹیرون بوسٹر"},
			{Name: "ماکا روٹ", Benefit: "زرخیزی اور توانائی میں اضافہ"},
			{Name: "اشواگندھا", Benefit: "تناؤ کم کرتا ہے، طاقت بڑھاتا ہے"},
			{Name: "سفید موصلی", Benefit: "کارکردگی کو بڑھاتا ہے"},
			{Name: "شلاجیت", Benefit: "حتمی طاقت اور استقامت"},
			{Name: "کوریائی لال جنسنگ", Benefit: "جسمانی اور ذہنی برداشت"},
		},
		Natural: "✅ 100% قدرتی | کوئی کیمیکل نہیں | کوئی سائیڈ ایفیکٹ نہیں",
	}
	ur.Benefits = Benefits{
		Title: "📊 جن نتائج کی آپ توقع کر سکتے ہیں",
		List: []BenefitItem{
			{
				Text:           "قدرتی طور پر ٹیسٹوسٹیرون اور استقامت میں اضافہ",
				Image:          "/images/Boost testosterone & stamina naturally.jpg",
				Alt:            "مردوں کے لیے قدرتی ٹیسٹوسٹیرون بوسٹر سپلیمنٹ جو استقامت اور توانائی میں اضافہ کرتا ہے",
				Title:          "قدرتی طور پر ٹیسٹوسٹیرون اور استقامت میں اضافہ - بی میکس مین رائل جڑی بوٹیوں کا سپلیمنٹ",
				SEODescription: "قدرتی جڑی بوٹیوں کا فارمولا جو ٹیسٹوسٹیرون کی سطح بڑھاتا ہے اور مردانہ طاقت کے لیے استقامت بہتر بناتا ہے",
			},
			{
				Text:           "بہتر استحکام اور جنسی کارکردگی",
				Image:          "/images/Improved erections & sexual performance.jpg",
				Alt:            "بہتر استحکام اور جنسی کارکردگی کے لیے قدرتی مردانہ سپلیمنٹ",
				Title:          "بہتر استحکام اور جنسی کارکردگی - قدرتی مردانہ بہتری",
				SEODescription: "جڑی بوٹیوں کا سپلیمنٹ جو قدرتی طور پر مردانہ استحکام اور جنسی کارکردگی کو بہتر بناتا ہے",
			},
			{
				Text:           "متوازن ہارمونز اور بہتر مزاج",
				Image:          "/images/Balanced hormones & better mood.jpg",
				Alt:            "مردوں کے لیے ہارمون متوازن کرنے والا سپلیمنٹ جو مزاج اور جذباتی صحت بہتر بناتا ہے",
				Title:          "متوازن ہارمونز اور بہتر مزاج - مردوں کے لیے قدرتی ہارمون سپورٹ",
				SEODescription: "قدرتی جڑی بوٹیوں کا فارمولا جو مردانہ ہارمونز کو متوازن کرتا ہے اور مزاج و جذباتی استحکام بہتر بناتا ہے",
			},
			{
				Text:           "تناؤ اور اضطراب میں کمی",
				Image:          "/images/Decreased stress & anxiety.jpg",
				Alt:            "مردوں کے لیے تناؤ کم کرنے والا سپلیمنٹ جو اضطراب کم کرتا ہے اور ذہنی صحت بہتر بناتا ہے",
				Title:          "تناؤ اور اضطراب میں کمی - مردوں کے لیے قدرتی تناؤ کا علاج",
				SEODescription: "موافقت پذیر جڑی بوٹیاں جو قدرتی طور پر تناؤ اور اضطراب کم کرتی ہیں اور ذہنی وضاحت فراہم کرتی ہیں",
			},
			{
				Text:           "تولیدی صلاحیت میں اضافہ",
				Image:          "/images/Higher sperm count & improved fertility.jpg",
				Alt:            "مردانہ زرخیزی کا سپلیمنٹ جو سپرم کاؤنٹ بڑھاتا ہے اور تولیدی صحت بہتر بناتا ہے",
				Title:          "تولیدی صلاحیت میں اضافہ - قدرتی مردانہ زرخیزی کی سپورٹ",
				SEODescription: "قدرتی جڑی بوٹیوں کا سپلیمنٹ جو سپرم کاؤنٹ بڑھا کر مردانہ زرخیزی اور تولیدی صحت بہتر بناتا ہے",
			},
			{
				Text:           "اعتماد اور توانائی میں اضافہ",
				Image:          "/images/Enhanced confidence & energy.jpg",
				Alt:            "مردوں کے لیے توانائی بڑھانے والا سپلیمنٹ جو اعتماد اور طاقت میں اضافہ کرتا ہے",
				Title:          "اعتماد اور توانائی میں اضافہ - مردوں کے لیے قدرتی توانائی بوسٹر",
				SEODescription: "جڑی بوٹیوں کا توانائی سپلیمنٹ جو اعتماد بڑھاتا ہے، توانائی کی سطح بہتر بناتا ہے اور مجموعی مردانہ طاقت بڑھاتا ہے",
			},
		},
	}
	ur.Usage = Usage{
		Title:  "💊 خوراک اور استعمال کی ہدایات",
		Dosage: UsageEntry{Title: "خوراک", Text: "رات کو 1 کیپسول (سونے سے پہلے)"},
		Course: UsageEntry{Title: "کورس کی مدت", Text: "مکمل نتائج کے لیے 3 ماہ کا کورس"},
		Best:   UsageEntry{Title: "بہترین نتائج", Text: "ٹھنڈے مشروبات، تمباکو نوشی اور تلے ہوئے کھانوں سے پرہیز کریں"},
	}
	ur.CompanyName = "دی پلانر ہربل انٹرنیشنل (ٹی پی ایچ انٹ)"

	return &Dictionary{byLang: map[Lang]Content{
		English: en,
		Urdu:    ur,
	}}
}

func englishContent() Content {
	return Content{
		Hero: Hero{
			Badge:              "#1 in Pakistan",
			Title:              "Royal Special Treatment",
			Subtitle:           "💪 Natural Male Power – Reimagined for the Modern Man",
			Features:           []string{"Boost Performance", "Restore Confidence", "Live Strong"},
			Trusted:            "Trusted by thousands",
			SpecialPrice:       "Special Price",
			SpecialPriceAmount: "2,500",
			Delivery:           "🚚 Free Delivery | 💰 Cash on Delivery",
			Image:              "/images/B-Maxman Royal Special Treatment.png",
		},
		Problems: Problems{
			Title:    "🧠 Common Problems Men Face Today",
			Subtitle: "Millions of men silently struggle with these issues — but you don't have to.",
			List: []string{
				"Premature Ejaculation (P.E)",
				"Erectile Dysfunction (E.D)",
				"Low Libido or Drive",
				"Low Testosterone Levels",
				"Weakness, Fatigue & Stress",
				"Poor Confidence & Marital Issues",
			},
			Solution: "🔥 B-Maxman fights back naturally – so you can live confidently.",
		},
		BeforeAfter: BeforeAfter{
			Title:    "Real Results, Real Men",
			Subtitle: "See the difference B-Maxman has made in the lives of men across Pakistan",
		},
		Ingredients: Ingredients{
			Title:    "🌿 Herbal Power. Backed by Science.",
			Subtitle: "A potent blend of 15+ world-renowned herbal ingredients, trusted for centuries",
			List: []Ingredient{
				{Name: "Tongkat Ali", Benefit: "Natural testosterone booster"},
				{Name: "Maca Root", Benefit: "Improves fertility & energy"},
				{Name: "Ashwagandha", Benefit: "Reduces stress, boosts strength"},
				{Name: "Safed Musli", Benefit: "Enhances performance"},
				{Name: "Shilajit", Benefit: "Ultimate strength & stamina"},
				{Name: "Korean Red Ginseng", Benefit: "Physical & mental endurance"},
			},
			Natural: "✅ 100% Natural | No Chemicals | No Side Effects",
		},
		Benefits: Benefits{
			Title: "📊 Results You Can Expect",
			List: []BenefitItem{
				{
					Text:           "Boost testosterone & stamina naturally",
					Image:          "/images/Boost testosterone & stamina naturally.jpg",
					Alt:            "Natural testosterone booster supplement for men showing increased stamina and energy levels",
					Title:          "Boost Testosterone & Stamina Naturally - B-Maxman Royal Herbal Supplement",
					SEODescription: "Natural herbal formula that boosts testosterone levels and enhances stamina for improved male vitality and performance",
				},
				{
					Text:           "Improved erections & sexual performance",
					Image:          "/images/Improved erections & sexual performance.jpg",
					Alt:            "Male enhancement supplement for better erections and improved sexual performance",
					Title:          "Improved Erections & Sexual Performance - Natural Male Enhancement",
					SEODescription: "Herbal supplement that naturally improves erectile function and enhances sexual performance for men",
				},
				{
					Text:           "Balanced hormones & better mood",
					Image:          "/images/Balanced hormones & better mood.jpg",
					Alt:            "Hormone balancing supplement for men showing improved mood and emotional well-being",
					Title:          "Balanced Hormones & Better Mood - Natural Hormone Support for Men",
					SEODescription: "Natural herbal formula that helps balance male hormones and improves mood and emotional stability",
				},
				{
					Text:           "Decreased stress & anxiety",
					Image:          "/images/Decreased stress & anxiety.jpg",
					Alt:            "Stress relief supplement for men showing reduced anxiety and improved mental health",
					Title:          "Decreased Stress & Anxiety - Natural Stress Relief for Men",
					SEODescription: "Adaptogenic herbs that naturally reduce stress and anxiety while promoting mental clarity and calmness",
				},
				{
					Text:           "Higher sperm count & improved fertility",
					Image:          "/images/Higher sperm count & improved fertility.jpg",
					Alt:            "Male fertility supplement showing increased sperm count and improved reproductive health",
					Title:          "Higher Sperm Count & Improved Fertility - Natural Male Fertility Support",
					SEODescription: "Natural herbal supplement that enhances male fertility by increasing sperm count and improving reproductive health",
				},
				{
					Text:           "Enhanced confidence & energy",
					Image:          "/images/Enhanced confidence & energy.jpg",
					Alt:            "Energy booster supplement for men showing increased confidence and vitality",
					Title:          "Enhanced Confidence & Energy - Natural Energy Booster for Men",
					SEODescription: "Herbal energy supplement that boosts confidence, increases energy levels and enhances overall male vitality",
				},
			},
		},
		Testimonials: Testimonials{
			Title:    "What Our Customers Say",
			Subtitle: "Join thousands of satisfied men who have transformed their lives",
			List: []Testimonial{
				{ID: 1, Name: "Ahmed K.", Age: 42, Location: "Karachi", Rating: 5, Text: "After 3 weeks my energy levels and confidence have completely transformed. My wife has noticed the difference too!"},
				{ID: 2, Name: "Fahad M.", Age: 38, Location: "Lahore", Rating: 5, Text: "I tried many products before, but this is the only one that actually delivered results. Highly recommended for any man over 35."},
				{ID: 3, Name: "Usman R.", Age: 45, Location: "Islamabad", Rating: 5, Text: "The natural ingredients made me feel comfortable trying it. After 2 months, I feel like I'm in my 20s again. Thank you!"},
			},
		},
		Usage: Usage{
			Title:  "💊 Dosage & Usage Instructions",
			Dosage: UsageEntry{Title: "Dosage", Text: "1 capsule at night (before bed)"},
			Course: UsageEntry{Title: "Course Duration", Text: "3-month course for full results"},
			Best:   UsageEntry{Title: "Best Results", Text: "Avoid cold drinks, smoking & fried food"},
		},
		Pricing: Pricing{
			Title:    "Affordable Packages",
			Subtitle: "Choose the package that works best for you",
			Popular:  "POPULAR",
			Save:     "Save Rs",
			Packages: []Package{
				{
					Title: "1 Month Pack",
					Price: 2500,
					Features: []string{
						"1 Bottle of B-Maxman Royal",
						"Free Delivery",
						"Cash on Delivery",
						"24/7 Customer Support",
					},
				},
				{
					Title:      "2 Month Pack",
					Price:      4500,
					SaveAmount: 500,
					Features: []string{
						"2 Bottles of B-Maxman Royal",
						"Free Delivery",
						"Cash on Delivery",
						"24/7 Customer Support",
						"Save Rs 500",
					},
				},
				{
					Title:      "3 Month Complete Course",
					Price:      6000,
					SaveAmount: 1500,
					Features: []string{
						"3 Bottles of B-Maxman Royal",
						"Free Delivery",
						"Cash on Delivery",
						"24/7 Customer Support",
						"<strong>Save Rs 1500</strong>",
						"Best Value",
					},
				},
			},
		},
		OrderForm: OrderForm{
			Title:              "🛍️ Order Now - Cash on Delivery",
			Subtitle:           "Your confidence is one call away!",
			Name:               "Full Name",
			NamePlaceholder:    "Enter your full name",
			Phone:              "Phone Number",
			Address:            "Complete Address",
			AddressPlaceholder: "House #, Street, Area",
			City:               "City",
			CityPlaceholder:    "Enter your city",
			Quantity:           "Quantity",
			QuantityOptions: []string{
				"1 Bottle - Rs 2,500",
				"2 Bottles - Rs 4,500",
				"3 Bottles - Rs 6,000",
			},
			Total:           "Total",
			FreeDelivery:    "Free Delivery | Cash on Delivery",
			OrderButton:     "Order via WhatsApp",
			SameDayDelivery: "Same-day delivery in Karachi",
		},
		FAQ: FAQ{
			Title:    "Frequently Asked Questions",
			Subtitle: "Answers to the most common questions about our herbal products",
			Items: []FAQItem{
				{Question: "Is this product herbal and safe?", Answer: "Yes, it is a 100% herbal, natural blend with no harmful side effects."},
				{Question: "How soon will I see results?", Answer: "With regular use, noticeable results usually appear within 3–4 weeks."},
				{Question: "Is delivery available in Pakistan?", Answer: "Yes, we offer nationwide delivery across Pakistan with cash on delivery."},
				{Question: "How can I place an order?", Answer: "Use the order form on the page or contact us on WhatsApp to place your order."},
			},
		},
		Footer:      Footer{Rights: "All rights reserved."},
		CompanyName: "The Planner Herbal International (TPH Int.)",
	}
}
