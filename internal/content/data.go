package content

// Per-product override tables, keyed by product slug. Partial by
// design: anything left nil falls through to the dictionary.

// DefaultOverrides builds the TPH product override set.
func DefaultOverrides() map[string]*ProductOverride {
	return map[string]*ProductOverride{
		"b-maxman-royal-special-treatment": {
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:    str("B-Maxman Royal Special Treatment"),
					Subtitle: str("Premium herbal formula for enhanced performance and vitality"),
					Badge:    str("BEST SELLER"),
				},
				Problems: &ProblemsOverride{
					Solution: str("B-Maxman Royal Special Treatment is the ultimate solution you've been looking for!"),
				},
				Benefits: &BenefitsOverride{
					Title: str("Benefits of B-Maxman Royal Special Treatment"),
				},
			},
			Urdu: &SectionOverrides{
				Problems: &ProblemsOverride{
					Solution: str("بی میکس مین رائل اسپیشل ٹریٹمنٹ وہ بہترین حل ہے جس کی آپ تلاش کر رہے تھے!"),
				},
				Benefits: &BenefitsOverride{
					Title: str("بی میکس مین رائل سپیشل ٹریٹمنٹ کے فوائد"),
				},
			},
		},

		"b-maxtime-super-active": {
			ForceEnglishPricing: true,
			UnitSingular:        "Pack",
			UnitPlural:          "Packs",
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:              str("B-Maxtime Super Active"),
					Subtitle:           str("Instant Power, Lasting Confidence"),
					Badge:              str("BEST SELLER"),
					SpecialPriceAmount: str("1,200 (10 Capsules)"),
					Image:              str("https://i.ibb.co/HLKYt3XP/Slim-n-Shape-Herbal-Tea.png"),
					Features: []string{
						"Boost quick stamina & vitality",
						"Restore lost passion & libido",
						"100% Herbal & Safe Formula",
						"Instant results with lasting control",
						"Trusted by thousands of men",
					},
				},
				Problems: &ProblemsOverride{
					Title: str("Common Problems in Men"),
					List: []string{
						"Weak erection & low stamina",
						"Premature ejaculation",
						"Erectile dysfunction (E.D)",
						"Low desire & poor performance",
						"Lack of confidence",
						"Fatigue & reduced vigor",
					},
					Solution: str("B-Maxtime Super Active is the natural solution you've been looking for!"),
				},
				BeforeAfter: &BeforeAfterOverride{
					Title:    str("Real Results, Real People"),
					Subtitle: str("See the difference B-Maxtime Super Active has made in the lives of men across Pakistan."),
				},
				Ingredients: &IngredientsOverride{
					Title: str("Ingredients / Backed by Science"),
					List: []Ingredient{
						{Name: "Catuba Bark", Benefit: "Brazilian aphrodisiac – boosts libido, reduces fatigue, improves mood & memory."},
						{Name: "Damiana", Benefit: "Mayan herb – enhances blood flow, supports erection, relieves depression & nervousness."},
						{Name: "Yohimbe Bark", Benefit: "African powerhouse – sustains erection, boosts stamina, enhances circulation & libido."},
					},
				},
				Benefits: &BenefitsOverride{
					Title: str("Benefits of B-Maxtime Super Active"),
					List: []BenefitItem{
						{Text: "Quick stamina & long-lasting performance"},
						{Text: "Strong erections with full control"},
						{Text: "Blissful, electrifying experience"},
						{Text: "Improved blood circulation"},
						{Text: "100% Herbal & No Side Effects"},
						{Text: "Safe for Diabetic & BP Patients"},
					},
				},
				Testimonials: []Testimonial{
					{ID: 1, Name: "Ahsan R.", Age: 34, Location: "Lahore", Rating: 5, Text: "3 weeks me noticeable farq. Energy zyada, control behtareen. B-Maxtime Super Active ne meri confidence wapas dila di."},
					{ID: 2, Name: "Imran K.", Age: 41, Location: "Karachi", Rating: 5, Text: "Initially skeptical tha, lekin 4th week tak stamina aur mood dono improved. No side effects — highly recommend."},
					{ID: 3, Name: "Usman S.", Age: 29, Location: "Islamabad", Rating: 4, Text: "Quick boost milta hai aur lasting control bhi. Partner bhi khush — overall great experience."},
				},
				Usage: &UsageOverride{
					Title:  str("Dosage & Usage Instructions"),
					Dosage: &UsageEntryOverride{Text: str("Take 1 capsule with warm milk 2 hours before activity.")},
				},
				Pricing: &PricingOverride{
					Title:    str("Affordable Packages"),
					Subtitle: str("Choose the pack that works best for you:"),
					Packages: []PackageOverride{
						{
							Title:       str("1 Pack (10 Capsules) – Rs. 1200"),
							HeaderTitle: str("1 Pack"),
							Price:       num(1200),
							Features:    []string{"10 Capsules", "Cash on Delivery", "Free Consultation"},
						},
						{
							Title:       str("2 Packs – Rs. 2000"),
							HeaderTitle: str("2 Packs"),
							Price:       num(2000),
							Features:    []string{"20 Capsules", "Cash on Delivery", "Free Consultation"},
						},
						{
							Title:       str("3 Packs – Rs. 3000"),
							HeaderTitle: str("3 Packs"),
							Price:       num(3000),
							Features:    []string{"30 Capsules", "Cash on Delivery", "Free Consultation"},
						},
					},
				},
				FAQ: &FAQOverride{
					Title: str("FAQs – B-Maxtime Super Active"),
					Items: []FAQItem{
						{Question: "What is B-Maxtime Super Active used for?", Answer: "These capsules naturally boost stamina, energy, and overall performance."},
						{Question: "Any side effects?", Answer: "It is a 100% herbal and safe formula with no harmful side effects."},
						{Question: "How to take it?", Answer: "Take 1–2 capsules daily with water, as per doctor's advice or on-pack instructions."},
						{Question: "How soon will I see results?", Answer: "With regular use, noticeable results usually appear within 3–4 weeks."},
						{Question: "Is it suitable for all age groups?", Answer: "It is safe for adults 18 years and above."},
						{Question: "Can I use it with other medicines?", Answer: "If you are under medical treatment, please consult your doctor before use."},
						{Question: "Are the results permanent?", Answer: "Regular use helps naturally improve lifestyle and stamina; consistency is important to maintain results."},
						{Question: "Is B-Maxtime Super Active available in Pakistan?", Answer: "Yes, it is available nationwide with delivery across Pakistan."},
						{Question: "How long does one bottle last?", Answer: "One bottle contains capsules that typically last around 30 days on average."},
						{Question: "How can I place an order?", Answer: "Click the \"Order Now\" button on the website or call our helpline to place your order."},
					},
				},
			},
			Urdu: &SectionOverrides{
				Ingredients: &IngredientsOverride{
					Title: str("اجزاء / سائنسی طور پر ثابت شدہ"),
					List: []Ingredient{
						{Name: "کاٹوبا بارک", Benefit: "برازیلی جڑی بوٹی — خواہش بڑھائے، تھکاوٹ کم کرے، موڈ اور یادداشت بہتر کرے۔"},
						{Name: "ڈیمِیانا", Benefit: "مایان جڑی بوٹی — خون کی روانی بہتر، اریکشن میں مدد، ڈپریشن اور گھبراہٹ میں کمی۔"},
						{Name: "یوہِمبے بارک", Benefit: "افریقی طاقت — مضبوط اریکشن برقرار، اسٹیمنا میں اضافہ، دورانِ خون اور خواہش بہتر۔"},
					},
				},
				Benefits: &BenefitsOverride{
					List: []BenefitItem{
						{Text: "فوراً اسٹیمنا اور طویل کارکردگی"},
						{Text: "مضبوط اریکشن مکمل کنٹرول کے ساتھ"},
						{Text: "خوشگوار اور بجلی جیسا طاقتور تجربہ"},
						{Text: "خون کی روانی میں بہتری"},
						{Text: "۱۰۰٪ ہربل اور بغیر کسی سائیڈ ایفیکٹس کے"},
						{Text: "شوگر اور بلڈ پریشر کے مریضوں کے لیے محفوظ"},
					},
				},
				// Ignored while ForceEnglishPricing is set; kept as authored.
				Pricing: &PricingOverride{
					Title:    str("سستی پیکجز"),
					Subtitle: str("اپنے لیے بہترین پیکج منتخب کریں:"),
					Packages: []PackageOverride{
						{Title: str("1 پیک (10 کیپسول) – 1200 روپے"), HeaderTitle: str("1 پیک"), Price: num(1200)},
						{Title: str("2 پیکس – 2000 روپے"), HeaderTitle: str("2 پیکس"), Price: num(2000)},
						{Title: str("3 پیکس – 3000 روپے"), HeaderTitle: str("3 پیکس"), Price: num(3000)},
					},
				},
				FAQ: &FAQOverride{
					Title:    str("FAQs – بی میکس ٹائم سوپر ایکٹو"),
					Subtitle: str("بی میکس ٹائم سوپر ایکٹو کے بارے میں عام سوالات کے مستند جوابات"),
					Items: []FAQItem{
						{Question: "بی میکس ٹائم سوپر ایکٹو کس چیز کے لیے استعمال ہوتا ہے؟", Answer: "یہ کیپسولز اسٹیمنا، توانائی اور مجموعی کارکردگی کو قدرتی طور پر بہتر بناتے ہیں۔"},
						{Question: "کیا اس پروڈکٹ کے کوئی ضمنی اثرات ہیں؟", Answer: "یہ 100% ہربل اور محفوظ فارمولا ہے، کوئی نقصان دہ سائیڈ ایفیکٹس نہیں۔"},
						{Question: "اسے کیسے لینا چاہیے؟", Answer: "روزانہ 1–2 کیپسول پانی کے ساتھ، ڈاکٹر یا ہدایات کے مطابق استعمال کریں۔"},
						{Question: "کتنے عرصے میں نتائج نظر آتے ہیں؟", Answer: "باقاعدہ استعمال کے 3–4 ہفتوں میں نمایاں نتائج سامنے آنا شروع ہو جاتے ہیں۔"},
						{Question: "کیا یہ ہر عمر کے لیے موزوں ہے؟", Answer: "یہ 18 سال سے اوپر کے بالغ افراد کے لیے محفوظ ہے۔"},
						{Question: "آرڈر کیسے کرنا ہے؟", Answer: "ویب سائٹ پر \"Order Now\" بٹن دبائیں یا ہیلپ لائن پر کال کر کے آرڈر کریں۔"},
					},
				},
			},
		},

		"slim-n-shape-garcinia-cambogia-capsules": {
			ForceEnglishPricing: true,
			UnitSingular:        "Month Pack",
			UnitPlural:          "Months Pack",
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:              str("Slim n Shape Garcinia Cambogia Capsules"),
					Subtitle:           str("Best Herbal Weight Loss Capsules in Pakistan | Natural Belly Fat Burner | Metabolism Booster for Men & Women"),
					Badge:              str("WEIGHT LOSS"),
					SpecialPriceAmount: str("2,000"),
					Image:              str("https://i.ibb.co/GfYCr9z9/Slim-n-Shape-Garcinia-Cambogia-Capsules.png"),
					Features: []string{
						"Burn Belly Fat Naturally",
						"Control Appetite & Cravings",
						"Boost Energy & Metabolism",
					},
				},
				Problems: &ProblemsOverride{
					Title:    str("Common Problems People Face Today"),
					Subtitle: str("Millions of men & women in Pakistan silently struggle with these issues — but you don't have to:"),
					List: []string{
						"Stubborn Belly Fat",
						"Slow Metabolism",
						"Overeating & Cravings",
						"Stress-Related Eating",
						"High Appetite Levels",
						"Low Energy & Weak Digestion",
					},
					Solution: str("🔑 Slim n Shape Garcinia Cambogia is the natural solution you've been looking for!"),
				},
				BeforeAfter: &BeforeAfterOverride{
					Title: str("Real Results, Real People"),
				},
				Ingredients: &IngredientsOverride{
					Title:    str("Why Garcinia Cambogia Works (Backed by Science)"),
					Subtitle: str("Slim n Shape is powered by Garcinia Cambogia, one of the most effective natural fat burners in the world. Its active compound Hydroxycitric Acid (HCA):"),
					List: []Ingredient{
						{Name: "HCA", Benefit: "Blocks fat production"},
						{Name: "HCA", Benefit: "Suppresses appetite naturally"},
						{Name: "HCA", Benefit: "Enhances metabolism & energy"},
						{Name: "HCA", Benefit: "Improves digestion & bowel movement"},
						{Name: "HCA", Benefit: "Reduces stress-related eating"},
					},
					Natural: str("🌿 100% Herbal | ✅ Scientifically Proven | 🔒 Safe & Effective"),
				},
				Benefits: &BenefitsOverride{
					Title: str("Benefits of Slim n Shape Garcinia Cambogia"),
					List: []BenefitItem{
						{
							Text:           "🔥 Accelerates fat burn & metabolism naturally",
							Image:          "/images/Slim n Shape Garcinia.png",
							Alt:            "Natural belly fat burner and metabolism booster - Slim n Shape Garcinia Cambogia",
							Title:          "Accelerates Natural Fat Burn & Metabolism - Slim n Shape Garcinia Cambogia",
							SEODescription: "Herbal Garcinia Cambogia capsules that naturally accelerate fat burning and boost metabolism for safe weight loss",
						},
						{
							Text:           "🍽 Reduces hunger & controls cravings effectively",
							Image:          "/images/Slim n Shape Garcinia.png",
							Alt:            "Appetite suppressant and craving control with Garcinia Cambogia",
							Title:          "Reduces Hunger & Controls Cravings - Slim n Shape Garcinia Cambogia",
							SEODescription: "Natural appetite control that helps reduce hunger and manage food cravings effectively",
						},
						{
							Text:           "💖 Supports healthy cholesterol & blood pressure",
							Image:          "/images/Slim n Shape Garcinia.png",
							Alt:            "Supports healthy cholesterol and blood pressure levels",
							Title:          "Supports Healthy Cholesterol & Blood Pressure",
							SEODescription: "Garcinia Cambogia may support healthy lipid profile and blood pressure as part of a balanced lifestyle",
						},
						{
							Text:           "🧠 Improves focus & balances emotional eating",
							Image:          "/images/Slim n Shape Garcinia.png",
							Alt:            "Improves focus and helps balance emotional eating habits",
							Title:          "Improves Focus & Balances Emotional Eating",
							SEODescription: "Natural support to improve focus and reduce stress-related emotional eating",
						},
						{
							Text:           "🌿 100% natural weight loss with no side effects",
							Image:          "/images/Slim n Shape Garcinia.png",
							Alt:            "100% natural herbal weight loss with no known side effects",
							Title:          "100% Natural Weight Loss - No Side Effects",
							SEODescription: "Herbal, chemical-free formula designed for safe and natural weight loss",
						},
						{
							Text:           "✅ Helps men & women burn belly fat safely",
							Image:          "/images/Slim n Shape Garcinia.png",
							Alt:            "Safe belly fat burner for men and women",
							Title:          "Safe Belly Fat Burner for Men & Women",
							SEODescription: "Suitable for both men and women to burn belly fat safely with natural ingredients",
						},
					},
				},
				Testimonials: []Testimonial{
					{ID: 101, Name: "Sara A.", Age: 29, Location: "Lahore", Rating: 5, Text: "\"I lost stubborn belly fat and felt active all day – no crash diets, no weakness!\""},
					{ID: 102, Name: "Ali R.", Age: 34, Location: "Karachi", Rating: 5, Text: "\"My cravings reduced in just 2 weeks and I feel lighter & more energetic!\""},
					{ID: 103, Name: "Hira K.", Age: 31, Location: "Islamabad", Rating: 5, Text: "\"Finally found a herbal solution that works without side effects.\""},
				},
				Usage: &UsageOverride{
					Title:  str("Dosage & Usage Instructions"),
					Dosage: &UsageEntryOverride{Text: str("1 capsule in the morning (empty stomach). 2 capsules at night (with Slim n Shape Herbal Tea for best results)")},
					Course: &UsageEntryOverride{Text: str("3 month course recommended for full results")},
					Best:   &UsageEntryOverride{Text: str("Follow a light diet & moderate activity. Avoid oily & junk food")},
				},
				Pricing: &PricingOverride{
					Subtitle: str("Choose the pack that works best for you:"),
					Packages: []PackageOverride{
						{
							Title:       str("1 Month Pack – Rs. 2000"),
							HeaderTitle: str("1 Month Pack"),
							Price:       num(2000),
							Features: []string{
								"90 Herbal Capsules",
								"Free Delivery",
								"Cash on Delivery",
								"Free Herbal Consultation",
							},
						},
						{
							Title:       str("2 Month Pack – Rs. 3800 (Save Rs. 200)"),
							HeaderTitle: str("2 Month Pack"),
							Price:       num(3800),
							SaveAmount:  num(200),
							Features: []string{
								"180 Herbal Capsules",
								"Free Delivery",
								"Cash on Delivery",
								"24/7 Support",
							},
						},
						{
							Title:       str("3 Month Pack – Rs. 5500 (Best Value – Save Rs. 500)"),
							HeaderTitle: str("3 Month Pack"),
							Price:       num(5500),
							SaveAmount:  num(500),
							Features: []string{
								"270 Herbal Capsules",
								"Free Delivery",
								"Cash on Delivery",
								"Free Herbal Consultation",
							},
						},
					},
				},
				FAQ: &FAQOverride{
					Title:    str("Slim n Shape Garcinia Cambogia – FAQs"),
					Subtitle: str("Get answers to the most common questions about Slim n Shape Garcinia Cambogia"),
					Items: []FAQItem{
						{Question: "Is Slim n Shape safe for men & women?", Answer: "✅ Yes, it's 100% herbal, safe & side-effect free. Both men and women can use it safely."},
						{Question: "How fast can I see results?", Answer: "📅 Visible results usually start in 3–4 weeks with regular use. Best results with a 3-month course."},
						{Question: "Do I need to diet strictly?", Answer: "❌ No strict crash diets are required — just follow a light balanced diet & moderate activity."},
						{Question: "Does it help with belly fat specifically?", Answer: "🔥 Yes, Slim n Shape is specially formulated to target stubborn belly fat and overall body fat."},
						{Question: "Are there any side effects?", Answer: "🌿 No. It's made from 100% natural herbal ingredients and is clinically tested for safety."},
						{Question: "Can people with diabetes, BP, or cholesterol issues use this?", Answer: "👍 Yes, Garcinia Cambogia may help support healthy cholesterol & blood pressure levels, but always consult your doctor if you have medical conditions."},
						{Question: "What age group can use Slim n Shape?", Answer: "👨‍🦰👩‍🦱 It is recommended for adults 18 years and above. Not suitable for children."},
						{Question: "How should I take it for best results?", Answer: "💊 1 capsule in the morning (empty stomach) + 2 capsules at night (with Slim n Shape Herbal Tea for better results)."},
						{Question: "Can I use it with other herbal teas or medicines?", Answer: "🌿 Yes, but if you are on strong medication or under treatment, consult your healthcare provider first."},
						{Question: "Will I gain weight again after stopping?", Answer: "⚡ No, as long as you maintain a balanced diet and active lifestyle, the results are long-lasting."},
					},
				},
			},
			Urdu: &SectionOverrides{
				Problems: &ProblemsOverride{
					Title:    str("لوگوں کو درپیش عام مسائل"),
					Subtitle: str("پاکستان میں مرد و خواتین خاموشی سے ان مسائل کا سامنا کرتے ہیں — مگر آپ کو ایسا کرنے کی ضرورت نہیں:"),
					List: []string{
						"ضدی پیٹ کی چربی",
						"سست میٹابولزم",
						"زیادہ کھانا اور خواہشات",
						"ذہنی دباؤ کی وجہ سے کھانا",
						"بھوک میں غیر معمولی اضافہ",
						"کم توانائی اور کمزور ہاضمہ",
					},
				},
				Ingredients: &IngredientsOverride{
					Title:    str("گارسنیا کمبوژیا کیوں مؤثر ہے (سائنس کی روشنی میں)"),
					Subtitle: str("سلیم ن شیپ گارسنیا کمبوژیا پر مبنی ہے، جو دنیا کی مؤثر قدرتی چربی گھلانے والی جڑی بوٹیوں میں سے ایک ہے۔ اس کا فعال مرکب ہائیڈروکسی سٹرک ایسڈ (HCA):"),
					List: []Ingredient{
						{Name: "HCA", Benefit: "چربی بننے کے عمل کو روکتا ہے"},
						{Name: "HCA", Benefit: "بھوک کو قدرتی طور پر کم کرتا ہے"},
						{Name: "HCA", Benefit: "میٹابولزم اور توانائی میں اضافہ کرتا ہے"},
						{Name: "HCA", Benefit: "ہاضمہ اور آنتوں کی حرکت بہتر بناتا ہے"},
						{Name: "HCA", Benefit: "ذہنی دباؤ کی وجہ سے کھانے کی خواہش کم کرتا ہے"},
					},
				},
				Benefits: &BenefitsOverride{
					Title: str("سلیم ن شیپ گارسنیا کمبوژیا کے فوائد"),
					List: []BenefitItem{
						{Text: "🔥 قدرتی طور پر چربی گھلانے اور میٹابولزم تیز کرتا ہے"},
						{Text: "🍽 بھوک کم کرے اور خواہشات پر مؤثر طریقے سے قابو پائے"},
						{Text: "💖 صحت مند کولیسٹرول اور بلڈ پریشر کو سہارا دے"},
						{Text: "🧠 توجہ بہتر بنائے اور جذباتی کھانے کو متوازن کرے"},
						{Text: "🦴 ہڈیوں اور اعصاب کی مضبوطی میں مدد دے"},
						{Text: "🌿 سو فیصد قدرتی وزن میں کمی، بغیر سائیڈ ایفیکٹس"},
						{Text: "✅ مرد و خواتین کے لیے پیٹ کی چربی محفوظ طریقے سے کم کرے"},
					},
				},
				Usage: &UsageOverride{
					Title:  str("خوراک اور استعمال کی ہدایات"),
					Dosage: &UsageEntryOverride{Text: str("صبح خالی پیٹ 1 کیپسول، رات کو 2 کیپسول (بہتر نتائج کے لیے Slim n Shape Herbal Tea کے ساتھ)")},
					Course: &UsageEntryOverride{Text: str("مکمل نتائج کے لیے 3 ماہ کا کورس تجویز کیا جاتا ہے")},
					Best:   &UsageEntryOverride{Text: str("ہلکی متوازن غذا اور معتدل سرگرمی رکھیں۔ تیل اور جنک فوڈ سے پرہیز کریں")},
				},
				FAQ: &FAQOverride{
					Title:    str("اکثر پوچھے جانے والے سوالات"),
					Subtitle: str("سلیم ن شیپ گارسنیا کمبوژیا کے بارے میں عام سوالات اور ان کے جوابات"),
					Items: []FAQItem{
						{Question: "کیا Slim n Shape مرد و خواتین دونوں کے لیے محفوظ ہے؟", Answer: "✅ جی ہاں، یہ 100% ہربل ہے اور سائیڈ ایفیکٹس سے پاک ہے۔ مرد و خواتین دونوں باآسانی استعمال کر سکتے ہیں۔"},
						{Question: "نتائج کتنی جلدی ظاہر ہوتے ہیں؟", Answer: "📅 باقاعدگی سے استعمال پر عموماً 3–4 ہفتوں میں نتائج نظر آنا شروع ہو جاتے ہیں۔ بہترین نتائج کے لیے 3 ماہ کا کورس کریں۔"},
						{Question: "کیا سخت ڈائیٹ ضروری ہے؟", Answer: "❌ نہیں، کریش ڈائیٹ کی ضرورت نہیں۔ صرف ہلکی متوازن غذا اور معتدل سرگرمی کافی ہے۔"},
						{Question: "کیا یہ خاص طور پر پیٹ کی چربی پر اثر کرتا ہے؟", Answer: "🔥 جی ہاں، Slim n Shape ضدی پیٹ کی چربی سمیت جسم کی مجموعی چربی کو ہدف بناتا ہے۔"},
						{Question: "کیا اس کے کوئی سائیڈ ایفیکٹس ہیں؟", Answer: "🌿 نہیں۔ یہ قدرتی جڑی بوٹیوں پر مبنی ہے اور محفوظ استعمال کے لیے موزوں ہے۔"},
						{Question: "استعمال بند کرنے کے بعد دوبارہ وزن بڑھے گا؟", Answer: "⚡ نہیں، اگر آپ متوازن غذا اور ایکٹیو لائف اسٹائل برقرار رکھیں تو نتائج دیرپا رہتے ہیں۔"},
					},
				},
			},
		},

		"shahi-sultan-health-booster": {
			UnitSingular: "Pack",
			UnitPlural:   "Packs",
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:              str("Shahi Sultan Health Booster"),
					Subtitle:           str("To Live Life Powerfully / Actively / Strongly💪\nEnergetic • Men Power • Wellness in All Ages"),
					Badge:              str("PREMIUM"),
					SpecialPriceAmount: str("9,500"),
				},
				Problems: &ProblemsOverride{
					Title: str("Common Problems"),
					List: []string{
						"Low stamina & weakness",
						"Poor performance & energy drop",
						"Stress, fatigue & hormonal imbalance",
						"Age-related decline in men's power",
						"Slow muscle recovery & lack of fitness",
						"Low confidence & self-esteem issues",
					},
					Solution: str("Shahi Sultan Health Booster is the ultimate solution for powerful living!"),
				},
				Ingredients: &IngredientsOverride{
					List: []Ingredient{
						{Name: "Ginseng", Benefit: "Boosts stamina & immunity", Image: "https://i.ibb.co/nsXkZMQC/Ginseng.png"},
						{Name: "Ashwagandha", Benefit: "Reduces stress & enhances vitality", Image: "https://i.ibb.co/210D7HdN/Ashwagandha.png"},
						{Name: "Macca Root", Benefit: "Supports reproductive health & energy", Image: "https://i.ibb.co/JjGfBtfJ/Macca-Root.png"},
						{Name: "Saffron", Benefit: "Natural mood & performance enhancer", Image: "https://i.ibb.co/gLsBdgdQ/Saffron.png"},
						{Name: "Shilajit", Benefit: "Improves strength & testosterone levels", Image: "https://i.ibb.co/zTgrVH1k/Shilajit.png"},
						{Name: "Safed Musli", Benefit: "Boosts semen quality & fertility", Image: "https://i.ibb.co/4g15SC7c/Safed-Musli.png"},
						{Name: "Tribulus Terrestris", Benefit: "Supports muscle growth & endurance", Image: "https://i.ibb.co/LVJ2SDN/Tribulus-Terrestris.png"},
					},
				},
				Benefits: &BenefitsOverride{
					Title: str("Benefits of Shahi Sultan Health Booster"),
					List: []BenefitItem{
						{Text: "✅ Ultimate Wellness – energy, stamina & immunity booster", Image: "https://i.ibb.co/XfkPHQ6p/Ultimate-Wellness-energy-stamina-immunity-booster.png", Alt: "Ultimate Wellness energy stamina immunity booster", Title: "Ultimate Wellness – Energy, Stamina & Immunity Booster"},
						{Text: "✅ Athletic Performance – stronger muscles, faster recovery", Image: "https://i.ibb.co/ZRvwxPRw/Athletic-Performance-stronger-muscles-faster-recovery.png", Alt: "Athletic Performance stronger muscles faster recovery", Title: "Athletic Performance – Stronger Muscles, Faster Recovery"},
						{Text: "✅ Energy & Strength Builder – fight fatigue, build power", Image: "https://i.ibb.co/Y7Mff1r3/Energy-Strength-Builder-fight-fatigue-build-power.png", Alt: "Energy Strength Builder fight fatigue build power", Title: "Energy & Strength Builder – Fight Fatigue, Build Power"},
						{Text: "✅ Stress Relief – balanced hormones & mood lift", Image: "https://i.ibb.co/0Rcp6vpp/Stress-Relief-balanced-hormones-mood-lift.png", Alt: "Stress Relief balanced hormones mood lift", Title: "Stress Relief – Balanced Hormones & Mood Lift"},
						{Text: "✅ Re-Young – feel youthful, confident & powerful", Image: "https://i.ibb.co/2bSvL4t/Re-Young-feel-youthful-confident-powerful.png", Alt: "Re-Young feel youthful confident powerful", Title: "Re-Young – Feel Youthful, Confident & Powerful"},
						{Text: "✅ Enhanced Libido – natural desire & performance boost", Image: "https://i.ibb.co/b5SWNLWZ/Enhanced-Libido-natural-desire-performance-boost.png", Alt: "Enhanced Libido natural desire performance boost", Title: "Enhanced Libido – Natural Desire & Performance Boost"},
					},
				},
				Usage: &UsageOverride{
					Title:  str("Dosage & Usage Instructions"),
					Dosage: &UsageEntryOverride{Text: str("Take ½ teaspoon twice a day with milk or water")},
					Course: &UsageEntryOverride{Text: str("Use after meals")},
					Best:   &UsageEntryOverride{Text: str("For best results, continue 30–90 days regularly")},
				},
				Pricing: &PricingOverride{
					Title:    str("Affordable Packages / Pricing"),
					Subtitle: str("Choose the package that works best for you:"),
					Packages: []PackageOverride{
						{
							Title:       str("1 Pack"),
							HeaderTitle: str("1 Pack"),
							Price:       num(9500),
							Features: []string{
								"Free delivery all over Pakistan",
								"Secure packaging & fast shipping",
								"Cash on Delivery",
								"24/7 Customer Support",
							},
						},
						{
							Title:       str("2 Packs"),
							HeaderTitle: str("2 Packs"),
							Price:       num(18000),
							SaveAmount:  num(1000),
							Features: []string{
								"Free delivery all over Pakistan",
								"Secure packaging & fast shipping",
								"Cash on Delivery",
								"24/7 Customer Support",
							},
						},
						{
							Title:       str("3 Packs"),
							HeaderTitle: str("3 Packs"),
							Price:       num(25000),
							SaveAmount:  num(3500),
							Features: []string{
								"Free delivery all over Pakistan",
								"Secure packaging & fast shipping",
								"Cash on Delivery",
								"24/7 Customer Support",
								"Best Value",
							},
						},
					},
				},
				FAQ: &FAQOverride{
					Title:    str("Shahi Sultan Health Booster – FAQs"),
					Subtitle: str("Get answers specific to Shahi Sultan Health Booster"),
					Items: []FAQItem{
						{Question: "Who is Shahi Sultan Health Booster for?", Answer: "Specially designed for men's vitality, stamina, and overall strength."},
						{Question: "Is this herbal and safe?", Answer: "Yes, it is a 100% herbal, natural blend with no harmful side effects."},
						{Question: "How should I take it?", Answer: "Half teaspoon, twice daily, with milk or water after meals."},
						{Question: "How long should I use it?", Answer: "Use regularly for at least 30–90 days for noticeable results."},
						{Question: "Does it improve stamina and performance?", Answer: "Absolutely, it helps improve stamina, semen health, and performance naturally."},
						{Question: "Does it boost testosterone?", Answer: "Yes, its herbal ingredients help naturally enhance testosterone."},
						{Question: "Any side effects?", Answer: "No, if you follow the recommended dosage there are no harmful effects."},
						{Question: "Does it help with stress and fatigue?", Answer: "Yes, this formula helps manage stress and reduces fatigue."},
						{Question: "Is it helpful for exercise and fitness goals?", Answer: "Yes, it supports stronger muscles, a lean body, and faster recovery."},
						{Question: "Is delivery available in Pakistan?", Answer: "Yes, we offer nationwide free delivery across Pakistan."},
					},
				},
			},
			Urdu: &SectionOverrides{
				Problems: &ProblemsOverride{
					Title:    str("عام مسائل"),
					Subtitle: str("لاکھوں مرد خاموشی سے ان مسائل کا سامنا کرتے ہیں — لیکن آپ کو ایسا کرنے کی ضرورت نہیں۔"),
					List: []string{
						"کم اسٹیمنا اور کمزوری",
						"کمزور کارکردگی اور توانائی میں کمی",
						"تناؤ، تھکاوٹ اور ہارمونی عدم توازن",
						"عمر کے ساتھ مردانہ طاقت میں کمی",
						"پٹھوں کی سست بحالی اور فٹنس کی کمی",
						"کم اعتماد اور خود اعتمادی کے مسائل",
					},
				},
				Benefits: &BenefitsOverride{
					Title: str("شاہی سلطان ہیلتھ بوسٹر کے فوائد"),
				},
			},
		},

		"slim-n-shape-tea": {
			UnitSingular: "Pack",
			UnitPlural:   "Packs",
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:    str("☕ Slim n Shape Herbal Tea"),
					Subtitle: str("Weight Loss | Boosts Immunity | Stress Relief"),
					Badge:    str("WEIGHT LOSS"),
					Features: []string{
						"Premium herbal tea blend for natural weight loss & overall wellness.",
						"Burn Fat & Control Cholesterol",
						"Relieve Stress & Boost Immunity",
						"Support Digestion & Enhance Skin Glow",
						"⭐ Trusted Herbal Formula | 🌿 100% Natural Ingredients",
					},
					SpecialPriceAmount: str("999"),
				},
				Problems: &ProblemsOverride{
					Subtitle: str("Millions struggle with these issues — but you don't have to:"),
				},
				BeforeAfter: &BeforeAfterOverride{
					Subtitle: str("See the difference Slim n Shape Herbal Tea has made in the lives of people across Pakistan"),
				},
				Ingredients: &IngredientsOverride{
					Title:    str("Special Benefits of Slim n Shape Herbal Tea"),
					Subtitle: str("🌿 Herbal Power. Backed by Science. A potent blend of world-renowned herbal ingredients, trusted for centuries, specially formulated for weight loss, stress relief & immunity boost."),
					List: []Ingredient{
						{Name: "Green Tea", Benefit: "Rich in antioxidants, boosts metabolism and supports natural fat burning"},
						{Name: "Cymbopogon Citratus (Lemongrass)", Benefit: "Aids digestion, relieves bloating and calms the nervous system"},
						{Name: "Pycnanthemum (Mountain Mint)", Benefit: "Refreshing mint that supports digestion and eases stress"},
					},
				},
				Usage: &UsageOverride{
					Title:  str("Usage Directions"),
					Dosage: &UsageEntryOverride{Title: str("How to Prepare"), Text: str("Add 1 teaspoon of tea to a cup of hot water")},
					Course: &UsageEntryOverride{Title: str("Method"), Text: str("Steep for 3-5 minutes, strain and enjoy twice a day")},
					Best:   &UsageEntryOverride{Title: str("Packaging"), Text: str("100g pack, approximately one month of daily use")},
				},
				Pricing: &PricingOverride{
					Title:    str("Affordable Packages"),
					Subtitle: str("Choose the perfect package for your health journey:"),
					Packages: []PackageOverride{
						{
							Title: str("1 Pack"),
							Price: num(999),
							Features: []string{
								"100g Herbal Tea",
								"Free Delivery",
								"Cash on Delivery",
							},
						},
						{
							Title:      str("2 Packs"),
							Price:      num(1899),
							SaveAmount: num(99),
							Features: []string{
								"200g Herbal Tea",
								"Free Delivery",
								"24/7 Support",
							},
						},
						{
							Title:      str("3 Packs – (Best Value)"),
							Price:      num(2699),
							SaveAmount: num(298),
							Features: []string{
								"300g Herbal Tea",
								"Free Delivery",
								"Cash on Delivery",
							},
						},
					},
				},
			},
			Urdu: &SectionOverrides{
				Ingredients: &IngredientsOverride{
					Title:    str("سلیم اَن شیپ ہربل ٹی کے خاص فوائد"),
					Subtitle: str("🌿 قدرتی جڑی بوٹیوں کی طاقت — سائنسی طور پر ثابت شدہ۔ عالمی شہرت یافتہ اجزاء پر مشتمل، جو وزن میں کمی، ذہنی سکون اور قوتِ مدافعت بڑھانے کے لیے خاص طور پر تیار کی گئی ہے۔"),
					List: []Ingredient{
						{Name: "گرین ٹی", Benefit: "اینٹی آکسیڈنٹس سے بھرپور، میٹابولزم تیز کرے اور قدرتی چربی گھلانے میں مدد دے"},
						{Name: "سائمبوپوگن سیٹریٹس (لیمون گراس)", Benefit: "ہاضمہ بہتر بنائے، پیٹ کے پھولنے میں کمی اور اعصاب کو سکون دے"},
						{Name: "پائکنینتھم (ماؤنٹین منٹ)", Benefit: "تازگی بخش پودینہ جو ہاضمے میں مدد اور تناؤ میں کمی کرے"},
					},
				},
				Usage: &UsageOverride{
					Title:  str("استعمال کا طریقہ"),
					Dosage: &UsageEntryOverride{Title: str("تیاری کا طریقہ"), Text: str("ایک کپ گرم پانی میں ایک چائے کا چمچ چائے ڈالیں")},
					Course: &UsageEntryOverride{Title: str("طریقہ"), Text: str("3-5 منٹ تک دم دیں، چھان کر دن میں دو بار پئیں")},
					Best:   &UsageEntryOverride{Title: str("پیکجنگ"), Text: str("100 گرام پیک، تقریباً ایک ماہ کے روزانہ استعمال کے لیے")},
				},
				// Packages omit Features: each package falls back to the
				// same-index feature list of the English package set.
				Pricing: &PricingOverride{
					Title:    str("سستی پیکجز"),
					Subtitle: str("اپنی صحت کے سفر کے لیے بہترین پیکج منتخب کریں:"),
					Popular:  str("بہترین انتخاب"),
					Save:     str("بچت"),
					Packages: []PackageOverride{
						{Title: str("١ پیک"), Price: num(999)},
						{Title: str("٢ پیک"), Price: num(1899)},
						{Title: str("٣ پیک — (بہترین انتخاب)"), Price: num(2699)},
					},
				},
			},
		},

		"shahi-tila": {
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:    str("Shahi Tila"),
					Subtitle: str("Traditional herbal supplement for men's health and vitality"),
					Badge:    str("TRADITIONAL"),
				},
				Problems: &ProblemsOverride{Solution: str("Shahi Tila provides natural energy and vitality!")},
				Benefits: &BenefitsOverride{Title: str("Benefits of Shahi Tila")},
			},
			Urdu: &SectionOverrides{
				Benefits: &BenefitsOverride{Title: str("شاہی تلہ کے فوائد")},
			},
		},

		"sultan-majoon": {
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:    str("Sultan Majoon"),
					Subtitle: str("Royal herbal jam for strength and vitality"),
					Badge:    str("ENERGY BOOST"),
				},
				Problems: &ProblemsOverride{Solution: str("Sultan Majoon enhances your strength and stamina naturally!")},
				Benefits: &BenefitsOverride{Title: str("Benefits of Sultan Majoon")},
			},
			Urdu: &SectionOverrides{
				Benefits: &BenefitsOverride{Title: str("سلطان معجون کے فوائد")},
			},
		},

		"bustmax-breast-oil": {
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:    str("BustMax Breast Oil"),
					Subtitle: str("Natural breast enhancement and firming solution"),
					Badge:    str("WOMEN'S CARE"),
				},
				Problems: &ProblemsOverride{Solution: str("BustMax Breast Oil helps enhance your natural curves!")},
				Benefits: &BenefitsOverride{Title: str("Benefits of BustMax Breast Oil")},
			},
			Urdu: &SectionOverrides{
				Benefits: &BenefitsOverride{Title: str("بسٹ میکس بریسٹ آئل کے فوائد")},
			},
		},

		"g-max-passion": {
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:    str("G-Max Passion"),
					Subtitle: str("Enhance your intimate moments naturally"),
					Badge:    str("INTIMACY"),
				},
				Problems: &ProblemsOverride{Solution: str("G-Max Passion helps improve your intimate life!")},
				Benefits: &BenefitsOverride{Title: str("Benefits of G-Max Passion")},
			},
			Urdu: &SectionOverrides{
				Benefits: &BenefitsOverride{Title: str("جی میکس پاشن کے فوائد")},
			},
		},

		"malka-shahi-gold-health-booster": {
			SectionOverrides: SectionOverrides{
				Hero: &HeroOverride{
					Title:    str("Malka Shahi Gold Health Booster"),
					Subtitle: str("Premium herbal supplement for women's health"),
					Badge:    str("WOMEN'S HEALTH"),
				},
				Problems: &ProblemsOverride{Solution: str("Malka Shahi Gold supports women's health naturally!")},
				Benefits: &BenefitsOverride{Title: str("Benefits of Malka Shahi Gold")},
			},
			Urdu: &SectionOverrides{
				Benefits: &BenefitsOverride{Title: str("ملکہ شاہی گولڈ کے فوائد")},
			},
		},
	}
}
