package content

// Lang selects the display language. English is the primary language;
// Urdu is the secondary one.
type Lang string

const (
	English Lang = "en"
	Urdu    Lang = "ur"
)

// ParseLang maps a raw tag to a supported language, defaulting to English.
func ParseLang(s string) Lang {
	if s == string(Urdu) {
		return Urdu
	}
	return English
}

// Content is the fully resolved copy for one product page. Every field
// is populated after resolution; nothing downstream has to nil-check.
type Content struct {
	Hero         Hero         `json:"hero"`
	Problems     Problems     `json:"problems"`
	BeforeAfter  BeforeAfter  `json:"beforeAfter"`
	Ingredients  Ingredients  `json:"ingredients"`
	Benefits     Benefits     `json:"benefits"`
	Testimonials Testimonials `json:"testimonials"`
	Usage        Usage        `json:"usage"`
	Pricing      Pricing      `json:"pricing"`
	OrderForm    OrderForm    `json:"orderForm"`
	FAQ          FAQ          `json:"faq"`
	Footer       Footer       `json:"footer"`
	CompanyName  string       `json:"companyName"`
}

type Hero struct {
	Badge              string   `json:"badge"`
	Title              string   `json:"title"`
	Subtitle           string   `json:"subtitle"`
	Features           []string `json:"features"`
	Trusted            string   `json:"trusted"`
	SpecialPrice       string   `json:"specialPrice"`
	SpecialPriceAmount string   `json:"specialPriceAmount"`
	Delivery           string   `json:"delivery"`
	Image              string   `json:"image"`
}

type Problems struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	List     []string `json:"list"`
	Solution string   `json:"solution"`
}

type BeforeAfter struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type Ingredient struct {
	Name    string `json:"name"`
	Benefit string `json:"benefit"`
	Image   string `json:"image,omitempty"`
}

type Ingredients struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	List     []Ingredient `json:"list"`
	Natural  string       `json:"natural"`
}

type BenefitItem struct {
	Text           string `json:"text"`
	Image          string `json:"image,omitempty"`
	Alt            string `json:"alt,omitempty"`
	Title          string `json:"title,omitempty"`
	SEODescription string `json:"seoDescription,omitempty"`
}

type Benefits struct {
	Title string        `json:"title"`
	List  []BenefitItem `json:"list"`
}

type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
}

type Testimonials struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	List     []Testimonial `json:"list"`
}

type UsageEntry struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type Usage struct {
	Title  string     `json:"title"`
	Dosage UsageEntry `json:"dosage"`
	Course UsageEntry `json:"course"`
	Best   UsageEntry `json:"best"`
}

type Package struct {
	Title       string   `json:"title"`
	HeaderTitle string   `json:"headerTitle,omitempty"`
	Price       int      `json:"price,omitempty"`
	SaveAmount  int      `json:"saveAmount,omitempty"`
	Features    []string `json:"features"`
}

type Pricing struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Popular  string    `json:"popular"`
	Save     string    `json:"save"`
	Packages []Package `json:"packages"`
}

type OrderForm struct {
	Title              string   `json:"title"`
	Subtitle           string   `json:"subtitle"`
	Name               string   `json:"name"`
	NamePlaceholder    string   `json:"namePlaceholder"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	AddressPlaceholder string   `json:"addressPlaceholder"`
	City               string   `json:"city"`
	CityPlaceholder    string   `json:"cityPlaceholder"`
	Quantity           string   `json:"quantity"`
	QuantityOptions    []string `json:"quantityOptions"`
	Total              string   `json:"total"`
	FreeDelivery       string   `json:"freeDelivery"`
	OrderButton        string   `json:"orderButton"`
	SameDayDelivery    string   `json:"sameDayDelivery"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQ struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Items    []FAQItem `json:"items"`
}

type Footer struct {
	Rights string `json:"rights"`
}
