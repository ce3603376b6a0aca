package content

import "strings"

// Site is the whole content document for the landing site. It is loaded
// once, normalized, validated and then treated as read-only.
type Site struct {
	Brand          Brand             `yaml:"brand" toml:"brand" json:"brand"`
	Links          map[string]string `yaml:"links" toml:"links" json:"links"`
	Hero           Hero              `yaml:"hero" toml:"hero" json:"hero"`
	TechTiles      TechTiles         `yaml:"tech_tiles" toml:"tech_tiles" json:"tech_tiles"`
	ProductDetails ProductDetails    `yaml:"product_details" toml:"product_details" json:"product_details"`
	Offerings      []Offering        `yaml:"offerings" toml:"offerings" json:"offerings"`
	Pricing        Pricing           `yaml:"pricing" toml:"pricing" json:"pricing"`
	Showcase       Showcase          `yaml:"showcase" toml:"showcase" json:"showcase"`
	Testimonials   Testimonials      `yaml:"testimonials" toml:"testimonials" json:"testimonials"`
	FAQ            []FAQEntry        `yaml:"faq" toml:"faq" json:"faq"`
	Stats          []Achievement     `yaml:"stats" toml:"stats" json:"stats"`
	Marquee        Marquee           `yaml:"marquee" toml:"marquee" json:"marquee"`
	Contact        Contact           `yaml:"contact" toml:"contact" json:"contact"`
	Socials        map[string]string `yaml:"socials" toml:"socials" json:"socials"`
	FooterNav      []NavLink         `yaml:"footer_nav" toml:"footer_nav" json:"footer_nav"`
	Settings       Settings          `yaml:"settings" toml:"settings" json:"settings"`
}

// Brand holds the company identity.
type Brand struct {
	Name    string      `yaml:"name" toml:"name" json:"name"`
	Tagline string      `yaml:"tagline" toml:"tagline" json:"tagline"`
	Logo    string      `yaml:"logo" toml:"logo" json:"logo,omitempty"`
	Colors  BrandColors `yaml:"colors" toml:"colors" json:"colors"`
}

type BrandColors struct {
	Primary   string `yaml:"primary" toml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" toml:"secondary" json:"secondary"`
}

// Hero is the top section of the root page.
type Hero struct {
	Headline      Headline       `yaml:"headline" toml:"headline" json:"headline"`
	Subtitle      string         `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Description   string         `yaml:"description" toml:"description" json:"description"`
	Pricing       HeroPricing    `yaml:"pricing" toml:"pricing" json:"pricing"`
	CTA           Link           `yaml:"cta" toml:"cta" json:"cta"`
	Notifications []Notification `yaml:"notifications" toml:"notifications" json:"notifications"`
}

type Headline struct {
	Prefix    string `yaml:"prefix" toml:"prefix" json:"prefix"`
	Highlight string `yaml:"highlight" toml:"highlight" json:"highlight"`
	Suffix    string `yaml:"suffix" toml:"suffix" json:"suffix"`
}

type HeroPricing struct {
	Label   string `yaml:"label" toml:"label" json:"label"`
	Value   string `yaml:"value" toml:"value" json:"value"`
	Subtext string `yaml:"subtext" toml:"subtext" json:"subtext"`
}

// Link is a call to action.
type Link struct {
	Text string `yaml:"text" toml:"text" json:"text"`
	Link string `yaml:"link" toml:"link" json:"link"`
}

// Notification is a floating toast on the hero mockup.
type Notification struct {
	Title    string `yaml:"title" toml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Icon     string `yaml:"icon" toml:"icon" json:"icon"`
	Color    string `yaml:"color" toml:"color" json:"color"`
}

// TechTiles is the technology strip.
type TechTiles struct {
	Title        string       `yaml:"title" toml:"title" json:"title"`
	Subtitle     string       `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Description  string       `yaml:"description" toml:"description" json:"description"`
	Technologies []Technology `yaml:"technologies" toml:"technologies" json:"technologies"`
}

// Technology is one tile. Slug names a simple-icons glyph.
type Technology struct {
	Name  string `yaml:"name" toml:"name" json:"name"`
	Slug  string `yaml:"slug" toml:"slug" json:"slug"`
	Desc  string `yaml:"desc" toml:"desc" json:"desc"`
	Color string `yaml:"color" toml:"color" json:"color"`
}

type ProductDetails struct {
	Title           string   `yaml:"title" toml:"title" json:"title"`
	Subtitle        string   `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Description     string   `yaml:"description" toml:"description" json:"description"`
	LongDescription string   `yaml:"long_description" toml:"long_description" json:"long_description"`
	Features        []string `yaml:"features" toml:"features" json:"features"`
	Stats           []Stat   `yaml:"stats" toml:"stats" json:"stats"`
	Image           string   `yaml:"image" toml:"image" json:"image"`
}

type Stat struct {
	Label string `yaml:"label" toml:"label" json:"label"`
	Value string `yaml:"value" toml:"value" json:"value"`
}

// Offering is one card in the offerings carousel.
type Offering struct {
	ID          int    `yaml:"id" toml:"id" json:"id"`
	Title       string `yaml:"title" toml:"title" json:"title"`
	Subtitle    string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Icon        string `yaml:"icon" toml:"icon" json:"icon"`
	Image       string `yaml:"image" toml:"image" json:"image"`
	Color       string `yaml:"color" toml:"color" json:"color"`
	Accent      string `yaml:"accent" toml:"accent" json:"accent"`
	BorderColor string `yaml:"border_color" toml:"border_color" json:"border_color"`
	RingColor   string `yaml:"ring_color" toml:"ring_color" json:"ring_color"`
	Bg          string `yaml:"bg" toml:"bg" json:"bg"`
}

// IconIsImage reports whether Icon is an image path rather than a glyph.
func (o Offering) IconIsImage() bool {
	return strings.Contains(o.Icon, "/")
}

type Pricing struct {
	Headline      string `yaml:"headline" toml:"headline" json:"headline"`
	Subtitle      string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	BillingToggle bool   `yaml:"billing_toggle" toml:"billing_toggle" json:"billing_toggle"`
	Plans         []Plan `yaml:"plans" toml:"plans" json:"plans"`
}

// Plan is a pricing column. A nil price means "contact us".
type Plan struct {
	Name         string   `yaml:"name" toml:"name" json:"name"`
	Description  string   `yaml:"description" toml:"description" json:"description"`
	MonthlyPrice *int     `yaml:"monthly_price" toml:"monthly_price" json:"monthly_price"`
	YearlyPrice  *int     `yaml:"yearly_price" toml:"yearly_price" json:"yearly_price"`
	Currency     string   `yaml:"currency" toml:"currency" json:"currency"`
	Popular      bool     `yaml:"popular" toml:"popular" json:"popular"`
	Features     []string `yaml:"features" toml:"features" json:"features"`
	CTA          string   `yaml:"cta" toml:"cta" json:"cta"`
}

type Showcase struct {
	Badge    string    `yaml:"badge" toml:"badge" json:"badge"`
	Headline string    `yaml:"headline" toml:"headline" json:"headline"`
	Projects []Project `yaml:"projects" toml:"projects" json:"projects"`
}

// Project is a showcase entry with its own detail page at /project/{slug}.
type Project struct {
	Slug        string              `yaml:"slug" toml:"slug" json:"slug"`
	Title       string              `yaml:"title" toml:"title" json:"title"`
	Description string              `yaml:"description" toml:"description" json:"description"`
	Client      string              `yaml:"client" toml:"client" json:"client"`
	Role        string              `yaml:"role" toml:"role" json:"role"`
	Timeline    string              `yaml:"timeline" toml:"timeline" json:"timeline"`
	Challenge   string              `yaml:"challenge" toml:"challenge" json:"challenge"`
	Solution    string              `yaml:"solution" toml:"solution" json:"solution"`
	Features    []string            `yaml:"features" toml:"features" json:"features"`
	Stats       []Stat              `yaml:"stats" toml:"stats" json:"stats"`
	Gallery     []string            `yaml:"gallery" toml:"gallery" json:"gallery"`
	Testimonial *ProjectTestimonial `yaml:"testimonial" toml:"testimonial" json:"testimonial,omitempty"`
	Image       string              `yaml:"image" toml:"image" json:"image"`
	Link        string              `yaml:"link" toml:"link" json:"link"`
	LandingPage *LandingPage        `yaml:"landing_page" toml:"landing_page" json:"landing_page,omitempty"`
}

type ProjectTestimonial struct {
	Quote  string `yaml:"quote" toml:"quote" json:"quote"`
	Author string `yaml:"author" toml:"author" json:"author"`
	Role   string `yaml:"role" toml:"role" json:"role"`
}

// LandingPage overrides the detail page of one project.
type LandingPage struct {
	ThemeColor     string        `yaml:"theme_color" toml:"theme_color" json:"theme_color"`
	Hero           LandingHero   `yaml:"hero" toml:"hero" json:"hero"`
	About          About         `yaml:"about" toml:"about" json:"about"`
	TechStack      []StackItem   `yaml:"tech_stack" toml:"tech_stack" json:"tech_stack"`
	Modules        []Module      `yaml:"modules" toml:"modules" json:"modules"`
	Screens        []string      `yaml:"screens" toml:"screens" json:"screens"`
	RadialFeatures []FeatureCard `yaml:"radial_features" toml:"radial_features" json:"radial_features"`
}

type LandingHero struct {
	Title    string   `yaml:"title" toml:"title" json:"title"`
	Subtitle string   `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Pills    []string `yaml:"pills" toml:"pills" json:"pills"`
	CTA      string   `yaml:"cta" toml:"cta" json:"cta"`
	Image    string   `yaml:"image" toml:"image" json:"image"`
}

type About struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Image       string `yaml:"image" toml:"image" json:"image"`
}

type StackItem struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Type string `yaml:"type" toml:"type" json:"type"`
	Logo string `yaml:"logo" toml:"logo" json:"logo"`
}

type Module struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Badge       string `yaml:"badge" toml:"badge" json:"badge"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Image       string `yaml:"image" toml:"image" json:"image"`
}

type FeatureCard struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Icon        string `yaml:"icon" toml:"icon" json:"icon"`
}

type Testimonials struct {
	Badge    string   `yaml:"badge" toml:"badge" json:"badge"`
	Headline string   `yaml:"headline" toml:"headline" json:"headline"`
	Reviews  []Review `yaml:"reviews" toml:"reviews" json:"reviews"`
}

type Review struct {
	Quote  string `yaml:"quote" toml:"quote" json:"quote"`
	Author string `yaml:"author" toml:"author" json:"author"`
	Role   string `yaml:"role" toml:"role" json:"role"`
	Avatar string `yaml:"avatar" toml:"avatar" json:"avatar"`
}

// FAQEntry answers are markdown.
type FAQEntry struct {
	Question string `yaml:"question" toml:"question" json:"question"`
	Answer   string `yaml:"answer" toml:"answer" json:"answer"`
	Category string `yaml:"category" toml:"category" json:"category,omitempty"`
}

type Achievement struct {
	Value  int    `yaml:"value" toml:"value" json:"value"`
	Suffix string `yaml:"suffix" toml:"suffix" json:"suffix"`
	Label  string `yaml:"label" toml:"label" json:"label"`
	Icon   string `yaml:"icon" toml:"icon" json:"icon"`
}

type Marquee struct {
	Text          string `yaml:"text" toml:"text" json:"text"`
	SecondaryText string `yaml:"secondary_text" toml:"secondary_text" json:"secondary_text"`
	Color         string `yaml:"color" toml:"color" json:"color"`
}

// Contact is the contact section and the shape of the contact form.
type Contact struct {
	Label       string      `yaml:"label" toml:"label" json:"label"`
	Headline    string      `yaml:"headline" toml:"headline" json:"headline"`
	Description string      `yaml:"description" toml:"description" json:"description"`
	Email       string      `yaml:"email" toml:"email" json:"email"`
	Phone       string      `yaml:"phone" toml:"phone" json:"phone"`
	WhatsApp    string      `yaml:"whatsapp" toml:"whatsapp" json:"whatsapp"`
	Address     string      `yaml:"address" toml:"address" json:"address"`
	FormFields  []FormField `yaml:"form_fields" toml:"form_fields" json:"form_fields"`
	CTA         string      `yaml:"cta" toml:"cta" json:"cta"`
}

// FieldType is the input type of a form field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldTextarea FieldType = "textarea"
)

type FormField struct {
	ID       string    `yaml:"id" toml:"id" json:"id"`
	Label    string    `yaml:"label" toml:"label" json:"label"`
	Type     FieldType `yaml:"type" toml:"type" json:"type"`
	Required bool      `yaml:"required" toml:"required" json:"required"`
}

type NavLink struct {
	Label string `yaml:"label" toml:"label" json:"label"`
	Href  string `yaml:"href" toml:"href" json:"href"`
}

type Settings struct {
	DarkMode     bool `yaml:"dark_mode" toml:"dark_mode" json:"dark_mode"`
	SmoothScroll bool `yaml:"smooth_scroll" toml:"smooth_scroll" json:"smooth_scroll"`
	Animations   bool `yaml:"animations" toml:"animations" json:"animations"`
}
