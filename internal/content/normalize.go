package content

import (
	"fmt"
	"strconv"
	"strings"
)

// Offering color fallbacks used when a card leaves them unset.
const (
	DefaultBorderColor = "border-gray-200"
	DefaultRingColor   = "ring-gray-100"
	DefaultBg          = "bg-gray-50"
)

const (
	DefaultThemeColor  = "#3B82F6"
	FallbackThemeColor = "#111"
	DefaultCurrency    = "₹"
	DefaultQuoteCTA    = "Get a Quote"
)

var (
	defaultPills  = []string{"Easy Use", "Scalable", "Secure", "Modern"}
	fallbackPills = []string{"Easy Navigation", "Scalable", "Secure", "User Friendly"}

	defaultTechStack = []StackItem{
		{Name: "React", Type: "Frontend", Logo: "https://cdn.worldvectorlogo.com/logos/react-2.svg"},
		{Name: "Node.js", Type: "Backend", Logo: "https://cdn.worldvectorlogo.com/logos/nodejs-icon.svg"},
		{Name: "MongoDB", Type: "Database", Logo: "https://cdn.worldvectorlogo.com/logos/mongodb-icon-1.svg"},
		{Name: "AWS", Type: "Cloud", Logo: "https://cdn.worldvectorlogo.com/logos/aws-2.svg"},
	}
	defaultModules = []Module{
		{Title: "Customer App", Badge: "Mobile", Description: "Intuitive mobile experience for end users.", Image: "/mobile-app.png"},
		{Title: "Admin Panel", Badge: "Web", Description: "Powerful dashboard to manage everything.", Image: "/admin-panel.png"},
		{Title: "Backend API", Badge: "Server", Description: "Secure and scalable API infrastructure.", Image: "/vendor-portal.png"},
	}
	defaultScreens  = []string{"/mobile-app.png", "/web-platform.png", "/admin-panel.png", "/vendor-portal.png", "/analytics.png"}
	defaultFeatures = []FeatureCard{
		{Title: "User Friendly", Description: "Clean, intuitive interface.", Icon: "Globe"},
		{Title: "Real-time Updates", Description: "Instant notifications.", Icon: "Bell"},
		{Title: "Secure Payments", Description: "Multiple gateways.", Icon: "CreditCard"},
		{Title: "Fast Performance", Description: "Optimized speed.", Icon: "Clock"},
		{Title: "Support Chat", Description: "24/7 assistance.", Icon: "MessageSquare"},
		{Title: "Analytics", Description: "Track everything.", Icon: "MapPin"},
	}
)

// Normalize resolves every optional field in place. Renderers can then read
// the document without fallbacks of their own. It is idempotent.
func (s *Site) Normalize() {
	if s.Brand.Colors.Primary == "" {
		s.Brand.Colors.Primary = "#FF3B30"
	}
	if s.Brand.Colors.Secondary == "" {
		s.Brand.Colors.Secondary = "#111111"
	}

	for i := range s.Offerings {
		o := &s.Offerings[i]
		if o.BorderColor == "" {
			o.BorderColor = DefaultBorderColor
		}
		if o.RingColor == "" {
			o.RingColor = DefaultRingColor
		}
		if o.Bg == "" {
			o.Bg = DefaultBg
		}
		if o.Image == "" {
			o.Image = o.Icon
		}
	}

	for i := range s.Pricing.Plans {
		p := &s.Pricing.Plans[i]
		if p.Currency == "" {
			p.Currency = DefaultCurrency
		}
		if p.CTA == "" {
			if p.MonthlyPrice == nil && p.YearlyPrice == nil {
				p.CTA = "Contact Sales"
			} else {
				p.CTA = "Get Started"
			}
		}
	}

	for i := range s.Showcase.Projects {
		p := &s.Showcase.Projects[i]
		if p.LandingPage == nil {
			p.LandingPage = fallbackLandingPage(p)
		} else {
			p.LandingPage = NewLandingPage(*p.LandingPage)
		}
	}

	for i := range s.Contact.FormFields {
		f := &s.Contact.FormFields[i]
		if f.Type == "" {
			f.Type = FieldText
		}
		if f.Label == "" {
			f.Label = f.ID
		}
	}
	if s.Contact.CTA == "" {
		s.Contact.CTA = "Send Message"
	}

	if s.Marquee.Color == "" {
		s.Marquee.Color = "red"
	}
}

// NewLandingPage fills every unset field of overrides with the stock
// landing page. Only ThemeColor, Hero.Title and Hero.Subtitle need to be set
// for a complete page.
func NewLandingPage(overrides LandingPage) *LandingPage {
	lp := overrides
	if lp.ThemeColor == "" {
		lp.ThemeColor = DefaultThemeColor
	}
	if lp.Hero.Title == "" {
		lp.Hero.Title = "App Development Solution"
	}
	if lp.Hero.Subtitle == "" {
		lp.Hero.Subtitle = "Launch your business with a robust solution."
	}
	if lp.Hero.Pills == nil {
		lp.Hero.Pills = clone(defaultPills)
	}
	if lp.Hero.CTA == "" {
		lp.Hero.CTA = DefaultQuoteCTA
	}
	if lp.Hero.Image == "" {
		lp.Hero.Image = "/mobile-app.png"
	}
	if lp.About.Title == "" {
		lp.About.Title = fmt.Sprintf("What is %s?", lp.Hero.Title)
	}
	if lp.About.Description == "" {
		lp.About.Description = fmt.Sprintf("A comprehensive %s designed to streamline operations, enhance user experience, and drive business growth. Built with modern technologies and best practices.", strings.ToLower(lp.Hero.Title))
	}
	if lp.About.Image == "" {
		lp.About.Image = "/web-platform.png"
	}
	if lp.TechStack == nil {
		lp.TechStack = clone(defaultTechStack)
	}
	if lp.Modules == nil {
		lp.Modules = clone(defaultModules)
	}
	if lp.Screens == nil {
		lp.Screens = clone(defaultScreens)
	}
	if lp.RadialFeatures == nil {
		lp.RadialFeatures = clone(defaultFeatures)
	}
	return &lp
}

// fallbackLandingPage is used for a project without a landing page. It only
// has a hero and an about section. The other sections are empty, not nil,
// so a second Normalize leaves them alone.
func fallbackLandingPage(p *Project) *LandingPage {
	title := p.Title
	if title == "" {
		title = "App Development Solution"
	}
	subtitle := p.Description
	if subtitle == "" {
		subtitle = "Launch your business with our robust solution."
	}
	aboutTitle := p.Title
	if aboutTitle == "" {
		aboutTitle = "This App"
	}
	about := p.Challenge
	if about == "" {
		about = "A complete solution for your business needs."
	}
	return &LandingPage{
		ThemeColor: FallbackThemeColor,
		Hero: LandingHero{
			Title:    title,
			Subtitle: subtitle,
			Pills:    clone(fallbackPills),
			CTA:      DefaultQuoteCTA,
			Image:    p.Image,
		},
		About: About{
			Title:       fmt.Sprintf("What is %s?", aboutTitle),
			Description: about,
			Image:       p.Image,
		},
		TechStack:      []StackItem{},
		Modules:        []Module{},
		Screens:        []string{},
		RadialFeatures: []FeatureCard{},
	}
}

// AdjustColor shifts every channel of a #rrggbb (or #rgb) color by amount,
// clamped to [0,255]. Input that is not a hex color is returned unchanged.
func AdjustColor(color string, amount int) string {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color
	}
	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < 6; i += 2 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return color
		}
		c := min(255, max(0, int(v)+amount))
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}

// PriceLabel is how one pricing column displays its price.
type PriceLabel struct {
	Contact bool   `json:"contact"`
	Amount  string `json:"amount"`
	Period  string `json:"period,omitempty"`
}

func (l PriceLabel) String() string {
	if l.Contact {
		return l.Amount
	}
	return l.Amount + "/" + l.Period
}

// Price formats a plan for the chosen billing period. A plan without a price
// for that period reads "Contact Us".
func Price(p Plan, yearly bool) PriceLabel {
	amount, period := p.MonthlyPrice, "month"
	if yearly {
		amount, period = p.YearlyPrice, "year"
	}
	if amount == nil {
		return PriceLabel{Contact: true, Amount: "Contact Us"}
	}
	return PriceLabel{Amount: p.Currency + groupThousands(*amount), Period: period}
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func clone[T any](in []T) []T {
	return append([]T(nil), in...)
}
