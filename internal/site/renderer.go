package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/yuin/goldmark"

	"github.com/manishpatil55/demo-product-page/internal/autoplay"
	"github.com/manishpatil55/demo-product-page/internal/carousel"
	"github.com/manishpatil55/demo-product-page/internal/content"
	"github.com/manishpatil55/demo-product-page/internal/scroller"
)

// Options tunes what the pages hand to the browser.
type Options struct {
	AutoplayInterval time.Duration
	ScrollCycle      time.Duration
	// LiveURL is the websocket path of the live carousel. Empty leaves the
	// browser to run the carousel on its own.
	LiveURL string
	// ContactAction is where the contact form posts. Empty renders the
	// contact details without a form.
	ContactAction string
}

// Renderer turns one content document into HTML pages. It is safe for
// concurrent use.
type Renderer struct {
	site  *content.Site
	opts  Options
	links Linker
	md    goldmark.Markdown
}

// NewRenderer creates a renderer for s, which must already be normalized
// and validated.
func NewRenderer(s *content.Site, opts Options) *Renderer {
	if opts.AutoplayInterval <= 0 {
		opts.AutoplayInterval = autoplay.DefaultPeriod
	}
	if opts.ScrollCycle <= 0 {
		opts.ScrollCycle = scroller.DefaultCycle
	}
	return &Renderer{site: s, opts: opts, links: ServerLinks(), md: newMarkdown()}
}

// WithLinks returns a copy of r that links pages with l.
func (r *Renderer) WithLinks(l Linker) *Renderer {
	c := *r
	c.links = l
	return &c
}

// Site returns the rendered document.
func (r *Renderer) Site() *content.Site { return r.site }

// HomeOptions are the per-request choices on the root page. The zero value
// shows the carousel at its initial position and yearly prices.
type HomeOptions struct {
	Offering *int
	Monthly  bool
	Sent     bool
}

// ParseHomeOptions reads ?offering=, ?billing= and ?sent= from a query.
// Malformed values are ignored.
func ParseHomeOptions(q url.Values) HomeOptions {
	var opts HomeOptions
	if v := q.Get("offering"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Offering = &n
		}
	}
	opts.Monthly = q.Get("billing") == "monthly"
	opts.Sent = q.Get("sent") == "1"
	return opts
}

// pageConfig is handed to script.js as JSON.
type pageConfig struct {
	Page          string              `json:"page"`
	Cursor        int                 `json:"cursor"`
	Offsets       []int               `json:"offsets"`
	CardWidth     int                 `json:"card_width"`
	AutoplayMS    int64               `json:"autoplay_ms"`
	ScrollCycleMS int64               `json:"scroll_cycle_ms"`
	Strip         scroller.Strip      `json:"strip"`
	Thresholds    scroller.Thresholds `json:"thresholds"`
	StartOffset   float64             `json:"start_offset"`
	ScrollSpeed   float64             `json:"scroll_speed"`
	LiveURL       string              `json:"live_url,omitempty"`
	Items         []cardItem          `json:"items"`
}

// cardItem is what the browser needs to redraw a carousel card.
type cardItem struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Color       string `json:"color"`
	Accent      string `json:"accent"`
}

type socialLink struct {
	Name string
	URL  string
}

type pageBase struct {
	Title         string
	Site          *content.Site
	Links         Linker
	Socials       []socialLink
	Config        pageConfig
	ContactAction string
	SourcePage    string
	Sent          bool
}

type cardSlot struct {
	Slot carousel.Slot[content.Offering]
	Pose carousel.Pose
}

type planView struct {
	content.Plan
	Price   content.PriceLabel
	Monthly content.PriceLabel
	Yearly  content.PriceLabel
}

type faqView struct {
	Question string
	Answer   template.HTML
	Category string
}

type homeData struct {
	pageBase
	Cards           []cardSlot
	Dots            []bool
	Active          content.Offering
	Yearly          bool
	Plans           []planView
	Tiles           []content.Technology
	FAQ             []faqView
	LongDescription template.HTML
}

type themeColors struct {
	Base   string
	Accent string
	Deep   string
	Muted  string
}

type screenSlot struct {
	Slot carousel.Slot[string]
	Pose carousel.Pose
}

type projectData struct {
	pageBase
	Project   *content.Project
	Landing   *content.LandingPage
	Theme     themeColors
	Challenge template.HTML
	Solution  template.HTML
	About     template.HTML
	Screens   []screenSlot
	More      []content.Project
}

// RenderHome writes the root page.
func (r *Renderer) RenderHome(w io.Writer, opts HomeOptions) error {
	s := r.site
	c, err := carousel.New(s.Offerings)
	if err != nil {
		return err
	}
	if opts.Offering != nil {
		// An out of range request keeps the initial position.
		if err := c.Jump(*opts.Offering); err != nil && !errors.Is(err, carousel.ErrOutOfRange) {
			return err
		}
	}

	data := homeData{
		pageBase: r.base(s.Brand.Name+" | "+s.Brand.Tagline, "/", opts.Sent),
		Dots:     c.Dots(),
		Active:   c.ActiveItem(),
		Yearly:   !opts.Monthly,
		Tiles:    scroller.Tiles(s.TechTiles.Technologies),
	}
	for _, slot := range c.Window(carousel.DefaultOffsets) {
		data.Cards = append(data.Cards, cardSlot{Slot: slot, Pose: carousel.PoseFor(slot.Offset)})
	}
	data.Config.Page = "home"
	data.Config.Cursor = c.Cursor()
	strip := scroller.DefaultStrip(len(s.TechTiles.Technologies))
	data.Config.Strip = strip
	data.Config.Thresholds = strip.Thresholds()
	data.Config.StartOffset = strip.StartOffset()
	data.Config.ScrollSpeed = scroller.NewAnimator(strip, r.opts.ScrollCycle).Speed()
	for _, o := range s.Offerings {
		data.Config.Items = append(data.Config.Items, cardItem{
			Title:       o.Title,
			Subtitle:    o.Subtitle,
			Description: o.Description,
			Image:       r.links.Asset(o.Image),
			Color:       o.Color,
			Accent:      o.Accent,
		})
	}

	for _, p := range s.Pricing.Plans {
		pv := planView{
			Plan:    p,
			Monthly: content.Price(p, false),
			Yearly:  content.Price(p, true),
		}
		pv.Price = pv.Yearly
		if opts.Monthly {
			pv.Price = pv.Monthly
		}
		data.Plans = append(data.Plans, pv)
	}

	for _, f := range s.FAQ {
		answer, err := markdownHTML(r.md, f.Answer)
		if err != nil {
			return fmt.Errorf("rendering faq %q: %w", f.Question, err)
		}
		data.FAQ = append(data.FAQ, faqView{Question: f.Question, Answer: answer, Category: f.Category})
	}
	if data.LongDescription, err = markdownHTML(r.md, s.ProductDetails.LongDescription); err != nil {
		return fmt.Errorf("rendering product details: %w", err)
	}

	return execute(w, "home", data)
}

// RenderProject writes the detail page for slug. An unknown slug writes
// nothing and reports false; it is not an error.
func (r *Renderer) RenderProject(w io.Writer, slug string) (bool, error) {
	s := r.site
	p, ok := s.Project(slug)
	if !ok {
		return false, nil
	}
	lp := p.LandingPage
	if lp == nil {
		// Normalize always fills this; an unnormalized document still renders.
		lp = content.NewLandingPage(content.LandingPage{})
	}

	data := projectData{
		pageBase: r.base(lp.Hero.Title+" | "+s.Brand.Name, "/project/"+p.Slug, false),
		Project:  p,
		Landing:  lp,
		Theme:    newTheme(lp.ThemeColor),
	}
	data.Config.Page = "project"

	var err error
	if data.Challenge, err = markdownHTML(r.md, p.Challenge); err != nil {
		return false, fmt.Errorf("rendering %s challenge: %w", slug, err)
	}
	if data.Solution, err = markdownHTML(r.md, p.Solution); err != nil {
		return false, fmt.Errorf("rendering %s solution: %w", slug, err)
	}
	if data.About, err = markdownHTML(r.md, lp.About.Description); err != nil {
		return false, fmt.Errorf("rendering %s about: %w", slug, err)
	}

	if screens, err := carousel.New(lp.Screens); err == nil {
		data.Config.Cursor = screens.Cursor()
		for _, slot := range screens.Window(carousel.DefaultOffsets) {
			data.Screens = append(data.Screens, screenSlot{Slot: slot, Pose: carousel.PoseFor(slot.Offset)})
		}
		for _, src := range lp.Screens {
			data.Config.Items = append(data.Config.Items, cardItem{Image: r.links.Asset(src)})
		}
	}

	for _, other := range s.Showcase.Projects {
		if other.Slug == p.Slug {
			continue
		}
		data.More = append(data.More, other)
		if len(data.More) == 3 {
			break
		}
	}

	if err := execute(w, "project", data); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Renderer) base(title, source string, sent bool) pageBase {
	s := r.site
	b := pageBase{
		Title:         title,
		Site:          s,
		Links:         r.links,
		ContactAction: r.opts.ContactAction,
		SourcePage:    source,
		Sent:          sent,
		Config: pageConfig{
			Offsets:       carousel.DefaultOffsets,
			CardWidth:     carousel.CardWidth,
			AutoplayMS:    r.opts.AutoplayInterval.Milliseconds(),
			ScrollCycleMS: r.opts.ScrollCycle.Milliseconds(),
			LiveURL:       r.opts.LiveURL,
		},
	}
	for name, u := range s.Socials {
		// A null link hides the icon.
		if u != "" {
			b.Socials = append(b.Socials, socialLink{Name: name, URL: u})
		}
	}
	sort.Slice(b.Socials, func(i, j int) bool { return b.Socials[i].Name < b.Socials[j].Name })
	return b
}

func newTheme(base string) themeColors {
	return themeColors{
		Base:   base,
		Accent: content.AdjustColor(base, -30),
		Deep:   content.AdjustColor(base, -60),
		Muted:  content.AdjustColor(base, -20),
	}
}

// execute renders into a buffer first so a template error never leaves a
// half-written page.
func execute(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s page: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
