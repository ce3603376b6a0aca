package site

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/manishpatil55/demo-product-page/internal/content"
)

func renderHome(t *testing.T, r *Renderer, opts HomeOptions) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.RenderHome(&buf, opts); err != nil {
		t.Fatalf("RenderHome: %v", err)
	}
	return buf.String()
}

func intPtr(i int) *int { return &i }

func TestRenderHome_Defaults(t *testing.T) {
	r := NewRenderer(content.Default(), Options{ContactAction: "/api/contact"})
	page := renderHome(t, r, HomeOptions{})

	for _, want := range []string{
		"<title>hxp | Crafting Scalable Digital Solutions</title>",
		`href="/style.css"`,
		`src="/script.js"`,
		// The initial cursor is a multiple of five, so Web Platform is centered.
		`data-offset="0" data-index="0"`,
		`data-offset="-2" data-index="3"`,
		`data-offset="2" data-index="2"`,
		`src="/assets/web-platform.png"`,
		`href="/project/lal-sweets"`,
		"₹24,999/year",
		"Contact Us",
		`action="/api/contact"`,
		`name="source_page" value="/"`,
		`type="tel"`,
		"<strong>8 to 12 weeks</strong>",
		"<strong>microservices</strong>",
		"React",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("home page missing %q", want)
		}
	}

	// Null socials are hidden.
	if strings.Contains(page, ">twitter<") || strings.Contains(page, ">github<") {
		t.Error("null social links should not render")
	}
	if !strings.Contains(page, ">linkedin<") {
		t.Error("linkedin link should render")
	}
}

func TestRenderHome_Monthly(t *testing.T) {
	r := NewRenderer(content.Default(), Options{})
	page := renderHome(t, r, HomeOptions{Monthly: true})
	if !strings.Contains(page, ">₹29,999/month<") {
		t.Error("monthly price should be shown")
	}
	// Both labels travel with the page for the client-side toggle.
	if !strings.Contains(page, `data-yearly="₹24,999/year"`) {
		t.Error("yearly label should be kept as a data attribute")
	}
}

func TestRenderHome_JumpToOffering(t *testing.T) {
	r := NewRenderer(content.Default(), Options{})
	page := renderHome(t, r, HomeOptions{Offering: intPtr(3)})
	if !strings.Contains(page, `data-offset="0" data-index="3"`) {
		t.Error("offering 3 should be centered")
	}
	if !strings.Contains(page, `data-offset="-1" data-index="2"`) {
		t.Error("offering 2 should sit left of center")
	}
}

func TestRenderHome_OutOfRangeOfferingIgnored(t *testing.T) {
	r := NewRenderer(content.Default(), Options{})
	page := renderHome(t, r, HomeOptions{Offering: intPtr(42)})
	if !strings.Contains(page, `data-offset="0" data-index="0"`) {
		t.Error("out of range offering should keep the initial position")
	}
}

func TestRenderHome_NoFormWithoutAction(t *testing.T) {
	r := NewRenderer(content.Default(), Options{})
	page := renderHome(t, r, HomeOptions{})
	if strings.Contains(page, `id="contact-form"`) {
		t.Error("form should not render without an action")
	}
	if !strings.Contains(page, "hello@hxptechnologies.com") {
		t.Error("contact details should still render")
	}
}

func TestRenderHome_SentMessage(t *testing.T) {
	r := NewRenderer(content.Default(), Options{ContactAction: "/api/contact"})
	page := renderHome(t, r, HomeOptions{Sent: true})
	if !strings.Contains(page, "be in touch soon") {
		t.Error("sent confirmation should render")
	}
}

func TestRenderHome_PageConfig(t *testing.T) {
	r := NewRenderer(content.Default(), Options{
		AutoplayInterval: 2500 * time.Millisecond,
		ScrollCycle:      30 * time.Second,
		LiveURL:          "/ws/carousel",
	})
	page := renderHome(t, r, HomeOptions{})
	for _, want := range []string{`"autoplay_ms":2500`, `"scroll_cycle_ms":30000`, `"cursor":20000`, `"page":"home"`, `"count":12`,
		`"thresholds":{"snap_low":-7296,"snap_high":-1824,"drag_low":-6384,"drag_high":-2736,"jump":3648}`,
		`"start_offset":-3648`, `"scroll_speed":-243.2`} {
		if !strings.Contains(page, want) {
			t.Errorf("page config missing %s", want)
		}
	}
	if !strings.Contains(page, `"live_url":"\/ws\/carousel"`) && !strings.Contains(page, `"live_url":"/ws/carousel"`) {
		t.Error("page config should carry the live url")
	}
}

func TestScriptReadsStripThresholds(t *testing.T) {
	js := jsContent
	for _, want := range []string{"cfg.thresholds", "th.snap_low", "th.snap_high", "th.drag_low", "th.drag_high", "th.jump"} {
		if !strings.Contains(js, want) {
			t.Errorf("script.js does not use %s", want)
		}
	}
	for _, literal := range []string{"-4 * W", "-3.5 * W", "-1.5 * W"} {
		if strings.Contains(js, literal) {
			t.Errorf("script.js hard-codes %s", literal)
		}
	}
}

func TestRenderHome_SingleOffering(t *testing.T) {
	s := content.Default()
	s.Offerings = s.Offerings[:1]
	r := NewRenderer(s, Options{})
	page := renderHome(t, r, HomeOptions{})
	// Every slot of the window shows the only item.
	if got := strings.Count(page, `data-index="0"`); got < 5 {
		t.Errorf("expected the single offering in all five slots, found %d", got)
	}
}

func TestRenderProject(t *testing.T) {
	r := NewRenderer(content.Default(), Options{ContactAction: "/api/contact"})
	var buf bytes.Buffer
	ok, err := r.RenderProject(&buf, "lal-sweets")
	if err != nil {
		t.Fatalf("RenderProject: %v", err)
	}
	if !ok {
		t.Fatal("lal-sweets should exist")
	}
	page := buf.String()
	for _, want := range []string{
		"Food Delivery App Development Solution",
		"What is a food delivery app?",
		"Advanced Search Options",
		`src="/assets/pikachu.png"`,
		"#D12053",
		// Darker theme variants derived from the base color.
		"#b30235",
		"<strong>headless commerce</strong>",
		"Laravel",
		"Real-time Tracking",
		`name="source_page" value="/project/lal-sweets"`,
		"The headless architecture completely transformed",
		`href="/project/kirtilals-luxury"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("project page missing %q", want)
		}
	}
	if strings.Contains(page, `href="/project/lal-sweets"`) {
		t.Error("a project should not link to itself under More Projects")
	}
}

func TestRenderProject_Defaults(t *testing.T) {
	r := NewRenderer(content.Default(), Options{})
	var buf bytes.Buffer
	if _, err := r.RenderProject(&buf, "tradescribe"); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	for _, want := range []string{"Trading Journal App Development", "What is Trading Journal App Development?", "Easy Use", "App Screens"} {
		if !strings.Contains(page, want) {
			t.Errorf("project page missing %q", want)
		}
	}
}

func TestRenderProject_Fallback(t *testing.T) {
	r := NewRenderer(content.Default(), Options{})
	var buf bytes.Buffer
	ok, err := r.RenderProject(&buf, "fin-track-pro")
	if err != nil || !ok {
		t.Fatalf("RenderProject = %v, %v", ok, err)
	}
	page := buf.String()
	if !strings.Contains(page, "What is FinTrack Pro?") {
		t.Error("fallback about title missing")
	}
	if !strings.Contains(page, "Easy Navigation") {
		t.Error("fallback pills missing")
	}
	if strings.Contains(page, "App Screens") || strings.Contains(page, "Technology Stack") {
		t.Error("fallback page should not render empty sections")
	}
}

func TestRenderProject_UnknownSlug(t *testing.T) {
	r := NewRenderer(content.Default(), Options{})
	var buf bytes.Buffer
	ok, err := r.RenderProject(&buf, "does-not-exist")
	if err != nil {
		t.Fatalf("unknown slug should not be an error: %v", err)
	}
	if ok {
		t.Error("unknown slug should report false")
	}
	if buf.Len() != 0 {
		t.Errorf("unknown slug should render nothing, got %d bytes", buf.Len())
	}
}

func TestRenderProject_StaticLinks(t *testing.T) {
	r := NewRenderer(content.Default(), Options{}).WithLinks(StaticLinks(2))
	var buf bytes.Buffer
	if _, err := r.RenderProject(&buf, "greenfeels"); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	for _, want := range []string{`href="../../style.css"`, `href="../../index.html#work"`, `src="../../assets/mobile-app.png"`} {
		if !strings.Contains(page, want) {
			t.Errorf("static project page missing %q", want)
		}
	}
}

func TestParseHomeOptions(t *testing.T) {
	opts := ParseHomeOptions(url.Values{"offering": {"2"}, "billing": {"monthly"}, "sent": {"1"}})
	if opts.Offering == nil || *opts.Offering != 2 {
		t.Errorf("Offering = %v, want 2", opts.Offering)
	}
	if !opts.Monthly || !opts.Sent {
		t.Errorf("opts = %+v", opts)
	}

	opts = ParseHomeOptions(url.Values{"offering": {"two"}, "billing": {"yearly"}})
	if opts.Offering != nil {
		t.Error("malformed offering should be ignored")
	}
	if opts.Monthly || opts.Sent {
		t.Errorf("opts = %+v", opts)
	}
}
