package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultDocument(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())

	assert.Equal(t, "hxp", s.Brand.Name)
	assert.Len(t, s.Offerings, 5)
	assert.Len(t, s.TechTiles.Technologies, 12)
	assert.Len(t, s.Pricing.Plans, 3)
	assert.Len(t, s.Showcase.Projects, 9)
	assert.Len(t, s.Testimonials.Reviews, 4)
	assert.Len(t, s.Contact.FormFields, 4)
	assert.NotEmpty(t, s.FAQ)

	assert.Equal(t, []string{
		"lal-sweets", "kirtilals-luxury", "tradescribe", "murzban-clothing",
		"greenfeels", "momentz-gifts", "health-hub", "pixel-art-studio", "fin-track-pro",
	}, s.Slugs())

	enterprise := s.Pricing.Plans[2]
	assert.Nil(t, enterprise.MonthlyPrice)
	assert.Nil(t, enterprise.YearlyPrice)
	assert.Empty(t, s.Socials["twitter"])
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Offerings[0].Title = "changed"
	b := Default()
	assert.Equal(t, "Web Platform", b.Offerings[0].Title)
}

func TestNormalizeOfferingFallbacks(t *testing.T) {
	s := &Site{Offerings: []Offering{
		{ID: 1, Title: "A", Icon: "/a.png"},
		{ID: 2, Title: "B", Icon: "★", BorderColor: "border-red-200", RingColor: "ring-red-100", Bg: "bg-red-50"},
	}}
	s.Normalize()

	assert.Equal(t, DefaultBorderColor, s.Offerings[0].BorderColor)
	assert.Equal(t, DefaultRingColor, s.Offerings[0].RingColor)
	assert.Equal(t, DefaultBg, s.Offerings[0].Bg)
	assert.Equal(t, "/a.png", s.Offerings[0].Image)
	assert.True(t, s.Offerings[0].IconIsImage())

	assert.Equal(t, "border-red-200", s.Offerings[1].BorderColor)
	assert.Equal(t, "ring-red-100", s.Offerings[1].RingColor)
	assert.Equal(t, "bg-red-50", s.Offerings[1].Bg)
	assert.False(t, s.Offerings[1].IconIsImage())
}

func TestNewLandingPageDefaults(t *testing.T) {
	lp := NewLandingPage(LandingPage{
		ThemeColor: "#E11D48",
		Hero:       LandingHero{Title: "Gift Shop Platform", Subtitle: "Build beautiful gift experiences"},
	})

	assert.Equal(t, "#E11D48", lp.ThemeColor)
	assert.Equal(t, []string{"Easy Use", "Scalable", "Secure", "Modern"}, lp.Hero.Pills)
	assert.Equal(t, "Get a Quote", lp.Hero.CTA)
	assert.Equal(t, "/mobile-app.png", lp.Hero.Image)
	assert.Equal(t, "What is Gift Shop Platform?", lp.About.Title)
	assert.Contains(t, lp.About.Description, "gift shop platform")
	assert.Len(t, lp.TechStack, 4)
	assert.Len(t, lp.Modules, 3)
	assert.Len(t, lp.Screens, 5)
	assert.Len(t, lp.RadialFeatures, 6)
}

func TestNewLandingPageEmpty(t *testing.T) {
	lp := NewLandingPage(LandingPage{})
	assert.Equal(t, DefaultThemeColor, lp.ThemeColor)
	assert.Equal(t, "App Development Solution", lp.Hero.Title)
	assert.Equal(t, "What is App Development Solution?", lp.About.Title)
}

func TestNewLandingPageKeepsOverrides(t *testing.T) {
	s := Default()
	p, ok := s.Project("pixel-art-studio")
	require.True(t, ok)
	assert.Equal(t, "#8B5CF6", p.LandingPage.ThemeColor)
	assert.Equal(t, []string{"Custom", "Pills", "Here"}, p.LandingPage.Hero.Pills)

	p, ok = s.Project("lal-sweets")
	require.True(t, ok)
	assert.Equal(t, "/pikachu.png", p.LandingPage.Hero.Image)
	assert.Equal(t, "What is a food delivery app?", p.LandingPage.About.Title)
	assert.Equal(t, "Real-time Tracking", p.LandingPage.RadialFeatures[0].Title)
}

func TestNewLandingPageDoesNotShareDefaults(t *testing.T) {
	a := NewLandingPage(LandingPage{})
	a.Hero.Pills[0] = "mutated"
	b := NewLandingPage(LandingPage{})
	assert.Equal(t, "Easy Use", b.Hero.Pills[0])
}

func TestFallbackLandingPage(t *testing.T) {
	s := Default()
	p, ok := s.Project("fin-track-pro")
	require.True(t, ok)
	require.NotNil(t, p.LandingPage)

	lp := p.LandingPage
	assert.Equal(t, FallbackThemeColor, lp.ThemeColor)
	assert.Equal(t, "FinTrack Pro", lp.Hero.Title)
	assert.Equal(t, p.Description, lp.Hero.Subtitle)
	assert.Equal(t, []string{"Easy Navigation", "Scalable", "Secure", "User Friendly"}, lp.Hero.Pills)
	assert.Equal(t, "What is FinTrack Pro?", lp.About.Title)
	assert.Equal(t, p.Challenge, lp.About.Description)
	assert.Equal(t, p.Image, lp.Hero.Image)
	assert.Empty(t, lp.TechStack)
	assert.Empty(t, lp.Modules)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	once := Default()
	twice := Default()
	twice.Normalize()
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second Normalize changed the document (-once +twice):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	t.Run("no offerings", func(t *testing.T) {
		s := Default()
		s.Offerings = nil
		assert.ErrorIs(t, s.Validate(), ErrNoOfferings)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		s := Default()
		s.Showcase.Projects[1].Slug = s.Showcase.Projects[0].Slug
		err := s.Validate()
		assert.ErrorIs(t, err, ErrDuplicateSlug)
		assert.Contains(t, err.Error(), "lal-sweets")
	})

	t.Run("empty slug", func(t *testing.T) {
		s := Default()
		s.Showcase.Projects[3].Slug = ""
		assert.ErrorContains(t, s.Validate(), "showcase.projects[3]: slug is required")
	})

	t.Run("bad slug", func(t *testing.T) {
		s := Default()
		s.Showcase.Projects[0].Slug = "Lal Sweets"
		assert.ErrorContains(t, s.Validate(), "invalid slug")
	})

	t.Run("negative price", func(t *testing.T) {
		s := Default()
		n := -1
		s.Pricing.Plans[0].MonthlyPrice = &n
		assert.ErrorContains(t, s.Validate(), "monthly_price must be non-negative")
	})

	t.Run("bad field type", func(t *testing.T) {
		s := Default()
		s.Contact.FormFields[0].Type = "checkbox"
		assert.ErrorContains(t, s.Validate(), `invalid type "checkbox"`)
	})

	t.Run("duplicate field id", func(t *testing.T) {
		s := Default()
		s.Contact.FormFields[1].ID = s.Contact.FormFields[0].ID
		assert.ErrorContains(t, s.Validate(), "duplicate id")
	})
}

func TestProjectLookup(t *testing.T) {
	s := Default()

	p, ok := s.Project("tradescribe")
	require.True(t, ok)
	assert.Equal(t, "TradeScribe", p.Title)

	p, ok = s.Project("does-not-exist")
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestContactField(t *testing.T) {
	s := Default()
	f, ok := s.Contact.Field("phone")
	require.True(t, ok)
	assert.Equal(t, FieldTel, f.Type)
	assert.True(t, f.Required)

	_, ok = s.Contact.Field("fax")
	assert.False(t, ok)
}

func TestPrice(t *testing.T) {
	s := Default()
	starter, enterprise := s.Pricing.Plans[0], s.Pricing.Plans[2]

	assert.Equal(t, "₹24,999/year", Price(starter, true).String())
	assert.Equal(t, "₹29,999/month", Price(starter, false).String())

	got := Price(enterprise, true)
	assert.True(t, got.Contact)
	assert.Equal(t, "Contact Us", got.String())
	assert.Equal(t, "Contact Us", Price(enterprise, false).String())
}

func TestGroupThousands(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		49999:    "49,999",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		assert.Equal(t, want, groupThousands(in), "groupThousands(%d)", in)
	}
}

func TestAdjustColor(t *testing.T) {
	assert.Equal(t, "#b30235", AdjustColor("#D12053", -30))
	assert.Equal(t, "#ffffff", AdjustColor("#ffffff", 10))
	assert.Equal(t, "#000000", AdjustColor("#111", -30))
	assert.Equal(t, "#2b2b2b", AdjustColor("#111", 26))
	assert.Equal(t, "red", AdjustColor("red", 10))
	assert.Equal(t, "#zzzzzz", AdjustColor("#zzzzzz", 10))
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"site.yml":  FormatYAML,
		"site.YAML": FormatYAML,
		"site.toml": FormatTOML,
		"site.json": FormatJSON,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("site.ini")
	assert.ErrorContains(t, err, `unsupported content file extension ".ini"`)
}

func TestLoadEmptyPath(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Len(t, s.Offerings, 5)
}

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()
	src := Default()

	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(src, format)
			require.NoError(t, err)

			path := filepath.Join(dir, "site."+string(format))
			require.NoError(t, os.WriteFile(path, data, 0o644))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, src.Brand, got.Brand)
			assert.Equal(t, src.Offerings, got.Offerings)
			assert.Equal(t, src.Slugs(), got.Slugs())
			assert.Equal(t, src.TechTiles.Technologies, got.TechTiles.Technologies)
			assert.Equal(t, src.Contact.FormFields, got.Contact.FormFields)
			assert.Nil(t, got.Pricing.Plans[2].MonthlyPrice)
			require.NotNil(t, got.Pricing.Plans[0].YearlyPrice)
			assert.Equal(t, 24999, *got.Pricing.Plans[0].YearlyPrice)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorContains(t, err, "reading content")

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("offerings: [unterminated"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "decoding content")

	empty := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(empty, []byte("brand:\n  name: x\n"), 0o644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrNoOfferings)

	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"brnad": {}}`), 0o644))
	_, err = Load(unknown)
	assert.ErrorContains(t, err, "unknown field")
}

func TestHolderReplace(t *testing.T) {
	first := Default()
	h := NewHolder(first)
	assert.Same(t, first, h.Get())

	var seen *Site
	h.OnReplace(func(s *Site) { seen = s })

	second := Default()
	h.Replace(second)
	assert.Same(t, second, h.Get())
	assert.Same(t, second, seen)
}

func TestHolderReplaceListenersRunOutsideLock(t *testing.T) {
	h := NewHolder(Default())

	var order []string
	h.OnReplace(func(s *Site) {
		order = append(order, "first")
		// Registering from a callback must not deadlock and only applies
		// to later replacements.
		h.OnReplace(func(*Site) { order = append(order, "late") })
	})
	h.OnReplace(func(s *Site) {
		assert.Same(t, s, h.Get())
		order = append(order, "second")
	})

	h.Replace(Default())
	assert.Equal(t, []string{"first", "second"}, order)

	order = nil
	h.Replace(Default())
	assert.Equal(t, []string{"first", "second", "late"}, order)
}

func TestHolderWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yml")
	require.NoError(t, os.WriteFile(path, DefaultDocument(), 0o644))

	initial, err := Load(path)
	require.NoError(t, err)
	h := NewHolder(initial)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Watch(ctx, path, zap.NewNop()) }()

	changed := strings.Replace(string(DefaultDocument()), "name: hxp", "name: acme", 1)
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte(changed), 0o644); err != nil {
			return false
		}
		return h.Get().Brand.Name == "acme"
	}, 5*time.Second, 400*time.Millisecond)

	// A broken document keeps the previous one.
	require.NoError(t, os.WriteFile(path, []byte("offerings: []\n"), 0o644))
	time.Sleep(3 * reloadDebounce)
	assert.Equal(t, "acme", h.Get().Brand.Name)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
