package site

import (
	"html/template"
	"strings"
)

// pages holds every page template and the partials they share.
var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"lower": strings.ToLower,
	"times": func(n int) []int { return make([]int, n) },
}).Parse(pageTemplates))

// pageTemplates defines the "home" and "project" pages.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en" data-theme="{{if .Site.Settings.DarkMode}}dark{{else}}light{{end}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Site.Brand.Tagline}}">
  <link rel="stylesheet" href="{{.Links.Static "style.css"}}">
</head>
<body class="{{if .Site.Settings.SmoothScroll}}smooth{{end}}{{if not .Site.Settings.Animations}} still{{end}}">
  <header class="navbar">
    <a class="brand" href="{{.Links.Home}}">{{if .Site.Brand.Logo}}<img src="{{.Links.Asset .Site.Brand.Logo}}" alt="{{.Site.Brand.Name}}">{{else}}{{.Site.Brand.Name}}<span class="dot">.</span>{{end}}</a>
    <nav class="nav-links">
      {{range .Site.FooterNav}}<a href="{{$.Links.Href .Href}}">{{.Label}}</a>{{end}}
    </nav>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">&#9680;</button>
  </header>
{{end}}

{{define "contact"}}
  <section class="contact" id="contact">
    <div class="contact-info">
      <span class="label">{{.Site.Contact.Label}}</span>
      <h2>{{.Site.Contact.Headline}}</h2>
      <p>{{.Site.Contact.Description}}</p>
      <ul>
        {{with .Site.Contact.Email}}<li><a href="mailto:{{.}}">{{.}}</a></li>{{end}}
        {{with .Site.Contact.Phone}}<li><a href="tel:{{.}}">{{.}}</a></li>{{end}}
        {{with .Site.Contact.WhatsApp}}<li><a href="https://wa.me/{{.}}">WhatsApp</a></li>{{end}}
        {{with .Site.Contact.Address}}<li>{{.}}</li>{{end}}
      </ul>
    </div>
    {{if .ContactAction}}
    <form class="contact-form" id="contact-form" method="post" action="{{.ContactAction}}">
      <input type="hidden" name="source_page" value="{{.SourcePage}}">
      {{range .Site.Contact.FormFields}}
      <label for="field-{{.ID}}">{{.Label}}{{if .Required}} *{{end}}</label>
      {{if eq (print .Type) "textarea"}}<textarea id="field-{{.ID}}" name="{{.ID}}"{{if .Required}} required{{end}}></textarea>
      {{else}}<input id="field-{{.ID}}" name="{{.ID}}" type="{{.Type}}"{{if .Required}} required{{end}}>{{end}}
      <span class="field-error" data-field="{{.ID}}"></span>
      {{end}}
      <button type="submit">{{.Site.Contact.CTA}}</button>
      <p class="form-status" id="form-status">{{if .Sent}}Thanks! We'll be in touch soon.{{end}}</p>
    </form>
    {{end}}
  </section>
{{end}}

{{define "foot"}}
  <footer class="footer">
    <div class="footer-brand">{{.Site.Brand.Name}}<span class="dot">.</span> <small>{{.Site.Brand.Tagline}}</small></div>
    <nav>{{range .Site.FooterNav}}<a href="{{$.Links.Href .Href}}">{{.Label}}</a>{{end}}</nav>
    {{if .Socials}}<div class="socials">{{range .Socials}}<a href="{{.URL}}" rel="noopener" target="_blank">{{.Name}}</a>{{end}}</div>{{end}}
  </footer>
  <script>window.__PAGE__ = {{.Config}};</script>
  <script src="{{.Links.Static "script.js"}}"></script>
</body>
</html>
{{end}}

{{define "home"}}{{template "head" .}}
<main>
  <section class="hero" id="about">
    <div class="hero-copy">
      <h1>{{.Site.Hero.Headline.Prefix}} <span class="highlight">{{.Site.Hero.Headline.Highlight}}</span> {{.Site.Hero.Headline.Suffix}}</h1>
      <p class="subtitle">{{.Site.Hero.Subtitle}}</p>
      <p>{{.Site.Hero.Description}}</p>
      <div class="hero-pricing"><span>{{.Site.Hero.Pricing.Label}}</span> <strong>{{.Site.Hero.Pricing.Value}}</strong> <small>{{.Site.Hero.Pricing.Subtext}}</small></div>
      <a class="btn" href="{{.Links.Href .Site.Hero.CTA.Link}}">{{.Site.Hero.CTA.Text}}</a>
    </div>
    <div class="hero-toasts">
      {{range .Site.Hero.Notifications}}<div class="toast toast-{{.Color}}"><span>{{.Icon}}</span><div><b>{{.Title}}</b><small>{{.Subtitle}}</small></div></div>{{end}}
    </div>
  </section>

  <section class="offerings" id="services">
    <div class="carousel" id="offerings" data-cursor="{{.Config.Cursor}}">
      <button class="carousel-prev" data-action="prev" aria-label="Previous">&#8249;</button>
      <div class="carousel-stage">
        {{range .Cards}}
        <article class="card {{.Slot.Item.Bg}} {{.Slot.Item.BorderColor}}{{if .Slot.Active}} active {{.Slot.Item.RingColor}}{{end}}" data-offset="{{.Slot.Offset}}" data-index="{{.Slot.Index}}"
          style="--x:{{.Pose.X}}px;--scale:{{.Pose.Scale}};--opacity:{{.Pose.Opacity}};--z:{{.Pose.ZIndex}};--rotate:{{.Pose.RotateY}}deg">
          <div class="card-media {{.Slot.Item.Color}}">{{if .Slot.Item.IconIsImage}}<img src="{{$.Links.Asset .Slot.Item.Image}}" alt="{{.Slot.Item.Title}}">{{else}}<span class="glyph">{{.Slot.Item.Icon}}</span>{{end}}</div>
          <h3>{{.Slot.Item.Title}}</h3>
          <p class="card-subtitle {{.Slot.Item.Accent}}">{{.Slot.Item.Subtitle}}</p>
          <p class="card-description">{{.Slot.Item.Description}}</p>
        </article>
        {{end}}
      </div>
      <button class="carousel-next" data-action="next" aria-label="Next">&#8250;</button>
      <div class="dots">{{range $i, $on := .Dots}}<a class="dot-btn{{if $on}} on{{end}}" href="?offering={{$i}}#services" data-index="{{$i}}" aria-label="Show offering {{inc $i}}"></a>{{end}}</div>
    </div>
  </section>

  <section class="tech" id="tech">
    <span class="label">{{.Site.TechTiles.Subtitle}}</span>
    <h2>{{.Site.TechTiles.Title}}</h2>
    <div class="strip-viewport" id="tech-strip" data-direction="neutral">
      <div class="strip">
        {{range .Tiles}}<div class="tile"><img src="https://cdn.simpleicons.org/{{.Slug}}" alt="" loading="lazy"><b>{{.Name}}</b><small>{{.Desc}}</small></div>{{end}}
      </div>
    </div>
    <p>{{.Site.TechTiles.Description}}</p>
  </section>

  <section class="details">
    <div>
      <span class="label">{{.Site.ProductDetails.Subtitle}}</span>
      <h2>{{.Site.ProductDetails.Title}}</h2>
      <p>{{.Site.ProductDetails.Description}}</p>
      <div class="markdown">{{.LongDescription}}</div>
      <ul class="checks">{{range .Site.ProductDetails.Features}}<li>{{.}}</li>{{end}}</ul>
      <div class="stats-row">{{range .Site.ProductDetails.Stats}}<div><strong>{{.Value}}</strong><small>{{.Label}}</small></div>{{end}}</div>
    </div>
    {{with .Site.ProductDetails.Image}}<img class="details-image" src="{{$.Links.Asset .}}" alt="">{{end}}
  </section>

  <section class="marquee marquee-{{.Site.Marquee.Color}}" aria-hidden="true">
    <div class="marquee-track">{{range times 6}}<span>{{$.Site.Marquee.Text}}</span><span>{{$.Site.Marquee.SecondaryText}}</span>{{end}}</div>
  </section>

  <section class="pricing" id="pricing">
    <h2>{{.Site.Pricing.Headline}}</h2>
    <p>{{.Site.Pricing.Subtitle}}</p>
    {{if .Site.Pricing.BillingToggle}}
    <div class="billing-toggle" id="billing-toggle">
      <a href="?billing=monthly#pricing" data-billing="monthly" class="{{if not .Yearly}}on{{end}}">Monthly</a>
      <a href="?billing=yearly#pricing" data-billing="yearly" class="{{if .Yearly}}on{{end}}">Yearly</a>
    </div>
    {{end}}
    <div class="plans">
      {{range .Plans}}
      <div class="plan{{if .Popular}} popular{{end}}">
        {{if .Popular}}<span class="badge">Most Popular</span>{{end}}
        <h3>{{.Name}}</h3>
        <p>{{.Description}}</p>
        <div class="price" data-monthly="{{.Monthly}}" data-yearly="{{.Yearly}}">{{.Price}}</div>
        <ul class="checks">{{range .Features}}<li>{{.}}</li>{{end}}</ul>
        <a class="btn" href="#contact">{{.CTA}}</a>
      </div>
      {{end}}
    </div>
  </section>

  <section class="showcase" id="work">
    <span class="label">{{.Site.Showcase.Badge}}</span>
    <h2>{{.Site.Showcase.Headline}}</h2>
    <div class="projects">
      {{range .Site.Showcase.Projects}}
      <a class="project" href="{{$.Links.Project .Slug}}">
        {{with .Image}}<img src="{{$.Links.Asset .}}" alt="" loading="lazy">{{end}}
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
      </a>
      {{end}}
    </div>
  </section>

  <section class="stats">
    {{range .Site.Stats}}<div class="stat"><span>{{.Icon}}</span><strong data-count="{{.Value}}">{{.Value}}{{.Suffix}}</strong><small>{{.Label}}</small></div>{{end}}
  </section>

  <section class="testimonials">
    <span class="label">{{.Site.Testimonials.Badge}}</span>
    <h2>{{.Site.Testimonials.Headline}}</h2>
    <div class="reviews">
      {{range .Site.Testimonials.Reviews}}
      <figure class="review">
        <blockquote>{{.Quote}}</blockquote>
        <figcaption>{{with .Avatar}}<img src="{{.}}" alt="" loading="lazy">{{end}}<b>{{.Author}}</b> <small>{{.Role}}</small></figcaption>
      </figure>
      {{end}}
    </div>
  </section>

  {{if .FAQ}}
  <section class="faq" id="faq">
    <h2>Frequently Asked Questions</h2>
    {{range .FAQ}}
    <details class="faq-item"{{with .Category}} data-category="{{.}}"{{end}}>
      <summary>{{.Question}}</summary>
      <div class="markdown">{{.Answer}}</div>
    </details>
    {{end}}
  </section>
  {{end}}

  {{template "contact" .}}
</main>
{{template "foot" .}}{{end}}

{{define "project"}}{{template "head" .}}
<main class="project-page" style="--theme:{{.Theme.Base}};--theme-accent:{{.Theme.Accent}};--theme-deep:{{.Theme.Deep}};--theme-muted:{{.Theme.Muted}}">
  <section class="lp-hero">
    <div>
      <a class="back" href="{{.Links.Section "work"}}">&larr; All projects</a>
      <h1>{{.Landing.Hero.Title}}</h1>
      <p class="subtitle">{{.Landing.Hero.Subtitle}}</p>
      <ul class="pills">{{range .Landing.Hero.Pills}}<li>{{.}}</li>{{end}}</ul>
      <a class="btn btn-theme" href="#contact">{{.Landing.Hero.CTA}}</a>
    </div>
    {{with .Landing.Hero.Image}}<img class="lp-hero-image" src="{{$.Links.Asset .}}" alt="{{$.Project.Title}}">{{end}}
  </section>

  <section class="lp-facts">
    <div><small>Client</small><b>{{.Project.Client}}</b></div>
    <div><small>Role</small><b>{{.Project.Role}}</b></div>
    <div><small>Timeline</small><b>{{.Project.Timeline}}</b></div>
  </section>

  <section class="lp-about">
    {{with .Landing.About.Image}}<img src="{{$.Links.Asset .}}" alt="">{{end}}
    <div>
      <h2>{{.Landing.About.Title}}</h2>
      <div class="markdown">{{.About}}</div>
    </div>
  </section>

  <section class="lp-story">
    <div><h3>The Challenge</h3><div class="markdown">{{.Challenge}}</div></div>
    <div><h3>The Solution</h3><div class="markdown">{{.Solution}}</div></div>
  </section>

  {{if .Project.Features}}
  <section class="lp-features">
    <h2>Key Features</h2>
    <ul class="checks">{{range .Project.Features}}<li>{{.}}</li>{{end}}</ul>
    {{if .Project.Stats}}<div class="stats-row">{{range .Project.Stats}}<div><strong>{{.Value}}</strong><small>{{.Label}}</small></div>{{end}}</div>{{end}}
  </section>
  {{end}}

  {{if .Landing.TechStack}}
  <section class="lp-stack">
    <h2>Technology Stack</h2>
    <div class="stack">{{range .Landing.TechStack}}<div class="stack-item">{{with .Logo}}<img src="{{$.Links.Asset .}}" alt="" loading="lazy">{{end}}<b>{{.Name}}</b><small>{{.Type}}</small></div>{{end}}</div>
  </section>
  {{end}}

  {{if .Landing.Modules}}
  <section class="lp-modules">
    <h2>Modules</h2>
    {{range .Landing.Modules}}
    <div class="module">
      <span class="badge">{{.Badge}}</span>
      <h3>{{.Title}}</h3>
      <p>{{.Description}}</p>
      {{with .Image}}<img src="{{$.Links.Asset .}}" alt="" loading="lazy">{{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Screens}}
  <section class="lp-screens">
    <h2>App Screens</h2>
    <div class="carousel" id="screens" data-cursor="{{.Config.Cursor}}">
      <button class="carousel-prev" data-action="prev" aria-label="Previous">&#8249;</button>
      <div class="carousel-stage">
        {{range .Screens}}
        <figure class="card screen{{if .Slot.Active}} active{{end}}" data-offset="{{.Slot.Offset}}" data-index="{{.Slot.Index}}"
          style="--x:{{.Pose.X}}px;--scale:{{.Pose.Scale}};--opacity:{{.Pose.Opacity}};--z:{{.Pose.ZIndex}};--rotate:{{.Pose.RotateY}}deg">
          <img src="{{$.Links.Asset .Slot.Item}}" alt="Screen {{inc .Slot.Index}}">
        </figure>
        {{end}}
      </div>
      <button class="carousel-next" data-action="next" aria-label="Next">&#8250;</button>
    </div>
  </section>
  {{end}}

  {{if .Landing.RadialFeatures}}
  <section class="lp-radial">
    <h2>Everything You Need</h2>
    <div class="radial">{{range .Landing.RadialFeatures}}<div class="feature icon-{{lower .Icon}}"><b>{{.Title}}</b><small>{{.Description}}</small></div>{{end}}</div>
  </section>
  {{end}}

  {{with .Project.Gallery}}
  <section class="lp-gallery">{{range .}}<img src="{{$.Links.Asset .}}" alt="" loading="lazy">{{end}}</section>
  {{end}}

  {{with .Project.Testimonial}}
  <figure class="review lp-quote"><blockquote>{{.Quote}}</blockquote><figcaption><b>{{.Author}}</b> <small>{{.Role}}</small></figcaption></figure>
  {{end}}

  {{if .More}}
  <section class="showcase">
    <h2>More Projects</h2>
    <div class="projects">{{range .More}}<a class="project" href="{{$.Links.Project .Slug}}"><h3>{{.Title}}</h3><p>{{.Description}}</p></a>{{end}}</div>
  </section>
  {{end}}

  {{template "contact" .}}
</main>
{{template "foot" .}}{{end}}
`

// cssContent is the stylesheet shared by every page.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #111111;
  --text-muted: #6b7280;
  --border: #e5e7eb;
  --accent: #ff3b30;
  --theme: #3b82f6;
  --theme-accent: #1d64d8;
  --theme-deep: #004ab4;
  --theme-muted: #276ee2;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 10px 30px rgba(0,0,0,0.12);
  --card-width: 340px;
}

[data-theme="dark"] {
  --bg: #0b0b0f;
  --bg-secondary: #15151c;
  --text: #f3f4f6;
  --text-muted: #9ca3af;
  --border: #27272f;
  --shadow: 0 1px 3px rgba(0,0,0,0.4);
  --shadow-lg: 0 10px 30px rgba(0,0,0,0.5);
}

/* ============ Base ============ */
*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif; color: var(--text); background: var(--bg); line-height: 1.6; }
body.smooth { scroll-behavior: smooth; }
body.still * { transition: none !important; animation: none !important; }
a { color: inherit; }
img { max-width: 100%; display: block; }
section { padding: 72px 6vw; }
h1 { font-size: clamp(2rem, 5vw, 3.5rem); line-height: 1.1; }
h2 { font-size: clamp(1.5rem, 3vw, 2.4rem); margin-bottom: 16px; }
.label { text-transform: uppercase; letter-spacing: .12em; font-size: .75rem; color: var(--accent); font-weight: 700; }
.highlight { color: var(--accent); }
.dot { color: var(--accent); }
.btn { display: inline-block; padding: 12px 24px; border-radius: 999px; background: var(--text); color: var(--bg); text-decoration: none; font-weight: 600; }
.btn-theme { background: var(--theme); color: #fff; }
.btn-theme:hover { background: var(--theme-accent); }
.markdown p + p, .markdown ul { margin-top: 8px; }
.markdown ul { padding-left: 20px; }
.checks { list-style: none; display: grid; gap: 8px; margin: 16px 0; }
.checks li::before { content: "\2713  "; color: var(--accent); font-weight: 700; }

/* ============ Navbar ============ */
.navbar { position: sticky; top: 0; z-index: 50; display: flex; align-items: center; gap: 24px; padding: 16px 6vw; background: var(--bg); border-bottom: 1px solid var(--border); }
.brand { font-weight: 800; font-size: 1.4rem; text-decoration: none; }
.nav-links { display: flex; gap: 20px; margin-left: auto; }
.nav-links a { text-decoration: none; color: var(--text-muted); }
.theme-toggle { background: none; border: 1px solid var(--border); border-radius: 8px; padding: 4px 10px; color: var(--text); cursor: pointer; }

/* ============ Hero ============ */
.hero { display: grid; grid-template-columns: 1.3fr 1fr; gap: 48px; align-items: center; }
.hero .subtitle { font-size: 1.25rem; margin: 16px 0 8px; }
.hero-pricing { margin: 24px 0; }
.hero-toasts { display: grid; gap: 16px; }
.toast { display: flex; gap: 12px; align-items: center; padding: 14px 18px; border-radius: 16px; background: var(--bg-secondary); box-shadow: var(--shadow-lg); }
.toast small { display: block; color: var(--text-muted); }
.toast-green { border-left: 4px solid #16a34a; }
.toast-orange { border-left: 4px solid #f97316; }

/* ============ Carousel ============ */
.carousel { position: relative; height: 480px; display: flex; align-items: center; justify-content: center; perspective: 1200px; }
.carousel-stage { position: relative; width: var(--card-width); height: 420px; }
.card { position: absolute; inset: 0; padding: 24px; border-radius: 24px; border: 1px solid var(--border); background: var(--bg); box-shadow: var(--shadow-lg);
  transform: translateX(var(--x)) scale(var(--scale)) rotateY(var(--rotate)); opacity: var(--opacity); z-index: var(--z);
  transition: transform .5s ease, opacity .5s ease; cursor: pointer; }
.card.active { cursor: default; box-shadow: 0 0 0 4px var(--border), var(--shadow-lg); }
.card-media { height: 200px; border-radius: 16px; display: flex; align-items: center; justify-content: center; margin-bottom: 16px; overflow: hidden; background: var(--bg-secondary); }
.card-media img { max-height: 180px; }
.glyph { font-size: 4rem; }
.card-subtitle { font-weight: 600; }
.card-description { color: var(--text-muted); font-size: .95rem; }
.carousel-prev, .carousel-next { position: absolute; top: 50%; z-index: 20; width: 44px; height: 44px; border-radius: 50%; border: 1px solid var(--border); background: var(--bg); font-size: 1.6rem; cursor: pointer; }
.carousel-prev { left: 2vw; }
.carousel-next { right: 2vw; }
.dots { position: absolute; bottom: 0; display: flex; gap: 8px; }
.dot-btn { width: 10px; height: 10px; border-radius: 50%; background: var(--border); }
.dot-btn.on { background: var(--accent); width: 28px; border-radius: 6px; }
.screen { padding: 8px; }

/* ============ Tech strip ============ */
.tech { text-align: center; }
.strip-viewport { position: relative; overflow: hidden; margin: 32px 0; cursor: grab; touch-action: pan-y; }
.strip-viewport::before, .strip-viewport::after { content: ""; position: absolute; top: 0; bottom: 0; width: 80px; z-index: 2; pointer-events: none; transition: opacity .3s; }
.strip-viewport::before { left: 0; background: linear-gradient(90deg, var(--bg), transparent); }
.strip-viewport::after { right: 0; background: linear-gradient(270deg, var(--bg), transparent); }
.strip-viewport[data-direction="left"]::before { opacity: .3; }
.strip-viewport[data-direction="right"]::after { opacity: .3; }
.strip { display: flex; gap: 12px; will-change: transform; }
.tile { flex: 0 0 140px; padding: 16px; border-radius: 16px; background: var(--bg-secondary); border: 1px solid var(--border); }
.tile img { width: 32px; height: 32px; margin: 0 auto 8px; }
.tile small { display: block; color: var(--text-muted); }

/* ============ Details, marquee ============ */
.details { display: grid; grid-template-columns: 1fr 1fr; gap: 48px; align-items: center; }
.details-image { border-radius: 24px; box-shadow: var(--shadow-lg); }
.stats-row { display: flex; gap: 32px; margin-top: 16px; }
.stats-row strong { display: block; font-size: 1.6rem; }
.marquee { padding: 20px 0; overflow: hidden; color: #fff; background: #ff3b30; }
.marquee-red { background: #ff3b30; }
.marquee-black { background: #111; }
.marquee-track { display: flex; gap: 48px; white-space: nowrap; font-weight: 800; font-size: 1.6rem; animation: marquee 40s linear infinite; }
@keyframes marquee { from { transform: translateX(0); } to { transform: translateX(-50%); } }

/* ============ Pricing ============ */
.pricing { text-align: center; }
.billing-toggle { display: inline-flex; border: 1px solid var(--border); border-radius: 999px; padding: 4px; margin: 16px 0 32px; }
.billing-toggle a { padding: 6px 18px; border-radius: 999px; text-decoration: none; }
.billing-toggle a.on { background: var(--text); color: var(--bg); }
.plans { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 24px; text-align: left; }
.plan { position: relative; padding: 32px; border-radius: 24px; border: 1px solid var(--border); }
.plan.popular { border: 2px solid var(--accent); box-shadow: var(--shadow-lg); }
.plan .badge { position: absolute; top: -12px; right: 24px; }
.price { font-size: 2rem; font-weight: 800; margin: 16px 0; }
.badge { display: inline-block; padding: 2px 12px; border-radius: 999px; background: var(--accent); color: #fff; font-size: .75rem; font-weight: 700; }

/* ============ Showcase, stats, reviews, faq ============ */
.projects { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 24px; }
.project { display: block; padding: 16px; border-radius: 20px; border: 1px solid var(--border); text-decoration: none; }
.project img { border-radius: 12px; margin-bottom: 12px; }
.project p { color: var(--text-muted); }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 24px; text-align: center; }
.stat strong { display: block; font-size: 2.4rem; }
.reviews { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 24px; }
.review { padding: 24px; border-radius: 20px; background: var(--bg-secondary); }
.review figcaption { display: flex; gap: 8px; align-items: center; margin-top: 16px; }
.review figcaption img { width: 36px; height: 36px; border-radius: 50%; }
.faq-item { border-bottom: 1px solid var(--border); padding: 16px 0; }
.faq-item summary { font-weight: 600; cursor: pointer; }
.faq-item .markdown { margin-top: 8px; color: var(--text-muted); }

/* ============ Contact, footer ============ */
.contact { display: grid; grid-template-columns: 1fr 1fr; gap: 48px; background: var(--bg-secondary); }
.contact ul { list-style: none; margin-top: 16px; display: grid; gap: 6px; }
.contact-form { display: grid; gap: 6px; }
.contact-form input, .contact-form textarea { padding: 12px; border-radius: 12px; border: 1px solid var(--border); background: var(--bg); color: var(--text); font: inherit; }
.contact-form button { margin-top: 12px; padding: 14px; border: 0; border-radius: 999px; background: var(--accent); color: #fff; font-weight: 700; cursor: pointer; }
.field-error { color: #dc2626; font-size: .8rem; min-height: 1em; }
.form-status { font-weight: 600; }
.footer { display: flex; flex-wrap: wrap; gap: 24px; align-items: center; padding: 32px 6vw; border-top: 1px solid var(--border); }
.footer nav, .socials { display: flex; gap: 16px; }
.socials { margin-left: auto; text-transform: capitalize; }

/* ============ Project page ============ */
.project-page .label, .project-page .highlight { color: var(--theme); }
.lp-hero { display: grid; grid-template-columns: 1.2fr 1fr; gap: 48px; align-items: center; background: linear-gradient(135deg, var(--theme), var(--theme-deep)); color: #fff; }
.lp-hero .back { color: rgba(255,255,255,.8); text-decoration: none; }
.lp-hero .btn-theme { background: #fff; color: var(--theme-deep); }
.pills { list-style: none; display: flex; flex-wrap: wrap; gap: 8px; margin: 20px 0; }
.pills li { padding: 4px 14px; border-radius: 999px; background: rgba(255,255,255,.15); }
.lp-hero-image { max-height: 480px; margin: 0 auto; }
.lp-facts { display: flex; gap: 48px; }
.lp-facts small { display: block; color: var(--text-muted); }
.lp-about, .lp-story { display: grid; grid-template-columns: 1fr 1fr; gap: 48px; align-items: center; }
.lp-story h3 { color: var(--theme); }
.stack { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 16px; }
.stack-item { padding: 20px; border-radius: 16px; border: 1px solid var(--border); text-align: center; }
.stack-item img { height: 40px; margin: 0 auto 8px; }
.stack-item small { display: block; color: var(--text-muted); }
.module { padding: 24px 0; border-bottom: 1px solid var(--border); }
.module .badge { background: var(--theme-muted); }
.radial { display: grid; grid-template-columns: repeat(3, 1fr); gap: 16px; }
.feature { padding: 20px; border-radius: 16px; border: 1px solid var(--border); }
.feature b { color: var(--theme); display: block; }
.lp-gallery { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 16px; }
.lp-quote { margin: 0 6vw 48px; border-left: 4px solid var(--theme); }

@media (max-width: 860px) {
  .hero, .details, .contact, .lp-hero, .lp-about, .lp-story { grid-template-columns: 1fr; }
  .nav-links { display: none; }
  .radial { grid-template-columns: 1fr 1fr; }
  :root { --card-width: 280px; }
}
`

// jsContent runs the carousels, tech strip, pricing toggle, theme and
// contact form. With a live URL the offerings carousel is a thin view of
// the server session; otherwise it runs locally.
const jsContent = `(function() {
  "use strict";

  var cfg = window.__PAGE__ || {};
  var html = document.documentElement;

  // ---------- Theme ----------
  var themeToggle = document.getElementById("theme-toggle");
  function storedTheme() {
    try { return localStorage.getItem("productpage-theme"); } catch (e) { return null; }
  }
  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("productpage-theme", theme); } catch (e) {}
  }
  if (storedTheme()) { setTheme(storedTheme()); }
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  // ---------- Carousel ----------
  function mod(c, n) { return ((c % n) + n) % n; }

  function pose(offset) {
    var abs = Math.abs(offset);
    if (offset === 0) {
      return { x: 0, scale: 1, opacity: 1, z_index: 10, rotate_y: 0 };
    }
    return {
      x: offset * (cfg.card_width || 360),
      scale: 0.85,
      opacity: Math.max(0.3, 0.8 - abs * 0.2),
      z_index: 10 - abs,
      rotate_y: offset * -5
    };
  }

  function localWindow(cursor, n) {
    return (cfg.offsets || [-2, -1, 0, 1, 2]).map(function(off) {
      return { offset: off, index: mod(cursor + off, n), pose: pose(off) };
    });
  }

  function Carousel(root, items) {
    this.root = root;
    this.items = items;
    this.cursor = Number(root.getAttribute("data-cursor")) || 20000;
    this.cards = root.querySelectorAll(".card");
    this.dots = root.querySelectorAll(".dot-btn");
    this.timer = null;
    this.socket = null;
  }

  Carousel.prototype.paint = function(state) {
    var self = this;
    state.window.forEach(function(slot, i) {
      var card = self.cards[i];
      if (!card) { return; }
      var item = self.items[slot.index] || {};
      var p = slot.pose;
      card.setAttribute("data-offset", slot.offset);
      card.setAttribute("data-index", slot.index);
      card.classList.toggle("active", slot.offset === 0);
      card.style.setProperty("--x", p.x + "px");
      card.style.setProperty("--scale", p.scale);
      card.style.setProperty("--opacity", p.opacity);
      card.style.setProperty("--z", p.z_index);
      card.style.setProperty("--rotate", p.rotate_y + "deg");
      var img = card.querySelector("img");
      if (img && item.image) { img.src = item.image; }
      var h = card.querySelector("h3");
      if (h) { h.textContent = item.title; }
      var sub = card.querySelector(".card-subtitle");
      if (sub) { sub.textContent = item.subtitle; }
      var desc = card.querySelector(".card-description");
      if (desc) { desc.textContent = item.description; }
    });
    for (var d = 0; d < this.dots.length; d++) {
      this.dots[d].classList.toggle("on", d === state.active);
    }
  };

  Carousel.prototype.move = function(delta) {
    this.cursor += delta;
    var n = this.items.length;
    this.paint({ cursor: this.cursor, active: mod(this.cursor, n), window: localWindow(this.cursor, n) });
  };

  Carousel.prototype.send = function(msg) {
    if (this.socket && this.socket.readyState === 1) {
      this.socket.send(JSON.stringify(msg));
      return true;
    }
    return false;
  };

  Carousel.prototype.next = function() { if (!this.send({ type: "next" })) { this.move(1); } };
  Carousel.prototype.prev = function() { if (!this.send({ type: "prev" })) { this.move(-1); } };
  Carousel.prototype.jump = function(target) {
    if (this.send({ type: "jump", index: target })) { return; }
    // Linear delta from the current index; the cursor is never reset.
    this.move(target - mod(this.cursor, this.items.length));
  };
  Carousel.prototype.select = function(offset) {
    if (!this.send({ type: "select", offset: offset })) { this.move(offset); }
  };

  Carousel.prototype.startLocal = function() {
    var self = this;
    this.stopLocal();
    this.timer = setInterval(function() { self.move(1); }, cfg.autoplay_ms || 4000);
  };
  Carousel.prototype.stopLocal = function() {
    if (this.timer) { clearInterval(this.timer); this.timer = null; }
  };

  Carousel.prototype.connect = function(url) {
    var self = this;
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws;
    var start = "?offering=" + mod(this.cursor, this.items.length);
    try { ws = new WebSocket(proto + location.host + url + start); } catch (e) { this.startLocal(); return; }
    ws.onopen = function() { self.socket = ws; self.stopLocal(); };
    ws.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type === "state") {
        self.cursor = msg.cursor;
        self.paint(msg);
      }
    };
    ws.onclose = function() {
      if (self.socket === ws) { self.socket = null; }
      self.startLocal();
    };
  };

  Carousel.prototype.bind = function(live) {
    var self = this;
    this.root.addEventListener("click", function(ev) {
      var action = ev.target.closest("[data-action]");
      if (action) {
        ev.preventDefault();
        if (action.getAttribute("data-action") === "next") { self.next(); } else { self.prev(); }
        return;
      }
      var dot = ev.target.closest(".dot-btn");
      if (dot) {
        ev.preventDefault();
        self.jump(Number(dot.getAttribute("data-index")));
        return;
      }
      var card = ev.target.closest(".card");
      if (card) {
        var off = Number(card.getAttribute("data-offset"));
        if (off !== 0) { self.select(off); }
      }
    });
    this.root.addEventListener("mouseenter", function() {
      if (!self.send({ type: "pointer_enter" })) { self.stopLocal(); }
    });
    this.root.addEventListener("mouseleave", function() {
      if (!self.send({ type: "pointer_leave" })) { self.startLocal(); }
    });
    if (live) { this.connect(live); } else { this.startLocal(); }
  };

  var offerings = document.getElementById("offerings");
  if (offerings && cfg.page === "home") {
    new Carousel(offerings, cfg.items || []).bind(cfg.live_url);
  }
  var screens = document.getElementById("screens");
  if (screens && cfg.page === "project") {
    new Carousel(screens, cfg.items || []).bind("");
  }

  // ---------- Tech strip ----------
  var viewport = document.getElementById("tech-strip");
  if (viewport && cfg.thresholds && cfg.thresholds.jump > 0) {
    var strip = viewport.querySelector(".strip");
    var th = cfg.thresholds;
    var speed = cfg.scroll_speed;
    var offset = cfg.start_offset;
    var dragging = false, lastX = 0, lastT = 0, direction = "neutral", last = performance.now();

    var setDirection = function(v) {
      var abs = Math.abs(v);
      if (abs > 10) { direction = v > 0 ? "right" : "left"; } else if (abs < 2) { direction = "neutral"; }
      viewport.setAttribute("data-direction", direction);
    };
    var paint = function() { strip.style.transform = "translateX(" + offset + "px)"; };
    var frame = function(now) {
      var dt = (now - last) / 1000;
      last = now;
      if (!dragging && dt > 0 && dt < 1) {
        offset += speed * dt;
        setDirection(speed);
        while (offset <= th.snap_low) { offset += th.jump; }
        while (offset >= th.snap_high) { offset -= th.jump; }
        paint();
      }
      requestAnimationFrame(frame);
    };
    viewport.addEventListener("pointerdown", function(ev) {
      dragging = true; lastX = ev.clientX; lastT = ev.timeStamp;
      viewport.setPointerCapture(ev.pointerId);
    });
    viewport.addEventListener("pointermove", function(ev) {
      if (!dragging) { return; }
      var dx = ev.clientX - lastX, dt = (ev.timeStamp - lastT) / 1000;
      lastX = ev.clientX; lastT = ev.timeStamp;
      offset = Math.min(th.snap_high, Math.max(th.snap_low, offset + dx));
      if (dt > 0) { setDirection(dx / dt); }
      paint();
    });
    var endDrag = function() {
      if (!dragging) { return; }
      dragging = false;
      if (offset <= th.drag_low) { offset += th.jump; } else if (offset >= th.drag_high) { offset -= th.jump; }
      setDirection(0);
      paint();
    };
    viewport.addEventListener("pointerup", endDrag);
    viewport.addEventListener("pointercancel", endDrag);
    paint();
    requestAnimationFrame(frame);
  }

  // ---------- Pricing ----------
  var toggle = document.getElementById("billing-toggle");
  if (toggle) {
    toggle.addEventListener("click", function(ev) {
      var btn = ev.target.closest("[data-billing]");
      if (!btn) { return; }
      ev.preventDefault();
      var period = btn.getAttribute("data-billing");
      toggle.querySelectorAll("[data-billing]").forEach(function(b) { b.classList.toggle("on", b === btn); });
      document.querySelectorAll(".price").forEach(function(p) { p.textContent = p.getAttribute("data-" + period); });
    });
  }

  // ---------- Contact form ----------
  var form = document.getElementById("contact-form");
  if (form && window.fetch) {
    var status = document.getElementById("form-status");
    form.addEventListener("submit", function(ev) {
      ev.preventDefault();
      var body = {};
      new FormData(form).forEach(function(v, k) { body[k] = String(v); });
      form.querySelectorAll(".field-error").forEach(function(el) { el.textContent = ""; });
      fetch(form.action, {
        method: "POST",
        headers: { "Content-Type": "application/json", "Accept": "application/json" },
        body: JSON.stringify(body)
      }).then(function(res) {
        return res.json().then(function(data) { return { ok: res.ok, data: data }; });
      }).then(function(r) {
        if (r.ok) {
          form.reset();
          status.textContent = r.data.message || "Sent.";
          return;
        }
        var fields = r.data.fields || {};
        Object.keys(fields).forEach(function(id) {
          var el = form.querySelector('.field-error[data-field="' + id + '"]');
          if (el) { el.textContent = fields[id]; }
        });
        status.textContent = r.data.error || "Something went wrong.";
      }).catch(function() {
        status.textContent = "Could not send right now. Please try again.";
      });
    });
  }
})();
`
