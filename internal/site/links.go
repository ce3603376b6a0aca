package site

import (
	"strings"
)

// Linker builds the URLs a page links to. Served pages use absolute paths;
// statically built pages use paths relative to their own depth so the
// output directory can be opened from disk or hosted under any prefix.
type Linker struct {
	base   string
	static bool
}

// ServerLinks returns the linker used by the HTTP server.
func ServerLinks() Linker {
	return Linker{base: "/"}
}

// StaticLinks returns the linker for a built page depth directories below
// the output root.
func StaticLinks(depth int) Linker {
	return Linker{base: strings.Repeat("../", depth), static: true}
}

// Base is the prefix pointing at the site root.
func (l Linker) Base() string { return l.base }

// Home links to the root page.
func (l Linker) Home() string {
	if l.static {
		return l.base + "index.html"
	}
	return l.base
}

// Section links to an anchor on the root page.
func (l Linker) Section(id string) string {
	return l.Home() + "#" + id
}

// Project links to the detail page of slug.
func (l Linker) Project(slug string) string {
	if l.static {
		return l.base + "project/" + slug + "/index.html"
	}
	return l.base + "project/" + slug
}

// Static links to a generated file such as style.css.
func (l Linker) Static(name string) string {
	return l.base + name
}

// Asset maps a content image path onto the assets tree. External URLs are
// returned unchanged.
func (l Linker) Asset(p string) string {
	switch {
	case p == "":
		return ""
	case strings.HasPrefix(p, "http://"), strings.HasPrefix(p, "https://"),
		strings.HasPrefix(p, "data:"), strings.HasPrefix(p, "//"):
		return p
	}
	return l.base + "assets/" + strings.TrimPrefix(p, "/")
}

// Href resolves a content link. Anchors ("#contact") and root-relative
// links ("/project/x") are rebased onto the root page; everything else is
// returned as is.
func (l Linker) Href(h string) string {
	if strings.HasPrefix(h, "#") {
		return l.Home() + h
	}
	if !strings.HasPrefix(h, "/") || strings.HasPrefix(h, "//") {
		return h
	}
	rest := strings.TrimPrefix(h, "/")
	if slug, ok := strings.CutPrefix(rest, "project/"); ok && slug != "" {
		return l.Project(strings.TrimSuffix(slug, "/"))
	}
	if rest == "" || strings.HasPrefix(rest, "#") {
		return l.Home() + rest
	}
	return l.base + rest
}
