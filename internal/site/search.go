package site

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/manishpatil55/demo-product-page/internal/content"
)

// Kinds of search entries.
const (
	KindOffering = "offering"
	KindProject  = "project"
	KindFAQ      = "faq"
)

// maxSearchContent bounds the text indexed per entry.
const maxSearchContent = 2000

// SearchEntry represents a single searchable item on the site.
type SearchEntry struct {
	Kind    string `json:"kind"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// SearchResult is an entry with its score.
type SearchResult struct {
	SearchEntry
	Score int `json:"score"`
}

// BuildSearchIndex indexes the offerings, projects and FAQ entries of s.
// Paths are built with links so the index matches the pages it ships with.
func BuildSearchIndex(s *content.Site, links Linker) []SearchEntry {
	var entries []SearchEntry

	for i, o := range s.Offerings {
		entries = append(entries, SearchEntry{
			Kind:    KindOffering,
			Path:    links.Home() + "?offering=" + strconv.Itoa(i) + "#services",
			Title:   o.Title,
			Summary: o.Subtitle,
			Content: truncate(o.Description),
		})
	}

	for _, p := range s.Showcase.Projects {
		parts := []string{p.Description, p.Client, p.Role, p.Challenge, p.Solution}
		parts = append(parts, p.Features...)
		if lp := p.LandingPage; lp != nil {
			parts = append(parts, lp.Hero.Title, lp.Hero.Subtitle, lp.About.Description)
			for _, st := range lp.TechStack {
				parts = append(parts, st.Name)
			}
		}
		entries = append(entries, SearchEntry{
			Kind:    KindProject,
			Path:    links.Project(p.Slug),
			Title:   p.Title,
			Summary: p.Description,
			Content: truncate(joinNonEmpty(parts)),
		})
	}

	for _, f := range s.FAQ {
		entries = append(entries, SearchEntry{
			Kind:    KindFAQ,
			Path:    links.Section("faq"),
			Title:   f.Question,
			Summary: firstLine(f.Answer),
			Content: truncate(f.Answer),
		})
	}

	return entries
}

// Search scores entries against the terms of query, case-insensitively. A
// term in the title scores 3, in the summary 2 and in the content 1. Entries
// that match no term are dropped. Results are ordered by score, then by
// index order. A non-positive limit returns every match.
func Search(entries []SearchEntry, query string, limit int) []SearchResult {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var results []SearchResult
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		summary := strings.ToLower(e.Summary)
		body := strings.ToLower(e.Content)
		score := 0
		for _, t := range terms {
			if strings.Contains(title, t) {
				score += 3
			}
			if strings.Contains(summary, t) {
				score += 2
			}
			if strings.Contains(body, t) {
				score++
			}
		}
		if score > 0 {
			results = append(results, SearchResult{SearchEntry: e, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

func truncate(s string) string {
	if len(s) <= maxSearchContent {
		return s
	}
	// Back off to a rune boundary.
	cut := maxSearchContent
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

func joinNonEmpty(parts []string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
