package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/manishpatil55/demo-product-page/internal/content"
)

func TestBuildSearchIndex(t *testing.T) {
	s := content.Default()
	entries := BuildSearchIndex(s, ServerLinks())

	want := len(s.Offerings) + len(s.Showcase.Projects) + len(s.FAQ)
	if len(entries) != want {
		t.Fatalf("entries = %d, want %d", len(entries), want)
	}

	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Kind]++
		if e.Title == "" || e.Path == "" {
			t.Errorf("entry missing title or path: %+v", e)
		}
	}
	if counts[KindOffering] != 5 || counts[KindProject] != 9 || counts[KindFAQ] != 5 {
		t.Errorf("kind counts = %v", counts)
	}

	if entries[0].Path != "/?offering=0#services" {
		t.Errorf("first offering path = %q", entries[0].Path)
	}
}

func TestBuildSearchIndex_StaticPaths(t *testing.T) {
	entries := BuildSearchIndex(content.Default(), StaticLinks(0))
	for _, e := range entries {
		if e.Kind == KindProject && e.Title == "TradeScribe" && e.Path != "project/tradescribe/index.html" {
			t.Errorf("static project path = %q", e.Path)
		}
	}
}

func TestSearch(t *testing.T) {
	entries := BuildSearchIndex(content.Default(), ServerLinks())

	results := Search(entries, "Lal SWEETS", 5)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].Path != "/project/lal-sweets" {
		t.Errorf("top result = %q, want /project/lal-sweets", results[0].Path)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted by score at %d", i)
		}
	}
}

func TestSearch_TitleOutranksContent(t *testing.T) {
	entries := []SearchEntry{
		{Title: "Other", Content: "mentions widget in passing"},
		{Title: "Widget", Content: "the widget page"},
	}
	results := Search(entries, "widget", 0)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Title != "Widget" || results[0].Score != 4 {
		t.Errorf("top = %+v", results[0])
	}
	if results[1].Score != 1 {
		t.Errorf("second score = %d, want 1", results[1].Score)
	}
}

func TestSearch_Limit(t *testing.T) {
	entries := BuildSearchIndex(content.Default(), ServerLinks())
	if got := Search(entries, "a", 3); len(got) != 3 {
		t.Errorf("limit 3 returned %d", len(got))
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	entries := BuildSearchIndex(content.Default(), ServerLinks())
	if got := Search(entries, "   ", 5); got != nil {
		t.Errorf("empty query returned %v", got)
	}
	if got := Search(entries, "zzzzqqq", 5); len(got) != 0 {
		t.Errorf("no-match query returned %v", got)
	}
}

func TestWriteSearchIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	entries := []SearchEntry{{Kind: KindFAQ, Path: "/#faq", Title: "Q", Summary: "A", Content: "A"}}
	if err := WriteSearchIndex(entries, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []SearchEntry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Q" {
		t.Errorf("got %+v", got)
	}
}

func TestTruncate(t *testing.T) {
	long := make([]byte, maxSearchContent+10)
	for i := range long {
		long[i] = 'a'
	}
	// A multi-byte rune straddling the cut.
	s := string(long[:maxSearchContent-1]) + "₹" + "tail"
	got := truncate(s)
	if len(got) != maxSearchContent-1 {
		t.Errorf("len = %d, want %d", len(got), maxSearchContent-1)
	}
	if truncate("short") != "short" {
		t.Error("short strings should be unchanged")
	}
}
