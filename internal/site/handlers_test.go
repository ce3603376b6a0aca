package site

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/manishpatil55/demo-product-page/internal/content"
	"github.com/manishpatil55/demo-product-page/internal/scroller"
)

func newTestRouter(t *testing.T) (*httptest.Server, *content.Holder) {
	t.Helper()
	holder := content.NewHolder(content.Default())
	r := chi.NewRouter()
	NewHandlers(holder, Options{ContactAction: "/api/contact", LiveURL: "/ws/carousel"}).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, holder
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestHandleHome(t *testing.T) {
	srv, _ := newTestRouter(t)
	resp, body := get(t, srv.URL+"/?offering=4&billing=monthly")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(body, `data-offset="0" data-index="4"`) {
		t.Error("offering 4 should be centered")
	}
	if !strings.Contains(body, ">₹49,999/month<") {
		t.Error("monthly prices should be shown")
	}
}

func TestHandleProject(t *testing.T) {
	srv, _ := newTestRouter(t)
	resp, body := get(t, srv.URL+"/project/health-hub")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Telemedicine App Development") {
		t.Error("project page content missing")
	}
}

func TestHandleProject_UnknownSlugIsEmpty(t *testing.T) {
	srv, _ := newTestRouter(t)
	resp, body := get(t, srv.URL+"/project/does-not-exist")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestHandleStaticFiles(t *testing.T) {
	srv, _ := newTestRouter(t)
	resp, body := get(t, srv.URL+"/style.css")
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css") || !strings.Contains(body, ".carousel") {
		t.Error("style.css not served")
	}
	resp, body = get(t, srv.URL+"/script.js")
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/javascript") || !strings.Contains(body, "WebSocket") {
		t.Error("script.js not served")
	}
}

func TestHandleSearch(t *testing.T) {
	srv, _ := newTestRouter(t)

	resp, body := get(t, srv.URL+"/api/search?q=telemedicine")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	var sr searchResponse
	if err := json.Unmarshal([]byte(body), &sr); err != nil {
		t.Fatal(err)
	}
	if len(sr.Results) == 0 || sr.Results[0].Path != "/project/health-hub" {
		t.Errorf("results = %+v", sr.Results)
	}

	post, err := http.Post(srv.URL+"/api/search", "application/json", strings.NewReader(`{"query":"source code","limit":1}`))
	if err != nil {
		t.Fatal(err)
	}
	defer post.Body.Close()
	if post.StatusCode != http.StatusOK {
		t.Fatalf("POST status = %d", post.StatusCode)
	}
	if err := json.NewDecoder(post.Body).Decode(&sr); err != nil {
		t.Fatal(err)
	}
	if len(sr.Results) != 1 {
		t.Errorf("limit 1 returned %d results", len(sr.Results))
	}

	resp, _ = get(t, srv.URL+"/api/search?q=")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty query status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleContent(t *testing.T) {
	srv, _ := newTestRouter(t)
	resp, body := get(t, srv.URL+"/api/content")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var s content.Site
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		t.Fatal(err)
	}
	if s.Brand.Name != "hxp" || len(s.Offerings) != 5 {
		t.Errorf("content = %+v", s.Brand)
	}
}

func TestHandleTechTiles(t *testing.T) {
	srv, _ := newTestRouter(t)
	_, body := get(t, srv.URL+"/api/techtiles")
	var tt techTilesResponse
	if err := json.Unmarshal([]byte(body), &tt); err != nil {
		t.Fatal(err)
	}
	if len(tt.Technologies) != 12 || tt.Copies != 5 {
		t.Errorf("technologies = %d, copies = %d", len(tt.Technologies), tt.Copies)
	}
	// 12 cards at a 152px pitch.
	if tt.SetWidth != 1824 {
		t.Errorf("SetWidth = %v, want 1824", tt.SetWidth)
	}
	if tt.StartOffset != -3648 || tt.MinOffset != -7296 || tt.MaxOffset != -1824 {
		t.Errorf("offsets = %v %v %v", tt.StartOffset, tt.MinOffset, tt.MaxOffset)
	}
	if tt.Speed >= 0 {
		t.Errorf("Speed = %v, want leftwards", tt.Speed)
	}
	want := scroller.Thresholds{SnapLow: -7296, SnapHigh: -1824, DragLow: -6384, DragHigh: -2736, Jump: 3648}
	if tt.Thresholds != want {
		t.Errorf("Thresholds = %+v, want %+v", tt.Thresholds, want)
	}
}

func TestHandlersFollowReload(t *testing.T) {
	srv, holder := newTestRouter(t)

	next := content.Default()
	next.Showcase.Projects[0].Slug = "renamed-project"
	holder.Replace(next)

	_, body := get(t, srv.URL+"/project/renamed-project")
	if body == "" {
		t.Error("renamed project should render after reload")
	}
	_, body = get(t, srv.URL+"/project/lal-sweets")
	if body != "" {
		t.Error("old slug should render nothing after reload")
	}
}
