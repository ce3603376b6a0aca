package site

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/manishpatil55/demo-product-page/internal/content"
	"github.com/manishpatil55/demo-product-page/internal/scroller"
)

// Handlers serves the pages of the current document. A content reload
// rebuilds the renderer and search index.
type Handlers struct {
	opts Options

	mu       sync.RWMutex
	renderer *Renderer
	index    []SearchEntry
}

// NewHandlers creates handlers that follow holder.
func NewHandlers(holder *content.Holder, opts Options) *Handlers {
	h := &Handlers{opts: opts}
	h.load(holder.Get())
	holder.OnReplace(h.load)
	return h
}

func (h *Handlers) load(s *content.Site) {
	r := NewRenderer(s, h.opts)
	index := BuildSearchIndex(s, ServerLinks())
	h.mu.Lock()
	h.renderer = r
	h.index = index
	h.mu.Unlock()
}

func (h *Handlers) current() (*Renderer, []SearchEntry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.renderer, h.index
}

// RegisterRoutes mounts the page, static and read-only API routes.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/project/{slug}", h.handleProject)
	r.Get("/style.css", staticFile("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", staticFile("application/javascript; charset=utf-8", jsContent))
	r.Get("/search-index.json", h.handleSearchIndex)

	r.Get("/api/content", h.handleContent)
	r.Get("/api/search", h.handleSearch)
	r.Post("/api/search", h.handleSearch)
	r.Get("/api/techtiles", h.handleTechTiles)
}

func (h *Handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	renderer, _ := h.current()
	var buf bytes.Buffer
	if err := renderer.RenderHome(&buf, ParseHomeOptions(r.URL.Query())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// handleProject answers an unknown slug with an empty 200 response.
func (h *Handlers) handleProject(w http.ResponseWriter, r *http.Request) {
	renderer, _ := h.current()
	var buf bytes.Buffer
	if _, err := renderer.RenderProject(&buf, chi.URLParam(r, "slug")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func staticFile(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.Write([]byte(body))
	}
}

func (h *Handlers) handleSearchIndex(w http.ResponseWriter, r *http.Request) {
	_, index := h.current()
	writeJSON(w, http.StatusOK, index)
}

func (h *Handlers) handleContent(w http.ResponseWriter, r *http.Request) {
	renderer, _ := h.current()
	writeJSON(w, http.StatusOK, renderer.Site())
}

// searchRequest is the JSON body for POST /api/search.
type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// searchResponse is the JSON response for /api/search.
type searchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

func (h *Handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
	} else {
		req.Query = r.URL.Query().Get("q")
		req.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		http.Error(w, `{"error":"query is required"}`, http.StatusBadRequest)
		return
	}
	limit := req.Limit
	if limit <= 0 || limit > 20 {
		limit = 8
	}

	_, index := h.current()
	results := Search(index, query, limit)
	if results == nil {
		results = []SearchResult{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: results})
}

// techTilesResponse gives a client everything it needs to run the strip.
type techTilesResponse struct {
	Title        string               `json:"title"`
	Subtitle     string               `json:"subtitle"`
	Description  string               `json:"description"`
	Technologies []content.Technology `json:"technologies"`
	Copies       int                  `json:"copies"`
	Strip        scroller.Strip       `json:"strip"`
	Thresholds   scroller.Thresholds  `json:"thresholds"`
	SetWidth     float64              `json:"set_width"`
	StartOffset  float64              `json:"start_offset"`
	MinOffset    float64              `json:"min_offset"`
	MaxOffset    float64              `json:"max_offset"`
	Speed        float64              `json:"speed"`
	CycleMS      int64                `json:"cycle_ms"`
}

func (h *Handlers) handleTechTiles(w http.ResponseWriter, r *http.Request) {
	renderer, _ := h.current()
	tt := renderer.Site().TechTiles
	strip := scroller.DefaultStrip(len(tt.Technologies))
	lo, hi := strip.Bounds()
	anim := scroller.NewAnimator(strip, renderer.opts.ScrollCycle)
	writeJSON(w, http.StatusOK, techTilesResponse{
		Title:        tt.Title,
		Subtitle:     tt.Subtitle,
		Description:  tt.Description,
		Technologies: tt.Technologies,
		Copies:       scroller.Copies,
		Strip:        strip,
		Thresholds:   strip.Thresholds(),
		SetWidth:     strip.SetWidth(),
		StartOffset:  strip.StartOffset(),
		MinOffset:    lo,
		MaxOffset:    hi,
		Speed:        anim.Speed(),
		CycleMS:      renderer.opts.ScrollCycle.Milliseconds(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
