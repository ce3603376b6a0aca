package contact

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/manishpatil55/demo-product-page/internal/content"
)

// maxBodyBytes bounds a contact form post.
const maxBodyBytes = 64 << 10

// FormFunc returns the current form definition; it is read per request so
// content reloads apply immediately.
type FormFunc func() []content.FormField

// RegisterRoutes mounts the contact API routes. Only POST is public; the
// lead listing and status routes require adminToken as a bearer token and
// reject every request when it is empty. notifier may be nil.
func RegisterRoutes(r chi.Router, store *Store, form FormFunc, notifier *Notifier, adminToken string) {
	r.Route("/api/contact", func(r chi.Router) {
		r.Post("/", handleCreate(store, form, notifier))

		r.Group(func(r chi.Router) {
			r.Use(RequireToken(adminToken))
			r.Get("/", handleList(store))
			r.Get("/stats", handleStats(store))
			r.Get("/{id}", handleGetByID(store))
			r.Put("/{id}/status", handleUpdateStatus(store))
		})
	})
}

type createResponse struct {
	ID      string `json:"id"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

type validationResponse struct {
	Error  string      `json:"error"`
	Fields FieldErrors `json:"fields"`
}

func handleCreate(store *Store, form FormFunc, notifier *Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		values, isForm, err := readValues(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		fields := form()
		if err := Validate(fields, values); err != nil {
			var fe FieldErrors
			if errors.As(err, &fe) {
				writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Error: "validation failed", Fields: fe})
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		source := values["source_page"]
		if source == "" {
			source = refererPath(r)
		}
		created, err := store.Create(r.Context(), NewSubmission(fields, values, source))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		notifier.NotifyAsync(*created)

		// Plain HTML form posts go back to the page they came from.
		if isForm && !wantsJSON(r) {
			http.Redirect(w, r, redirectTarget(source), http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusCreated, createResponse{
			ID:      created.ID,
			Status:  created.Status,
			Message: "Thanks! We'll be in touch soon.",
		})
	}
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{}
		if v := r.URL.Query().Get("status"); v != "" {
			filter.Status = Status(v)
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Limit = n
			}
		}
		if v := r.URL.Query().Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Offset = n
			}
		}

		subs, err := store.List(r.Context(), filter)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if subs == nil {
			subs = []Submission{}
		}

		writeJSON(w, http.StatusOK, subs)
	}
}

func handleGetByID(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		sub, err := store.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if sub == nil {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		writeJSON(w, http.StatusOK, sub)
	}
}

type statusRequest struct {
	Status Status `json:"status"`
}

func handleUpdateStatus(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !req.Status.Valid() {
			writeError(w, http.StatusBadRequest, "status must be one of new, contacted, closed")
			return
		}

		if err := store.UpdateStatus(r.Context(), id, req.Status); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "not found")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
	}
}

func handleStats(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := map[string]int{}
		for _, s := range []Status{"", StatusNew, StatusContacted, StatusClosed} {
			n, err := store.Count(r.Context(), s)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			key := string(s)
			if key == "" {
				key = "total"
			}
			stats[key] = n
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// readValues accepts a JSON object of strings or a form-encoded body.
func readValues(r *http.Request) (map[string]string, bool, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, true, err
		}
		values := make(map[string]string, len(r.PostForm))
		for k := range r.PostForm {
			values[k] = r.PostForm.Get(k)
		}
		return values, true, nil
	default:
		var values map[string]string
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			return nil, false, err
		}
		return values, false, nil
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func refererPath(r *http.Request) string {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return u.Path
}

// redirectTarget only follows local paths.
func redirectTarget(source string) string {
	if i := strings.IndexAny(source, "?#"); i >= 0 {
		source = source[:i]
	}
	if !strings.HasPrefix(source, "/") || strings.HasPrefix(source, "//") {
		source = "/"
	}
	return source + "?sent=1#contact"
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
