// Package preview serves rendered landing pages over HTTP: inline previews,
// downloads and a live websocket that re-renders on every form change.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/easylandingweb/easylanding/internal/drafts"
	"github.com/easylandingweb/easylanding/internal/history"
	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/restaurant"
	"github.com/easylandingweb/easylanding/internal/style"
)

// maxRecordBytes bounds request bodies and websocket frames.
const maxRecordBytes = 1 << 20

// sandboxPolicy keeps previewed pages from running scripts against the app.
const sandboxPolicy = "sandbox allow-same-origin"

// Handler renders drafts and ad-hoc records.
type Handler struct {
	drafts   *drafts.Store
	history  *history.Store
	opts     page.Options
	upgrader websocket.Upgrader
}

// NewHandler creates a Handler. hist may be nil, in which case nothing is
// logged. checkOrigin decides which browser origins may open the live preview
// socket, which can overwrite drafts; nil accepts same-origin requests only.
func NewHandler(d *drafts.Store, hist *history.Store, opts page.Options, checkOrigin func(*http.Request) bool) *Handler {
	return &Handler{
		drafts:   d,
		history:  hist,
		opts:     opts,
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
	}
}

// RegisterRoutes mounts the request/response preview endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/render", h.handleRender)
	r.Post("/api/style", h.handleStyle)
	r.Get("/preview/{key}", h.handlePreview)
	r.Get("/download/{key}", h.handleDownload)
}

// RegisterStreams mounts the live preview websocket.
func (h *Handler) RegisterStreams(r chi.Router) {
	r.Get("/ws/preview", h.handleWebSocket)
}

func (h *Handler) handleRender(w http.ResponseWriter, r *http.Request) {
	rec, err := restaurant.Decode(http.MaxBytesReader(w, r.Body, maxRecordBytes), restaurant.FormatJSON)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	html := page.Generate(rec, h.opts)
	h.logPage(r.Context(), history.ActionPreview, "", rec, html, "")
	writeHTML(w, html)
}

func (h *Handler) handleStyle(w http.ResponseWriter, r *http.Request) {
	var req style.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRecordBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid style request: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, style.Resolve(req))
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	rec, ok := h.loadDraft(w, r, key)
	if !ok {
		return
	}
	html := page.Generate(rec, h.opts)
	h.logPage(r.Context(), history.ActionPreview, key, rec, html, "")
	writeHTML(w, html)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	rec, ok := h.loadDraft(w, r, key)
	if !ok {
		return
	}
	html := page.Generate(rec, h.opts)
	h.logPage(r.Context(), history.ActionDownload, key, rec, html, page.Filename)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+page.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func (h *Handler) loadDraft(w http.ResponseWriter, r *http.Request, key string) (restaurant.Record, bool) {
	d, err := h.drafts.Load(r.Context(), key)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, drafts.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return restaurant.Record{}, false
	}
	return d.Record, true
}

func (h *Handler) logPage(ctx context.Context, action history.Action, key string, rec restaurant.Record, html, target string) {
	if h.history == nil {
		return
	}
	if err := h.history.LogPage(ctx, action, key, rec, html, target); err != nil {
		log.Printf("preview: logging %s: %v", action, err)
	}
}

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", sandboxPolicy)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
