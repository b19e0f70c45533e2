package drafts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/easylandingweb/easylanding/internal/restaurant"
)

// maxRecordBytes bounds request bodies; records are small form snapshots.
const maxRecordBytes = 1 << 20

// RegisterRoutes mounts draft endpoints under /api/drafts on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/drafts", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Get("/{key}", handleGet(store))
		r.Put("/{key}", handlePut(store))
		r.Delete("/{key}", handleDelete(store))
	})
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := store.Load(r.Context(), chi.URLParam(r, "key"))
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

func handlePut(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := restaurant.Decode(http.MaxBytesReader(w, r.Body, maxRecordBytes), restaurant.FormatJSON)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		d, err := store.Save(r.Context(), chi.URLParam(r, "key"), rec)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

func handleDelete(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func statusFor(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
