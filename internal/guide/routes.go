package guide

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes serves the guide at /docs.
func RegisterRoutes(r chi.Router) {
	r.Get("/docs", handleGuide)
}

func handleGuide(w http.ResponseWriter, r *http.Request) {
	doc, err := HTML()
	if err != nil {
		log.Printf("guide: %v", err)
		http.Error(w, "guide unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
