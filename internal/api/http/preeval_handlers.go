package http

import (
	"net/http"

	"github.com/apuntea/apuntea-api/internal/quiz"

	"github.com/go-chi/chi/v5"
)

// GET /subjects/{slug}/pre-eval
func PreEvalHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		sub, err := store.ResolveSubject(r.Context(), slug)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		pe, err := store.PreEval(r.Context(), sub.ID)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		writeJSON(w, pe)
	}
}

// GET /subjects/{slug}/route/resources?blockId=...
func BlockResourcesHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		blockID := r.URL.Query().Get("blockId")
		if blockID == "" {
			http.Error(w, "blockId required", http.StatusBadRequest)
			return
		}
		items, err := store.ResourcesForBlock(r.Context(), blockID)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		writeJSON(w, map[string]any{"items": items})
	}
}
