package http

import (
	"net/http"

	auth "github.com/apuntea/apuntea-api/internal/auth/middleware"
	"github.com/apuntea/apuntea-api/internal/quiz"

	"github.com/go-chi/chi/v5"
)

// resolveLatestSession finds the caller's most recent session for a subject.
// ok=false is the normal "no data yet" state for a new user.
func resolveLatestSession(store quiz.Store, r *http.Request, slug string) (sessionID string, ok bool, err error) {
	userID := auth.SubjectFromContext(r.Context())
	sub, err := store.ResolveSubject(r.Context(), slug)
	if err != nil {
		return "", false, err
	}
	quizID, err := store.ResolveQuiz(r.Context(), slug)
	if err != nil {
		return "", false, err
	}
	return store.LatestSession(r.Context(), userID, sub.ID, quizID)
}

// GET /subjects/{slug}/route/summary
func RouteSummaryHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		sessionID, ok, err := resolveLatestSession(store, r, slug)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		if !ok {
			writeJSON(w, map[string]any{"sessionId": nil, "blocks": []quiz.BlockSummary{}})
			return
		}
		blocks, err := store.SummarizeByBlock(r.Context(), sessionID)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		writeJSON(w, map[string]any{"sessionId": sessionID, "blocks": blocks})
	}
}

// GET /subjects/{slug}/results/me
func MyResultsHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		sessionID, ok, err := resolveLatestSession(store, r, slug)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		if !ok {
			writeJSON(w, map[string]any{
				"sessionId":    nil,
				"totals":       quiz.Totals{},
				"byDifficulty": []quiz.DifficultySummary{},
			})
			return
		}
		totals, err := store.SummarizeTotals(r.Context(), sessionID)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		byDifficulty, err := store.SummarizeByDifficulty(r.Context(), sessionID)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		writeJSON(w, map[string]any{
			"sessionId":    sessionID,
			"totals":       totals,
			"byDifficulty": byDifficulty,
		})
	}
}
