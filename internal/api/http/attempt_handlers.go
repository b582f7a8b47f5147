package http

import (
	"encoding/json"
	"net/http"

	auth "github.com/apuntea/apuntea-api/internal/auth/middleware"
	"github.com/apuntea/apuntea-api/internal/quiz"

	"github.com/go-chi/chi/v5"
)

// POST /subjects/{slug}/attempts
// Body: { "sessionId": "...", "respuestas": [ ... ] }
func SubmitAnswersHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		if userID == "" {
			http.Error(w, "missing bearer", http.StatusUnauthorized)
			return
		}
		slug := chi.URLParam(r, "slug")

		var req struct {
			SessionID  string        `json:"sessionId"`
			Respuestas []quiz.Answer `json:"respuestas"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		// Reject before touching the store: a transaction is only ever
		// opened for a batch that can plausibly be saved whole.
		if len(req.Respuestas) == 0 {
			http.Error(w, "respuestas required", http.StatusBadRequest)
			return
		}

		sub, err := store.ResolveSubject(r.Context(), slug)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		quizID, err := store.ResolveQuiz(r.Context(), slug)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}

		// Session ensure and the batch share one transaction inside the
		// store, so a failed batch leaves no session row behind.
		sessionID, saved, err := store.RecordAnswers(r.Context(), quiz.SessionParams{
			UserID:     userID,
			SubjectID:  sub.ID,
			QuizID:     quizID,
			ExistingID: req.SessionID,
		}, req.Respuestas)
		if err != nil {
			writeStoreError(w, slug, err)
			return
		}
		writeJSON(w, map[string]any{"ok": true, "saved": saved, "sessionId": sessionID})
	}
}

// POST /subjects/{slug}/attempts/complete
// Body: { "sessionId": "..." }
func CompleteSessionHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		if userID == "" {
			http.Error(w, "missing bearer", http.StatusUnauthorized)
			return
		}
		slug := chi.URLParam(r, "slug")
		var req struct {
			SessionID string `json:"sessionId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
			http.Error(w, "sessionId required", http.StatusBadRequest)
			return
		}
		if err := store.CompleteSession(r.Context(), req.SessionID, userID); err != nil {
			writeStoreError(w, slug, err)
			return
		}
		writeJSON(w, map[string]any{"ok": true})
	}
}
