package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/apuntea/apuntea-api/internal/quiz"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeStoreError maps domain errors onto the wire. Persistence failures
// stay generic for the caller and verbose in the log; the quiz-config case
// gets a distinguishable message so operators can spot onboarding defects.
func writeStoreError(w http.ResponseWriter, slug string, err error) {
	switch {
	case errors.Is(err, quiz.ErrSubjectNotFound):
		http.Error(w, "subject not found", http.StatusNotFound)
	case errors.Is(err, quiz.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, quiz.ErrQuizUnresolved):
		http.Error(w, "quiz identity not configured for subject "+slug, http.StatusInternalServerError)
	case errors.Is(err, quiz.ErrEmptyBatch), errors.Is(err, quiz.ErrInvalidAnswer):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("subjects/%s: %v", slug, err)
		http.Error(w, "could not complete request", http.StatusInternalServerError)
	}
}
