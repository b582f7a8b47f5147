package quiz

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrSessionNotFound = errors.New("session not found")

	// ErrQuizUnresolved is a configuration error: the session schema demands
	// a quiz identity but neither an override nor a slug variant resolved
	// one. A subject onboarding defect, not a user error.
	ErrQuizUnresolved = errors.New("quiz identity not configured")

	ErrEmptyBatch    = errors.New("empty answer batch")
	ErrInvalidAnswer = errors.New("invalid answer")
)

func (a Answer) validate() error {
	if a.BlockID == "" || a.QuestionID == "" {
		return fmt.Errorf("%w: blockId and questionId required", ErrInvalidAnswer)
	}
	switch a.Type {
	case TypeMultipleChoice:
		if a.ChoiceID == "" {
			return fmt.Errorf("%w: choiceId required for %s", ErrInvalidAnswer, TypeMultipleChoice)
		}
	case TypeOpenEnded:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidAnswer, a.Type)
	}
	return nil
}

type Store interface {
	ResolveSubject(ctx context.Context, slug string) (Subject, error)
	// ResolveQuiz returns the quiz id for a subject slug, or "" when no
	// strategy matched. Callers decide whether absence is fatal.
	ResolveQuiz(ctx context.Context, slug string) (string, error)

	PreEval(ctx context.Context, subjectID string) (PreEval, error)

	EnsureSession(ctx context.Context, p SessionParams) (string, error)
	CompleteSession(ctx context.Context, sessionID, userID string) error
	// RecordAnswers ensures the session and persists the batch in one
	// transaction, returning the session id and the number saved.
	RecordAnswers(ctx context.Context, p SessionParams, answers []Answer) (string, int, error)

	LatestSession(ctx context.Context, userID, subjectID, quizID string) (string, bool, error)
	SummarizeByBlock(ctx context.Context, sessionID string) ([]BlockSummary, error)
	SummarizeTotals(ctx context.Context, sessionID string) (Totals, error)
	SummarizeByDifficulty(ctx context.Context, sessionID string) ([]DifficultySummary, error)

	ResourcesForBlock(ctx context.Context, blockID string) ([]Resource, error)
}
