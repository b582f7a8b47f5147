package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// execQuerier is satisfied by *sql.DB and *sql.Tx; session ensure runs
// inside the answer-batch transaction so a failed batch never leaves a
// dangling session row behind.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// EnsureSession returns a session id scoping a sequence of answer
// submissions. An explicit id is ensured idempotently (existing rows are
// left untouched) and must belong to the caller; otherwise a fresh session
// is created.
func (s *SQLStore) EnsureSession(ctx context.Context, p SessionParams) (string, error) {
	return s.ensureSession(ctx, s.db, p)
}

func (s *SQLStore) ensureSession(ctx context.Context, q execQuerier, p SessionParams) (string, error) {
	id := p.ExistingID
	if id == "" {
		id = uuid.NewString()
	}

	cols := []string{"id", "user_id", "started_at"}
	args := []any{id, p.UserID, time.Now().Unix()}

	if s.caps.Has("attempt_sessions", "subject_id") && p.SubjectID != "" {
		cols = append(cols, "subject_id")
		args = append(args, p.SubjectID)
	}
	if info, ok := s.caps.Column("attempt_sessions", "quiz_id"); ok {
		switch {
		case p.QuizID != "":
			cols = append(cols, "quiz_id")
			args = append(args, p.QuizID)
		case info.NotNull:
			// Setup defect, not a runtime error: the schema demands a quiz
			// identity and none could be resolved for this subject.
			return "", ErrQuizUnresolved
		}
	}

	ph := make([]string, len(cols))
	for i := range cols {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	stmt := fmt.Sprintf(`INSERT INTO attempt_sessions (%s) VALUES (%s) ON CONFLICT (id) DO NOTHING`,
		strings.Join(cols, ", "), strings.Join(ph, ", "))
	if _, err := q.ExecContext(ctx, stmt, args...); err != nil {
		return "", err
	}

	// An explicit id may name a pre-existing session: it must be the
	// caller's own. Foreign sessions look like missing ones.
	if p.ExistingID != "" {
		var owner string
		if err := q.QueryRowContext(ctx, `SELECT user_id FROM attempt_sessions WHERE id=$1`, id).Scan(&owner); err != nil {
			return "", err
		}
		if owner != p.UserID {
			return "", ErrSessionNotFound
		}
	}
	return id, nil
}

// CompleteSession stamps completed_at on the caller's own session, once; a
// second call is a no-op.
func (s *SQLStore) CompleteSession(ctx context.Context, sessionID, userID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE attempt_sessions SET completed_at=$1 WHERE id=$2 AND user_id=$3 AND completed_at IS NULL`,
		time.Now().Unix(), sessionID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	var one int
	err = s.db.QueryRowContext(ctx,
		`SELECT 1 FROM attempt_sessions WHERE id=$1 AND user_id=$2`, sessionID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil // already completed
}
