package quiz

import (
	"context"
	"database/sql"
	"errors"
	"math"
)

// Attempts are an append-only log; re-answers are resolved at read time by
// keeping exactly one attempt per question, the one with the latest
// timestamp (surrogate id breaks same-second ties, i.e. insert order wins).
// Only multiple-choice attempts count.
const lastAttemptFilter = `
	a.session_id = $1 AND a.choice_id IS NOT NULL
	AND a.id = (
		SELECT a2.id FROM attempts a2
		WHERE a2.session_id = a.session_id
		  AND a2.question_id = a.question_id
		  AND a2.choice_id IS NOT NULL
		ORDER BY a2.created_at DESC, a2.id DESC
		LIMIT 1
	)`

// LatestSession picks the most recently active session for the user:
// "continue my last attempt" semantics. Absence is a normal empty state.
func (s *SQLStore) LatestSession(ctx context.Context, userID, subjectID, quizID string) (string, bool, error) {
	where := `user_id = $1`
	args := []any{userID}
	switch {
	case quizID != "" && s.caps.Has("attempt_sessions", "quiz_id"):
		where += ` AND quiz_id = $2`
		args = append(args, quizID)
	case subjectID != "" && s.caps.Has("attempt_sessions", "subject_id"):
		where += ` AND subject_id = $2`
		args = append(args, subjectID)
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT id FROM attempt_sessions WHERE `+where+
			` ORDER BY COALESCE(completed_at, started_at) DESC, id DESC LIMIT 1`, args...)
	var id string
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return id, true, nil
}

func (s *SQLStore) SummarizeByBlock(ctx context.Context, sessionID string) ([]BlockSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.title, COALESCE(b.code, ''),
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN a.correct THEN 1 ELSE 0 END), 0)
		FROM attempts a
		JOIN blocks b ON b.id = a.block_id
		WHERE `+lastAttemptFilter+`
		GROUP BY b.id, b.title, b.code
		ORDER BY COALESCE(b.code, ''), b.title`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BlockSummary{}
	for rows.Next() {
		var bs BlockSummary
		if err := rows.Scan(&bs.BlockID, &bs.BlockTitle, &bs.BlockCode, &bs.TotalOption, &bs.CorrectOption); err != nil {
			return nil, err
		}
		out = append(out, bs)
	}
	return out, rows.Err()
}

func (s *SQLStore) SummarizeTotals(ctx context.Context, sessionID string) (Totals, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN a.correct THEN 1 ELSE 0 END), 0)
		FROM attempts a
		WHERE `+lastAttemptFilter, sessionID)
	var t Totals
	if err := row.Scan(&t.Total, &t.Correct); err != nil {
		return Totals{}, err
	}
	t.Pct = percentage(t.Correct, t.Total)
	return t, nil
}

func (s *SQLStore) SummarizeByDifficulty(ctx context.Context, sessionID string) ([]DifficultySummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(q.difficulty, ''),
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN a.correct THEN 1 ELSE 0 END), 0)
		FROM attempts a
		JOIN questions q ON q.id = a.question_id
		WHERE `+lastAttemptFilter+`
		GROUP BY COALESCE(q.difficulty, '')
		ORDER BY 1`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DifficultySummary{}
	for rows.Next() {
		var ds DifficultySummary
		if err := rows.Scan(&ds.Difficulty, &ds.Total, &ds.Correct); err != nil {
			return nil, err
		}
		ds.Pct = percentage(ds.Correct, ds.Total)
		out = append(out, ds)
	}
	return out, rows.Err()
}

func percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
