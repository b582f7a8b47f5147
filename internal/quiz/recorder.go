package quiz

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RecordAnswers persists one answer batch in a single transaction: the
// session (created lazily when no explicit id is given) and every answer
// land together or not at all, so a failed batch can never leave a dangling
// empty session shadowing the user's real results. Each answer's block is
// derived from the question row itself, and the insert fails when the
// client-supplied block does not match. Multiple-choice correctness is
// computed at insert time from the choice table; whatever the client claims
// about correctness never reaches the row. Open-ended answers keep NULL
// correctness.
func (s *SQLStore) RecordAnswers(ctx context.Context, p SessionParams, answers []Answer) (string, int, error) {
	if len(answers) == 0 {
		return "", 0, ErrEmptyBatch
	}
	for _, a := range answers {
		if err := a.validate(); err != nil {
			return "", 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", 0, err
	}
	defer tx.Rollback()

	sessionID, err := s.ensureSession(ctx, tx, p)
	if err != nil {
		return "", 0, err
	}

	now := time.Now().Unix()
	saved := 0
	for _, a := range answers {
		var res sql.Result
		if a.Type == TypeMultipleChoice {
			res, err = tx.ExecContext(ctx, `
				INSERT INTO attempts (session_id, block_id, question_id, choice_id, answer_text, correct, created_at)
				SELECT $1, q.block_id, q.id, $2, NULL,
					EXISTS(SELECT 1 FROM choices c WHERE c.id = $2 AND c.question_id = q.id AND c.correct),
					$3
				FROM questions q
				WHERE q.id = $4 AND q.block_id = $5`,
				sessionID, a.ChoiceID, now, a.QuestionID, a.BlockID)
		} else {
			res, err = tx.ExecContext(ctx, `
				INSERT INTO attempts (session_id, block_id, question_id, choice_id, answer_text, correct, created_at)
				SELECT $1, q.block_id, q.id, NULL, $2, NULL, $3
				FROM questions q
				WHERE q.id = $4 AND q.block_id = $5`,
				sessionID, a.Text, now, a.QuestionID, a.BlockID)
		}
		if err != nil {
			return "", 0, err
		}
		if n, err := res.RowsAffected(); err != nil {
			return "", 0, err
		} else if n == 0 {
			return "", 0, fmt.Errorf("question %s not found in block %s", a.QuestionID, a.BlockID)
		}
		saved++
	}
	if err := tx.Commit(); err != nil {
		return "", 0, err
	}
	return sessionID, saved, nil
}
