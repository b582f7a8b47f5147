package quiz

import (
	"context"
	"database/sql"
	"errors"
)

// PreEval loads the full student-safe quiz payload for one subject. Blocks
// come back in stable (code, title) order; choices carry no correctness
// flag.
func (s *SQLStore) PreEval(ctx context.Context, subjectID string) (PreEval, error) {
	var pe PreEval

	row := s.db.QueryRowContext(ctx, `SELECT id, name, slug FROM subjects WHERE id=$1`, subjectID)
	if err := row.Scan(&pe.Subject.ID, &pe.Subject.Name, &pe.Subject.Slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PreEval{}, ErrSubjectNotFound
		}
		return PreEval{}, err
	}

	pe.Blocks = []Block{}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subject_id, title, COALESCE(code, ''), position
		FROM blocks WHERE subject_id=$1
		ORDER BY COALESCE(code, ''), title`, subjectID)
	if err != nil {
		return PreEval{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var b Block
		if err := rows.Scan(&b.ID, &b.SubjectID, &b.Title, &b.Code, &b.Position); err != nil {
			return PreEval{}, err
		}
		pe.Blocks = append(pe.Blocks, b)
	}
	if err := rows.Err(); err != nil {
		return PreEval{}, err
	}

	pe.Questions = []Question{}
	qrows, err := s.db.QueryContext(ctx, `
		SELECT q.id, q.block_id, q.prompt, q.qtype, COALESCE(q.difficulty, '')
		FROM questions q
		JOIN blocks b ON b.id = q.block_id
		WHERE b.subject_id=$1
		ORDER BY COALESCE(b.code, ''), b.title, q.id`, subjectID)
	if err != nil {
		return PreEval{}, err
	}
	defer qrows.Close()
	for qrows.Next() {
		var q Question
		if err := qrows.Scan(&q.ID, &q.BlockID, &q.Prompt, &q.Type, &q.Difficulty); err != nil {
			return PreEval{}, err
		}
		pe.Questions = append(pe.Questions, q)
	}
	if err := qrows.Err(); err != nil {
		return PreEval{}, err
	}

	pe.Choices = []Choice{}
	crows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.question_id, c.label
		FROM choices c
		JOIN questions q ON q.id = c.question_id
		JOIN blocks b ON b.id = q.block_id
		WHERE b.subject_id=$1
		ORDER BY c.question_id, c.id`, subjectID)
	if err != nil {
		return PreEval{}, err
	}
	defer crows.Close()
	for crows.Next() {
		var c Choice
		if err := crows.Scan(&c.ID, &c.QuestionID, &c.Label); err != nil {
			return PreEval{}, err
		}
		pe.Choices = append(pe.Choices, c)
	}
	if err := crows.Err(); err != nil {
		return PreEval{}, err
	}

	pe.OpenKeys = []OpenKeyword{}
	krows, err := s.db.QueryContext(ctx, `
		SELECT k.question_id, k.keyword
		FROM open_keywords k
		JOIN questions q ON q.id = k.question_id
		JOIN blocks b ON b.id = q.block_id
		WHERE b.subject_id=$1 AND q.qtype=$2
		ORDER BY k.question_id, k.id`, subjectID, TypeOpenEnded)
	if err != nil {
		return PreEval{}, err
	}
	defer krows.Close()
	for krows.Next() {
		var k OpenKeyword
		if err := krows.Scan(&k.QuestionID, &k.Keyword); err != nil {
			return PreEval{}, err
		}
		pe.OpenKeys = append(pe.OpenKeys, k)
	}
	return pe, krows.Err()
}
