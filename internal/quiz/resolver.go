package quiz

import (
	"context"
	"database/sql"
	"errors"
)

func (s *SQLStore) ResolveSubject(ctx context.Context, slug string) (Subject, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, slug FROM subjects WHERE slug=$1`, slug)
	var sub Subject
	if err := row.Scan(&sub.ID, &sub.Name, &sub.Slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subject{}, ErrSubjectNotFound
		}
		return Subject{}, err
	}
	return sub, nil
}

// Slug variants tried against the quiz registry. Subjects were onboarded at
// different times with inconsistent quiz naming.
func quizSlugVariants(slug string) [4]string {
	return [4]string{slug, slug + "_pre", "pre-" + slug, slug + "-pre"}
}

// ResolveQuiz resolves the quiz identity for a subject slug: an operator
// override first, then slug variants ordered most-recently-created. Returns
// "" when neither strategy matches.
func (s *SQLStore) ResolveQuiz(ctx context.Context, slug string) (string, error) {
	if id, ok := s.quizOverrides[slug]; ok {
		return id, nil
	}
	v := quizSlugVariants(slug)
	row := s.db.QueryRowContext(ctx,
		`SELECT id FROM quizzes WHERE slug IN ($1,$2,$3,$4) ORDER BY created_at DESC LIMIT 1`,
		v[0], v[1], v[2], v[3])
	var id string
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return id, nil
}
