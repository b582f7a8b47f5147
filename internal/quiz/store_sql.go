package quiz

import (
	"database/sql"

	appdb "github.com/apuntea/apuntea-api/internal/db"
)

// SQLStore implements Store over database/sql; every statement is shared
// between the sqlite and postgres dialects. Capabilities come from the
// one-time boot detection pass; generated statements include optional
// session columns only when the deployed schema carries them.
type SQLStore struct {
	db   *sql.DB
	caps appdb.Capabilities

	// operator-configured subject slug -> quiz id, tried before slug variants
	quizOverrides map[string]string
}

func NewSQLStore(db *sql.DB, caps appdb.Capabilities, quizOverrides map[string]string) *SQLStore {
	if quizOverrides == nil {
		quizOverrides = map[string]string{}
	}
	return &SQLStore{db: db, caps: caps, quizOverrides: quizOverrides}
}

var _ Store = (*SQLStore)(nil)
