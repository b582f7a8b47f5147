package db

import (
	"context"
	"database/sql"
	"log"
	"strings"
)

type ColumnClass string

const (
	ClassUUID    ColumnClass = "identifier-uuid"
	ClassInteger ColumnClass = "identifier-integer"
	ClassText    ColumnClass = "text"
	ClassOther   ColumnClass = "other"
)

type ColumnInfo struct {
	Class   ColumnClass
	NotNull bool
}

// Capabilities describes which optional columns the deployed schema carries.
// It is built once at boot and never mutated afterwards; stores hold it by
// value and adapt their generated statements to it instead of querying
// metadata per request.
type Capabilities struct {
	cols map[string]ColumnInfo
}

func (c Capabilities) Has(table, column string) bool {
	_, ok := c.cols[table+"."+column]
	return ok
}

func (c Capabilities) Column(table, column string) (ColumnInfo, bool) {
	info, ok := c.cols[table+"."+column]
	return info, ok
}

// Tables whose shape varies between deployments.
var capabilityTables = []string{"attempt_sessions", "attempts", "choices"}

// DetectCapabilities runs the one-time metadata pass. A failed lookup is not
// fatal: the affected columns are reported absent so writers omit them, and
// the fallback is logged so operators can tell detection from a thin schema.
func DetectCapabilities(ctx context.Context, db *sql.DB, driver Driver) Capabilities {
	caps := Capabilities{cols: map[string]ColumnInfo{}}
	for _, table := range capabilityTables {
		infos, err := tableColumns(ctx, db, driver, table)
		if err != nil {
			log.Printf("capabilities: introspecting %s failed, treating its columns as absent: %v", table, err)
			continue
		}
		for name, info := range infos {
			caps.cols[table+"."+name] = info
		}
	}
	if caps.Has("choices", "es_correcta") {
		log.Printf("capabilities: legacy column choices.es_correcta detected; migrate it to choices.correct, the legacy spelling is ignored")
	}
	return caps
}

func tableColumns(ctx context.Context, db *sql.DB, driver Driver, table string) (map[string]ColumnInfo, error) {
	var rows *sql.Rows
	var err error
	switch driver {
	case DriverPostgres:
		rows, err = db.QueryContext(ctx,
			`SELECT column_name, data_type, is_nullable
			 FROM information_schema.columns
			 WHERE table_schema = current_schema() AND table_name = $1`, table)
	default:
		rows, err = db.QueryContext(ctx,
			`SELECT name, type, "notnull" FROM pragma_table_info($1)`, table)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]ColumnInfo{}
	for rows.Next() {
		var name, typ string
		var info ColumnInfo
		if driver == DriverPostgres {
			var nullable string
			if err := rows.Scan(&name, &typ, &nullable); err != nil {
				return nil, err
			}
			info.NotNull = strings.EqualFold(nullable, "NO")
		} else {
			var notnull int
			if err := rows.Scan(&name, &typ, &notnull); err != nil {
				return nil, err
			}
			info.NotNull = notnull != 0
		}
		info.Class = classify(typ)
		out[name] = info
	}
	return out, rows.Err()
}

func classify(dataType string) ColumnClass {
	t := strings.ToLower(dataType)
	switch {
	case strings.Contains(t, "uuid"):
		return ClassUUID
	case strings.Contains(t, "int") || strings.Contains(t, "serial"):
		return ClassInteger
	case strings.Contains(t, "text") || strings.Contains(t, "char"):
		return ClassText
	default:
		return ClassOther
	}
}
