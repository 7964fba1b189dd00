package writers

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mmrzaf/tabgen/internal/domain"
)

const sqliteTable = "data"

// SQLiteWriter persists the row collection as a single-table sqlite file.
// An existing file at the output path is replaced so the result always
// reflects exactly one generation run.
type SQLiteWriter struct{}

func (w *SQLiteWriter) Write(spec *domain.FileSpec, rows []domain.Row) error {
	if len(rows) == 0 {
		return domain.ErrEmptyDataset
	}

	if err := os.Remove(spec.OutputPath); err != nil && !os.IsNotExist(err) {
		return err
	}

	db, err := sql.Open("sqlite3", spec.OutputPath)
	if err != nil {
		return err
	}
	defer db.Close()

	columnDefs := make([]string, len(spec.Columns))
	names := make([]string, len(spec.Columns))
	placeholders := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		columnDefs[i] = fmt.Sprintf("%q %s", col.Name, sqliteColumnType(col.Type))
		names[i] = fmt.Sprintf("%q", col.Name)
		placeholders[i] = "?"
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", sqliteTable, strings.Join(columnDefs, ", "))
	if _, err := db.Exec(createSQL); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		sqliteTable, strings.Join(names, ", "), strings.Join(placeholders, ", "))
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]any, len(spec.Columns))
	for _, row := range rows {
		for i, col := range spec.Columns {
			args[i] = row[col.Name]
		}
		if _, err := stmt.Exec(args...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return db.Close()
}

func sqliteColumnType(t domain.DataType) string {
	switch t {
	case domain.DataTypeInteger, domain.DataTypeBoolean:
		return "INTEGER"
	case domain.DataTypeFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}
