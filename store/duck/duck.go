// Package duck ingests tabular files through an in-memory duckdb,
// producing field layout and lines suitable for seeding a collection.
package duck

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	"tablo/entity"
)

const maxObjectSize = 16777216

// Duck wraps an in-memory duckdb used for loading files.
type Duck struct {
	db     *sql.DB
	logger entity.Logger
}

// New opens an in-memory duckdb.
func New(lgr entity.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	return
}

// Close closes the database.
func (dk *Duck) Close() {
	dk.db.Close()
}

// Load reads a file into duckdb and drains it as fields and lines.
// CSV files go through read_csv_auto, anything else is treated as
// newline-delimited JSON.
func (dk *Duck) Load(ctx context.Context, path string) (fields []entity.Field, lines []entity.Line, err error) {

	err = dk.createRows(path)
	if err != nil {
		return
	}

	fields, err = dk.getFields()
	if err != nil {
		return
	}

	lines, err = dk.getLines(len(fields))
	if err != nil {
		return
	}

	dk.logger.Info(ctx, "loaded file", "path", path, "fields", len(fields), "lines", len(lines))
	return
}

// unexported

func (dk *Duck) createRows(path string) (err error) {

	_, err = dk.db.Exec("DROP TABLE IF EXISTS rows")
	if err != nil {
		err = errors.Wrapf(err, "failed to drop rows table")
		return
	}

	var reader string
	switch filepath.Ext(path) {
	case ".csv":
		reader = fmt.Sprintf("read_csv_auto('%s')", path)
	default:
		reader = fmt.Sprintf(
			"read_json_auto('%s', format='newline_delimited', maximum_object_size=%d)",
			path, maxObjectSize)
	}

	_, err = dk.db.Exec(fmt.Sprintf("CREATE TABLE rows AS SELECT * FROM %s", reader))
	err = errors.Wrapf(err, "failed to create rows table from %s", path)
	return
}

func (dk *Duck) getFields() (fields []entity.Field, err error) {

	rows, err := dk.db.Query(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = 'rows'
		ORDER BY ordinal_position
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field entity.Field
		if err = rows.Scan(&field.Name, &field.Type); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = errors.Wrapf(rows.Err(), "error iterating schema rows")
	return
}

func (dk *Duck) getLines(count int) (lines []entity.Line, err error) {

	rows, err := dk.db.Query("SELECT * FROM rows")
	if err != nil {
		err = errors.Wrapf(err, "failed to query rows")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, count)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		line := make(entity.Line, count)
		for i, val := range vals {
			line[i] = entity.Value{Raw: val}
		}
		lines = append(lines, line)
	}

	err = errors.Wrapf(rows.Err(), "error iterating rows")
	return
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {

	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	err := rows.Scan(ptrs...)
	return vals, err
}
