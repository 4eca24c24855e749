package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// columnExists reports whether the column is present on the table, asking the
// database itself rather than trusting any recorded version number.
func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	if currentDialect == DialectPostgres {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = $1 AND column_name = $2)`,
			table, column).Scan(&exists)
		if err != nil {
			return false, fmt.Errorf("checking column %s.%s: %w", table, column, err)
		}
		return exists, nil
	}

	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("checking column %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err = rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return false, fmt.Errorf("scanning table_info for %s: %w", table, err)
		}
		if strings.EqualFold(name, column) {
			return true, nil
		}
	}

	return false, rows.Err()
}

// addColumnIfMissing applies ALTER TABLE ADD COLUMN only when the column is
// absent, making the enclosing migration step safe to re-run.
func addColumnIfMissing(ctx context.Context, tx *sql.Tx, table, column, definition string) error {
	exists, err := columnExists(ctx, tx, table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if _, err = tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition)); err != nil {
		return fmt.Errorf("adding column %s.%s: %w", table, column, err)
	}

	return nil
}
