package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/dbx"
)

// SQLiteRepository stores the whole list in the "barcodes" table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]barcodes.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code, timestamp FROM barcodes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to select barcodes: %w", err)
	}
	defer rows.Close()

	result := []barcodes.Record{}
	for rows.Next() {
		var rec barcodes.Record
		if err := rows.Scan(&rec.Code, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan barcode row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate barcode rows: %w", err)
	}
	return result, nil
}

// Save replaces the stored list with records in a single transaction.
// Duplicate codes violate the table's UNIQUE constraint and abort the save.
func (r *SQLiteRepository) Save(ctx context.Context, records []barcodes.Record) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM barcodes`); err != nil {
			return err
		}
		for i, rec := range records {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO barcodes (position, code, timestamp) VALUES (?, ?, ?)`,
				i, rec.Code, rec.Timestamp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save barcodes: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM barcodes`); err != nil {
		return fmt.Errorf("failed to clear barcodes: %w", err)
	}
	return nil
}

// Ping checks the database handle.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close is a no-op: the database handle is owned by the caller.
func (r *SQLiteRepository) Close() error {
	return nil
}
