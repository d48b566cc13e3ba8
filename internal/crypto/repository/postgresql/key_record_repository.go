// Package postgresql implements key record and envelope column persistence for PostgreSQL.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"github.com/lib/pq"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	"github.com/allisson/fieldcrypt/internal/database"
	apperrors "github.com/allisson/fieldcrypt/internal/errors"
)

// uniqueViolation is the SQLSTATE of a unique index violation.
const uniqueViolation = "23505"

// PostgreSQLKeyRecordRepository implements KeyRecord persistence for PostgreSQL.
//
// Database schema requirements:
//   - id: UUID PRIMARY KEY
//   - key_ref: BIGINT, unique
//   - key_hash: BYTEA, unique
//   - created_at: TIMESTAMPTZ
//
// The repository detects transaction context using database.GetTx(), so both methods
// work within and outside of transactions.
type PostgreSQLKeyRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLKeyRecordRepository creates a new PostgreSQL key record repository.
func NewPostgreSQLKeyRecordRepository(db *sql.DB) *PostgreSQLKeyRecordRepository {
	return &PostgreSQLKeyRecordRepository{db: db}
}

// Create inserts a new key record. A duplicate key_ref or key_hash is reported as
// apperrors.ErrConflict.
func (p *PostgreSQLKeyRecordRepository) Create(ctx context.Context, record *cryptoDomain.KeyRecord) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO key_records (id, key_ref, key_hash, created_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
		int64(record.KeyRef),
		record.KeyHash,
		record.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.Wrapf(apperrors.ErrConflict, "key record %d already exists", record.KeyRef)
		}
		return apperrors.Wrap(err, "failed to create key record")
	}
	return nil
}

// List returns every key record ordered by key_ref ascending.
func (p *PostgreSQLKeyRecordRepository) List(ctx context.Context) ([]*cryptoDomain.KeyRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, key_ref, key_hash, created_at FROM key_records ORDER BY key_ref ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list key records")
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*cryptoDomain.KeyRecord
	for rows.Next() {
		var record cryptoDomain.KeyRecord
		var ref int64

		if err := rows.Scan(&record.ID, &ref, &record.KeyHash, &record.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan key record")
		}
		if ref < 0 || ref > math.MaxUint32 {
			return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "key_ref %d out of range", ref)
		}
		record.KeyRef = cryptoDomain.KeyRef(ref)

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list key records")
	}

	return records, nil
}
