// Package mysql implements key record and envelope column persistence for MySQL.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"github.com/go-sql-driver/mysql"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	"github.com/allisson/fieldcrypt/internal/database"
	apperrors "github.com/allisson/fieldcrypt/internal/errors"
)

// duplicateEntry is ER_DUP_ENTRY.
const duplicateEntry = 1062

// MySQLKeyRecordRepository implements KeyRecord persistence for MySQL.
//
// Database schema requirements:
//   - id: BINARY(16) PRIMARY KEY (UUID stored as binary)
//   - key_ref: BIGINT UNSIGNED, unique
//   - key_hash: VARBINARY(64), unique
//   - created_at: DATETIME(6)
//
// The connection must be opened with parseTime=true.
type MySQLKeyRecordRepository struct {
	db *sql.DB
}

// NewMySQLKeyRecordRepository creates a new MySQL key record repository.
func NewMySQLKeyRecordRepository(db *sql.DB) *MySQLKeyRecordRepository {
	return &MySQLKeyRecordRepository{db: db}
}

// Create inserts a new key record. A duplicate key_ref or key_hash is reported as
// apperrors.ErrConflict.
func (m *MySQLKeyRecordRepository) Create(ctx context.Context, record *cryptoDomain.KeyRecord) error {
	querier := database.GetTx(ctx, m.db)

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal key record id")
	}

	query := `INSERT INTO key_records (id, key_ref, key_hash, created_at) VALUES (?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, uint64(record.KeyRef), record.KeyHash, record.CreatedAt)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == duplicateEntry {
			return apperrors.Wrapf(apperrors.ErrConflict, "key record %d already exists", record.KeyRef)
		}
		return apperrors.Wrap(err, "failed to create key record")
	}
	return nil
}

// List returns every key record ordered by key_ref ascending.
func (m *MySQLKeyRecordRepository) List(ctx context.Context) ([]*cryptoDomain.KeyRecord, error) {
	querier := database.GetTx(ctx, m.db)

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
		var (
			record cryptoDomain.KeyRecord
			id     []byte
			ref    uint64
		)

		if err := rows.Scan(&id, &ref, &record.KeyHash, &record.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan key record")
		}
		if err := record.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal key record id")
		}
		if ref > math.MaxUint32 {
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
