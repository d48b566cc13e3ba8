package mysql

import (
	"context"
	"database/sql"
	"fmt"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	"github.com/allisson/fieldcrypt/internal/database"
	apperrors "github.com/allisson/fieldcrypt/internal/errors"
)

// MySQLEnvelopeColumnRepository reads and rewrites envelopes stored in an arbitrary
// application column. Table and column names come from a validated ColumnTarget.
type MySQLEnvelopeColumnRepository struct {
	db *sql.DB
}

// NewMySQLEnvelopeColumnRepository creates a new MySQL envelope column repository.
func NewMySQLEnvelopeColumnRepository(db *sql.DB) *MySQLEnvelopeColumnRepository {
	return &MySQLEnvelopeColumnRepository{db: db}
}

// ListBatch returns up to limit rows whose id sorts after afterID.
func (m *MySQLEnvelopeColumnRepository) ListBatch(
	ctx context.Context,
	target cryptoDomain.ColumnTarget,
	afterID string,
	limit int,
) ([]*cryptoDomain.ColumnValue, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	querier := database.GetTx(ctx, m.db)

	var (
		rows *sql.Rows
		err  error
	)
	if afterID == "" {
		//nolint:gosec // identifiers are validated by ColumnTarget.Validate
		query := fmt.Sprintf(
			"SELECT CAST(%[1]s AS CHAR), %[2]s FROM %[3]s ORDER BY %[1]s ASC LIMIT ?",
			target.IDColumn, target.Column, target.Table,
		)
		rows, err = querier.QueryContext(ctx, query, limit)
	} else {
		//nolint:gosec // identifiers are validated by ColumnTarget.Validate
		query := fmt.Sprintf(
			"SELECT CAST(%[1]s AS CHAR), %[2]s FROM %[3]s WHERE %[1]s > ? ORDER BY %[1]s ASC LIMIT ?",
			target.IDColumn, target.Column, target.Table,
		)
		rows, err = querier.QueryContext(ctx, query, afterID, limit)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list envelope batch")
	}
	defer func() {
		_ = rows.Close()
	}()

	values := make([]*cryptoDomain.ColumnValue, 0, limit)
	for rows.Next() {
		var value cryptoDomain.ColumnValue
		if err := rows.Scan(&value.ID, &value.Value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan envelope row")
		}
		values = append(values, &value)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list envelope batch")
	}

	return values, nil
}

// Update replaces the value of one row. MySQL reports changed rows rather than matched
// rows, so a missing id is not detected here.
func (m *MySQLEnvelopeColumnRepository) Update(
	ctx context.Context,
	target cryptoDomain.ColumnTarget,
	id string,
	value []byte,
) error {
	if err := target.Validate(); err != nil {
		return err
	}
	querier := database.GetTx(ctx, m.db)

	//nolint:gosec // identifiers are validated by ColumnTarget.Validate
	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", target.Table, target.Column, target.IDColumn)

	if _, err := querier.ExecContext(ctx, query, value, id); err != nil {
		return apperrors.Wrap(err, "failed to update envelope")
	}
	return nil
}
