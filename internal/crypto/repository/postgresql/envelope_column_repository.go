package postgresql

import (
	"context"
	"database/sql"
	"fmt"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	"github.com/allisson/fieldcrypt/internal/database"
	apperrors "github.com/allisson/fieldcrypt/internal/errors"
)

// PostgreSQLEnvelopeColumnRepository reads and rewrites envelopes stored in an arbitrary
// application column. Table and column names come from a validated ColumnTarget.
//
// Ids are compared with an untyped parameter, so PostgreSQL coerces the textual cursor
// to the id column's own type and ordering stays native (numeric, uuid or text).
type PostgreSQLEnvelopeColumnRepository struct {
	db *sql.DB
}

// NewPostgreSQLEnvelopeColumnRepository creates a new PostgreSQL envelope column repository.
func NewPostgreSQLEnvelopeColumnRepository(db *sql.DB) *PostgreSQLEnvelopeColumnRepository {
	return &PostgreSQLEnvelopeColumnRepository{db: db}
}

// ListBatch returns up to limit rows whose id sorts after afterID.
func (p *PostgreSQLEnvelopeColumnRepository) ListBatch(
	ctx context.Context,
	target cryptoDomain.ColumnTarget,
	afterID string,
	limit int,
) ([]*cryptoDomain.ColumnValue, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	querier := database.GetTx(ctx, p.db)

	var (
		rows *sql.Rows
		err  error
	)
	if afterID == "" {
		//nolint:gosec // identifiers are validated by ColumnTarget.Validate
		query := fmt.Sprintf(
			`SELECT CAST(%[1]s AS TEXT), %[2]s FROM %[3]s ORDER BY %[1]s ASC LIMIT $1`,
			target.IDColumn, target.Column, target.Table,
		)
		rows, err = querier.QueryContext(ctx, query, limit)
	} else {
		//nolint:gosec // identifiers are validated by ColumnTarget.Validate
		query := fmt.Sprintf(
			`SELECT CAST(%[1]s AS TEXT), %[2]s FROM %[3]s WHERE %[1]s > $1 ORDER BY %[1]s ASC LIMIT $2`,
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

// Update replaces the value of one row.
func (p *PostgreSQLEnvelopeColumnRepository) Update(
	ctx context.Context,
	target cryptoDomain.ColumnTarget,
	id string,
	value []byte,
) error {
	if err := target.Validate(); err != nil {
		return err
	}
	querier := database.GetTx(ctx, p.db)

	//nolint:gosec // identifiers are validated by ColumnTarget.Validate
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`, target.Table, target.Column, target.IDColumn)

	result, err := querier.ExecContext(ctx, query, value, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update envelope")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update envelope")
	}
	if affected == 0 {
		return apperrors.Wrapf(apperrors.ErrNotFound, "row %s", id)
	}
	return nil
}
