package postgresql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	apperrors "github.com/allisson/fieldcrypt/internal/errors"
	"github.com/allisson/fieldcrypt/internal/testutil"
)

var usersTarget = cryptoDomain.ColumnTarget{Table: "public.users", Column: "ssn", IDColumn: "user_id"}

func TestPostgreSQLEnvelopeColumnRepository_ListBatch_Queries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT CAST(user_id AS TEXT), ssn FROM public.users ORDER BY user_id ASC LIMIT $1`,
	)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "value"}).
			AddRow("1", []byte{0x00, 0x01}).
			AddRow("2", nil))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT CAST(user_id AS TEXT), ssn FROM public.users WHERE user_id > $1 ORDER BY user_id ASC LIMIT $2`,
	)).
		WithArgs("2", 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "value"}))

	repo := NewPostgreSQLEnvelopeColumnRepository(db)
	ctx := context.Background()

	first, err := repo.ListBatch(ctx, usersTarget, "", 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "1", first[0].ID)
	assert.Equal(t, []byte{0x00, 0x01}, first[0].Value)
	assert.Nil(t, first[1].Value)

	second, err := repo.ListBatch(ctx, usersTarget, "2", 2)
	require.NoError(t, err)
	assert.Empty(t, second)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLEnvelopeColumnRepository_InvalidTarget(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLEnvelopeColumnRepository(db)
	target := cryptoDomain.ColumnTarget{Table: "users; DROP TABLE users", Column: "ssn", IDColumn: "id"}

	_, err = repo.ListBatch(context.Background(), target, "", 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	err = repo.Update(context.Background(), target, "1", []byte{0x00})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLEnvelopeColumnRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	query := regexp.QuoteMeta(`UPDATE public.users SET ssn = $1 WHERE user_id = $2`)
	mock.ExpectExec(query).WithArgs([]byte{0x00, 0x02}, "1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs([]byte{0x00, 0x02}, "404").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgreSQLEnvelopeColumnRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, usersTarget, "1", []byte{0x00, 0x02}))

	err = repo.Update(ctx, usersTarget, "404", []byte{0x00, 0x02})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLEnvelopeColumnRepository_Pagination(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	target := testutil.CreateEnvelopeFixtureTable(t, db, "postgres")
	// 10 sorts after 9 numerically but before it as text.
	for _, id := range []int64{9, 10, 2} {
		testutil.InsertEnvelopeFixture(t, db, "postgres", id, []byte{0x00, byte(id)})
	}

	repo := NewPostgreSQLEnvelopeColumnRepository(db)
	ctx := context.Background()

	first, err := repo.ListBatch(ctx, target, "", 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "2", first[0].ID)
	assert.Equal(t, "9", first[1].ID)

	second, err := repo.ListBatch(ctx, target, first[1].ID, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "10", second[0].ID)

	require.NoError(t, repo.Update(ctx, target, "10", []byte{0x00, 0xff}))
	assert.Equal(t, []byte{0x00, 0xff}, testutil.GetEnvelopeFixture(t, db, "postgres", 10))

	err = repo.Update(ctx, target, "11", []byte{0x00})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
