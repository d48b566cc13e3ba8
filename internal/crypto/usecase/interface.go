// Package usecase defines the business logic interfaces for key registry and rewrap
// operations.
package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	cryptoService "github.com/allisson/fieldcrypt/internal/crypto/service"
)

// KeyRecordRepository defines the interface for KeyRecord persistence.
//
// Records are append-only. Implementations must enforce uniqueness of both key_ref and
// key_hash and report a violation as an error wrapping apperrors.ErrConflict, which is how
// a bootstrap that lost a race against another instance is detected.
//
// Available implementations:
//   - PostgreSQLKeyRecordRepository: native UUID and BYTEA columns
//   - MySQLKeyRecordRepository: BINARY(16) UUIDs and VARBINARY hashes
type KeyRecordRepository interface {
	// Create stores a new record. It participates in a transaction carried by ctx.
	Create(ctx context.Context, record *cryptoDomain.KeyRecord) error

	// List returns every record ordered by key_ref ascending.
	List(ctx context.Context) ([]*cryptoDomain.KeyRecord, error)
}

// EnvelopeColumnRepository reads and writes envelopes stored in an application column.
type EnvelopeColumnRepository interface {
	// ListBatch returns up to limit rows whose id sorts after afterID, ordered by id. An
	// empty afterID starts from the beginning.
	ListBatch(
		ctx context.Context,
		target cryptoDomain.ColumnTarget,
		afterID string,
		limit int,
	) ([]*cryptoDomain.ColumnValue, error)

	// Update replaces the value of one row.
	Update(ctx context.Context, target cryptoDomain.ColumnTarget, id string, value []byte) error
}

// KeyRegistryUseCase reconciles configured key material with the durable key records.
type KeyRegistryUseCase interface {
	// Resolve computes key references for the material without writing anything.
	Resolve(ctx context.Context, material *cryptoDomain.KeyMaterial) (*cryptoDomain.Resolution, error)

	// Bootstrap resolves the material, persists references for keys seen for the first
	// time and returns the key set. It is idempotent and safe to run from several
	// instances at once. The caller owns the key set and must Close it.
	Bootstrap(ctx context.Context, material *cryptoDomain.KeyMaterial) (*cryptoService.KeySet, error)

	// List returns every durable key record.
	List(ctx context.Context) ([]*cryptoDomain.KeyRecord, error)
}

// RewrapUseCase re-encrypts the envelopes of an application column under the current key.
type RewrapUseCase interface {
	// Rewrap pages through target and rewrites every envelope not under the current key.
	Rewrap(ctx context.Context, target cryptoDomain.ColumnTarget) (*cryptoDomain.RewrapResult, error)
}
