// Package usecase implements business logic orchestration for the key registry and for
// rewrapping stored envelopes.
//
// # Bootstrap
//
// Every process reconciles its configured keys against the durable key records at startup.
// Keys seen for the first time get the next free reference inside a transaction; unique
// indexes on key_ref and key_hash reject a concurrent instance that computed the same
// references, and the loser retries against the records the winner committed.
//
// # Rewrap
//
// After a rotation, rows written under older keys stay readable for as long as those keys
// remain configured. Rewrap moves them to the current key so the older keys can be retired.
package usecase

import (
	"context"
	"log/slog"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	cryptoService "github.com/allisson/fieldcrypt/internal/crypto/service"
	"github.com/allisson/fieldcrypt/internal/database"
	apperrors "github.com/allisson/fieldcrypt/internal/errors"
)

// maxBootstrapAttempts bounds retries after a lost registration race.
const maxBootstrapAttempts = 3

// keyRegistryUseCase implements the KeyRegistryUseCase interface.
type keyRegistryUseCase struct {
	txManager database.TxManager
	repo      KeyRecordRepository
	logger    *slog.Logger
}

// NewKeyRegistryUseCase creates a new KeyRegistryUseCase. logger may be nil.
func NewKeyRegistryUseCase(
	txManager database.TxManager,
	repo KeyRecordRepository,
	logger *slog.Logger,
) KeyRegistryUseCase {
	return &keyRegistryUseCase{
		txManager: txManager,
		repo:      repo,
		logger:    logger,
	}
}

// Resolve computes key references for the material without writing anything.
func (k *keyRegistryUseCase) Resolve(
	ctx context.Context,
	material *cryptoDomain.KeyMaterial,
) (*cryptoDomain.Resolution, error) {
	records, err := k.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return cryptoDomain.ResolveKeys(records, material)
}

// Bootstrap resolves the material, persists new references and returns the key set.
func (k *keyRegistryUseCase) Bootstrap(
	ctx context.Context,
	material *cryptoDomain.KeyMaterial,
) (*cryptoService.KeySet, error) {
	var res *cryptoDomain.Resolution

	for attempt := 1; ; attempt++ {
		err := k.txManager.WithTx(ctx, func(ctx context.Context) error {
			records, err := k.repo.List(ctx)
			if err != nil {
				return err
			}

			resolved, err := cryptoDomain.ResolveKeys(records, material)
			if err != nil {
				return err
			}

			for _, record := range resolved.NewRecords {
				if err := k.repo.Create(ctx, record); err != nil {
					return err
				}
			}

			res = resolved
			return nil
		})
		if err == nil {
			break
		}
		if !apperrors.Is(err, apperrors.ErrConflict) || attempt >= maxBootstrapAttempts {
			return nil, err
		}

		if k.logger != nil {
			k.logger.Warn("key registration conflict, retrying",
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
		}
	}

	if k.logger != nil {
		for _, rk := range res.Resolved {
			k.logger.Info("key resolved",
				slog.String("slot", rk.Slot),
				slog.String("role", string(rk.Role)),
				slog.Uint64("key_ref", uint64(rk.KeyRef)),
				slog.Bool("registered", rk.New),
			)
		}
		k.logger.Info("key registry bootstrapped",
			slog.Uint64("current_key_ref", uint64(res.CurrentKeyRef)),
			slog.Int("keys", len(res.Keys)),
			slog.Int("registered", len(res.NewRecords)),
		)
	}

	return cryptoService.NewKeySetFromResolution(res)
}

// List returns every durable key record.
func (k *keyRegistryUseCase) List(ctx context.Context) ([]*cryptoDomain.KeyRecord, error) {
	return k.repo.List(ctx)
}
