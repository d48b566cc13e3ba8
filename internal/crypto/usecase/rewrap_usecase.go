package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	cryptoService "github.com/allisson/fieldcrypt/internal/crypto/service"
	"github.com/allisson/fieldcrypt/internal/database"
)

// RewrapConfig tunes a rewrap run.
type RewrapConfig struct {
	// BatchSize is the number of rows read and rewritten per transaction.
	BatchSize int
	// RowsPerSecond throttles the run. Zero disables throttling.
	RowsPerSecond float64
}

// rewrapUseCase implements the RewrapUseCase interface.
type rewrapUseCase struct {
	txManager database.TxManager
	repo      EnvelopeColumnRepository
	cipher    cryptoService.Cipher
	batchSize int
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// NewRewrapUseCase creates a new RewrapUseCase. logger may be nil.
func NewRewrapUseCase(
	txManager database.TxManager,
	repo EnvelopeColumnRepository,
	cipher cryptoService.Cipher,
	config RewrapConfig,
	logger *slog.Logger,
) RewrapUseCase {
	batchSize := config.BatchSize
	if batchSize <= 0 {
		batchSize = cryptoDomain.DefaultRewrapBatchSize
	}

	var limiter *rate.Limiter
	if config.RowsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RowsPerSecond), batchSize)
	}

	return &rewrapUseCase{
		txManager: txManager,
		repo:      repo,
		cipher:    cipher,
		batchSize: batchSize,
		limiter:   limiter,
		logger:    logger,
	}
}

// Rewrap pages through target by id and rewrites every envelope not under the current key.
// Each batch commits in its own transaction, so an interrupted run can simply be restarted.
func (r *rewrapUseCase) Rewrap(
	ctx context.Context,
	target cryptoDomain.ColumnTarget,
) (*cryptoDomain.RewrapResult, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	result := &cryptoDomain.RewrapResult{}
	afterID := ""

	for {
		if r.limiter != nil {
			if err := r.limiter.WaitN(ctx, r.batchSize); err != nil {
				return result, err
			}
		}

		var (
			rows      []*cryptoDomain.ColumnValue
			rewrapped int
			skipped   int
		)
		err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
			var err error
			rows, err = r.repo.ListBatch(ctx, target, afterID, r.batchSize)
			if err != nil {
				return err
			}

			for _, row := range rows {
				if row.Value == nil {
					skipped++
					continue
				}

				out, changed, err := r.cipher.Rewrap(row.Value)
				if err != nil {
					return fmt.Errorf("row %s: %w", row.ID, err)
				}
				if !changed {
					skipped++
					continue
				}

				if err := r.repo.Update(ctx, target, row.ID, out); err != nil {
					return err
				}
				rewrapped++
			}
			return nil
		})
		if err != nil {
			return result, err
		}

		if len(rows) == 0 {
			break
		}

		result.Scanned += len(rows)
		result.Rewrapped += rewrapped
		result.Skipped += skipped
		afterID = rows[len(rows)-1].ID

		if r.logger != nil {
			r.logger.Info("rewrap batch committed",
				slog.String("table", target.Table),
				slog.String("column", target.Column),
				slog.Int("rewrapped_in_batch", rewrapped),
				slog.Int("total_rewrapped", result.Rewrapped),
				slog.Int("total_scanned", result.Scanned),
			)
		}

		if len(rows) < r.batchSize {
			break
		}
	}

	return result, nil
}
