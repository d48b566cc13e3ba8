package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	cryptoService "github.com/allisson/fieldcrypt/internal/crypto/service"
	"github.com/allisson/fieldcrypt/internal/metrics"
)

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// keyRegistryUseCaseWithMetrics decorates KeyRegistryUseCase with metrics instrumentation.
type keyRegistryUseCaseWithMetrics struct {
	next    KeyRegistryUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyRegistryUseCaseWithMetrics wraps a KeyRegistryUseCase with metrics recording.
func NewKeyRegistryUseCaseWithMetrics(useCase KeyRegistryUseCase, m metrics.BusinessMetrics) KeyRegistryUseCase {
	return &keyRegistryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Resolve records metrics for key resolution.
func (k *keyRegistryUseCaseWithMetrics) Resolve(
	ctx context.Context,
	material *cryptoDomain.KeyMaterial,
) (*cryptoDomain.Resolution, error) {
	start := time.Now()
	res, err := k.next.Resolve(ctx, material)

	status := statusOf(err)
	k.metrics.RecordOperation(ctx, "crypto", "key_resolve", status)
	k.metrics.RecordDuration(ctx, "crypto", "key_resolve", time.Since(start), status)

	return res, err
}

// Bootstrap records metrics for key registry bootstrap.
func (k *keyRegistryUseCaseWithMetrics) Bootstrap(
	ctx context.Context,
	material *cryptoDomain.KeyMaterial,
) (*cryptoService.KeySet, error) {
	start := time.Now()
	keySet, err := k.next.Bootstrap(ctx, material)

	status := statusOf(err)
	k.metrics.RecordOperation(ctx, "crypto", "key_bootstrap", status)
	k.metrics.RecordDuration(ctx, "crypto", "key_bootstrap", time.Since(start), status)

	return keySet, err
}

// List records metrics for key record listing.
func (k *keyRegistryUseCaseWithMetrics) List(ctx context.Context) ([]*cryptoDomain.KeyRecord, error) {
	start := time.Now()
	records, err := k.next.List(ctx)

	status := statusOf(err)
	k.metrics.RecordOperation(ctx, "crypto", "key_list", status)
	k.metrics.RecordDuration(ctx, "crypto", "key_list", time.Since(start), status)

	return records, err
}

// rewrapUseCaseWithMetrics decorates RewrapUseCase with metrics instrumentation.
type rewrapUseCaseWithMetrics struct {
	next    RewrapUseCase
	metrics metrics.BusinessMetrics
}

// NewRewrapUseCaseWithMetrics wraps a RewrapUseCase with metrics recording.
func NewRewrapUseCaseWithMetrics(useCase RewrapUseCase, m metrics.BusinessMetrics) RewrapUseCase {
	return &rewrapUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Rewrap records metrics for column rewrap runs.
func (r *rewrapUseCaseWithMetrics) Rewrap(
	ctx context.Context,
	target cryptoDomain.ColumnTarget,
) (*cryptoDomain.RewrapResult, error) {
	start := time.Now()
	result, err := r.next.Rewrap(ctx, target)

	status := statusOf(err)
	r.metrics.RecordOperation(ctx, "crypto", "column_rewrap", status)
	r.metrics.RecordDuration(ctx, "crypto", "column_rewrap", time.Since(start), status)
	if result != nil {
		r.metrics.RecordRows(ctx, "crypto", "column_rewrap", "rewrapped", result.Rewrapped)
		r.metrics.RecordRows(ctx, "crypto", "column_rewrap", "skipped", result.Skipped)
	}

	return result, err
}
