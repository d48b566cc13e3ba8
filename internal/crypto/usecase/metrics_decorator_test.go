package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	"github.com/allisson/fieldcrypt/internal/crypto/usecase"
	usecaseMocks "github.com/allisson/fieldcrypt/internal/crypto/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordRows(ctx context.Context, domain, operation, outcome string, count int) {
	m.Called(ctx, domain, operation, outcome, count)
}

func TestKeyRegistryUseCaseWithMetrics(t *testing.T) {
	mockNext := usecaseMocks.NewMockKeyRegistryUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewKeyRegistryUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()

	t.Run("List success", func(t *testing.T) {
		records := []*cryptoDomain.KeyRecord{{KeyRef: 0}}

		mockNext.EXPECT().List(ctx).Return(records, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "crypto", "key_list", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "crypto", "key_list", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, records, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Bootstrap error", func(t *testing.T) {
		expectedErr := errors.New("error")

		mockNext.EXPECT().Bootstrap(ctx, mock.Anything).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "crypto", "key_bootstrap", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "crypto", "key_bootstrap", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		keySet, err := uc.Bootstrap(ctx, &cryptoDomain.KeyMaterial{})
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, keySet)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Resolve success", func(t *testing.T) {
		res := &cryptoDomain.Resolution{CurrentKeyRef: 2}

		mockNext.EXPECT().Resolve(ctx, mock.Anything).Return(res, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "crypto", "key_resolve", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "crypto", "key_resolve", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		got, err := uc.Resolve(ctx, &cryptoDomain.KeyMaterial{})
		assert.NoError(t, err)
		assert.Equal(t, res, got)
		mockMetrics.AssertExpectations(t)
	})
}

func TestRewrapUseCaseWithMetrics(t *testing.T) {
	mockNext := usecaseMocks.NewMockRewrapUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewRewrapUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()
	target := cryptoDomain.ColumnTarget{Table: "t", Column: "c", IDColumn: "id"}
	result := &cryptoDomain.RewrapResult{Scanned: 3, Rewrapped: 2, Skipped: 1}

	mockNext.EXPECT().Rewrap(ctx, target).Return(result, nil).Once()
	mockMetrics.On("RecordOperation", ctx, "crypto", "column_rewrap", "success").Return().Once()
	mockMetrics.On("RecordDuration", ctx, "crypto", "column_rewrap", mock.AnythingOfType("time.Duration"), "success").
		Return().
		Once()
	mockMetrics.On("RecordRows", ctx, "crypto", "column_rewrap", "rewrapped", 2).Return().Once()
	mockMetrics.On("RecordRows", ctx, "crypto", "column_rewrap", "skipped", 1).Return().Once()

	got, err := uc.Rewrap(ctx, target)
	assert.NoError(t, err)
	assert.Equal(t, result, got)
	mockMetrics.AssertExpectations(t)
}
