package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	cryptoMocks "github.com/allisson/fieldcrypt/internal/crypto/usecase/mocks"
)

type fakeServer struct {
	startErr  error
	stopped   chan struct{}
	once      sync.Once
	started   atomic.Bool
	shutdowns atomic.Int32
}

func newFakeServer(startErr error) *fakeServer {
	return &fakeServer{startErr: startErr, stopped: make(chan struct{})}
}

func (s *fakeServer) Start(ctx context.Context) error {
	s.started.Store(true)
	if s.startErr != nil {
		return s.startErr
	}
	<-s.stopped
	return nil
}

func (s *fakeServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	s.once.Do(func() { close(s.stopped) })
	return nil
}

func TestRunRewrapColumn(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	target := cryptoDomain.ColumnTarget{Table: "users", Column: "ssn", IDColumn: "id"}

	t.Run("text-output", func(t *testing.T) {
		useCase := cryptoMocks.NewMockRewrapUseCase(t)
		useCase.EXPECT().Rewrap(mock.Anything, target).
			Return(&cryptoDomain.RewrapResult{Scanned: 10, Rewrapped: 7, Skipped: 3}, nil).Once()

		var out bytes.Buffer
		err := RunRewrapColumn(ctx, useCase, nil, logger, &out, target, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Rewrapped 7 of 10 row(s) in users.ssn (3 skipped)")
	})

	t.Run("json-output-with-server", func(t *testing.T) {
		useCase := cryptoMocks.NewMockRewrapUseCase(t)
		useCase.EXPECT().Rewrap(mock.Anything, target).
			Return(&cryptoDomain.RewrapResult{Scanned: 4, Rewrapped: 4}, nil).Once()
		server := newFakeServer(nil)

		var out bytes.Buffer
		err := RunRewrapColumn(ctx, useCase, server, logger, &out, target, "json")
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, "users", result["table"])
		assert.Equal(t, float64(4), result["rewrapped"])
		assert.Equal(t, float64(0), result["skipped"])
		assert.True(t, server.started.Load())
		assert.Equal(t, int32(1), server.shutdowns.Load())
	})

	t.Run("rewrap-error", func(t *testing.T) {
		useCase := cryptoMocks.NewMockRewrapUseCase(t)
		useCase.EXPECT().Rewrap(mock.Anything, target).
			Return(&cryptoDomain.RewrapResult{Scanned: 2}, cryptoDomain.ErrKeyNotFound).Once()
		server := newFakeServer(nil)

		err := RunRewrapColumn(ctx, useCase, server, logger, &bytes.Buffer{}, target, "text")

		require.Error(t, err)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotFound)
		assert.Equal(t, int32(1), server.shutdowns.Load())
	})

	t.Run("server-error-stops-run", func(t *testing.T) {
		useCase := cryptoMocks.NewMockRewrapUseCase(t)
		useCase.EXPECT().Rewrap(mock.Anything, target).
			RunAndReturn(func(ctx context.Context, _ cryptoDomain.ColumnTarget) (*cryptoDomain.RewrapResult, error) {
				<-ctx.Done()
				return &cryptoDomain.RewrapResult{}, ctx.Err()
			}).Once()
		server := newFakeServer(errors.New("address already in use"))

		err := RunRewrapColumn(ctx, useCase, server, logger, &bytes.Buffer{}, target, "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address already in use")
	})

	t.Run("invalid-target", func(t *testing.T) {
		useCase := cryptoMocks.NewMockRewrapUseCase(t)
		bad := cryptoDomain.ColumnTarget{Table: "users; DROP TABLE users", Column: "ssn", IDColumn: "id"}

		err := RunRewrapColumn(ctx, useCase, nil, logger, &bytes.Buffer{}, bad, "text")
		require.Error(t, err)
	})
}
