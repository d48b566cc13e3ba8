package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	cryptoUseCase "github.com/allisson/fieldcrypt/internal/crypto/usecase"
)

// serverShutdownTimeout bounds the metrics server drain after a rewrap run.
const serverShutdownTimeout = 5 * time.Second

// BackgroundServer is a server that runs alongside a long command, such as the metrics server.
type BackgroundServer interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunRewrapColumn re-encrypts every envelope of one column under the current key. The run
// stops on SIGINT or SIGTERM after the batch in flight; committed batches stay rewritten
// and a restart resumes from the start of the table, skipping rows already current.
// server is optional and is shut down once the run ends.
func RunRewrapColumn(
	ctx context.Context,
	useCase cryptoUseCase.RewrapUseCase,
	server BackgroundServer,
	logger *slog.Logger,
	writer io.Writer,
	target cryptoDomain.ColumnTarget,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting column rewrap",
		slog.String("table", target.Table),
		slog.String("column", target.Column),
		slog.String("id_column", target.IDColumn),
	)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	if server != nil {
		g.Go(func() error {
			return server.Start(gctx)
		})
	}

	var (
		result    *cryptoDomain.RewrapResult
		rewrapErr error
	)
	g.Go(func() error {
		result, rewrapErr = useCase.Rewrap(gctx, target)
		if server == nil {
			return rewrapErr
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Join(rewrapErr, fmt.Errorf("metrics server shutdown: %w", err))
		}
		return rewrapErr
	})

	if err := g.Wait(); err != nil {
		if result != nil {
			logger.Error("column rewrap interrupted",
				slog.Int("scanned", result.Scanned),
				slog.Int("rewrapped", result.Rewrapped),
				slog.Any("error", err),
			)
		}
		return fmt.Errorf("failed to rewrap column: %w", err)
	}

	duration := time.Since(start)
	logger.Info("column rewrap completed",
		slog.Int("scanned", result.Scanned),
		slog.Int("rewrapped", result.Rewrapped),
		slog.Int("skipped", result.Skipped),
		slog.Duration("duration", duration),
	)

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"table":       target.Table,
			"column":      target.Column,
			"scanned":     result.Scanned,
			"rewrapped":   result.Rewrapped,
			"skipped":     result.Skipped,
			"duration_ms": duration.Milliseconds(),
		})
	}

	_, err := fmt.Fprintf(writer,
		"Rewrapped %d of %d row(s) in %s.%s (%d skipped) in %s\n",
		result.Rewrapped, result.Scanned, target.Table, target.Column, result.Skipped, duration.Round(time.Millisecond),
	)
	return err
}
