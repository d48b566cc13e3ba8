package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
	cryptoUseCase "github.com/allisson/fieldcrypt/internal/crypto/usecase"
)

// fingerprintSize is how many hash bytes identify a key in command output.
const fingerprintSize = 8

type slotOutput struct {
	Slot        string `json:"slot"`
	Role        string `json:"role"`
	KeyRef      uint32 `json:"key_ref"`
	State       string `json:"state"`
	Fingerprint string `json:"fingerprint"`
	Registered  bool   `json:"registered"`
}

type keyRecordOutput struct {
	ID          string `json:"id"`
	KeyRef      uint32 `json:"key_ref"`
	State       string `json:"state"`
	Fingerprint string `json:"fingerprint"`
	CreatedAt   string `json:"created_at"`
}

func fingerprint(hash []byte) string {
	if len(hash) > fingerprintSize {
		hash = hash[:fingerprintSize]
	}
	return hex.EncodeToString(hash)
}

// RunBootstrapKeys registers every configured key that has no durable reference yet and
// prints the slot to reference mapping. Running it again registers nothing.
func RunBootstrapKeys(
	ctx context.Context,
	registry cryptoUseCase.KeyRegistryUseCase,
	material *cryptoDomain.KeyMaterial,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	// Resolve first so the output can tell which keys this run registered.
	res, err := registry.Resolve(ctx, material)
	if err != nil {
		return fmt.Errorf("failed to resolve keys: %w", err)
	}

	keySet, err := registry.Bootstrap(ctx, material)
	if err != nil {
		return fmt.Errorf("failed to bootstrap keys: %w", err)
	}
	defer keySet.Close()

	slots := make([]slotOutput, 0, len(res.Resolved))
	for _, rk := range res.Resolved {
		slots = append(slots, slotOutput{
			Slot:        rk.Slot,
			Role:        string(rk.Role),
			KeyRef:      uint32(rk.KeyRef),
			State:       string(res.StateOf(rk.KeyRef)),
			Fingerprint: fingerprint(rk.Hash),
			Registered:  rk.New,
		})
	}

	logger.Info("key bootstrap completed",
		slog.Int("registered", len(res.NewRecords)),
		slog.Int("keys", keySet.Len()),
		slog.Uint64("current_key_ref", uint64(keySet.CurrentKeyRef())),
	)

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"current_key_ref": uint32(keySet.CurrentKeyRef()),
			"registered":      len(res.NewRecords),
			"slots":           slots,
		})
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SLOT\tROLE\tKEY REF\tSTATE\tFINGERPRINT\tREGISTERED")
	for _, s := range slots {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%t\n",
			s.Slot, s.Role, s.KeyRef, s.State, s.Fingerprint, s.Registered)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "Registered %d new key(s), current key ref is %d\n",
		len(res.NewRecords), keySet.CurrentKeyRef())
	return err
}

// RunListKeys prints every durable key record with its lifecycle state against the
// configured key material. Records whose key is no longer configured show as RETIRED.
func RunListKeys(
	ctx context.Context,
	registry cryptoUseCase.KeyRegistryUseCase,
	material *cryptoDomain.KeyMaterial,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	records, err := registry.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list key records: %w", err)
	}

	res, err := registry.Resolve(ctx, material)
	if err != nil {
		return fmt.Errorf("failed to resolve keys: %w", err)
	}
	if len(res.NewRecords) > 0 {
		logger.Warn("configured keys are not bootstrapped yet",
			slog.Int("unregistered", len(res.NewRecords)),
		)
	}

	out := make([]keyRecordOutput, 0, len(records))
	for _, record := range records {
		out = append(out, keyRecordOutput{
			ID:          record.ID.String(),
			KeyRef:      uint32(record.KeyRef),
			State:       string(res.StateOf(record.KeyRef)),
			Fingerprint: fingerprint(record.KeyHash),
			CreatedAt:   record.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	if format == "json" {
		return writeJSON(writer, map[string]any{"keys": out})
	}

	if len(out) == 0 {
		_, err := fmt.Fprintln(writer, "No key records found, run bootstrap-keys first")
		return err
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEY REF\tSTATE\tFINGERPRINT\tCREATED AT\tID")
	for _, k := range out {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", k.KeyRef, k.State, k.Fingerprint, k.CreatedAt, k.ID)
	}
	return tw.Flush()
}
