// Package snapshot persists an ordered sequence of records as a single
// whole-file JSON document. It is the only persistence mechanism the demo
// programs use: the full sequence is written out and read back in one
// operation, with no partial updates and no atomic-rename guarantee.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/phrazzld/depot/internal/platform/logger"
)

// ErrNoSnapshot is returned by Load when no snapshot file exists at the given
// path. It wraps fs.ErrNotExist so either sentinel can be matched with
// errors.Is. Callers treat this as a warning and keep their in-memory state.
var ErrNoSnapshot = fmt.Errorf("no snapshot file: %w", fs.ErrNotExist)

// Save serializes records to a JSON array at path, replacing any previous
// file contents. If the file cannot be created the previous on-disk state is
// left untouched; a failure mid-write is reported but not rolled back.
func Save[V any](ctx context.Context, path string, records []V) error {
	log := logger.FromContextOrDefault(ctx, nil)

	file, err := os.Create(path)
	if err != nil {
		log.Error("failed to create snapshot file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("create snapshot %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Error("failed to close snapshot file",
				slog.String("path", path),
				slog.String("error", cerr.Error()))
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode snapshot %s: %w", path, err)
	}

	log.Info("snapshot saved",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return nil
}

// Load reads the JSON array at path and returns the decoded records.
// Returns ErrNoSnapshot when the file does not exist, and a decode error when
// the file exists but cannot be parsed; in both cases the caller's in-memory
// sequence should be left unchanged.
func Load[V any](ctx context.Context, path string) ([]V, error) {
	log := logger.FromContextOrDefault(ctx, nil)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("snapshot file absent, keeping in-memory state",
				slog.String("path", path))
			return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, path)
		}
		log.Error("failed to open snapshot file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Error("failed to close snapshot file",
				slog.String("path", path),
				slog.String("error", cerr.Error()))
		}
	}()

	var records []V
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		log.Error("failed to decode snapshot file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	log.Info("snapshot loaded",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return records, nil
}
