package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/depot/internal/domain"
	"github.com/phrazzld/depot/internal/platform/snapshot"
	"github.com/phrazzld/depot/internal/store"
)

// seedStockEntries is the fixed sample data the inventory demo appends on
// every run.
var seedStockEntries = []struct {
	sku      string
	name     string
	quantity int
}{
	{"SKU-1001", "Hex Bolts (box of 100)", 40},
	{"SKU-1002", "Wood Screws (box of 200)", 25},
	{"SKU-1003", "Claw Hammer", 12},
	{"SKU-1004", "Safety Goggles", 30},
}

// InventoryService runs the inventory logger demo: an append-only log of
// stock entries restored from and persisted to a whole-file JSON snapshot.
type InventoryService struct {
	log          *store.RecordLog[*domain.StockEntry]
	snapshotPath string
	out          io.Writer
	logger       *slog.Logger
}

// NewInventoryService creates the inventory demo service. Entries are
// persisted to snapshotPath. If out is nil, os.Stdout is used; if logger is
// nil, the default logger is used.
func NewInventoryService(snapshotPath string, out io.Writer, logger *slog.Logger) *InventoryService {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &InventoryService{
		log:          store.NewRecordLog[*domain.StockEntry](),
		snapshotPath: snapshotPath,
		out:          out,
		logger:       logger.With(slog.String("component", "inventory_service")),
	}
}

// Run restores any previous log from disk, appends the sample entries,
// prints the full log, and persists it back to disk. A missing snapshot is a
// warning, not a failure; a persist failure is reported but the run still
// completes.
func (s *InventoryService) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== Inventory Logger ===")

	s.restore(ctx)

	for _, seed := range seedStockEntries {
		entry, err := domain.NewStockEntry(seed.sku, seed.name, seed.quantity)
		if err != nil {
			s.logger.Error("failed to build stock entry",
				slog.String("sku", seed.sku),
				slog.String("error", err.Error()))
			fmt.Fprintf(s.out, "could not record %s: %v\n", seed.sku, err)
			continue
		}

		s.log.Append(entry)
		fmt.Fprintf(s.out, "recorded %s: %s x%d\n", entry.SKU, entry.Name, entry.Quantity)
	}

	entries := s.log.Snapshot()
	fmt.Fprintf(s.out, "\nlog contains %d entries:\n", len(entries))
	for _, entry := range entries {
		fmt.Fprintf(s.out, "  %-10s %-26s qty %3d  at %s\n",
			entry.SKU, entry.Name, entry.Quantity,
			entry.RecordedAt.Format("2006-01-02 15:04:05"))
	}

	if err := snapshot.Save(ctx, s.snapshotPath, entries); err != nil {
		fmt.Fprintf(s.out, "could not persist log: %v\n", err)
		return NewServiceError("inventory", "persist_log", "failed to write snapshot", err)
	}
	fmt.Fprintf(s.out, "log persisted to %s\n", s.snapshotPath)

	return nil
}

// restore replaces the in-memory log with the snapshot on disk, if one
// exists. The in-memory log is left untouched when the file is absent or
// unreadable.
func (s *InventoryService) restore(ctx context.Context) {
	entries, err := snapshot.Load[*domain.StockEntry](ctx, s.snapshotPath)
	if err != nil {
		if errors.Is(err, snapshot.ErrNoSnapshot) {
			fmt.Fprintf(s.out, "no existing log at %s, starting fresh\n", s.snapshotPath)
			return
		}
		s.logger.Error("failed to restore log",
			slog.String("path", s.snapshotPath),
			slog.String("error", err.Error()))
		fmt.Fprintf(s.out, "could not restore log: %v\n", err)
		return
	}

	s.log.Replace(entries)
	fmt.Fprintf(s.out, "restored %d entries from %s\n", len(entries), s.snapshotPath)
}
