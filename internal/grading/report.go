package grading

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/depot/internal/domain"
	"github.com/phrazzld/depot/internal/platform/logger"
)

// letterGrades lists the grades in the order they appear in the report's
// distribution summary.
var letterGrades = []string{"A", "B", "C", "D", "F"}

// WriteReport writes the plain text grade report to w: a fixed header, one
// formatted line per record, and a trailing grade-distribution summary with
// counts per letter grade and the computed average.
func WriteReport(w io.Writer, records []*domain.StudentRecord) error {
	if _, err := fmt.Fprintf(w, "STUDENT GRADE REPORT\n====================\n"); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%-6s %-20s %5s %6s\n", "ID", "Name", "Score", "Grade"); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	distribution := make(map[string]int, len(letterGrades))
	total := 0
	for _, record := range records {
		grade := record.LetterGrade()
		distribution[grade]++
		total += record.Score

		if _, err := fmt.Fprintf(w, "%-6d %-20s %5d %6s\n",
			record.ID, record.Name, record.Score, grade); err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "\nGrade distribution:\n"); err != nil {
		return fmt.Errorf("write report summary: %w", err)
	}
	for _, grade := range letterGrades {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", grade, distribution[grade]); err != nil {
			return fmt.Errorf("write report summary: %w", err)
		}
	}

	average := 0.0
	if len(records) > 0 {
		average = float64(total) / float64(len(records))
	}
	if _, err := fmt.Fprintf(w, "Average score: %.2f\n", average); err != nil {
		return fmt.Errorf("write report summary: %w", err)
	}

	return nil
}

// WriteReportFile writes the grade report to the file at path, replacing any
// previous contents. The file handle is released before the function returns
// on every path.
func WriteReportFile(ctx context.Context, path string, records []*domain.StudentRecord) error {
	log := logger.FromContextOrDefault(ctx, nil)

	file, err := os.Create(path)
	if err != nil {
		log.Error("failed to create report file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("create report file %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Error("failed to close report file",
				slog.String("path", path),
				slog.String("error", cerr.Error()))
		}
	}()

	if err := WriteReport(file, records); err != nil {
		return fmt.Errorf("write report file %s: %w", path, err)
	}

	log.Info("report file written",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return nil
}
