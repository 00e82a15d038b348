package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/depot/internal/grading"
	"github.com/phrazzld/depot/internal/platform/logger"
)

// sampleGrades is written to the input path when no record file exists yet,
// so a fresh checkout produces a complete run.
const sampleGrades = `101, Alice Smith, 85
102, Bob Johnson, 92
103, Carol White, 78

104, David Brown, 68
105, Eve Davis, 55
106, Frank Miller, 43
`

// GradebookService runs the school grading demo: it parses a comma-separated
// score file, computes letter grades, and writes a plain text report with a
// grade-distribution summary.
type GradebookService struct {
	inputPath  string
	reportPath string
	out        io.Writer
	logger     *slog.Logger
}

// NewGradebookService creates the gradebook demo service reading scores from
// inputPath and writing the report to reportPath. If out is nil, os.Stdout
// is used; if logger is nil, the default logger is used.
func NewGradebookService(inputPath, reportPath string, out io.Writer, log *slog.Logger) *GradebookService {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = slog.Default()
	}

	return &GradebookService{
		inputPath:  inputPath,
		reportPath: reportPath,
		out:        out,
		logger:     log.With(slog.String("component", "gradebook_service")),
	}
}

// Run parses the score file and writes the report. Unlike the other demos,
// the file read is all-or-nothing: the first offending line aborts the whole
// run with an error rather than skipping the line.
func (s *GradebookService) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== School Gradebook ===")

	ctx = logger.WithContext(ctx, s.logger)

	if err := s.seedInputFile(); err != nil {
		fmt.Fprintf(s.out, "could not create sample score file: %v\n", err)
		return NewServiceError("gradebook", "seed_input", "failed to write sample score file", err)
	}

	records, err := grading.ReadRecordsFile(ctx, s.inputPath)
	if err != nil {
		fmt.Fprintf(s.out, "score file rejected: %v\n", err)
		return NewServiceError("gradebook", "parse_records", "failed to parse score file", err)
	}
	fmt.Fprintf(s.out, "parsed %d records from %s\n", len(records), s.inputPath)

	for _, record := range records {
		fmt.Fprintf(s.out, "  #%-4d %-20s scored %3d -> %s\n",
			record.ID, record.Name, record.Score, record.LetterGrade())
	}

	if err := grading.WriteReportFile(ctx, s.reportPath, records); err != nil {
		fmt.Fprintf(s.out, "could not write report: %v\n", err)
		return NewServiceError("gradebook", "write_report", "failed to write report file", err)
	}
	fmt.Fprintf(s.out, "report written to %s\n", s.reportPath)

	// Echo the report summary to the console sink as well.
	fmt.Fprintln(s.out)
	if err := grading.WriteReport(s.out, records); err != nil {
		return NewServiceError("gradebook", "write_report", "failed to write report to sink", err)
	}

	return nil
}

// seedInputFile writes the sample score file if none exists at the input
// path. An existing file is never overwritten.
func (s *GradebookService) seedInputFile() error {
	if _, err := os.Stat(s.inputPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat score file %s: %w", s.inputPath, err)
	}

	if err := os.WriteFile(s.inputPath, []byte(sampleGrades), 0o644); err != nil {
		return fmt.Errorf("write sample score file %s: %w", s.inputPath, err)
	}

	s.logger.Info("sample score file created", slog.String("path", s.inputPath))
	return nil
}
