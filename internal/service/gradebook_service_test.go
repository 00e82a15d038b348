package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/depot/internal/domain"
)

func TestGradebookServiceRunSeedsAndReports(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "grades.txt")
	reportPath := filepath.Join(dir, "grade_report.txt")
	var out bytes.Buffer

	svc := NewGradebookService(inputPath, reportPath, &out, discardLogger())
	require.NoError(t, svc.Run(context.Background()))

	narration := out.String()
	assert.Contains(t, narration, "parsed 6 records from "+inputPath)
	assert.Contains(t, narration, "Alice Smith")
	assert.Contains(t, narration, "scored  85 -> A")
	assert.Contains(t, narration, "scored  68 -> C")
	assert.Contains(t, narration, "report written to "+reportPath)

	// The report file carries the header and the distribution summary.
	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "STUDENT GRADE REPORT")
	assert.Contains(t, string(report), "Grade distribution:")
	assert.Contains(t, string(report), "Average score:")
}

func TestGradebookServiceDoesNotOverwriteExistingInput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "grades.txt")
	reportPath := filepath.Join(dir, "grade_report.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("201, Custom Student, 90\n"), 0o644))

	var out bytes.Buffer
	svc := NewGradebookService(inputPath, reportPath, &out, discardLogger())
	require.NoError(t, svc.Run(context.Background()))

	assert.Contains(t, out.String(), "parsed 1 records from "+inputPath)
	assert.Contains(t, out.String(), "Custom Student")
}

func TestGradebookServiceAbortsOnBadLine(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "grades.txt")
	reportPath := filepath.Join(dir, "grade_report.txt")
	// A bad line anywhere in the file aborts the whole run.
	input := "101, Alice Smith, 85\n102, Bob Johnson, 150\n"
	require.NoError(t, os.WriteFile(inputPath, []byte(input), 0o644))

	var out bytes.Buffer
	svc := NewGradebookService(inputPath, reportPath, &out, discardLogger())
	err := svc.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidFormat))

	var serr *ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "gradebook", serr.Demo)
	assert.Equal(t, "parse_records", serr.Operation)

	assert.Contains(t, out.String(), "score file rejected")

	// No report is produced for a rejected score file.
	_, statErr := os.Stat(reportPath)
	assert.True(t, os.IsNotExist(statErr))
}
