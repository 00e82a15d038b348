// Package grading implements the school gradebook demo's file interfaces:
// a strict line-record parser for comma-separated score files, and a plain
// text report writer with a grade-distribution summary.
package grading

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/phrazzld/depot/internal/domain"
	"github.com/phrazzld/depot/internal/platform/logger"
)

// recordFieldCount is the exact number of comma-separated fields a non-blank
// line must split into: id, name, score.
const recordFieldCount = 3

// ParseError reports the first offending line of a record file. Parsing is
// all-or-nothing: the error aborts the whole read, there is no best-effort
// mode that skips bad lines.
type ParseError struct {
	Line int   // 1-based line number of the offending line
	Err  error // Underlying error (domain.ErrMissingField or domain.ErrInvalidFormat)
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseRecords reads student records from r, one per line. Blank lines are
// skipped. Each non-blank line must split into exactly three comma-separated
// fields (id, name, score), none empty after trimming; otherwise parsing
// aborts with domain.ErrMissingField. A non-integer id or score, or a score
// outside [0,100], aborts with domain.ErrInvalidFormat. Both are wrapped in a
// ParseError carrying the line number.
func ParseRecords(r io.Reader) ([]*domain.StudentRecord, error) {
	var records []*domain.StudentRecord

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	return records, nil
}

// parseLine parses a single non-blank record line.
func parseLine(line string) (*domain.StudentRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) != recordFieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d",
			domain.ErrMissingField, recordFieldCount, len(fields))
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
		if fields[i] == "" {
			return nil, fmt.Errorf("%w: field %d is empty", domain.ErrMissingField, i+1)
		}
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: id %q is not an integer", domain.ErrInvalidFormat, fields[0])
	}

	score, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: score %q is not an integer", domain.ErrInvalidFormat, fields[2])
	}
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: score %d outside [0,100]", domain.ErrInvalidFormat, score)
	}

	return &domain.StudentRecord{ID: id, Name: fields[1], Score: score}, nil
}

// ReadRecordsFile opens the record file at path and parses it with
// ParseRecords. The file handle is released before the function returns on
// every path.
func ReadRecordsFile(ctx context.Context, path string) ([]*domain.StudentRecord, error) {
	log := logger.FromContextOrDefault(ctx, nil)

	file, err := os.Open(path)
	if err != nil {
		log.Error("failed to open record file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("open record file %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Error("failed to close record file",
				slog.String("path", path),
				slog.String("error", cerr.Error()))
		}
	}()

	records, err := ParseRecords(file)
	if err != nil {
		return nil, fmt.Errorf("parse record file %s: %w", path, err)
	}

	log.Info("record file parsed",
		slog.String("path", path),
		slog.Int("records", len(records)))
	return records, nil
}
