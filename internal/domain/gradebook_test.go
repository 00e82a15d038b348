package domain

import (
	"errors"
	"testing"
)

func TestNewStudentRecord(t *testing.T) {
	t.Parallel()
	record, err := NewStudentRecord(101, "Alice Smith", 85)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.ID != 101 {
		t.Errorf("Expected ID 101, got %d", record.ID)
	}

	if record.Key() != 101 {
		t.Errorf("Expected key 101, got %d", record.Key())
	}

	// Test invalid ID
	if _, err := NewStudentRecord(0, "Alice Smith", 85); !errors.Is(err, ErrStudentIDInvalid) {
		t.Errorf("Expected error %v, got %v", ErrStudentIDInvalid, err)
	}

	// Test empty name
	if _, err := NewStudentRecord(101, "", 85); !errors.Is(err, ErrStudentNameEmpty) {
		t.Errorf("Expected error %v, got %v", ErrStudentNameEmpty, err)
	}

	// Test out-of-range scores
	if _, err := NewStudentRecord(101, "Alice Smith", 101); !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("Expected error %v, got %v", ErrScoreOutOfRange, err)
	}
	if _, err := NewStudentRecord(101, "Alice Smith", -1); !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("Expected error %v, got %v", ErrScoreOutOfRange, err)
	}
}

func TestStudentRecordLetterGrade(t *testing.T) {
	t.Parallel()
	tests := []struct {
		score int
		grade string
	}{
		{100, "A"},
		{92, "A"},
		{85, "A"},
		{84, "B"},
		{78, "B"},
		{75, "B"},
		{74, "C"},
		{68, "C"},
		{65, "C"},
		{64, "D"},
		{55, "D"},
		{50, "D"},
		{49, "F"},
		{43, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		record := StudentRecord{ID: 1, Name: "Test", Score: tt.score}
		if got := record.LetterGrade(); got != tt.grade {
			t.Errorf("LetterGrade(%d) = %q, want %q", tt.score, got, tt.grade)
		}
	}
}
