package domain

import "errors"

// Common validation errors for StudentRecord
var (
	ErrStudentIDInvalid = errors.New("student ID must be positive")
	ErrStudentNameEmpty = errors.New("student name cannot be empty")
	ErrScoreOutOfRange  = errors.New("score must be between 0 and 100")
)

// StudentRecord represents one graded student in the school gradebook demo.
type StudentRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Key returns the unique key the student record is stored under.
func (s *StudentRecord) Key() int {
	return s.ID
}

// NewStudentRecord creates a new StudentRecord with the given ID, name, and
// score. Returns an error if validation fails.
func NewStudentRecord(id int, name string, score int) (*StudentRecord, error) {
	record := &StudentRecord{
		ID:    id,
		Name:  name,
		Score: score,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the StudentRecord has valid data.
func (s *StudentRecord) Validate() error {
	if s.ID <= 0 {
		return ErrStudentIDInvalid
	}

	if s.Name == "" {
		return ErrStudentNameEmpty
	}

	if s.Score < 0 || s.Score > 100 {
		return ErrScoreOutOfRange
	}

	return nil
}

// LetterGrade returns the letter grade for the record's score.
func (s *StudentRecord) LetterGrade() string {
	switch {
	case s.Score >= 85:
		return "A"
	case s.Score >= 75:
		return "B"
	case s.Score >= 65:
		return "C"
	case s.Score >= 50:
		return "D"
	default:
		return "F"
	}
}
