package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Patient and MedicalRecord
var (
	ErrPatientMRNEmpty      = errors.New("patient MRN cannot be empty")
	ErrPatientNameEmpty     = errors.New("patient name cannot be empty")
	ErrRecordIDEmpty        = errors.New("medical record ID cannot be empty")
	ErrRecordMRNEmpty       = errors.New("medical record patient MRN cannot be empty")
	ErrRecordDiagnosisEmpty = errors.New("medical record diagnosis cannot be empty")
)

// Patient represents a person registered with the healthcare records demo,
// identified by a medical record number (MRN).
type Patient struct {
	MRN         string    `json:"mrn"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// Key returns the unique key the patient is stored under.
func (p *Patient) Key() string {
	return p.MRN
}

// NewPatient creates a new Patient with the given MRN, name, and date of
// birth. Returns an error if validation fails.
func NewPatient(mrn, name string, dateOfBirth time.Time) (*Patient, error) {
	patient := &Patient{
		MRN:         mrn,
		Name:        name,
		DateOfBirth: dateOfBirth,
	}

	if err := patient.Validate(); err != nil {
		return nil, err
	}

	return patient, nil
}

// Validate checks if the Patient has valid data.
func (p *Patient) Validate() error {
	if p.MRN == "" {
		return ErrPatientMRNEmpty
	}

	if p.Name == "" {
		return ErrPatientNameEmpty
	}

	return nil
}

// MedicalRecord represents a single clinical note attached to a patient.
// Records are append-only: once written they are never edited or removed.
type MedicalRecord struct {
	ID         uuid.UUID `json:"id"`
	PatientMRN string    `json:"patient_mrn"`
	Diagnosis  string    `json:"diagnosis"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NewMedicalRecord creates a new MedicalRecord for the given patient MRN.
// It generates a new UUID for the record ID and stamps the current time.
// Returns an error if validation fails.
func NewMedicalRecord(patientMRN, diagnosis string) (*MedicalRecord, error) {
	record := &MedicalRecord{
		ID:         uuid.New(),
		PatientMRN: patientMRN,
		Diagnosis:  diagnosis,
		RecordedAt: time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the MedicalRecord has valid data.
func (r *MedicalRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrRecordIDEmpty
	}

	if r.PatientMRN == "" {
		return ErrRecordMRNEmpty
	}

	if r.Diagnosis == "" {
		return ErrRecordDiagnosisEmpty
	}

	return nil
}
