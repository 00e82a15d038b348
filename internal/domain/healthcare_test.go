package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewPatient(t *testing.T) {
	t.Parallel()
	dob := time.Date(1984, time.March, 12, 0, 0, 0, 0, time.UTC)
	patient, err := NewPatient("MRN-0001", "Alice Smith", dob)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if patient.MRN != "MRN-0001" {
		t.Errorf("Expected MRN %q, got %q", "MRN-0001", patient.MRN)
	}

	if patient.Key() != "MRN-0001" {
		t.Errorf("Expected key %q, got %q", "MRN-0001", patient.Key())
	}

	if !patient.DateOfBirth.Equal(dob) {
		t.Errorf("Expected date of birth %v, got %v", dob, patient.DateOfBirth)
	}

	// Test empty MRN
	if _, err := NewPatient("", "Alice Smith", dob); !errors.Is(err, ErrPatientMRNEmpty) {
		t.Errorf("Expected error %v, got %v", ErrPatientMRNEmpty, err)
	}

	// Test empty name
	if _, err := NewPatient("MRN-0001", "", dob); !errors.Is(err, ErrPatientNameEmpty) {
		t.Errorf("Expected error %v, got %v", ErrPatientNameEmpty, err)
	}
}

func TestNewMedicalRecord(t *testing.T) {
	t.Parallel()
	record, err := NewMedicalRecord("MRN-0001", "Seasonal allergies")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if record.PatientMRN != "MRN-0001" {
		t.Errorf("Expected patient MRN %q, got %q", "MRN-0001", record.PatientMRN)
	}

	if record.RecordedAt.IsZero() {
		t.Error("Expected non-zero RecordedAt time")
	}

	// Test empty MRN
	if _, err := NewMedicalRecord("", "Seasonal allergies"); !errors.Is(err, ErrRecordMRNEmpty) {
		t.Errorf("Expected error %v, got %v", ErrRecordMRNEmpty, err)
	}

	// Test empty diagnosis
	if _, err := NewMedicalRecord("MRN-0001", ""); !errors.Is(err, ErrRecordDiagnosisEmpty) {
		t.Errorf("Expected error %v, got %v", ErrRecordDiagnosisEmpty, err)
	}
}

func TestMedicalRecordValidate(t *testing.T) {
	t.Parallel()
	valid := MedicalRecord{
		ID:         uuid.New(),
		PatientMRN: "MRN-0001",
		Diagnosis:  "Seasonal allergies",
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := valid
	invalid.ID = uuid.Nil
	if err := invalid.Validate(); !errors.Is(err, ErrRecordIDEmpty) {
		t.Errorf("Expected error %v, got %v", ErrRecordIDEmpty, err)
	}
}
