package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/phrazzld/depot/internal/domain"
	"github.com/phrazzld/depot/internal/store"
)

// seedPatients is the fixed sample data the healthcare demo registers on
// every run.
var seedPatients = []struct {
	mrn  string
	name string
	dob  time.Time
}{
	{"MRN-0001", "Alice Smith", time.Date(1984, time.March, 12, 0, 0, 0, 0, time.UTC)},
	{"MRN-0002", "Brian Jones", time.Date(1972, time.November, 3, 0, 0, 0, 0, time.UTC)},
	{"MRN-0003", "Carla Diaz", time.Date(1990, time.July, 25, 0, 0, 0, 0, time.UTC)},
}

// HealthcareService runs the healthcare records demo: a keyed repository of
// patients plus an append-only log of clinical notes attached to them.
type HealthcareService struct {
	patients *store.KeyedRepository[string, *domain.Patient]
	records  *store.RecordLog[*domain.MedicalRecord]
	out      io.Writer
	logger   *slog.Logger
}

// NewHealthcareService creates the healthcare demo service. If out is nil,
// os.Stdout is used; if logger is nil, the default logger is used.
func NewHealthcareService(out io.Writer, logger *slog.Logger) *HealthcareService {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}

	validate := func(p *domain.Patient) error { return p.Validate() }

	return &HealthcareService{
		patients: store.NewKeyedRepository[string]("patient", validate, logger),
		records:  store.NewRecordLog[*domain.MedicalRecord](),
		out:      out,
		logger:   logger.With(slog.String("component", "healthcare_service")),
	}
}

// Run registers the sample patients, attaches clinical notes, and performs
// the scripted lookups. Individual operation failures are reported and the
// script continues.
func (s *HealthcareService) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== Healthcare Records ===")

	for _, seed := range seedPatients {
		s.registerPatient(ctx, seed.mrn, seed.name, seed.dob)
	}

	// Registering an MRN twice must fail and leave the registry unchanged.
	s.registerPatient(ctx, "MRN-0002", "Brian Jones (duplicate)", time.Date(1972, time.November, 3, 0, 0, 0, 0, time.UTC))

	s.addRecord("MRN-0001", "Seasonal allergies, prescribed antihistamine")
	s.addRecord("MRN-0001", "Follow-up: symptoms resolved")
	s.addRecord("MRN-0003", "Sprained ankle, rest and ice recommended")

	s.showPatient(ctx, "MRN-0003")
	s.showPatient(ctx, "MRN-9999")

	fmt.Fprintf(s.out, "\n%d patients registered:\n", s.patients.Len())
	for _, p := range s.patients.List(ctx) {
		fmt.Fprintf(s.out, "  %-9s %-20s born %s\n",
			p.MRN, p.Name, p.DateOfBirth.Format("2006-01-02"))
	}

	records := s.records.Snapshot()
	fmt.Fprintf(s.out, "\n%d clinical notes on file:\n", len(records))
	for _, r := range records {
		fmt.Fprintf(s.out, "  [%s] %s: %s\n",
			r.RecordedAt.Format("2006-01-02"), r.PatientMRN, r.Diagnosis)
	}

	return nil
}

// translatePatientErr maps generic repository errors to the
// patient-specific sentinels.
func translatePatientErr(err error) error {
	switch {
	case store.IsNotFoundError(err):
		return store.ErrPatientNotFound
	case store.IsDuplicateKeyError(err):
		return store.ErrPatientExists
	default:
		return err
	}
}

// registerPatient adds a patient to the registry, reporting the outcome.
func (s *HealthcareService) registerPatient(ctx context.Context, mrn, name string, dob time.Time) {
	patient, err := domain.NewPatient(mrn, name, dob)
	if err != nil {
		fmt.Fprintf(s.out, "could not register %s: %v\n", mrn, err)
		return
	}

	if err := s.patients.Insert(ctx, patient); err != nil {
		fmt.Fprintf(s.out, "could not register %s: %v\n", mrn, translatePatientErr(err))
		return
	}
	fmt.Fprintf(s.out, "registered %s: %s\n", mrn, name)
}

// addRecord appends a clinical note for the given patient. The note is
// refused when it fails validation; the log has no uniqueness constraint, so
// a valid note always succeeds.
func (s *HealthcareService) addRecord(mrn, diagnosis string) {
	record, err := domain.NewMedicalRecord(mrn, diagnosis)
	if err != nil {
		fmt.Fprintf(s.out, "could not add note for %s: %v\n", mrn, err)
		return
	}

	s.records.Append(record)
	fmt.Fprintf(s.out, "added note %s for %s\n", record.ID, mrn)
}

// showPatient looks a patient up by MRN, reporting the outcome.
func (s *HealthcareService) showPatient(ctx context.Context, mrn string) {
	patient, err := s.patients.Get(ctx, mrn)
	if err != nil {
		fmt.Fprintf(s.out, "lookup of %s failed: %v\n", mrn, translatePatientErr(err))
		return
	}
	fmt.Fprintf(s.out, "patient %s: %s, born %s\n",
		patient.MRN, patient.Name, patient.DateOfBirth.Format("2006-01-02"))
}
