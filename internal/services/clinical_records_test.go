package services

import (
	"errors"
	"testing"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/models"
)

func TestDiagnosticCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiagnosticService(db)
	patient := createTestPatient(t, db)

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Create(&dto.CreateDiagnosticRequest{
			PatientID:     patient.ID,
			Name:          "Type 2 Diabetes",
			Description:   "Managed with metformin",
			DiagnosedDate: "2023-04-10",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if resp.Status != models.DiagnosisActive {
			t.Errorf("expected default status active, got %q", resp.Status)
		}
		if resp.DiagnosedDate != "2023-04-10" {
			t.Errorf("expected diagnosed date 2023-04-10, got %q", resp.DiagnosedDate)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := svc.Create(&dto.CreateDiagnosticRequest{PatientID: patient.ID})
		if !errors.Is(err, ErrDiagnosisNameRequired) {
			t.Fatalf("expected ErrDiagnosisNameRequired, got %v", err)
		}
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		_, err := svc.Create(&dto.CreateDiagnosticRequest{
			PatientID: patient.ID,
			Name:      "Hypertension",
			Status:    "cured",
		})
		if !errors.Is(err, ErrInvalidDiagnosisStatus) {
			t.Fatalf("expected ErrInvalidDiagnosisStatus, got %v", err)
		}
	})
}

func TestDiagnosticUpdateClearsDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiagnosticService(db)
	patient := createTestPatient(t, db)

	created, err := svc.Create(&dto.CreateDiagnosticRequest{
		PatientID:     patient.ID,
		Name:          "Asthma",
		DiagnosedDate: "2020-01-15",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := ""
	status := models.DiagnosisControlled
	resp, err := svc.Update(created.ID, &dto.UpdateDiagnosticRequest{
		DiagnosedDate: &empty,
		Status:        &status,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.DiagnosedDate != "" {
		t.Errorf("expected diagnosed date cleared, got %q", resp.DiagnosedDate)
	}
	if resp.StatusLabel != "Controlled" {
		t.Errorf("expected status label Controlled, got %q", resp.StatusLabel)
	}
}

func TestLabResultCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLabResultService(db)
	patient := createTestPatient(t, db)

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Create(&dto.CreateLabResultRequest{
			PatientID:      patient.ID,
			Name:           "HbA1c",
			ResultValue:    "6.1",
			ResultUnit:     "%",
			ReferenceRange: "4.0-5.6",
			PerformedDate:  "2026-02-01",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if resp.Status != models.LabResultPending {
			t.Errorf("expected default status pending, got %q", resp.Status)
		}
		if resp.PatientName != patient.User.FullName() {
			t.Errorf("expected patient name %q, got %q", patient.User.FullName(), resp.PatientName)
		}
	})

	t.Run("MissingPerformedDate", func(t *testing.T) {
		_, err := svc.Create(&dto.CreateLabResultRequest{
			PatientID: patient.ID,
			Name:      "Lipid Panel",
		})
		if !errors.Is(err, ErrPerformedDateRequired) {
			t.Fatalf("expected ErrPerformedDateRequired, got %v", err)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := svc.Create(&dto.CreateLabResultRequest{
			PatientID:     patient.ID,
			PerformedDate: "2026-02-01",
		})
		if !errors.Is(err, ErrTestNameRequired) {
			t.Fatalf("expected ErrTestNameRequired, got %v", err)
		}
	})
}

func TestLabResultListByStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLabResultService(db)
	patient := createTestPatient(t, db)

	for _, status := range []string{models.LabResultNormal, models.LabResultNormal, models.LabResultCritical} {
		if _, err := svc.Create(&dto.CreateLabResultRequest{
			PatientID:     patient.ID,
			Name:          "Panel",
			Status:        status,
			PerformedDate: "2026-02-01",
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	resp, err := svc.List(LabResultFilters{Status: models.LabResultNormal})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.TotalCount != 2 {
		t.Errorf("expected 2 normal results, got %d", resp.TotalCount)
	}
}

func TestListTotalCounts(t *testing.T) {
	db := setupTestDB(t)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	seedLabResult(t, db, patient, doctor)

	if _, err := NewDiagnosisHistoryService(db).Create(validVitalsRequest(patient)); err != nil {
		t.Fatalf("seed diagnosis history: %v", err)
	}
	if _, err := NewDiagnosticService(db).Create(&dto.CreateDiagnosticRequest{
		PatientID: patient.ID,
		Name:      "Asthma",
	}); err != nil {
		t.Fatalf("seed diagnostic: %v", err)
	}
	if _, err := NewAppointmentService(db).Create(&dto.CreateAppointmentRequest{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: "2026-10-05",
		AppointmentTime: "11:00",
	}); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	t.Run("Patients", func(t *testing.T) {
		resp, err := NewPatientService(db).List(PatientFilters{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 1 {
			t.Errorf("expected 1 patient, got %d", resp.TotalCount)
		}
	})

	t.Run("Doctors", func(t *testing.T) {
		resp, err := NewDoctorService(db).List(DoctorFilters{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 1 {
			t.Errorf("expected 1 doctor, got %d", resp.TotalCount)
		}
	})

	t.Run("DiagnosisHistories", func(t *testing.T) {
		resp, err := NewDiagnosisHistoryService(db).List(DiagnosisHistoryFilters{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 1 {
			t.Errorf("expected 1 history, got %d", resp.TotalCount)
		}
	})

	t.Run("Diagnostics", func(t *testing.T) {
		resp, err := NewDiagnosticService(db).List(DiagnosticFilters{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 1 {
			t.Errorf("expected 1 diagnostic, got %d", resp.TotalCount)
		}
	})

	t.Run("LabResults", func(t *testing.T) {
		resp, err := NewLabResultService(db).List(LabResultFilters{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 1 {
			t.Errorf("expected 1 lab result, got %d", resp.TotalCount)
		}
	})

	t.Run("Appointments", func(t *testing.T) {
		resp, err := NewAppointmentService(db).List(AppointmentFilters{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 1 {
			t.Errorf("expected 1 appointment, got %d", resp.TotalCount)
		}
	})

	t.Run("AppointmentsSearchByPatientName", func(t *testing.T) {
		resp, err := NewAppointmentService(db).List(AppointmentFilters{Search: "test"})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 1 {
			t.Errorf("expected 1 match on patient name, got %d", resp.TotalCount)
		}
	})
}
