package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/models"
)

func validVitalsRequest(patient *models.Patient) *dto.CreateDiagnosisHistoryRequest {
	return &dto.CreateDiagnosisHistoryRequest{
		PatientID:                   patient.ID,
		Month:                       "January",
		Year:                        2024,
		BloodPressureSystolicValue:  120,
		BloodPressureDiastolicValue: 80,
		HeartRateValue:              72,
		RespiratoryRateValue:        16,
		TemperatureValue:            98.6,
	}
}

func TestDiagnosisHistoryCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiagnosisHistoryService(db)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)

	t.Run("Success", func(t *testing.T) {
		req := validVitalsRequest(patient)
		req.DoctorID = &doctor.ID
		req.BloodPressureSystolicLevel = models.LevelHigherThanAverage

		resp, err := svc.Create(req)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if resp.BloodPressureSystolicLevel != models.LevelHigherThanAverage {
			t.Errorf("expected systolic level elevated, got %q", resp.BloodPressureSystolicLevel)
		}
		// Unspecified levels default to normal
		if resp.HeartRateLevel != models.LevelNormal {
			t.Errorf("expected heart rate level normal, got %q", resp.HeartRateLevel)
		}
		if resp.DoctorName != doctor.Name() {
			t.Errorf("expected doctor name %q, got %q", doctor.Name(), resp.DoctorName)
		}
		if !strings.HasPrefix(resp.DoctorName, "Dr. ") {
			t.Errorf("expected Dr. prefix, got %q", resp.DoctorName)
		}
	})

	t.Run("DuplicateMonth", func(t *testing.T) {
		_, err := svc.Create(validVitalsRequest(patient))
		if !errors.Is(err, ErrHistoryExists) {
			t.Fatalf("expected ErrHistoryExists, got %v", err)
		}
	})

	t.Run("SameMonthDifferentYear", func(t *testing.T) {
		req := validVitalsRequest(patient)
		req.Year = 2025
		if _, err := svc.Create(req); err != nil {
			t.Fatalf("Create for a different year: %v", err)
		}
	})

	t.Run("InvalidMonth", func(t *testing.T) {
		req := validVitalsRequest(patient)
		req.Month = "Januray"
		if _, err := svc.Create(req); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		req := validVitalsRequest(patient)
		req.Month = "February"
		req.TemperatureLevel = "scorching"
		if _, err := svc.Create(req); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("expected ErrInvalidLevel, got %v", err)
		}
	})
}

func TestDiagnosisHistoryVitalBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiagnosisHistoryService(db)
	patient := createTestPatient(t, db)

	months := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	nextMonth := 0

	accept := func(t *testing.T, mutate func(*dto.CreateDiagnosisHistoryRequest)) {
		t.Helper()
		req := validVitalsRequest(patient)
		req.Month = months[nextMonth%len(months)]
		req.Year = 2030 + nextMonth/len(months)
		nextMonth++
		mutate(req)
		if _, err := svc.Create(req); err != nil {
			t.Fatalf("expected boundary value to be accepted, got %v", err)
		}
	}
	reject := func(t *testing.T, mutate func(*dto.CreateDiagnosisHistoryRequest)) {
		t.Helper()
		req := validVitalsRequest(patient)
		req.Month = months[nextMonth%len(months)]
		req.Year = 2030 + nextMonth/len(months)
		nextMonth++
		mutate(req)
		_, err := svc.Create(req)
		if err == nil {
			t.Fatal("expected out-of-range value to be rejected")
		}
		if !strings.Contains(err.Error(), "must be between") {
			t.Fatalf("expected range error, got %v", err)
		}
	}

	t.Run("Systolic", func(t *testing.T) {
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.BloodPressureSystolicValue = 49 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.BloodPressureSystolicValue = 50 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.BloodPressureSystolicValue = 250 })
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.BloodPressureSystolicValue = 251 })
	})

	t.Run("Diastolic", func(t *testing.T) {
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.BloodPressureDiastolicValue = 29 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.BloodPressureDiastolicValue = 30 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.BloodPressureDiastolicValue = 150 })
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.BloodPressureDiastolicValue = 151 })
	})

	t.Run("HeartRate", func(t *testing.T) {
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.HeartRateValue = 29 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.HeartRateValue = 30 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.HeartRateValue = 220 })
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.HeartRateValue = 221 })
	})

	t.Run("RespiratoryRate", func(t *testing.T) {
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.RespiratoryRateValue = 4 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.RespiratoryRateValue = 5 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.RespiratoryRateValue = 60 })
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.RespiratoryRateValue = 61 })
	})

	t.Run("Temperature", func(t *testing.T) {
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.TemperatureValue = 94.9 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.TemperatureValue = 95.0 })
		accept(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.TemperatureValue = 108.0 })
		reject(t, func(r *dto.CreateDiagnosisHistoryRequest) { r.TemperatureValue = 108.1 })
	})

	t.Run("Year", func(t *testing.T) {
		req := validVitalsRequest(patient)
		req.Year = 1899
		if _, err := svc.Create(req); err == nil || !strings.Contains(err.Error(), "must be between") {
			t.Fatalf("expected year range error, got %v", err)
		}
		req = validVitalsRequest(patient)
		req.Year = 2101
		if _, err := svc.Create(req); err == nil || !strings.Contains(err.Error(), "must be between") {
			t.Fatalf("expected year range error, got %v", err)
		}
	})
}

func TestDiagnosisHistoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiagnosisHistoryService(db)
	patient := createTestPatient(t, db)

	created, err := svc.Create(validVitalsRequest(patient))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("PartialUpdateRevalidates", func(t *testing.T) {
		bad := 300
		_, err := svc.Update(created.ID, &dto.UpdateDiagnosisHistoryRequest{
			BloodPressureSystolicValue: &bad,
		})
		if err == nil || !strings.Contains(err.Error(), "must be between") {
			t.Fatalf("expected range error on update, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		hr := 90
		level := models.LevelHigherThanAverage
		resp, err := svc.Update(created.ID, &dto.UpdateDiagnosisHistoryRequest{
			HeartRateValue: &hr,
			HeartRateLevel: &level,
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if resp.HeartRateValue != 90 || resp.HeartRateLevel != models.LevelHigherThanAverage {
			t.Errorf("update not applied: value=%d level=%q", resp.HeartRateValue, resp.HeartRateLevel)
		}
		// Untouched fields survive the partial update
		if resp.BloodPressureSystolicValue != 120 {
			t.Errorf("expected systolic 120, got %d", resp.BloodPressureSystolicValue)
		}
	})
}

func TestDiagnosisHistoryListFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiagnosisHistoryService(db)
	p1 := createTestPatient(t, db)
	p2 := createTestPatient(t, db)

	for _, seed := range []struct {
		patient *models.Patient
		month   string
		year    int
	}{
		{p1, "January", 2024},
		{p1, "February", 2024},
		{p2, "January", 2024},
	} {
		req := validVitalsRequest(seed.patient)
		req.Month = seed.month
		req.Year = seed.year
		if _, err := svc.Create(req); err != nil {
			t.Fatalf("seed %s %d: %v", seed.month, seed.year, err)
		}
	}

	t.Run("ByPatient", func(t *testing.T) {
		resp, err := svc.List(DiagnosisHistoryFilters{PatientID: &p1.ID})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 2 {
			t.Errorf("expected 2 records for patient, got %d", resp.TotalCount)
		}
	})

	t.Run("ByMonth", func(t *testing.T) {
		resp, err := svc.List(DiagnosisHistoryFilters{Month: "January"})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 2 {
			t.Errorf("expected 2 January records, got %d", resp.TotalCount)
		}
	})
}

func TestDiagnosisHistoryCreateStorageFailure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiagnosisHistoryService(db)
	patient := createTestPatient(t, db)

	if err := db.Migrator().DropTable(&models.DiagnosisHistory{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := svc.Create(validVitalsRequest(patient))
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrHistoryExists) {
		t.Fatalf("storage failure reported as a duplicate month: %v", err)
	}
}
