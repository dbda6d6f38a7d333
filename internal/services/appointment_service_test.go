package services

import (
	"errors"
	"testing"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/models"
)

func TestAppointmentCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	patient := createTestPatient(t, db)
	other := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	secondDoctor := createTestDoctor(t, db)

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Create(&dto.CreateAppointmentRequest{
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			AppointmentDate: "2026-09-01",
			AppointmentTime: "09:30",
			Reason:          "Annual check",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if resp.Status != models.AppointmentScheduled {
			t.Errorf("expected status scheduled, got %q", resp.Status)
		}
		if resp.AppointmentType != models.AppointmentCheckUp {
			t.Errorf("expected default type check_up, got %q", resp.AppointmentType)
		}
		if resp.AppointmentTime != "09:30" {
			t.Errorf("expected time 09:30, got %q", resp.AppointmentTime)
		}
	})

	t.Run("DoubleBookedSlot", func(t *testing.T) {
		_, err := svc.Create(&dto.CreateAppointmentRequest{
			PatientID:       other.ID,
			DoctorID:        doctor.ID,
			AppointmentDate: "2026-09-01",
			AppointmentTime: "09:30",
		})
		if !errors.Is(err, ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken, got %v", err)
		}
	})

	t.Run("SameSlotDifferentDoctor", func(t *testing.T) {
		if _, err := svc.Create(&dto.CreateAppointmentRequest{
			PatientID:       patient.ID,
			DoctorID:        secondDoctor.ID,
			AppointmentDate: "2026-09-01",
			AppointmentTime: "09:30",
		}); err != nil {
			t.Fatalf("second doctor, same slot: %v", err)
		}
	})

	t.Run("InvalidTime", func(t *testing.T) {
		_, err := svc.Create(&dto.CreateAppointmentRequest{
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			AppointmentDate: "2026-09-02",
			AppointmentTime: "9.30am",
		})
		if !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("expected ErrInvalidTime, got %v", err)
		}
	})

	t.Run("InvalidDate", func(t *testing.T) {
		_, err := svc.Create(&dto.CreateAppointmentRequest{
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			AppointmentDate: "02/09/2026",
			AppointmentTime: "09:30",
		})
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := svc.Create(&dto.CreateAppointmentRequest{
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			AppointmentDate: "2026-09-02",
			AppointmentTime: "10:00",
			AppointmentType: "house_call",
		})
		if !errors.Is(err, ErrInvalidAppointmentType) {
			t.Fatalf("expected ErrInvalidAppointmentType, got %v", err)
		}
	})

	t.Run("UnknownDoctor", func(t *testing.T) {
		_, err := svc.Create(&dto.CreateAppointmentRequest{
			PatientID:       patient.ID,
			DoctorID:        patient.ID, // a patient id, not a doctor id
			AppointmentDate: "2026-09-02",
			AppointmentTime: "10:00",
		})
		if !errors.Is(err, ErrDoctorNotFound) {
			t.Fatalf("expected ErrDoctorNotFound, got %v", err)
		}
	})
}

func TestAppointmentUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)

	first, err := svc.Create(&dto.CreateAppointmentRequest{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: "2026-10-05",
		AppointmentTime: "11:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(&dto.CreateAppointmentRequest{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: "2026-10-05",
		AppointmentTime: "11:30",
	})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	t.Run("RescheduleIntoTakenSlot", func(t *testing.T) {
		at := "11:00"
		_, err := svc.Update(second.ID, &dto.UpdateAppointmentRequest{AppointmentTime: &at})
		if !errors.Is(err, ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken, got %v", err)
		}
	})

	t.Run("KeepOwnSlot", func(t *testing.T) {
		// Re-submitting an appointment's own slot is not a conflict
		at := "11:00"
		status := models.AppointmentCompleted
		resp, err := svc.Update(first.ID, &dto.UpdateAppointmentRequest{
			AppointmentTime: &at,
			Status:          &status,
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if resp.Status != models.AppointmentCompleted {
			t.Errorf("expected status completed, got %q", resp.Status)
		}
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		status := "done"
		_, err := svc.Update(first.ID, &dto.UpdateAppointmentRequest{Status: &status})
		if !errors.Is(err, ErrInvalidAppointmentStatus) {
			t.Fatalf("expected ErrInvalidAppointmentStatus, got %v", err)
		}
	})

	t.Run("Reschedule", func(t *testing.T) {
		date := "2026-10-06"
		resp, err := svc.Update(second.ID, &dto.UpdateAppointmentRequest{AppointmentDate: &date})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if resp.AppointmentDate != "2026-10-06" {
			t.Errorf("expected date 2026-10-06, got %q", resp.AppointmentDate)
		}
	})
}

func TestAppointmentListFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)
	secondDoctor := createTestDoctor(t, db)

	seeds := []struct {
		doctor *models.Doctor
		date   string
		at     string
	}{
		{doctor, "2026-11-02", "09:00"},
		{doctor, "2026-11-02", "09:30"},
		{secondDoctor, "2026-11-03", "09:00"},
	}
	for _, s := range seeds {
		if _, err := svc.Create(&dto.CreateAppointmentRequest{
			PatientID:       patient.ID,
			DoctorID:        s.doctor.ID,
			AppointmentDate: s.date,
			AppointmentTime: s.at,
		}); err != nil {
			t.Fatalf("seed %s %s: %v", s.date, s.at, err)
		}
	}

	t.Run("ByDoctor", func(t *testing.T) {
		resp, err := svc.List(AppointmentFilters{DoctorID: &doctor.ID})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 2 {
			t.Errorf("expected 2 appointments for doctor, got %d", resp.TotalCount)
		}
	})

	t.Run("ByDate", func(t *testing.T) {
		resp, err := svc.List(AppointmentFilters{Date: "2026-11-03"})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if resp.TotalCount != 1 {
			t.Errorf("expected 1 appointment on date, got %d", resp.TotalCount)
		}
	})

	t.Run("BadDateFilter", func(t *testing.T) {
		if _, err := svc.List(AppointmentFilters{Date: "03-11-2026"}); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestAppointmentListOwn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	patient := createTestPatient(t, db)
	otherPatient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)

	for i, p := range []*models.Patient{patient, otherPatient} {
		if _, err := svc.Create(&dto.CreateAppointmentRequest{
			PatientID:       p.ID,
			DoctorID:        doctor.ID,
			AppointmentDate: "2026-12-01",
			AppointmentTime: []string{"08:00", "08:30"}[i],
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	t.Run("Patient", func(t *testing.T) {
		own, err := svc.ListOwn(patient.UserID, models.RolePatient)
		if err != nil {
			t.Fatalf("ListOwn: %v", err)
		}
		if len(own) != 1 {
			t.Errorf("expected 1 appointment, got %d", len(own))
		}
	})

	t.Run("Doctor", func(t *testing.T) {
		own, err := svc.ListOwn(doctor.UserID, models.RoleDoctor)
		if err != nil {
			t.Fatalf("ListOwn: %v", err)
		}
		if len(own) != 2 {
			t.Errorf("expected 2 appointments, got %d", len(own))
		}
	})

	t.Run("Admin", func(t *testing.T) {
		admin := createTestUser(t, db, models.RoleAdmin)
		if _, err := svc.ListOwn(admin.ID, models.RoleAdmin); !errors.Is(err, ErrWrongRole) {
			t.Fatalf("expected ErrWrongRole, got %v", err)
		}
	})
}

func TestAppointmentCreateStorageFailure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	patient := createTestPatient(t, db)
	doctor := createTestDoctor(t, db)

	if err := db.Migrator().DropTable(&models.Appointment{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := svc.Create(&dto.CreateAppointmentRequest{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: "2026-11-02",
		AppointmentTime: "14:00",
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrSlotTaken) {
		t.Fatalf("storage failure reported as a slot conflict: %v", err)
	}
}
