package authctx

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForPatient returns a GORM scope that filters clinical records by
// their owning patient.
func ForPatient(patientID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("patient_id = ?", patientID)
	}
}

// ForDoctor returns a GORM scope that filters records attributed to a
// doctor.
func ForDoctor(doctorID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("doctor_id = ?", doctorID)
	}
}
