package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DiagnosisActive     = "active"
	DiagnosisControlled = "controlled"
	DiagnosisResolved   = "resolved"
	DiagnosisMonitoring = "monitoring"
	DiagnosisChronic    = "chronic"
)

var diagnosisStatusLabels = map[string]string{
	DiagnosisActive:     "Actively being treated",
	DiagnosisControlled: "Controlled",
	DiagnosisResolved:   "Resolved",
	DiagnosisMonitoring: "Monitoring",
	DiagnosisChronic:    "Chronic",
}

func ValidDiagnosisStatus(s string) bool {
	_, ok := diagnosisStatusLabels[s]
	return ok
}

func DiagnosisStatusLabel(s string) string {
	if label, ok := diagnosisStatusLabels[s]; ok {
		return label
	}
	return s
}

// Diagnostic is one diagnosed condition entry on a patient's list.
type Diagnostic struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID uuid.UUID  `gorm:"type:uuid;not null;index:idx_diagnostics_patient_name" json:"patient_id"`
	Patient   Patient    `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	DoctorID  *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	Doctor    *Doctor    `gorm:"foreignKey:DoctorID;constraint:OnDelete:SET NULL" json:"doctor,omitempty"`

	Name          string     `gorm:"size:255;not null;index:idx_diagnostics_patient_name" json:"name"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Status        string     `gorm:"size:20;not null;default:'active';index" json:"status"`
	DiagnosedDate *time.Time `gorm:"type:date" json:"diagnosed_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Diagnostic) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
