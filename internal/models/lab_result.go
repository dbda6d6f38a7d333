package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LabResultNormal   = "normal"
	LabResultAbnormal = "abnormal"
	LabResultCritical = "critical"
	LabResultPending  = "pending"
)

var labResultStatusLabels = map[string]string{
	LabResultNormal:   "Normal",
	LabResultAbnormal: "Abnormal",
	LabResultCritical: "Critical",
	LabResultPending:  "Pending",
}

func ValidLabResultStatus(s string) bool {
	_, ok := labResultStatusLabels[s]
	return ok
}

func LabResultStatusLabel(s string) string {
	if label, ok := labResultStatusLabels[s]; ok {
		return label
	}
	return s
}

// LabResult is a single laboratory test result for a patient.
type LabResult struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	Patient   Patient    `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	DoctorID  *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	Doctor    *Doctor    `gorm:"foreignKey:DoctorID;constraint:OnDelete:SET NULL" json:"doctor,omitempty"`

	Name           string     `gorm:"size:255;not null;index" json:"name"`
	ResultValue    string     `gorm:"size:255" json:"result_value,omitempty"`
	ResultUnit     string     `gorm:"size:50" json:"result_unit,omitempty"`
	ReferenceRange string     `gorm:"size:255" json:"reference_range,omitempty"`
	Status         string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	PerformedDate  time.Time  `gorm:"type:date;not null;index" json:"performed_date"`
	ReportedDate   *time.Time `gorm:"type:date" json:"reported_date,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *LabResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
