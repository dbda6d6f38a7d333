package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vital-sign severity levels.
const (
	LevelNormal            = "normal"
	LevelLowerThanAverage  = "lower_than_average"
	LevelHigherThanAverage = "higher_than_average"
	LevelCriticalLow       = "critical_low"
	LevelCriticalHigh      = "critical_high"
)

var levelLabels = map[string]string{
	LevelNormal:            "Normal",
	LevelLowerThanAverage:  "Lower than Average",
	LevelHigherThanAverage: "Higher than Average",
	LevelCriticalLow:       "Critical Low",
	LevelCriticalHigh:      "Critical High",
}

func ValidLevel(level string) bool {
	_, ok := levelLabels[level]
	return ok
}

func LevelLabel(level string) string {
	if label, ok := levelLabels[level]; ok {
		return label
	}
	return level
}

// Inclusive bounds for each recorded vital. Values outside these are
// rejected before persistence.
const (
	MinYear = 1900
	MaxYear = 2100

	MinSystolic = 50
	MaxSystolic = 250

	MinDiastolic = 30
	MaxDiastolic = 150

	MinHeartRate = 30
	MaxHeartRate = 220

	MinRespiratoryRate = 5
	MaxRespiratoryRate = 60

	MinTemperature = 95.0
	MaxTemperature = 108.0
)

// DiagnosisHistory is one month's vital-sign snapshot for a patient.
// At most one row per (patient, month, year); the composite unique
// index backs the application check so concurrent inserts cannot both
// land.
type DiagnosisHistory struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_diagnosis_patient_month_year;index" json:"patient_id"`
	Patient   Patient    `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	DoctorID  *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	Doctor    *Doctor    `gorm:"foreignKey:DoctorID;constraint:OnDelete:SET NULL" json:"doctor,omitempty"`

	Month string `gorm:"size:10;not null;uniqueIndex:idx_diagnosis_patient_month_year" json:"month"`
	Year  int    `gorm:"not null;uniqueIndex:idx_diagnosis_patient_month_year" json:"year"`

	BloodPressureSystolicValue  int    `gorm:"not null" json:"blood_pressure_systolic_value"`
	BloodPressureSystolicLevel  string `gorm:"size:25;not null;default:'normal'" json:"blood_pressure_systolic_level"`
	BloodPressureDiastolicValue int    `gorm:"not null" json:"blood_pressure_diastolic_value"`
	BloodPressureDiastolicLevel string `gorm:"size:25;not null;default:'normal'" json:"blood_pressure_diastolic_level"`

	HeartRateValue       int     `gorm:"not null" json:"heart_rate_value"`
	HeartRateLevel       string  `gorm:"size:25;not null;default:'normal'" json:"heart_rate_level"`
	RespiratoryRateValue int     `gorm:"not null" json:"respiratory_rate_value"`
	RespiratoryRateLevel string  `gorm:"size:25;not null;default:'normal'" json:"respiratory_rate_level"`
	TemperatureValue     float64 `gorm:"not null" json:"temperature_value"`
	TemperatureLevel     string  `gorm:"size:25;not null;default:'normal'" json:"temperature_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *DiagnosisHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
