package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentScheduled   = "scheduled"
	AppointmentCompleted   = "completed"
	AppointmentCancelled   = "cancelled"
	AppointmentNoShow      = "no_show"
	AppointmentRescheduled = "rescheduled"
)

var appointmentStatusLabels = map[string]string{
	AppointmentScheduled:   "Scheduled",
	AppointmentCompleted:   "Completed",
	AppointmentCancelled:   "Cancelled",
	AppointmentNoShow:      "No Show",
	AppointmentRescheduled: "Rescheduled",
}

const (
	AppointmentCheckUp      = "check_up"
	AppointmentFollowUp     = "follow_up"
	AppointmentConsultation = "consultation"
	AppointmentEmergency    = "emergency"
	AppointmentProcedure    = "procedure"
	AppointmentLabWork      = "lab_work"
	AppointmentOther        = "other"
)

var appointmentTypeLabels = map[string]string{
	AppointmentCheckUp:      "Regular Check-up",
	AppointmentFollowUp:     "Follow-up Visit",
	AppointmentConsultation: "Consultation",
	AppointmentEmergency:    "Emergency",
	AppointmentProcedure:    "Medical Procedure",
	AppointmentLabWork:      "Laboratory Work",
	AppointmentOther:        "Other",
}

func ValidAppointmentStatus(s string) bool {
	_, ok := appointmentStatusLabels[s]
	return ok
}

func AppointmentStatusLabel(s string) string {
	if label, ok := appointmentStatusLabels[s]; ok {
		return label
	}
	return s
}

func ValidAppointmentType(t string) bool {
	_, ok := appointmentTypeLabels[t]
	return ok
}

func AppointmentTypeLabel(t string) string {
	if label, ok := appointmentTypeLabels[t]; ok {
		return label
	}
	return t
}

// Appointment is a scheduled patient-doctor encounter. A doctor holds
// at most one appointment per (date, time) slot; the composite unique
// index makes double-booking impossible even under concurrent writes.
// The same patient may see two doctors at the same time.
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Patient   Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_appointments_doctor_slot;index" json:"doctor_id"`
	Doctor    Doctor    `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`

	AppointmentDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_appointments_doctor_slot" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5;not null;uniqueIndex:idx_appointments_doctor_slot" json:"appointment_time"`
	AppointmentType string    `gorm:"size:20;not null;default:'check_up'" json:"appointment_type"`
	Reason          string    `gorm:"type:text" json:"reason,omitempty"`
	Status          string    `gorm:"size:20;not null;default:'scheduled';index" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
