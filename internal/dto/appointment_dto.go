package dto

import "github.com/google/uuid"

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	AppointmentType string    `json:"appointment_type,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
	AppointmentType *string `json:"appointment_type"`
	Reason          *string `json:"reason"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

type AppointmentResponse struct {
	ID                   uuid.UUID `json:"id"`
	PatientID            uuid.UUID `json:"patient_id"`
	PatientName          string    `json:"patient_name"`
	DoctorID             uuid.UUID `json:"doctor_id"`
	DoctorName           string    `json:"doctor_name"`
	AppointmentDate      string    `json:"appointment_date"`
	AppointmentTime      string    `json:"appointment_time"`
	AppointmentType      string    `json:"appointment_type"`
	AppointmentTypeLabel string    `json:"appointment_type_label"`
	Reason               string    `json:"reason,omitempty"`
	Status               string    `json:"status"`
	StatusLabel          string    `json:"status_label"`
	Notes                string    `json:"notes,omitempty"`
	CreatedAt            string    `json:"created_at"`
	UpdatedAt            string    `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Pagination
}
