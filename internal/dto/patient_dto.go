package dto

import "github.com/google/uuid"

type CreatePatientRequest struct {
	UserID           uuid.UUID `json:"user_id"`
	Gender           string    `json:"gender"`
	DateOfBirth      string    `json:"date_of_birth"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	InsuranceType    string    `json:"insurance_type,omitempty"`
}

type UpdatePatientRequest struct {
	Gender           *string `json:"gender"`
	DateOfBirth      *string `json:"date_of_birth"`
	EmergencyContact *string `json:"emergency_contact"`
	InsuranceType    *string `json:"insurance_type"`
}

type PatientResponse struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Gender             string    `json:"gender"`
	GenderLabel        string    `json:"gender_label"`
	DateOfBirth        string    `json:"date_of_birth"`
	Age                int       `json:"age"`
	EmergencyContact   string    `json:"emergency_contact,omitempty"`
	InsuranceType      string    `json:"insurance_type"`
	InsuranceTypeLabel string    `json:"insurance_type_label"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Pagination
}

type CreateDoctorRequest struct {
	UserID               uuid.UUID `json:"user_id"`
	Specialization       string    `json:"specialization"`
	LicenseNumber        string    `json:"license_number"`
	Biography            string    `json:"biography,omitempty"`
	YearsOfExperience    int       `json:"years_of_experience"`
	AcceptingNewPatients *bool     `json:"accepting_new_patients"`
}

type UpdateDoctorRequest struct {
	Specialization       *string `json:"specialization"`
	LicenseNumber        *string `json:"license_number"`
	Biography            *string `json:"biography"`
	YearsOfExperience    *int    `json:"years_of_experience"`
	AcceptingNewPatients *bool   `json:"accepting_new_patients"`
}

type DoctorResponse struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Specialization       string    `json:"specialization"`
	SpecializationLabel  string    `json:"specialization_label"`
	LicenseNumber        string    `json:"license_number"`
	Biography            string    `json:"biography,omitempty"`
	YearsOfExperience    int       `json:"years_of_experience"`
	AcceptingNewPatients bool      `json:"accepting_new_patients"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Pagination
}
