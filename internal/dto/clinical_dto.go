package dto

import "github.com/google/uuid"

type CreateDiagnosisHistoryRequest struct {
	PatientID uuid.UUID  `json:"patient_id"`
	DoctorID  *uuid.UUID `json:"doctor_id,omitempty"`
	Month     string     `json:"month"`
	Year      int        `json:"year"`

	BloodPressureSystolicValue  int    `json:"blood_pressure_systolic_value"`
	BloodPressureSystolicLevel  string `json:"blood_pressure_systolic_level,omitempty"`
	BloodPressureDiastolicValue int    `json:"blood_pressure_diastolic_value"`
	BloodPressureDiastolicLevel string `json:"blood_pressure_diastolic_level,omitempty"`

	HeartRateValue       int     `json:"heart_rate_value"`
	HeartRateLevel       string  `json:"heart_rate_level,omitempty"`
	RespiratoryRateValue int     `json:"respiratory_rate_value"`
	RespiratoryRateLevel string  `json:"respiratory_rate_level,omitempty"`
	TemperatureValue     float64 `json:"temperature_value"`
	TemperatureLevel     string  `json:"temperature_level,omitempty"`
}

type UpdateDiagnosisHistoryRequest struct {
	DoctorID *uuid.UUID `json:"doctor_id"`

	BloodPressureSystolicValue  *int    `json:"blood_pressure_systolic_value"`
	BloodPressureSystolicLevel  *string `json:"blood_pressure_systolic_level"`
	BloodPressureDiastolicValue *int    `json:"blood_pressure_diastolic_value"`
	BloodPressureDiastolicLevel *string `json:"blood_pressure_diastolic_level"`

	HeartRateValue       *int     `json:"heart_rate_value"`
	HeartRateLevel       *string  `json:"heart_rate_level"`
	RespiratoryRateValue *int     `json:"respiratory_rate_value"`
	RespiratoryRateLevel *string  `json:"respiratory_rate_level"`
	TemperatureValue     *float64 `json:"temperature_value"`
	TemperatureLevel     *string  `json:"temperature_level"`
}

type DiagnosisHistoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   uuid.UUID  `json:"patient_id"`
	PatientName string     `json:"patient_name"`
	DoctorID    *uuid.UUID `json:"doctor_id,omitempty"`
	DoctorName  string     `json:"doctor_name,omitempty"`
	Month       string     `json:"month"`
	Year        int        `json:"year"`

	BloodPressureSystolicValue       int    `json:"blood_pressure_systolic_value"`
	BloodPressureSystolicLevel       string `json:"blood_pressure_systolic_level"`
	BloodPressureSystolicLevelLabel  string `json:"blood_pressure_systolic_level_label"`
	BloodPressureDiastolicValue      int    `json:"blood_pressure_diastolic_value"`
	BloodPressureDiastolicLevel      string `json:"blood_pressure_diastolic_level"`
	BloodPressureDiastolicLevelLabel string `json:"blood_pressure_diastolic_level_label"`

	HeartRateValue            int     `json:"heart_rate_value"`
	HeartRateLevel            string  `json:"heart_rate_level"`
	HeartRateLevelLabel       string  `json:"heart_rate_level_label"`
	RespiratoryRateValue      int     `json:"respiratory_rate_value"`
	RespiratoryRateLevel      string  `json:"respiratory_rate_level"`
	RespiratoryRateLevelLabel string  `json:"respiratory_rate_level_label"`
	TemperatureValue          float64 `json:"temperature_value"`
	TemperatureLevel          string  `json:"temperature_level"`
	TemperatureLevelLabel     string  `json:"temperature_level_label"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type DiagnosisHistoryListResponse struct {
	Histories []DiagnosisHistoryResponse `json:"histories"`
	Pagination
}

type CreateDiagnosticRequest struct {
	PatientID     uuid.UUID  `json:"patient_id"`
	DoctorID      *uuid.UUID `json:"doctor_id,omitempty"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status,omitempty"`
	DiagnosedDate string     `json:"diagnosed_date,omitempty"`
}

type UpdateDiagnosticRequest struct {
	DoctorID      *uuid.UUID `json:"doctor_id"`
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Status        *string    `json:"status"`
	DiagnosedDate *string    `json:"diagnosed_date"`
}

type DiagnosticResponse struct {
	ID            uuid.UUID  `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	PatientName   string     `json:"patient_name"`
	DoctorID      *uuid.UUID `json:"doctor_id,omitempty"`
	DoctorName    string     `json:"doctor_name,omitempty"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	DiagnosedDate string     `json:"diagnosed_date,omitempty"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
}

type DiagnosticListResponse struct {
	Diagnostics []DiagnosticResponse `json:"diagnostics"`
	Pagination
}

type CreateLabResultRequest struct {
	PatientID      uuid.UUID  `json:"patient_id"`
	DoctorID       *uuid.UUID `json:"doctor_id,omitempty"`
	Name           string     `json:"name"`
	ResultValue    string     `json:"result_value,omitempty"`
	ResultUnit     string     `json:"result_unit,omitempty"`
	ReferenceRange string     `json:"reference_range,omitempty"`
	Status         string     `json:"status,omitempty"`
	PerformedDate  string     `json:"performed_date"`
	ReportedDate   string     `json:"reported_date,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

type UpdateLabResultRequest struct {
	DoctorID       *uuid.UUID `json:"doctor_id"`
	Name           *string    `json:"name"`
	ResultValue    *string    `json:"result_value"`
	ResultUnit     *string    `json:"result_unit"`
	ReferenceRange *string    `json:"reference_range"`
	Status         *string    `json:"status"`
	PerformedDate  *string    `json:"performed_date"`
	ReportedDate   *string    `json:"reported_date"`
	Notes          *string    `json:"notes"`
}

type LabResultResponse struct {
	ID             uuid.UUID  `json:"id"`
	PatientID      uuid.UUID  `json:"patient_id"`
	PatientName    string     `json:"patient_name"`
	DoctorID       *uuid.UUID `json:"doctor_id,omitempty"`
	DoctorName     string     `json:"doctor_name,omitempty"`
	Name           string     `json:"name"`
	ResultValue    string     `json:"result_value,omitempty"`
	ResultUnit     string     `json:"result_unit,omitempty"`
	ReferenceRange string     `json:"reference_range,omitempty"`
	Status         string     `json:"status"`
	StatusLabel    string     `json:"status_label"`
	PerformedDate  string     `json:"performed_date"`
	ReportedDate   string     `json:"reported_date,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

type LabResultListResponse struct {
	LabResults []LabResultResponse `json:"lab_results"`
	Pagination
}
