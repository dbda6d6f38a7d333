package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/clinicore/clinic-backend/internal/authctx"
	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrSlotTaken                = errors.New("doctor already has an appointment at this date and time")
	ErrInvalidAppointmentType   = errors.New("invalid appointment type")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

// AppointmentService books patient-doctor encounters. The doctor slot
// check runs before the insert; the composite unique index settles the
// race when two bookings for the same slot arrive together.
type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

type AppointmentFilters struct {
	Page      int
	Limit     int
	Search    string
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	Status    string
	Type      string
	Date      string
	Sort      string
}

func (s *AppointmentService) Create(req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := patientExists(s.db, req.PatientID); err != nil {
		return nil, err
	}
	if err := doctorExists(s.db, req.DoctorID); err != nil {
		return nil, err
	}

	date, err := parseDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}
	timeOfDay, err := parseTimeOfDay(req.AppointmentTime)
	if err != nil {
		return nil, err
	}

	apptType := req.AppointmentType
	if apptType == "" {
		apptType = models.AppointmentCheckUp
	}
	if !models.ValidAppointmentType(apptType) {
		return nil, ErrInvalidAppointmentType
	}

	if err := s.checkSlot(req.DoctorID, date, timeOfDay, uuid.Nil); err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		ID:              uuid.New(),
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		AppointmentType: apptType,
		Reason:          req.Reason,
		Status:          models.AppointmentScheduled,
		Notes:           req.Notes,
	}

	if err := s.db.Create(&appointment).Error; err != nil {
		// the unique index catches writers that raced past the check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return s.Get(appointment.ID)
}

func (s *AppointmentService) checkSlot(doctorID uuid.UUID, date time.Time, timeOfDay string, exclude uuid.UUID) error {
	query := s.db.Where(
		"doctor_id = ? AND appointment_date = ? AND appointment_time = ?",
		doctorID, date, timeOfDay,
	)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	var existing models.Appointment
	if err := query.First(&existing).Error; err == nil {
		return ErrSlotTaken
	}
	return nil
}

func (s *AppointmentService) Get(id uuid.UUID) (*dto.AppointmentResponse, error) {
	var appointment models.Appointment
	if err := s.db.Preload("Patient.User").Preload("Doctor.User").
		First(&appointment, "id = ?", id).Error; err != nil {
		return nil, ErrAppointmentNotFound
	}
	return mapAppointmentToResponse(&appointment), nil
}

func (s *AppointmentService) List(f AppointmentFilters) (*dto.AppointmentListResponse, error) {
	page, limit, offset := clampPage(f.Page, f.Limit)

	query := joinClinicalUsers(s.db.Model(&models.Appointment{}), "appointments")

	if f.PatientID != nil {
		query = query.Where("appointments.patient_id = ?", *f.PatientID)
	}
	if f.DoctorID != nil {
		query = query.Where("appointments.doctor_id = ?", *f.DoctorID)
	}
	if f.Status != "" {
		query = query.Where("appointments.status = ?", f.Status)
	}
	if f.Type != "" {
		query = query.Where("appointments.appointment_type = ?", f.Type)
	}
	if f.Date != "" {
		d, err := parseDate(f.Date)
		if err != nil {
			return nil, err
		}
		query = query.Where("appointments.appointment_date = ?", d)
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		query = query.Where(
			"("+clinicalNameSearch+" OR LOWER(appointments.reason) LIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	order := "appointments.appointment_date DESC, appointments.appointment_time DESC"
	if col, ok := clinicalSortColumns[f.Sort]; ok {
		order = col
	}

	var appointments []models.Appointment
	if err := query.Select("appointments.*").
		Preload("Patient.User").Preload("Doctor.User").
		Order(order).Limit(limit).Offset(offset).
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	resp := &dto.AppointmentListResponse{
		Appointments: make([]dto.AppointmentResponse, 0, len(appointments)),
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: totalPages(total, limit),
		},
	}
	for i := range appointments {
		resp.Appointments = append(resp.Appointments, *mapAppointmentToResponse(&appointments[i]))
	}
	return resp, nil
}

func (s *AppointmentService) Update(id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", id).Error; err != nil {
		return nil, ErrAppointmentNotFound
	}

	date := appointment.AppointmentDate
	timeOfDay := appointment.AppointmentTime
	reslot := false

	updates := map[string]interface{}{}
	if req.AppointmentDate != nil {
		d, err := parseDate(*req.AppointmentDate)
		if err != nil {
			return nil, err
		}
		date = d
		reslot = true
		updates["appointment_date"] = d
	}
	if req.AppointmentTime != nil {
		t, err := parseTimeOfDay(*req.AppointmentTime)
		if err != nil {
			return nil, err
		}
		timeOfDay = t
		reslot = true
		updates["appointment_time"] = t
	}
	if req.AppointmentType != nil {
		if !models.ValidAppointmentType(*req.AppointmentType) {
			return nil, ErrInvalidAppointmentType
		}
		updates["appointment_type"] = *req.AppointmentType
	}
	if req.Status != nil {
		if !models.ValidAppointmentStatus(*req.Status) {
			return nil, ErrInvalidAppointmentStatus
		}
		updates["status"] = *req.Status
	}
	if req.Reason != nil {
		updates["reason"] = *req.Reason
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if reslot {
		if err := s.checkSlot(appointment.DoctorID, date, timeOfDay, id); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&appointment).Updates(updates).Error; err != nil {
			if reslot && errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrSlotTaken
			}
			return nil, fmt.Errorf("failed to update appointment: %w", err)
		}
	}

	return s.Get(id)
}

// ListOwn returns the caller's schedule: a patient sees appointments
// they are booked into, a doctor sees their calendar.
func (s *AppointmentService) ListOwn(userID uuid.UUID, role string) ([]dto.AppointmentResponse, error) {
	var scope func(*gorm.DB) *gorm.DB
	switch role {
	case models.RolePatient:
		var patient models.Patient
		if err := s.db.First(&patient, "user_id = ?", userID).Error; err != nil {
			return nil, ErrPatientNotFound
		}
		scope = authctx.ForPatient(patient.ID)
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := s.db.First(&doctor, "user_id = ?", userID).Error; err != nil {
			return nil, ErrDoctorNotFound
		}
		scope = authctx.ForDoctor(doctor.ID)
	default:
		return nil, ErrWrongRole
	}

	var appointments []models.Appointment
	if err := s.db.Scopes(scope).
		Preload("Patient.User").Preload("Doctor.User").
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	resp := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		resp = append(resp, *mapAppointmentToResponse(&appointments[i]))
	}
	return resp, nil
}

func (s *AppointmentService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func mapAppointmentToResponse(a *models.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:                   a.ID,
		PatientID:            a.PatientID,
		PatientName:          a.Patient.Name(),
		DoctorID:             a.DoctorID,
		DoctorName:           a.Doctor.Name(),
		AppointmentDate:      a.AppointmentDate.Format(dateLayout),
		AppointmentTime:      a.AppointmentTime,
		AppointmentType:      a.AppointmentType,
		AppointmentTypeLabel: models.AppointmentTypeLabel(a.AppointmentType),
		Reason:               a.Reason,
		Status:               a.Status,
		StatusLabel:          models.AppointmentStatusLabel(a.Status),
		Notes:                a.Notes,
		CreatedAt:            a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
