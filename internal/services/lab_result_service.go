package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLabResultNotFound      = errors.New("lab result not found")
	ErrTestNameRequired       = errors.New("test name is required")
	ErrInvalidLabResultStatus = errors.New("invalid lab result status")
	ErrPerformedDateRequired  = errors.New("performed date is required")
)

type LabResultService struct {
	db *gorm.DB
}

func NewLabResultService(db *gorm.DB) *LabResultService {
	return &LabResultService{db: db}
}

type LabResultFilters struct {
	Page          int
	Limit         int
	Search        string
	PatientID     *uuid.UUID
	Status        string
	PerformedDate string
	ReportedDate  string
	Sort          string
}

func (s *LabResultService) Create(req *dto.CreateLabResultRequest) (*dto.LabResultResponse, error) {
	if err := patientExists(s.db, req.PatientID); err != nil {
		return nil, err
	}
	if req.DoctorID != nil {
		if err := doctorExists(s.db, *req.DoctorID); err != nil {
			return nil, err
		}
	}
	if req.Name == "" {
		return nil, ErrTestNameRequired
	}
	status := req.Status
	if status == "" {
		status = models.LabResultPending
	}
	if !models.ValidLabResultStatus(status) {
		return nil, ErrInvalidLabResultStatus
	}
	if req.PerformedDate == "" {
		return nil, ErrPerformedDateRequired
	}
	performed, err := parseDate(req.PerformedDate)
	if err != nil {
		return nil, err
	}

	var reported *time.Time
	if req.ReportedDate != "" {
		d, err := parseDate(req.ReportedDate)
		if err != nil {
			return nil, err
		}
		reported = &d
	}

	result := models.LabResult{
		ID:             uuid.New(),
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		Name:           req.Name,
		ResultValue:    req.ResultValue,
		ResultUnit:     req.ResultUnit,
		ReferenceRange: req.ReferenceRange,
		Status:         status,
		PerformedDate:  performed,
		ReportedDate:   reported,
		Notes:          req.Notes,
	}

	if err := s.db.Create(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to create lab result: %w", err)
	}

	return s.Get(result.ID)
}

func (s *LabResultService) Get(id uuid.UUID) (*dto.LabResultResponse, error) {
	var result models.LabResult
	if err := s.db.Preload("Patient.User").Preload("Doctor.User").
		First(&result, "id = ?", id).Error; err != nil {
		return nil, ErrLabResultNotFound
	}
	return mapLabResultToResponse(&result), nil
}

func (s *LabResultService) List(f LabResultFilters) (*dto.LabResultListResponse, error) {
	page, limit, offset := clampPage(f.Page, f.Limit)

	query := joinClinicalUsers(s.db.Model(&models.LabResult{}), "lab_results")

	if f.PatientID != nil {
		query = query.Where("lab_results.patient_id = ?", *f.PatientID)
	}
	if f.Status != "" {
		query = query.Where("lab_results.status = ?", f.Status)
	}
	if f.PerformedDate != "" {
		d, err := parseDate(f.PerformedDate)
		if err != nil {
			return nil, err
		}
		query = query.Where("lab_results.performed_date = ?", d)
	}
	if f.ReportedDate != "" {
		d, err := parseDate(f.ReportedDate)
		if err != nil {
			return nil, err
		}
		query = query.Where("lab_results.reported_date = ?", d)
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		query = query.Where(
			"("+clinicalNameSearch+" OR LOWER(lab_results.name) LIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	order := "lab_results.performed_date DESC"
	if col, ok := clinicalSortColumns[f.Sort]; ok {
		order = col
	}

	var results []models.LabResult
	if err := query.Select("lab_results.*").
		Preload("Patient.User").Preload("Doctor.User").
		Order(order).Limit(limit).Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}

	resp := &dto.LabResultListResponse{
		LabResults: make([]dto.LabResultResponse, 0, len(results)),
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: totalPages(total, limit),
		},
	}
	for i := range results {
		resp.LabResults = append(resp.LabResults, *mapLabResultToResponse(&results[i]))
	}
	return resp, nil
}

func (s *LabResultService) Update(id uuid.UUID, req *dto.UpdateLabResultRequest) (*dto.LabResultResponse, error) {
	var result models.LabResult
	if err := s.db.First(&result, "id = ?", id).Error; err != nil {
		return nil, ErrLabResultNotFound
	}

	updates := map[string]interface{}{}
	if req.DoctorID != nil {
		if err := doctorExists(s.db, *req.DoctorID); err != nil {
			return nil, err
		}
		updates["doctor_id"] = *req.DoctorID
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrTestNameRequired
		}
		updates["name"] = *req.Name
	}
	if req.ResultValue != nil {
		updates["result_value"] = *req.ResultValue
	}
	if req.ResultUnit != nil {
		updates["result_unit"] = *req.ResultUnit
	}
	if req.ReferenceRange != nil {
		updates["reference_range"] = *req.ReferenceRange
	}
	if req.Status != nil {
		if !models.ValidLabResultStatus(*req.Status) {
			return nil, ErrInvalidLabResultStatus
		}
		updates["status"] = *req.Status
	}
	if req.PerformedDate != nil {
		d, err := parseDate(*req.PerformedDate)
		if err != nil {
			return nil, err
		}
		updates["performed_date"] = d
	}
	if req.ReportedDate != nil {
		if *req.ReportedDate == "" {
			updates["reported_date"] = nil
		} else {
			d, err := parseDate(*req.ReportedDate)
			if err != nil {
				return nil, err
			}
			updates["reported_date"] = d
		}
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&result).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update lab result: %w", err)
		}
	}

	return s.Get(id)
}

func (s *LabResultService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.LabResult{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLabResultNotFound
	}
	return nil
}

func mapLabResultToResponse(r *models.LabResult) *dto.LabResultResponse {
	resp := &dto.LabResultResponse{
		ID:             r.ID,
		PatientID:      r.PatientID,
		PatientName:    r.Patient.Name(),
		DoctorID:       r.DoctorID,
		DoctorName:     doctorName(r.Doctor),
		Name:           r.Name,
		ResultValue:    r.ResultValue,
		ResultUnit:     r.ResultUnit,
		ReferenceRange: r.ReferenceRange,
		Status:         r.Status,
		StatusLabel:    models.LabResultStatusLabel(r.Status),
		PerformedDate:  r.PerformedDate.Format(dateLayout),
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.ReportedDate != nil {
		resp.ReportedDate = r.ReportedDate.Format(dateLayout)
	}
	return resp
}
