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
	ErrDiagnosticNotFound      = errors.New("diagnostic not found")
	ErrDiagnosisNameRequired   = errors.New("diagnosis name is required")
	ErrInvalidDiagnosisStatus  = errors.New("invalid diagnosis status")
)

type DiagnosticService struct {
	db *gorm.DB
}

func NewDiagnosticService(db *gorm.DB) *DiagnosticService {
	return &DiagnosticService{db: db}
}

type DiagnosticFilters struct {
	Page          int
	Limit         int
	Search        string
	PatientID     *uuid.UUID
	Status        string
	DiagnosedDate string
	Sort          string
}

func (s *DiagnosticService) Create(req *dto.CreateDiagnosticRequest) (*dto.DiagnosticResponse, error) {
	if err := patientExists(s.db, req.PatientID); err != nil {
		return nil, err
	}
	if req.DoctorID != nil {
		if err := doctorExists(s.db, *req.DoctorID); err != nil {
			return nil, err
		}
	}
	if req.Name == "" {
		return nil, ErrDiagnosisNameRequired
	}
	status := req.Status
	if status == "" {
		status = models.DiagnosisActive
	}
	if !models.ValidDiagnosisStatus(status) {
		return nil, ErrInvalidDiagnosisStatus
	}

	var diagnosedDate *time.Time
	if req.DiagnosedDate != "" {
		d, err := parseDate(req.DiagnosedDate)
		if err != nil {
			return nil, err
		}
		diagnosedDate = &d
	}

	diagnostic := models.Diagnostic{
		ID:            uuid.New(),
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		Name:          req.Name,
		Description:   req.Description,
		Status:        status,
		DiagnosedDate: diagnosedDate,
	}

	if err := s.db.Create(&diagnostic).Error; err != nil {
		return nil, fmt.Errorf("failed to create diagnostic: %w", err)
	}

	return s.Get(diagnostic.ID)
}

func (s *DiagnosticService) Get(id uuid.UUID) (*dto.DiagnosticResponse, error) {
	var diagnostic models.Diagnostic
	if err := s.db.Preload("Patient.User").Preload("Doctor.User").
		First(&diagnostic, "id = ?", id).Error; err != nil {
		return nil, ErrDiagnosticNotFound
	}
	return mapDiagnosticToResponse(&diagnostic), nil
}

func (s *DiagnosticService) List(f DiagnosticFilters) (*dto.DiagnosticListResponse, error) {
	page, limit, offset := clampPage(f.Page, f.Limit)

	query := joinClinicalUsers(s.db.Model(&models.Diagnostic{}), "diagnostics")

	if f.PatientID != nil {
		query = query.Where("diagnostics.patient_id = ?", *f.PatientID)
	}
	if f.Status != "" {
		query = query.Where("diagnostics.status = ?", f.Status)
	}
	if f.DiagnosedDate != "" {
		d, err := parseDate(f.DiagnosedDate)
		if err != nil {
			return nil, err
		}
		query = query.Where("diagnostics.diagnosed_date = ?", d)
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		query = query.Where(
			"("+clinicalNameSearch+" OR LOWER(diagnostics.name) LIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	order := "diagnostics.created_at DESC"
	if col, ok := clinicalSortColumns[f.Sort]; ok {
		order = col
	}

	var diagnostics []models.Diagnostic
	if err := query.Select("diagnostics.*").
		Preload("Patient.User").Preload("Doctor.User").
		Order(order).Limit(limit).Offset(offset).
		Find(&diagnostics).Error; err != nil {
		return nil, err
	}

	resp := &dto.DiagnosticListResponse{
		Diagnostics: make([]dto.DiagnosticResponse, 0, len(diagnostics)),
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: totalPages(total, limit),
		},
	}
	for i := range diagnostics {
		resp.Diagnostics = append(resp.Diagnostics, *mapDiagnosticToResponse(&diagnostics[i]))
	}
	return resp, nil
}

func (s *DiagnosticService) Update(id uuid.UUID, req *dto.UpdateDiagnosticRequest) (*dto.DiagnosticResponse, error) {
	var diagnostic models.Diagnostic
	if err := s.db.First(&diagnostic, "id = ?", id).Error; err != nil {
		return nil, ErrDiagnosticNotFound
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
			return nil, ErrDiagnosisNameRequired
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		if !models.ValidDiagnosisStatus(*req.Status) {
			return nil, ErrInvalidDiagnosisStatus
		}
		updates["status"] = *req.Status
	}
	if req.DiagnosedDate != nil {
		if *req.DiagnosedDate == "" {
			updates["diagnosed_date"] = nil
		} else {
			d, err := parseDate(*req.DiagnosedDate)
			if err != nil {
				return nil, err
			}
			updates["diagnosed_date"] = d
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&diagnostic).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update diagnostic: %w", err)
		}
	}

	return s.Get(id)
}

func (s *DiagnosticService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Diagnostic{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiagnosticNotFound
	}
	return nil
}

func mapDiagnosticToResponse(d *models.Diagnostic) *dto.DiagnosticResponse {
	resp := &dto.DiagnosticResponse{
		ID:          d.ID,
		PatientID:   d.PatientID,
		PatientName: d.Patient.Name(),
		DoctorID:    d.DoctorID,
		DoctorName:  doctorName(d.Doctor),
		Name:        d.Name,
		Description: d.Description,
		Status:      d.Status,
		StatusLabel: models.DiagnosisStatusLabel(d.Status),
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.DiagnosedDate != nil {
		resp.DiagnosedDate = d.DiagnosedDate.Format(dateLayout)
	}
	return resp
}
