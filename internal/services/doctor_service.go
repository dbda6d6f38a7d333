package services

import (
	"errors"
	"fmt"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrInvalidSpecialization = errors.New("invalid specialization")
	ErrLicenseRequired       = errors.New("license number is required")
	ErrLicenseTaken          = errors.New("license number already registered")
	ErrExperienceOutOfRange  = errors.New("years of experience must be between 0 and 70")
)

type DoctorService struct {
	db *gorm.DB
}

func NewDoctorService(db *gorm.DB) *DoctorService {
	return &DoctorService{db: db}
}

type DoctorFilters struct {
	Page           int
	Limit          int
	Search         string
	Specialization string
	Accepting      *bool
	Sort           string
}

var doctorSortColumns = map[string]string{
	"name":           "users.last_name",
	"specialization": "doctors.specialization",
	"experience":     "doctors.years_of_experience",
}

func (s *DoctorService) Create(req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if user.Role != models.RoleDoctor {
		return nil, ErrWrongRole
	}

	var existing models.Doctor
	if err := s.db.Where("user_id = ?", req.UserID).First(&existing).Error; err == nil {
		return nil, ErrProfileExists
	}

	if !models.ValidSpecialization(req.Specialization) {
		return nil, ErrInvalidSpecialization
	}
	if req.LicenseNumber == "" {
		return nil, ErrLicenseRequired
	}
	if err := s.db.Where("license_number = ?", req.LicenseNumber).First(&models.Doctor{}).Error; err == nil {
		return nil, ErrLicenseTaken
	}
	if req.YearsOfExperience < 0 || req.YearsOfExperience > models.MaxYearsOfExperience {
		return nil, ErrExperienceOutOfRange
	}

	accepting := true
	if req.AcceptingNewPatients != nil {
		accepting = *req.AcceptingNewPatients
	}

	doctor := models.Doctor{
		ID:                   uuid.New(),
		UserID:               req.UserID,
		Specialization:       req.Specialization,
		LicenseNumber:        req.LicenseNumber,
		Biography:            req.Biography,
		YearsOfExperience:    req.YearsOfExperience,
		AcceptingNewPatients: accepting,
	}

	if err := s.db.Create(&doctor).Error; err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	doctor.User = user
	return mapDoctorToResponse(&doctor), nil
}

func (s *DoctorService) Get(id uuid.UUID) (*dto.DoctorResponse, error) {
	var doctor models.Doctor
	if err := s.db.Preload("User").First(&doctor, "id = ?", id).Error; err != nil {
		return nil, ErrDoctorNotFound
	}
	return mapDoctorToResponse(&doctor), nil
}

func (s *DoctorService) List(f DoctorFilters) (*dto.DoctorListResponse, error) {
	page, limit, offset := clampPage(f.Page, f.Limit)

	query := s.db.Model(&models.Doctor{}).
		Joins("JOIN users ON users.id = doctors.user_id")

	if f.Specialization != "" {
		query = query.Where("doctors.specialization = ?", f.Specialization)
	}
	if f.Accepting != nil {
		query = query.Where("doctors.accepting_new_patients = ?", *f.Accepting)
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		query = query.Where(
			"(LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(users.email) LIKE ? OR LOWER(doctors.license_number) LIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	order := "users.last_name, users.first_name"
	if col, ok := doctorSortColumns[f.Sort]; ok {
		order = col
	}

	var doctors []models.Doctor
	if err := query.Select("doctors.*").Preload("User").
		Order(order).Limit(limit).Offset(offset).
		Find(&doctors).Error; err != nil {
		return nil, err
	}

	resp := &dto.DoctorListResponse{
		Doctors: make([]dto.DoctorResponse, 0, len(doctors)),
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: totalPages(total, limit),
		},
	}
	for i := range doctors {
		resp.Doctors = append(resp.Doctors, *mapDoctorToResponse(&doctors[i]))
	}
	return resp, nil
}

func (s *DoctorService) Update(id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	var doctor models.Doctor
	if err := s.db.First(&doctor, "id = ?", id).Error; err != nil {
		return nil, ErrDoctorNotFound
	}

	updates := map[string]interface{}{}
	if req.Specialization != nil {
		if !models.ValidSpecialization(*req.Specialization) {
			return nil, ErrInvalidSpecialization
		}
		updates["specialization"] = *req.Specialization
	}
	if req.LicenseNumber != nil {
		if *req.LicenseNumber == "" {
			return nil, ErrLicenseRequired
		}
		var other models.Doctor
		if err := s.db.Where("license_number = ? AND id <> ?", *req.LicenseNumber, id).
			First(&other).Error; err == nil {
			return nil, ErrLicenseTaken
		}
		updates["license_number"] = *req.LicenseNumber
	}
	if req.Biography != nil {
		updates["biography"] = *req.Biography
	}
	if req.YearsOfExperience != nil {
		if *req.YearsOfExperience < 0 || *req.YearsOfExperience > models.MaxYearsOfExperience {
			return nil, ErrExperienceOutOfRange
		}
		updates["years_of_experience"] = *req.YearsOfExperience
	}
	if req.AcceptingNewPatients != nil {
		updates["accepting_new_patients"] = *req.AcceptingNewPatients
	}

	if len(updates) > 0 {
		if err := s.db.Model(&doctor).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update doctor: %w", err)
		}
	}

	return s.Get(id)
}

// Delete removes the doctor record. Clinical records keep their rows
// with the doctor reference cleared; appointments go with the slot
// owner.
func (s *DoctorService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Doctor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func mapDoctorToResponse(d *models.Doctor) *dto.DoctorResponse {
	return &dto.DoctorResponse{
		ID:                   d.ID,
		UserID:               d.UserID,
		Name:                 d.Name(),
		Email:                d.User.Email,
		Specialization:       d.Specialization,
		SpecializationLabel:  models.SpecializationLabel(d.Specialization),
		LicenseNumber:        d.LicenseNumber,
		Biography:            d.Biography,
		YearsOfExperience:    d.YearsOfExperience,
		AcceptingNewPatients: d.AcceptingNewPatients,
	}
}
