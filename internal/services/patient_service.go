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
	ErrPatientNotFound    = errors.New("patient not found")
	ErrProfileExists      = errors.New("user already has a profile")
	ErrWrongRole          = errors.New("user role does not match the profile type")
	ErrInvalidGender      = errors.New("gender must be M, F or O")
	ErrInvalidInsurance   = errors.New("invalid insurance type")
	ErrDateOfBirthInvalid = errors.New("date of birth is required and must not be in the future")
)

type PatientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{db: db}
}

type PatientFilters struct {
	Page      int
	Limit     int
	Search    string
	Gender    string
	Insurance string
	Sort      string
}

// patientSortColumns maps exposed sort keys to columns. The computed
// display name sorts by the related account's last name.
var patientSortColumns = map[string]string{
	"name":          "users.last_name",
	"date_of_birth": "patients.date_of_birth",
	"insurance":     "patients.insurance_type",
}

func (s *PatientService) Create(req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if user.Role != models.RolePatient {
		return nil, ErrWrongRole
	}

	var existing models.Patient
	if err := s.db.Where("user_id = ?", req.UserID).First(&existing).Error; err == nil {
		return nil, ErrProfileExists
	}

	if !models.ValidGender(req.Gender) {
		return nil, ErrInvalidGender
	}
	insurance := req.InsuranceType
	if insurance == "" {
		insurance = models.InsurancePrivate
	}
	if !models.ValidInsuranceType(insurance) {
		return nil, ErrInvalidInsurance
	}
	if err := validatePhone(req.EmergencyContact); err != nil {
		return nil, err
	}
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	if dob.After(time.Now()) {
		return nil, ErrDateOfBirthInvalid
	}

	patient := models.Patient{
		ID:               uuid.New(),
		UserID:           req.UserID,
		Gender:           req.Gender,
		DateOfBirth:      dob,
		EmergencyContact: req.EmergencyContact,
		InsuranceType:    insurance,
	}

	if err := s.db.Create(&patient).Error; err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	patient.User = user
	return mapPatientToResponse(&patient), nil
}

func (s *PatientService) Get(id uuid.UUID) (*dto.PatientResponse, error) {
	var patient models.Patient
	if err := s.db.Preload("User").First(&patient, "id = ?", id).Error; err != nil {
		return nil, ErrPatientNotFound
	}
	return mapPatientToResponse(&patient), nil
}

func (s *PatientService) List(f PatientFilters) (*dto.PatientListResponse, error) {
	page, limit, offset := clampPage(f.Page, f.Limit)

	query := s.db.Model(&models.Patient{}).
		Joins("JOIN users ON users.id = patients.user_id")

	if f.Gender != "" {
		query = query.Where("patients.gender = ?", f.Gender)
	}
	if f.Insurance != "" {
		query = query.Where("patients.insurance_type = ?", f.Insurance)
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		query = query.Where(
			"(LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(users.email) LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	order := "users.last_name, users.first_name"
	if col, ok := patientSortColumns[f.Sort]; ok {
		order = col
	}

	var patients []models.Patient
	if err := query.Select("patients.*").Preload("User").
		Order(order).Limit(limit).Offset(offset).
		Find(&patients).Error; err != nil {
		return nil, err
	}

	resp := &dto.PatientListResponse{
		Patients: make([]dto.PatientResponse, 0, len(patients)),
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: totalPages(total, limit),
		},
	}
	for i := range patients {
		resp.Patients = append(resp.Patients, *mapPatientToResponse(&patients[i]))
	}
	return resp, nil
}

func (s *PatientService) Update(id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	var patient models.Patient
	if err := s.db.First(&patient, "id = ?", id).Error; err != nil {
		return nil, ErrPatientNotFound
	}

	updates := map[string]interface{}{}
	if req.Gender != nil {
		if !models.ValidGender(*req.Gender) {
			return nil, ErrInvalidGender
		}
		updates["gender"] = *req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		if dob.After(time.Now()) {
			return nil, ErrDateOfBirthInvalid
		}
		updates["date_of_birth"] = dob
	}
	if req.EmergencyContact != nil {
		if err := validatePhone(*req.EmergencyContact); err != nil {
			return nil, err
		}
		updates["emergency_contact"] = *req.EmergencyContact
	}
	if req.InsuranceType != nil {
		if !models.ValidInsuranceType(*req.InsuranceType) {
			return nil, ErrInvalidInsurance
		}
		updates["insurance_type"] = *req.InsuranceType
	}

	if len(updates) > 0 {
		if err := s.db.Model(&patient).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update patient: %w", err)
		}
	}

	return s.Get(id)
}

func (s *PatientService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Patient{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func mapPatientToResponse(p *models.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		Name:               p.Name(),
		Email:              p.User.Email,
		Gender:             p.Gender,
		GenderLabel:        models.GenderLabel(p.Gender),
		DateOfBirth:        p.DateOfBirth.Format(dateLayout),
		Age:                p.Age(),
		EmergencyContact:   p.EmergencyContact,
		InsuranceType:      p.InsuranceType,
		InsuranceTypeLabel: models.InsuranceTypeLabel(p.InsuranceType),
	}
}
