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
	ErrHistoryNotFound = errors.New("diagnosis history not found")
	ErrHistoryExists   = errors.New("diagnosis history already recorded for this patient, month and year")
	ErrInvalidLevel    = errors.New("invalid vital-sign level")
)

// DiagnosisHistoryService manages the monthly vital-sign snapshots.
// Every numeric reading is bounds-checked before persistence and the
// (patient, month, year) pair is deduplicated both here and by the
// composite unique index.
type DiagnosisHistoryService struct {
	db *gorm.DB
}

func NewDiagnosisHistoryService(db *gorm.DB) *DiagnosisHistoryService {
	return &DiagnosisHistoryService{db: db}
}

type DiagnosisHistoryFilters struct {
	Page           int
	Limit          int
	Search         string
	PatientID      *uuid.UUID
	Month          string
	Year           int
	SystolicLevel  string
	DiastolicLevel string
	HeartRateLevel string
	Sort           string
}

func validateVitals(systolic, diastolic, heartRate, respiratory int, temperature float64) error {
	if systolic < models.MinSystolic || systolic > models.MaxSystolic {
		return rangeError("systolic blood pressure", models.MinSystolic, models.MaxSystolic)
	}
	if diastolic < models.MinDiastolic || diastolic > models.MaxDiastolic {
		return rangeError("diastolic blood pressure", models.MinDiastolic, models.MaxDiastolic)
	}
	if heartRate < models.MinHeartRate || heartRate > models.MaxHeartRate {
		return rangeError("heart rate", models.MinHeartRate, models.MaxHeartRate)
	}
	if respiratory < models.MinRespiratoryRate || respiratory > models.MaxRespiratoryRate {
		return rangeError("respiratory rate", models.MinRespiratoryRate, models.MaxRespiratoryRate)
	}
	if temperature < models.MinTemperature || temperature > models.MaxTemperature {
		return rangeError("temperature", models.MinTemperature, models.MaxTemperature)
	}
	return nil
}

func levelOrDefault(level string) (string, error) {
	if level == "" {
		return models.LevelNormal, nil
	}
	if !models.ValidLevel(level) {
		return "", ErrInvalidLevel
	}
	return level, nil
}

func (s *DiagnosisHistoryService) Create(req *dto.CreateDiagnosisHistoryRequest) (*dto.DiagnosisHistoryResponse, error) {
	if err := patientExists(s.db, req.PatientID); err != nil {
		return nil, err
	}
	if req.DoctorID != nil {
		if err := doctorExists(s.db, *req.DoctorID); err != nil {
			return nil, err
		}
	}
	if !validMonth(req.Month) {
		return nil, ErrInvalidMonth
	}
	if req.Year < models.MinYear || req.Year > models.MaxYear {
		return nil, rangeError("year", models.MinYear, models.MaxYear)
	}
	if err := validateVitals(
		req.BloodPressureSystolicValue,
		req.BloodPressureDiastolicValue,
		req.HeartRateValue,
		req.RespiratoryRateValue,
		req.TemperatureValue,
	); err != nil {
		return nil, err
	}

	history := models.DiagnosisHistory{
		ID:                          uuid.New(),
		PatientID:                   req.PatientID,
		DoctorID:                    req.DoctorID,
		Month:                       req.Month,
		Year:                        req.Year,
		BloodPressureSystolicValue:  req.BloodPressureSystolicValue,
		BloodPressureDiastolicValue: req.BloodPressureDiastolicValue,
		HeartRateValue:              req.HeartRateValue,
		RespiratoryRateValue:        req.RespiratoryRateValue,
		TemperatureValue:            req.TemperatureValue,
	}
	var err error
	if history.BloodPressureSystolicLevel, err = levelOrDefault(req.BloodPressureSystolicLevel); err != nil {
		return nil, err
	}
	if history.BloodPressureDiastolicLevel, err = levelOrDefault(req.BloodPressureDiastolicLevel); err != nil {
		return nil, err
	}
	if history.HeartRateLevel, err = levelOrDefault(req.HeartRateLevel); err != nil {
		return nil, err
	}
	if history.RespiratoryRateLevel, err = levelOrDefault(req.RespiratoryRateLevel); err != nil {
		return nil, err
	}
	if history.TemperatureLevel, err = levelOrDefault(req.TemperatureLevel); err != nil {
		return nil, err
	}

	var existing models.DiagnosisHistory
	if err := s.db.Where("patient_id = ? AND month = ? AND year = ?",
		req.PatientID, req.Month, req.Year).First(&existing).Error; err == nil {
		return nil, ErrHistoryExists
	}

	if err := s.db.Create(&history).Error; err != nil {
		// the unique index catches writers that raced past the check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrHistoryExists
		}
		return nil, fmt.Errorf("failed to create diagnosis history: %w", err)
	}

	return s.Get(history.ID)
}

func (s *DiagnosisHistoryService) Get(id uuid.UUID) (*dto.DiagnosisHistoryResponse, error) {
	var history models.DiagnosisHistory
	if err := s.db.Preload("Patient.User").Preload("Doctor.User").
		First(&history, "id = ?", id).Error; err != nil {
		return nil, ErrHistoryNotFound
	}
	return mapHistoryToResponse(&history), nil
}

func (s *DiagnosisHistoryService) List(f DiagnosisHistoryFilters) (*dto.DiagnosisHistoryListResponse, error) {
	page, limit, offset := clampPage(f.Page, f.Limit)

	query := joinClinicalUsers(s.db.Model(&models.DiagnosisHistory{}), "diagnosis_histories")

	if f.PatientID != nil {
		query = query.Where("diagnosis_histories.patient_id = ?", *f.PatientID)
	}
	if f.Month != "" {
		query = query.Where("diagnosis_histories.month = ?", f.Month)
	}
	if f.Year != 0 {
		query = query.Where("diagnosis_histories.year = ?", f.Year)
	}
	if f.SystolicLevel != "" {
		query = query.Where("diagnosis_histories.blood_pressure_systolic_level = ?", f.SystolicLevel)
	}
	if f.DiastolicLevel != "" {
		query = query.Where("diagnosis_histories.blood_pressure_diastolic_level = ?", f.DiastolicLevel)
	}
	if f.HeartRateLevel != "" {
		query = query.Where("diagnosis_histories.heart_rate_level = ?", f.HeartRateLevel)
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		query = query.Where("("+clinicalNameSearch+")", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	order := "diagnosis_histories.year DESC, diagnosis_histories.month DESC"
	if col, ok := clinicalSortColumns[f.Sort]; ok {
		order = col
	}

	var histories []models.DiagnosisHistory
	if err := query.Select("diagnosis_histories.*").
		Preload("Patient.User").Preload("Doctor.User").
		Order(order).Limit(limit).Offset(offset).
		Find(&histories).Error; err != nil {
		return nil, err
	}

	resp := &dto.DiagnosisHistoryListResponse{
		Histories: make([]dto.DiagnosisHistoryResponse, 0, len(histories)),
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: totalPages(total, limit),
		},
	}
	for i := range histories {
		resp.Histories = append(resp.Histories, *mapHistoryToResponse(&histories[i]))
	}
	return resp, nil
}

func (s *DiagnosisHistoryService) Update(id uuid.UUID, req *dto.UpdateDiagnosisHistoryRequest) (*dto.DiagnosisHistoryResponse, error) {
	var history models.DiagnosisHistory
	if err := s.db.First(&history, "id = ?", id).Error; err != nil {
		return nil, ErrHistoryNotFound
	}

	// apply value changes to a copy first so the bounds check always
	// sees the full post-update reading
	next := history
	if req.DoctorID != nil {
		if err := doctorExists(s.db, *req.DoctorID); err != nil {
			return nil, err
		}
		next.DoctorID = req.DoctorID
	}
	if req.BloodPressureSystolicValue != nil {
		next.BloodPressureSystolicValue = *req.BloodPressureSystolicValue
	}
	if req.BloodPressureDiastolicValue != nil {
		next.BloodPressureDiastolicValue = *req.BloodPressureDiastolicValue
	}
	if req.HeartRateValue != nil {
		next.HeartRateValue = *req.HeartRateValue
	}
	if req.RespiratoryRateValue != nil {
		next.RespiratoryRateValue = *req.RespiratoryRateValue
	}
	if req.TemperatureValue != nil {
		next.TemperatureValue = *req.TemperatureValue
	}
	if err := validateVitals(
		next.BloodPressureSystolicValue,
		next.BloodPressureDiastolicValue,
		next.HeartRateValue,
		next.RespiratoryRateValue,
		next.TemperatureValue,
	); err != nil {
		return nil, err
	}

	for _, l := range []struct {
		in  *string
		out *string
	}{
		{req.BloodPressureSystolicLevel, &next.BloodPressureSystolicLevel},
		{req.BloodPressureDiastolicLevel, &next.BloodPressureDiastolicLevel},
		{req.HeartRateLevel, &next.HeartRateLevel},
		{req.RespiratoryRateLevel, &next.RespiratoryRateLevel},
		{req.TemperatureLevel, &next.TemperatureLevel},
	} {
		if l.in == nil {
			continue
		}
		if !models.ValidLevel(*l.in) {
			return nil, ErrInvalidLevel
		}
		*l.out = *l.in
	}

	next.UpdatedAt = time.Now()
	if err := s.db.Save(&next).Error; err != nil {
		return nil, fmt.Errorf("failed to update diagnosis history: %w", err)
	}

	return s.Get(id)
}

func (s *DiagnosisHistoryService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.DiagnosisHistory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHistoryNotFound
	}
	return nil
}

func mapHistoryToResponse(h *models.DiagnosisHistory) *dto.DiagnosisHistoryResponse {
	return &dto.DiagnosisHistoryResponse{
		ID:          h.ID,
		PatientID:   h.PatientID,
		PatientName: h.Patient.Name(),
		DoctorID:    h.DoctorID,
		DoctorName:  doctorName(h.Doctor),
		Month:       h.Month,
		Year:        h.Year,

		BloodPressureSystolicValue:       h.BloodPressureSystolicValue,
		BloodPressureSystolicLevel:       h.BloodPressureSystolicLevel,
		BloodPressureSystolicLevelLabel:  models.LevelLabel(h.BloodPressureSystolicLevel),
		BloodPressureDiastolicValue:      h.BloodPressureDiastolicValue,
		BloodPressureDiastolicLevel:      h.BloodPressureDiastolicLevel,
		BloodPressureDiastolicLevelLabel: models.LevelLabel(h.BloodPressureDiastolicLevel),

		HeartRateValue:            h.HeartRateValue,
		HeartRateLevel:            h.HeartRateLevel,
		HeartRateLevelLabel:       models.LevelLabel(h.HeartRateLevel),
		RespiratoryRateValue:      h.RespiratoryRateValue,
		RespiratoryRateLevel:      h.RespiratoryRateLevel,
		RespiratoryRateLevelLabel: models.LevelLabel(h.RespiratoryRateLevel),
		TemperatureValue:          h.TemperatureValue,
		TemperatureLevel:          h.TemperatureLevel,
		TemperatureLevelLabel:     models.LevelLabel(h.TemperatureLevel),

		CreatedAt: h.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: h.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
