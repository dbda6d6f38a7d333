package services

import (
	"github.com/clinicore/clinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// joinClinicalUsers attaches the owning patient's and the attributed
// doctor's account rows to a clinical-record query. List endpoints
// search and sort on these related names, so the joins happen up front
// instead of per row. Callers count on the joined query first and add
// the table-star select only on the row fetch; a custom select on the
// count query would make it COUNT(table.*), which no store accepts.
func joinClinicalUsers(query *gorm.DB, table string) *gorm.DB {
	return query.
		Joins("JOIN patients ON patients.id = " + table + ".patient_id").
		Joins("JOIN users AS patient_users ON patient_users.id = patients.user_id").
		Joins("LEFT JOIN doctors ON doctors.id = " + table + ".doctor_id").
		Joins("LEFT JOIN users AS doctor_users ON doctor_users.id = doctors.user_id")
}

// clinicalNameSearch is the related-name part of every clinical search
// clause: patient first/last name plus doctor last name.
const clinicalNameSearch = "LOWER(patient_users.first_name) LIKE ? OR LOWER(patient_users.last_name) LIKE ? OR LOWER(doctor_users.last_name) LIKE ?"

// clinicalSortColumns exposes computed-name sort keys backed by the
// underlying related columns.
var clinicalSortColumns = map[string]string{
	"patient": "patient_users.last_name",
	"doctor":  "doctor_users.last_name",
}

func patientExists(db *gorm.DB, id uuid.UUID) error {
	if err := db.First(&models.Patient{}, "id = ?", id).Error; err != nil {
		return ErrPatientNotFound
	}
	return nil
}

func doctorExists(db *gorm.DB, id uuid.UUID) error {
	if err := db.First(&models.Doctor{}, "id = ?", id).Error; err != nil {
		return ErrDoctorNotFound
	}
	return nil
}

func doctorName(d *models.Doctor) string {
	if d == nil {
		return ""
	}
	return d.Name()
}
