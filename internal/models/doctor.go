package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SpecGeneralPractitioner = "general_practitioner"
	SpecCardiologist        = "cardiologist"
	SpecDermatologist       = "dermatologist"
	SpecEndocrinologist     = "endocrinologist"
	SpecGastroenterologist  = "gastroenterologist"
	SpecNeurologist         = "neurologist"
	SpecObstetrician        = "obstetrician"
	SpecOphthalmologist     = "ophthalmologist"
	SpecPediatrician        = "pediatrician"
	SpecPsychiatrist        = "psychiatrist"
	SpecSurgeon             = "surgeon"
	SpecOther               = "other"
)

var specializationLabels = map[string]string{
	SpecGeneralPractitioner: "General Practitioner",
	SpecCardiologist:        "Cardiologist",
	SpecDermatologist:       "Dermatologist",
	SpecEndocrinologist:     "Endocrinologist",
	SpecGastroenterologist:  "Gastroenterologist",
	SpecNeurologist:         "Neurologist",
	SpecObstetrician:        "Obstetrician",
	SpecOphthalmologist:     "Ophthalmologist",
	SpecPediatrician:        "Pediatrician",
	SpecPsychiatrist:        "Psychiatrist",
	SpecSurgeon:             "Surgeon",
	SpecOther:               "Other",
}

func ValidSpecialization(s string) bool {
	_, ok := specializationLabels[s]
	return ok
}

func SpecializationLabel(s string) string {
	if label, ok := specializationLabels[s]; ok {
		return label
	}
	return s
}

// MaxYearsOfExperience bounds the experience field.
const MaxYearsOfExperience = 70

// Doctor holds the doctor-specific profile for a user with role=doctor.
type Doctor struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User                 User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Specialization       string    `gorm:"size:50;not null;index" json:"specialization"`
	LicenseNumber        string    `gorm:"size:50;not null;uniqueIndex" json:"license_number"`
	Biography            string    `gorm:"type:text" json:"biography,omitempty"`
	YearsOfExperience    int       `gorm:"not null;default:0" json:"years_of_experience"`
	AcceptingNewPatients bool      `gorm:"default:true" json:"accepting_new_patients"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Name is the display name with the professional title prefix.
func (d *Doctor) Name() string {
	return "Dr. " + d.User.FullName()
}
