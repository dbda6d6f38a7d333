package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

var genderLabels = map[string]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
	GenderOther:  "Other",
}

const (
	InsurancePrivate   = "private"
	InsuranceMedicare  = "medicare"
	InsuranceMedicaid  = "medicaid"
	InsuranceUninsured = "uninsured"
	InsuranceOther     = "other"
)

var insuranceLabels = map[string]string{
	InsurancePrivate:   "Private",
	InsuranceMedicare:  "Medicare",
	InsuranceMedicaid:  "Medicaid",
	InsuranceUninsured: "Uninsured",
	InsuranceOther:     "Other",
}

func ValidGender(g string) bool {
	_, ok := genderLabels[g]
	return ok
}

func GenderLabel(g string) string {
	if label, ok := genderLabels[g]; ok {
		return label
	}
	return g
}

func ValidInsuranceType(t string) bool {
	_, ok := insuranceLabels[t]
	return ok
}

func InsuranceTypeLabel(t string) string {
	if label, ok := insuranceLabels[t]; ok {
		return label
	}
	return t
}

// Patient holds the patient-specific profile for a user with
// role=patient. Exactly one profile per user; the row dies with the
// owning account.
type Patient struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User             User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Gender           string    `gorm:"size:1;not null" json:"gender"`
	DateOfBirth      time.Time `gorm:"type:date;not null;index" json:"date_of_birth"`
	EmergencyContact string    `gorm:"size:17" json:"emergency_contact,omitempty"`
	InsuranceType    string    `gorm:"size:20;not null;default:'private'" json:"insurance_type"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Name is the display name taken from the linked account.
func (p *Patient) Name() string {
	return p.User.FullName()
}

// Age is derived from the date of birth against today, minus one when
// this year's birthday has not happened yet. Never stored.
func (p *Patient) Age() int {
	return AgeAt(p.DateOfBirth, time.Now())
}

func AgeAt(born, today time.Time) int {
	years := today.Year() - born.Year()
	if today.Month() < born.Month() ||
		(today.Month() == born.Month() && today.Day() < born.Day()) {
		years--
	}
	return years
}
