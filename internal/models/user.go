package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. The role is fixed at account creation and decides which
// profile table (patients or doctors) applies to the account.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

var roleLabels = map[string]string{
	RolePatient: "Patient",
	RoleDoctor:  "Doctor",
	RoleAdmin:   "Administrator",
}

func ValidRole(role string) bool {
	_, ok := roleLabels[role]
	return ok
}

func RoleLabel(role string) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return role
}

// User is the single account table shared by patients, doctors and
// administrators. Email is the login identifier.
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	FirstName      string         `gorm:"size:150;not null" json:"first_name"`
	LastName       string         `gorm:"size:150;not null" json:"last_name"`
	Role           string         `gorm:"size:10;not null;index" json:"role"`
	PhoneNumber    string         `gorm:"size:17" json:"phone_number,omitempty"`
	ProfilePicture string         `gorm:"size:500" json:"profile_picture,omitempty"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	IsStaff        bool           `gorm:"default:false" json:"is_staff"`
	IsSuperuser    bool           `gorm:"default:false" json:"-"`
	LastLogin      *time.Time     `json:"last_login,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
