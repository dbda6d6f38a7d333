package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clinicore/clinic-backend/internal/config"
	"github.com/clinicore/clinic-backend/internal/database"
	"github.com/clinicore/clinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
// The named shared-cache DSN keeps all pooled connections on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=on", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

var testEmailSeq atomic.Int64

func createTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	user := &models.User{
		Email:     fmt.Sprintf("user%d@example.com", testEmailSeq.Add(1)),
		Password:  "$2a$10$notarealhashnotarealhashnotarealhashnotarealha",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestPatient(t *testing.T, db *gorm.DB) *models.Patient {
	t.Helper()

	user := createTestUser(t, db, models.RolePatient)
	patient := &models.Patient{
		UserID:      user.ID,
		Gender:      models.GenderFemale,
		DateOfBirth: time.Date(1990, 3, 12, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("create test patient: %v", err)
	}
	patient.User = *user
	return patient
}

func createTestDoctor(t *testing.T, db *gorm.DB) *models.Doctor {
	t.Helper()

	user := createTestUser(t, db, models.RoleDoctor)
	doctor := &models.Doctor{
		UserID:         user.ID,
		Specialization: models.SpecGeneralPractitioner,
		LicenseNumber:  "LIC-" + uuid.NewString()[:8],
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("create test doctor: %v", err)
	}
	doctor.User = *user
	return doctor
}
