package services

import (
	"errors"
	"testing"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/models"
)

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Register(&dto.RegisterRequest{
			Email:     "jane.doe@example.com",
			Password:  "s3cretpass",
			FirstName: "Jane",
			LastName:  "Doe",
			Role:      models.RolePatient,
		})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if resp.AccessToken == "" || resp.RefreshToken == "" {
			t.Fatal("expected both tokens to be issued")
		}
		if resp.User.FullName != "Jane Doe" {
			t.Errorf("expected full name 'Jane Doe', got %q", resp.User.FullName)
		}
		if resp.User.RoleLabel != "Patient" {
			t.Errorf("expected role label 'Patient', got %q", resp.User.RoleLabel)
		}
	})

	t.Run("DuplicateEmailNormalized", func(t *testing.T) {
		// Same address differing only in case and whitespace
		_, err := svc.Register(&dto.RegisterRequest{
			Email:     "  Jane.Doe@Example.COM ",
			Password:  "anotherpass",
			FirstName: "Jane",
			LastName:  "Impostor",
			Role:      models.RolePatient,
		})
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("ShortPassword", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{
			Email:     "short@example.com",
			Password:  "seven77",
			FirstName: "Short",
			LastName:  "Pass",
			Role:      models.RolePatient,
		})
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("InvalidRole", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{
			Email:     "rrole@example.com",
			Password:  "s3cretpass",
			FirstName: "Bad",
			LastName:  "Role",
			Role:      "superuser",
		})
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("InvalidPhone", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{
			Email:       "phone@example.com",
			Password:    "s3cretpass",
			FirstName:   "Bad",
			LastName:    "Phone",
			Role:        models.RolePatient,
			PhoneNumber: "not-a-number",
		})
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	if _, err := svc.Register(&dto.RegisterRequest{
		Email:     "login@example.com",
		Password:  "s3cretpass",
		FirstName: "Log",
		LastName:  "In",
		Role:      models.RoleDoctor,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Login(&dto.LoginRequest{Email: "LOGIN@example.com", Password: "s3cretpass"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if resp.AccessToken == "" {
			t.Fatal("expected access token")
		}

		var user models.User
		if err := db.First(&user, "email = ?", "login@example.com").Error; err != nil {
			t.Fatalf("load user: %v", err)
		}
		if user.LastLogin == nil {
			t.Error("expected LastLogin to be set after login")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "wrongpass1"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "s3cretpass"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("DisabledAccount", func(t *testing.T) {
		if err := db.Model(&models.User{}).Where("email = ?", "login@example.com").
			Update("is_active", false).Error; err != nil {
			t.Fatalf("disable user: %v", err)
		}
		_, err := svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "s3cretpass"})
		if !errors.Is(err, ErrAccountDisabled) {
			t.Fatalf("expected ErrAccountDisabled, got %v", err)
		}
	})
}

func TestRefreshRotation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	registered, err := svc.Register(&dto.RegisterRequest{
		Email:     "rotate@example.com",
		Password:  "s3cretpass",
		FirstName: "Ro",
		LastName:  "Tate",
		Role:      models.RolePatient,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.RefreshToken == registered.RefreshToken {
		t.Error("expected refresh token to rotate")
	}

	// The consumed token must be rejected on replay.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken on replay, got %v", err)
	}
}

func TestCreateAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	user, err := svc.CreateAdmin(&dto.RegisterRequest{
		Email:     "boss@example.com",
		Password:  "s3cretpass",
		FirstName: "Big",
		LastName:  "Boss",
	})
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %q", user.Role)
	}

	var stored models.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if !stored.IsStaff || !stored.IsSuperuser || !stored.IsActive {
		t.Errorf("expected staff/superuser/active flags set, got staff=%v super=%v active=%v",
			stored.IsStaff, stored.IsSuperuser, stored.IsActive)
	}
}

func TestSeedBootstrapAdmin(t *testing.T) {
	db := setupTestDB(t)

	cfg := testConfig()
	cfg.BootstrapAdminEmail = "root@clinic.example"
	cfg.BootstrapAdminPassword = "bootstrap1"
	cfg.BootstrapAdminName = "Clinic Root"
	svc := NewAuthService(db, cfg)

	if err := svc.SeedBootstrapAdmin(); err != nil {
		t.Fatalf("SeedBootstrapAdmin: %v", err)
	}
	// Idempotent on restart
	if err := svc.SeedBootstrapAdmin(); err != nil {
		t.Fatalf("SeedBootstrapAdmin second run: %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "root@clinic.example").Count(&count).Error; err != nil {
		t.Fatalf("count admins: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one seeded admin, got %d", count)
	}
}
