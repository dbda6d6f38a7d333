package services

import (
	"fmt"

	"github.com/clinicore/clinic-backend/internal/dto"
	"github.com/clinicore/clinic-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService backs the user administration screens: list with the
// role/staff/active filters, free-text search over email, names and
// phone, detail, partial update and delete.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserFilters struct {
	Page     int
	Limit    int
	Search   string
	Role     string
	IsStaff  *bool
	IsActive *bool
}

func (s *UserService) List(f UserFilters) (*dto.UserListResponse, error) {
	page, limit, offset := clampPage(f.Page, f.Limit)

	query := s.db.Model(&models.User{})
	if f.Role != "" {
		query = query.Where("role = ?", f.Role)
	}
	if f.IsStaff != nil {
		query = query.Where("is_staff = ?", *f.IsStaff)
	}
	if f.IsActive != nil {
		query = query.Where("is_active = ?", *f.IsActive)
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		query = query.Where(
			"(LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone_number LIKE ?)",
			pattern, pattern, pattern, "%"+f.Search+"%",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := query.Order("email").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, err
	}

	resp := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: totalPages(total, limit),
		},
	}
	for i := range users {
		resp.Users = append(resp.Users, MapUserToResponse(&users[i]))
	}
	return resp, nil
}

func (s *UserService) Get(id uuid.UUID) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	resp := MapUserToResponse(&user)
	return &resp, nil
}

func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.PhoneNumber != nil {
		if err := validatePhone(*req.PhoneNumber); err != nil {
			return nil, err
		}
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.ProfilePicture != nil {
		updates["profile_picture"] = *req.ProfilePicture
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsStaff != nil {
		updates["is_staff"] = *req.IsStaff
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	resp := MapUserToResponse(&user)
	return &resp, nil
}

// Delete removes the account. Profile rows and owned clinical records
// go with it through the cascading foreign keys.
func (s *UserService) Delete(id uuid.UUID) error {
	result := s.db.Unscoped().Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
