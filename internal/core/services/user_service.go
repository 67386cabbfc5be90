package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/adapters/persistence/repositories"
	"shwe-topup/internal/pkg/password"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrUserNotFoundSvc     = errors.New("user not found")
	ErrOldPasswordWrong    = errors.New("old password is incorrect")
	ErrCannotChangeOwnRole = errors.New("cannot change your own role")
	ErrCannotBanSelf       = errors.New("cannot ban your own account")
	ErrInvalidRole         = errors.New("invalid role")
)

// UserService handles profile and user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsersInput represents list users input
type ListUsersInput struct {
	Page  int
	Limit int
}

// ListUsersOutput represents list users output
type ListUsersOutput struct {
	Users      []*models.UserResponse `json:"users"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
}

// ListUsers lists all users with pagination (admin)
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	offset := (input.Page - 1) * input.Limit
	users, total, err := s.userRepo.List(ctx, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListUsersOutput{
		Users:      responses,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetProfile gets a user's profile
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFoundSvc
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput represents update profile input (for self)
type UpdateProfileInput struct {
	Name           *string `json:"name"`
	ProfilePicture *string `json:"profile_picture"`
}

// UpdateProfile updates a user's own profile
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != "" {
			user.Name = name
		}
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = input.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword changes a user's own password
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if !password.Verify(input.OldPassword, user.Password) {
		return ErrOldPasswordWrong
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}

// SetRole sets a user's role (admin). An admin cannot change their own
// role, so the system never loses its last admin by accident.
func (s *UserService) SetRole(ctx context.Context, actorID, userID uint, role string) error {
	if !models.IsValidRole(role) {
		return ErrInvalidRole
	}
	if actorID == userID {
		return ErrCannotChangeOwnRole
	}

	if err := s.userRepo.SetRole(ctx, userID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFoundSvc
		}
		return err
	}

	log.Printf("✅ User %d role set to %s by admin %d", userID, role, actorID)
	return nil
}

// SetBanned toggles a user's ban flag (admin)
func (s *UserService) SetBanned(ctx context.Context, actorID, userID uint, banned bool) error {
	if actorID == userID {
		return ErrCannotBanSelf
	}

	if err := s.userRepo.SetBanned(ctx, userID, banned); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFoundSvc
		}
		return err
	}

	log.Printf("✅ User %d banned=%t by admin %d", userID, banned, actorID)
	return nil
}
