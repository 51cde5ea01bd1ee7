package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/OlegMusatov3000/BlitzMarket/internal/errors"
	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/policy"
	"github.com/OlegMusatov3000/BlitzMarket/internal/repository"
)

// UserService handles user administration operations.
type UserService interface {
	ChangeRoleOrActive(ctx context.Context, p policy.Principal, userID uint, role *model.RoleType, active *bool) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// ChangeRoleOrActive updates a user's role and/or active flag. Admin only;
// nil fields are left untouched.
func (s *userService) ChangeRoleOrActive(ctx context.Context, p policy.Principal, userID uint, role *model.RoleType, active *bool) (*model.User, error) {
	if d := policy.CanChangeUserRole(p); !d.Allowed {
		return nil, denyError(d, apperrors.ErrUserNotFound, nil)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if role != nil {
		user.Role = *role
	}
	if active != nil {
		user.IsActive = *active
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
