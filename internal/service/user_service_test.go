package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/OlegMusatov3000/BlitzMarket/internal/errors"
	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/policy"
)

func TestUserService_ChangeRoleOrActive(t *testing.T) {
	adminP := policy.Principal{ID: 9, Role: model.RoleAdmin, IsActive: true}
	userP := policy.Principal{ID: 1, Role: model.RoleUser, IsActive: true}

	roleAdmin := model.RoleAdmin
	inactive := false

	t.Run("admin promotes user and deactivates", func(t *testing.T) {
		mUsers := new(MockUserRepository)
		mUsers.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, Role: model.RoleUser, IsActive: true}, nil)
		mUsers.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mUsers)
		user, err := svc.ChangeRoleOrActive(context.Background(), adminP, 3, &roleAdmin, &inactive)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
		assert.False(t, user.IsActive)
		mUsers.AssertExpectations(t)
	})

	t.Run("nil fields leave user untouched", func(t *testing.T) {
		mUsers := new(MockUserRepository)
		mUsers.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, Role: model.RoleUser, IsActive: true}, nil)
		mUsers.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mUsers)
		user, err := svc.ChangeRoleOrActive(context.Background(), adminP, 3, nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleUser, user.Role)
		assert.True(t, user.IsActive)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository))
		user, err := svc.ChangeRoleOrActive(context.Background(), userP, 3, &roleAdmin, nil)

		assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
		assert.Nil(t, user)
	})

	t.Run("missing user", func(t *testing.T) {
		mUsers := new(MockUserRepository)
		mUsers.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mUsers)
		user, err := svc.ChangeRoleOrActive(context.Background(), adminP, 3, &roleAdmin, nil)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}
