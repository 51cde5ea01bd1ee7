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

func TestCommentService_Create(t *testing.T) {
	commenter := policy.Principal{ID: 1, Role: model.RoleUser, IsActive: true}

	t.Run("comment on existing ad", func(t *testing.T) {
		mComments := new(MockCommentRepository)
		mAds := new(MockAdRepository)
		mAds.On("FindByID", mock.Anything, uint(10)).Return(&model.Ad{ID: 10}, nil)
		mComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		svc := NewCommentService(mComments, mAds)
		comment, err := svc.Create(context.Background(), commenter, 10, "is it still available?")

		assert.NoError(t, err)
		assert.Equal(t, uint(1), comment.UserID)
		assert.Equal(t, uint(10), comment.AdID)
		mComments.AssertExpectations(t)
		mAds.AssertExpectations(t)
	})

	t.Run("missing ad", func(t *testing.T) {
		mAds := new(MockAdRepository)
		mAds.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCommentService(new(MockCommentRepository), mAds)
		comment, err := svc.Create(context.Background(), commenter, 10, "hello")

		assert.ErrorIs(t, err, apperrors.ErrAdNotFound)
		assert.Nil(t, comment)
	})
}

func TestCommentService_Delete(t *testing.T) {
	adminP := policy.Principal{ID: 9, Role: model.RoleAdmin, IsActive: true}
	userP := policy.Principal{ID: 1, Role: model.RoleUser, IsActive: true}

	t.Run("admin deletes comment", func(t *testing.T) {
		comment := &model.Comment{ID: 5, AdID: 10}
		mComments := new(MockCommentRepository)
		mComments.On("FindByID", mock.Anything, uint(5)).Return(comment, nil)
		mComments.On("Delete", mock.Anything, comment).Return(nil)

		svc := NewCommentService(mComments, new(MockAdRepository))
		assert.NoError(t, svc.Delete(context.Background(), adminP, 5))
		mComments.AssertExpectations(t)
	})

	t.Run("regular user forbidden before lookup", func(t *testing.T) {
		svc := NewCommentService(new(MockCommentRepository), new(MockAdRepository))
		err := svc.Delete(context.Background(), userP, 5)
		assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
	})

	t.Run("missing comment", func(t *testing.T) {
		mComments := new(MockCommentRepository)
		mComments.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCommentService(mComments, new(MockAdRepository))
		err := svc.Delete(context.Background(), adminP, 5)
		assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
	})
}
