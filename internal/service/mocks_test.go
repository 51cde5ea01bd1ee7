package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/pagination"
)

// MockAdRepository is a mock implementation of repository.AdRepository.
type MockAdRepository struct {
	mock.Mock
}

func (m *MockAdRepository) Create(ctx context.Context, ad *model.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) Update(ctx context.Context, ad *model.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) Delete(ctx context.Context, ad *model.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) FindByID(ctx context.Context, id uint) (*model.Ad, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ad), args.Error(1)
}

func (m *MockAdRepository) List(ctx context.Context, adType *model.AdType, page pagination.Params) ([]model.Ad, error) {
	args := m.Called(ctx, adType, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ad), args.Error(1)
}

// MockCommentRepository is a mock implementation of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByAd(ctx context.Context, adID uint, page pagination.Params) ([]model.Comment, error) {
	args := m.Called(ctx, adID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

// MockReviewRepository is a mock implementation of repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsByUserAndAd(ctx context.Context, userID, adID uint) (bool, error) {
	args := m.Called(ctx, userID, adID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListByAd(ctx context.Context, adID uint, page pagination.Params) ([]model.Review, error) {
	args := m.Called(ctx, adID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

// MockComplaintRepository is a mock implementation of repository.ComplaintRepository.
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) ExistsByAuthorAndAd(ctx context.Context, author, adID uint) (bool, error) {
	args := m.Called(ctx, author, adID)
	return args.Bool(0), args.Error(1)
}

func (m *MockComplaintRepository) List(ctx context.Context, page pagination.Params) ([]model.Complaint, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Complaint), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
