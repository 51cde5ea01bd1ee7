package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/pagination"
)

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ExistsByUserAndAd(ctx context.Context, userID, adID uint) (bool, error)
	ListByAd(ctx context.Context, adID uint, page pagination.Params) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create creates a new review.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ExistsByUserAndAd reports whether the user already reviewed the ad.
func (r *reviewRepository) ExistsByUserAndAd(ctx context.Context, userID, adID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("user_id = ? AND ad_id = ?", userID, adID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByAd returns a page of reviews for an ad, newest first.
func (r *reviewRepository) ListByAd(ctx context.Context, adID uint, page pagination.Params) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("ad_id = ?", adID).
		Order("created_at DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
