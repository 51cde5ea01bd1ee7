package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/OlegMusatov3000/BlitzMarket/internal/errors"
	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/pagination"
	"github.com/OlegMusatov3000/BlitzMarket/internal/policy"
	"github.com/OlegMusatov3000/BlitzMarket/internal/repository"
)

// ReviewService handles review operations.
type ReviewService interface {
	Create(ctx context.Context, p policy.Principal, adID uint, text string, rating int) (*model.Review, error)
	ListByAd(ctx context.Context, adID uint, page pagination.Params) ([]model.Review, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	ads     repository.AdRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repository.ReviewRepository, ads repository.AdRepository) ReviewService {
	return &reviewService{reviews: reviews, ads: ads}
}

// Create submits a review for an ad. The policy check rejects out-of-range
// ratings and repeat reviews; two requests racing past the check are settled
// by the (user_id, ad_id) unique index, and the loser still gets the
// duplicate error rather than a 500.
func (s *reviewService) Create(ctx context.Context, p policy.Principal, adID uint, text string, rating int) (*model.Review, error) {
	ad, err := s.ads.FindByID(ctx, adID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, fmt.Errorf("find ad: %w", err)
	}

	// Rating bound first: no existence lookup for input that can never pass.
	if d := policy.CanCreateReview(p, ad, rating, false); !d.Allowed && d.Reason == policy.ReasonInvalidRating {
		return nil, apperrors.ErrInvalidRating
	}

	exists, err := s.reviews.ExistsByUserAndAd(ctx, p.ID, adID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if d := policy.CanCreateReview(p, ad, rating, exists); !d.Allowed {
		return nil, denyError(d, apperrors.ErrAdNotFound, apperrors.ErrDuplicateReview)
	}

	review := &model.Review{
		Text:   text,
		Rating: rating,
		UserID: p.ID,
		AdID:   adID,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateReview
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// ListByAd returns a page of reviews for an existing ad, newest first.
func (s *reviewService) ListByAd(ctx context.Context, adID uint, page pagination.Params) ([]model.Review, error) {
	if _, err := s.ads.FindByID(ctx, adID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, fmt.Errorf("find ad: %w", err)
	}
	return s.reviews.ListByAd(ctx, adID, page)
}
