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

// CommentService handles comment operations.
type CommentService interface {
	Create(ctx context.Context, p policy.Principal, adID uint, text string) (*model.Comment, error)
	ListByAd(ctx context.Context, adID uint, page pagination.Params) ([]model.Comment, error)
	Delete(ctx context.Context, p policy.Principal, commentID uint) error
}

type commentService struct {
	comments repository.CommentRepository
	ads      repository.AdRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, ads repository.AdRepository) CommentService {
	return &commentService{comments: comments, ads: ads}
}

// Create adds a comment to an existing ad.
func (s *commentService) Create(ctx context.Context, p policy.Principal, adID uint, text string) (*model.Comment, error) {
	if _, err := s.findAd(ctx, adID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Text:   text,
		UserID: p.ID,
		AdID:   adID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// ListByAd returns a page of comments for an existing ad, newest first.
func (s *commentService) ListByAd(ctx context.Context, adID uint, page pagination.Params) ([]model.Comment, error) {
	if _, err := s.findAd(ctx, adID); err != nil {
		return nil, err
	}
	return s.comments.ListByAd(ctx, adID, page)
}

// Delete removes a comment. Admin only.
func (s *commentService) Delete(ctx context.Context, p policy.Principal, commentID uint) error {
	if d := policy.CanModerateAd(p); !d.Allowed {
		return denyError(d, apperrors.ErrCommentNotFound, nil)
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("find comment: %w", err)
	}

	if err := s.comments.Delete(ctx, comment); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *commentService) findAd(ctx context.Context, adID uint) (*model.Ad, error) {
	ad, err := s.ads.FindByID(ctx, adID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, fmt.Errorf("find ad: %w", err)
	}
	return ad, nil
}
