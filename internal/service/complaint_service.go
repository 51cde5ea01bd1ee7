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

// ComplaintService handles complaint operations.
type ComplaintService interface {
	Create(ctx context.Context, p policy.Principal, adID uint, text string) (*model.Complaint, error)
	List(ctx context.Context, p policy.Principal, page pagination.Params) ([]model.Complaint, error)
}

type complaintService struct {
	complaints repository.ComplaintRepository
	ads        repository.AdRepository
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(complaints repository.ComplaintRepository, ads repository.AdRepository) ComplaintService {
	return &complaintService{complaints: complaints, ads: ads}
}

// Create files a complaint against an ad, at most one per (author, ad).
// Like reviews, the unique index settles concurrent duplicates.
func (s *complaintService) Create(ctx context.Context, p policy.Principal, adID uint, text string) (*model.Complaint, error) {
	ad, err := s.ads.FindByID(ctx, adID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, fmt.Errorf("find ad: %w", err)
	}

	exists, err := s.complaints.ExistsByAuthorAndAd(ctx, p.ID, adID)
	if err != nil {
		return nil, fmt.Errorf("check existing complaint: %w", err)
	}
	if d := policy.CanCreateComplaint(p, ad, exists); !d.Allowed {
		return nil, denyError(d, apperrors.ErrAdNotFound, apperrors.ErrDuplicateComplaint)
	}

	complaint := &model.Complaint{
		ForAd:  adID,
		Author: p.ID,
		Text:   text,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateComplaint
		}
		return nil, fmt.Errorf("create complaint: %w", err)
	}
	return complaint, nil
}

// List returns a page of complaints, newest first. Admin only.
func (s *complaintService) List(ctx context.Context, p policy.Principal, page pagination.Params) ([]model.Complaint, error) {
	if d := policy.CanListComplaints(p); !d.Allowed {
		return nil, denyError(d, nil, nil)
	}
	return s.complaints.List(ctx, page)
}
