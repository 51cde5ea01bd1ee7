package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/pagination"
)

// ComplaintRepository defines complaint persistence operations.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	ExistsByAuthorAndAd(ctx context.Context, author, adID uint) (bool, error)
	List(ctx context.Context, page pagination.Params) ([]model.Complaint, error)
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository.
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create creates a new complaint.
func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// ExistsByAuthorAndAd reports whether the author already complained about the ad.
func (r *complaintRepository) ExistsByAuthorAndAd(ctx context.Context, author, adID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Complaint{}).
		Where("author = ? AND for_ad = ?", author, adID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns a page of complaints, newest first.
func (r *complaintRepository) List(ctx context.Context, page pagination.Params) ([]model.Complaint, error) {
	var complaints []model.Complaint
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}
