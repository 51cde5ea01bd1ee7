package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/pagination"
)

// AdRepository defines ad persistence operations.
type AdRepository interface {
	Create(ctx context.Context, ad *model.Ad) error
	Update(ctx context.Context, ad *model.Ad) error
	Delete(ctx context.Context, ad *model.Ad) error
	FindByID(ctx context.Context, id uint) (*model.Ad, error)
	List(ctx context.Context, adType *model.AdType, page pagination.Params) ([]model.Ad, error)
}

type adRepository struct {
	db *gorm.DB
}

// NewAdRepository creates a new ad repository.
func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

// Create creates a new ad.
func (r *adRepository) Create(ctx context.Context, ad *model.Ad) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

// Update updates an existing ad.
func (r *adRepository) Update(ctx context.Context, ad *model.Ad) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

// Delete removes an ad.
func (r *adRepository) Delete(ctx context.Context, ad *model.Ad) error {
	return r.db.WithContext(ctx).Delete(ad).Error
}

// FindByID finds an ad by ID.
func (r *adRepository) FindByID(ctx context.Context, id uint) (*model.Ad, error) {
	var ad model.Ad
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ad).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

// List returns a page of ads, newest first, optionally filtered by type.
func (r *adRepository) List(ctx context.Context, adType *model.AdType, page pagination.Params) ([]model.Ad, error) {
	var ads []model.Ad
	q := r.db.WithContext(ctx).Model(&model.Ad{})
	if adType != nil {
		q = q.Where("type = ?", *adType)
	}
	err := q.Order("created_at DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}
