package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/OlegMusatov3000/BlitzMarket/internal/cache"
	apperrors "github.com/OlegMusatov3000/BlitzMarket/internal/errors"
	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/pagination"
	"github.com/OlegMusatov3000/BlitzMarket/internal/policy"
	"github.com/OlegMusatov3000/BlitzMarket/internal/repository"
)

const adCacheTTL = 5 * time.Minute

// AdService handles ad operations.
type AdService interface {
	Create(ctx context.Context, p policy.Principal, title, description string, price decimal.Decimal, adType model.AdType) (*model.Ad, error)
	Get(ctx context.Context, id uint) (*model.Ad, error)
	List(ctx context.Context, adType *model.AdType, page pagination.Params) ([]model.Ad, error)
	Move(ctx context.Context, p policy.Principal, id uint, adType model.AdType) (*model.Ad, error)
	Delete(ctx context.Context, p policy.Principal, id uint) error
}

type adService struct {
	repo  repository.AdRepository
	cache *cache.Client
}

// NewAdService creates a new ad service.
func NewAdService(repo repository.AdRepository, cache *cache.Client) AdService {
	return &adService{repo: repo, cache: cache}
}

func (s *adService) cacheKey(id uint) string {
	return fmt.Sprintf("ad:%d", id)
}

// Create places a new ad owned by the principal.
func (s *adService) Create(ctx context.Context, p policy.Principal, title, description string, price decimal.Decimal, adType model.AdType) (*model.Ad, error) {
	if d := policy.CanCreateAd(p); !d.Allowed {
		return nil, denyError(d, apperrors.ErrAdNotFound, nil)
	}
	if !adType.Valid() {
		return nil, apperrors.ErrInvalidAdType
	}

	ad := &model.Ad{
		Title:       title,
		Description: description,
		Price:       price,
		Type:        adType,
		UserID:      p.ID,
	}
	if err := s.repo.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	return ad, nil
}

// Get retrieves an ad by ID with cache-aside reads. A missing ad yields
// (nil, nil): the detail endpoint answers 200 with null data.
func (s *adService) Get(ctx context.Context, id uint) (*model.Ad, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Ad
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find ad: %w", err)
	}

	if payload, err := json.Marshal(ad); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, adCacheTTL)
	}
	return ad, nil
}

// List returns a page of ads, optionally filtered by type.
func (s *adService) List(ctx context.Context, adType *model.AdType, page pagination.Params) ([]model.Ad, error) {
	if adType != nil && !adType.Valid() {
		return nil, apperrors.ErrInvalidAdType
	}
	return s.repo.List(ctx, adType, page)
}

// Move reassigns the ad type. Admin only.
func (s *adService) Move(ctx context.Context, p policy.Principal, id uint, adType model.AdType) (*model.Ad, error) {
	if d := policy.CanModerateAd(p); !d.Allowed {
		return nil, denyError(d, apperrors.ErrAdNotFound, nil)
	}
	if !adType.Valid() {
		return nil, apperrors.ErrInvalidAdType
	}

	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, fmt.Errorf("find ad: %w", err)
	}

	ad.Type = adType
	if err := s.repo.Update(ctx, ad); err != nil {
		return nil, fmt.Errorf("update ad: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return ad, nil
}

// Delete removes an ad. Owner only; admins get no override.
func (s *adService) Delete(ctx context.Context, p policy.Principal, id uint) error {
	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAdNotFound
		}
		return fmt.Errorf("find ad: %w", err)
	}

	if d := policy.CanDeleteAd(p, ad); !d.Allowed {
		return denyError(d, apperrors.ErrAdNotFound, nil)
	}

	if err := s.repo.Delete(ctx, ad); err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
