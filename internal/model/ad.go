package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdType represents the kind of listing an ad is.
type AdType string

const (
	AdTypeSale     AdType = "sale"
	AdTypePurchase AdType = "purchase"
	AdTypeService  AdType = "service"
)

// Valid reports whether t is one of the known ad types.
func (t AdType) Valid() bool {
	switch t {
	case AdTypeSale, AdTypePurchase, AdTypeService:
		return true
	}
	return false
}

// Ad represents a classified ad placed by a user.
type Ad struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"size:255;index"`
	Description string          `json:"description" gorm:"size:2048"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2)"`
	Type        AdType          `json:"type" gorm:"type:varchar(20);index"`
	CreatedAt   time.Time       `json:"created_at"`
	UserID      uint            `json:"user_id" gorm:"index"`

	// Relations
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AdID"`
}
