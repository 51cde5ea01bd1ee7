package model

import "time"

const (
	// RatingMin and RatingMax bound the accepted review rating.
	RatingMin = 1
	RatingMax = 5
)

// Review represents a rated review of an ad. A user may review a given ad
// at most once; the composite unique index backstops concurrent submissions.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"size:2048"`
	Rating    int       `json:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_review_user_ad"`
	AdID      uint      `json:"ad_id" gorm:"uniqueIndex:idx_review_user_ad"`
}
