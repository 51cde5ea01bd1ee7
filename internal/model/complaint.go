package model

import "time"

// Complaint represents a complaint filed against an ad. One complaint per
// (author, ad) pair, enforced by the composite unique index.
type Complaint struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ForAd     uint      `json:"for_ad" gorm:"uniqueIndex:idx_complaint_author_ad"`
	Author    uint      `json:"author" gorm:"uniqueIndex:idx_complaint_author_ad"`
	Text      string    `json:"text" gorm:"size:2048"`
	CreatedAt time.Time `json:"created_at"`
}
