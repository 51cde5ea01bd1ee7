package model

import "time"

// Comment represents a user comment left on an ad.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"size:2048"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id" gorm:"index"`
	AdID      uint      `json:"ad_id" gorm:"index"`
}
