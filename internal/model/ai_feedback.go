package model

import "time"

// AIFeedback flags an AI-generated item as incorrect. Records are append-only.
type AIFeedback struct {
	ID         int64
	ListItemID int64
	UserID     string
	CreatedAt  time.Time
}
