package models

import "time"

// Participant is one enrollment of a student email in an activity.
// The composite unique index backs the one-enrollment-per-activity rule.
type Participant struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActivityID uint      `gorm:"not null;uniqueIndex:idx_activity_email" json:"activity_id"`
	Email      string    `gorm:"size:255;not null;uniqueIndex:idx_activity_email" json:"email"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
