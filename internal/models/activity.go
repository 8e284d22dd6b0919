package models

import "time"

type Activity struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Name            string        `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description     string        `gorm:"size:1000" json:"description"`
	Schedule        string        `gorm:"size:200" json:"schedule"`
	MaxParticipants int           `gorm:"not null" json:"max_participants"`
	Participants    []Participant `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
