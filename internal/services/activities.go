package services

import (
	"errors"
	"time"

	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrActivityFull     = errors.New("activity is full")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// List returns all activities with their participants in enrollment order.
func (s *ActivityService) List() ([]models.Activity, error) {
	var activities []models.Activity
	err := s.db.
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("participants.id ASC")
		}).
		Order("activities.id ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// Signup enrolls email in the named activity. The duplicate and capacity
// checks run in one transaction holding a row lock on the activity, so
// concurrent signups against the same activity cannot both pass the
// capacity check and overfill it.
func (s *ActivityService) Signup(name, email string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		activity, err := lockActivity(tx, name)
		if err != nil {
			return err
		}

		var existing models.Participant
		err = tx.Where("activity_id = ? AND email = ?", activity.ID, email).
			First(&existing).Error
		if err == nil {
			return ErrAlreadySignedUp
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var count int64
		if err := tx.Model(&models.Participant{}).
			Where("activity_id = ?", activity.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(activity.MaxParticipants) {
			return ErrActivityFull
		}

		participant := models.Participant{
			ActivityID: activity.ID,
			Email:      email,
			EnrolledAt: time.Now(),
		}
		return tx.Create(&participant).Error
	})
}

// Unregister removes email's enrollment from the named activity.
func (s *ActivityService) Unregister(name, email string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		activity, err := lockActivity(tx, name)
		if err != nil {
			return err
		}

		res := tx.Where("activity_id = ? AND email = ?", activity.ID, email).
			Delete(&models.Participant{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotSignedUp
		}
		return nil
	})
}

func lockActivity(tx *gorm.DB, name string) (*models.Activity, error) {
	// sqlite has no row locks; its single-writer transactions already
	// serialize signups against the same activity.
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var activity models.Activity
	if err := tx.Where("name = ?", name).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}
