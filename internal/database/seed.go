package database

import (
	"time"

	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedActivity struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

var initialActivities = map[string]seedActivity{
	"Chess Club": {
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	"Programming Class": {
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	"Gym Class": {
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	"Soccer Team": {
		Description:     "Join the school soccer team and compete in matches",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 22,
		Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
	},
	"Basketball Team": {
		Description:     "Practice and play basketball with the school team",
		Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
	},
	"Art Club": {
		Description:     "Explore your creativity through painting and drawing",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
	},
	"Drama Club": {
		Description:     "Act, direct, and produce plays and performances",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
	},
	"Math Club": {
		Description:     "Solve challenging problems and participate in math competitions",
		Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 10,
		Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
	},
	"Debate Team": {
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 12,
		Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
	},
	"GitHub Skills": {
		Description:     "Learn practical coding and collaboration skills with GitHub. Part of the GitHub Certifications program to help with college applications",
		Schedule:        "Mondays and Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 25,
		Participants:    []string{},
	},
	"Rock Climbing": {
		Description:     "Learn climbing techniques, safety, and challenge yourself on indoor climbing walls",
		Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
		MaxParticipants: 15,
		Participants:    []string{},
	},
	"Hiking": {
		Description:     "Explore local trails, build endurance, and enjoy nature with guided hiking trips",
		Schedule:        "Saturdays, 9:00 AM - 1:00 PM",
		MaxParticipants: 20,
		Participants:    []string{},
	},
}

type seedUser struct {
	Username string
	Email    string
	Password string
	Role     string
}

var initialUsers = []seedUser{
	{Username: "prof.martin", Email: "martin@mergington.edu", Password: "teacher123", Role: models.RoleTeacher},
	{Username: "prof.smith", Email: "smith@mergington.edu", Password: "teacher123", Role: models.RoleTeacher},
	{Username: "michael", Email: "michael@mergington.edu", Password: "student123", Role: models.RoleStudent},
	{Username: "emma", Email: "emma@mergington.edu", Password: "student123", Role: models.RoleStudent},
	{Username: "john", Email: "john@mergington.edu", Password: "student123", Role: models.RoleStudent},
}

// Seed loads the initial activities and users. It is a no-op when the
// tables already contain rows, so it is safe to run on every start.
func Seed(db *gorm.DB, log *zap.Logger) error {
	if err := seedActivities(db, log); err != nil {
		return err
	}
	return seedUsers(db, log)
}

func seedActivities(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Activity{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug("activities already seeded", zap.Int64("count", count))
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for name, data := range initialActivities {
			activity := models.Activity{
				Name:            name,
				Description:     data.Description,
				Schedule:        data.Schedule,
				MaxParticipants: data.MaxParticipants,
			}
			if err := tx.Create(&activity).Error; err != nil {
				return err
			}
			for _, email := range data.Participants {
				participant := models.Participant{
					ActivityID: activity.ID,
					Email:      email,
					EnrolledAt: time.Now(),
				}
				if err := tx.Create(&participant).Error; err != nil {
					return err
				}
			}
			log.Info("seeded activity", zap.String("name", name), zap.Int("participants", len(data.Participants)))
		}
		return nil
	})
}

func seedUsers(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug("users already seeded", zap.Int64("count", count))
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range initialUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := models.User{
				Username:     u.Username,
				Email:        u.Email,
				PasswordHash: string(hash),
				Role:         u.Role,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			log.Info("seeded user", zap.String("username", u.Username), zap.String("role", u.Role))
		}
		return nil
	})
}
