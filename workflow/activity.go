package workflow

import (
	"coursehub/models"

	"gorm.io/gorm"
)

// recordActivity appends an audit record inside the same unit as the
// transition it describes. There is deliberately no exported write API:
// callers cannot fabricate audit entries detached from a real transition.
func recordActivity(tx *gorm.DB, activityType, message string, userID, courseID *uint) error {
	return tx.Create(&models.Activity{
		Type:     activityType,
		Message:  message,
		UserID:   userID,
		CourseID: courseID,
	}).Error
}

// ActivityFeed returns the newest activity records, optionally filtered by
// type tags.
func ActivityFeed(db *gorm.DB, limit int, types ...string) ([]models.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q := db.Model(&models.Activity{}).Order("created_at desc").Limit(limit)
	if len(types) > 0 {
		q = q.Where("type IN ?", types)
	}
	var feed []models.Activity
	if err := q.Find(&feed).Error; err != nil {
		return nil, err
	}
	return feed, nil
}

func ref(v uint) *uint { return &v }
