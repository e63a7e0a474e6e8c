package workflow

import (
	"fmt"
	"sync/atomic"
	"testing"

	"coursehub/models"
	course "coursehub/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh shared-cache in-memory database. cache=shared keeps
// the schema alive across pooled connections; the busy timeout lets the
// concurrency tests serialize on SQLite's single writer instead of failing.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:workflow_test_%d?mode=memory&cache=shared&_busy_timeout=5000", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Activity{},
		&course.Course{},
		&course.Section{},
		&course.Lesson{},
		&course.Enrollment{},
		&course.Transaction{},
		&course.Review{},
	))
	return db
}

var userSeq atomic.Int64

func seedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	n := userSeq.Add(1)
	user := models.User{
		Name:     fmt.Sprintf("%s %d", role, n),
		Email:    fmt.Sprintf("%s%d@example.com", role, n),
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	cat := models.Category{Name: name}
	require.NoError(t, db.Create(&cat).Error)
	return cat
}

func seedCourse(t *testing.T, db *gorm.DB, instructorID uint, status, category string) course.Course {
	t.Helper()
	crs := course.Course{
		InstructorID: instructorID,
		Title:        "Go from Scratch",
		Price:        49.99,
		Category:     category,
		Level:        course.LevelBeginner,
		Status:       status,
	}
	require.NoError(t, db.Create(&crs).Error)
	return crs
}

// seedLessons creates one section holding n lessons and returns them in order.
func seedLessons(t *testing.T, db *gorm.DB, courseID uint, n int) []course.Lesson {
	t.Helper()
	section := course.Section{CourseID: courseID, Title: "Basics", OrderIndex: 0}
	require.NoError(t, db.Create(&section).Error)
	lessons := make([]course.Lesson, n)
	for i := 0; i < n; i++ {
		lessons[i] = course.Lesson{
			CourseID:   courseID,
			SectionID:  section.ID,
			Title:      fmt.Sprintf("Lesson %d", i+1),
			Duration:   10,
			OrderIndex: i,
		}
		require.NoError(t, db.Create(&lessons[i]).Error)
	}
	return lessons
}

func seedActiveEnrollment(t *testing.T, db *gorm.DB, userID, courseID uint) course.Enrollment {
	t.Helper()
	e := course.Enrollment{UserID: userID, CourseID: courseID, Status: course.EnrollmentActive}
	e.SetCompleted(nil)
	require.NoError(t, db.Create(&e).Error)
	return e
}

func asActor(u models.User) Actor { return Actor{ID: u.ID, Role: u.Role} }

func countActivities(t *testing.T, db *gorm.DB, activityType string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Activity{}).Where("type = ?", activityType).Count(&n).Error)
	return n
}
