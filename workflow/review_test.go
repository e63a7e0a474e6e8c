package workflow

import (
	"testing"

	course "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func completeAllLessons(t *testing.T, db *gorm.DB, actor Actor, courseID uint, lessons []course.Lesson) {
	t.Helper()
	for _, lesson := range lessons {
		_, err := UpdateLessonCompletion(db, actor, courseID, lesson.ID, true)
		require.NoError(t, err)
	}
}

func TestReviewGatedOnCompletion(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	student := seedUser(t, db, "student")
	seedCategory(t, db, "programming")
	crs := seedCourse(t, db, instructor.ID, course.StatusPublished, "programming")
	lessons := seedLessons(t, db, crs.ID, 4)
	seedActiveEnrollment(t, db, student.ID, crs.ID)

	// 3 of 4 lessons: progress 75, review refused
	for _, lesson := range lessons[:3] {
		_, err := UpdateLessonCompletion(db, asActor(student), crs.ID, lesson.ID, true)
		require.NoError(t, err)
	}
	_, err := UpsertReview(db, asActor(student), crs.ID, 5, "great")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = UpdateLessonCompletion(db, asActor(student), crs.ID, lessons[3].ID, true)
	require.NoError(t, err)

	review, err := UpsertReview(db, asActor(student), crs.ID, 5, "great")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	var stored course.Course
	require.NoError(t, db.First(&stored, crs.ID).Error)
	assert.Equal(t, 5.0, stored.Rating)
	assert.Equal(t, 1, stored.ReviewCount)
	assert.EqualValues(t, 1, countActivities(t, db, "review"))
}

func TestReviewRequiresActiveEnrollment(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	pendingStudent := seedUser(t, db, "student")
	outsider := seedUser(t, db, "student")
	seedCategory(t, db, "programming")
	crs := seedCourse(t, db, instructor.ID, course.StatusPublished, "programming")
	seedLessons(t, db, crs.ID, 2)

	pending := course.Enrollment{UserID: pendingStudent.ID, CourseID: crs.ID, Status: course.EnrollmentPending}
	pending.SetCompleted(nil)
	require.NoError(t, db.Create(&pending).Error)

	_, err := UpsertReview(db, asActor(pendingStudent), crs.ID, 4, "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = UpsertReview(db, asActor(outsider), crs.ID, 4, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReviewRatingRange(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	student := seedUser(t, db, "student")
	seedCategory(t, db, "programming")
	crs := seedCourse(t, db, instructor.ID, course.StatusPublished, "programming")

	_, err := UpsertReview(db, asActor(student), crs.ID, 0, "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = UpsertReview(db, asActor(student), crs.ID, 6, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReviewAggregatesAndUpserts(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	alice := seedUser(t, db, "student")
	bob := seedUser(t, db, "student")
	seedCategory(t, db, "programming")
	crs := seedCourse(t, db, instructor.ID, course.StatusPublished, "programming")
	lessons := seedLessons(t, db, crs.ID, 2)

	for _, student := range []uint{alice.ID, bob.ID} {
		seedActiveEnrollment(t, db, student, crs.ID)
		completeAllLessons(t, db, Actor{ID: student, Role: "student"}, crs.ID, lessons)
	}

	_, err := UpsertReview(db, asActor(alice), crs.ID, 4, "solid")
	require.NoError(t, err)
	_, err = UpsertReview(db, asActor(bob), crs.ID, 5, "excellent")
	require.NoError(t, err)

	var stored course.Course
	require.NoError(t, db.First(&stored, crs.ID).Error)
	assert.InDelta(t, 4.5, stored.Rating, 0.001)
	assert.Equal(t, 2, stored.ReviewCount)

	// a second submission updates in place, it does not add a row
	_, err = UpsertReview(db, asActor(alice), crs.ID, 2, "changed my mind")
	require.NoError(t, err)

	var reviews int64
	require.NoError(t, db.Model(&course.Review{}).Where("course_id = ?", crs.ID).Count(&reviews).Error)
	assert.EqualValues(t, 2, reviews)

	require.NoError(t, db.First(&stored, crs.ID).Error)
	assert.InDelta(t, 3.5, stored.Rating, 0.001)
	assert.Equal(t, 2, stored.ReviewCount)
}
