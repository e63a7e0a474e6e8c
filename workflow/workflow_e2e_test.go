package workflow

import (
	"testing"

	course "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullCourseLifecycle walks the whole marketplace flow: authoring,
// moderation, enrollment, completion, review and the unpublish round trip.
func TestFullCourseLifecycle(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	instructor := seedUser(t, db, "instructor")
	student := seedUser(t, db, "student")
	seedCategory(t, db, "programming")

	crs, err := CreateCourse(db, asActor(instructor), CourseInput{
		Title:    "Production Go",
		Price:    79,
		Category: "programming",
		Level:    course.LevelIntermediate,
	})
	require.NoError(t, err)
	assert.Equal(t, course.StatusDraft, crs.Status)
	assert.EqualValues(t, 1, countActivities(t, db, "course_created"))

	section, err := AddSection(db, asActor(instructor), crs.ID, "Fundamentals", 0)
	require.NoError(t, err)
	var lessons []course.Lesson
	for i, title := range []string{"Tooling", "Testing", "Deployment"} {
		lesson, err := AddLesson(db, asActor(instructor), crs.ID, section.ID, LessonInput{
			Title: title, Duration: 15, OrderIndex: i,
		})
		require.NoError(t, err)
		lessons = append(lessons, *lesson)
	}

	_, err = SubmitCourseForReview(db, asActor(instructor), crs.ID)
	require.NoError(t, err)

	published, err := TransitionCourse(db, asActor(admin), crs.ID, course.StatusPublished, "")
	require.NoError(t, err)
	assert.Equal(t, course.StatusPublished, published.Status)
	assert.EqualValues(t, 1, countActivities(t, db, "course_approved"))

	enrollment, err := EnrollDirect(db, asActor(student), crs.ID)
	require.NoError(t, err)
	assert.Equal(t, course.EnrollmentActive, enrollment.Status)

	var stored course.Course
	require.NoError(t, db.First(&stored, crs.ID).Error)
	assert.Equal(t, 1, stored.Students)

	completeAllLessons(t, db, asActor(student), crs.ID, lessons)
	progress, err := GetProgress(db, asActor(student), crs.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, progress.Progress)

	_, err = UpsertReview(db, asActor(student), crs.ID, 5, "worth it")
	require.NoError(t, err)
	require.NoError(t, db.First(&stored, crs.ID).Error)
	assert.Equal(t, 5.0, stored.Rating)
	assert.Equal(t, 1, stored.ReviewCount)

	// the instructor asks to take the course down
	_, err = RequestUnpublish(db, asActor(instructor), crs.ID)
	require.NoError(t, err)

	// enrollment stays open while the request is pending
	other := seedUser(t, db, "student")
	_, err = EnrollDirect(db, asActor(other), crs.ID)
	require.NoError(t, err)

	// the admin declines the unpublish request
	back, err := TransitionCourse(db, asActor(admin), crs.ID, course.StatusPublished, "still popular")
	require.NoError(t, err)
	assert.Equal(t, course.StatusPublished, back.Status)
	assert.EqualValues(t, 1, countActivities(t, db, "course_rejected"))

	require.NoError(t, db.First(&stored, crs.ID).Error)
	assert.Equal(t, 2, stored.Students)
}
