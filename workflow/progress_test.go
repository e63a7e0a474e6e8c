package workflow

import (
	"testing"

	course "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 4, 0},
		{1, 4, 25},
		{2, 4, 50},
		{4, 4, 100},
		{1, 3, 33},
		{2, 3, 67},
		{7, 4, 100}, // clamped
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Percentage(tc.completed, tc.total),
			"Percentage(%d, %d)", tc.completed, tc.total)
	}
}

func TestToggleCompletion(t *testing.T) {
	set := map[uint]bool{1: true, 2: true}

	next := ToggleCompletion(set, 3, true)
	assert.Len(t, next, 3)
	assert.Len(t, set, 2, "input set must not be mutated")

	next = ToggleCompletion(next, 3, true) // idempotent add
	assert.Len(t, next, 3)

	next = ToggleCompletion(next, 2, false)
	assert.Len(t, next, 2)
	assert.False(t, next[2])
}

func TestLessonToggleRecomputesProgress(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	student := seedUser(t, db, "student")
	seedCategory(t, db, "programming")
	crs := seedCourse(t, db, instructor.ID, course.StatusPublished, "programming")
	lessons := seedLessons(t, db, crs.ID, 4)
	seedActiveEnrollment(t, db, student.ID, crs.ID)

	e, err := UpdateLessonCompletion(db, asActor(student), crs.ID, lessons[0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 25, e.Progress)

	e, err = UpdateLessonCompletion(db, asActor(student), crs.ID, lessons[2].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 50, e.Progress)

	e, err = UpdateLessonCompletion(db, asActor(student), crs.ID, lessons[2].ID, false)
	require.NoError(t, err)
	assert.Equal(t, 25, e.Progress)

	// unknown lesson id is rejected and progress is untouched
	_, err = UpdateLessonCompletion(db, asActor(student), crs.ID, 99999, true)
	assert.ErrorIs(t, err, ErrValidation)

	var stored course.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", student.ID, crs.ID).
		First(&stored).Error)
	assert.Equal(t, 25, stored.Progress)
}

func TestStaleLessonIDsPruned(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	student := seedUser(t, db, "student")
	seedCategory(t, db, "programming")
	crs := seedCourse(t, db, instructor.ID, course.StatusPublished, "programming")
	lessons := seedLessons(t, db, crs.ID, 4)
	seedActiveEnrollment(t, db, student.ID, crs.ID)

	_, err := UpdateLessonCompletion(db, asActor(student), crs.ID, lessons[0].ID, true)
	require.NoError(t, err)
	e, err := UpdateLessonCompletion(db, asActor(student), crs.ID, lessons[1].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 50, e.Progress)

	// the instructor deletes a completed lesson; the stale id must not count
	// toward either side of the ratio
	require.NoError(t, DeleteLesson(db, asActor(instructor), crs.ID, lessons[1].ID))

	e, err = GetProgress(db, asActor(student), crs.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, e.Progress) // 1 of 3 remaining lessons

	// the next write prunes the stored set
	e, err = UpdateLessonCompletion(db, asActor(student), crs.ID, lessons[2].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 67, e.Progress)
	set := e.CompletedSet()
	assert.Len(t, set, 2)
	assert.False(t, set[lessons[1].ID])
}

func TestLessonToggleRequiresActiveEnrollment(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	student := seedUser(t, db, "student")
	outsider := seedUser(t, db, "student")
	seedCategory(t, db, "programming")
	crs := seedCourse(t, db, instructor.ID, course.StatusPublished, "programming")
	lessons := seedLessons(t, db, crs.ID, 2)

	pending := course.Enrollment{UserID: student.ID, CourseID: crs.ID, Status: course.EnrollmentPending}
	pending.SetCompleted(nil)
	require.NoError(t, db.Create(&pending).Error)

	_, err := UpdateLessonCompletion(db, asActor(student), crs.ID, lessons[0].ID, true)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = UpdateLessonCompletion(db, asActor(outsider), crs.ID, lessons[0].ID, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLessonIDsOrdered(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	seedCategory(t, db, "programming")
	crs := seedCourse(t, db, instructor.ID, course.StatusDraft, "programming")

	// two sections created out of display order
	late := course.Section{CourseID: crs.ID, Title: "Advanced", OrderIndex: 1}
	require.NoError(t, db.Create(&late).Error)
	early := course.Section{CourseID: crs.ID, Title: "Intro", OrderIndex: 0}
	require.NoError(t, db.Create(&early).Error)

	l1 := course.Lesson{CourseID: crs.ID, SectionID: late.ID, Title: "Deep dive", OrderIndex: 0}
	require.NoError(t, db.Create(&l1).Error)
	l2 := course.Lesson{CourseID: crs.ID, SectionID: early.ID, Title: "Welcome", OrderIndex: 0}
	require.NoError(t, db.Create(&l2).Error)
	l3 := course.Lesson{CourseID: crs.ID, SectionID: early.ID, Title: "Setup", OrderIndex: 1}
	require.NoError(t, db.Create(&l3).Error)

	ids, err := LessonIDs(db, crs.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{l2.ID, l3.ID, l1.ID}, ids)
}
