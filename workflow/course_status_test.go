package workflow

import (
	"testing"

	course "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []string{
	course.StatusDraft,
	course.StatusPending,
	course.StatusPublished,
	course.StatusPendingUnpublish,
	course.StatusRejected,
}

func TestTransitionLegality(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	instructor := seedUser(t, db, "instructor")
	seedCategory(t, db, "programming")

	legal := map[[2]string]bool{
		{course.StatusDraft, course.StatusPending}:              true,
		{course.StatusRejected, course.StatusPending}:           true,
		{course.StatusPending, course.StatusPublished}:          true,
		{course.StatusPending, course.StatusRejected}:           true,
		{course.StatusPublished, course.StatusPendingUnpublish}: true,
		{course.StatusPendingUnpublish, course.StatusPublished}: true,
		{course.StatusPendingUnpublish, course.StatusDraft}:     true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			from, to := from, to
			t.Run(from+"_to_"+to, func(t *testing.T) {
				crs := seedCourse(t, db, instructor.ID, from, "programming")
				_, err := TransitionCourse(db, asActor(admin), crs.ID, to, "because")
				if legal[[2]string{from, to}] {
					assert.NoError(t, err)
					return
				}
				assert.ErrorIs(t, err, ErrInvalidTransition)

				var unchanged course.Course
				require.NoError(t, db.First(&unchanged, crs.ID).Error)
				assert.Equal(t, from, unchanged.Status)
			})
		}
	}
}

func TestTransitionErrorNamesStates(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	instructor := seedUser(t, db, "instructor")
	seedCategory(t, db, "programming")
	crs := seedCourse(t, db, instructor.ID, course.StatusPending, "programming")

	_, err := TransitionCourse(db, asActor(admin), crs.ID, course.StatusDraft, "")
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "pending")
	assert.Contains(t, err.Error(), "draft")
}

func TestRejectRequiresReason(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	instructor := seedUser(t, db, "instructor")
	seedCategory(t, db, "programming")

	crs := seedCourse(t, db, instructor.ID, course.StatusPending, "programming")

	_, err := TransitionCourse(db, asActor(admin), crs.ID, course.StatusRejected, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = TransitionCourse(db, asActor(admin), crs.ID, course.StatusRejected, "   \t ")
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := TransitionCourse(db, asActor(admin), crs.ID, course.StatusRejected, "  too thin on content  ")
	require.NoError(t, err)
	assert.Equal(t, course.StatusRejected, updated.Status)
	assert.Equal(t, "too thin on content", updated.RejectionReason)
}

func TestResubmitClearsRejectionReason(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	instructor := seedUser(t, db, "instructor")
	seedCategory(t, db, "programming")

	crs := seedCourse(t, db, instructor.ID, course.StatusPending, "programming")
	_, err := TransitionCourse(db, asActor(admin), crs.ID, course.StatusRejected, "needs work")
	require.NoError(t, err)

	updated, err := SubmitCourseForReview(db, asActor(instructor), crs.ID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusPending, updated.Status)
	assert.Empty(t, updated.RejectionReason)

	var stored course.Course
	require.NoError(t, db.First(&stored, crs.ID).Error)
	assert.Empty(t, stored.RejectionReason)
}

func TestTransitionAuthorization(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	otherInstructor := seedUser(t, db, "instructor")
	student := seedUser(t, db, "student")
	seedCategory(t, db, "programming")

	crs := seedCourse(t, db, instructor.ID, course.StatusDraft, "programming")

	// only the owner (or an admin) may submit for review
	_, err := SubmitCourseForReview(db, asActor(otherInstructor), crs.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = SubmitCourseForReview(db, asActor(student), crs.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = SubmitCourseForReview(db, asActor(instructor), crs.ID)
	require.NoError(t, err)

	// approval is admin-only, even for the owner
	_, err = TransitionCourse(db, asActor(instructor), crs.ID, course.StatusPublished, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestModerationActivityEmitted(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	instructor := seedUser(t, db, "instructor")
	seedCategory(t, db, "programming")

	crs := seedCourse(t, db, instructor.ID, course.StatusPending, "programming")
	_, err := TransitionCourse(db, asActor(admin), crs.ID, course.StatusPublished, "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, countActivities(t, db, "course_approved"))

	crs2 := seedCourse(t, db, instructor.ID, course.StatusPending, "programming")
	_, err = TransitionCourse(db, asActor(admin), crs2.ID, course.StatusRejected, "low quality")
	require.NoError(t, err)
	assert.EqualValues(t, 1, countActivities(t, db, "course_rejected"))
}

func TestToggleFeatured(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	instructor := seedUser(t, db, "instructor")
	seedCategory(t, db, "programming")

	crs := seedCourse(t, db, instructor.ID, course.StatusDraft, "programming")

	_, err := ToggleFeatured(db, asActor(instructor), crs.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// featured is independent of moderation status
	updated, err := ToggleFeatured(db, asActor(admin), crs.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsFeatured)

	updated, err = ToggleFeatured(db, asActor(admin), crs.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsFeatured)
}
