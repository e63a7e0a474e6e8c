package workflow

import (
	"testing"

	"coursehub/models"
	course "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	student := seedUser(t, db, "student")

	_, err := CreateCategory(db, asActor(student), "design", "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = CreateCategory(db, asActor(admin), "  ", "")
	assert.ErrorIs(t, err, ErrValidation)

	cat, err := CreateCategory(db, asActor(admin), "design", "visual design courses")
	require.NoError(t, err)
	assert.Equal(t, "design", cat.Name)

	_, err = CreateCategory(db, asActor(admin), "design", "")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRenameCategoryPropagates(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	instructor := seedUser(t, db, "instructor")
	cat := seedCategory(t, db, "programming")
	seedCategory(t, db, "design")

	const n = 3
	for i := 0; i < n; i++ {
		seedCourse(t, db, instructor.ID, course.StatusPublished, "programming")
	}
	seedCourse(t, db, instructor.ID, course.StatusPublished, "design")

	renamed, err := RenameCategory(db, asActor(admin), cat.ID, "software engineering")
	require.NoError(t, err)
	assert.Equal(t, "software engineering", renamed.Name)

	var moved int64
	require.NoError(t, db.Model(&course.Course{}).
		Where("category = ?", "software engineering").Count(&moved).Error)
	assert.EqualValues(t, n, moved)

	// the old name matches zero courses afterwards
	var stale int64
	require.NoError(t, db.Model(&course.Course{}).
		Where("category = ?", "programming").Count(&stale).Error)
	assert.Zero(t, stale)

	// unrelated categories untouched
	var design int64
	require.NoError(t, db.Model(&course.Course{}).
		Where("category = ?", "design").Count(&design).Error)
	assert.EqualValues(t, 1, design)
}

func TestRenameCategoryDuplicateName(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	cat := seedCategory(t, db, "programming")
	seedCategory(t, db, "design")

	_, err := RenameCategory(db, asActor(admin), cat.ID, "design")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteCategoryGuard(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin")
	instructor := seedUser(t, db, "instructor")
	used := seedCategory(t, db, "programming")
	empty := seedCategory(t, db, "philosophy")

	seedCourse(t, db, instructor.ID, course.StatusDraft, "programming")

	err := DeleteCategory(db, asActor(admin), used.ID)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, DeleteCategory(db, asActor(admin), empty.ID))

	var remaining int64
	require.NoError(t, db.Model(&models.Category{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}

func TestCourseLifecycleKeepsCategoryCount(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")
	prog := seedCategory(t, db, "programming")
	design := seedCategory(t, db, "design")

	crs, err := CreateCourse(db, asActor(instructor), CourseInput{
		Title:    "Intro to Go",
		Category: "programming",
	})
	require.NoError(t, err)

	var stored models.Category
	require.NoError(t, db.First(&stored, prog.ID).Error)
	assert.Equal(t, 1, stored.CourseCount)

	// moving the course between categories moves the counter
	newCat := "design"
	_, err = UpdateCourse(db, asActor(instructor), crs.ID, CourseUpdate{Category: &newCat})
	require.NoError(t, err)

	stored = models.Category{}
	require.NoError(t, db.First(&stored, prog.ID).Error)
	assert.Zero(t, stored.CourseCount)
	stored = models.Category{}
	require.NoError(t, db.First(&stored, design.ID).Error)
	assert.Equal(t, 1, stored.CourseCount)

	require.NoError(t, DeleteCourse(db, asActor(instructor), crs.ID))
	stored = models.Category{}
	require.NoError(t, db.First(&stored, design.ID).Error)
	assert.Zero(t, stored.CourseCount)
}

func TestCreateCourseUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	instructor := seedUser(t, db, "instructor")

	_, err := CreateCourse(db, asActor(instructor), CourseInput{
		Title:    "Orphan",
		Category: "does-not-exist",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
