package workflow

import (
	"coursehub/models"
	course "coursehub/models/course"
)

// Actor is the trusted (userId, role) pair supplied by the identity layer.
// A zero Actor represents an unauthenticated caller.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool      { return a.Role == models.RoleAdmin }
func (a Actor) IsInstructor() bool { return a.Role == models.RoleInstructor }

// Capability predicates. Every entry point goes through one of these instead
// of re-checking roles inline.

// CanEditCourse allows content edits by the owning instructor or an admin.
func CanEditCourse(actor Actor, c *course.Course) bool {
	return actor.IsAdmin() || (actor.IsInstructor() && c.InstructorID == actor.ID)
}

// CanTransitionCourse decides who may move a course toward the target status.
// Submitting for review and requesting an unpublish belong to the owner (or an
// admin); every other moderation outcome is admin-only.
func CanTransitionCourse(actor Actor, c *course.Course, target string) bool {
	switch target {
	case course.StatusPending, course.StatusPendingUnpublish:
		return actor.IsAdmin() || c.InstructorID == actor.ID
	case course.StatusPublished, course.StatusRejected, course.StatusDraft:
		return actor.IsAdmin()
	}
	return false
}

func CanResolveEnrollment(actor Actor) bool { return actor.IsAdmin() }

func CanManageCategories(actor Actor) bool { return actor.IsAdmin() }

// CanViewCourse gates course detail reads: published and pending_unpublish
// courses are public, everything else is owner/admin only.
func CanViewCourse(actor Actor, c *course.Course) bool {
	if c.PubliclyVisible() {
		return true
	}
	return actor.IsAdmin() || (actor.ID != 0 && c.InstructorID == actor.ID)
}
