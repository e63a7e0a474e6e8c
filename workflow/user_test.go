package workflow

import (
	"testing"

	"coursehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, "Ada Lovelace", "ADA@Example.com ", "hashed", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.EqualValues(t, 1, countActivities(t, db, models.ActivitySignup))

	// duplicate email
	_, err = RegisterUser(db, "Ada Again", "ada@example.com", "hashed", "", "")
	assert.ErrorIs(t, err, ErrConflict)

	// admin cannot be self-assigned
	_, err = RegisterUser(db, "Eve", "eve@example.com", "hashed", models.RoleAdmin, "")
	assert.ErrorIs(t, err, ErrValidation)

	instructor, err := RegisterUser(db, "Grace Hopper", "grace@example.com", "hashed", models.RoleInstructor, "compilers")
	require.NoError(t, err)
	assert.Equal(t, models.RoleInstructor, instructor.Role)
	assert.Equal(t, "compilers", instructor.Bio)
}
