package workflow

import (
	"strings"
	"time"

	"coursehub/models"

	"gorm.io/gorm"
)

// RegisterUser creates an account together with its signup audit record.
// The password must already be hashed by the caller.
func RegisterUser(db *gorm.DB, name, email, hashedPassword, role, bio string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, validationError("name and email are required")
	}

	switch role {
	case "":
		role = models.RoleStudent
	case models.RoleStudent, models.RoleInstructor:
	default:
		return nil, validationError("role %q cannot be self-assigned", role)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		Bio:      bio,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return recordActivity(tx, models.ActivitySignup,
			name+" joined as "+role, ref(user.ID), nil)
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &user, nil
}

// TouchLastLogin stamps a successful authentication.
func TouchLastLogin(db *gorm.DB, userID uint) error {
	return db.Model(&models.User{}).Where("id = ?", userID).
		Update("last_login", time.Now()).Error
}
