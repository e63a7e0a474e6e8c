package workflow

import (
	"errors"
	"strings"

	"coursehub/models"
	course "coursehub/models/course"

	"gorm.io/gorm"
)

// CreateCategory adds a category with a unique name.
func CreateCategory(db *gorm.DB, actor Actor, name, description string) (*models.Category, error) {
	if !CanManageCategories(actor) {
		return nil, forbidden("only admins can manage categories")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("category name is required")
	}
	cat := models.Category{Name: name, Description: description}
	if err := db.Create(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("category %q already exists", name)
		}
		return nil, wrapTxErr(err)
	}
	return &cat, nil
}

// RenameCategory renames a category and rewrites the denormalized name on
// every course holding the old one, synchronously in the same unit. The old
// name matches zero courses once this returns.
func RenameCategory(db *gorm.DB, actor Actor, categoryID uint, newName string) (*models.Category, error) {
	if !CanManageCategories(actor) {
		return nil, forbidden("only admins can manage categories")
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, validationError("category name is required")
	}
	var cat models.Category
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("category %d", categoryID)
			}
			return err
		}
		if cat.Name == newName {
			return nil
		}
		oldName := cat.Name
		cat.Name = newName
		if err := tx.Model(&models.Category{}).Where("id = ?", categoryID).
			Update("name", newName).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflict("category %q already exists", newName)
			}
			return err
		}
		return tx.Model(&course.Course{}).Where("category = ?", oldName).
			Update("category", newName).Error
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}
	return &cat, nil
}

// DeleteCategory refuses to delete a category while any course references its
// name. The guard counts live courses rather than trusting the counter.
func DeleteCategory(db *gorm.DB, actor Actor, categoryID uint) error {
	if !CanManageCategories(actor) {
		return forbidden("only admins can manage categories")
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		if err := tx.First(&cat, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("category %d", categoryID)
			}
			return err
		}
		var inUse int64
		if err := tx.Model(&course.Course{}).Where("category = ?", cat.Name).
			Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return conflict("category %q is still used by %d courses", cat.Name, inUse)
		}
		return tx.Unscoped().Delete(&cat).Error
	})
	return wrapTxErr(err)
}

// ListCategories returns all categories ordered by name.
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, wrapTxErr(err)
	}
	return categories, nil
}
