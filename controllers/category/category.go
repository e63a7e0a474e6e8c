package categoryController

import (
	"coursehub/database"
	"coursehub/middleware"
	categoryValidator "coursehub/validators/category"
	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
)

func ListCategories(c *fiber.Ctx) error {
	categories, err := workflow.ListCategories(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

func CreateCategory(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCategory").(*categoryValidator.CategoryPayload)
	actor := middleware.ActorFromCtx(c)

	category, err := workflow.CreateCategory(database.Database.Db, actor, reqData.Name, reqData.Description)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// RenameCategory renames a category and moves every course under the new
// name in the same unit.
func RenameCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(uint)
	reqData := c.Locals("validatedRename").(*categoryValidator.RenamePayload)
	actor := middleware.ActorFromCtx(c)

	category, err := workflow.RenameCategory(database.Database.Db, actor, categoryID, reqData.Name)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category renamed successfully!", category)
}

func DeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(uint)
	actor := middleware.ActorFromCtx(c)

	if err := workflow.DeleteCategory(database.Database.Db, actor, categoryID); err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
