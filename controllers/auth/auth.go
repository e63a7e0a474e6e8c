package authController

import (
	"errors"
	"log"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	authValidator "coursehub/validators/auth"
	"coursehub/workflow"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterPayload)

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user, err := workflow.RegisterUser(db, reqData.Name, reqData.Email, string(hashedPassword), reqData.Role, reqData.Bio)
	if err != nil {
		return middleware.WorkflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully!", user)
}

func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginPayload)

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := workflow.TouchLastLogin(db, user.ID); err != nil {
		log.Printf("Error updating last login: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}
