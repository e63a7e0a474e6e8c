package main

import (
	"log"

	"coursehub/config"
	"coursehub/database"
	authRoutes "coursehub/routers/authRoutes"
	categoryRoutes "coursehub/routers/categoryRoutes"
	courseRoutes "coursehub/routers/courseRoutes"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupInstructorRoutes(app)
	courseRoutes.SetupAdminRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)

	utils.StartReconcileScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
