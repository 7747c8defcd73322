package main

import (
	"chainlearn/config"
	"chainlearn/database"
	adminRoutes "chainlearn/routers/adminRoutes"
	authRoutes "chainlearn/routers/authRoutes"
	certificateRoutes "chainlearn/routers/certificateRoutes"
	jobRoutes "chainlearn/routers/jobRoutes"
	progressRoutes "chainlearn/routers/progressRoutes"
	trackRoutes "chainlearn/routers/trackRoutes"
	"chainlearn/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitializeProScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Backend is running"})
	})

	authRoutes.SetupAuthRoutes(app)
	trackRoutes.SetupTrackRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
