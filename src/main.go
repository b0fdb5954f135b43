package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	_ "github.com/ssraminder/cethos-web-redesign-sub001/docs"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/config"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/database"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/routes"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/analytics"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/intake"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/notifications"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/payments"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/review"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/staff"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/submissions"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/uploads"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	if err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	database.InitRedis(cfg.RedisURI)

	// Collaborators, built once from the explicit config.
	var mailer notifications.Mailer = notifications.LogSender{}
	if cfg.SMTPConfigured() {
		mailer = notifications.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	var sessions intake.SessionStore
	if database.RedisClient != nil {
		sessions = intake.NewRedisStore(database.RedisClient)
	} else {
		log.Println("⚠️ Redis not available → intake sessions held in memory")
		sessions = intake.NewMemoryStore()
	}

	subSvc := submissions.NewService(database.SubmissionCollection)
	staffSvc := staff.NewService(database.StaffCollection)
	reviewSvc := review.NewService(subSvc, mailer, payments.NewClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey), cfg.PublicBaseURL)
	tracker := analytics.NewTracker(database.RedisClient)

	if err := staffSvc.EnsureDefaultAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Println("⚠️ could not seed default admin:", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024, // room for source documents
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Deps{
		Cfg:         cfg,
		Submissions: subSvc,
		Review:      reviewSvc,
		Staff:       staffSvc,
		Sessions:    sessions,
		Tracker:     tracker,
		Store:       uploads.NewDiskStore(cfg.UploadDir),
		Mailer:      mailer,
	})

	log.Println("Server is running on port " + cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
