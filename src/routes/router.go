package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/config"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/analytics"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/intake"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/notifications"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/review"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/staff"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/submissions"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/services/uploads"
)

// Deps carries the collaborators built in main from the explicit config, so
// route wiring stays free of environment lookups.
type Deps struct {
	Cfg         *config.Config
	Submissions *submissions.Service
	Review      *review.Service
	Staff       *staff.Service
	Sessions    intake.SessionStore
	Tracker     *analytics.Tracker
	Store       uploads.BlobStore
	Mailer      notifications.Mailer
}

func InitRoutes(app *fiber.App, d Deps) {
	SubmissionRoutes(app, d)
	IntakeRoutes(app, d)
	EventRoutes(app, d)
	AuthRoutes(app, d)
	AdminRoutes(app, d)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
