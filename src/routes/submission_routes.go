package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/controllers"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/middleware"
)

func SubmissionRoutes(router fiber.Router, d Deps) {
	ctrl := controllers.NewSubmissionController(
		d.Submissions, d.Store, d.Mailer, d.Cfg.NotificationRecipients, d.Cfg.PublicBaseURL)

	subs := router.Group("/submissions")

	// Public intake endpoint
	subs.Post("/", ctrl.CreateSubmission)

	// Reads and updates are staff-only
	subs.Get("/:id", middleware.AuthJWT, ctrl.GetSubmission)
	subs.Patch("/:id", middleware.AuthJWT, ctrl.PatchSubmission)
}
