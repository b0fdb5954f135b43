package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/controllers"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/middleware"
)

func AdminRoutes(router fiber.Router, d Deps) {
	subCtrl := controllers.NewSubmissionController(
		d.Submissions, d.Store, d.Mailer, d.Cfg.NotificationRecipients, d.Cfg.PublicBaseURL)
	reviewCtrl := controllers.NewReviewController(d.Review)
	eventsCtrl := controllers.NewEventsController(d.Tracker)

	admin := router.Group("/admin", middleware.AuthJWT)

	admin.Get("/submissions", subCtrl.ListSubmissions)
	admin.Get("/submissions/:id", subCtrl.GetSubmission)

	admin.Patch("/submissions/:id/pricing", reviewCtrl.SavePricing)
	admin.Post("/submissions/:id/send-quote", reviewCtrl.SendQuote)
	admin.Post("/submissions/:id/send-payment-link", reviewCtrl.SendPaymentLink)
	admin.Post("/submissions/:id/reject", reviewCtrl.Reject)
	admin.Post("/submissions/:id/escalate", reviewCtrl.Escalate)
	admin.Post("/submissions/:id/mark-paid", reviewCtrl.MarkPaid)
	admin.Post("/submissions/:id/mark-converted", reviewCtrl.MarkConverted)
	admin.Get("/submissions/:id/payment-qr", reviewCtrl.PaymentQR)

	admin.Get("/events", eventsCtrl.Snapshot)
}
