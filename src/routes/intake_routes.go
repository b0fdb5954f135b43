package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/controllers"
)

func IntakeRoutes(router fiber.Router, d Deps) {
	ctrl := controllers.NewIntakeController(d.Sessions, d.Submissions, d.Tracker)

	forms := router.Group("/intake")
	forms.Post("/", ctrl.Start)
	forms.Get("/:sid", ctrl.Get)
	forms.Put("/:sid/step", ctrl.UpdateStep)
	forms.Post("/:sid/next", ctrl.Next)
	forms.Post("/:sid/back", ctrl.Back)
	forms.Post("/:sid/submit", ctrl.Submit)
}
