package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/controllers"
)

func EventRoutes(router fiber.Router, d Deps) {
	ctrl := controllers.NewEventsController(d.Tracker)

	router.Post("/events", ctrl.Track)
}
