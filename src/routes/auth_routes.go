package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ssraminder/cethos-web-redesign-sub001/src/controllers"
	"github.com/ssraminder/cethos-web-redesign-sub001/src/middleware"
)

func AuthRoutes(router fiber.Router, d Deps) {
	ctrl := controllers.NewAuthController(d.Staff)

	auth := router.Group("/auth")
	auth.Post("/login", ctrl.Login)
	auth.Get("/me", middleware.AuthJWT, ctrl.Me)
}
