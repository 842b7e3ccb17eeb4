package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"idcard/controllers"
	"idcard/middleware"
)

func RegisterRoutes(app *fiber.App, h *controllers.Handler, metrics http.Handler) {

	// Login
	app.Post("/login", h.Login)
	app.Get("/login", h.LoginInfo)

	// Employees. HEAD goes first so the probe never reaches GetEmployees.
	app.Head("/employees", h.HeadEmployees)
	app.Get("/employees", h.GetEmployees)

	// Session
	app.Get("/session", middleware.JWTMiddleware, h.GetSession)

	if metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics))
	}
}
