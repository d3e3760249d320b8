package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/skandpro/insurcomm_backend/controllers"
)

// RegisterAuthRoutes sets up the public auth endpoints
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	auth := e.Group("/api/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
}
