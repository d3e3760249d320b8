package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/skandpro/insurcomm_backend/controllers"
	"github.com/skandpro/insurcomm_backend/middleware"
)

// RegisterCommissionRoutes sets up dealer/partner rule and report routes.
// All routes require an authenticated operator; rule writes and deletes are
// limited to admins.
func RegisterCommissionRoutes(e *echo.Echo,
	dealerController *controllers.DealerCommissionController,
	partnerController *controllers.PartnerCommissionController,
	reportController *controllers.ReportController) {

	api := e.Group("/api")
	api.Use(middleware.JWTMiddleware())

	dealer := api.Group("/commissions/dealer")
	dealer.GET("", dealerController.GetBreakdown)
	dealer.POST("", dealerController.SaveBreakdown, middleware.RequireUserType("admin"))
	dealer.DELETE("", dealerController.DeleteEntry, middleware.RequireUserType("admin"))

	partner := api.Group("/commissions/partner")
	partner.GET("", partnerController.GetBreakdown)
	partner.POST("", partnerController.SaveBreakdown, middleware.RequireUserType("admin"))

	reports := api.Group("/reports")
	reports.POST("/dealer", reportController.DealerReport)
	reports.POST("/partner", reportController.PartnerReport)
}
