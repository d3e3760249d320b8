package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/skandpro/insurcomm_backend/controllers"
	"github.com/skandpro/insurcomm_backend/middleware"
)

// SetupRoutes registers the policy, master and customer routes
func SetupRoutes(e *echo.Echo,
	policyController *controllers.PolicyController,
	masterController *controllers.MasterController,
	customerController *controllers.CustomerController) {

	api := e.Group("/api")
	api.Use(middleware.JWTMiddleware())

	policies := api.Group("/policies")
	policies.GET("/autocomplete", policyController.Autocomplete)
	policies.GET("/renewals", policyController.ListRenewals)
	policies.GET("/recent", policyController.RecentPolicies)
	policies.GET("", policyController.ListPolicies)
	policies.GET("/:id", policyController.GetPolicy)
	policies.POST("", policyController.SavePolicy)
	policies.DELETE("/:id", policyController.DeletePolicy)

	masters := api.Group("/masters")
	masters.GET("", masterController.ListMasters)
	masters.GET("/owners", masterController.ListOwners)
	masters.POST("", masterController.CreateMaster, middleware.RequireUserType("admin"))
	masters.PUT("/:id", masterController.UpdateMaster, middleware.RequireUserType("admin"))
	masters.DELETE("/:id", masterController.DeleteMaster, middleware.RequireUserType("admin"))

	customers := api.Group("/customers")
	customers.GET("", customerController.ListCustomers)
	customers.POST("", customerController.CreateCustomer)
}
