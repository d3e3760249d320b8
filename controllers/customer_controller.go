package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/repositories"
)

type CustomerController struct {
	customers *repositories.CustomerRepository
}

func NewCustomerController(customers *repositories.CustomerRepository) *CustomerController {
	return &CustomerController{customers: customers}
}

func (cc *CustomerController) ListCustomers(c echo.Context) error {
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		customers, err := cc.customers.Search(c.Request().Context(), q, 25)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Server error: " + err.Error(),
			})
		}
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "Customers retrieved",
			Data:    customers,
		})
	}

	customers, err := cc.customers.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Customers retrieved",
		Data:    customers,
	})
}

func (cc *CustomerController) CreateCustomer(c echo.Context) error {
	var customer models.Customer
	if err := c.Bind(&customer); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if customer.Name == "" || customer.Mobile == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Name and mobile are required",
		})
	}

	existing, err := cc.customers.FindByMobile(c.Request().Context(), customer.Mobile)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	if existing != nil {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Customer with this mobile already exists",
			Data:    existing,
		})
	}

	if err := cc.customers.Create(c.Request().Context(), &customer); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create customer",
		})
	}
	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Customer created successfully",
		Data:    customer,
	})
}
