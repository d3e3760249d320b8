package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/repositories"
	"github.com/skandpro/insurcomm_backend/utils"
)

type PolicyController struct {
	policies  *repositories.PolicyRepository
	customers *repositories.CustomerRepository
}

func NewPolicyController(policies *repositories.PolicyRepository, customers *repositories.CustomerRepository) *PolicyController {
	return &PolicyController{policies: policies, customers: customers}
}

// SavePolicy creates or updates a policy entry. Entries are keyed by
// (policyNo, insuranceYear); a different policy in the same year sharing the
// vehicle, engine or chassis number is rejected as a duplicate.
func (pc *PolicyController) SavePolicy(c echo.Context) error {
	var req models.SavePolicyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.PolicyNo == "" || req.InsuranceYear == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Policy No and Insurance Year are required",
		})
	}
	if req.Line == "" {
		req.Line = models.LineMotor
	}

	entry := req.PolicyEntry
	entry.VehicleNo = strings.ToUpper(strings.TrimSpace(entry.VehicleNo))
	entry.EngineNo = strings.ToUpper(strings.TrimSpace(entry.EngineNo))
	entry.ChassisNo = strings.ToUpper(strings.TrimSpace(entry.ChassisNo))

	ctx := c.Request().Context()

	existing, err := pc.policies.FindDuplicate(ctx, &entry)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	if existing != nil && existing.PolicyNo != entry.PolicyNo {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Record already exists for year " + entry.InsuranceYear + " (Policy: " + existing.PolicyNo + ")",
		})
	}

	// Attach or create the customer when the entry came with one.
	if entry.CustomerID == nil && entry.CustomerName != "" {
		if req.CustomerMobile == "" {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Mobile number is required for a new customer",
			})
		}
		customer, err := pc.customers.FindByMobile(ctx, req.CustomerMobile)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Server error: " + err.Error(),
			})
		}
		if customer == nil {
			customer = &models.Customer{
				Name:    entry.CustomerName,
				Mobile:  req.CustomerMobile,
				Email:   req.CustomerEmail,
				Address: req.Address,
			}
			if customer.Address == "" {
				customer.Address = "N/A"
			}
			if err := pc.customers.Create(ctx, customer); err != nil {
				return c.JSON(http.StatusInternalServerError, models.Response{
					Status:  http.StatusInternalServerError,
					Message: "Server error: " + err.Error(),
				})
			}
		}
		entry.CustomerID = &customer.ID
		entry.CustomerName = customer.Name
	}

	saved, err := pc.policies.Upsert(ctx, &entry)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Policy saved successfully",
		Data:    saved,
	})
}

func (pc *PolicyController) GetPolicy(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid policy id",
		})
	}

	entry, err := pc.policies.FindByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	if entry == nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Record not found",
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Policy retrieved",
		Data:    entry,
	})
}

func (pc *PolicyController) ListPolicies(c echo.Context) error {
	entries, err := pc.policies.List(c.Request().Context(), c.QueryParam("line"), 0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Policies retrieved",
		Data:    entries,
	})
}

// RecentPolicies returns the ten newest entries for the dashboard.
func (pc *PolicyController) RecentPolicies(c echo.Context) error {
	entries, err := pc.policies.List(c.Request().Context(), c.QueryParam("line"), 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Recent policies retrieved",
		Data:    entries,
	})
}

func (pc *PolicyController) DeletePolicy(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid policy id",
		})
	}

	if err := pc.policies.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Delete failed",
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Record deleted successfully",
	})
}

// ListRenewals lists policies whose cover ends inside the requested window,
// for the renewal follow-up screen. Dealer, partner and company filters are
// optional; a malformed date is the caller's fault.
func (pc *PolicyController) ListRenewals(c echo.Context) error {
	var req models.RenewalsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}

	entries, err := pc.policies.FindRenewals(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrBadDate) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Renewals retrieved",
		Data:    entries,
	})
}

// Autocomplete searches policies and customers for the entry form.
func (pc *PolicyController) Autocomplete(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "No query",
			Data:    map[string]interface{}{"policies": []models.PolicyEntry{}, "customers": []models.Customer{}},
		})
	}

	ctx := c.Request().Context()
	policies, err := pc.policies.Autocomplete(ctx, q, 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	customers, err := pc.customers.Search(ctx, q, 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Autocomplete results",
		Data: map[string]interface{}{
			"policies":  policies,
			"customers": customers,
		},
	})
}
