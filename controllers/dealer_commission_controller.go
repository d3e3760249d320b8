package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/services"
	"github.com/skandpro/insurcomm_backend/utils"
)

type DealerCommissionController struct {
	rules *services.RuleService
}

func NewDealerCommissionController(rules *services.RuleService) *DealerCommissionController {
	return &DealerCommissionController{rules: rules}
}

// SaveBreakdown saves a dealer's commission breakdown for one effective date.
// Re-saving the same date replaces the whole breakdown.
func (dc *DealerCommissionController) SaveBreakdown(c echo.Context) error {
	var req models.SaveRulesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	date, err := utils.ParseDay(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := dc.rules.SaveDealerRules(c.Request().Context(), req.OwnerName, req.Line, date, req.Items); err != nil {
		return ruleErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Commission breakdown saved successfully",
	})
}

// GetBreakdown returns a dealer's rules in force for a date, or the latest
// set when fetchLatest=true. An empty result is an ordinary outcome.
func (dc *DealerCommissionController) GetBreakdown(c echo.Context) error {
	dealerName := c.QueryParam("dealerName")
	line := c.QueryParam("line")
	fetchLatest := c.QueryParam("fetchLatest") == "true"

	if dealerName == "" || line == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "dealerName and line are required",
		})
	}

	date := utils.DayOf(time.Now())
	if d := c.QueryParam("date"); d != "" && !fetchLatest {
		parsed, err := utils.ParseDay(d)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
		date = parsed
	}

	set, err := dc.rules.GetDealerRules(c.Request().Context(), dealerName, line, date, fetchLatest)
	if err != nil {
		return ruleErrorResponse(c, err)
	}

	items := []models.RuleItem{}
	if set != nil {
		items = set.Items
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Dealer rules retrieved",
		Data:    items,
	})
}

// DeleteEntry removes a dealer's rule set for a specific date.
func (dc *DealerCommissionController) DeleteEntry(c echo.Context) error {
	var req models.DeleteRulesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	date, err := utils.ParseDay(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err := dc.rules.DeleteDealerRules(c.Request().Context(), req.OwnerName, req.Line, date); err != nil {
		return ruleErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Deleted successfully",
	})
}

// ruleErrorResponse maps rule service errors onto HTTP statuses: validation
// problems are the caller's fault, a partial propagation failure gets its own
// distinct shape so operators can retry the affected partners, and everything
// else is an infrastructure failure.
func ruleErrorResponse(c echo.Context, err error) error {
	var propErr *services.PropagationError
	if errors.As(err, &propErr) {
		return c.JSON(http.StatusMultiStatus, models.Response{
			Status:  http.StatusMultiStatus,
			Message: propErr.Error(),
			Data:    propErr,
		})
	}
	if errors.Is(err, services.ErrValidation) {
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
