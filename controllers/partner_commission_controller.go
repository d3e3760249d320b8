package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/services"
	"github.com/skandpro/insurcomm_backend/utils"
)

type PartnerCommissionController struct {
	rules *services.RuleService
}

func NewPartnerCommissionController(rules *services.RuleService) *PartnerCommissionController {
	return &PartnerCommissionController{rules: rules}
}

// SaveBreakdown saves a partner's commission overrides for one effective
// date. Items flagged applyToAllPartners are copied to every other active
// partner; a partial fan-out failure comes back as 207 with the failed
// partner list so the save itself is never silently lost.
func (pc *PartnerCommissionController) SaveBreakdown(c echo.Context) error {
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

	if err := pc.rules.SavePartnerRules(c.Request().Context(), req.OwnerName, req.Line, date, req.Items); err != nil {
		return ruleErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Partner commission saved successfully",
	})
}

// GetBreakdown returns the merged rule view for a partner: every dealer rule
// in force on the date, overlaid with the partner's saved percentages.
func (pc *PartnerCommissionController) GetBreakdown(c echo.Context) error {
	partnerName := c.QueryParam("partnerName")
	line := c.QueryParam("line")
	if partnerName == "" || line == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "partnerName and line are required",
		})
	}

	date := utils.DayOf(time.Now())
	if d := c.QueryParam("date"); d != "" {
		parsed, err := utils.ParseDay(d)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
		date = parsed
	}

	views, err := pc.rules.GetPartnerRules(c.Request().Context(), partnerName, line, date)
	if err != nil {
		return ruleErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Partner rules retrieved",
		Data:    views,
	})
}
