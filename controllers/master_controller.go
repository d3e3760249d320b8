package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/repositories"
)

type MasterController struct {
	masters *repositories.MasterRepository
}

func NewMasterController(masters *repositories.MasterRepository) *MasterController {
	return &MasterController{masters: masters}
}

func (mc *MasterController) ListMasters(c echo.Context) error {
	masters, err := mc.masters.List(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Masters retrieved",
		Data:    masters,
	})
}

// ListOwners returns the active owners of a kind, the same directory the
// propagation fan-out uses.
func (mc *MasterController) ListOwners(c echo.Context) error {
	kind := c.QueryParam("kind")
	if kind != models.OwnerKindDealer && kind != models.OwnerKindPartner {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "kind must be dealer or partner",
		})
	}

	names, err := mc.masters.ListActiveOwners(c.Request().Context(), kind)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Owners retrieved",
		Data:    names,
	})
}

func (mc *MasterController) CreateMaster(c echo.Context) error {
	var req models.MasterRequest
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

	existing, err := mc.masters.FindByName(c.Request().Context(), req.Type, req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Server error: " + err.Error(),
		})
	}
	if existing != nil {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "A " + req.Type + " with this name already exists",
		})
	}

	master := models.Master{
		Type:   req.Type,
		Name:   req.Name,
		Mobile: req.Mobile,
		Email:  req.Email,
		Status: req.Status,
		Meta:   req.Meta,
	}
	if err := mc.masters.Create(c.Request().Context(), &master); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create master",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Master created successfully",
		Data:    master,
	})
}

func (mc *MasterController) UpdateMaster(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid master id",
		})
	}

	var req models.MasterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := mc.masters.Update(c.Request().Context(), id, req); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update master",
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Master updated successfully",
	})
}

func (mc *MasterController) DeleteMaster(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid master id",
		})
	}

	if err := mc.masters.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete master",
		})
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Master deleted successfully",
	})
}
