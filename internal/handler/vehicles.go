package handler

import (
	"net/http"

	"dealerstock/internal/apierror"
	"dealerstock/internal/dto"
	"dealerstock/internal/service"

	"github.com/gin-gonic/gin"
)

type VehiclesHandler struct{ svc service.VehicleService }

func NewVehiclesHandler(svc service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

// List godoc
// @Summary      List vehicles
// @Description  Returns vehicles matching the optional filters. Filters compose with AND semantics.
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        brand  query string false "Brand substring"
// @Param        model  query string false "Model substring"
// @Param        year   query int    false "Exact year"
// @Param        status query string false "Available | Sold"
// @Param        sortBy query string false "price | date (default: date)"
// @Param        order  query string false "asc | desc"
// @Success      200 {array} dto.VehicleResponse
// @Failure      401 {object} apierror.APIError
// @Router       /v1/vehicles [get]
func (h *VehiclesHandler) List(c *gin.Context) {
	var filter dto.VehicleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		// Binding errors carry gin internals; clients get a stable message.
		c.JSON(http.StatusBadRequest, apierror.New("Invalid query parameters"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) Create(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Vehicle added successfully", ID: resp.ID})
}

func (h *VehiclesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Vehicle updated successfully"})
}

func (h *VehiclesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Vehicle deleted successfully"})
}
