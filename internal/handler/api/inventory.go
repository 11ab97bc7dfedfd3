package api

import (
	"errors"
	"net/http"

	reqdto "donorhub/internal/handler/dto/request"
	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/handler/httperr"
	"donorhub/internal/handler/middleware"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

func (h *InventoryHandler) ListAll(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inventory", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryCounterViews(views))
}

func (h *InventoryHandler) ListByHospital(c *gin.Context) {
	hospitalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hospital id", nil)
		return
	}

	views, err := h.q.ListByHospital(c.Request.Context(), hospitalID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load inventory", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryCounterViews(views))
}

func (h *InventoryHandler) Restock(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}
	hospitalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hospital id", nil)
		return
	}
	var req reqdto.RestockInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Restock(c.Request.Context(), hospitalID, req.ToCommand(), actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHospitalNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hospital not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid stock data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Restock failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RestockInventoryResponse{
		CounterID: result.CounterID,
		BloodType: result.BloodType,
		Units:     req.Units,
	})
}
