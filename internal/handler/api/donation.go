package api

import (
	"errors"
	"net/http"

	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/handler/httperr"
	"donorhub/internal/handler/middleware"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DonationHandler struct {
	cmds commands.DonationCommands
	q    queries.DonationQueries
}

func NewDonationHandler(cmds commands.DonationCommands, q queries.DonationQueries) *DonationHandler {
	return &DonationHandler{cmds: cmds, q: q}
}

func (h *DonationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrDonationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Donation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load donation", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDonationView(view))
}

func (h *DonationHandler) MarkUsed(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	result, err := h.cmds.MarkUsed(c.Request.Context(), id, actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDonationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Donation not found", nil)
		case errors.Is(err, commands.ErrUsageConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Donation already used or being processed", nil)
		case errors.Is(err, commands.ErrInsufficientInventory):
			httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient inventory for blood type", nil)
		case errors.Is(err, commands.ErrHospitalUnresolved):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No hospital could be resolved", nil)
		case errors.Is(err, commands.ErrRegistrationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Registration not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Donation cannot be used", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark used failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMarkUsedResult(result))
}
