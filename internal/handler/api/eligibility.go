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

type EligibilityHandler struct {
	cmds commands.EligibilityCommands
	q    queries.EligibilityQueries
}

func NewEligibilityHandler(cmds commands.EligibilityCommands, q queries.EligibilityQueries) *EligibilityHandler {
	return &EligibilityHandler{cmds: cmds, q: q}
}

func (h *EligibilityHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitEligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Submit(c.Request.Context(), req.DonorID, req.Questionnaire)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDonorNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Donor not found", nil)
		case errors.Is(err, commands.ErrInvalidQuestionnaire):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Questionnaire must be a JSON document", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Submit eligibility failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SubmitEligibilityResponse{ID: id})
}

func (h *EligibilityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrEligibilityNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Eligibility request not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load eligibility request", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEligibilityView(view))
}

func (h *EligibilityHandler) ListPending(c *gin.Context) {
	items, next, err := h.q.ListPending(c.Request.Context(), cursorFromQuery(c), limitFromQuery(c))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list eligibility requests", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEligibilityList(items, next))
}

func (h *EligibilityHandler) Decide(c *gin.Context) {
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
	var req reqdto.DecideEligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.cmds.Decide(c.Request.Context(), id, commands.DecideEligibilityRequest{
		Outcome: req.Outcome,
		Notes:   req.Notes,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEligibilityNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Eligibility request not found", nil)
		case errors.Is(err, commands.ErrEligibilityConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Eligibility request already decided", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid decision", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Decide eligibility failed", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
