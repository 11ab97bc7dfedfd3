package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	reqdto "donorhub/internal/handler/dto/request"
	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/handler/httperr"
	"donorhub/internal/handler/middleware"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegistrationHandler struct {
	cmds commands.RegistrationCommands
	q    queries.RegistrationQueries
}

func NewRegistrationHandler(cmds commands.RegistrationCommands, q queries.RegistrationQueries) *RegistrationHandler {
	return &RegistrationHandler{cmds: cmds, q: q}
}

func (h *RegistrationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}
	var req reqdto.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid registration data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create registration failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRegistrationResponse{ID: id})
}

func (h *RegistrationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRegistrationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Registration not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load registration", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRegistrationView(view))
}

func (h *RegistrationHandler) ListByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event id", nil)
		return
	}

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	items, next, err := h.q.ListByEvent(c.Request.Context(), eventID, status, cursorFromQuery(c), limitFromQuery(c))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list registrations", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRegistrationList(items, next))
}

func (h *RegistrationHandler) Approve(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, actor uuid.UUID) error {
		return h.cmds.Approve(ctx.Request.Context(), id, actor)
	})
}

func (h *RegistrationHandler) Reject(c *gin.Context) {
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
	// the reason is optional, so an empty body is a valid reject request
	var req reqdto.RejectRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.Reject(c.Request.Context(), id, req.Reason, actor); err != nil {
		abortTransitionErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RegistrationHandler) Cancel(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, actor uuid.UUID) error {
		return h.cmds.Cancel(ctx.Request.Context(), id, actor)
	})
}

func (h *RegistrationHandler) CheckIn(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, actor uuid.UUID) error {
		return h.cmds.CheckIn(ctx.Request.Context(), id, actor)
	})
}

func (h *RegistrationHandler) Complete(c *gin.Context) {
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
	var req reqdto.CompleteRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Complete(c.Request.Context(), id, req.ToCommand(), actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDonationExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Donation already recorded", nil)
		default:
			abortTransitionErr(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CompleteRegistrationResponse{DonationID: result.DonationID})
}

func (h *RegistrationHandler) transition(c *gin.Context, apply func(c *gin.Context, id, actor uuid.UUID) error) {
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

	if err := apply(c, id, actor); err != nil {
		abortTransitionErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortTransitionErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRegistrationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Registration not found", nil)
	case errors.Is(err, commands.ErrStatusConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Registration changed by another session", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Transition not allowed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Registration update failed", nil)
	}
}

func cursorFromQuery(c *gin.Context) *queries.Cursor {
	if raw := c.Query("cursor"); raw != "" {
		return &queries.Cursor{After: raw}
	}
	return nil
}

func limitFromQuery(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return 0
}
