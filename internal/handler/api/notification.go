package api

import (
	"errors"
	"net/http"

	reqdto "donorhub/internal/handler/dto/request"
	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/handler/httperr"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

func (h *NotificationHandler) ListByDonor(c *gin.Context) {
	donorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid donor id", nil)
		return
	}

	items, next, err := h.q.ListByDonor(c.Request.Context(), donorID, cursorFromQuery(c), limitFromQuery(c))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notifications", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationList(items, next))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.MarkNotificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.MarkRead(c.Request.Context(), id, req.DonorID); err != nil {
		if errors.Is(err, commands.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark read failed", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
