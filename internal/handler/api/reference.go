package api

import (
	"errors"
	"net/http"

	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/handler/httperr"
	"donorhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReferenceHandler serves the lookup data the dashboard needs to render
// forms: drive events and hospitals.
type ReferenceHandler struct {
	events    queries.EventQueries
	hospitals queries.HospitalQueries
}

func NewReferenceHandler(events queries.EventQueries, hospitals queries.HospitalQueries) *ReferenceHandler {
	return &ReferenceHandler{events: events, hospitals: hospitals}
}

func (h *ReferenceHandler) ListEvents(c *gin.Context) {
	views, err := h.events.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list events", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

func (h *ReferenceHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.events.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrEventNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load event", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

func (h *ReferenceHandler) ListHospitals(c *gin.Context) {
	views, err := h.hospitals.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list hospitals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHospitalViews(views))
}
