//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"donorhub/internal/domain/user"
	"donorhub/internal/handler/api"
	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"
	"donorhub/tests/common/builder"
	"donorhub/tests/common/httptest"
	"donorhub/tests/common/testutil"
	commandsmock "donorhub/tests/mock/commands"
	queriesmock "donorhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistrationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRegistrationCommands
	mockQueries  *queriesmock.MockRegistrationQueries
	handler      *api.RegistrationHandler
}

func (s *RegistrationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRegistrationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRegistrationQueries(s.mockCtrl)
	s.handler = api.NewRegistrationHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleStaff)
		c.Next()
	}

	s.router.POST("/registrations", authMiddleware, s.handler.Create)
	s.router.GET("/registrations/:id", authMiddleware, s.handler.Get)
	s.router.POST("/registrations/:id/approve", authMiddleware, s.handler.Approve)
	s.router.POST("/registrations/:id/reject", authMiddleware, s.handler.Reject)
	s.router.POST("/registrations/:id/check-in", authMiddleware, s.handler.CheckIn)
	s.router.POST("/registrations/:id/complete", authMiddleware, s.handler.Complete)
	s.router.GET("/events/:id/registrations", authMiddleware, s.handler.ListByEvent)
}

func (s *RegistrationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistrationHandlerSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}

func (s *RegistrationHandlerTestSuite) TestCreate() {
	url := "/registrations"
	reqBody := builder.NewRegistrationBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with new id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.CreateRegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(newID, resp.ID)
	})

	s.Run("missing required fields return 400", func() {
		for _, field := range []string{"event_id", "slot_start", "slot_end"} {
			body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
			s.Equal(http.StatusBadRequest, rec.Code, "field %s", field)
		}
	})

	s.Run("unknown event returns 404", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("domain validation failure returns 422", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("unauthenticated returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *RegistrationHandlerTestSuite) TestGet() {
	view := builder.NewRegistrationBuilder().BuildView()

	s.Run("success: returns the registration", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/registrations/"+view.ID.String(), nil, "token")

		var resp resdto.RegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.Status, resp.Status)
	})

	s.Run("unknown id returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrRegistrationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/registrations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Registration not found")
	})

	s.Run("malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/registrations/not-a-uuid", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RegistrationHandlerTestSuite) TestApprove() {
	id := uuid.New()
	url := "/registrations/" + id.String() + "/approve"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("stale status returns 409", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrStatusConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("invalid transition returns 422", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("unknown registration returns 404", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrRegistrationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *RegistrationHandlerTestSuite) TestReject() {
	id := uuid.New()
	url := "/registrations/" + id.String() + "/reject"
	body := map[string]any{"reason": "low hemoglobin"}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), id, "low hemoglobin", gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("empty body rejects without a reason", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), id, "", gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *RegistrationHandlerTestSuite) TestComplete() {
	id := uuid.New()
	url := "/registrations/" + id.String() + "/complete"
	reqBody := builder.NewRegistrationBuilder().BuildCompleteRequestDTO()

	s.Run("success: returns the created donation id", func() {
		donationID := uuid.New()
		s.mockCommands.EXPECT().Complete(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(&commands.CompleteRegistrationResult{DonationID: donationID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.CompleteRegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(donationID, resp.DonationID)
	})

	s.Run("second completion returns 409", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDonationExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Donation already recorded")
	})

	s.Run("missing required fields return 400", func() {
		for _, field := range []string{"serial_number", "expiry_date"} {
			body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
			s.Equal(http.StatusBadRequest, rec.Code, "field %s", field)
		}
	})
}

func (s *RegistrationHandlerTestSuite) TestListByEvent() {
	eventID := uuid.New()
	url := "/events/" + eventID.String() + "/registrations"

	s.Run("success: returns items and next cursor", func() {
		items := []*queries.RegistrationListItem{
			builder.NewRegistrationBuilder().BuildListItem(),
			builder.NewRegistrationBuilder().BuildListItem(),
		}
		next := &queries.Cursor{After: "opaque"}
		s.mockQueries.EXPECT().ListByEvent(gomock.Any(), eventID, gomock.Nil(), gomock.Nil(), 0).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var resp resdto.RegistrationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Items, 2)
		s.Require().NotNil(resp.NextCursor)
		s.Equal("opaque", *resp.NextCursor)
	})

	s.Run("invalid cursor returns 400", func() {
		s.mockQueries.EXPECT().ListByEvent(gomock.Any(), eventID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=bogus", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("store failure returns 500", func() {
		s.mockQueries.EXPECT().ListByEvent(gomock.Any(), eventID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
