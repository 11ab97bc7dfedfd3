//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"donorhub/internal/domain/user"
	"donorhub/internal/handler/api"
	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"
	"donorhub/tests/common/httptest"
	commandsmock "donorhub/tests/mock/commands"
	queriesmock "donorhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EligibilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEligibilityCommands
	mockQueries  *queriesmock.MockEligibilityQueries
	handler      *api.EligibilityHandler
}

func (s *EligibilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEligibilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEligibilityQueries(s.mockCtrl)
	s.handler = api.NewEligibilityHandler(s.mockCommands, s.mockQueries)

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

	s.router.POST("/eligibility", authMiddleware, s.handler.Submit)
	s.router.GET("/eligibility/pending", authMiddleware, s.handler.ListPending)
	s.router.GET("/eligibility/:id", authMiddleware, s.handler.Get)
	s.router.POST("/eligibility/:id/decide", authMiddleware, s.handler.Decide)
}

func (s *EligibilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEligibilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(EligibilityHandlerTestSuite))
}

func pendingEligibilityView() *queries.EligibilityView {
	return &queries.EligibilityView{
		ID:            uuid.New(),
		DonorID:       uuid.New(),
		DonorName:     "Test Donor",
		Questionnaire: json.RawMessage(`{"recent_travel":false}`),
		Status:        "pending",
		CreatedAt:     time.Now(),
	}
}

func (s *EligibilityHandlerTestSuite) TestSubmit() {
	url := "/eligibility"
	donorID := uuid.New()
	reqBody := map[string]any{
		"donor_id":      donorID,
		"questionnaire": map[string]any{"recent_travel": false},
	}

	s.Run("success: returns 201 with new id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Submit(gomock.Any(), donorID, gomock.Any()).
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.SubmitEligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(newID, resp.ID)
	})

	s.Run("unknown donor returns 404", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), donorID, gomock.Any()).
			Return(uuid.Nil, commands.ErrDonorNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Donor not found")
	})

	s.Run("non-object questionnaire returns 422", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), donorID, gomock.Any()).
			Return(uuid.Nil, commands.ErrInvalidQuestionnaire).Times(1)

		body := map[string]any{"donor_id": donorID, "questionnaire": "yes"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("missing donor id returns 400", func() {
		body := map[string]any{"questionnaire": map[string]any{}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *EligibilityHandlerTestSuite) TestGet() {
	view := pendingEligibilityView()

	s.Run("success: returns the request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/eligibility/"+view.ID.String(), nil, "token")

		var resp resdto.EligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("pending", resp.Status)
	})

	s.Run("unknown id returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrEligibilityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/eligibility/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Eligibility request not found")
	})
}

func (s *EligibilityHandlerTestSuite) TestListPending() {
	s.Run("success: returns pending requests", func() {
		items := []*queries.EligibilityView{pendingEligibilityView(), pendingEligibilityView()}
		s.mockQueries.EXPECT().ListPending(gomock.Any(), gomock.Nil(), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/eligibility/pending", nil, "token")

		var resp resdto.EligibilityListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Items, 2)
		s.Nil(resp.NextCursor)
	})

	s.Run("invalid cursor returns 400", func() {
		s.mockQueries.EXPECT().ListPending(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/eligibility/pending?cursor=bogus", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *EligibilityHandlerTestSuite) TestDecide() {
	id := uuid.New()
	url := "/eligibility/" + id.String() + "/decide"
	reqBody := map[string]any{"outcome": "eligible", "notes": "cleared by physician"}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), id, commands.DecideEligibilityRequest{
			Outcome: "eligible",
			Notes:   "cleared by physician",
		}, gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("already decided returns 409", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(commands.ErrEligibilityConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already decided")
	})

	s.Run("unknown outcome returns 422", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(commands.ErrDomainValidation).Times(1)

		body := map[string]any{"outcome": "maybe", "notes": "n/a"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("missing notes returns 400", func() {
		body := map[string]any{"outcome": "eligible"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
