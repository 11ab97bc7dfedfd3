//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"donorhub/internal/domain/user"
	"donorhub/internal/handler/api"
	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"
	"donorhub/tests/common/builder"
	"donorhub/tests/common/httptest"
	commandsmock "donorhub/tests/mock/commands"
	queriesmock "donorhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DonationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDonationCommands
	mockQueries  *queriesmock.MockDonationQueries
	handler      *api.DonationHandler
}

func (s *DonationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDonationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDonationQueries(s.mockCtrl)
	s.handler = api.NewDonationHandler(s.mockCommands, s.mockQueries)

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

	s.router.GET("/donations/:id", authMiddleware, s.handler.Get)
	s.router.POST("/donations/:id/use", authMiddleware, s.handler.MarkUsed)
}

func (s *DonationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDonationHandlerSuite(t *testing.T) {
	suite.Run(t, new(DonationHandlerTestSuite))
}

func (s *DonationHandlerTestSuite) TestGet() {
	view := builder.NewDonationBuilder().BuildView()

	s.Run("success: returns the donation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations/"+view.ID.String(), nil, "token")

		var resp resdto.DonationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.SerialNumber, resp.SerialNumber)
	})

	s.Run("unknown id returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrDonationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Donation not found")
	})
}

func (s *DonationHandlerTestSuite) TestMarkUsed() {
	id := uuid.New()
	url := "/donations/" + id.String() + "/use"

	s.Run("success: reports the deducting hospital", func() {
		hospitalID := uuid.New()
		s.mockCommands.EXPECT().MarkUsed(gomock.Any(), id, gomock.Any()).
			Return(&commands.MarkUsedResult{
				HospitalID:   hospitalID,
				HospitalName: "Central Hospital",
				Tier:         commands.TierEventHospital,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var resp resdto.MarkUsedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(hospitalID, resp.HospitalID)
		s.Equal("Central Hospital", resp.HospitalName)
		s.Equal(string(commands.TierEventHospital), resp.Resolution)
	})

	s.Run("already used returns 409", func() {
		s.mockCommands.EXPECT().MarkUsed(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrUsageConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already used")
	})

	s.Run("empty stock returns 409", func() {
		s.mockCommands.EXPECT().MarkUsed(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrInsufficientInventory).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient inventory")
	})

	s.Run("no resolvable hospital returns 422", func() {
		s.mockCommands.EXPECT().MarkUsed(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrHospitalUnresolved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "hospital")
	})

	s.Run("unknown donation returns 404", func() {
		s.mockCommands.EXPECT().MarkUsed(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrDonationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Donation not found")
	})
}
