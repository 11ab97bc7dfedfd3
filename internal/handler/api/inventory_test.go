//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"donorhub/internal/domain/user"
	"donorhub/internal/handler/api"
	reqdto "donorhub/internal/handler/dto/request"
	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/queries"
	"donorhub/tests/common/httptest"
	"donorhub/tests/common/testutil"
	commandsmock "donorhub/tests/mock/commands"
	queriesmock "donorhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockInventoryQueries
	handler      *api.InventoryHandler
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/inventory", authMiddleware, s.handler.ListAll)
	s.router.GET("/hospitals/:id/inventory", authMiddleware, s.handler.ListByHospital)
	s.router.PUT("/hospitals/:id/inventory", authMiddleware, s.handler.Restock)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func counterView(hospitalID uuid.UUID, bloodType string, units int32) *queries.InventoryCounterView {
	return &queries.InventoryCounterView{
		ID:            uuid.New(),
		HospitalID:    hospitalID,
		HospitalName:  "Central Hospital",
		BloodType:     bloodType,
		Units:         units,
		MinimumStock:  5,
		CriticalStock: 2,
		BelowMinimum:  units < 5,
		Critical:      units <= 2,
		UpdatedAt:     time.Now(),
	}
}

func (s *InventoryHandlerTestSuite) TestListByHospital() {
	hospitalID := uuid.New()
	url := "/hospitals/" + hospitalID.String() + "/inventory"

	s.Run("success: returns the hospital's counters", func() {
		views := []*queries.InventoryCounterView{
			counterView(hospitalID, "A+", 10),
			counterView(hospitalID, "O-", 1),
		}
		s.mockQueries.EXPECT().ListByHospital(gomock.Any(), hospitalID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var resp []*resdto.InventoryCounterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
		s.True(resp[1].Critical)
	})

	s.Run("malformed hospital id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hospitals/not-a-uuid/inventory", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *InventoryHandlerTestSuite) TestRestock() {
	hospitalID := uuid.New()
	url := "/hospitals/" + hospitalID.String() + "/inventory"
	reqBody := reqdto.RestockInventoryRequest{
		BloodType:     "A+",
		Units:         25,
		MinimumStock:  5,
		CriticalStock: 2,
	}

	s.Run("success: returns the counter", func() {
		counterID := uuid.New()
		s.mockCommands.EXPECT().Restock(gomock.Any(), hospitalID, reqBody.ToCommand(), gomock.Any()).
			Return(&commands.RestockResult{CounterID: counterID, BloodType: "A+"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")

		var resp resdto.RestockInventoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(counterID, resp.CounterID)
		s.Equal("A+", resp.BloodType)
		s.Equal(int32(25), resp.Units)
	})

	s.Run("unknown hospital returns 404", func() {
		s.mockCommands.EXPECT().Restock(gomock.Any(), hospitalID, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrHospitalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hospital not found")
	})

	s.Run("unrecognized blood type returns 422", func() {
		s.mockCommands.EXPECT().Restock(gomock.Any(), hospitalID, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("missing blood type returns 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("blood_type", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("negative units returns 400", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("units", -1))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unauthenticated returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
