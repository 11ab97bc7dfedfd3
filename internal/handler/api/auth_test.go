//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"donorhub/internal/domain/user"
	"donorhub/internal/handler/api"
	resdto "donorhub/internal/handler/dto/response"
	"donorhub/internal/pkg/config"
	"donorhub/internal/pkg/cookie"
	"donorhub/internal/pkg/jwt"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)

	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.CookieConfig{SameSite: "Lax"})

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.MustParse(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")))
		c.Set("user_role", user.RoleStaff)
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"email": "staff@example.com", "password": "password123"}

	s.Run("success: returns token and sets cookies", func() {
		userView := builder.NewUserBuilder().BuildView()
		s.mockCommands.EXPECT().Login(gomock.Any(), "staff@example.com", "password123").
			Return(&commands.LoginResult{
				UserID:    userView.ID,
				TokenPair: &commands.TokenPair{AccessToken: "access-jwt", RefreshToken: "refresh-jwt"},
			}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), userView.ID).Return(userView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("access-jwt", resp.AccessToken)
		s.Require().NotNil(resp.User)
		s.Equal(userView.Email, resp.User.Email)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Equal("access-jwt", access.Value)
		s.True(access.HttpOnly)

		refresh := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refresh)
		s.Equal("refresh-jwt", refresh.Value)
	})

	s.Run("wrong password returns 401", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "staff@example.com", "password123").
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("deactivated account returns 403", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "staff@example.com", "password123").
			Return(nil, commands.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "inactive")
	})

	s.Run("missing email returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"password": "x"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: accepts token from request body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "refresh-jwt").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"refresh_token": "refresh-jwt"}, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("new-access", resp.AccessToken)
	})

	s.Run("missing token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("rejected token returns 401", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "expired").
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"refresh_token": "expired"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("clears both cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, uuid.NewString())
		s.Equal(http.StatusNoContent, rec.Code)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Empty(access.Value)
		s.Negative(access.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current user", func() {
		userView := builder.NewUserBuilder().BuildView()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), userView.ID).Return(userView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, userView.ID.String())

		var resp queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(userView.Email, resp.Email)
		s.Equal(userView.Role, resp.Role)
	})

	s.Run("deleted user returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), id).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, id.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
