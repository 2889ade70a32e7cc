//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/authtest"
	"marketplace-api/tests/common/dbtest"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "member@example.com", string(user.RoleMember))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleMember))
	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestSignup() {
	s.Run("new account can log in and sees its profile", func() {
		birth := "1995-03-14"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, request.SignupRequest{
			Email: "new@example.com", Password: "password123", Nickname: "newbie", BirthDate: &birth,
		}, "")
		var created resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		token := authtest.LoginUser(s.T(), s.Router, "new@example.com", "password123")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		var me queries.MeView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(created.ID, me.User.ID)
		s.Equal("member", me.User.Role)
		s.Require().NotNil(me.Profile)
		s.Equal("newbie", me.Profile.Nickname)
		s.Require().NotNil(me.Profile.BirthDate)
	})

	s.Run("email already registered", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, request.SignupRequest{
			Email: "member@example.com", Password: "password123", Nickname: "again",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "member@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "member@example.com", password: "wrongpass1", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			s.Equal(tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				s.NotNil(httptest.ExtractCookie(w, "access_token"))
				s.NotNil(httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestRefreshAndLogout() {
	s.Run("refresh cookie issues a new pair", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "member@example.com", Password: dbtest.TestPassword}, "")
		s.Require().Equal(http.StatusOK, w.Code)

		cookies := httptest.ExtractCookies(w)
		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		var tokens resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &tokens)
		s.NotEmpty(tokens.AccessToken)
		s.NotEmpty(tokens.RefreshToken)

		authtest.LogoutUser(s.T(), s.Router, cookies)
	})

	s.Run("access token is not accepted as refresh token", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "member@example.com", string(user.RoleMember))
		access := s.jwt.GenerateToken(s.T(), id, user.RoleMember)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: access}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestMe() {
	s.Run("expired token", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "member@example.com", string(user.RoleMember))
		token := s.jwt.CreateExpiredToken(s.T(), id, user.RoleMember)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}
