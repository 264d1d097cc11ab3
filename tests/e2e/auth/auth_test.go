//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"canteen-reservation/internal/domain/student"
	"canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/tests/common/authtest"
	"canteen-reservation/tests/common/builder"
	"canteen-reservation/tests/common/dbtest"
	"canteen-reservation/tests/common/httptest"
	"canteen-reservation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestRegister() {
	s.Run("registers a new student", func() {
		body := builder.NewAuthBuilder().
			With(func(b *builder.AuthBuilder) { b.Email = "fresh@example.com" }).
			BuildSignupDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &response)
		s.NotEmpty(response["id"])
	})

	s.Run("rejects a duplicate email", func() {
		dbtest.CreateTestStudent(s.T(), s.DB, "taken@example.com", string(student.RoleStudent))

		body := builder.NewAuthBuilder().
			With(func(b *builder.AuthBuilder) { b.Email = "taken@example.com" }).
			BuildSignupDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already registered")
	})
}

func (s *authSuite) TestLogin() {
	s.Run("logs in a seeded student", func() {
		dbtest.CreateTestStudent(s.T(), s.DB, "login@example.com", string(student.RoleStudent))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "login@example.com", Password: dbtest.TestStudentPassword}, "")

		var response resdto.AuthorizedStudentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal("login@example.com", response.Email)
		s.NotNil(httptest.ExtractCookie(w, "access_token"))
		s.NotNil(httptest.ExtractCookie(w, "refresh_token"))
	})

	s.Run("rejects a wrong password", func() {
		dbtest.CreateTestStudent(s.T(), s.DB, "login2@example.com", string(student.RoleStudent))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "login2@example.com", Password: "definitely-wrong"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("rejects an unknown email with the same error", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ghost@example.com", Password: dbtest.TestStudentPassword}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the caller's account", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "me@example.com", string(student.RoleStudent))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var response resdto.AuthorizedStudentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal("me@example.com", response.Email)
	})

	s.Run("rejects a missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("rejects an expired token", func() {
		id := dbtest.CreateTestStudent(s.T(), s.DB, "expired@example.com", string(student.RoleStudent))
		token := s.jwtHelper.CreateExpiredToken(s.T(), id, student.RoleStudent)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestRefreshAndLogout() {
	s.Run("refreshes the pair from the cookie", func() {
		dbtest.CreateTestStudent(s.T(), s.DB, "refresh@example.com", string(student.RoleStudent))

		login := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "refresh@example.com", Password: dbtest.TestStudentPassword}, "")
		require.Equal(s.T(), http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL,
			nil, httptest.ExtractCookies(login), "")

		s.Equal(http.StatusNoContent, w.Code)
		s.NotNil(httptest.ExtractCookie(w, "access_token"))
	})

	s.Run("refresh without a token fails", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("logout clears the cookies", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "bye@example.com", string(student.RoleStudent))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)

		s.Equal(http.StatusNoContent, w.Code)
		access := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(access)
		s.Equal(-1, access.MaxAge)
	})
}
