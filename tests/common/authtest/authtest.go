//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"stayspots/internal/handler/dto/request"
	"stayspots/internal/pkg/cookie"
	"stayspots/tests/common/dbtest"
	"stayspots/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in with an email or username and returns the session
// token from the response cookie.
func LoginUser(t *testing.T, router *gin.Engine, credential, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Credential: credential, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionTokenCookieName)
	require.NotNil(t, sessionCookie, "Session token not found in cookies")
	require.NotEmpty(t, sessionCookie.Value, "Session token cookie is empty")

	return sessionCookie.Value
}

// CreateAndLogin inserts a fixture user and returns its ID plus a live
// session token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, username string) (uuid.UUID, string) {
	t.Helper()

	userID := dbtest.CreateTestUser(t, db, email, username)
	token := LoginUser(t, router, email, dbtest.TestPassword)
	return userID, token
}
