package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintbox/internal/infrastructure/auth"
	"complaintbox/internal/shared/config"
	"complaintbox/internal/shared/constants"
	"complaintbox/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(tokens *auth.SessionTokenService) *gin.Engine {
	handler := NewAuthHandler(tokens, config.CookieConfig{Path: "/"}, logger.NewLogger())

	router := gin.New()
	router.POST("/api/admin/login", handler.Login)
	router.POST("/api/admin/logout", handler.Logout)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func findSessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestLogin_Success_SetsSessionCookie(t *testing.T) {
	tokens := auth.NewSessionTokenService("secret", "admin", "password", 24)
	router := newAuthRouter(tokens)

	w := postJSON(router, "/api/admin/login", `{"username":"admin","password":"password"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	cookie := findSessionCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 24*60*60, cookie.MaxAge)

	claims, err := tokens.Verify(cookie.Value)
	require.NoError(t, err)
	assert.True(t, claims.Authenticated)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	tokens := auth.NewSessionTokenService("secret", "admin", "password", 24)
	router := newAuthRouter(tokens)

	w := postJSON(router, "/api/admin/login", `{"username":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")
	assert.Nil(t, findSessionCookie(w))
}

func TestLogin_MissingFields(t *testing.T) {
	tokens := auth.NewSessionTokenService("secret", "admin", "password", 24)
	router := newAuthRouter(tokens)

	for _, body := range []string{`{}`, `{"username":"admin"}`, `not json`} {
		w := postJSON(router, "/api/admin/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestLogin_UnconfiguredCredentials_GenericError(t *testing.T) {
	tokens := auth.NewSessionTokenService("secret", "", "", 24)
	router := newAuthRouter(tokens)

	w := postJSON(router, "/api/admin/login", `{"username":"admin","password":"password"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "credentials are not set",
		"configuration details must stay out of the response")
}

func TestLogout_AlwaysSucceedsAndClearsCookie(t *testing.T) {
	tokens := auth.NewSessionTokenService("secret", "admin", "password", 24)
	router := newAuthRouter(tokens)

	// No cookie, bogus cookie, valid cookie: all the same outcome.
	w := postJSON(router, "/api/admin/logout", ``)
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := findSessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
