package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintbox/internal/infrastructure/auth"
	"complaintbox/internal/shared/config"
	"complaintbox/internal/shared/errors"
	"complaintbox/internal/shared/logger"
	"complaintbox/internal/shared/utils"
)

type AuthHandler struct {
	tokens *auth.SessionTokenService
	cookie config.CookieConfig
	logger logger.Interface
}

func NewAuthHandler(tokens *auth.SessionTokenService, cookie config.CookieConfig, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
		cookie: cookie,
		logger: log,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges admin credentials for a session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, err := h.tokens.Issue(req.Username, req.Password)
	if err != nil {
		if errors.IsConfigurationError(err) {
			h.logger.Errorw("login rejected by configuration", "error", err)
		} else if errors.IsInvalidCredentialsError(err) {
			h.logger.Infow("login attempt with invalid credentials",
				"client_ip", c.ClientIP(),
			)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(h.tokens.Validity().Seconds())
	utils.SetSessionCookie(c, h.cookie, token, maxAge)

	h.logger.Infow("admin logged in", "client_ip", c.ClientIP())
	utils.SuccessResponse(c, http.StatusOK, "Login successful", nil)
}

// Logout clears the session cookie. Unconditional: no token validation,
// no server-side state to revoke. Tokens already issued remain valid
// until their own expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookie)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}
