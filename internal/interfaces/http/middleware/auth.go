package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintbox/internal/infrastructure/auth"
	"complaintbox/internal/shared/config"
	"complaintbox/internal/shared/constants"
	"complaintbox/internal/shared/errors"
	"complaintbox/internal/shared/logger"
	"complaintbox/internal/shared/utils"
)

// SessionGate protects the admin dashboard. Every denial resolves the
// same way: redirect to the public entry route, clearing the stale
// cookie when one was presented.
type SessionGate struct {
	tokens *auth.SessionTokenService
	cookie config.CookieConfig
	logger logger.Interface
}

func NewSessionGate(tokens *auth.SessionTokenService, cookie config.CookieConfig, log logger.Interface) *SessionGate {
	return &SessionGate{
		tokens: tokens,
		cookie: cookie,
		logger: log,
	}
}

func (g *SessionGate) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c)
		if token == "" {
			c.Redirect(http.StatusFound, constants.PublicEntryRoute)
			c.Abort()
			return
		}

		claims, err := g.tokens.Verify(token)
		if err != nil {
			if errors.IsTokenExpiredError(err) {
				g.logger.Infow("session expired",
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
				)
			} else {
				g.logger.Warnw("session verification failed",
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
					"error", err,
				)
			}

			utils.ClearSessionCookie(c, g.cookie)
			c.Redirect(http.StatusFound, constants.PublicEntryRoute)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminUser, claims.Subject)
		c.Next()
	}
}
