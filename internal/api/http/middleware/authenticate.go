package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/model"
)

const bearerScheme = "bearer"

// Authenticator resolves the user behind an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user ID into the request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a usable access token.
// A locked user gets 403, a rejected token 401 and any other failure 500.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		unauthorized(c, "missing authorization token")
		return
	}

	userID, err := m.authenticator.Authenticate(c.Request.Context(), tokenString)
	switch {
	case errors.Is(err, model.ErrUserLocked):
		m.logger.Info("Authenticate middleware: locked user rejected",
			"path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user is locked"})
		return
	case errors.Is(err, model.ErrUnauthorized):
		unauthorized(c, "invalid authorization token")
		return
	case err != nil:
		m.logger.Error("Authenticate middleware: failed to authenticate",
			"path", c.Request.URL.Path,
			"error", err.Error())
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	case userID == uuid.Nil:
		unauthorized(c, "invalid authorization token")
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetUserIDToContext(c.Request.Context(), userID))
	c.Next()
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="freejob"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
