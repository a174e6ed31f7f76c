package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/metrics"
	"github.com/dtroode/freejob-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, registration model.Registration) (model.User, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
	EmailAvailable(ctx context.Context, email string) (bool, error)
}

// TokenService defines session refresh and revoke operations.
type TokenService interface {
	Refresh(ctx context.Context, refreshTokenID string) (model.Session, error)
	Logout(ctx context.Context, refreshTokenID string) error
	LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService AuthService,
	tokenService TokenService,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// Register creates a user and responds with its ID.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.toModel())
	if err != nil {
		h.observe("register", err)
		handleError(c, h.logger, "Auth handler: registration", err)
		return
	}
	h.observe("register", nil)

	c.JSON(http.StatusCreated, idResponse{ID: user.ID})
}

// EmailAvailable reports whether an email can still be registered.
func (h *Auth) EmailAvailable(c *gin.Context) {
	var query emailAvailableQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	available, err := h.authService.EmailAvailable(c.Request.Context(), query.Email)
	if err != nil {
		handleError(c, h.logger, "Auth handler: email availability", err)
		return
	}

	c.JSON(http.StatusOK, emailAvailableResponse{Available: available})
}

// Login exchanges credentials for a session.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.observe("login", err)
		handleError(c, h.logger, "Auth handler: login", err)
		return
	}
	h.observe("login", nil)

	c.JSON(http.StatusOK, newSessionResponse(session))
}

// Refresh issues a new access token for a refresh token.
func (h *Auth) Refresh(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	session, err := h.tokenService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.observe("refresh", err)
		handleError(c, h.logger, "Auth handler: refresh", err)
		return
	}
	h.observe("refresh", nil)

	c.JSON(http.StatusOK, newSessionResponse(session))
}

// Logout revokes a refresh token.
func (h *Auth) Logout(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	if err := h.tokenService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		h.observe("logout", err)
		handleError(c, h.logger, "Auth handler: logout", err)
		return
	}
	h.observe("logout", nil)

	c.Status(http.StatusNoContent)
}

// LogoutAll revokes every refresh token of the authenticated user.
func (h *Auth) LogoutAll(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		handleError(c, h.logger, "Auth handler: logout all", model.ErrUnauthorized)
		return
	}

	if _, err := h.tokenService.LogoutAll(c.Request.Context(), userID); err != nil {
		handleError(c, h.logger, "Auth handler: logout all", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Auth) observe(operation string, err error) {
	if h.metrics == nil {
		return
	}

	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrAlreadyExists),
		errors.Is(err, model.ErrInvalidEmail), errors.Is(err, model.ErrInvalidPasswordHash):
		outcome = metrics.OutcomeFailure
	default:
		outcome = metrics.OutcomeError
	}
	h.metrics.ObserveAuth(operation, outcome)
}
