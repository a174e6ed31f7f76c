package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/model"
)

// UserService defines user profile queries.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]model.User, error)
}

// User handles HTTP endpoints for user profiles.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Me responds with the profile of the authenticated user.
func (h *User) Me(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		handleError(c, h.logger, "User handler: get user", model.ErrUnauthorized)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, "User handler: get user", err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// List responds with a page of users.
func (h *User) List(c *gin.Context) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		handleError(c, h.logger, "User handler: list users", err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	c.JSON(http.StatusOK, out)
}
