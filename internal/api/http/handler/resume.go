package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/model"
)

// MaxResumeSize bounds the body accepted by the résumé upload.
const MaxResumeSize = 5 << 20

const defaultResumeContentType = "application/octet-stream"

// ResumeService defines résumé storage operations.
type ResumeService interface {
	Upload(ctx context.Context, userID uuid.UUID, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, userID uuid.UUID) (io.ReadCloser, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Resume handles HTTP endpoints for the authenticated user's résumé.
type Resume struct {
	resumeService  ResumeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewResume creates a new Resume handler.
func NewResume(resumeService ResumeService, contextManager model.ContextManager, logger *logger.Logger) *Resume {
	return &Resume{
		resumeService:  resumeService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Upload stores the raw request body as the résumé.
func (h *Resume) Upload(c *gin.Context) {
	userID, ok := h.userID(c, "Resume handler: upload")
	if !ok {
		return
	}

	size := c.Request.ContentLength
	if size <= 0 {
		c.AbortWithStatusJSON(http.StatusLengthRequired, errorResponse{Error: "content length required"})
		return
	}
	if size > MaxResumeSize {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "resume too large"})
		return
	}

	contentType := c.ContentType()
	if contentType == "" {
		contentType = defaultResumeContentType
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, MaxResumeSize)
	if err := h.resumeService.Upload(c.Request.Context(), userID, body, size, contentType); err != nil {
		handleError(c, h.logger, "Resume handler: upload", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Download streams the stored résumé.
func (h *Resume) Download(c *gin.Context) {
	userID, ok := h.userID(c, "Resume handler: download")
	if !ok {
		return
	}

	reader, err := h.resumeService.Download(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, "Resume handler: download", err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, -1, defaultResumeContentType, reader, map[string]string{
		"Content-Disposition": `attachment; filename="resume"`,
	})
}

// Delete removes the stored résumé.
func (h *Resume) Delete(c *gin.Context) {
	userID, ok := h.userID(c, "Resume handler: delete")
	if !ok {
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), userID); err != nil {
		handleError(c, h.logger, "Resume handler: delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Resume) userID(c *gin.Context, op string) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		handleError(c, h.logger, op, model.ErrUnauthorized)
	}
	return userID, ok
}
