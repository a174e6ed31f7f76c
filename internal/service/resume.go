package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/model"
)

const resumePrefix = "resumes/"

// Resume stores one résumé file per user in object storage.
type Resume struct {
	storage model.Storage
	users   model.UserStore
	logger  *logger.Logger
}

// NewResume creates new Resume service instance.
func NewResume(storage model.Storage, users model.UserStore, logger *logger.Logger) *Resume {
	return &Resume{
		storage: storage,
		users:   users,
		logger:  logger,
	}
}

func resumeKey(userID uuid.UUID) string {
	return resumePrefix + userID.String()
}

// Upload replaces the résumé of userID.
func (s *Resume) Upload(ctx context.Context, userID uuid.UUID, reader io.Reader, size int64, contentType string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.storage.Upload(ctx, resumeKey(userID), reader, size, contentType); err != nil {
		s.logger.Error("Resume service: failed to upload resume",
			"user_id", userID.String(),
			"error", err.Error())
		return fmt.Errorf("failed to upload resume: %w", err)
	}

	s.logger.Info("Resume service: resume uploaded",
		"user_id", userID.String(),
		"size", size)

	return nil
}

// Download opens the résumé of userID. The caller closes the reader.
func (s *Resume) Download(ctx context.Context, userID uuid.UUID) (io.ReadCloser, error) {
	reader, err := s.storage.Download(ctx, resumeKey(userID))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to download resume: %w", err)
	}
	return reader, nil
}

// Delete removes the résumé of userID.
func (s *Resume) Delete(ctx context.Context, userID uuid.UUID) error {
	key := resumeKey(userID)

	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check resume: %w", err)
	}
	if !exists {
		return model.ErrNotFound
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	s.logger.Info("Resume service: resume deleted",
		"user_id", userID.String())

	return nil
}
