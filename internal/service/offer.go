package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/model"
)

// Offer manages job offers and applications to them.
type Offer struct {
	offers       model.OfferStore
	applications model.ApplicationStore
	users        model.UserStore
	now          func() time.Time
	logger       *logger.Logger
}

// NewOffer creates new Offer service instance.
func NewOffer(
	offers model.OfferStore,
	applications model.ApplicationStore,
	users model.UserStore,
	logger *logger.Logger,
) *Offer {
	return &Offer{
		offers:       offers,
		applications: applications,
		users:        users,
		now:          utcNow,
		logger:       logger,
	}
}

// CreateOffer publishes an active offer owned by userID.
func (s *Offer) CreateOffer(ctx context.Context, userID uuid.UUID, description model.OfferDescription) (model.Offer, error) {
	description, err := model.NewOfferDescription(description)
	if err != nil {
		return model.Offer{}, err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.Offer{}, err
	}

	offer := user.IssueOffer(uuid.New(), description, s.now())

	if err := s.offers.Create(ctx, offer); err != nil {
		s.logger.Error("Offer service: failed to create offer",
			"user_id", userID.String(),
			"error", err.Error())
		return model.Offer{}, fmt.Errorf("failed to create offer: %w", err)
	}

	s.logger.Info("Offer service: offer created",
		"user_id", userID.String(),
		"offer_id", offer.ID.String())

	return offer, nil
}

// GetOffer returns the offer with id regardless of its status.
func (s *Offer) GetOffer(ctx context.Context, id uuid.UUID) (model.Offer, error) {
	return s.getOffer(ctx, id)
}

// ListOffers returns a page of active offers, newest first.
func (s *Offer) ListOffers(ctx context.Context, limit, offset int) ([]model.Offer, error) {
	limit, offset = normalizePage(limit, offset)

	offers, err := s.offers.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// UpdateOffer replaces the description of an active offer owned by userID.
func (s *Offer) UpdateOffer(ctx context.Context, offerID, userID uuid.UUID, description model.OfferDescription) (model.Offer, error) {
	description, err := model.NewOfferDescription(description)
	if err != nil {
		return model.Offer{}, err
	}

	offer, err := s.getOwnedOffer(ctx, offerID, userID)
	if err != nil {
		return model.Offer{}, err
	}

	if err := offer.EnsureActive(); err != nil {
		return model.Offer{}, err
	}

	offer.Update(description, s.now())

	if err := s.save(ctx, offer); err != nil {
		return model.Offer{}, err
	}
	return offer, nil
}

// ApplyOffer records an application of userID to an active offer.
// Applying twice yields ErrAlreadyExists.
func (s *Offer) ApplyOffer(ctx context.Context, offerID, userID uuid.UUID) (model.Application, error) {
	offer, err := s.getOffer(ctx, offerID)
	if err != nil {
		return model.Application{}, err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.Application{}, err
	}

	application, err := offer.Apply(user.ID, s.now())
	if err != nil {
		return model.Application{}, err
	}

	if err := s.applications.Create(ctx, application); err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyExists):
			return model.Application{}, model.ErrAlreadyExists
		case errors.Is(err, model.ErrNotFound):
			return model.Application{}, model.ErrNotFound
		}
		return model.Application{}, fmt.Errorf("failed to create application: %w", err)
	}

	s.logger.Info("Offer service: application created",
		"user_id", userID.String(),
		"offer_id", offerID.String())

	return application, nil
}

// ArchiveOffer archives an offer owned by userID.
func (s *Offer) ArchiveOffer(ctx context.Context, offerID, userID uuid.UUID) error {
	offer, err := s.getOwnedOffer(ctx, offerID, userID)
	if err != nil {
		return err
	}

	offer.Archive(s.now())
	return s.save(ctx, offer)
}

// DeleteOffer soft-deletes an offer owned by userID.
func (s *Offer) DeleteOffer(ctx context.Context, offerID, userID uuid.UUID) error {
	offer, err := s.getOwnedOffer(ctx, offerID, userID)
	if err != nil {
		return err
	}

	offer.Delete(s.now())
	return s.save(ctx, offer)
}

func (s *Offer) getOwnedOffer(ctx context.Context, offerID, userID uuid.UUID) (model.Offer, error) {
	offer, err := s.getOffer(ctx, offerID)
	if err != nil {
		return model.Offer{}, err
	}

	if err := offer.EnsureOwner(userID); err != nil {
		s.logger.Info("Offer service: user does not own offer",
			"user_id", userID.String(),
			"offer_id", offerID.String())
		return model.Offer{}, err
	}
	return offer, nil
}

func (s *Offer) getOffer(ctx context.Context, id uuid.UUID) (model.Offer, error) {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Offer{}, model.ErrNotFound
		}
		return model.Offer{}, fmt.Errorf("failed to get offer: %w", err)
	}
	return offer, nil
}

func (s *Offer) getUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *Offer) save(ctx context.Context, offer model.Offer) error {
	if err := s.offers.Save(ctx, offer); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		s.logger.Error("Offer service: failed to save offer",
			"offer_id", offer.ID.String(),
			"error", err.Error())
		return fmt.Errorf("failed to save offer: %w", err)
	}

	s.logger.Info("Offer service: offer saved",
		"offer_id", offer.ID.String(),
		"status", string(offer.Status))
	return nil
}
