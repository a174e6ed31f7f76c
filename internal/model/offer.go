package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OfferStore defines persistence operations for offers.
type OfferStore interface {
	Create(ctx context.Context, offer Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (Offer, error)
	// Save updates an existing offer, failing with ErrNotFound if it is gone.
	Save(ctx context.Context, offer Offer) error
	// ListActive returns active offers, newest first.
	ListActive(ctx context.Context, limit, offset int) ([]Offer, error)
}

// ApplicationStore persists applications of users to offers.
type ApplicationStore interface {
	// Create fails with ErrAlreadyExists if the user has already applied.
	Create(ctx context.Context, application Application) error
}

// OfferStatus is the publication state of an offer.
type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "active"
	OfferStatusDeleted  OfferStatus = "deleted"
	OfferStatusArchived OfferStatus = "archived"
)

// ParseOfferStatus converts a stored status string into an OfferStatus.
func ParseOfferStatus(s string) (OfferStatus, error) {
	switch OfferStatus(s) {
	case OfferStatusActive, OfferStatusDeleted, OfferStatusArchived:
		return OfferStatus(s), nil
	default:
		return "", fmt.Errorf("unknown offer status %q", s)
	}
}

// OfferDescription is the editable content of an offer.
type OfferDescription struct {
	Title        string
	Location     string
	Salary       int64
	Requirements string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
}

// NewOfferDescription validates d.
func NewOfferDescription(d OfferDescription) (OfferDescription, error) {
	d.Title = strings.TrimSpace(d.Title)
	switch {
	case d.Title == "":
		return OfferDescription{}, fmt.Errorf("%w: title is required", ErrInvalidOffer)
	case d.Salary < 0:
		return OfferDescription{}, fmt.Errorf("%w: salary cannot be negative", ErrInvalidOffer)
	case d.EndDate.Before(d.StartDate):
		return OfferDescription{}, fmt.Errorf("%w: end date precedes start date", ErrInvalidOffer)
	}

	return d, nil
}

// Offer is a job offer posted by a user.
type Offer struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Description  OfferDescription
	Status       OfferStatus
	Applications []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EnsureActive fails with ErrOfferNotActive for deleted or archived offers.
func (o *Offer) EnsureActive() error {
	switch o.Status {
	case OfferStatusActive:
		return nil
	case OfferStatusDeleted, OfferStatusArchived:
		return ErrOfferNotActive
	default:
		return ErrOfferNotActive
	}
}

// EnsureOwner fails with ErrForbidden unless userID posted the offer.
func (o *Offer) EnsureOwner(userID uuid.UUID) error {
	if o.UserID != userID {
		return ErrForbidden
	}
	return nil
}

func (o *Offer) Update(description OfferDescription, now time.Time) {
	o.Description = description
	o.UpdatedAt = now
}

func (o *Offer) Delete(now time.Time) {
	o.Status = OfferStatusDeleted
	o.UpdatedAt = now
}

func (o *Offer) Archive(now time.Time) {
	o.Status = OfferStatusArchived
	o.UpdatedAt = now
}

// Apply records userID as an applicant. Only active offers accept applications.
func (o *Offer) Apply(userID uuid.UUID, now time.Time) (Application, error) {
	if err := o.EnsureActive(); err != nil {
		return Application{}, err
	}
	o.Applications = append(o.Applications, userID)

	return Application{OfferID: o.ID, UserID: userID, CreatedAt: now}, nil
}

// Application links an applicant to an offer.
type Application struct {
	OfferID   uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}
