package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/freejob-server/internal/model"
)

var (
	_ model.OfferStore       = (*OfferRepository)(nil)
	_ model.ApplicationStore = (*ApplicationRepository)(nil)
)

const offerColumns = `o.id, o.user_id, o.title, o.location, o.salary, o.requirements, o.description,
	o.start_date, o.end_date, o.status, o.created_at, o.updated_at,
	ARRAY(SELECT a.user_id FROM applications a WHERE a.offer_id = o.id ORDER BY a.created_at) AS applications`

type OfferRepository struct {
	db Querier
}

func NewOfferRepository(db Querier) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer model.Offer) error {
	query := `INSERT INTO offers (id, user_id, title, location, salary, requirements, description,
			  start_date, end_date, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	d := offer.Description
	_, err := r.db.Exec(ctx, query,
		offer.ID, offer.UserID, d.Title, d.Location, d.Salary, d.Requirements, d.Description,
		d.StartDate, d.EndDate, string(offer.Status), offer.CreatedAt, offer.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to create offer: %w", err)
	}

	return nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers o WHERE o.id = $1`

	offer, err := scanOffer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Offer{}, model.ErrNotFound
		}
		return model.Offer{}, fmt.Errorf("failed to get offer by id: %w", err)
	}

	return offer, nil
}

func (r *OfferRepository) Save(ctx context.Context, offer model.Offer) error {
	query := `UPDATE offers SET title = $2, location = $3, salary = $4, requirements = $5, description = $6,
			  start_date = $7, end_date = $8, status = $9, updated_at = $10
			  WHERE id = $1`

	d := offer.Description
	tag, err := r.db.Exec(ctx, query,
		offer.ID, d.Title, d.Location, d.Salary, d.Requirements, d.Description,
		d.StartDate, d.EndDate, string(offer.Status), offer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *OfferRepository) ListActive(ctx context.Context, limit, offset int) ([]model.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers o WHERE o.status = $1
			  ORDER BY o.created_at DESC, o.id LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, string(model.OfferStatusActive), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	offers := make([]model.Offer, 0, limit)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate offers: %w", err)
	}

	return offers, nil
}

func scanOffer(row pgx.Row) (model.Offer, error) {
	var (
		offer  model.Offer
		status string
	)
	d := &offer.Description
	err := row.Scan(
		&offer.ID, &offer.UserID, &d.Title, &d.Location, &d.Salary, &d.Requirements, &d.Description,
		&d.StartDate, &d.EndDate, &status, &offer.CreatedAt, &offer.UpdatedAt, &offer.Applications,
	)
	if err != nil {
		return model.Offer{}, err
	}

	offer.Status, err = model.ParseOfferStatus(status)
	if err != nil {
		return model.Offer{}, err
	}

	return offer, nil
}

type ApplicationRepository struct {
	db Querier
}

func NewApplicationRepository(db Querier) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create stores an application. Applying twice is ErrAlreadyExists, a missing offer or user is ErrNotFound.
func (r *ApplicationRepository) Create(ctx context.Context, application model.Application) error {
	query := `INSERT INTO applications (offer_id, user_id, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, application.OfferID, application.UserID, application.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return model.ErrAlreadyExists
		case isForeignKeyViolation(err):
			return model.ErrNotFound
		default:
			return fmt.Errorf("failed to create application: %w", err)
		}
	}

	return nil
}
