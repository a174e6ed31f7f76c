package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/freejob-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `u.id, u.email, u.password_hash, u.name, u.last_name, u.phone, u.roles, u.skills, u.ratings,
	u.status, u.created_at, u.updated_at,
	ARRAY(SELECT a.offer_id FROM applications a WHERE a.user_id = u.id ORDER BY a.created_at) AS applications,
	ARRAY(SELECT o.id FROM offers o WHERE o.user_id = u.id ORDER BY o.created_at) AS offers`

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user. A taken email is reported as ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	query := `INSERT INTO users (id, email, password_hash, name, last_name, phone, roles, skills, ratings, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email.String(), user.PasswordHash.String(), user.Name, user.LastName, user.Phone,
		nonNil(user.Roles), nonNil(user.Skills), nonNil(user.Ratings), string(user.Status),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetAuthView loads id, password hash and status by email without touching profile columns.
func (r *UserRepository) GetAuthView(ctx context.Context, email model.Email) (model.UserAuthView, error) {
	query := `SELECT id, password_hash, status FROM users WHERE email = $1`

	var (
		view   model.UserAuthView
		hash   string
		status string
	)
	err := r.db.QueryRow(ctx, query, email.String()).Scan(&view.ID, &hash, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserAuthView{}, model.ErrNotFound
		}
		return model.UserAuthView{}, fmt.Errorf("failed to get auth view: %w", err)
	}

	view.Status, err = model.ParseUserStatus(status)
	if err != nil {
		return model.UserAuthView{}, fmt.Errorf("failed to get auth view: %w", err)
	}
	view.PasswordHash = model.PasswordHash(hash)

	return view, nil
}

// Save updates credentials, profile and status. Application and offer lists are owned by their own tables.
func (r *UserRepository) Save(ctx context.Context, user model.User) error {
	query := `UPDATE users SET email = $2, password_hash = $3, name = $4, last_name = $5, phone = $6,
			  roles = $7, skills = $8, ratings = $9, status = $10, updated_at = $11
			  WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		user.ID, user.Email.String(), user.PasswordHash.String(), user.Name, user.LastName, user.Phone,
		nonNil(user.Roles), nonNil(user.Skills), nonNil(user.Ratings), string(user.Status),
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email model.Email) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return exists, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u ORDER BY u.created_at, u.id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var (
		user   model.User
		email  string
		hash   string
		status string
	)
	err := row.Scan(
		&user.ID, &email, &hash, &user.Name, &user.LastName, &user.Phone, &user.Roles, &user.Skills, &user.Ratings,
		&status, &user.CreatedAt, &user.UpdatedAt, &user.Applications, &user.Offers,
	)
	if err != nil {
		return model.User{}, err
	}

	user.Status, err = model.ParseUserStatus(status)
	if err != nil {
		return model.User{}, err
	}
	user.Email = model.Email(email)
	user.PasswordHash = model.PasswordHash(hash)

	return user, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
