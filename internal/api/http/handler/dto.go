package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/model"
)

const tokenTypeBearer = "bearer"

type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

type idResponse struct {
	ID uuid.UUID `json:"id"`
}

type registerRequest struct {
	Email    string   `json:"email" binding:"required"`
	Password string   `json:"password" binding:"required,min=8"`
	Name     string   `json:"name" binding:"required"`
	LastName string   `json:"last_name" binding:"required"`
	Phone    *string  `json:"phone"`
	Roles    []string `json:"roles"`
	Skills   []string `json:"skills"`
}

func (r registerRequest) toModel() model.Registration {
	return model.Registration{
		Email:    r.Email,
		Password: r.Password,
		Profile: model.UserProfile{
			Name:     r.Name,
			LastName: r.LastName,
			Phone:    r.Phone,
			Roles:    r.Roles,
			Skills:   r.Skills,
		},
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type sessionResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token"`
}

func newSessionResponse(s model.Session) sessionResponse {
	return sessionResponse{
		UserID:       s.UserID,
		AccessToken:  s.AccessToken,
		TokenType:    tokenTypeBearer,
		RefreshToken: s.RefreshTokenID.String(),
	}
}

type emailAvailableQuery struct {
	Email string `form:"email" binding:"required"`
}

type emailAvailableResponse struct {
	Available bool `json:"available"`
}

type pageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=0"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

type userResponse struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	LastName     string      `json:"last_name"`
	Phone        *string     `json:"phone,omitempty"`
	Roles        []string    `json:"roles"`
	Skills       []string    `json:"skills"`
	Ratings      []float64   `json:"ratings"`
	Status       string      `json:"status"`
	Applications []uuid.UUID `json:"applications"`
	Offers       []uuid.UUID `json:"offers"`
	CreatedAt    time.Time   `json:"created_at"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Email:        u.Email.String(),
		Name:         u.Name,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Roles:        emptyIfNil(u.Roles),
		Skills:       emptyIfNil(u.Skills),
		Ratings:      emptyIfNil(u.Ratings),
		Status:       string(u.Status),
		Applications: emptyIfNil(u.Applications),
		Offers:       emptyIfNil(u.Offers),
		CreatedAt:    u.CreatedAt,
	}
}

type offerRequest struct {
	Title        string    `json:"title" binding:"required"`
	Location     string    `json:"location" binding:"required"`
	Salary       int64     `json:"salary" binding:"min=0"`
	Requirements string    `json:"requirements"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required,gtefield=StartDate"`
}

func (r offerRequest) toModel() model.OfferDescription {
	return model.OfferDescription{
		Title:        r.Title,
		Location:     r.Location,
		Salary:       r.Salary,
		Requirements: r.Requirements,
		Description:  r.Description,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
	}
}

type offerDescriptionResponse struct {
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Salary       int64     `json:"salary"`
	Requirements string    `json:"requirements"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

type offerResponse struct {
	ID           uuid.UUID                `json:"id"`
	UserID       uuid.UUID                `json:"user_id"`
	Description  offerDescriptionResponse `json:"description"`
	Status       string                   `json:"status"`
	Applications []uuid.UUID              `json:"applications"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

func newOfferResponse(o model.Offer) offerResponse {
	d := o.Description
	return offerResponse{
		ID:     o.ID,
		UserID: o.UserID,
		Description: offerDescriptionResponse{
			Title:        d.Title,
			Location:     d.Location,
			Salary:       d.Salary,
			Requirements: d.Requirements,
			Description:  d.Description,
			StartDate:    d.StartDate,
			EndDate:      d.EndDate,
		},
		Status:       string(o.Status),
		Applications: emptyIfNil(o.Applications),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

type applicationResponse struct {
	OfferID   uuid.UUID `json:"offer_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
