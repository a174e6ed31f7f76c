package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/model"
)

// OfferService defines job offer operations.
type OfferService interface {
	CreateOffer(ctx context.Context, userID uuid.UUID, description model.OfferDescription) (model.Offer, error)
	GetOffer(ctx context.Context, id uuid.UUID) (model.Offer, error)
	ListOffers(ctx context.Context, limit, offset int) ([]model.Offer, error)
	UpdateOffer(ctx context.Context, offerID, userID uuid.UUID, description model.OfferDescription) (model.Offer, error)
	ApplyOffer(ctx context.Context, offerID, userID uuid.UUID) (model.Application, error)
	ArchiveOffer(ctx context.Context, offerID, userID uuid.UUID) error
	DeleteOffer(ctx context.Context, offerID, userID uuid.UUID) error
}

// Offer handles HTTP endpoints for job offers.
type Offer struct {
	offerService   OfferService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewOffer creates a new Offer handler.
func NewOffer(offerService OfferService, contextManager model.ContextManager, logger *logger.Logger) *Offer {
	return &Offer{
		offerService:   offerService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Offer) Create(c *gin.Context) {
	userID, ok := h.userID(c, "Offer handler: create offer")
	if !ok {
		return
	}

	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	offer, err := h.offerService.CreateOffer(c.Request.Context(), userID, req.toModel())
	if err != nil {
		handleError(c, h.logger, "Offer handler: create offer", err)
		return
	}

	c.JSON(http.StatusCreated, idResponse{ID: offer.ID})
}

func (h *Offer) Get(c *gin.Context) {
	offerID, ok := h.offerID(c)
	if !ok {
		return
	}

	offer, err := h.offerService.GetOffer(c.Request.Context(), offerID)
	if err != nil {
		handleError(c, h.logger, "Offer handler: get offer", err)
		return
	}

	c.JSON(http.StatusOK, newOfferResponse(offer))
}

func (h *Offer) List(c *gin.Context) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c, err)
		return
	}

	offers, err := h.offerService.ListOffers(c.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		handleError(c, h.logger, "Offer handler: list offers", err)
		return
	}

	out := make([]offerResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, newOfferResponse(o))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Offer) Update(c *gin.Context) {
	userID, ok := h.userID(c, "Offer handler: update offer")
	if !ok {
		return
	}
	offerID, ok := h.offerID(c)
	if !ok {
		return
	}

	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	offer, err := h.offerService.UpdateOffer(c.Request.Context(), offerID, userID, req.toModel())
	if err != nil {
		handleError(c, h.logger, "Offer handler: update offer", err)
		return
	}

	c.JSON(http.StatusOK, newOfferResponse(offer))
}

func (h *Offer) Apply(c *gin.Context) {
	userID, ok := h.userID(c, "Offer handler: apply offer")
	if !ok {
		return
	}
	offerID, ok := h.offerID(c)
	if !ok {
		return
	}

	application, err := h.offerService.ApplyOffer(c.Request.Context(), offerID, userID)
	if err != nil {
		handleError(c, h.logger, "Offer handler: apply offer", err)
		return
	}

	c.JSON(http.StatusCreated, applicationResponse{
		OfferID:   application.OfferID,
		UserID:    application.UserID,
		CreatedAt: application.CreatedAt,
	})
}

func (h *Offer) Archive(c *gin.Context) {
	h.changeStatus(c, "Offer handler: archive offer", h.offerService.ArchiveOffer)
}

func (h *Offer) Delete(c *gin.Context) {
	h.changeStatus(c, "Offer handler: delete offer", h.offerService.DeleteOffer)
}

func (h *Offer) changeStatus(c *gin.Context, op string, change func(ctx context.Context, offerID, userID uuid.UUID) error) {
	userID, ok := h.userID(c, op)
	if !ok {
		return
	}
	offerID, ok := h.offerID(c)
	if !ok {
		return
	}

	if err := change(c.Request.Context(), offerID, userID); err != nil {
		handleError(c, h.logger, op, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Offer) userID(c *gin.Context, op string) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		handleError(c, h.logger, op, model.ErrUnauthorized)
	}
	return userID, ok
}

func (h *Offer) offerID(c *gin.Context) (uuid.UUID, bool) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Error:   "invalid request",
			Details: map[string]string{"id": "must be a valid UUID"},
		})
		return uuid.Nil, false
	}
	return offerID, true
}
