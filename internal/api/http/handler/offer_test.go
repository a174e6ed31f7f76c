package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/freejob-server/internal/api/http/context"
	"github.com/dtroode/freejob-server/internal/mocks"
	"github.com/dtroode/freejob-server/internal/model"
	"github.com/dtroode/freejob-server/internal/testutil"
)

func newTestOffer(t *testing.T) (*Offer, *mocks.OfferService) {
	t.Helper()

	svc := mocks.NewOfferService(t)
	return NewOffer(svc, httpctx.NewManager(), testutil.MakeNoopLogger()), svc
}

func validOfferBody() map[string]any {
	return map[string]any{
		"title":        "Backend developer",
		"location":     "Remote",
		"salary":       5000,
		"requirements": "Go",
		"description":  "Build services",
		"start_date":   "2025-03-01T00:00:00Z",
		"end_date":     "2025-06-01T00:00:00Z",
	}
}

func TestOffer_Create(t *testing.T) {
	userID := uuid.New()
	offerID := uuid.New()

	t.Run("created", func(t *testing.T) {
		h, svc := newTestOffer(t)
		svc.On("CreateOffer", mock.Anything, userID, mock.MatchedBy(func(d model.OfferDescription) bool {
			return d.Title == "Backend developer" && d.Salary == 5000 && d.EndDate.After(d.StartDate)
		})).Return(model.Offer{ID: offerID}, nil).Once()

		rec := doRequest(t, newTestEngine(http.MethodPost, "/offers", userID, h.Create), http.MethodPost, "/offers", validOfferBody())
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, offerID, decodeBody[idResponse](t, rec).ID)
	})

	t.Run("end before start", func(t *testing.T) {
		h, _ := newTestOffer(t)
		body := validOfferBody()
		body["end_date"] = "2025-01-01T00:00:00Z"

		rec := doRequest(t, newTestEngine(http.MethodPost, "/offers", userID, h.Create), http.MethodPost, "/offers", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeBody[errorResponse](t, rec).Details, "end_date")
	})

	t.Run("negative salary", func(t *testing.T) {
		h, _ := newTestOffer(t)
		body := validOfferBody()
		body["salary"] = -1

		rec := doRequest(t, newTestEngine(http.MethodPost, "/offers", userID, h.Create), http.MethodPost, "/offers", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		h, _ := newTestOffer(t)

		rec := doRequest(t, newTestEngine(http.MethodPost, "/offers", uuid.Nil, h.Create), http.MethodPost, "/offers", validOfferBody())
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOffer_GetAndList(t *testing.T) {
	userID := uuid.New()
	offer := model.Offer{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Description: model.OfferDescription{Title: "Designer", StartDate: time.Now().UTC()},
		Status:      model.OfferStatusActive,
	}

	h, svc := newTestOffer(t)
	svc.On("GetOffer", mock.Anything, offer.ID).Return(offer, nil).Once()
	svc.On("ListOffers", mock.Anything, 10, 5).Return([]model.Offer{offer}, nil).Once()

	rec := doRequest(t, newTestEngine(http.MethodGet, "/offers/:id", userID, h.Get), http.MethodGet, "/offers/"+offer.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[offerResponse](t, rec)
	assert.Equal(t, offer.ID, got.ID)
	assert.Equal(t, "Designer", got.Description.Title)
	assert.Equal(t, "active", got.Status)
	assert.NotNil(t, got.Applications)

	rec = doRequest(t, newTestEngine(http.MethodGet, "/offers", userID, h.List), http.MethodGet, "/offers?limit=10&offset=5", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]offerResponse](t, rec), 1)

	rec = doRequest(t, newTestEngine(http.MethodGet, "/offers/:id", userID, h.Get), http.MethodGet, "/offers/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, newTestEngine(http.MethodGet, "/offers", userID, h.List), http.MethodGet, "/offers?limit=-1", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestOffer_Apply(t *testing.T) {
	userID := uuid.New()
	offerID := uuid.New()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "applied", wantStatus: http.StatusCreated},
		{name: "duplicate", err: model.ErrAlreadyExists, wantStatus: http.StatusConflict},
		{name: "archived", err: model.ErrOfferNotActive, wantStatus: http.StatusConflict},
		{name: "missing offer", err: model.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestOffer(t)
			svc.On("ApplyOffer", mock.Anything, offerID, userID).
				Return(model.Application{OfferID: offerID, UserID: userID, CreatedAt: now}, tt.err).Once()

			rec := doRequest(t, newTestEngine(http.MethodPost, "/offers/:id/apply", userID, h.Apply), http.MethodPost, "/offers/"+offerID.String()+"/apply", nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				got := decodeBody[applicationResponse](t, rec)
				assert.Equal(t, offerID, got.OfferID)
				assert.True(t, now.Equal(got.CreatedAt))
			}
		})
	}
}

func TestOffer_OwnerOperations(t *testing.T) {
	userID := uuid.New()
	offerID := uuid.New()
	target := "/offers/" + offerID.String()

	h, svc := newTestOffer(t)
	svc.On("ArchiveOffer", mock.Anything, offerID, userID).Return(nil).Once()
	svc.On("DeleteOffer", mock.Anything, offerID, userID).Return(model.ErrForbidden).Once()
	svc.On("UpdateOffer", mock.Anything, offerID, userID, mock.Anything).Return(model.Offer{ID: offerID, Status: model.OfferStatusActive}, nil).Once()

	rec := doRequest(t, newTestEngine(http.MethodPost, "/offers/:id/archive", userID, h.Archive), http.MethodPost, target+"/archive", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, newTestEngine(http.MethodDelete, "/offers/:id", userID, h.Delete), http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, newTestEngine(http.MethodPut, "/offers/:id", userID, h.Update), http.MethodPut, target, validOfferBody())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, offerID, decodeBody[offerResponse](t, rec).ID)
}
