package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/freejob-server/internal/api/http/context"
	"github.com/dtroode/freejob-server/internal/mocks"
	"github.com/dtroode/freejob-server/internal/model"
	"github.com/dtroode/freejob-server/internal/testutil"
)

func TestResume_Upload(t *testing.T) {
	userID := uuid.New()
	pdf := []byte("%PDF-1.4 resume")

	svc := mocks.NewResumeService(t)
	svc.On("Upload", mock.Anything, userID, mock.Anything, int64(len(pdf)), "application/pdf").
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(2).(io.Reader))
			assert.NoError(t, err)
			assert.Equal(t, pdf, data)
		}).
		Return(nil).Once()
	h := NewResume(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
	engine := newTestEngine(http.MethodPut, "/resume", userID, h.Upload)

	req := httptest.NewRequest(http.MethodPut, "/resume", bytes.NewReader(pdf))
	req.Header.Set("Content-Type", "application/pdf")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/resume", bytes.NewReader(make([]byte, MaxResumeSize+1)))
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/resume", http.NoBody)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusLengthRequired, rec.Code)
}

func TestResume_Download(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewResumeService(t)
	svc.On("Download", mock.Anything, userID).Return(io.NopCloser(strings.NewReader("cv data")), nil).Once()
	h := NewResume(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := doRequest(t, newTestEngine(http.MethodGet, "/resume", userID, h.Download), http.MethodGet, "/resume", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cv data", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	svc.On("Download", mock.Anything, userID).Return(nil, model.ErrNotFound).Once()
	rec = doRequest(t, newTestEngine(http.MethodGet, "/resume", userID, h.Download), http.MethodGet, "/resume", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResume_Delete(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewResumeService(t)
	svc.On("Delete", mock.Anything, userID).Return(nil).Once()
	h := NewResume(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := doRequest(t, newTestEngine(http.MethodDelete, "/resume", userID, h.Delete), http.MethodDelete, "/resume", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, newTestEngine(http.MethodDelete, "/resume", uuid.Nil, h.Delete), http.MethodDelete, "/resume", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth_Check(t *testing.T) {
	ok := NewHealth(pingerFunc(func(context.Context) error { return nil }), testutil.MakeNoopLogger())
	rec := doRequest(t, newTestEngine(http.MethodGet, "/healthz", uuid.Nil, ok.Check), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	down := NewHealth(pingerFunc(func(context.Context) error { return assert.AnError }), testutil.MakeNoopLogger())
	rec = doRequest(t, newTestEngine(http.MethodGet, "/healthz", uuid.Nil, down.Check), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{model.ErrInvalidEmail, http.StatusBadRequest},
		{model.ErrInvalidPasswordHash, http.StatusBadRequest},
		{model.ErrInvalidOffer, http.StatusBadRequest},
		{model.ErrUnauthorized, http.StatusUnauthorized},
		{model.ErrUserLocked, http.StatusForbidden},
		{model.ErrForbidden, http.StatusForbidden},
		{model.ErrNotFound, http.StatusNotFound},
		{model.ErrAlreadyExists, http.StatusConflict},
		{model.ErrOfferNotActive, http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got, _ := statusFor(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}
