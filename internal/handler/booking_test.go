package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wearecreatives/api/internal/handler"
	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/service"
)

func newBookingHandler(t *testing.T) *handler.BookingHandler {
	t.Helper()
	store := newTestStore(t)
	svc := service.NewBookingService(store, newTestValidator(t), testLogger())
	return handler.NewBookingHandler(svc, testLogger())
}

func TestBookingHandler_Create(t *testing.T) {
	t.Run("valid booking", func(t *testing.T) {
		h := newBookingHandler(t)

		body := `{"firstName":"Tom","lastName":"Hale","email":"tom@example.com","serviceId":2,"message":"Weekend slot if possible"}`
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var booking model.Booking
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&booking))
		assert.Equal(t, 1, booking.ID)
		assert.Equal(t, model.BookingStatusPending, booking.Status)
		if assert.NotNil(t, booking.ServiceID) {
			assert.Equal(t, 2, *booking.ServiceID)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		h := newBookingHandler(t)

		body := `{"email":"tom@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errRes handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&errRes))
		assert.Contains(t, errRes.Errors, "firstName")
		assert.Contains(t, errRes.Errors, "lastName")
	})
}

func TestBookingHandler_Get(t *testing.T) {
	h := newBookingHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/5", nil)
	req.SetPathValue("id", "5")
	rr := httptest.NewRecorder()

	h.HandleGet(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
