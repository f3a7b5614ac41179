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

func newCreativeHandler(t *testing.T) *handler.CreativeHandler {
	t.Helper()
	store := newTestStore(t)
	svc := service.NewCreativeService(store, newTestValidator(t), testLogger())
	return handler.NewCreativeHandler(svc, testLogger())
}

func TestCreativeHandler_Create(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		h := newCreativeHandler(t)

		body := `{"artistName":"Sarah Chen","specialty":"tattoo","bio":"Fine line work"}`
		req := httptest.NewRequest(http.MethodPost, "/api/creatives", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var profile model.CreativeProfile
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&profile))
		assert.Equal(t, 1, profile.ID)
		assert.Equal(t, "Sarah Chen", profile.ArtistName)
		assert.Equal(t, model.DefaultRating, profile.Rating)
		assert.False(t, profile.IsVerified)
	})

	t.Run("missing required fields", func(t *testing.T) {
		h := newCreativeHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/creatives", bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errRes handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&errRes))
		assert.Equal(t, "Invalid creative profile data", errRes.Message)
		assert.Contains(t, errRes.Errors, "artistName")
		assert.Contains(t, errRes.Errors, "specialty")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		h := newCreativeHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/creatives", bytes.NewBufferString(`{"artistName":`))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errRes handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&errRes))
		assert.Equal(t, "Invalid JSON body", errRes.Message)
	})
}

func TestCreativeHandler_Get(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		h := newCreativeHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/creatives/42", nil)
		req.SetPathValue("id", "42")
		rr := httptest.NewRecorder()

		h.HandleGet(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-integer id", func(t *testing.T) {
		h := newCreativeHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/creatives/abc", nil)
		req.SetPathValue("id", "abc")
		rr := httptest.NewRecorder()

		h.HandleGet(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errRes handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&errRes))
		assert.Equal(t, "Invalid creative ID", errRes.Message)
	})
}

func TestCreativeHandler_Update(t *testing.T) {
	h := newCreativeHandler(t)

	createBody := `{"artistName":"Luna","specialty":"illustration"}`
	createReq := httptest.NewRequest(http.MethodPost, "/api/creatives", bytes.NewBufferString(createBody))
	createRR := httptest.NewRecorder()
	h.HandleCreate(createRR, createReq)
	assert.Equal(t, http.StatusCreated, createRR.Code)

	updateBody := `{"bio":"Dark botanical illustration","location":"Portland, OR"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/creatives/1", bytes.NewBufferString(updateBody))
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()

	h.HandleUpdate(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var profile model.CreativeProfile
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&profile))
	assert.Equal(t, "Luna", profile.ArtistName)
	if assert.NotNil(t, profile.Bio) {
		assert.Equal(t, "Dark botanical illustration", *profile.Bio)
	}
	if assert.NotNil(t, profile.Location) {
		assert.Equal(t, "Portland, OR", *profile.Location)
	}
}

func TestCreativeHandler_List(t *testing.T) {
	h := newCreativeHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/creatives", nil)
	rr := httptest.NewRecorder()

	h.HandleList(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	// Empty store must serialize as [], not null.
	assert.Equal(t, "[]\n", rr.Body.String())
}
