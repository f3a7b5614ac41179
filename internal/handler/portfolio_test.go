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

func newPortfolioHandler(t *testing.T) *handler.PortfolioHandler {
	t.Helper()
	store := newTestStore(t)
	svc := service.NewPortfolioService(store, newTestValidator(t), testLogger())
	return handler.NewPortfolioHandler(svc, testLogger())
}

func createPortfolioItem(t *testing.T, h *handler.PortfolioHandler, body string) model.PortfolioItem {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.HandleCreate(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var item model.PortfolioItem
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&item))
	return item
}

func TestPortfolioHandler_Create(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		h := newPortfolioHandler(t)

		item := createPortfolioItem(t, h,
			`{"title":"Serpent and Peonies","description":"Back piece","imageUrl":"https://example.com/serpent.jpg","category":"tattoo","style":"neo-traditional","tags":["snake","floral"]}`)

		assert.Equal(t, 1, item.ID)
		assert.True(t, item.IsApproved)
		assert.NotNil(t, item.ApprovedAt)
		assert.False(t, item.Featured)
		assert.Equal(t, []string{"snake", "floral"}, item.Tags)
	})

	t.Run("tags default to empty list", func(t *testing.T) {
		h := newPortfolioHandler(t)

		item := createPortfolioItem(t, h,
			`{"title":"Untitled","description":"Study","imageUrl":"https://example.com/u.jpg","category":"illustration","style":"sketch"}`)

		assert.NotNil(t, item.Tags)
		assert.Empty(t, item.Tags)
	})

	t.Run("missing fields", func(t *testing.T) {
		h := newPortfolioHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/portfolio", bytes.NewBufferString(`{"title":"Only a title"}`))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errRes handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&errRes))
		assert.Equal(t, "Invalid portfolio item data", errRes.Message)
		assert.Contains(t, errRes.Errors, "imageUrl")
	})
}

func TestPortfolioHandler_Approve(t *testing.T) {
	h := newPortfolioHandler(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/portfolio/9/approve", nil)
	req.SetPathValue("id", "9")
	rr := httptest.NewRecorder()

	h.HandleApprove(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPortfolioHandler_ListByCreative(t *testing.T) {
	h := newPortfolioHandler(t)

	createPortfolioItem(t, h,
		`{"creativeId":1,"title":"A","description":"d","imageUrl":"https://example.com/a.jpg","category":"tattoo","style":"blackwork"}`)
	createPortfolioItem(t, h,
		`{"creativeId":2,"title":"B","description":"d","imageUrl":"https://example.com/b.jpg","category":"tattoo","style":"blackwork"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/creative/1", nil)
	req.SetPathValue("creativeId", "1")
	rr := httptest.NewRecorder()

	h.HandleListByCreative(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var items []model.PortfolioItem
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&items))
	if assert.Len(t, items, 1) {
		assert.Equal(t, "A", items[0].Title)
	}
}
