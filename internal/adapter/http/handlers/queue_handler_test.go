package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"plasticos_xpto/internal/adapter/http/handlers/mocks"
	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQueueHandler_ExtrusionQueue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		h := NewQueueHandler(uc)

		r := gin.New()
		r.GET("/v1/extrusion-queue", h.ExtrusionQueue)

		uc.EXPECT().ExtrusionQueue(gomock.Any()).Return(nil, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/extrusion-queue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty queue serializes as empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		h := NewQueueHandler(uc)

		r := gin.New()
		r.GET("/v1/extrusion-queue", h.ExtrusionQueue)

		uc.EXPECT().ExtrusionQueue(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/extrusion-queue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("grouped queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueueUseCase(ctrl)
		h := NewQueueHandler(uc)

		r := gin.New()
		r.GET("/v1/extrusion-queue", h.ExtrusionQueue)

		uc.EXPECT().ExtrusionQueue(gomock.Any()).Return([]usecase.QueueGroup{
			{
				OrderID:     "o-1",
				CustomerRef: "acme",
				JobOrders: []usecase.QueueItem{
					{
						JobOrder:        entities.JobOrder{ID: "jo-1", OrderID: "o-1", RequiredQty: 100, Status: entities.JobOrderStatusInProgress},
						TotalExtruded:   60,
						ProgressPercent: 60,
					},
				},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/extrusion-queue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["order_id"] != "o-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
