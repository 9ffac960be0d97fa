package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plasticos_xpto/internal/adapter/http/handlers/mocks"
	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRollHandler_RecordExtrusion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:id/rolls", h.RecordExtrusion)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/jo-1/rolls", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:id/rolls", h.RecordExtrusion)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/jo-1/rolls", bytes.NewBufferString(`{"stage":"printing","extruding_qty":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("job order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:id/rolls", h.RecordExtrusion)

		uc.EXPECT().RecordExtrusion(gomock.Any(), "jo-1", 10.0, "").Return(entities.Roll{}, usecase.ErrJobOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/jo-1/rolls", bytes.NewBufferString(`{"extruding_qty":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("terminal job order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:id/rolls", h.RecordExtrusion)

		uc.EXPECT().RecordExtrusion(gomock.Any(), "jo-1", 10.0, "").Return(entities.Roll{}, usecase.ErrJobOrderTerminal)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/jo-1/rolls", bytes.NewBufferString(`{"extruding_qty":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:id/rolls", h.RecordExtrusion)

		now := time.Now().UTC()
		uc.EXPECT().RecordExtrusion(gomock.Any(), "jo-1", 40.0, "key-1").Return(entities.Roll{
			ID: "r-1", JobOrderID: "jo-1", Stage: entities.RollStageExtrusion,
			Status: entities.RollStatusProcessing, ExtrudingQty: 40, CreatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/jo-1/rolls", bytes.NewBufferString(`{"stage":"extrusion","extruding_qty":40,"idempotency_key":"key-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "r-1" || body["job_order_id"] != "jo-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("roll persisted despite status write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:id/rolls", h.RecordExtrusion)

		created := entities.Roll{ID: "r-1", JobOrderID: "jo-1", Stage: entities.RollStageExtrusion, ExtrudingQty: 40}
		uc.EXPECT().RecordExtrusion(gomock.Any(), "jo-1", 40.0, "").Return(created, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/jo-1/rolls", bytes.NewBufferString(`{"extruding_qty":40}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "r-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRollHandler_AdvanceStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.POST("/v1/rolls/:id/advance", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), "r-1", 38.0).Return(entities.Roll{
			ID: "r-1", JobOrderID: "jo-1", Stage: entities.RollStageCutting, ExtrudingQty: 40, PrintingQty: 38,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/rolls/r-1/advance", bytes.NewBufferString(`{"stage_qty":38}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("completed roll", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.POST("/v1/rolls/:id/advance", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), "r-1", 0.0).Return(entities.Roll{}, usecase.ErrRollCompleted)

		req := httptest.NewRequest(http.MethodPost, "/v1/rolls/r-1/advance", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.POST("/v1/rolls/:id/advance", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), "r-1", 5.0).Return(entities.Roll{}, usecase.ErrRollNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/rolls/r-1/advance", bytes.NewBufferString(`{"stage_qty":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRollHandler_ListByStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.GET("/v1/rolls", h.ListByStage)

		uc.EXPECT().ListByStage(gomock.Any(), entities.RollStage("lamination")).Return(nil, usecase.ErrInvalidStage)

		req := httptest.NewRequest(http.MethodGet, "/v1/rolls?stage=lamination", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRollUseCase(ctrl)
		h := NewRollHandler(uc)

		r := gin.New()
		r.GET("/v1/rolls", h.ListByStage)

		uc.EXPECT().ListByStage(gomock.Any(), entities.RollStagePrinting).Return([]entities.Roll{
			{ID: "r-1", Stage: entities.RollStagePrinting},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/rolls?stage=printing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "r-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapRollError(t *testing.T) {
	if got := mapRollError(usecase.ErrInvalidExtrudingQty); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRollError(usecase.ErrJobOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapRollError(usecase.ErrRollNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapRollError(usecase.ErrJobOrderTerminal); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapRollError(usecase.ErrRollCompleted); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapRollError(usecase.ErrIdempotencyConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapRollError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
