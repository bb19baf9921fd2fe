package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nova_freight/internal/adapter/http/handlers/mocks"
	"nova_freight/internal/adapter/http/middleware"
	"nova_freight/internal/domain/entities"
	"nova_freight/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func lifecycleRouter(h *LifecycleHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/lifecycle")
	g.Use(middleware.RequireActor())
	g.GET("/:bidNumber", h.GetLifecycle)
	g.POST("/:bidNumber", h.RecordTransition)
	return r
}

func TestLifecycleHandler_RecordTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/lifecycle/BID-100", bytes.NewBufferString(`{"status":"in_transit"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid bid number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/lifecycle/bid%23100", bytes.NewBufferString(`{"status":"in_transit"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderActorID, "carrier-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/lifecycle/BID-100", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderActorID, "carrier-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/lifecycle/BID-100", bytes.NewBufferString(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderActorID, "carrier-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("misplaced phase timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		body := `{"status":"in_transit","delivery_time":"2025-06-03T08:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/lifecycle/BID-100", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderActorID, "carrier-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped errors", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"not found", usecase.ErrBidNotFound, http.StatusNotFound},
			{"premature driver update", usecase.ErrPrematureDriverUpdate, http.StatusConflict},
			{"already accepted", usecase.ErrBidAlreadyAccepted, http.StatusConflict},
			{"invalid award state", usecase.ErrInvalidAwardState, http.StatusConflict},
			{"regressive", usecase.ErrRegressiveTransition, http.StatusConflict},
			{"state conflict", usecase.ErrStateConflict, http.StatusConflict},
			{"internal", errors.New("dynamodb down"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
				r := lifecycleRouter(NewLifecycleHandler(uc))

				uc.EXPECT().RecordTransition(gomock.Any(), gomock.Any()).Return(usecase.TransitionResult{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/lifecycle/BID-100", bytes.NewBufferString(`{"status":"in_transit"}`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set(middleware.HeaderActorID, "carrier-1")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.code {
					t.Fatalf("expected %d, got %d (%s)", tc.code, w.Code, w.Body.String())
				}
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		uc.EXPECT().RecordTransition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in usecase.TransitionInput) (usecase.TransitionResult, error) {
				if in.BidNumber != "BID-100" || in.ActorID != "carrier-1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.Status != entities.BidStatusInTransit {
					t.Fatalf("expected in_transit, got %s", in.Status)
				}
				return usecase.TransitionResult{
					EventID:        "ev-1",
					NewStatus:      in.Status,
					PreviousStatus: entities.BidStatusPickedUp,
				}, nil
			})

		body := `{"status":"in_transit","notes":"rolling","location":"I-80"}`
		req := httptest.NewRequest(http.MethodPost, "/lifecycle/BID-100", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderActorID, "carrier-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["event_id"] != "ev-1" || resp["new_status"] != "in_transit" || resp["previous_status"] != "picked_up" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestLifecycleHandler_GetLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/lifecycle/BID-100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		uc.EXPECT().GetLifecycle(gomock.Any(), "BID-100", "carrier-1", false).Return(usecase.LifecycleView{}, usecase.ErrBidNotFound)

		req := httptest.NewRequest(http.MethodGet, "/lifecycle/BID-100", nil)
		req.Header.Set(middleware.HeaderActorID, "carrier-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("admin role forwards admin view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		uc.EXPECT().GetLifecycle(gomock.Any(), "BID-100", "admin-1", true).Return(usecase.LifecycleView{
			CurrentStatus: entities.BidStatusDelivered,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/lifecycle/BID-100", nil)
		req.Header.Set(middleware.HeaderActorID, "admin-1")
		req.Header.Set(middleware.HeaderActorRole, middleware.RoleAdmin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidLifecycleUseCase(ctrl)
		r := lifecycleRouter(NewLifecycleHandler(uc))

		uc.EXPECT().GetLifecycle(gomock.Any(), "BID-100", "carrier-1", false).Return(usecase.LifecycleView{
			Events: []entities.LifecycleEvent{
				{ID: "ev-1", BidID: "BID-100", EventType: entities.BidStatusAwarded},
			},
			CurrentStatus: entities.BidStatusAwarded,
			Details: &usecase.BidDetails{
				Award: entities.Award{BidNumber: "BID-100", WinnerAmountCents: 250000, MarginCents: 40000},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/lifecycle/BID-100", nil)
		req.Header.Set(middleware.HeaderActorID, "carrier-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["current_status"] != "bid_awarded" {
			t.Fatalf("unexpected current status: %v", resp["current_status"])
		}
		if _, ok := resp["bid_details"].(map[string]interface{})["margin_cents"]; ok {
			t.Fatal("margin must never appear in a response")
		}
	})
}
