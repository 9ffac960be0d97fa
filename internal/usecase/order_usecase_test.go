package usecase

import (
	"context"
	"errors"
	"testing"

	"plasticos_xpto/internal/domain/entities"
	mock_interfaces "plasticos_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_Ingest(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.Ingest(context.Background(), "o-1", "acme", " ")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("generates id when blank", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.Status != entities.OrderStatusProcessing || o.CustomerRef != "acme" {
					t.Fatalf("unexpected order: %+v", o)
				}
				return o, nil
			},
		)

		got, err := uc.Ingest(context.Background(), "", " acme ", entities.OrderStatusProcessing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected id on result")
		}
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.Ingest(context.Background(), "o-1", "acme", entities.OrderStatusProcessing)
		if !errors.Is(err, ErrOrderAlreadyExists) {
			t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCancelled).Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "o-1", entities.OrderStatusCancelled)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("status persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		want := entities.Order{ID: "o-1", Status: entities.OrderStatusForProduction}
		repo.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusForProduction).Return(want, nil)

		got, err := uc.UpdateStatus(context.Background(), "o-1", entities.OrderStatusForProduction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusForProduction {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}
