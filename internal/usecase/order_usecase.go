package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrOrderAlreadyExists = errors.New("order already exists")
)

// IOrderUseCase covers the ingestion surface the order-management service
// pushes through: Orders arrive here so the grouping view can read their
// status locally. The order lifecycle itself stays external.

type IOrderUseCase interface {
	Ingest(ctx context.Context, id, customerRef string, status entities.OrderStatus) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) Ingest(ctx context.Context, id, customerRef string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}
	if strings.TrimSpace(string(status)) == "" {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	o := entities.Order{
		ID:          id,
		CustomerRef: strings.TrimSpace(customerRef),
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if created.ID == "" {
		return entities.Order{}, ErrOrderAlreadyExists
	}
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if strings.TrimSpace(string(status)) == "" {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}
