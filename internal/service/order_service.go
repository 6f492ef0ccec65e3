package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/InnoXenT9/aqua-earth-order/internal/domain"
	"github.com/InnoXenT9/aqua-earth-order/internal/repository"
)

const (
	SortByCreatedAt = "created_at"
	SortByTotal     = "total"
	SortByStatus    = "status"
)

type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// ListForUser returns the caller's own orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, userID, orderID)
}

// ListAll returns orders across all users for the admin table. The
// filter is a case-insensitive substring match against order ID, user
// ID and delivery address. Sorting uses sort.Slice, so relative order
// among equal keys is not specified.
func (s *OrderService) ListAll(ctx context.Context, filter, sortKey string, descending bool) ([]*domain.Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}

	if filter != "" {
		needle := strings.ToLower(filter)
		filtered := make([]*domain.Order, 0, len(orders))
		for _, o := range orders {
			if strings.Contains(strings.ToLower(o.ID), needle) ||
				strings.Contains(strings.ToLower(o.UserID), needle) ||
				strings.Contains(strings.ToLower(o.DeliveryAddress), needle) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	if sortKey == "" {
		sortKey = SortByCreatedAt
	}

	sort.Slice(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if descending {
			a, b = b, a
		}
		switch sortKey {
		case SortByTotal:
			return a.Total < b.Total
		case SortByStatus:
			return a.Status < b.Status
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})

	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

// UpdateStatus applies an admin status change. The transition is
// checked against the status graph and the write is confirmed before
// the updated order is returned.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	log.Info().
		Str("order_id", orderID).
		Str("from", order.Status.String()).
		Str("to", next.String()).
		Msg("order status updated")

	order.Status = next
	return order, nil
}
