package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusNew            OrderStatus = "new"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:            {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseOrderStatus validates a raw status value against the enumeration.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch s := OrderStatus(raw); s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCancelled:
		return s, nil
	default:
		return "", fmt.Errorf("unknown order status %q", raw)
	}
}

// Order is a denormalized checkout snapshot. Items are immutable once
// written; only the status field changes afterwards.
type Order struct {
	ID              string      `json:"id" bson:"_id"`
	UserID          string      `json:"user_id" bson:"user_id"`
	Items           []CartItem  `json:"items" bson:"items"`
	Total           float64     `json:"total" bson:"total"`
	DeliveryAddress string      `json:"delivery_address" bson:"delivery_address"`
	Status          OrderStatus `json:"status" bson:"status"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	IdempotencyKey  string      `json:"idempotency_key,omitempty" bson:"idempotency_key,omitempty"`
}
