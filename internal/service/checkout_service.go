package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/InnoXenT9/aqua-earth-order/internal/domain"
	"github.com/InnoXenT9/aqua-earth-order/internal/repository"
)

// CartStore is the slice of the cart service checkout needs.
type CartStore interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID string) (*domain.Cart, error)
}

type CheckoutRequest struct {
	Name            string
	DeliveryAddress string
	// IdempotencyKey is optional; when the client resubmits with the
	// same key the already created order is returned instead of a
	// second write.
	IdempotencyKey string
}

type CheckoutResult struct {
	Order *domain.Order
	// WhatsAppURL is the deep link carrying the formatted order summary.
	WhatsAppURL string
}

type CheckoutService struct {
	orders         repository.OrderRepository
	carts          CartStore
	whatsappNumber string
}

func NewCheckoutService(orders repository.OrderRepository, carts CartStore, whatsappNumber string) *CheckoutService {
	return &CheckoutService{
		orders:         orders,
		carts:          carts,
		whatsappNumber: whatsappNumber,
	}
}

// Submit turns the current cart into an order document with status
// "new", clears the cart and returns the messaging deep link. The order
// insert is a single atomic document creation; a failed insert leaves
// the cart untouched. Clearing the cart after a successful insert is
// not atomic with it.
func (s *CheckoutService) Submit(ctx context.Context, userID string, req CheckoutRequest) (*CheckoutResult, error) {
	// The idempotency lookup runs before the cart is even loaded: a
	// retry after a lost response finds the cart already cleared, and
	// must still get the stored order back.
	key := req.IdempotencyKey
	if key != "" {
		existing, err := s.orders.GetByIdempotencyKey(ctx, userID, key)
		if err == nil {
			log.Info().
				Str("user_id", userID).
				Str("order_id", existing.ID).
				Str("idempotency_key", key).
				Msg("duplicate checkout detected, returning existing order")
			return &CheckoutResult{
				Order:       existing,
				WhatsAppURL: s.whatsappURL(existing, req.Name),
			}, nil
		}
		if !errors.Is(err, repository.ErrOrderNotFound) {
			return nil, fmt.Errorf("failed to check idempotency: %w", err)
		}
	} else {
		key = uuid.NewString()
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		ID:              newOrderID(),
		UserID:          userID,
		Items:           cart.Items,
		Total:           cart.TotalPrice(),
		DeliveryAddress: req.DeliveryAddress,
		Status:          domain.OrderStatusNew,
		CreatedAt:       time.Now(),
		IdempotencyKey:  key,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if _, err := s.carts.ClearCart(ctx, userID); err != nil {
		// the order is already written; a stale cart is an accepted gap
		log.Warn().Err(err).Str("user_id", userID).Msg("cart clear after checkout failed")
	}

	return &CheckoutResult{
		Order:       order,
		WhatsAppURL: s.whatsappURL(order, req.Name),
	}, nil
}

// newOrderID derives a short order ID from the clock. Not guaranteed
// globally unique beyond practical collision odds.
func newOrderID() string {
	millis := fmt.Sprint(time.Now().UnixMilli())
	return "AO-" + millis[len(millis)-6:]
}

func (s *CheckoutService) whatsappURL(order *domain.Order, customerName string) string {
	var msg strings.Builder

	msg.WriteString("*New Order Received!*\n\n")
	fmt.Fprintf(&msg, "*Order ID:* %s\n", order.ID)
	fmt.Fprintf(&msg, "*Customer Name:* %s\n", customerName)
	fmt.Fprintf(&msg, "*Address:* %s\n\n", order.DeliveryAddress)
	msg.WriteString("*Order Details:*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&msg, "- %s (%s) x %d = ₹%.2f\n", item.Name, item.Size, item.Quantity, item.Subtotal())
	}
	fmt.Fprintf(&msg, "\n*Total Amount:* ₹%.2f\n", order.Total)

	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappNumber, url.QueryEscape(msg.String()))
}
