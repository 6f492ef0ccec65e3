package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/InnoXenT9/aqua-earth-order/internal/cache"
	"github.com/InnoXenT9/aqua-earth-order/internal/domain"
	"github.com/InnoXenT9/aqua-earth-order/internal/repository"
)

// VariantResolver supplies catalog lookups for add-to-cart snapshots.
// Consumers define this interface, not the catalog implementation.
type VariantResolver interface {
	ResolveVariant(ctx context.Context, productID, variantID string) (*domain.Product, *domain.Variant, error)
}

type CartService struct {
	repo    repository.CartRepository
	cache   cache.CartCache
	catalog VariantResolver
	sfg     singleflight.Group // Prevents cache stampede
}

func NewCartService(repo repository.CartRepository, cache cache.CartCache, catalog VariantResolver) *CartService {
	return &CartService{
		repo:    repo,
		cache:   cache,
		catalog: catalog,
	}
}

func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {

		cart, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn().Err(err).Str("user_id", userID).Msg("cart cache get failed")
		}

		cart, errGet := s.repo.GetCart(ctx, userID)
		if errGet != nil && errors.Is(errGet, repository.ErrCartNotFound) {
			// a missing cart reads as an empty one
			return emptyCart(userID), nil
		}
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), userID, cart)
			if errSet != nil {
				log.Warn().Err(errSet).Str("user_id", userID).Msg("cart cache set failed")
			}
		}()

		return cart, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

// AddItem snapshots the variant's name, size and price into the cart
// line and merges with any existing line for the same variant.
func (s *CartService) AddItem(ctx context.Context, userID, productID, variantID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, variant, err := s.catalog.ResolveVariant(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(domain.CartItem{
		ID:        variant.ID,
		ProductID: product.ID,
		Name:      product.Name,
		Size:      variant.Size,
		Price:     variant.Price,
		Quantity:  quantity,
	})

	return cart, s.persist(ctx, cart)
}

// SetQuantity replaces a line's quantity; zero or below removes the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, variantID string, quantity int) (*domain.Cart, error) {
	cart, err := s.loadForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(variantID, quantity)

	return cart, s.persist(ctx, cart)
}

// RemoveItem drops a line; removing an unknown variant is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, variantID string) (*domain.Cart, error) {
	cart, err := s.loadForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(variantID)

	return cart, s.persist(ctx, cart)
}

// ClearCart drops the stored cart document entirely; a cart that was
// never written clears to the same empty state.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if err := s.repo.DeleteCart(ctx, userID); err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return nil, err
	}

	s.invalidateCache(userID)
	return emptyCart(userID), nil
}

func (s *CartService) loadForUpdate(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return emptyCart(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// persist writes the whole state through and drops the cached copy.
// Cache failures are logged, never surfaced.
func (s *CartService) persist(ctx context.Context, cart *domain.Cart) error {
	if err := s.repo.UpsertCart(ctx, cart); err != nil {
		log.Error().Err(err).Str("user_id", cart.UserID).Msg("cart upsert failed")
		return err
	}

	s.invalidateCache(cart.UserID)
	return nil
}

func (s *CartService) invalidateCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("cart cache invalidate failed")
	}
}

func emptyCart(userID string) *domain.Cart {
	return &domain.Cart{
		UserID:    userID,
		Items:     []domain.CartItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
