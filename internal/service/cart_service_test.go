package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InnoXenT9/aqua-earth-order/internal/catalog"
)

func newTestCartService() (*CartService, *mockCartRepository, *mockCache) {
	repo := &mockCartRepository{}
	c := &mockCache{}
	svc := NewCartService(repo, c, &mockCatalog{})
	return svc, repo, c
}

func TestGetCart_MissingCartReadsAsEmpty(t *testing.T) {
	svc, _, _ := newTestCartService()

	cart, err := svc.GetCart(context.Background(), "user123")
	require.NoError(t, err)
	assert.Equal(t, "user123", cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestAddItem_SnapshotsVariantFields(t *testing.T) {
	svc, repo, _ := newTestCartService()

	cart, err := svc.AddItem(context.Background(), "user123", "coke-1", "coke-200", 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, "coke-200", item.ID)
	assert.Equal(t, "coke-1", item.ProductID)
	assert.Equal(t, "Coca-Cola", item.Name)
	assert.Equal(t, "200ml", item.Size)
	assert.InDelta(t, 20, item.Price, 0.001)
	assert.Equal(t, 2, item.Quantity)

	// state was written through
	assert.Equal(t, cart.Items, repo.cart.Items)
}

func TestAddItem_MergesQuantities(t *testing.T) {
	svc, _, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user123", "coke-1", "coke-200", 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "user123", "coke-1", "coke-200", 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItem_UnknownVariant(t *testing.T) {
	svc, _, _ := newTestCartService()

	_, err := svc.AddItem(context.Background(), "user123", "coke-1", "coke-9000", 1)
	assert.ErrorIs(t, err, catalog.ErrVariantNotFound)
}

func TestAddItem_RejectsZeroQuantity(t *testing.T) {
	svc, _, _ := newTestCartService()

	_, err := svc.AddItem(context.Background(), "user123", "coke-1", "coke-200", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	svc, repo, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user123", "coke-1", "coke-200", 2)
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "user123", "coke-200", 0)
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Empty(t, repo.cart.Items)
}

func TestRemoveItem_UnknownIDIsNoOp(t *testing.T) {
	svc, _, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user123", "coke-1", "coke-200", 2)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "user123", "monster-500")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestClearCart_DropsStoredCart(t *testing.T) {
	svc, repo, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user123", "coke-1", "coke-200", 2)
	require.NoError(t, err)

	cart, err := svc.ClearCart(ctx, "user123")
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Nil(t, repo.cart)

	// cleared carts read back as empty, not as not-found
	cart, err = svc.GetCart(ctx, "user123")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestMutation_InvalidatesCache(t *testing.T) {
	svc, _, c := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user123", "coke-1", "coke-200", 1)
	require.NoError(t, err)

	// the cached copy is dropped after every write
	assert.Nil(t, c.cart)
}

func TestGetCart_RepositoryError(t *testing.T) {
	repo := &mockCartRepository{err: errors.New("mongo down")}
	svc := NewCartService(repo, &mockCache{}, &mockCatalog{})

	_, err := svc.GetCart(context.Background(), "user123")
	assert.Error(t, err)
}

func TestTotals_AcrossOperations(t *testing.T) {
	svc, _, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user123", "coke-1", "coke-200", 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "user123", "pepsi-1", "pepsi-500", 1)
	require.NoError(t, err)

	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 80.00, cart.TotalPrice(), 0.001)
}
