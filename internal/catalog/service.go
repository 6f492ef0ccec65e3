package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/InnoXenT9/aqua-earth-order/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrVariantNotFound = errors.New("variant not found")
)

type Service struct {
	repo RepoInterface
}

func NewService(repo RepoInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListByCategory narrows the listing to one menu section, preserving
// catalog order.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	products, err := s.repo.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	filtered := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// ResolveVariant finds a variant inside a product, returning both so a
// caller can snapshot the line-item fields.
func (s *Service) ResolveVariant(ctx context.Context, productID, variantID string) (*domain.Product, *domain.Variant, error) {
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}

	for i := range product.Variants {
		if product.Variants[i].ID == variantID {
			return product, &product.Variants[i], nil
		}
	}

	return nil, nil, ErrVariantNotFound
}
