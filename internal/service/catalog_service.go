package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository"
)

// ProductSearchLimit caps the number of product suggestions returned.
const ProductSearchLimit = 10

type CatalogService interface {
	Categories(ctx context.Context) ([]model.Category, error)
	SearchProducts(ctx context.Context, query string) ([]model.PopularProduct, error)
}

type catalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

func NewCatalogService(categories repository.CategoryRepository, products repository.ProductRepository) CatalogService {
	return &catalogService{categories: categories, products: products}
}

func (s *catalogService) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

func (s *catalogService) SearchProducts(ctx context.Context, query string) ([]model.PopularProduct, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, invalid("q", "search query is required")
	}
	products, err := s.products.Search(ctx, trimmed, ProductSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}
