package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository"
	"github.com/ptypek/listic/internal/repository/mock"
	"github.com/ptypek/listic/internal/repository/testutil"
	"github.com/ptypek/listic/internal/service"
)

func TestCatalogService_Categories(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewCatalogService(repository.NewCategoryRepository(db), repository.NewProductRepository(db))

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 8)
}

func TestCatalogService_SearchProducts(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewCatalogService(repository.NewCategoryRepository(db), repository.NewProductRepository(db))

	products, err := svc.SearchProducts(context.Background(), " marchew ")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "marchew", products[0].Name)

	_, err = svc.SearchProducts(context.Background(), "  ")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestCatalogService_SearchProducts_PassesTrimmedTermAndLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := mock.NewMockProductRepository(ctrl)
	svc := service.NewCatalogService(mock.NewMockCategoryRepository(ctrl), products)

	products.EXPECT().Search(gomock.Any(), "mleko", service.ProductSearchLimit).Return([]model.PopularProduct{{ID: 1, Name: "mleko", CategoryID: 1}}, nil)

	got, err := svc.SearchProducts(context.Background(), "\tmleko ")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestCatalogService_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	categories := mock.NewMockCategoryRepository(ctrl)
	products := mock.NewMockProductRepository(ctrl)
	svc := service.NewCatalogService(categories, products)
	boom := errors.New("disk I/O error")

	products.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)
	_, err := svc.SearchProducts(context.Background(), "ser")
	require.ErrorIs(t, err, boom)

	categories.EXPECT().List(gomock.Any()).Return(nil, nil)
	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
