package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository"
	"github.com/ptypek/listic/internal/repository/testutil"
)

func TestCategoryRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewCategoryRepository(db)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 8)
	require.Equal(t, "nabiał", categories[0].Name)
	require.Equal(t, "inne", categories[7].Name)
}

func TestCategoryRepository_GetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewCategoryRepository(db)

	c, err := repo.GetByID(context.Background(), testutil.CategoryMeat)
	require.NoError(t, err)
	require.Equal(t, "mięso", c.Name)

	_, err = repo.GetByID(context.Background(), 42)
	require.Error(t, err)
}

func TestProductRepository_Search(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewProductRepository(db)
	ctx := context.Background()

	products, err := repo.Search(ctx, "mle", 10)
	require.NoError(t, err)
	require.NotEmpty(t, products)
	require.Equal(t, "mleko", products[0].Name)
	require.Equal(t, testutil.CategoryDairy, products[0].CategoryID)

	none, err := repo.Search(ctx, "xyzzy", 10)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestProductRepository_Search_OperatorsAreText(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewProductRepository(db)

	_, err := repo.Search(context.Background(), `mleko" OR "`, 10)
	require.NoError(t, err)
}

func TestProductRepository_Search_Limit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewProductRepository(db)

	products, err := repo.Search(context.Background(), "p", 2)
	require.NoError(t, err)
	require.LessOrEqual(t, len(products), 2)
}

func TestAIFeedbackRepository_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAIFeedbackRepository(db)
	ctx := context.Background()
	listID := testutil.SeedList(t, db, "generated", "user-1")
	itemID := testutil.SeedItem(t, db, model.NewListItem{ListID: listID, Name: "czosnek", Source: model.SourceAI})

	fb, err := repo.Create(ctx, itemID, "user-1")
	require.NoError(t, err)
	require.Equal(t, itemID, fb.ListItemID)

	_, err = repo.Create(ctx, itemID, "user-1")
	require.NoError(t, err)

	count, err := repo.CountByItem(ctx, itemID)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
