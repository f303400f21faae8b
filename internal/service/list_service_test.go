package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository/mock"
	"github.com/ptypek/listic/internal/service"
)

func TestListService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	items := mock.NewMockListItemRepository(ctrl)
	svc := service.NewListService(lists, items)

	lists.EXPECT().Create(gomock.Any(), "Weekend", "user-1").Return(model.ShoppingList{ID: 1, Name: "Weekend", OwnerID: "user-1"}, nil)

	list, err := svc.Create(context.Background(), "user-1", "  Weekend ")
	require.NoError(t, err)
	require.Equal(t, int64(1), list.ID)
}

func TestListService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewListService(mock.NewMockListRepository(ctrl), mock.NewMockListItemRepository(ctrl))

	_, err := svc.Create(context.Background(), "user-1", "   ")
	require.ErrorIs(t, err, service.ErrInvalid)
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "name", verr.Field)

	long := make([]rune, service.MaxListNameLength+1)
	for i := range long {
		long[i] = 'ż'
	}
	_, err = svc.Create(context.Background(), "user-1", string(long))
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.Create(context.Background(), "", "Weekend")
	require.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestListService_Create_PersistenceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	svc := service.NewListService(lists, mock.NewMockListItemRepository(ctrl))

	lists.EXPECT().Create(gomock.Any(), "Weekend", "user-1").Return(model.ShoppingList{}, errors.New("disk full"))

	_, err := svc.Create(context.Background(), "user-1", "Weekend")
	require.ErrorIs(t, err, service.ErrPersistence)
}

func TestListService_List_DefaultsAndEnums(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	svc := service.NewListService(lists, mock.NewMockListItemRepository(ctrl))

	lists.EXPECT().ListByOwner(gomock.Any(), "user-1", model.SortCreatedAt, model.OrderDesc).Return([]model.ShoppingList{}, nil)
	_, err := svc.List(context.Background(), "user-1", "", "")
	require.NoError(t, err)

	_, err = svc.List(context.Background(), "user-1", "owner_id", model.OrderAsc)
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.List(context.Background(), "user-1", model.SortName, "sideways")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestListService_Get_JoinsItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	items := mock.NewMockListItemRepository(ctrl)
	svc := service.NewListService(lists, items)

	lists.EXPECT().GetByID(gomock.Any(), int64(7)).Return(model.ShoppingList{ID: 7, OwnerID: "user-1"}, nil)
	items.EXPECT().ListByList(gomock.Any(), int64(7)).Return([]model.ListItem{{ID: 1, ListID: 7}}, nil)

	list, err := svc.Get(context.Background(), "user-1", 7)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
}

func TestListService_Get_ForeignListIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	svc := service.NewListService(lists, mock.NewMockListItemRepository(ctrl))

	lists.EXPECT().GetByID(gomock.Any(), int64(7)).Return(model.ShoppingList{ID: 7, OwnerID: "user-2"}, nil)

	_, err := svc.Get(context.Background(), "user-1", 7)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestListService_GetLast_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	svc := service.NewListService(lists, mock.NewMockListItemRepository(ctrl))

	lists.EXPECT().GetLastByOwner(gomock.Any(), "user-1").Return(model.ShoppingList{}, fmt.Errorf("get last list: %w", sql.ErrNoRows))

	_, err := svc.GetLast(context.Background(), "user-1")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestListService_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	svc := service.NewListService(lists, mock.NewMockListItemRepository(ctrl))

	lists.EXPECT().GetByID(gomock.Any(), int64(3)).Return(model.ShoppingList{ID: 3, OwnerID: "user-1"}, nil)
	lists.EXPECT().UpdateName(gomock.Any(), int64(3), "Party").Return(model.ShoppingList{ID: 3, Name: "Party"}, nil)

	list, err := svc.Rename(context.Background(), "user-1", 3, "Party")
	require.NoError(t, err)
	require.Equal(t, "Party", list.Name)
}

func TestListService_Delete_ForeignListIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	svc := service.NewListService(lists, mock.NewMockListItemRepository(ctrl))

	lists.EXPECT().GetByID(gomock.Any(), int64(9)).Return(model.ShoppingList{ID: 9, OwnerID: "user-2"}, nil)
	// Delete must not be reached.

	err := svc.Delete(context.Background(), "user-1", 9)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestListService_Delete_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	svc := service.NewListService(lists, mock.NewMockListItemRepository(ctrl))

	lists.EXPECT().GetByID(gomock.Any(), int64(9)).Return(model.ShoppingList{}, fmt.Errorf("get list: %w", sql.ErrNoRows))

	err := svc.Delete(context.Background(), "user-1", 9)
	require.ErrorIs(t, err, service.ErrNotFound)
}
