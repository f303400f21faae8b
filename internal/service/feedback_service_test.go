package service_test

import (
	"context"
	"database/sql"
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

func newFeedbackService(t *testing.T) (service.FeedbackService, *sql.DB) {
	db := testutil.NewTestDB(t)
	svc := service.NewFeedbackService(
		repository.NewListRepository(db),
		repository.NewListItemRepository(db),
		repository.NewAIFeedbackRepository(db),
	)
	return svc, db
}

func TestFeedbackService_Record(t *testing.T) {
	svc, db := newFeedbackService(t)
	listID := testutil.SeedList(t, db, "generated", "user-1")
	itemID := testutil.SeedItem(t, db, model.NewListItem{ListID: listID, Name: "czosnek", Source: model.SourceAI})

	fb, err := svc.Record(context.Background(), "user-1", itemID)
	require.NoError(t, err)
	require.Equal(t, itemID, fb.ListItemID)
	require.Equal(t, "user-1", fb.UserID)
	require.Equal(t, 1, testutil.CountRows(t, db, "ai_feedback_log"))
}

func TestFeedbackService_Record_ManualItemRejected(t *testing.T) {
	svc, db := newFeedbackService(t)
	listID := testutil.SeedList(t, db, "mine", "user-1")
	itemID := testutil.SeedItem(t, db, model.NewListItem{ListID: listID, Name: "chleb", Source: model.SourceManual})

	_, err := svc.Record(context.Background(), "user-1", itemID)
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "listItemId", verr.Field)
	require.Zero(t, testutil.CountRows(t, db, "ai_feedback_log"))
}

func TestFeedbackService_Record_ForeignItem(t *testing.T) {
	svc, db := newFeedbackService(t)
	listID := testutil.SeedList(t, db, "theirs", "user-2")
	itemID := testutil.SeedItem(t, db, model.NewListItem{ListID: listID, Name: "ryż", Source: model.SourceAI})

	_, err := svc.Record(context.Background(), "user-1", itemID)
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Record(context.Background(), "user-1", 424242)
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Record(context.Background(), "", itemID)
	require.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestFeedbackService_Record_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	lists := mock.NewMockListRepository(ctrl)
	items := mock.NewMockListItemRepository(ctrl)
	feedback := mock.NewMockAIFeedbackRepository(ctrl)
	svc := service.NewFeedbackService(lists, items, feedback)

	items.EXPECT().GetByID(gomock.Any(), int64(7)).Return(model.ListItem{ID: 7, ListID: 3, Source: model.SourceAI}, nil)
	lists.EXPECT().GetByID(gomock.Any(), int64(3)).Return(model.ShoppingList{ID: 3, OwnerID: "user-1"}, nil)
	feedback.EXPECT().Create(gomock.Any(), int64(7), "user-1").Return(model.AIFeedback{}, errors.New("database is locked"))

	_, err := svc.Record(context.Background(), "user-1", 7)
	require.ErrorIs(t, err, service.ErrPersistence)
}
