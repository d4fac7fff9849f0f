package items_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/mocks"
	"github.com/plm-management-toolkit/gateway/internal/repository/teamcenter"
	"github.com/plm-management-toolkit/gateway/internal/usecase/items"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

const testSession = "S123"

var errRemote = errors.New("remote failure")

func initItemsTest(t *testing.T) (*items.UseCase, *mocks.MockItemsFactory, *mocks.MockItems) {
	t.Helper()

	mockCtl := gomock.NewController(t)

	factory := mocks.NewMockItemsFactory(mockCtl)
	repo := mocks.NewMockItems(mockCtl)

	uc := items.New(factory, logger.New("error"))

	return uc, factory, repo
}

func TestGet(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initItemsTest(t)

	factory.EXPECT().SetupItemRepository(testSession).Return(repo)
	repo.EXPECT().
		GetByItemID(gomock.Any(), "000123").
		Return(&dto.Item{ID: "uid1", ItemID: "000123", Name: "Bracket"}, nil)

	item, err := uc.Get(context.Background(), testSession, "000123")

	require.NoError(t, err)
	assert.Equal(t, "000123", item.ItemID)
}

func TestGet_RemoteNotFoundBecomesDomainNotFound(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initItemsTest(t)

	factory.EXPECT().SetupItemRepository(testSession).Return(repo)
	repo.EXPECT().
		GetByItemID(gomock.Any(), "000999").
		Return(nil, teamcenter.ErrNotFound)

	_, err := uc.Get(context.Background(), testSession, "000999")

	var nfErr items.NotFoundError

	require.ErrorAs(t, err, &nfErr)
}

func TestGet_EmptyItemID(t *testing.T) {
	t.Parallel()

	uc, _, _ := initItemsTest(t)

	_, err := uc.Get(context.Background(), testSession, "")

	var notValid dto.NotValidError

	require.ErrorAs(t, err, &notValid)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  dto.CreateItemRequest
	}{
		{name: "missing item id", req: dto.CreateItemRequest{Name: "Bracket"}},
		{name: "missing name", req: dto.CreateItemRequest{ItemID: "000123"}},
		{name: "malformed item id", req: dto.CreateItemRequest{ItemID: "0001/23", Name: "Bracket"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc, _, _ := initItemsTest(t)

			_, err := uc.Create(context.Background(), testSession, tc.req)

			var notValid dto.NotValidError

			require.ErrorAs(t, err, &notValid)
		})
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initItemsTest(t)

	req := dto.CreateItemRequest{ItemID: "000123", Name: "Bracket"}

	factory.EXPECT().SetupItemRepository(testSession).Return(repo)
	repo.EXPECT().
		Create(gomock.Any(), req).
		Return(&dto.Item{ID: "uid1", ItemID: "000123", Name: "Bracket", Type: "Item"}, nil)

	item, err := uc.Create(context.Background(), testSession, req)

	require.NoError(t, err)
	assert.Equal(t, "uid1", item.ID)
}

// An empty update must fail before any remote call: the factory expects zero
// invocations.
func TestUpdate_EmptyUpdateFailsBeforeRemote(t *testing.T) {
	t.Parallel()

	uc, _, _ := initItemsTest(t)

	_, err := uc.Update(context.Background(), testSession, "000123", dto.UpdateItemRequest{})

	var notValid dto.NotValidError

	require.ErrorAs(t, err, &notValid)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initItemsTest(t)

	req := dto.UpdateItemRequest{Name: "Renamed"}

	// Pre-check read, then the update itself.
	factory.EXPECT().SetupItemRepository(testSession).Return(repo).Times(2)
	repo.EXPECT().
		GetByItemID(gomock.Any(), "000123").
		Return(&dto.Item{ID: "uid1", ItemID: "000123"}, nil)
	repo.EXPECT().
		Update(gomock.Any(), "000123", req).
		Return(&dto.Item{ID: "uid1", ItemID: "000123", Name: "Renamed"}, nil)

	item, err := uc.Update(context.Background(), testSession, "000123", req)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", item.Name)
}

func TestUpdate_MissingItem(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initItemsTest(t)

	factory.EXPECT().SetupItemRepository(testSession).Return(repo)
	repo.EXPECT().
		GetByItemID(gomock.Any(), "000999").
		Return(nil, teamcenter.ErrNotFound)

	_, err := uc.Update(context.Background(), testSession, "000999", dto.UpdateItemRequest{Name: "x"})

	var nfErr items.NotFoundError

	require.ErrorAs(t, err, &nfErr)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initItemsTest(t)

	factory.EXPECT().SetupItemRepository(testSession).Return(repo).Times(2)
	repo.EXPECT().
		GetByItemID(gomock.Any(), "000123").
		Return(&dto.Item{ID: "uid1", ItemID: "000123"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "000123").Return(nil)

	require.NoError(t, uc.Delete(context.Background(), testSession, "000123"))
}

func TestDelete_MissingItem(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initItemsTest(t)

	factory.EXPECT().SetupItemRepository(testSession).Return(repo)
	repo.EXPECT().
		GetByItemID(gomock.Any(), "000999").
		Return(nil, teamcenter.ErrNotFound)

	err := uc.Delete(context.Background(), testSession, "000999")

	var nfErr items.NotFoundError

	require.ErrorAs(t, err, &nfErr)
}

func TestGetRevisions(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initItemsTest(t)

	factory.EXPECT().SetupItemRepository(testSession).Return(repo)
	repo.EXPECT().
		GetRevisions(gomock.Any(), "000123").
		Return([]dto.ItemRevision{{ID: "rev1", RevisionID: "A"}}, nil)

	revisions, err := uc.GetRevisions(context.Background(), testSession, "000123")

	require.NoError(t, err)
	require.Len(t, revisions, 1)
	assert.Equal(t, "A", revisions[0].RevisionID)
}

func TestGet_RemoteErrorPassesThrough(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initItemsTest(t)

	factory.EXPECT().SetupItemRepository(testSession).Return(repo)
	repo.EXPECT().
		GetByItemID(gomock.Any(), "000123").
		Return(nil, teamcenter.ErrTimeout.Wrap("GET", "do", errRemote))

	_, err := uc.Get(context.Background(), testSession, "000123")

	var timeoutErr teamcenter.TimeoutError

	require.ErrorAs(t, err, &timeoutErr)
}
