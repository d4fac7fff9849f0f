package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/plm-management-toolkit/gateway/internal/cache"
	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/mocks"
	"github.com/plm-management-toolkit/gateway/internal/usecase/search"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

const testSession = "S123"

func initSearchTest(t *testing.T, ttl time.Duration) (*search.UseCase, *mocks.MockSearchFactory, *mocks.MockSearch) {
	t.Helper()

	mockCtl := gomock.NewController(t)

	factory := mocks.NewMockSearchFactory(mockCtl)
	repo := mocks.NewMockSearch(mockCtl)

	uc := search.New(factory, cache.New(ttl), logger.New("error"))

	return uc, factory, repo
}

func TestExecute(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initSearchTest(t, 0)

	factory.EXPECT().SetupSearchRepository(testSession).Return(repo)
	repo.EXPECT().
		Execute(gomock.Any(), dto.SearchQuery{Query: "item_id:000*", MaxResults: 25}).
		Return(&dto.SearchResult{TotalFound: 1}, nil)

	result, err := uc.Execute(context.Background(), testSession, dto.SearchQuery{Query: "item_id:000*", MaxResults: 25})

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalFound)
}

func TestExecute_EmptyQuery(t *testing.T) {
	t.Parallel()

	uc, _, _ := initSearchTest(t, 0)

	_, err := uc.Execute(context.Background(), testSession, dto.SearchQuery{})

	var notValid dto.NotValidError

	require.ErrorAs(t, err, &notValid)
}

// The bound is applied before dispatch: the repository sees the clamped
// value, not the requested one.
func TestExecute_MaxResultsBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested int
		effective int
	}{
		{name: "unset defaults", requested: 0, effective: 50},
		{name: "negative defaults", requested: -5, effective: 50},
		{name: "within bounds untouched", requested: 200, effective: 200},
		{name: "excessive clamped", requested: 5000, effective: 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc, factory, repo := initSearchTest(t, 0)

			factory.EXPECT().SetupSearchRepository(testSession).Return(repo)
			repo.EXPECT().
				Execute(gomock.Any(), dto.SearchQuery{Query: "q", MaxResults: tc.effective}).
				Return(&dto.SearchResult{}, nil)

			_, err := uc.Execute(context.Background(), testSession, dto.SearchQuery{Query: "q", MaxResults: tc.requested})

			require.NoError(t, err)
		})
	}
}

func TestByType(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initSearchTest(t, 0)

	factory.EXPECT().SetupSearchRepository(testSession).Return(repo)
	repo.EXPECT().
		ByType(gomock.Any(), "Item", 50).
		Return(&dto.SearchResult{TotalFound: 2}, nil)

	result, err := uc.ByType(context.Background(), testSession, "Item", 0)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalFound)
}

func TestByType_EmptyType(t *testing.T) {
	t.Parallel()

	uc, _, _ := initSearchTest(t, 0)

	_, err := uc.ByType(context.Background(), testSession, "", 10)

	var notValid dto.NotValidError

	require.ErrorAs(t, err, &notValid)
}

func TestByItemID(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initSearchTest(t, 0)

	factory.EXPECT().SetupSearchRepository(testSession).Return(repo)
	repo.EXPECT().
		ByItemID(gomock.Any(), "000*").
		Return(&dto.SearchResult{TotalFound: 7}, nil)

	result, err := uc.ByItemID(context.Background(), testSession, "000*")

	require.NoError(t, err)
	assert.Equal(t, 7, result.TotalFound)
}

// With caching enabled, a second catalog read within the TTL never reaches
// the remote: the repository is set up exactly once.
func TestSavedQueries_Cached(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initSearchTest(t, time.Minute)

	catalog := []dto.SavedQuery{{UID: "q1", Name: "Item Name", QueryType: "Item"}}

	factory.EXPECT().SetupSearchRepository(testSession).Return(repo).Times(1)
	repo.EXPECT().SavedQueries(gomock.Any()).Return(catalog, nil).Times(1)

	first, err := uc.SavedQueries(context.Background(), testSession)
	require.NoError(t, err)

	second, err := uc.SavedQueries(context.Background(), testSession)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSavedQueries_CacheDisabled(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initSearchTest(t, 0)

	catalog := []dto.SavedQuery{{UID: "q1", Name: "Item Name"}}

	factory.EXPECT().SetupSearchRepository(testSession).Return(repo).Times(2)
	repo.EXPECT().SavedQueries(gomock.Any()).Return(catalog, nil).Times(2)

	_, err := uc.SavedQueries(context.Background(), testSession)
	require.NoError(t, err)

	_, err = uc.SavedQueries(context.Background(), testSession)
	require.NoError(t, err)
}

func TestExecuteSavedQuery(t *testing.T) {
	t.Parallel()

	uc, factory, repo := initSearchTest(t, 0)

	entries := map[string]string{"Name": "Bracket"}

	factory.EXPECT().SetupSearchRepository(testSession).Return(repo)
	repo.EXPECT().
		ExecuteSavedQuery(gomock.Any(), "Item Name", entries).
		Return(&dto.SearchResult{TotalFound: 1}, nil)

	result, err := uc.ExecuteSavedQuery(context.Background(), testSession, "Item Name", entries)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalFound)
}

func TestExecuteSavedQuery_EmptyName(t *testing.T) {
	t.Parallel()

	uc, _, _ := initSearchTest(t, 0)

	_, err := uc.ExecuteSavedQuery(context.Background(), testSession, "", nil)

	var notValid dto.NotValidError

	require.ErrorAs(t, err, &notValid)
}
