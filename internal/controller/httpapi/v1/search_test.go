package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/plm-management-toolkit/gateway/internal/cache"
	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/mocks"
	"github.com/plm-management-toolkit/gateway/internal/usecase/search"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

func initSearchRoutesTest(t *testing.T) (*gin.Engine, *mocks.MockSearchFactory, *mocks.MockSearch) {
	t.Helper()

	mockCtl := gomock.NewController(t)

	factory := mocks.NewMockSearchFactory(mockCtl)
	repo := mocks.NewMockSearch(mockCtl)

	uc := search.New(factory, cache.New(0), logger.New("error"))

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	engine.Use(func(c *gin.Context) {
		c.Set(ContextUsername, "jdoe")
		c.Set(ContextRemoteSession, "S123")
	})

	NewSearchRoutes(engine.Group("/api/v1"), uc, logger.New("error"))

	return engine, factory, repo
}

// An excessive page size is clamped before the repository sees it.
func TestSearchHandler_ClampsMaxResults(t *testing.T) {
	t.Parallel()

	engine, factory, repo := initSearchRoutesTest(t)

	factory.EXPECT().SetupSearchRepository("S123").Return(repo)
	repo.EXPECT().
		Execute(gomock.Any(), dto.SearchQuery{Query: "item_id:000*", MaxResults: 1000}).
		Return(&dto.SearchResult{TotalFound: 1500, HasMore: true}, nil)

	body := `{"query":"item_id:000*","maxResults":5000}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result dto.SearchResult

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.HasMore)
}

func TestSearchHandler_MissingQuery(t *testing.T) {
	t.Parallel()

	engine, _, _ := initSearchRoutesTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewBufferString(`{"type":"Item"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSavedQueriesHandler(t *testing.T) {
	t.Parallel()

	engine, factory, repo := initSearchRoutesTest(t)

	factory.EXPECT().SetupSearchRepository("S123").Return(repo)
	repo.EXPECT().
		SavedQueries(gomock.Any()).
		Return([]dto.SavedQuery{{UID: "q1", Name: "Item Name", QueryType: "Item"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/saved-queries", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var queries []dto.SavedQuery

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &queries))
	require.Len(t, queries, 1)
	assert.Equal(t, "Item Name", queries[0].Name)
}

// Saved queries execute without a body.
func TestExecuteSavedQueryHandler_NoBody(t *testing.T) {
	t.Parallel()

	engine, factory, repo := initSearchRoutesTest(t)

	factory.EXPECT().SetupSearchRepository("S123").Return(repo)
	repo.EXPECT().
		ExecuteSavedQuery(gomock.Any(), "Item Name", gomock.Nil()).
		Return(&dto.SearchResult{TotalFound: 2}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/saved-query/Item%20Name", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchByTypeHandler(t *testing.T) {
	t.Parallel()

	engine, factory, repo := initSearchRoutesTest(t)

	factory.EXPECT().SetupSearchRepository("S123").Return(repo)
	repo.EXPECT().
		ByType(gomock.Any(), "Item", 25).
		Return(&dto.SearchResult{TotalFound: 4}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/type/Item?maxResults=25", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
