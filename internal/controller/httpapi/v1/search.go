package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/usecase/search"
	"github.com/plm-management-toolkit/gateway/pkg/gatewayerrors"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

var ErrValidationSearch = dto.NotValidError{Console: gatewayerrors.New("SearchAPI")}

type searchRoutes struct {
	t *search.UseCase
	l logger.Interface
}

// NewSearchRoutes -.
func NewSearchRoutes(handler *gin.RouterGroup, t *search.UseCase, l logger.Interface) {
	r := &searchRoutes{t, l}

	h := handler.Group("/search")
	{
		h.POST("", r.execute)
		h.GET("type/:type", r.byType)
		h.GET("item-id/:itemId", r.byItemID)
		h.GET("saved-queries", r.savedQueries)
		h.POST("saved-query/:name", r.executeSavedQuery)
	}
}

func (r *searchRoutes) execute(c *gin.Context) {
	var query dto.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		validationErr := ErrValidationSearch.Wrap("execute", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	result, err := r.t.Execute(c.Request.Context(), c.GetString(ContextRemoteSession), query)
	if err != nil {
		r.l.Error(err, "http - v1 - execute")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, result)
}

func (r *searchRoutes) byType(c *gin.Context) {
	maxResults, _ := strconv.Atoi(c.Query("maxResults"))

	result, err := r.t.ByType(c.Request.Context(), c.GetString(ContextRemoteSession), c.Param("type"), maxResults)
	if err != nil {
		r.l.Error(err, "http - v1 - byType")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, result)
}

func (r *searchRoutes) byItemID(c *gin.Context) {
	result, err := r.t.ByItemID(c.Request.Context(), c.GetString(ContextRemoteSession), c.Param("itemId"))
	if err != nil {
		r.l.Error(err, "http - v1 - byItemID")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, result)
}

func (r *searchRoutes) savedQueries(c *gin.Context) {
	queries, err := r.t.SavedQueries(c.Request.Context(), c.GetString(ContextRemoteSession))
	if err != nil {
		r.l.Error(err, "http - v1 - savedQueries")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, queries)
}

func (r *searchRoutes) executeSavedQuery(c *gin.Context) {
	// A body is optional: parameterless saved queries are executed with an
	// empty entry set.
	var req dto.SavedQueryExecution
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			validationErr := ErrValidationSearch.Wrap("executeSavedQuery", "ShouldBindJSON", err)
			ErrorResponse(c, validationErr)

			return
		}
	}

	result, err := r.t.ExecuteSavedQuery(c.Request.Context(), c.GetString(ContextRemoteSession), c.Param("name"), req.Entries)
	if err != nil {
		r.l.Error(err, "http - v1 - executeSavedQuery")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, result)
}
