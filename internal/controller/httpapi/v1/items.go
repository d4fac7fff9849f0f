package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	dto "github.com/plm-management-toolkit/gateway/internal/entity/dto/v1"
	"github.com/plm-management-toolkit/gateway/internal/usecase/items"
	"github.com/plm-management-toolkit/gateway/pkg/gatewayerrors"
	"github.com/plm-management-toolkit/gateway/pkg/logger"
)

var ErrValidationItems = dto.NotValidError{Console: gatewayerrors.New("ItemsAPI")}

type itemRoutes struct {
	t *items.UseCase
	l logger.Interface
}

// NewItemRoutes -.
func NewItemRoutes(handler *gin.RouterGroup, t *items.UseCase, l logger.Interface) {
	r := &itemRoutes{t, l}

	if binding.Validator != nil {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("itemid", dto.ValidateItemID)
		}
	}

	h := handler.Group("/items")
	{
		h.GET(":id", r.get)
		h.GET("uid/:uid", r.getByUID)
		h.GET(":id/revisions", r.getRevisions)
		h.POST("", r.create)
		h.PATCH(":id", r.update)
		h.DELETE(":id", r.delete)
	}
}

func (r *itemRoutes) get(c *gin.Context) {
	item, err := r.t.Get(c.Request.Context(), c.GetString(ContextRemoteSession), c.Param("id"))
	if err != nil {
		r.l.Error(err, "http - v1 - get")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, item)
}

func (r *itemRoutes) getByUID(c *gin.Context) {
	item, err := r.t.GetByUID(c.Request.Context(), c.GetString(ContextRemoteSession), c.Param("uid"))
	if err != nil {
		r.l.Error(err, "http - v1 - getByUID")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, item)
}

func (r *itemRoutes) getRevisions(c *gin.Context) {
	revisions, err := r.t.GetRevisions(c.Request.Context(), c.GetString(ContextRemoteSession), c.Param("id"))
	if err != nil {
		r.l.Error(err, "http - v1 - getRevisions")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, revisions)
}

func (r *itemRoutes) create(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErr := ErrValidationItems.Wrap("create", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	item, err := r.t.Create(c.Request.Context(), c.GetString(ContextRemoteSession), req)
	if err != nil {
		r.l.Error(err, "http - v1 - create")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusCreated, item)
}

func (r *itemRoutes) update(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErr := ErrValidationItems.Wrap("update", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	item, err := r.t.Update(c.Request.Context(), c.GetString(ContextRemoteSession), c.Param("id"), req)
	if err != nil {
		r.l.Error(err, "http - v1 - update")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, item)
}

func (r *itemRoutes) delete(c *gin.Context) {
	if err := r.t.Delete(c.Request.Context(), c.GetString(ContextRemoteSession), c.Param("id")); err != nil {
		r.l.Error(err, "http - v1 - delete")
		ErrorResponse(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
