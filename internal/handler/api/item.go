package api

import (
	"net/http"

	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	items    usecase.ItemUseCase
	comments usecase.CommentUseCase
}

func NewItemHandler(items usecase.ItemUseCase, comments usecase.CommentUseCase) *ItemHandler {
	return &ItemHandler{items: items, comments: comments}
}

// @Summary Create item
// @Description List a new shareable item, optionally answering an open request
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} views.ItemView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.items.Create(c.Request.Context(), ownerID, req.ToParams())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update item
// @Description Partially update an owned item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} views.ItemView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.items.Update(c.Request.Context(), actorID, itemID, req.ToParams())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get item
// @Description Get an item by ID
// @Tags items
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {object} views.ItemView
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	view, err := h.items.GetByID(c.Request.Context(), itemID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List own items
// @Description List every item owned by the caller
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Success 200 {array} views.ItemView
// @Failure 404 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	result, err := h.items.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Search items
// @Description Search available items by name or description; blank text yields an empty list
// @Tags items
// @Produce json
// @Param text query string true "Search text"
// @Success 200 {array} views.ItemView
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	result, err := h.items.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Add comment
// @Description Leave a comment on an item after a finished rental
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Create comment request"
// @Success 200 {object} views.CommentView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.comments.Add(c.Request.Context(), itemID, authorID, req.Text)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
