package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds     commands.ItemCommands
	comments commands.CommentCommands
	q        queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, comments commands.CommentCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, comments: comments, q: q}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), ownerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ItemID, ownerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/items/"+result.ItemID.String())
	c.JSON(http.StatusCreated, resdto.FromItemView(&view.ItemView))
}

// @Summary Update item
// @Description Partial update by the owner. Blank text fields are ignored.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	if err := h.cmds.Update(c.Request.Context(), itemID, req.ToCommand(), actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), itemID, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailView(view))
}

// @Summary Get item
// @Description Item with comments. lastBooking and nextBooking are only filled in for the owner.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), itemID, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailView(view))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Router /api/items [get]
func (h *ItemHandler) ListOwned(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", err.Error())
		return
	}
	page, err := q.ToPage()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.ListOwned(c.Request.Context(), ownerID, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailList(views))
}

// @Summary Search items
// @Description Available items whose name or description contains text, ignoring case.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param text query string false "Search text"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /api/items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	var q reqdto.SearchItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", err.Error())
		return
	}
	page, err := q.ToPage()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.Search(c.Request.Context(), q.Text, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(views))
}

// @Summary Comment on item
// @Description Allowed once the caller has a finished, non-rejected booking of the item.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/items/{id}/comment [post]
func (h *ItemHandler) Comment(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	authorID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	view, err := h.comments.Create(c.Request.Context(), itemID, authorID, req.Text)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
