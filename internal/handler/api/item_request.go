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

type ItemRequestHandler struct {
	cmds commands.ItemRequestCommands
	q    queries.ItemRequestQueries
}

func NewItemRequestHandler(cmds commands.ItemRequestCommands, q queries.ItemRequestQueries) *ItemRequestHandler {
	return &ItemRequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Description Ask other users for an item nobody offers yet.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequestRequest true "Request"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/requests [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	requesterID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.Description, requesterID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.RequestID, requesterID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItemRequestView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/requests/"+result.RequestID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary List own item requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /api/requests [get]
func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	requesterID, ok := actorID(c)
	if !ok {
		return
	}
	views, err := h.q.ListOwn(c.Request.Context(), requesterID)
	h.respondList(c, views, err)
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /api/requests/all [get]
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	actor, ok := actorID(c)
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
	views, err := h.q.ListOthers(c.Request.Context(), actor, page)
	h.respondList(c, views, err)
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /api/requests/{id} [get]
func (h *ItemRequestHandler) Get(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), requestID, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItemRequestView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ItemRequestHandler) respondList(c *gin.Context, views []*queries.ItemRequestView, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromItemRequestList(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
