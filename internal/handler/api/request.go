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

type RequestHandler struct {
	uc usecase.RequestUseCase
}

func NewRequestHandler(uc usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// @Summary Create request
// @Description Post an open request for an item nobody has listed yet
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param request body reqdto.CreateItemRequestRequest true "Create request body"
// @Success 201 {object} views.RequestView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	requestorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.uc.Create(c.Request.Context(), requestorID, req.Description)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List own requests
// @Description List the caller's requests, each with the items answering it
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Success 200 {array} views.RequestWithAnswersView
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	requestorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	result, err := h.uc.ListByRequestor(c.Request.Context(), requestorID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List all requests
// @Description List every open request, newest first
// @Tags requests
// @Produce json
// @Success 200 {array} views.RequestView
// @Router /requests/all [get]
func (h *RequestHandler) ListAll(c *gin.Context) {
	result, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get request
// @Description Get a request by ID with the items answering it
// @Tags requests
// @Produce json
// @Param requestId path int true "Request ID"
// @Success 200 {object} views.RequestWithAnswersView
// @Failure 404 {object} httperr.Response
// @Router /requests/{requestId} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	view, err := h.uc.GetByID(c.Request.Context(), requestID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
