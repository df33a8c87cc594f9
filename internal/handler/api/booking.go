package api

import (
	"net/http"
	"strconv"

	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase"

	"github.com/gin-gonic/gin"
)

// defaultStateFilter is applied when the state query parameter is absent.
const defaultStateFilter = "ALL"

type BookingHandler struct {
	uc usecase.BookingUseCase
}

func NewBookingHandler(uc usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// @Summary Create booking
// @Description Request to book an available item; the booking starts in WAITING
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} views.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.uc.Create(c.Request.Context(), req.ToParams(bookerID))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Decide booking
// @Description Approve or reject a booking; only the booked item's owner may decide
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "Approve or reject"
// @Success 200 {object} views.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved parameter", nil)
		return
	}
	view, err := h.uc.Decide(c.Request.Context(), actorID, bookingID, approved)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get booking
// @Description Get a booking by ID; only the booker or the item's owner may view it
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} views.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	view, err := h.uc.GetByID(c.Request.Context(), actorID, bookingID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List own bookings
// @Description List bookings made by the caller, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param state query string false "State filter (default ALL)"
// @Success 200 {array} views.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	bookerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	state := c.DefaultQuery("state", defaultStateFilter)
	result, err := h.uc.ListByBooker(c.Request.Context(), bookerID, state)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List bookings for own items
// @Description List bookings of every item the caller owns, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller user ID"
// @Param state query string false "State filter (default ALL)"
// @Success 200 {array} views.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwnItems(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller id missing from context"), "Missing user id", nil)
		return
	}
	state := c.DefaultQuery("state", defaultStateFilter)
	result, err := h.uc.ListByOwner(c.Request.Context(), ownerID, state)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
