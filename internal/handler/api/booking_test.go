//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/handler/api"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase"
	"gearshare/internal/usecase/views"
	"gearshare/tests/common/httptest"
	"gearshare/tests/common/testutil"
	usecasemock "gearshare/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockBookingUseCase
	handler  *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUC)

	identified := middleware.RequireSharerID()
	bookings := s.router.Group("/bookings")
	bookings.Use(identified)
	bookings.POST("", s.handler.Create)
	bookings.PATCH("/:bookingId", s.handler.Decide)
	bookings.GET("/owner", s.handler.ListForOwnItems)
	bookings.GET("/:bookingId", s.handler.Get)
	bookings.GET("", s.handler.ListOwn)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func waitingBookingView() *views.BookingView {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	return &views.BookingView{
		ID:     7,
		Start:  start,
		End:    start.Add(2 * time.Hour),
		Status: booking.StatusWaiting,
		Item: views.ItemView{
			ID: 3, Name: "Drill", Description: "Cordless drill", Available: true,
			Owner: views.UserView{ID: 1, Name: "Owner", Email: "owner@example.com"},
		},
		Booker: views.UserView{ID: 2, Name: "Booker", Email: "booker@example.com"},
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	view := waitingBookingView()
	reqBody := reqdto.CreateBookingRequest{
		ItemID: view.Item.ID,
		Start:  view.Start,
		End:    view.End,
	}

	s.Run("success: returns 201 Created with WAITING status", func() {
		s.mockUC.EXPECT().
			Create(gomock.Any(), usecase.CreateBookingParams{
				BookerID: 2, ItemID: view.Item.ID, Start: view.Start, End: view.End,
			}).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "2")

		var body views.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(booking.StatusWaiting, body.Status)
		s.Equal(view.Item.ID, body.Item.ID)
	})

	s.Run("error: 400 when the identity header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing user id header")
	})

	s.Run("error: 400 when the identity header is malformed", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "not-a-number")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id header")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil)},
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil)},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "2")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 404 when the item does not exist", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrItemNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 when the item is unavailable", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrItemNotAvailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Item is not available")
	})

	s.Run("error: 400 on an invalid period", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("end before start"), errs.ErrDomainValidation)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	s.Run("success: owner approves", func() {
		approved := waitingBookingView()
		approved.Status = booking.StatusApproved
		s.mockUC.EXPECT().Decide(gomock.Any(), int64(1), int64(7), true).
			Return(approved, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7?approved=true", nil, "1")

		var body views.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(booking.StatusApproved, body.Status)
	})

	s.Run("success: owner rejects", func() {
		rejected := waitingBookingView()
		rejected.Status = booking.StatusRejected
		s.mockUC.EXPECT().Decide(gomock.Any(), int64(1), int64(7), false).
			Return(rejected, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7?approved=false", nil, "1")

		var body views.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(booking.StatusRejected, body.Status)
	})

	s.Run("error: 400 when approved parameter is absent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7", nil, "1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid approved parameter")
	})

	s.Run("error: 400 on malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/abc?approved=true", nil, "1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid bookingId")
	})

	s.Run("error: 403 when the caller is not the owner", func() {
		s.mockUC.EXPECT().Decide(gomock.Any(), int64(2), int64(7), true).
			Return(nil, errs.ErrBookingAccess).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7?approved=true", nil, "2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockUC.EXPECT().Decide(gomock.Any(), int64(1), int64(99), true).
			Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/99?approved=true", nil, "1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK", func() {
		s.mockUC.EXPECT().GetByID(gomock.Any(), int64(2), int64(7)).
			Return(waitingBookingView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7", nil, "2")

		var body views.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ID)
	})

	s.Run("error: 403 for an unrelated caller", func() {
		s.mockUC.EXPECT().GetByID(gomock.Any(), int64(9), int64(7)).
			Return(nil, errs.ErrBookingAccess).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7", nil, "9")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestListOwn / TestListForOwnItems
// ================================================================================

func (s *BookingHandlerTestSuite) TestListOwn() {
	s.Run("success: state defaults to ALL", func() {
		s.mockUC.EXPECT().ListByBooker(gomock.Any(), int64(2), "ALL").
			Return([]*views.BookingView{waitingBookingView()}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "2")

		var body []views.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: explicit state is passed through", func() {
		s.mockUC.EXPECT().ListByBooker(gomock.Any(), int64(2), "FUTURE").
			Return([]*views.BookingView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=FUTURE", nil, "2")

		var body []views.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 on an unknown state token", func() {
		s.mockUC.EXPECT().ListByBooker(gomock.Any(), int64(2), "SOMETHING").
			Return(nil, errs.ErrInvalidStateParam).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=SOMETHING", nil, "2")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state filter")
	})
}

func (s *BookingHandlerTestSuite) TestListForOwnItems() {
	s.Run("success: routes to the owner listing", func() {
		s.mockUC.EXPECT().ListByOwner(gomock.Any(), int64(1), "ALL").
			Return([]*views.BookingView{waitingBookingView()}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, "1")

		var body []views.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 500 opaque on unexpected failure", func() {
		s.mockUC.EXPECT().ListByOwner(gomock.Any(), int64(1), "ALL").
			Return(nil, errs.New("connection reset")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, "1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
