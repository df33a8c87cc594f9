//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gearshare/internal/handler/api"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/views"
	"gearshare/tests/common/httptest"
	"gearshare/tests/common/testutil"
	usecasemock "gearshare/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockUserUseCase
	handler  *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockUserUseCase(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockUC)

	s.router.POST("/users", s.handler.Create)
	s.router.GET("/users", s.handler.List)
	s.router.GET("/users/:userId", s.handler.Get)
	s.router.PATCH("/users/:userId", s.handler.Update)
	s.router.DELETE("/users/:userId", s.handler.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func aliceView() *views.UserView {
	return &views.UserView{ID: 1, Name: "Alice", Email: "alice@example.com"}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *UserHandlerTestSuite) TestCreate() {
	url := "/users"
	reqBody := reqdto.CreateUserRequest{Name: "Alice", Email: "alice@example.com"}

	s.Run("success: returns 201 Created", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), "Alice", "alice@example.com").
			Return(aliceView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body views.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(1), body.ID)
		s.Equal("alice@example.com", body.Email)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict on duplicate email", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEmailConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already in use")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection refused")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *UserHandlerTestSuite) TestUpdate() {
	url := "/users/1"
	newName := "Alicia"
	reqBody := reqdto.UpdateUserRequest{Name: &newName}

	s.Run("success: returns 200 OK", func() {
		updated := aliceView()
		updated.Name = newName
		s.mockUC.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
			Return(updated, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var body views.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(newName, body.Name)
	})

	s.Run("error: 400 on malformed path id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/abc", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid userId")
	})

	s.Run("error: 400 on malformed email in body", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "broken"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 when user does not exist", func() {
		s.mockUC.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
			Return(nil, errs.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 409 when email is taken", func() {
		s.mockUC.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
			Return(nil, errs.ErrEmailConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already in use")
	})
}

// ================================================================================
// TestGet / TestList / TestDelete
// ================================================================================

func (s *UserHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK", func() {
		s.mockUC.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(aliceView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/1", nil, "")

		var body views.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Alice", body.Name)
	})

	s.Run("error: 404 when user does not exist", func() {
		s.mockUC.EXPECT().GetByID(gomock.Any(), int64(42)).
			Return(nil, errs.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success: returns every user", func() {
		s.mockUC.EXPECT().GetAll(gomock.Any()).
			Return([]*views.UserView{aliceView()}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")

		var body []views.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockUC.EXPECT().Delete(gomock.Any(), int64(1)).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 when user does not exist", func() {
		s.mockUC.EXPECT().Delete(gomock.Any(), int64(42)).
			Return(errs.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
