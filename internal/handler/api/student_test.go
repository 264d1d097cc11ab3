//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"canteen-reservation/internal/handler/api"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/tests/common/builder"
	"canteen-reservation/tests/common/httptest"
	"canteen-reservation/tests/common/testutil"
	commandsmock "canteen-reservation/tests/mock/commands"
	queriesmock "canteen-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StudentHandlerTestSuite struct {
	suite.Suite
	router                  *gin.Engine
	mockCtrl                *gomock.Controller
	mockRestrictionCommands *commandsmock.MockRestrictionCommands
	mockStudentQueries      *queriesmock.MockStudentQueries
	mockRestrictionQueries  *queriesmock.MockRestrictionQueries
	handler                 *api.StudentHandler
}

func (s *StudentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRestrictionCommands = commandsmock.NewMockRestrictionCommands(s.mockCtrl)
	s.mockStudentQueries = queriesmock.NewMockStudentQueries(s.mockCtrl)
	s.mockRestrictionQueries = queriesmock.NewMockRestrictionQueries(s.mockCtrl)
	s.handler = api.NewStudentHandler(s.mockRestrictionCommands, s.mockStudentQueries, s.mockRestrictionQueries)

	group := s.router.Group("/students")
	group.GET("", s.handler.List)
	group.GET("/:id/restrictions", s.handler.ListRestrictions)
	group.POST("/:id/restrictions", s.handler.CreateRestriction)
}

func (s *StudentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStudentHandlerSuite(t *testing.T) {
	suite.Run(t, new(StudentHandlerTestSuite))
}

func (s *StudentHandlerTestSuite) TestList() {
	s.Run("success: returns all student accounts", func() {
		views := []*queries.StudentView{
			{ID: uuid.New(), Name: "Ivan Petrov", Email: "ivan@uni.bg", Role: "student", IsActive: true},
			{ID: uuid.New(), Name: "Maria Georgieva", Email: "maria@uni.bg", Role: "admin", IsActive: true},
		}
		s.mockStudentQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/students", nil, "")

		var response []resdto.StudentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal("admin", response[1].Role)
	})

	s.Run("error: 500 when the read side fails", func() {
		s.mockStudentQueries.EXPECT().List(gomock.Any()).
			Return(nil, infra.WrapRepoErr("query failed", fmt.Errorf("connection reset"), infra.KindDBFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/students", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *StudentHandlerTestSuite) TestListRestrictions() {
	s.Run("success: returns the student's restriction history", func() {
		studentID := uuid.New()
		view := builder.NewRestrictionBuilder().
			With(func(b *builder.RestrictionBuilder) { b.StudentID = studentID }).
			BuildViewQuery()
		s.mockRestrictionQueries.EXPECT().ListByStudent(gomock.Any(), studentID).
			Return([]*queries.RestrictionView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/students/"+studentID.String()+"/restrictions", nil, "")

		var response []resdto.RestrictionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(view.ID, response[0].ID)
		s.Equal(studentID, response[0].StudentID)
	})

	s.Run("success: no history is an empty array", func() {
		studentID := uuid.New()
		s.mockRestrictionQueries.EXPECT().ListByStudent(gomock.Any(), studentID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/students/"+studentID.String()+"/restrictions", nil, "")

		var response []resdto.RestrictionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/students/not-a-uuid/restrictions", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *StudentHandlerTestSuite) TestCreateRestriction() {
	studentID := uuid.New()
	url := "/students/" + studentID.String() + "/restrictions"
	rb := builder.NewRestrictionBuilder()
	reqBody := rb.BuildCreateRequestDTO()

	s.Run("success: the path names the target student", func() {
		id := uuid.New()
		expected := reqBody
		expected.StudentID = studentID
		s.mockRestrictionCommands.EXPECT().Create(gomock.Any(), expected).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id.String(), response["id"])
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectCode    int
		}{
			{name: "unknown student", commandsError: commands.ErrStudentNotFound, expectCode: http.StatusNotFound},
			{name: "window ends before it starts", commandsError: commands.ErrDomainValidation, expectCode: http.StatusBadRequest},
			{name: "unexpected failure", commandsError: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRestrictionCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing reason", mutate: testutil.Field("reason", nil)},
			{name: "missing window start", mutate: testutil.Field("starts_at", nil)},
			{name: "missing window end", mutate: testutil.Field("ends_at", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/students/nope/restrictions", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
