//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockItemRequestCommands
	mockQueries  *queriesmock.MockItemRequestQueries
	actor        uuid.UUID
}

func (s *ItemRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockItemRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockItemRequestQueries(s.mockCtrl)
	h := api.NewItemRequestHandler(s.mockCommands, s.mockQueries)
	s.actor = uuid.New()

	g := s.router.Group("/requests", fakeAuth)
	g.POST("", h.Create)
	g.GET("", h.ListOwn)
	g.GET("/all", h.ListOthers)
	g.GET("/:id", h.Get)
}

func (s *ItemRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemRequestHandlerTestSuite))
}

func (s *ItemRequestHandlerTestSuite) view(items ...*queries.ItemView) *queries.ItemRequestView {
	return &queries.ItemRequestView{
		ID:          uuid.New(),
		RequesterID: s.actor,
		Description: "Need a ladder",
		CreatedAt:   baseTime,
		Items:       items,
	}
}

func (s *ItemRequestHandlerTestSuite) TestCreate() {
	view := s.view()
	s.mockCommands.EXPECT().Create(gomock.Any(), "Need a ladder", s.actor).
		Return(&commands.CreateItemRequestResult{RequestID: view.ID}, nil).Times(1)
	s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actor).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", map[string]any{"description": "Need a ladder"}, s.actor.String())

	var body resdto.ItemRequestResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	s.Equal(view.ID, body.ID)
	s.True(baseTime.Equal(body.Created))
	s.NotNil(body.Items)
	s.Empty(body.Items)
}

func (s *ItemRequestHandlerTestSuite) TestListAndGet() {
	answer := builder.NewItemBuilder().BuildReadModel()
	withItem := s.view(answer)

	s.Run("own requests carry their answers", func() {
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), s.actor).Return([]*queries.ItemRequestView{withItem, s.view()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, s.actor.String())

		var body []resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Require().Len(body[0].Items, 1)
		s.Equal(answer.ID, body[0].Items[0].ID)
		s.Equal(answer.Name, body[0].Items[0].Name)
		s.Empty(body[1].Items)
	})

	s.Run("others paged", func() {
		s.mockQueries.EXPECT().ListOthers(gomock.Any(), s.actor, shared.Page{Offset: 0, Limit: 5}).Return([]*queries.ItemRequestView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/all?size=5", nil, s.actor.String())
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("unknown request", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actor).Return(nil, shared.ErrItemRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+id.String(), nil, s.actor.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "item request not found")
	})
}
