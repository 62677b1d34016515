//go:build e2e

package item_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/authtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type itemE2ESuite struct {
	e2e.SharedSuite
}

func TestItemE2E(t *testing.T) {
	suite.Run(t, new(itemE2ESuite))
}

func (s *itemE2ESuite) register(name, email string) (*response.UserResponse, string) {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/users",
		request.RegisterUserRequest{Name: name, Email: email, Password: "secret-pass"}, "")
	var user response.UserResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &user)
	return &user, authtest.LoginUser(s.T(), s.Router, email, "secret-pass")
}

func (s *itemE2ESuite) TestRegistrationAndProfile() {
	user, token := s.register("Alice", "alice@example.com")
	assert.Equal(s.T(), "alice@example.com", user.Email)

	s.Run("duplicate email", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/users",
			request.RegisterUserRequest{Name: "Other", Email: "alice@example.com", Password: "secret-pass"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "email already registered")
	})

	s.Run("wrong password", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "alice@example.com", Password: "not-the-one"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	name := "Alice Liddell"
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/users/"+user.ID.String(),
		request.UpdateUserRequest{Name: &name}, token)
	var updated response.UserResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
	assert.Equal(s.T(), name, updated.Name)
	assert.Equal(s.T(), "alice@example.com", updated.Email)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/users/"+user.ID.String(), nil, "")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *itemE2ESuite) TestRequestAnsweredByItem() {
	_, requesterToken := s.register("Requester", "requester@example.com")
	_, ownerToken := s.register("Owner", "owner@example.com")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/requests",
		request.CreateItemRequestRequest{Description: "Need a ladder"}, requesterToken)
	var req response.ItemRequestResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &req)
	assert.Empty(s.T(), req.Items)

	available := true
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/items",
		request.CreateItemRequest{Name: "Ladder", Description: "Three metre ladder", Available: &available, RequestID: &req.ID}, ownerToken)
	var item response.ItemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &item)
	require.NotNil(s.T(), item.RequestID)
	assert.Equal(s.T(), req.ID, *item.RequestID)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/requests/"+req.ID.String(), nil, ownerToken)
	var answered response.ItemRequestResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &answered)
	require.Len(s.T(), answered.Items, 1)
	assert.Equal(s.T(), item.ID, answered.Items[0].ID)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/requests/all", nil, ownerToken)
	var others []*response.ItemRequestResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &others)
	assert.Len(s.T(), others, 1)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/requests/all", nil, requesterToken)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &others)
	assert.Empty(s.T(), others)

	s.Run("search finds available items only", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/items/search?text=LADDER", nil, requesterToken)
		var found []*response.ItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &found)
		require.Len(s.T(), found, 1)

		unavailable := false
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/items/"+item.ID.String(),
			request.UpdateItemRequest{Available: &unavailable}, ownerToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/items/search?text=ladder", nil, requesterToken)
		require.Equal(s.T(), http.StatusOK, w.Code)
		assert.Empty(s.T(), httptest.Decode[[]*response.ItemResponse](s.T(), w))
	})

	s.Run("only the owner updates", func() {
		name := "Stolen"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/items/"+item.ID.String(),
			request.UpdateItemRequest{Name: &name}, requesterToken)
		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *itemE2ESuite) TestTokens() {
	user, _ := s.register("Bob", "bob@example.com")
	helper := authtest.NewJWTHelper(s.Config.JWT)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/users/"+user.ID.String(), nil,
		helper.GenerateToken(s.T(), user.ID))
	assert.Equal(s.T(), http.StatusOK, w.Code)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/users/"+user.ID.String(), nil,
		helper.CreateExpiredToken(s.T(), user.ID))
	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")

	s.Run("cookie session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "bob@example.com", Password: "secret-pass"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		cookies := w.Result().Cookies()

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, "/api/users/"+user.ID.String(), nil, cookies, "")
		assert.Equal(s.T(), http.StatusOK, w.Code)

		authtest.LogoutUser(s.T(), s.Router, cookies)
	})
}
