//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/authtest"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingE2ESuite struct {
	e2e.SharedSuite

	ownerID     uuid.UUID
	ownerToken  string
	renterID    uuid.UUID
	renterToken string
	itemID      uuid.UUID
}

func TestBookingE2E(t *testing.T) {
	suite.Run(t, new(bookingE2ESuite))
}

func (s *bookingE2ESuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.ownerID, s.ownerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Owner", "owner@example.com")
	s.renterID, s.renterToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Renter", "renter@example.com")
	s.itemID = dbtest.CreateTestItem(s.T(), s.DB, s.ownerID, "Drill", "Cordless drill", true)
}

func (s *bookingE2ESuite) book(itemID uuid.UUID, start, end time.Time, token string) *response.BookingResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
		request.CreateBookingRequest{ItemID: itemID, Start: start, End: end}, token)
	var res response.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return &res
}

func (s *bookingE2ESuite) TestLifecycle() {
	start := time.Now().Add(time.Hour).Truncate(time.Second)
	end := start.Add(24 * time.Hour)

	created := s.book(s.itemID, start, end, s.renterToken)
	assert.Equal(s.T(), "WAITING", created.Status)
	assert.Equal(s.T(), s.renterID, created.Booker.ID)
	assert.Equal(s.T(), s.ownerID, created.Item.OwnerID)
	assert.True(s.T(), start.Equal(created.Start))

	s.Run("renter cannot approve", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			fmt.Sprintf("/api/bookings/%s?approved=true", created.ID), nil, s.renterToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
		fmt.Sprintf("/api/bookings/%s?approved=true", created.ID), nil, s.ownerToken)
	var approved response.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &approved)
	assert.Equal(s.T(), "APPROVED", approved.Status)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
		fmt.Sprintf("/api/bookings/%s?approved=true", created.ID), nil, s.ownerToken)
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "booking already approved")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
		fmt.Sprintf("/api/bookings/%s?approved=false", created.ID), nil, s.ownerToken)
	var rejected response.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rejected)
	assert.Equal(s.T(), "REJECTED", rejected.Status)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
		fmt.Sprintf("/api/bookings/%s?approved=true", created.ID), nil, s.ownerToken)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &approved)
	assert.Equal(s.T(), "APPROVED", approved.Status)

	for _, tc := range []struct {
		path  string
		token string
		want  int
	}{
		{"/api/bookings?state=FUTURE", s.renterToken, 1},
		{"/api/bookings?state=future", s.renterToken, 1},
		{"/api/bookings?state=CURRENT", s.renterToken, 0},
		{"/api/bookings?state=WAITING", s.renterToken, 0},
		{"/api/bookings", s.renterToken, 1},
		{"/api/bookings/owner?state=FUTURE", s.ownerToken, 1},
		{"/api/bookings/owner", s.renterToken, 0},
	} {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, tc.path, nil, tc.token)
		var list []*response.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		assert.Len(s.T(), list, tc.want, tc.path)
	}

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/items/"+s.itemID.String(), nil, s.ownerToken)
	var detail response.ItemDetailResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &detail)
	require.NotNil(s.T(), detail.NextBooking)
	assert.Equal(s.T(), created.ID, detail.NextBooking.ID)
	assert.Nil(s.T(), detail.LastBooking)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/items/"+s.itemID.String(), nil, s.renterToken)
	var renterView response.ItemDetailResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &renterView)
	assert.Nil(s.T(), renterView.NextBooking)
}

func (s *bookingE2ESuite) TestCreateRejections() {
	start := time.Now().Add(time.Hour)

	s.Run("own item", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{ItemID: s.itemID, Start: start, End: start.Add(time.Hour)}, s.ownerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("end before start", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{ItemID: s.itemID, Start: start.Add(time.Hour), End: start}, s.renterToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "start time must be before end time")
	})

	s.Run("start in the past", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{ItemID: s.itemID, Start: time.Now().Add(-time.Hour), End: start}, s.renterToken)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("unknown item", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{ItemID: uuid.New(), Start: start, End: start.Add(time.Hour)}, s.renterToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "item not found")
	})
}

func (s *bookingE2ESuite) TestUnknownState() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings?state=SOMETIME", nil, s.renterToken)
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS")
}

func (s *bookingE2ESuite) TestUnavailableItemAfterUpdate() {
	start := time.Now().Add(time.Hour)
	s.book(s.itemID, start, start.Add(time.Hour), s.renterToken)

	// the catalog entry cached by the first booking must not outlive the update
	assert.True(s.T(), s.Redis.Exists("shareit:item:"+s.itemID.String()))

	available := false
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/items/"+s.itemID.String(),
		request.UpdateItemRequest{Available: &available}, s.ownerToken)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	assert.False(s.T(), s.Redis.Exists("shareit:item:"+s.itemID.String()))

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
		request.CreateBookingRequest{ItemID: s.itemID, Start: start, End: start.Add(time.Hour)}, s.renterToken)
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "item is not available")
}

func (s *bookingE2ESuite) TestCommentAfterCompletedBooking() {
	now := time.Now()
	path := fmt.Sprintf("/api/items/%s/comment", s.itemID)

	dbtest.CreateTestBooking(s.T(), s.DB, s.itemID, s.renterID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path,
		request.CreateCommentRequest{Text: "Great drill"}, s.renterToken)
	var comment response.CommentResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &comment)
	assert.Equal(s.T(), "Renter", comment.AuthorName)

	future := dbtest.CreateTestBooking(s.T(), s.DB, s.itemID, s.renterID, now.Add(time.Hour), now.Add(2*time.Hour), "APPROVED")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path,
		request.CreateCommentRequest{Text: "Still great"}, s.renterToken)
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "booking in future")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/items/"+s.itemID.String(), nil, s.ownerToken)
	var detail response.ItemDetailResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &detail)
	require.Len(s.T(), detail.Comments, 1)
	require.NotNil(s.T(), detail.LastBooking)
	require.NotNil(s.T(), detail.NextBooking)
	assert.Equal(s.T(), future, detail.NextBooking.ID)

	s.Run("stranger has no bookings", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Stranger", "stranger@example.com")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path,
			request.CreateCommentRequest{Text: "Never used it"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "no bookings")
	})
}
