//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	"stayhub/tests/common/testutil"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleClient)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.UpdateBookingStatus)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("pending", response.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + returnView.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseBooking{
			{name: "missing field: property_id", mutate: testutil.Field("property_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_out", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: guest_count", mutate: testutil.Field("guest_count", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: guest_name", mutate: testutil.Field("guest_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: contact", mutate: testutil.Field("contact", nil), expectCode: http.StatusBadRequest},
			{name: "invalid travel_type", mutate: testutil.Field("travel_type", "business"), expectCode: http.StatusBadRequest},
			{name: "invalid date layout", mutate: testutil.Field("check_in", "10/09/2026"), expectCode: http.StatusBadRequest},
			{name: "invalid property_id", mutate: testutil.Field("property_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 Conflict lists conflicting booking ids", func() {
		conflictID := uuid.New()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &commands.DatesUnavailableError{ConflictIDs: []uuid.UUID{conflictID}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Dates are not available")

		var body struct {
			Detail struct {
				ConflictIDs []uuid.UUID `json:"conflict_ids"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal([]uuid.UUID{conflictID}, body.Detail.ConflictIDs)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "property not found",
				commandsError:  commands.ErrPropertyNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Property not found",
			},
			{
				name:           "property unavailable",
				commandsError:  commands.ErrPropertyUnavailable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not available for booking",
			},
			{
				name:           "guest count exceeded",
				commandsError:  commands.ErrGuestCountExceeded,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Guest count exceeds",
			},
			{
				name:           "check-in in past",
				commandsError:  commands.ErrCheckInInPast,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "cannot be in the past",
			},
			{
				name:           "inverted range",
				commandsError:  commands.ErrInvalidStayRange,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "must be after check-in",
			},
			{
				name:           "dates unavailable without diagnostics",
				commandsError:  commands.ErrDatesUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Dates are not available",
			},
			{
				name:           "invalid guest details",
				commandsError:  commands.ErrInvalidGuestDetails,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid guest details",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.GuestName, response.GuestName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				queriesError:   queries.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "access denied",
				queriesError:   queries.ErrBookingAccess,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), bookingID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	s.Run("success: returns own bookings", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), Status: "pending"},
			{ID: uuid.New(), Status: "confirmed"},
		}
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty list for fresh client", func() {
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestUpdateBookingStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID
	returnView.Status = "confirmed"

	reqBody := map[string]any{"status": "confirmed"}

	s.Run("success: returns 200 OK with updated view", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed", gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 Bad Request for missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/invalid-uuid/status", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown status value",
				commandsError:  commands.ErrInvalidStatus,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid status",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "requester is not the owner",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Forbidden",
			},
			{
				name:           "reactivated dates held by another booking",
				commandsError:  &commands.DatesUnavailableError{ConflictIDs: []uuid.UUID{uuid.New()}},
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Dates are not available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed", gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "requester is not the owner",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Forbidden",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
