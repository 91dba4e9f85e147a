//go:build unit

package api_test

import (
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

type PropertyHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockCommands        *commandsmock.MockPropertyCommands
	mockPropertyQueries *queriesmock.MockPropertyQueries
	mockBookingQueries  *queriesmock.MockBookingQueries
	handler             *api.PropertyHandler
}

func (s *PropertyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPropertyCommands(s.mockCtrl)
	s.mockPropertyQueries = queriesmock.NewMockPropertyQueries(s.mockCtrl)
	s.mockBookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewPropertyHandler(s.mockCommands, s.mockPropertyQueries, s.mockBookingQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleOwner)
		c.Next()
	}

	s.router.POST("/properties", authMiddleware, s.handler.CreateProperty)
	s.router.GET("/properties", authMiddleware, s.handler.ListProperties)
	s.router.GET("/properties/:id", authMiddleware, s.handler.GetProperty)
	s.router.PATCH("/properties/:id", authMiddleware, s.handler.UpdateProperty)
	s.router.GET("/properties/:id/availability", authMiddleware, s.handler.CheckAvailability)
	s.router.GET("/properties/:id/bookings", authMiddleware, s.handler.ListPropertyBookings)
}

func (s *PropertyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPropertyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}

// ================================================================================
// TestCreateProperty
// ================================================================================

func (s *PropertyHandlerTestSuite) TestCreateProperty() {
	url := "/properties"

	reqBody := map[string]any{
		"name":                  "Seaside Cottage",
		"max_guests":            4,
		"price_per_night_cents": 12000,
	}
	returnView := builder.NewPropertyBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateProperty(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PropertyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing max_guests", mutate: testutil.Field("max_guests", nil)},
			{name: "negative price", mutate: testutil.Field("price_per_night_cents", -1)},
			{name: "zero max_guests", mutate: testutil.Field("max_guests", 0)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request on rejected input", func() {
		s.mockCommands.EXPECT().CreateProperty(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidPropertyInput).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid property data")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestUpdateProperty
// ================================================================================

func (s *PropertyHandlerTestSuite) TestUpdateProperty() {
	propertyID := uuid.New()
	url := "/properties/" + propertyID.String()

	reqBody := map[string]any{"is_available": false}
	returnView := builder.NewPropertyBuilder().BuildView()
	returnView.ID = propertyID
	returnView.IsAvailable = false

	s.Run("success: returns 200 OK with updated view", func() {
		s.mockCommands.EXPECT().UpdateProperty(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.PropertyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsAvailable)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty patch",
				commandsError:  commands.ErrEmptyPatch,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid property data",
			},
			{
				name:           "property not found",
				commandsError:  commands.ErrPropertyNotFound,
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
				s.mockCommands.EXPECT().UpdateProperty(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *PropertyHandlerTestSuite) TestCheckAvailability() {
	propertyID := uuid.New()
	baseURL := "/properties/" + propertyID.String() + "/availability"
	url := baseURL + "?check_in=2026-09-10&check_out=2026-09-13"

	s.Run("success: reports free range", func() {
		s.mockBookingQueries.EXPECT().CheckAvailability(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
			Return(&queries.AvailabilityResult{IsAvailable: true, ConflictingBookings: []queries.ConflictingBooking{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsAvailable)
		s.Empty(response.ConflictingBookings)
	})

	s.Run("success: reports blocking bookings", func() {
		conflict := builder.NewBookingBuilder()
		result := &queries.AvailabilityResult{
			IsAvailable: false,
			ConflictingBookings: []queries.ConflictingBooking{
				{ID: conflict.ID, CheckIn: conflict.CheckIn, CheckOut: conflict.CheckOut, Status: "confirmed"},
			},
		}
		s.mockBookingQueries.EXPECT().CheckAvailability(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsAvailable)
		s.Require().Len(response.ConflictingBookings, 1)
		s.Equal(conflict.ID, response.ConflictingBookings[0].ID)
	})

	s.Run("error: 400 Bad Request for missing query params", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check_in and check_out")
	})

	s.Run("error: 400 Bad Request for malformed dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?check_in=nope&check_out=2026-09-13", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown property", func() {
		s.mockBookingQueries.EXPECT().CheckAvailability(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrPropertyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestListPropertyBookings
// ================================================================================

func (s *PropertyHandlerTestSuite) TestListPropertyBookings() {
	propertyID := uuid.New()
	url := "/properties/" + propertyID.String() + "/bookings"

	s.Run("success: owner lists property bookings", func() {
		items := []*queries.BookingListItem{{ID: uuid.New(), PropertyID: propertyID}}
		s.mockBookingQueries.EXPECT().ListByProperty(gomock.Any(), gomock.Any(), propertyID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 403 Forbidden for non-owner", func() {
		s.mockBookingQueries.EXPECT().ListByProperty(gomock.Any(), gomock.Any(), propertyID).
			Return(nil, queries.ErrPropertyAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 404 Not Found for unknown property", func() {
		s.mockBookingQueries.EXPECT().ListByProperty(gomock.Any(), gomock.Any(), propertyID).
			Return(nil, queries.ErrPropertyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
