package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/maruthihotels/roombooking/internal/domain"
	"github.com/maruthihotels/roombooking/internal/service/reservation"
)

// MockReservationUseCase is a mock implementation of reservation.ReservationUseCase
type MockReservationUseCase struct {
	mock.Mock
}

func (m *MockReservationUseCase) CheckAvailability(ctx context.Context, checkin, checkout string) (map[string]int, error) {
	args := m.Called(ctx, checkin, checkout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockReservationUseCase) Book(ctx context.Context, input reservation.BookInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockReservationUseCase) Cancel(ctx context.Context, bookingID string) (int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationUseCase) SetCapacity(ctx context.Context, roomType string, count int) error {
	args := m.Called(ctx, roomType, count)
	return args.Error(0)
}

func (m *MockReservationUseCase) Summary(ctx context.Context) (map[string]domain.RoomSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.RoomSummary), args.Error(1)
}

func newBookingRouter(svc reservation.ReservationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewBookingHandler(svc).Register(r.Group("/api"))
	return r
}

func TestBookingHandler_Availability(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newBookingRouter(mockService)

	mockService.On("CheckAvailability", mock.Anything, "2024-06-01", "2024-06-03").
		Return(map[string]int{"Deluxe": 5, "Executive": 7}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/room-availability?checkin=2024-06-01&checkout=2024-06-03", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]int
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 5, body["Deluxe"])
}

func TestBookingHandler_Availability_MissingDates(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newBookingRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/room-availability?checkin=2024-06-01", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CheckAvailability")
}

func TestBookingHandler_Book(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newBookingRouter(mockService)

	input := reservation.BookInput{
		RoomType:      "Deluxe",
		Checkin:       "2024-06-01",
		Checkout:      "2024-06-03",
		CustomerEmail: "guest@example.com",
		CustomerPhone: "9876543210",
	}
	booking := &domain.Booking{
		BookingID:  "BK20240601-Deluxe-1",
		RoomType:   "Deluxe",
		Checkin:    "2024-06-01",
		Checkout:   "2024-06-03",
		BasePrice:  1350,
		Tax:        68,
		TotalPrice: 1418,
	}
	mockService.On("Book", mock.Anything, input).Return(booking, nil)

	body, _ := json.Marshal(input)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/book-room", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status  string         `json:"status"`
		Booking domain.Booking `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booked", resp.Status)
	assert.Equal(t, "BK20240601-Deluxe-1", resp.Booking.BookingID)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_Book_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"missing parameter", domain.ErrMissingParameter, http.StatusBadRequest},
		{"invalid room type", domain.ErrInvalidRoomType, http.StatusBadRequest},
		{"invalid date range", domain.ErrInvalidDateRange, http.StatusBadRequest},
		{"room unavailable", domain.ErrRoomUnavailable, http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockReservationUseCase{}
			router := newBookingRouter(mockService)
			mockService.On("Book", mock.Anything, mock.Anything).Return(nil, tc.serviceErr)

			body, _ := json.Marshal(reservation.BookInput{RoomType: "Deluxe"})
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/book-room", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestBookingHandler_Cancel(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newBookingRouter(mockService)

	mockService.On("Cancel", mock.Anything, "BK20240601-Deluxe-1").Return(int64(1418), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/cancel-booking?id=BK20240601-Deluxe-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status       string `json:"status"`
		RefundAmount int64  `json:"refundAmount"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cancelled", resp.Status)
	assert.Equal(t, int64(1418), resp.RefundAmount)
}

func TestBookingHandler_Cancel_NotFound(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newBookingRouter(mockService)

	mockService.On("Cancel", mock.Anything, "BK-missing").Return(int64(0), domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/cancel-booking?id=BK-missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_Cancel_MissingID(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newBookingRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/cancel-booking", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Cancel")
}
