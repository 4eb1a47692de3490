package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/maruthihotels/roombooking/internal/auth"
	"github.com/maruthihotels/roombooking/internal/domain"
)

func newAdminRouter(svc *MockReservationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authenticator := auth.NewStaticAdmin("admin@hotelmaruthi.com", "secret123")
	NewAdminHandler(svc, authenticator).Register(r.Group("/api/admin"))
	return r
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAdminHandler_Login(t *testing.T) {
	router := newAdminRouter(&MockReservationUseCase{})

	w := postJSON(router, "/api/admin/login", gin.H{"username": "admin@hotelmaruthi.com", "password": "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = postJSON(router, "/api/admin/login", gin.H{"username": "admin@hotelmaruthi.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(router, "/api/admin/login", gin.H{"username": "admin@hotelmaruthi.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_SetRoomCount(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newAdminRouter(mockService)

	mockService.On("SetCapacity", mock.Anything, "Deluxe", 3).Return(nil)

	w := postJSON(router, "/api/admin/room-count", gin.H{"roomType": "Deluxe", "count": 3})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	mockService.AssertExpectations(t)
}

func TestAdminHandler_SetRoomCount_ZeroIsValid(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newAdminRouter(mockService)

	mockService.On("SetCapacity", mock.Anything, "Deluxe", 0).Return(nil)

	w := postJSON(router, "/api/admin/room-count", gin.H{"roomType": "Deluxe", "count": 0})
	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestAdminHandler_SetRoomCount_Invalid(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newAdminRouter(mockService)

	w := postJSON(router, "/api/admin/room-count", gin.H{"roomType": "Deluxe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SetCapacity")

	mockService.On("SetCapacity", mock.Anything, "Presidential", 3).Return(domain.ErrInvalidRoomType)
	w = postJSON(router, "/api/admin/room-count", gin.H{"roomType": "Presidential", "count": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_Summary(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newAdminRouter(mockService)

	mockService.On("Summary", mock.Anything).Return(map[string]domain.RoomSummary{
		"Deluxe": {Total: 7, Booked: 2, Available: 5},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]domain.RoomSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domain.RoomSummary{Total: 7, Booked: 2, Available: 5}, body["Deluxe"])
}
