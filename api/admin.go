package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maruthihotels/roombooking/internal/auth"
	"github.com/maruthihotels/roombooking/internal/service/reservation"
)

type AdminHandler struct {
	service reservation.ReservationUseCase
	auth    auth.Authenticator
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type setRoomCountRequest struct {
	RoomType string `json:"roomType"`
	Count    *int   `json:"count"`
}

func NewAdminHandler(service reservation.ReservationUseCase, authenticator auth.Authenticator) *AdminHandler {
	return &AdminHandler{service: service, auth: authenticator}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/room-count", h.setRoomCount)
	router.GET("/summary", h.summary)
}

func (h *AdminHandler) login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	if err := h.auth.Verify(req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "login successful"})
}

// setRoomCount overwrites a room type's stored count. It does not reconcile
// against active bookings; lowering the count under the current overlap
// level is permitted and leaves existing bookings untouched.
func (h *AdminHandler) setRoomCount(c *gin.Context) {
	var req setRoomCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RoomType == "" || req.Count == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomType and count required"})
		return
	}

	if err := h.service.SetCapacity(c.Request.Context(), req.RoomType, *req.Count); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
