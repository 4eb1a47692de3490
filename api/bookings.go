package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maruthihotels/roombooking/internal/service/reservation"
)

type BookingHandler struct {
	service reservation.ReservationUseCase
}

type bookRoomRequest struct {
	RoomType         string `json:"roomType"`
	Checkin          string `json:"checkin"`
	Checkout         string `json:"checkout"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerPhone    string `json:"customerPhone"`
	PaymentReference string `json:"paymentReference"`
}

func NewBookingHandler(service reservation.ReservationUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/room-availability", h.availability)
	router.POST("/book-room", h.book)
	router.DELETE("/cancel-booking", h.cancel)
}

func (h *BookingHandler) availability(c *gin.Context) {
	checkin := c.Query("checkin")
	checkout := c.Query("checkout")
	if checkin == "" || checkout == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing checkin or checkout date"})
		return
	}

	remaining, err := h.service.CheckAvailability(c.Request.Context(), checkin, checkout)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, remaining)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.service.Book(c.Request.Context(), reservation.BookInput{
		RoomType:         req.RoomType,
		Checkin:          req.Checkin,
		Checkout:         req.Checkout,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Booked", "booking": booking})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing booking ID"})
		return
	}

	refund, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Cancelled", "refundAmount": refund})
}
