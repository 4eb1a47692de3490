package domain

import "errors"

var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidRoomType  = errors.New("invalid room type")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrRoomUnavailable  = errors.New("room not available")
	ErrBookingNotFound  = errors.New("booking not found")
)
