package reservation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/maruthihotels/roombooking/internal/clock"
	"github.com/maruthihotels/roombooking/internal/dates"
	"github.com/maruthihotels/roombooking/internal/domain"
	"github.com/maruthihotels/roombooking/internal/inventory"
	"github.com/maruthihotels/roombooking/internal/kafka"
	"github.com/maruthihotels/roombooking/internal/pricing"
)

type ReservationUseCase interface {
	CheckAvailability(ctx context.Context, checkin, checkout string) (map[string]int, error)
	Book(ctx context.Context, input BookInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) (int64, error)
	SetCapacity(ctx context.Context, roomType string, count int) error
	Summary(ctx context.Context) (map[string]domain.RoomSummary, error)
}

// Cache serves availability reads only. The booking gate never trusts it.
type Cache interface {
	GetAvailability(ctx context.Context, checkin, checkout string) (map[string]int, error)
	SetAvailability(ctx context.Context, checkin, checkout string, remaining map[string]int) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	RoomType         string `json:"roomType"`
	Checkin          string `json:"checkin"`
	Checkout         string `json:"checkout"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerPhone    string `json:"customerPhone"`
	PaymentReference string `json:"paymentReference,omitempty"`
}

// Service is the reservation engine. It owns the active-bookings set and the
// booking-id sequence; the inventory store and event producer are injected.
// Every state-changing operation runs its read-check-mutate sequence under
// one mutex, which is the only concurrency guarantee this system makes
// (single process, single writer).
type Service struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	seq      int

	store    inventory.Store
	policy   *pricing.Policy
	clk      clock.Clock
	cache    Cache
	producer Producer
	topic    string
}

type ServiceOption func(*Service)

func WithCache(c Cache) ServiceOption {
	return func(s *Service) { s.cache = c }
}

func WithProducer(p Producer, topic string) ServiceOption {
	return func(s *Service) {
		s.producer = p
		s.topic = topic
	}
}

func NewService(store inventory.Store, policy *pricing.Policy, clk clock.Clock, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		policy: policy,
		clk:    clk,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckAvailability returns the number of rooms remaining per room type for
// the query window. The result is advisory: Book recomputes the gate at
// call time.
func (s *Service) CheckAvailability(ctx context.Context, checkin, checkout string) (map[string]int, error) {
	if err := dates.ValidateRange(checkin, checkout); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.GetAvailability(ctx, checkin, checkout); err == nil && cached != nil {
			return cached, nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := make(map[string]int, len(s.policy.Rooms()))
	for _, room := range s.policy.Rooms() {
		n, err := s.remainingLocked(ctx, room.Type, checkin, checkout)
		if err != nil {
			return nil, err
		}
		remaining[room.Type] = n
	}

	if s.cache != nil {
		if err := s.cache.SetAvailability(ctx, checkin, checkout, remaining); err != nil {
			log.Printf("availability cache write failed: %v", err)
		}
	}
	return remaining, nil
}

// Book creates a booking after an authoritative capacity check. The overlap
// count is recomputed here under the lock; a prior CheckAvailability result
// is never reused.
func (s *Service) Book(ctx context.Context, input BookInput) (*domain.Booking, error) {
	if input.RoomType == "" || input.Checkin == "" || input.Checkout == "" ||
		input.CustomerEmail == "" || input.CustomerPhone == "" {
		return nil, domain.ErrMissingParameter
	}
	room, ok := s.policy.Room(input.RoomType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRoomType, input.RoomType)
	}
	if err := dates.ValidateRange(input.Checkin, input.Checkout); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	overlap := s.overlapCountLocked(room.Type, input.Checkin, input.Checkout)
	total, err := s.totalCapacityLocked(ctx, room.Type)
	if err != nil {
		return nil, err
	}
	if overlap >= total {
		return nil, fmt.Errorf("%w: %s from %s to %s", domain.ErrRoomUnavailable, room.Type, input.Checkin, input.Checkout)
	}

	tax, totalPrice := s.policy.Quote(room.BasePrice)
	s.seq++
	b := &domain.Booking{
		BookingID:        bookingID(room.Type, input.Checkin, s.seq),
		RoomType:         room.Type,
		Checkin:          input.Checkin,
		Checkout:         input.Checkout,
		CustomerEmail:    input.CustomerEmail,
		CustomerPhone:    input.CustomerPhone,
		BasePrice:        room.BasePrice,
		Tax:              tax,
		TotalPrice:       totalPrice,
		PaymentReference: input.PaymentReference,
		CreatedAt:        s.clk.Now(),
	}
	s.bookings = append(s.bookings, b)

	current, err := s.store.Get(ctx, room.Type)
	if err == nil {
		err = s.store.Set(ctx, room.Type, current-1)
	}
	if err != nil {
		// roll the append back so bookings and inventory stay consistent
		s.bookings = s.bookings[:len(s.bookings)-1]
		s.seq--
		return nil, fmt.Errorf("update inventory for %s: %w", room.Type, err)
	}

	s.publish(ctx, kafka.EventBookingCreated, b, 0)
	return b, nil
}

// Cancel removes a booking and returns the refund amount under the
// configured tier policy. Inventory is restored unconditionally, whatever
// the refund comes to; the refund itself is the caller's (worker's) job.
func (s *Service) Cancel(ctx context.Context, bookingID string) (int64, error) {
	if bookingID == "" {
		return 0, domain.ErrMissingParameter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, b := range s.bookings {
		if b.BookingID == bookingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, bookingID)
	}
	b := s.bookings[idx]
	s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)

	if current, err := s.store.Get(ctx, b.RoomType); err == nil {
		if err := s.store.Set(ctx, b.RoomType, current+1); err != nil {
			log.Printf("restore inventory for %s failed: %v", b.RoomType, err)
		}
	} else {
		log.Printf("read inventory for %s failed: %v", b.RoomType, err)
	}

	daysBefore := dates.DaysUntil(b.Checkin, s.clk.Now())
	refund := s.policy.Refund(b.TotalPrice, daysBefore)

	s.publish(ctx, kafka.EventBookingCancelled, b, refund)
	return refund, nil
}

// SetCapacity overwrites the stored count for a room type. It does not
// reconcile against active bookings: setting a count below the current
// overlap level leaves existing bookings in place.
func (s *Service) SetCapacity(ctx context.Context, roomType string, count int) error {
	if _, ok := s.policy.Room(roomType); !ok {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRoomType, roomType)
	}
	if count < 0 {
		return fmt.Errorf("%w: capacity must not be negative", domain.ErrMissingParameter)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Set(ctx, roomType, count)
}

// Summary reports, per room type, the total room count, the number of
// active bookings and the unreserved count.
func (s *Service) Summary(ctx context.Context) (map[string]domain.RoomSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]domain.RoomSummary, len(s.policy.Rooms()))
	for _, room := range s.policy.Rooms() {
		unreserved, err := s.store.Get(ctx, room.Type)
		if err != nil {
			return nil, err
		}
		booked := s.activeCountLocked(room.Type)
		out[room.Type] = domain.RoomSummary{
			Total:     unreserved + booked,
			Booked:    booked,
			Available: max(0, unreserved),
		}
	}
	return out, nil
}

// Reset clears the active-bookings set and the id sequence. Test hook.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = nil
	s.seq = 0
}

// totalCapacityLocked derives the room-type total from the stored
// unreserved count plus the bookings currently holding rooms. Keeping the
// total derived rather than stored makes book/cancel symmetric: each
// booking moves one unit between the store and the active set.
func (s *Service) totalCapacityLocked(ctx context.Context, roomType string) (int, error) {
	unreserved, err := s.store.Get(ctx, roomType)
	if err != nil {
		return 0, err
	}
	return unreserved + s.activeCountLocked(roomType), nil
}

func (s *Service) remainingLocked(ctx context.Context, roomType, checkin, checkout string) (int, error) {
	total, err := s.totalCapacityLocked(ctx, roomType)
	if err != nil {
		return 0, err
	}
	return max(0, total-s.overlapCountLocked(roomType, checkin, checkout)), nil
}

func (s *Service) overlapCountLocked(roomType, checkin, checkout string) int {
	n := 0
	for _, b := range s.bookings {
		if b.RoomType == roomType && dates.Overlaps(checkin, checkout, b.Checkin, b.Checkout) {
			n++
		}
	}
	return n
}

func (s *Service) activeCountLocked(roomType string) int {
	n := 0
	for _, b := range s.bookings {
		if b.RoomType == roomType {
			n++
		}
	}
	return n
}

// publish emits a booking event after the state mutation commits. Event
// delivery never affects the already-decided result; failures are logged
// and dropped.
func (s *Service) publish(ctx context.Context, eventType string, b *domain.Booking, refund int64) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:             eventType,
		BookingID:        b.BookingID,
		RoomType:         b.RoomType,
		Checkin:          b.Checkin,
		Checkout:         b.Checkout,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		BasePrice:        b.BasePrice,
		Tax:              b.Tax,
		TotalPrice:       b.TotalPrice,
		RefundAmount:     refund,
		PaymentReference: b.PaymentReference,
	}
	if err := s.producer.Publish(ctx, s.topic, b.BookingID, event); err != nil {
		log.Printf("publish %s for %s failed: %v", eventType, b.BookingID, err)
	}
}

func bookingID(roomType, checkin string, seq int) string {
	return fmt.Sprintf("BK%s-%s-%d", strings.ReplaceAll(checkin, "-", ""), roomType, seq)
}

var _ ReservationUseCase = (*Service)(nil)
