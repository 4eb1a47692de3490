// Package pricing owns the money rules: the room catalog, tax computation
// and the tiered cancellation refund policy. Amounts are whole currency
// units (no minor units in this market), rounded half-up.
package pricing

import (
	"math"
	"sort"
)

// Room describes one bookable room type.
type Room struct {
	Type      string
	BasePrice int64
	Capacity  int
}

// RefundTier maps "at least MinDaysBefore days before check-in" to a refund
// percentage of the total price. Tiers are evaluated from the largest
// MinDaysBefore down; anything below the smallest tier refunds nothing.
type RefundTier struct {
	MinDaysBefore int
	Percent       int
}

// Policy bundles the configured pricing rules.
type Policy struct {
	rooms   map[string]Room
	taxRate float64
	tiers   []RefundTier
}

// DefaultRefundTiers is the standard cancellation ladder.
var DefaultRefundTiers = []RefundTier{
	{MinDaysBefore: 3, Percent: 100},
	{MinDaysBefore: 1, Percent: 50},
}

func NewPolicy(rooms []Room, taxRate float64, tiers []RefundTier) *Policy {
	byType := make(map[string]Room, len(rooms))
	for _, r := range rooms {
		byType[r.Type] = r
	}
	if len(tiers) == 0 {
		tiers = DefaultRefundTiers
	}
	sorted := make([]RefundTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinDaysBefore > sorted[j].MinDaysBefore })
	return &Policy{rooms: byType, taxRate: taxRate, tiers: sorted}
}

// Room looks up a room type in the catalog.
func (p *Policy) Room(roomType string) (Room, bool) {
	r, ok := p.rooms[roomType]
	return r, ok
}

// Rooms returns the catalog in a deterministic order.
func (p *Policy) Rooms() []Room {
	out := make([]Room, 0, len(p.rooms))
	for _, r := range p.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Quote computes tax and total for a room's base price.
func (p *Policy) Quote(basePrice int64) (tax, total int64) {
	tax = RoundHalfUp(float64(basePrice) * p.taxRate)
	return tax, basePrice + tax
}

// Refund computes the refund amount for a cancellation daysBefore days
// ahead of check-in. Boundary values snap to their tier: daysBefore == 3
// under the default ladder refunds 100%.
func (p *Policy) Refund(totalPrice int64, daysBefore int) int64 {
	for _, t := range p.tiers {
		if daysBefore >= t.MinDaysBefore {
			return RoundHalfUp(float64(totalPrice) * float64(t.Percent) / 100)
		}
	}
	return 0
}

// RoundHalfUp rounds to the nearest whole unit, ties away from zero upward.
func RoundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
