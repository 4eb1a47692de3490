package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

// BookingEvent is the wire format for booking lifecycle notifications.
// RefundAmount and PaymentReference are only meaningful for cancellations.
type BookingEvent struct {
	Type             string `json:"type"`
	BookingID        string `json:"booking_id"`
	RoomType         string `json:"room_type"`
	Checkin          string `json:"checkin"`
	Checkout         string `json:"checkout"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone"`
	BasePrice        int64  `json:"base_price"`
	Tax              int64  `json:"tax"`
	TotalPrice       int64  `json:"total_price"`
	RefundAmount     int64  `json:"refund_amount"`
	PaymentReference string `json:"payment_reference,omitempty"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
