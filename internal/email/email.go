// Package email delivers booking notifications over SMTP. Delivery is best
// effort: the worker logs failures and moves on, a lost mail never touches
// booking state.
package email

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/maruthihotels/roombooking/config"
	"github.com/maruthihotels/roombooking/internal/kafka"
)

type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send mails the customer and the hotel owner about a booking event. With
// no SMTP credentials configured it logs a mock line instead, which keeps
// local development working without a relay.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if s.cfg.Host == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		log.Printf("[MOCK EMAIL] %s booking=%s to=%s refund=%d", event.Type, event.BookingID, event.CustomerEmail, event.RefundAmount)
		return nil
	}

	subject, body := composeCustomer(event)
	if err := s.mail(event.CustomerEmail, subject, body); err != nil {
		return fmt.Errorf("mail customer: %w", err)
	}

	if s.cfg.OwnerEmail != "" {
		subject, body = composeOwner(event)
		if err := s.mail(s.cfg.OwnerEmail, subject, body); err != nil {
			return fmt.Errorf("mail owner: %w", err)
		}
	}
	return nil
}

func (s *Sender) mail(to, subject, body string) error {
	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	return smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(msg))
}

func composeCustomer(e kafka.BookingEvent) (string, string) {
	switch e.Type {
	case kafka.EventBookingCancelled:
		body := fmt.Sprintf(
			"Dear Customer,\n\nYour booking %s has been cancelled.\nRefund amount: %d\n"+
				"If paid online, it will be processed within 3-5 business days.\n\nThank you for choosing Hotel Maruthi!",
			e.BookingID, e.RefundAmount)
		return "Booking Cancelled - Hotel Maruthi", body
	default:
		body := fmt.Sprintf(
			"Dear Customer,\n\nYour booking is CONFIRMED at Hotel Maruthi.\n\n"+
				"Booking ID: %s\nRoom Type: %s\nCheck-in: %s\nCheck-out: %s\n"+
				"Room Price: %d\nTax: %d\nTotal Amount: %d\nMobile: %s\n\n"+
				"Thank you for choosing Hotel Maruthi!",
			e.BookingID, e.RoomType, e.Checkin, e.Checkout, e.BasePrice, e.Tax, e.TotalPrice, e.CustomerPhone)
		return "Your Booking Confirmed - Hotel Maruthi", body
	}
}

func composeOwner(e kafka.BookingEvent) (string, string) {
	switch e.Type {
	case kafka.EventBookingCancelled:
		body := fmt.Sprintf(
			"Booking Cancelled\n\nBooking ID: %s\nRefund: %d\nCustomer Email: %s\nCustomer Phone: %s",
			e.BookingID, e.RefundAmount, e.CustomerEmail, e.CustomerPhone)
		return "Booking Cancelled - " + e.BookingID, body
	default:
		body := fmt.Sprintf(
			"New Booking Received\n\nBooking ID: %s\nRoom Type: %s\nCheck-in: %s\nCheck-out: %s\n"+
				"Total Amount: %d\nCustomer Email: %s\nCustomer Phone: %s",
			e.BookingID, e.RoomType, e.Checkin, e.Checkout, e.TotalPrice, e.CustomerEmail, e.CustomerPhone)
		return "New Booking - " + e.BookingID, body
	}
}
