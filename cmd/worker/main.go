// The worker consumes booking events and performs the side effects the API
// process deliberately defers: customer/owner email and payment-gateway
// refunds. Failures here are logged and never fed back into booking state.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/maruthihotels/roombooking/config"
	"github.com/maruthihotels/roombooking/internal/email"
	"github.com/maruthihotels/roombooking/internal/kafka"
	"github.com/maruthihotels/roombooking/internal/payment"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		log.Fatal("worker requires kafka brokers and a notifications topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender(cfg.SMTP)
	refunds := payment.NewGatewayClient(cfg.Payment)

	log.Printf("worker consuming %s", cfg.Kafka.NotificationsTopic)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode event error: %v", err)
			return nil
		}

		if err := emailSender.Send(ctx, event); err != nil {
			log.Printf("email for %s failed: %v", event.BookingID, err)
		}

		if event.Type == kafka.EventBookingCancelled && event.PaymentReference != "" && event.RefundAmount > 0 {
			if err := refunds.Refund(ctx, event.PaymentReference, event.RefundAmount); err != nil {
				log.Printf("refund for %s failed: %v", event.BookingID, err)
			}
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
