package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/maruthihotels/roombooking/config"
	"github.com/maruthihotels/roombooking/internal/auth"
	"github.com/maruthihotels/roombooking/internal/bootstrap"
	"github.com/maruthihotels/roombooking/internal/cache"
	"github.com/maruthihotels/roombooking/internal/clock"
	"github.com/maruthihotels/roombooking/internal/inventory"
	"github.com/maruthihotels/roombooking/internal/kafka"
	"github.com/maruthihotels/roombooking/internal/pricing"
	"github.com/maruthihotels/roombooking/internal/service/reservation"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init inventory store: %v", err)
	}
	defer cleanup()

	opts := []reservation.ServiceOption{}
	if cfg.Redis.Addr != "" {
		ttl := time.Duration(cfg.Redis.AvailabilityTTLSec) * time.Second
		opts = append(opts, reservation.WithCache(cache.NewRedisCache(cfg.Redis, ttl)))
	}
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.NotificationsTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, reservation.WithProducer(producer, cfg.Kafka.NotificationsTopic))
	}

	policy := pricing.NewPolicy(rooms(cfg), cfg.Pricing.TaxRate, tiers(cfg))
	svc := reservation.NewService(store, policy, clock.NewSystem(), opts...)
	authenticator := auth.NewStaticAdmin(cfg.Admin.Username, cfg.Admin.Password)

	router := bootstrap.NewRouter(cfg, svc, authenticator)
	log.Printf("server starting on %s (store driver: %s)", cfg.HTTP.Address, cfg.Store.Driver)
	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func buildStore(ctx context.Context, cfg *config.Config) (inventory.Store, func(), error) {
	defaults := cfg.DefaultCapacities()
	switch cfg.Store.Driver {
	case "memory":
		return inventory.NewMemoryStore(defaults), func() {}, nil
	case "file":
		return inventory.NewFileStore(cfg.Store.Path, defaults), func() {}, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Store.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		store := inventory.NewPGStore(pool)
		if err := store.Init(ctx, defaults); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		log.Fatalf("unknown store driver %q", cfg.Store.Driver)
		return nil, nil, nil
	}
}

func rooms(cfg *config.Config) []pricing.Room {
	out := make([]pricing.Room, 0, len(cfg.Rooms))
	for _, r := range cfg.Rooms {
		out = append(out, pricing.Room{Type: r.Type, BasePrice: r.BasePrice, Capacity: r.Capacity})
	}
	return out
}

func tiers(cfg *config.Config) []pricing.RefundTier {
	out := make([]pricing.RefundTier, 0, len(cfg.Pricing.RefundTiers))
	for _, t := range cfg.Pricing.RefundTiers {
		out = append(out, pricing.RefundTier{MinDaysBefore: t.MinDaysBefore, Percent: t.Percent})
	}
	return out
}
