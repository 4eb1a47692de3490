package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Store   StoreConfig   `yaml:"store"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Rooms   []RoomConfig  `yaml:"rooms"`
	Pricing PricingConfig `yaml:"pricing"`
	Admin   AdminConfig   `yaml:"admin"`
	SMTP    SMTPConfig    `yaml:"smtp"`
	Payment PaymentConfig `yaml:"payment"`
}

type HTTPConfig struct {
	Address     string   `yaml:"address"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// StoreConfig selects the inventory backend: memory, file or postgres.
type StoreConfig struct {
	Driver   string         `yaml:"driver"`
	Path     string         `yaml:"path"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr               string `yaml:"addr"`
	Password           string `yaml:"password"`
	DB                 int    `yaml:"db"`
	AvailabilityTTLSec int    `yaml:"availability_ttl_seconds"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type RoomConfig struct {
	Type      string `yaml:"type"`
	BasePrice int64  `yaml:"base_price"`
	Capacity  int    `yaml:"capacity"`
}

type RefundTierConfig struct {
	MinDaysBefore int `yaml:"min_days_before"`
	Percent       int `yaml:"percent"`
}

type PricingConfig struct {
	TaxRate     float64            `yaml:"tax_rate"`
	RefundTiers []RefundTierConfig `yaml:"refund_tiers"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	// Password may be a bcrypt hash or plaintext; ADMIN_PASSWORD overrides.
	Password string `yaml:"password"`
}

type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	FromName   string `yaml:"from_name"`
	FromEmail  string `yaml:"from_email"`
	OwnerEmail string `yaml:"owner_email"`
}

type PaymentConfig struct {
	GatewayURL string `yaml:"gateway_url"`
	APIKey     string `yaml:"api_key"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "memory"
	}
	if c.Store.Path == "" {
		c.Store.Path = "room_inventory.json"
	}
	if len(c.Rooms) == 0 {
		c.Rooms = []RoomConfig{
			{Type: "Deluxe", BasePrice: 1350, Capacity: 7},
			{Type: "Executive", BasePrice: 1700, Capacity: 7},
		}
	}
	if c.Pricing.TaxRate == 0 {
		c.Pricing.TaxRate = 0.05
	}
	if len(c.Pricing.RefundTiers) == 0 {
		c.Pricing.RefundTiers = []RefundTierConfig{
			{MinDaysBefore: 3, Percent: 100},
			{MinDaysBefore: 1, Percent: 50},
		}
	}
	if c.Redis.AvailabilityTTLSec == 0 {
		c.Redis.AvailabilityTTLSec = 30
	}
}

// applyEnv lets secrets come from the environment instead of the YAML file.
func (c *Config) applyEnv() {
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("PAYMENT_API_KEY"); v != "" {
		c.Payment.APIKey = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Store.Database.Password = v
	}
}

// DefaultCapacities maps room types to their configured capacity, the shape
// the inventory stores are seeded with.
func (c *Config) DefaultCapacities() map[string]int {
	out := make(map[string]int, len(c.Rooms))
	for _, r := range c.Rooms {
		out[r.Type] = r.Capacity
	}
	return out
}
