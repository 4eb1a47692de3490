package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "http:\n  address: \":9090\"\n")

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 0.05, cfg.Pricing.TaxRate)
	assert.Len(t, cfg.Rooms, 2)
	assert.Equal(t, map[string]int{"Deluxe": 7, "Executive": 7}, cfg.DefaultCapacities())
	// default refund ladder: 100% at >=3 days, 50% at >=1
	assert.Equal(t, 3, cfg.Pricing.RefundTiers[0].MinDaysBefore)
	assert.Equal(t, 100, cfg.Pricing.RefundTiers[0].Percent)
}

func TestLoadConfig_FourTierLadder(t *testing.T) {
	path := writeConfig(t, `
pricing:
  tax_rate: 0.05
  refund_tiers:
    - min_days_before: 15
      percent: 100
    - min_days_before: 7
      percent: 50
    - min_days_before: 3
      percent: 25
`)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Len(t, cfg.Pricing.RefundTiers, 3)
	assert.Equal(t, 15, cfg.Pricing.RefundTiers[0].MinDaysBefore)
}

func TestLoadConfig_EnvOverridesSecrets(t *testing.T) {
	path := writeConfig(t, "admin:\n  username: admin@hotelmaruthi.com\n  password: from-file\n")

	t.Setenv("ADMIN_PASSWORD", "from-env")
	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Admin.Password)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "pw", Name: "roombooking", SSLMode: "disable"}
	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=roombooking sslmode=disable", d.DSN())
}
