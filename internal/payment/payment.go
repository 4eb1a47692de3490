// Package payment calls the external gateway to process cancellation
// refunds. Like email delivery it runs strictly after the cancellation has
// committed; a gateway failure is logged by the worker, never retried into
// the reservation engine.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/maruthihotels/roombooking/config"
)

type Processor interface {
	Refund(ctx context.Context, paymentReference string, amount int64) error
}

type refundRequest struct {
	RequestID        string `json:"request_id"`
	PaymentReference string `json:"payment_reference"`
	Amount           int64  `json:"amount"`
}

// GatewayClient posts refund requests to the configured payment gateway.
type GatewayClient struct {
	cfg    config.PaymentConfig
	client *http.Client
}

func NewGatewayClient(cfg config.PaymentConfig) *GatewayClient {
	return &GatewayClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GatewayClient) Refund(ctx context.Context, paymentReference string, amount int64) error {
	if g.cfg.GatewayURL == "" {
		log.Printf("[MOCK REFUND] reference=%s amount=%d", paymentReference, amount)
		return nil
	}

	body, err := json.Marshal(refundRequest{
		RequestID:        uuid.NewString(),
		PaymentReference: paymentReference,
		Amount:           amount,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.GatewayURL+"/refunds", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("refund request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("refund request: gateway returned %s", resp.Status)
	}
	return nil
}

var _ Processor = (*GatewayClient)(nil)
