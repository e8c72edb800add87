package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/models"
	"github.com/pkg/errors"
)

var (
	_ domain.PaymentClient = (*SimulatedPaymentProcessor)(nil)
	_ domain.PaymentClient = (*HTTPPaymentProcessor)(nil)
)

// SimulatedPaymentProcessor approves every charge, except charges above
// DeclineOver when it is set. Used for local runs.
type SimulatedPaymentProcessor struct {
	declineOver int64
	now         func() time.Time
}

// NewSimulatedPaymentProcessor creates a processor; declineOver <= 0 disables declines
func NewSimulatedPaymentProcessor(declineOver int64) *SimulatedPaymentProcessor {
	return &SimulatedPaymentProcessor{
		declineOver: declineOver,
		now:         time.Now,
	}
}

func (p *SimulatedPaymentProcessor) Charge(ctx context.Context, amount models.Money, payerID models.ID) (*domain.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.declineOver > 0 && amount.Amount > p.declineOver {
		return &domain.ChargeResult{
			Success:       false,
			DeclineReason: fmt.Sprintf("amount %.2f %s exceeds card limit", amount.Decimal(), amount.Currency),
		}, nil
	}

	return &domain.ChargeResult{
		Success:       true,
		TransactionID: fmt.Sprintf("TXN-%s-%d", payerID, p.now().Unix()),
	}, nil
}

type HTTPPaymentConfig struct {
	BaseURL string
	Timeout time.Duration
}

// HTTPPaymentProcessor charges through a payment gateway's REST API
type HTTPPaymentProcessor struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPPaymentProcessor(cfg HTTPPaymentConfig) *HTTPPaymentProcessor {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &HTTPPaymentProcessor{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chargeRequest struct {
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	PayerID       string `json:"payer_id"`
	PaymentMethod string `json:"payment_method"`
}

type chargeResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	DeclineReason string `json:"decline_reason"`
}

// Charge posts to /charges. 200 and 402 carry a result; anything else is an error.
func (p *HTTPPaymentProcessor) Charge(ctx context.Context, amount models.Money, payerID models.ID) (*domain.ChargeResult, error) {
	body, err := json.Marshal(chargeRequest{
		Amount:        amount.Amount,
		Currency:      amount.Currency,
		PayerID:       payerID.String(),
		PaymentMethod: domain.PaymentMethodCreditCard,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal charge request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create charge request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send charge request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPaymentRequired {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Errorf("payment gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var res chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "failed to decode charge response")
	}

	if resp.StatusCode == http.StatusPaymentRequired {
		res.Success = false
	}

	if res.Success && res.TransactionID == "" {
		return nil, errors.New("payment gateway approved charge without transaction id")
	}

	return &domain.ChargeResult{
		Success:       res.Success,
		TransactionID: res.TransactionID,
		DeclineReason: res.DeclineReason,
	}, nil
}
