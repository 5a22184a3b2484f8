package oms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/example/vendor-order-service/internal/domain"
)

// Client — граница проведения возвратов: HTTP-клиент мутационного
// интерфейса внешней системы управления заказами.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type refundResponse struct {
	RefundID   string `json:"refund_id"`
	UserErrors []struct {
		Message string `json:"message"`
	} `json:"user_errors"`
}

// Submit отправляет инструкцию возврата. Бизнес-отказы внешней системы
// возвращаются как UpstreamRejectionError с причинами дословно.
func (c *Client) Submit(ctx context.Context, commit domain.RefundCommit) (domain.RefundReceipt, error) {
	body, err := json.Marshal(commit)
	if err != nil {
		return domain.RefundReceipt{}, fmt.Errorf("encode refund commit: %w", err)
	}
	url := c.BaseURL + "/orders/" + commit.OrderID + "/refunds"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.RefundReceipt{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.RefundReceipt{}, fmt.Errorf("submit refund: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.RefundReceipt{}, fmt.Errorf("read refund response: %w", err)
	}
	var parsed refundResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return domain.RefundReceipt{}, fmt.Errorf("decode refund response (status %d): %w", resp.StatusCode, err)
	}
	if len(parsed.UserErrors) > 0 {
		reasons := make([]string, 0, len(parsed.UserErrors))
		for _, ue := range parsed.UserErrors {
			reasons = append(reasons, ue.Message)
		}
		return domain.RefundReceipt{}, &domain.UpstreamRejectionError{Reasons: reasons}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.RefundReceipt{}, fmt.Errorf("refund submit: unexpected status %d", resp.StatusCode)
	}
	if parsed.RefundID == "" {
		return domain.RefundReceipt{}, fmt.Errorf("refund submit: response without refund_id")
	}
	return domain.RefundReceipt{Reference: parsed.RefundID}, nil
}

var _ domain.RefundSink = (*Client)(nil)
