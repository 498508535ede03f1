// Package api is the transport wrapper around the remote order service. It
// translates HTTP outcomes into the typed errors of internal/errors; callers
// branch on error kind, never on status codes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jerseyform/internal/config"
	"jerseyform/internal/domain"
	apperrors "jerseyform/internal/errors"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg config.APIConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// OrderResult is the create-order response. An empty OrderID is tolerated;
// the pipeline synthesizes a display-only fallback id.
type OrderResult struct {
	OrderID string `json:"orderId"`
}

type Availability struct {
	Available bool `json:"available"`
}

type NameCheck struct {
	Exists bool `json:"exists"`
}

// errorBody is the shape backends use for failure responses; either key may
// carry the message.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) CreateOrder(ctx context.Context, payload domain.OrderPayload) (*OrderResult, error) {
	var result OrderResult
	if err := c.doJSON(ctx, http.MethodPost, "/orders", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CheckJerseyNumber(ctx context.Context, number, batch string) (*Availability, error) {
	q := url.Values{}
	q.Set("number", number)
	if batch != "" {
		q.Set("batch", batch)
	}

	var result Availability
	if err := c.doJSON(ctx, http.MethodGet, "/orders/check-jersey?"+q.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CheckNameExists(ctx context.Context, name string) (*NameCheck, error) {
	q := url.Values{}
	q.Set("name", name)

	var result NameCheck
	if err := c.doJSON(ctx, http.MethodGet, "/orders/check-name?"+q.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.OrderRecord, error) {
	var record domain.OrderRecord
	if err := c.doJSON(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.OrderRecord, error) {
	var records []domain.OrderRecord
	if err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("invalid order status", apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("%q is not a valid order status", status),
		})
	}
	body := map[string]string{"status": string(status)}
	return c.doJSON(ctx, http.MethodPatch, "/orders/"+url.PathEscape(orderID)+"/status", body, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	requestID := uuid.New().String()
	logger := c.logger.With(zap.String("requestId", requestID), zap.String("method", method), zap.String("path", path))

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("request failed", zap.Error(err))
		return apperrors.NewNetworkError("Network connection failed. Please check your internet connection.", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("reading response failed", zap.Error(err))
		return apperrors.NewNetworkError("Network connection failed. Please check your internet connection.", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("request rejected", zap.Int("status", resp.StatusCode))
		return classifyStatus(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unmarshaling response: %w", err)
		}
	}

	logger.Debug("request completed", zap.Int("status", resp.StatusCode))
	return nil
}

// classifyStatus maps a non-2xx response onto the error taxonomy, keeping the
// server's own message when the body carries one.
func classifyStatus(status int, body []byte) error {
	message := ""
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			message = eb.Error
		} else if eb.Message != "" {
			message = eb.Message
		}
	}
	if message == "" {
		message = http.StatusText(status)
		if message == "" {
			message = fmt.Sprintf("HTTP %d", status)
		}
	}

	switch {
	case status == http.StatusBadRequest:
		return apperrors.NewBadRequestError(message)
	case status == http.StatusNotFound:
		return apperrors.NewNotFoundError(message)
	case status == http.StatusConflict:
		return apperrors.NewConflictError(message)
	case status == http.StatusTooManyRequests:
		return apperrors.NewRateLimitError(message)
	case status >= 500:
		return apperrors.NewServerError(status, message)
	default:
		return apperrors.NewUnknownRequestError(status, message)
	}
}
