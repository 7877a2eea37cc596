package razorpay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

// ErrGatewayRejected indicates the gateway answered with a non-success status.
var ErrGatewayRejected = errors.New("payment gateway rejected request")

const requestTimeout = 30 * time.Second

// OrderRequest is the payload for creating a gateway order.
type OrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Client exposes gateway operations used during checkout.
type Client interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*model.GatewayOrder, error)
}

// HTTPClient talks to the Razorpay REST API.
type HTTPClient struct {
	rest   *resty.Client
	logger *slog.Logger
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewHTTPClient creates gateway client authenticated with key id and secret.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse razorpay url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("razorpay url must be absolute")
	}
	rest := resty.New().
		SetBaseURL(strings.TrimRight(parsed.String(), "/")).
		SetBasicAuth(keyID, keySecret).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")
	return &HTTPClient{rest: rest, logger: logger}, nil
}

// CreateOrder registers a new order with the gateway.
func (c *HTTPClient) CreateOrder(ctx context.Context, req OrderRequest) (*model.GatewayOrder, error) {
	var (
		order   model.GatewayOrder
		failure errorResponse
	)
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&order).
		SetError(&failure).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	if resp.IsError() {
		c.logger.Error("gateway order request failed",
			slog.Int("status", resp.StatusCode()),
			slog.String("code", failure.Error.Code),
			slog.String("body", string(resp.Body())),
		)
		if failure.Error.Description != "" {
			return nil, fmt.Errorf("%w: %s", ErrGatewayRejected, failure.Error.Description)
		}
		return nil, fmt.Errorf("%w: %s", ErrGatewayRejected, resp.Status())
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: empty order id in response", ErrGatewayRejected)
	}
	return &order, nil
}
