package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ServerError carries a rejection message supplied by the order service, to
// be surfaced to the user verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// Client submits orders to the storefront order service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an order client with an explicit request timeout; a
// checkout must not hang forever on a dead network.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type orderCreatedResponse struct {
	OrderID string `json:"orderId"`
}

type orderErrorResponse struct {
	Error string `json:"error"`
}

// PlaceOrder issues a single POST to the order service. Non-2xx responses
// become a ServerError with the server's message when it supplies one.
func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) (string, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp orderErrorResponse
		msg := "failed to place order"
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			msg = errResp.Error
		}
		return "", &ServerError{StatusCode: resp.StatusCode, Message: msg}
	}

	var created orderCreatedResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode order response: %w", err)
	}
	if created.OrderID == "" {
		return "", fmt.Errorf("order response missing orderId")
	}
	return created.OrderID, nil
}
