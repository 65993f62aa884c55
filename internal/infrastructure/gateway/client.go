package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/uniqo-ge/payment-server/internal/config"
	"github.com/uniqo-ge/payment-server/internal/domain"
)

// HTTPClient talks to the BOG checkout API. Exactly one outbound call per
// method invocation; failures are never retried here.
type HTTPClient struct {
	apiURL     string
	httpClient *http.Client
}

func NewClient(cfg config.GatewayConfig) *HTTPClient {
	return &HTTPClient{
		apiURL: cfg.APIURL,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *HTTPClient) SubmitOrder(ctx context.Context, payload OrderPayload, cred domain.Credential) (*OrderResult, error) {
	url := fmt.Sprintf("%s/payments/v1/checkout/orders", c.apiURL)
	return sendRequest[OrderPayload, OrderResult](c, ctx, http.MethodPost, url, &payload, cred)
}

func (c *HTTPClient) FetchOrderStatus(ctx context.Context, orderID string, cred domain.Credential) (*StatusResult, error) {
	url := fmt.Sprintf("%s/payments/v1/receipt/%s", c.apiURL, orderID)
	return sendRequest[any, StatusResult](c, ctx, http.MethodGet, url, nil, cred)
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, url string, reqBody *Req, cred domain.Credential) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	cred.Apply(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{
			Message: "request to gateway failed",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "error reading gateway response",
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Message:    fmt.Sprintf("gateway returned status %d", resp.StatusCode),
		}
	}

	var gatewayResp Resp
	if err := json.Unmarshal(body, &gatewayResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	setRaw(&gatewayResp, body)
	return &gatewayResp, nil
}

// setRaw attaches the unmodified response body to results that carry one.
func setRaw(resp any, body []byte) {
	switch r := resp.(type) {
	case *OrderResult:
		r.Raw = json.RawMessage(body)
	case *StatusResult:
		r.Raw = json.RawMessage(body)
	}
}
