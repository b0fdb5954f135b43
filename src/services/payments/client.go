package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// PaymentLinker turns a quoted price into a payable URL. The hosted payment
// provider is opaque: one call in, one link (or one error) out.
type PaymentLinker interface {
	CreatePaymentLink(ctx context.Context, amount float64, currency, description string) (string, error)
}

// Client talks to the payment provider's payment-links endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *resty.Client
}

func NewClient(baseURL, apiKey string) *Client {
	c := resty.New().SetTimeout(20 * time.Second)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    c,
	}
}

type paymentLinkResponse struct {
	URL   string `json:"url"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentLink requests a payable link for the given amount. The amount
// is sent in minor units, as the provider expects.
func (c *Client) CreatePaymentLink(ctx context.Context, amount float64, currency, description string) (string, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return "", fmt.Errorf("payment API is not configured")
	}

	body := map[string]any{
		"amount":      int64(amount*100 + 0.5),
		"currency":    strings.ToLower(currency),
		"description": description,
	}

	// ForceContentType: some providers answer JSON with a text/plain header,
	// which would otherwise skip unmarshalling.
	var resp paymentLinkResponse
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		SetError(&resp).
		ForceContentType("application/json").
		Post(c.baseURL + "/v1/payment_links")
	if err != nil {
		return "", err
	}
	if r.IsError() {
		msg := resp.Error.Message
		if msg == "" {
			msg = r.String()
		}
		return "", fmt.Errorf("payment api: %s: %s", r.Status(), msg)
	}
	if resp.URL == "" {
		return "", fmt.Errorf("payment api returned no link")
	}
	return resp.URL, nil
}
