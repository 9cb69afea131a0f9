package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/danghoa77/e-project-mobile/internal/domain"
)

const maxResponseSize = 1 << 20 // 1MB

// TokenSource supplies the bearer credential attached to every request.
// Unauthorized is invoked when the backend rejects the credential, so the
// session can run its process-wide logout policy.
type TokenSource interface {
	Token() string
	Unauthorized()
}

// Client is the HTTP implementation of StoreGateway. All calls go through a
// circuit breaker; transport failures and 5xx responses trip it, client
// errors do not.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *zap.Logger
}

var _ StoreGateway = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the default instrumented HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithTokenSource attaches the session supplying the bearer credential.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) { c.tokens = tokens }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "store-gateway",
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, ErrUnauthorized) {
				return true
			}
			var apiErr *APIError
			// 4xx means the backend answered; only transport failures and
			// 5xx count against the breaker.
			return errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return c
}

// raw performs one request through the breaker and returns the response body.
func (c *Client) raw(ctx context.Context, method, path string, body any) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		return c.roundTrip(ctx, method, path, body)
	})
}

// do performs one request and decodes the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	data, err := c.raw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn("credential rejected", zap.String("path", path))
		if c.tokens != nil {
			c.tokens.Unauthorized()
		}
		return nil, ErrUnauthorized
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{Status: resp.StatusCode, Message: messageFrom(data)}
	}
	return data, nil
}

func (c *Client) GetCart(ctx context.Context) (domain.Cart, error) {
	data, err := c.raw(ctx, http.MethodGet, "/carts/", nil)
	if err != nil {
		return domain.Cart{}, err
	}
	return DecodeCart(data), nil
}

func (c *Client) AddItem(ctx context.Context, item domain.CartItem) error {
	return c.do(ctx, http.MethodPost, "/carts/", item, nil)
}

func (c *Client) UpdateQuantity(ctx context.Context, productID, variantID, sizeID string, quantity int) error {
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	return c.do(ctx, http.MethodPut, cartItemPath(productID, variantID, sizeID), body, nil)
}

func (c *Client) RemoveItem(ctx context.Context, productID, variantID, sizeID string) error {
	return c.do(ctx, http.MethodDelete, cartItemPath(productID, variantID, sizeID), nil, nil)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/carts/", nil, nil)
}

func cartItemPath(productID, variantID, sizeID string) string {
	return fmt.Sprintf("/carts/%s/%s/%s/",
		url.PathEscape(productID), url.PathEscape(variantID), url.PathEscape(sizeID))
}

func (c *Client) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	var profile struct {
		Addresses []domain.Address `json:"addresses"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/me/", nil, &profile); err != nil {
		return nil, err
	}
	if profile.Addresses == nil {
		return []domain.Address{}, nil
	}
	return profile.Addresses, nil
}

func (c *Client) CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders/", draft, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID)+"/", nil, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderID)+"/cancel/", nil, nil)
}

func (c *Client) DecreaseStock(ctx context.Context, items []domain.StockLine) error {
	body := struct {
		Items []domain.StockLine `json:"items"`
	}{Items: items}
	return c.do(ctx, http.MethodPatch, "/products/stock/decrease/", body, nil)
}

func (c *Client) CreatePaymentURL(ctx context.Context, provider domain.PaymentProvider, orderID string, amount float64) (string, error) {
	body := struct {
		OrderID string  `json:"orderId"`
		Amount  float64 `json:"amount"`
	}{OrderID: orderID, Amount: amount}

	data, err := c.raw(ctx, http.MethodPost, "/payments/"+provider.String()+"/create/", body)
	if err != nil {
		return "", err
	}

	// The backend answers with the redirect URL itself, either as a JSON
	// string or as plain text.
	var redirect string
	if err := json.Unmarshal(data, &redirect); err != nil {
		redirect = string(bytes.TrimSpace(data))
	}
	if redirect == "" {
		return "", fmt.Errorf("empty %s redirect url", provider)
	}
	return redirect, nil
}

func (c *Client) VerifyPaymentReturn(ctx context.Context, provider domain.PaymentProvider, orderID, code string) error {
	path := "/payments/" + provider.String() + "/return/"
	switch provider {
	case domain.ProviderMomo:
		body := struct {
			OrderID    string `json:"orderId"`
			ResultCode string `json:"resultCode"`
		}{OrderID: orderID, ResultCode: code}
		return c.do(ctx, http.MethodPost, path, body, nil)
	case domain.ProviderVnpay:
		body := struct {
			OrderID      string `json:"orderId"`
			ResponseCode string `json:"responseCode"`
		}{OrderID: orderID, ResponseCode: code}
		return c.do(ctx, http.MethodPost, path, body, nil)
	default:
		return fmt.Errorf("unknown payment provider %q", provider)
	}
}

func (c *Client) ListProducts(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error) {
	var page domain.ProductPage
	path := "/products/?" + productQuery(filter).Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return domain.ProductPage{}, err
	}
	return page, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(productID)+"/", nil, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func productQuery(f domain.ProductFilter) url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.PriceMin != nil {
		q.Set("priceMin", strconv.FormatFloat(*f.PriceMin, 'f', -1, 64))
	}
	if f.PriceMax != nil {
		q.Set("priceMax", strconv.FormatFloat(*f.PriceMax, 'f', -1, 64))
	}
	if len(f.Sizes) > 0 {
		q.Set("size", f.Sizes[0])
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		q.Set("search", search)
	}
	if f.Color != "" {
		q.Set("color", f.Color)
	}
	return q
}
