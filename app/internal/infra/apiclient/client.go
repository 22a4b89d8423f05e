// Package apiclient talks to the storefront HTTP API.
package apiclient

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

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	domorder "example.com/farm-retreat/app/internal/domain/order"
	domproduct "example.com/farm-retreat/app/internal/domain/product"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
	Errors  []FieldError
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// ValidationError reports input rejected before any request was sent.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Fields, ", ")
}

type Options struct {
	BaseURL string
	// HTTPClient overrides the default instrumented client.
	HTTPClient *http.Client
	// FailureThreshold is how many consecutive failures open the breaker.
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration
}

type Client struct {
	baseURL  string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker[*response]
	validate *validator.Validate
}

type response struct {
	status int
	body   []byte
}

func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	threshold := opts.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	openTimeout := opts.OpenTimeout
	if openTimeout == 0 {
		openTimeout = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:        "storefront-api",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	})

	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		http:     httpClient,
		breaker:  breaker,
		validate: validator.New(),
	}
}

type productDTO struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    string   `json:"benefits"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Options     []string `json:"options"`
	Active      bool     `json:"active"`
}

func (d productDTO) toDomain() *domproduct.Product {
	return &domproduct.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Benefits:    d.Benefits,
		Price:       d.Price,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		Options:     d.Options,
		Active:      d.Active,
	}
}

type ProductQuery struct {
	Category   string
	Search     string
	OnlyActive bool
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]*domproduct.Product, error) {
	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("q", q.Search)
	}
	if q.OnlyActive {
		params.Set("active", "true")
	}
	path := "/api/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var dtos []productDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]*domproduct.Product, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domproduct.Product, error) {
	var dto productDTO
	if err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.FormatInt(id, 10), nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// PlaceOrder sends the order exactly once and returns the new order id.
func (c *Client) PlaceOrder(ctx context.Context, payload domorder.Payload) (int64, error) {
	var out createdResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", payload, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

func (c *Client) SubmitContact(ctx context.Context, in ContactInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if err := c.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return 0, &ValidationError{Fields: fields}
		}
		return 0, err
	}

	var out createdResponse
	if err := c.do(ctx, http.MethodPost, "/api/contact", in, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}

	resp, err := c.breaker.Execute(func() (*response, error) {
		return c.send(ctx, method, path, payload)
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.status >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil || len(resp.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send counts transport failures and 5xx answers against the breaker.
// 4xx answers are returned as a normal response.
func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	r := &response{status: res.StatusCode, body: data}
	if res.StatusCode >= 500 {
		return nil, decodeAPIError(r)
	}
	return r, nil
}

func decodeAPIError(r *response) *APIError {
	apiErr := &APIError{Status: r.status}
	var body struct {
		Message string       `json:"message"`
		Errors  []FieldError `json:"errors"`
	}
	if err := json.Unmarshal(r.body, &body); err == nil {
		apiErr.Message = body.Message
		apiErr.Errors = body.Errors
	} else {
		apiErr.Message = strings.TrimSpace(string(r.body))
	}
	return apiErr
}
