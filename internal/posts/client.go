package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultEndpoint is the posts endpoint used when no configuration overrides it.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/posts"

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 30 * time.Second

const tracerName = "github.com/rshade/postpager/internal/posts"

// Client fetches the full post list from a fixed endpoint.
type Client struct {
	// Endpoint is the URL requested with GET. No query, headers, or body are added.
	Endpoint string

	// HTTPClient performs the request. Tests replace it with an httptest client.
	HTTPClient *http.Client
}

// NewClient creates a Client for endpoint. The transport is instrumented so
// each fetch is recorded as a client span on the global tracer provider.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Endpoint: endpoint,
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Fetch issues exactly one GET to the endpoint and decodes the response as a
// JSON array of records. Any failure is returned as a *FetchError.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	if c.Endpoint == "" {
		return nil, &FetchError{Err: ErrEmptyEndpoint}
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "posts.Fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("posts.endpoint", c.Endpoint)),
	)
	defer span.End()

	records, err := c.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("posts.count", len(records)))
	return records, nil
}

func (c *Client) fetch(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		// Drop the "Get <url>:" prefix so the transport's own description reaches the user.
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Err != nil {
			err = urlErr.Err
		}
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var records []Record
	if decodeErr := json.NewDecoder(resp.Body).Decode(&records); decodeErr != nil {
		return nil, &FetchError{Err: decodeErr}
	}
	return records, nil
}
