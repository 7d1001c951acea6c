package pushover

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/shaharia-lab/pushover-mcp/internal/build"
	"github.com/shaharia-lab/pushover-mcp/internal/config"
	"github.com/shaharia-lab/pushover-mcp/internal/logger"
)

// APIURL is the Pushover messages endpoint.
const APIURL = "https://api.pushover.net/1/messages.json"

// Client posts notifications to the provider. It holds no per-call state and
// is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
}

type clientOptions struct {
	transport http.RoundTripper
	endpoint  string
	timeout   time.Duration
	logger    *slog.Logger
	tracer    trace.TracerProvider
}

// Option configures a Client.
type Option func(*clientOptions)

// WithTransport sets the base round tripper. Defaults to http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) { o.transport = rt }
}

// WithEndpoint overrides the provider URL.
func WithEndpoint(endpoint string) Option {
	return func(o *clientOptions) { o.endpoint = endpoint }
}

// WithTimeout sets an overall timeout per request. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithTracerProvider sets the provider for request spans. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *clientOptions) { o.tracer = tp }
}

// WithLogger sets the logger used for request outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// NewClient returns a Client. The transport is instrumented with otelhttp so
// each provider call produces a "pushover POST" client span.
func NewClient(opts ...Option) *Client {
	o := clientOptions{
		transport: http.DefaultTransport,
		endpoint:  APIURL,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	otelOpts := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "pushover " + r.Method
		}),
	}
	if o.tracer != nil {
		otelOpts = append(otelOpts, otelhttp.WithTracerProvider(o.tracer))
	}

	return &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(o.transport, otelOpts...),
			Timeout:   o.timeout,
		},
		endpoint: o.endpoint,
		logger:   o.logger,
	}
}

// providerResponse is the JSON body returned by the messages endpoint.
type providerResponse struct {
	Status  int      `json:"status"`
	Request *string  `json:"request"`
	Errors  []string `json:"errors"`
}

// Send posts a single notification and waits for the full response.
// A provider rejection is returned as a Result with OK() == false and a nil
// error; only transport failures return an error.
func (c *Client) Send(ctx context.Context, req Request, creds config.Credentials) (Result, error) {
	form := BuildPayload(req, creds)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, &TransportError{Op: "creating request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", build.UserAgent())

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("pushover request failed", "error", err, "duration", time.Since(start))
		return Result{}, &TransportError{Op: "sending request", Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &TransportError{Op: "reading response", Err: err}
	}

	var pr providerResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		c.logger.Error("pushover response not JSON",
			"http_status", resp.StatusCode,
			"error", err,
		)
		return Result{}, &TransportError{
			Op:  "decoding response",
			Err: fmt.Errorf("HTTP %d: %w", resp.StatusCode, err),
		}
	}

	result := Result{
		HTTPStatus: resp.StatusCode,
		Status:     pr.Status,
		Request:    pr.Request,
		Errors:     pr.Errors,
	}

	c.logger.Info("pushover response",
		"http_status", result.HTTPStatus,
		"status", result.Status,
		"request_id", result.RequestID(),
		"ok", result.OK(),
		"duration", time.Since(start),
	)

	return result, nil
}
