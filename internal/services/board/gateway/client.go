// Package gateway is the HTTP client for the external capability API.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/capabilityboard/internal/platform/otel"
	"github.com/louisbranch/capabilityboard/internal/platform/timeouts"
	"github.com/louisbranch/capabilityboard/internal/services/board/capability"
	otelapi "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	capabilitiesPath = "/capabilities"
	maxBodyBytes     = 4 << 20
	tracerName       = "github.com/louisbranch/capabilityboard/internal/services/board/gateway"
)

// Action selects a registration mutation.
type Action string

const (
	ActionRegister   Action = "register"
	ActionUnregister Action = "unregister"
)

// ParseAction validates a raw action name.
func ParseAction(raw string) (Action, bool) {
	switch Action(strings.ToLower(strings.TrimSpace(raw))) {
	case ActionRegister:
		return ActionRegister, true
	case ActionUnregister:
		return ActionUnregister, true
	default:
		return "", false
	}
}

func (a Action) method() string {
	if a == ActionRegister {
		return http.MethodPost
	}
	return http.MethodDelete
}

// Client calls the capability API over HTTP.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	tracer     trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout caps every API call; zero or negative disables the cap.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// NewClient returns a client rooted at baseURL (scheme and host, optional path prefix).
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("capability api base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse capability api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("capability api base url must be http or https, got %q", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("capability api base url must include a host, got %q", baseURL)
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	c := &Client{
		baseURL:    parsed,
		httpClient: http.DefaultClient,
		timeout:    timeouts.UpstreamRequest,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// ListCapabilities fetches the full capability set.
func (c *Client) ListCapabilities(ctx context.Context) (capability.Set, error) {
	const op = "list capabilities"
	resp, body, err := c.do(ctx, op, http.MethodGet, c.endpoint(), nil)
	if err != nil {
		return capability.Set{}, err
	}
	if !isSuccess(resp.StatusCode) {
		return capability.Set{}, &StatusError{Op: op, StatusCode: resp.StatusCode}
	}
	set, err := capability.Decode(body)
	if err != nil {
		return capability.Set{}, &TransportError{Op: op, Err: err}
	}
	return set, nil
}

type mutationResult struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// Mutate issues a register or unregister call.
//
// A non-2xx response yields *StatusError carrying the server detail. A body
// that is not JSON yields *TransportError regardless of status.
func (c *Client) Mutate(ctx context.Context, action Action, name, email string) (string, error) {
	op := string(action)
	if _, ok := ParseAction(string(action)); !ok {
		return "", fmt.Errorf("unknown capability action %q", action)
	}
	query := url.Values{"email": []string{email}}
	resp, body, err := c.do(ctx, op, action.method(), c.endpoint(name, string(action)), query)
	if err != nil {
		return "", err
	}
	var result mutationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !isSuccess(resp.StatusCode) {
		return "", &StatusError{Op: op, StatusCode: resp.StatusCode, Detail: result.Detail}
	}
	return result.Message, nil
}

func (c *Client) endpoint(segments ...string) *url.URL {
	u := *c.baseURL
	prefix := strings.TrimRight(u.Path, "/")
	rawPrefix := strings.TrimRight(u.EscapedPath(), "/")
	u.Path = prefix + capabilitiesPath
	u.RawPath = rawPrefix + capabilitiesPath
	for _, segment := range segments {
		u.Path += "/" + segment
		u.RawPath += "/" + url.PathEscape(segment)
	}
	return &u
}

func (c *Client) do(ctx context.Context, op, method string, target *url.URL, query url.Values) (*http.Response, []byte, error) {
	if c == nil || c.httpClient == nil {
		return nil, nil, &TransportError{Op: op, Err: errors.New("capability api client is not configured")}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if query != nil {
		target.RawQuery = query.Encode()
	}

	ctx, span := c.tracer.Start(ctx, "capabilityapi."+strings.ReplaceAll(op, " ", "_"),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", target.EscapedPath()),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	otelapi.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, nil, &TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	if !isSuccess(resp.StatusCode) {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	return resp, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
