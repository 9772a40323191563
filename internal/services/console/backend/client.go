// Package backend is the console's client for the DriveShare REST API.
//
// Every response arrives in an envelope {isSuccess, message, statusCode,
// result}. A response whose isSuccess is not true is a failure whatever its
// HTTP status. Failures come back as typed console errors:
//
//   - transport failures are KindUnavailable with the generic
//     "network error" text;
//   - business rejections keep the backend message verbatim;
//   - HTTP 401/403/404 map to unauthorized/forbidden/not found.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/platform/timeouts"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/observability"
)

const (
	// DefaultBaseURL matches the backend's local development address.
	DefaultBaseURL = "http://localhost:5246/api/"

	tracerName      = "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	maxResponseSize = 8 << 20
)

// NetworkErrorMessage is shown for requests that never completed.
const NetworkErrorMessage = "network error"

// TokenSource supplies the bearer token for the session bound to ctx.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, bool)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, bool)

// AccessToken calls f.
func (f TokenFunc) AccessToken(ctx context.Context) (string, bool) {
	if f == nil {
		return "", false
	}
	return f(ctx)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Tokens     TokenSource
	Metrics    *observability.Metrics
	Logger     *log.Logger
}

// Client calls the DriveShare REST API.
type Client struct {
	base    *url.URL
	http    *http.Client
	tokens  TokenSource
	metrics *observability.Metrics
	logger  *log.Logger
	tracer  trace.Tracer
}

// NewClient validates opts and builds a Client.
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base url must be http or https: %q", raw)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("backend base url must include a host: %q", raw)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = timeouts.BackendRequest
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		base:    base,
		http:    httpClient,
		tokens:  opts.Tokens,
		metrics: opts.Metrics,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// IsPublicPath reports whether path is a login or register endpoint, which
// never carry a bearer token. The check ignores case.
func IsPublicPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.Contains(lower, "auth/login") || strings.Contains(lower, "auth/register")
}

type envelope[T any] struct {
	IsSuccess  bool   `json:"isSuccess"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Result     T      `json:"result"`
}

type request struct {
	// endpoint labels metrics and spans; it never carries ids.
	endpoint string
	method   string
	// path is relative to the base URL with segments already escaped.
	path  string
	query url.Values
	body  any
	// token overrides the session token source when set.
	token string
}

// response is a successful envelope.
type response[T any] struct {
	Message string
	Result  T
}

func call[T any](ctx context.Context, c *Client, req request) (response[T], error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "backend "+req.endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.method),
			attribute.String("driveshare.endpoint", req.endpoint),
		),
	)
	defer span.End()

	var env envelope[T]
	body, status, err := c.roundTrip(ctx, req)
	if err == nil {
		env, err = decodeEnvelope[T](c, req.endpoint, body, status)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	outcome := "ok"
	if err != nil {
		outcome = string(apperrors.KindOf(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	c.metrics.ObserveBackendCall(req.endpoint, outcome, time.Since(start))
	if err != nil {
		return response[T]{}, err
	}
	return response[T]{Message: strings.TrimSpace(env.Message), Result: env.Result}, nil
}

// roundTrip sends req and returns the raw body. Only transport failures
// are errors here.
func (c *Client) roundTrip(ctx context.Context, req request) ([]byte, int, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, fmt.Errorf("backend %s: %w", req.endpoint, ctxErr)
		}
		c.logger.Printf("backend transport failure endpoint=%s err=%v", req.endpoint, err)
		return nil, 0, networkError()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		c.logger.Printf("backend read failure endpoint=%s status=%d err=%v", req.endpoint, resp.StatusCode, err)
		return nil, resp.StatusCode, networkError()
	}
	return body, resp.StatusCode, nil
}

func decodeEnvelope[T any](c *Client, endpoint string, body []byte, status int) (envelope[T], error) {
	var env envelope[T]
	decodeErr := json.Unmarshal(body, &env)
	if decodeErr != nil && status < http.StatusBadRequest {
		c.logger.Printf("backend decode failure endpoint=%s status=%d err=%v", endpoint, status, decodeErr)
		return envelope[T]{}, apperrors.EK(apperrors.KindUnavailable, "error.backend_response", "unexpected backend response")
	}
	if decodeErr == nil && env.IsSuccess && status < http.StatusBadRequest {
		return env, nil
	}

	code := env.StatusCode
	if code == 0 {
		code = status
	}
	return envelope[T]{}, apperrors.Backend(kindForStatus(status, code), code, env.Message)
}

func networkError() error {
	return apperrors.EK(apperrors.KindUnavailable, "error.network", NetworkErrorMessage)
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	ref, err := url.Parse(strings.TrimLeft(req.path, "/"))
	if err != nil {
		return nil, fmt.Errorf("backend %s: parse path: %w", req.endpoint, err)
	}
	if len(req.query) > 0 {
		ref.RawQuery = req.query.Encode()
	}
	target := c.base.ResolveReference(ref)

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("backend %s: encode body: %w", req.endpoint, err)
		}
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("backend %s: build request: %w", req.endpoint, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(ctx, req); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))
	return httpReq, nil
}

func (c *Client) bearer(ctx context.Context, req request) string {
	if IsPublicPath(req.path) {
		return ""
	}
	if token := strings.TrimSpace(req.token); token != "" {
		return token
	}
	if c.tokens == nil {
		return ""
	}
	token, ok := c.tokens.AccessToken(ctx)
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// kindForStatus classifies a failed response. The HTTP status wins; the
// envelope's statusCode is consulted when the HTTP layer reported success.
func kindForStatus(httpStatus int, envelopeStatus int) apperrors.Kind {
	status := httpStatus
	if status < http.StatusBadRequest {
		status = envelopeStatus
	}
	switch {
	case status == http.StatusUnauthorized:
		return apperrors.KindUnauthorized
	case status == http.StatusForbidden:
		return apperrors.KindForbidden
	case status == http.StatusNotFound:
		return apperrors.KindNotFound
	case status >= http.StatusInternalServerError && httpStatus >= http.StatusInternalServerError:
		return apperrors.KindUnavailable
	default:
		return apperrors.KindRejected
	}
}

// IsUnauthorized reports whether err means the backend rejected the token.
func IsUnauthorized(err error) bool {
	return apperrors.Is(err, apperrors.KindUnauthorized)
}

// IsCanceled reports whether err came from a cancelled request context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
