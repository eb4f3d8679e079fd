// Package upstream is the storefront's only door to the remote REST API.
// Every endpoint's notion of success is normalised here into either a typed
// payload or a *errors.UpstreamError, so nothing above this package sees the
// remote API's inconsistencies.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

// TokenHeader carries the session token. The remote API does not use the
// Authorization header.
const TokenHeader = "token"

const maxResponseBytes = 8 << 20

type authMode int

const (
	authNone authMode = iota
	// authOptional sends the token when one is stored
	authOptional
	// authRequired fails with ErrUnauthenticated before any network call
	authRequired
)

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   authMode
	rule   successRule
}

func (r request) endpoint() string {
	return r.method + " " + r.path
}

// Client implements every service.*API port against the remote API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     repository.TokenRepository
	logger     *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Tokens repository.TokenRepository
	Logger *slog.Logger
}

// NewClient creates the upstream client from configuration.
func NewClient(params ClientParams) *Client {
	return New(params.Config.Upstream.BaseURL, NewHTTPClient(params.Config), params.Tokens, params.Logger)
}

// New creates a client against baseURL using httpClient.
func New(baseURL string, httpClient *http.Client, tokens repository.TokenRepository, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}
}

// NewHTTPClient builds the transport. No retries are layered on top; a
// failed call is terminal for that attempt.
func NewHTTPClient(cfg *config.Config) *http.Client {
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.Telemetry != nil && cfg.Telemetry.Tracing {
		transport = otelhttp.NewTransport(transport)
	}

	return &http.Client{
		Timeout:   cfg.Upstream.Timeout,
		Transport: transport,
	}
}

// do performs one call and returns the decoded envelope of a business success.
func (c *Client) do(ctx context.Context, req request) (*envelope, error) {
	endpoint := req.endpoint()

	var token string
	if req.auth != authNone {
		// Re-read on every call; the store is the only source of truth.
		stored, err := c.tokens.Load(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "load session token")
		}
		token = stored
		if req.auth == authRequired && token == "" {
			return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
		}
	}

	httpReq, err := c.newRequest(ctx, req, token)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.UpstreamTransport, endpoint, 0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.UpstreamTransport, endpoint, resp.StatusCode, "", err)
	}

	// A response that lands after its caller gave up is discarded.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.UpstreamTransport, endpoint, resp.StatusCode, "", ctxErr)
	}

	env := decodeEnvelope(body)

	c.logger.DebugContext(ctx, "upstream call",
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domainerrors.NewUpstreamError(domainerrors.UpstreamHTTP, endpoint, resp.StatusCode, env.reason(), nil)
	}

	if !env.decoded {
		return nil, domainerrors.NewUpstreamError(domainerrors.UpstreamBusiness, endpoint, resp.StatusCode, "", errors.New("response is not JSON"))
	}

	if req.rule != nil && !req.rule(env) {
		return nil, domainerrors.NewUpstreamError(domainerrors.UpstreamBusiness, endpoint, resp.StatusCode, env.reason(), nil)
	}

	return env, nil
}

func (c *Client) newRequest(ctx context.Context, req request, token string) (*http.Request, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + encodeQuery(req.query)
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if token != "" {
		httpReq.Header.Set(TokenHeader, token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	return httpReq, nil
}

// encodeQuery is url.Values.Encode without escaping brackets, which the
// remote API expects literally in filters such as category[in].
func encodeQuery(values url.Values) string {
	return strings.NewReplacer("%5B", "[", "%5D", "]").Replace(values.Encode())
}

// decodeData unmarshals the envelope's data field into T.
func decodeData[T any](env *envelope, endpoint string) (T, error) {
	var out T
	if !env.hasData() {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, domainerrors.NewUpstreamError(domainerrors.UpstreamBusiness, endpoint, http.StatusOK, "", errors.Wrap(err, "decode data"))
	}

	return out, nil
}

func pathEscape(segment string) string {
	return url.PathEscape(segment)
}
