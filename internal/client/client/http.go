package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/ufood/internal/client/session"
	"github.com/dmitrijs2005/ufood/internal/common"
	"github.com/dmitrijs2005/ufood/internal/logging"
	"github.com/dmitrijs2005/ufood/internal/metrics"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// authMode says how a request uses the session token.
type authMode int

const (
	// authNone never sends a token.
	authNone authMode = iota
	// authRequired fails with ErrUnauthenticated when there is no token.
	authRequired
	// authAnonymous sends the token when held and otherwise switches to the
	// /unsecure variant of the path.
	authAnonymous
	// authIfPresent sends the token when held.
	authIfPresent
)

type request struct {
	op     Operation
	method string
	path   string
	query  url.Values
	json   any
	form   url.Values
	auth   authMode
}

// Options tune an HTTPClient. Zero values are replaced by defaults.
type Options struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	// RateLimit caps outgoing requests per second; 0 disables the limit.
	RateLimit float64
	Logger    logging.Logger
	Metrics   metrics.Recorder
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	session *session.Session
	limiter *rate.Limiter
	log     logging.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, sess *session.Session, opts Options) *HTTPClient {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := int(opts.RateLimit)
	if burst < 1 {
		burst = 1
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	rec := opts.Metrics
	if rec == nil {
		rec = metrics.Nop{}
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		session: sess,
		limiter: rate.NewLimiter(limit, burst),
		log:     log,
		metrics: rec,
		now:     time.Now,
	}
}

// Session returns the session the client reads its token from.
func (c *HTTPClient) Session() *session.Session {
	return c.session
}

func (c *HTTPClient) requireToken() error {
	if !c.session.IsAuthenticated() {
		return ErrUnauthenticated
	}
	return nil
}

func (c *HTTPClient) buildRequest(ctx context.Context, r request, requestID string) (*http.Request, error) {
	token := c.session.Token()

	path := r.path
	if r.auth == authAnonymous && token == "" {
		path = common.UnsecurePathPrefix + path
	}

	target := c.baseURL + path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case r.json != nil:
		b, err := json.Marshal(r.json)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	case r.form != nil:
		body = strings.NewReader(r.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" && r.auth != authNone {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return req, nil
}

// do sends r and decodes a successful JSON body into out (when non-nil).
// It never applies the error policy; callers do that through settle.
func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	if r.auth == authRequired {
		if err := c.requireToken(); err != nil {
			return err
		}
	}

	requestID := uuid.NewString()
	log := c.log.With("op", string(r.op), "request_id", requestID)

	req, err := c.buildRequest(ctx, r, requestID)
	if err != nil {
		return &TransportError{Op: r.op, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Op: r.op, Err: err}
	}

	start := c.now()
	resp, err := c.http.Do(req)
	elapsed := c.now().Sub(start)
	if err != nil {
		c.metrics.RecordTransportError(string(r.op), elapsed)
		return &TransportError{Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	c.metrics.RecordRequest(string(r.op), resp.StatusCode, elapsed)
	log.Debug(ctx, "api request", "method", r.method, "path", req.URL.Path, "status", resp.StatusCode, "elapsed", elapsed)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: r.op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Op: r.op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(payload))}
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &TransportError{Op: r.op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// settle applies the error policy of op to err. It returns nil when the
// failure is degraded; the caller then returns its empty result.
func (c *HTTPClient) settle(ctx context.Context, op Operation, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrUnauthenticated) || PolicyFor(op) == Propagate {
		c.log.Error(ctx, "api call failed", "op", string(op), "error", err)
		return err
	}

	c.log.Warn(ctx, "api call degraded to empty result", "op", string(op), "status", StatusCode(err), "error", err)
	c.metrics.RecordDegraded(string(op))
	return nil
}

func pathf(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
