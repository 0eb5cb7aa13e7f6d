package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/models"
	"github.com/dmitrijs2005/willbank/internal/common"
	"github.com/dmitrijs2005/willbank/internal/logging"
)

const (
	DefaultAuthBasePath   = "/api/auth"
	DefaultRequestTimeout = 15 * time.Second
	DefaultRefreshTimeout = 10 * time.Second
)

// Config configures an HTTPClient.
type Config struct {
	// BaseURLs maps each service to its root URL, e.g. http://localhost:8081.
	BaseURLs map[Service]string

	// AuthBasePath is the auth API prefix on the client service.
	AuthBasePath string

	RequestTimeout time.Duration
	RefreshTimeout time.Duration

	// PublicEndpoints defaults to PublicEndpointsFor(AuthBasePath) when nil.
	PublicEndpoints []string

	// HTTP defaults to a fresh http.Client without a timeout; deadlines come
	// from the request context.
	HTTP *http.Client
}

// HTTPClient sends requests to the WillBank services through the
// request-id, bearer and refresh layers.
type HTTPClient struct {
	cfg     Config
	http    *http.Client
	session *Session
	coord   *Coordinator
	public  Allowlist
	log     logging.Logger

	send  SendFunc
	plain SendFunc
}

func New(cfg Config, session *Session, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop()
	}
	if cfg.AuthBasePath == "" {
		cfg.AuthBasePath = DefaultAuthBasePath
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = DefaultRefreshTimeout
	}
	if cfg.PublicEndpoints == nil {
		cfg.PublicEndpoints = PublicEndpointsFor(cfg.AuthBasePath)
	}

	c := &HTTPClient{
		cfg:     cfg,
		http:    cfg.HTTP,
		session: session,
		public:  NewAllowlist(cfg.PublicEndpoints...),
		log:     log,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}

	c.coord = NewCoordinator(session, c.refreshTokens, cfg.RefreshTimeout, log)
	c.plain = Chain(c.execute, WithRequestID(log))
	c.send = Chain(c.execute,
		WithRequestID(log),
		WithBearer(session, c.public),
		WithRefresh(c.coord, c.public, log),
	)
	return c
}

func (c *HTTPClient) Session() *Session { return c.session }

func (c *HTTPClient) Coordinator() *Coordinator { return c.coord }

// OnSessionExpired registers a hook run after a failed refresh purged the
// credentials.
func (c *HTTPClient) OnSessionExpired(fn SessionExpiredFunc) {
	c.coord.OnSessionExpired(fn)
}

// AuthPath joins the auth base path and p.
func (c *HTTPClient) AuthPath(p string) string {
	return c.cfg.AuthBasePath + p
}

// Send runs req through the pipeline. Non-2xx responses are returned as
// *ServerError.
func (c *HTTPClient) Send(ctx context.Context, req *Request) (*Response, error) {
	return c.do(ctx, c.send, req)
}

// SendPublic sends req without bearer or refresh handling.
func (c *HTTPClient) SendPublic(ctx context.Context, req *Request) (*Response, error) {
	return c.do(ctx, c.plain, req)
}

func (c *HTTPClient) do(ctx context.Context, send SendFunc, req *Request) (*Response, error) {
	payload, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.cfg.RequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := send(ctx, Attempt{Request: req, Payload: payload})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, newServerError(resp.Status, resp.Body)
	}
	return resp, nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return data, nil
	}
}

func (c *HTTPClient) url(req *Request) (string, error) {
	svc := req.Service
	if svc == "" {
		svc = ServiceClient
	}
	base, ok := c.cfg.BaseURLs[svc]
	if !ok || base == "" {
		return "", fmt.Errorf("no base URL for service %q", svc)
	}

	u := strings.TrimSuffix(base, "/") + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	return u, nil
}

// execute is the innermost layer: one HTTP round trip.
func (c *HTTPClient) execute(ctx context.Context, a Attempt) (*Response, error) {
	u, err := c.url(a.Request)
	if err != nil {
		return nil, err
	}

	method := a.Request.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if a.Payload != nil {
		body = bytes.NewReader(a.Payload)
	}

	hreq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	for k, vs := range a.Request.Header {
		for _, v := range vs {
			hreq.Header.Add(k, v)
		}
	}
	hreq.Header.Set("Accept", "application/json")
	if a.Payload != nil {
		hreq.Header.Set("Content-Type", "application/json")
	}
	if a.RequestID != "" {
		hreq.Header.Set(common.RequestIDHeaderName, a.RequestID)
	}
	if a.Token != "" {
		hreq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+a.Token)
	}

	hresp, err := c.http.Do(hreq)
	if err != nil {
		return nil, classify(err)
	}
	defer hresp.Body.Close()

	data, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, classify(err)
	}

	return &Response{Status: hresp.StatusCode, Header: hresp.Header, Body: data, Attempt: a}, nil
}

// refreshTokens is the coordinator's RefreshFunc. It goes through the plain
// pipeline so a 401 from the refresh endpoint cannot recurse.
func (c *HTTPClient) refreshTokens(ctx context.Context, refreshToken string) (*models.LoginResponse, error) {
	req := &Request{
		Service: ServiceClient,
		Method:  http.MethodPost,
		Path:    c.AuthPath("/refresh"),
		Body:    models.RefreshTokenRequest{RefreshToken: refreshToken},
		Timeout: c.cfg.RefreshTimeout,
	}

	resp, err := c.SendPublic(ctx, req)
	if err != nil {
		return nil, err
	}

	var out models.LoginResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("decode refresh response: %w", err)
	}
	return &out, nil
}
