package client

import (
	"net/http"
	"net/url"
	"time"
)

// Service names a WillBank microservice. Each has its own base URL.
type Service string

const (
	ServiceClient       Service = "client"
	ServiceAccount      Service = "account"
	ServiceTransaction  Service = "transaction"
	ServiceNotification Service = "notification"
	ServiceDashboard    Service = "dashboard"
)

// Services lists every known service.
var Services = []Service{
	ServiceClient,
	ServiceAccount,
	ServiceTransaction,
	ServiceNotification,
	ServiceDashboard,
}

// Request describes one logical call. Body is encoded as JSON unless it is
// already a []byte. A zero Timeout means the client default.
type Request struct {
	Service Service
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Header  http.Header
	Timeout time.Duration
}

// Attempt is one send of a Request through the pipeline. It is passed by
// value; N is 0 for the original send and 1 for the retry after a refresh.
type Attempt struct {
	N         int
	Request   *Request
	Payload   []byte
	Token     string
	RequestID string
}

// Retry returns the next attempt carrying token.
func (a Attempt) Retry(token string) Attempt {
	a.N++
	a.Token = token
	return a
}

// IsRetry reports whether a refresh already happened for this request.
func (a Attempt) IsRetry() bool { return a.N > 0 }

// Response is a fully read HTTP response.
type Response struct {
	Status  int
	Header  http.Header
	Body    []byte
	Attempt Attempt
}

// OK reports a 2xx status.
func (r *Response) OK() bool { return r.Status >= 200 && r.Status < 300 }
