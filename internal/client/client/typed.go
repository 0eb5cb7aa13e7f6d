package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Do sends req and decodes the JSON response into T. An empty body yields
// the zero value.
func Do[T any](ctx context.Context, c *HTTPClient, req *Request) (T, error) {
	resp, err := c.Send(ctx, req)
	return decodeResponse[T](req, resp, err)
}

// DoPublic is Do without bearer or refresh handling.
func DoPublic[T any](ctx context.Context, c *HTTPClient, req *Request) (T, error) {
	resp, err := c.SendPublic(ctx, req)
	return decodeResponse[T](req, resp, err)
}

func decodeResponse[T any](req *Request, resp *Response, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if len(resp.Body) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, fmt.Errorf("decode %s %s: %w", req.Method, req.Path, err)
	}
	return out, nil
}

func Get[T any](ctx context.Context, c *HTTPClient, svc Service, path string, query url.Values) (T, error) {
	return Do[T](ctx, c, &Request{Service: svc, Method: http.MethodGet, Path: path, Query: query})
}

func Post[T any](ctx context.Context, c *HTTPClient, svc Service, path string, body any) (T, error) {
	return Do[T](ctx, c, &Request{Service: svc, Method: http.MethodPost, Path: path, Body: body})
}

// PostPublic posts to an endpoint that must never carry a token, such as
// login or register.
func PostPublic[T any](ctx context.Context, c *HTTPClient, svc Service, path string, body any) (T, error) {
	return DoPublic[T](ctx, c, &Request{Service: svc, Method: http.MethodPost, Path: path, Body: body})
}

func Put[T any](ctx context.Context, c *HTTPClient, svc Service, path string, body any) (T, error) {
	return Do[T](ctx, c, &Request{Service: svc, Method: http.MethodPut, Path: path, Body: body})
}

func Delete(ctx context.Context, c *HTTPClient, svc Service, path string) error {
	_, err := c.Send(ctx, &Request{Service: svc, Method: http.MethodDelete, Path: path})
	return err
}
