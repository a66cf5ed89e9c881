package restclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StatusError carries a non-2xx backend response. The client does not
// interpret status codes; callers decide what a given code means (the screens
// treat every failure the same way).
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}

// Client is the shared HTTP client for one backend deployment. It is
// stateless and safe for concurrent use; every resource client shares one
// instance. No retry, no batching, no auth header.
type Client struct {
	baseURL string
	g       *gout.Client
}

// New creates a client for the given base URL with the given request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		g:       gout.NewWithOpt(gout.WithClient(&http.Client{Timeout: timeout})),
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues a single request and returns the raw response body. A transport
// failure surfaces as the wrapped transport error; a non-2xx response
// surfaces as *StatusError.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	u := c.baseURL + path

	var df *dataflow.DataFlow
	switch method {
	case http.MethodGet:
		df = c.g.GET(u)
	case http.MethodPost:
		df = c.g.POST(u)
	case http.MethodPut:
		df = c.g.PUT(u)
	case http.MethodDelete:
		df = c.g.DELETE(u)
	default:
		return nil, errors.Errorf("unsupported method %s", method)
	}

	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s %s", method, path)
		}
		df = df.SetHeader(gout.H{"Content-Type": "application/json"}).SetBody(body)
	}

	var (
		code int
		body []byte
	)
	if err := df.WithContext(ctx).Code(&code).BindBody(&body).Do(); err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	if code < 200 || code > 299 {
		return nil, &StatusError{Code: code, Body: body}
	}
	return body, nil
}

// GetJSON issues a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode GET %s", path)
	}
	return nil
}

// GetRaw issues a GET and returns the raw response body (binary endpoints).
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// PostJSON issues a POST with a JSON body and decodes the JSON response into
// out when out is non-nil.
func (c *Client) PostJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode POST %s", path)
	}
	return nil
}

// PostText issues a bodyless POST and returns the plain-text response.
func (c *Client) PostText(ctx context.Context, path string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// PutJSON issues a PUT with a JSON body and decodes the JSON response into out.
func (c *Client) PutJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := c.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode PUT %s", path)
	}
	return nil
}

// Delete issues a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
