package securedrop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/securedrop/apierror"
	"github.com/dmitrijs2005/securedrop/data"
)

// apiPrefix is the versioned prefix every operation path is appended to.
const apiPrefix = "/api/v1/"

func (c *Client) endpoint(path string) string {
	return c.baseURL + apiPrefix + path
}

func (c *Client) requireToken() error {
	if c.token == nil {
		return fmt.Errorf("%w: no valid session token", apierror.ErrAuth)
	}
	return nil
}

func (c *Client) setAuthHeader(req *http.Request) {
	if c.token != nil {
		req.Header.Set("Authorization", "Token "+c.token.Value)
	}
}

// request is dispatch gated on a valid session token. Resource operations
// go through here so a client left without a token after a failed
// reauthorization fails fast instead of sending unauthenticated requests.
func (c *Client) request(ctx context.Context, method, path string, body []byte, out any) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	return c.dispatch(ctx, method, path, body, out)
}

// dispatch sends one JSON request and classifies the outcome. A nil out
// skips body decoding. body is raw JSON, already serialized by the caller.
func (c *Client) dispatch(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return &apierror.ProgrammingError{Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.setAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apierror.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := classify(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apierror.ProgrammingError{Detail: err.Error()}
	}
	return nil
}

// classify maps a completed HTTP exchange onto the error taxonomy; it
// returns nil for 2xx and a typed error otherwise. Ranges are checked server
// errors first, then client errors, then the fallback, so an ambiguous
// status lands in the most specific bucket. For 4xx the error body is
// consumed here; for 2xx the body is left for the caller to decode.
func classify(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500 && resp.StatusCode < 600:
		return fmt.Errorf("%w: %s", apierror.ErrServer, resp.Status)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var body data.Response
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return &apierror.ProgrammingError{Detail: "parse failure"}
		}
		return &apierror.ClientError{Message: body.Message}
	default:
		return fmt.Errorf("%w: %s", apierror.ErrUnknown, resp.Status)
	}
}
