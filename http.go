package adopcion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"
	headerUserAgent     = "User-Agent"
	contentTypeJSON     = "application/json"
	clientUserAgent     = "adopcion-go/1.0.0"
)

// envelope is the backend's uniform success wrapper around every JSON
// response.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// doRequest performs an HTTP request with the cross-cutting policy every
// call shares: bearer token attachment, request correlation, failure
// classification and the single user-facing notice per failed call.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	return c.send(ctx, method, path, body, result, false)
}

// send is the single outbound path. isLogin marks the login call itself,
// which is exempt from the 401 session-expiry side effects: there is no
// session to expire and the caller renders its own error.
func (c *Client) send(ctx context.Context, method, path string, body, result any, isLogin bool) error {
	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}
	// JoinPath would escape the query string
	if strings.Contains(path, "?") {
		reqURL = c.baseURL + path
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(headerUserAgent, c.userAgent)
	req.Header.Set(headerRequestID, uuid.NewString())
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	if token := c.token(); token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response at all: offline, DNS failure or timeout expiry.
		return c.fail(networkError(err), isLogin)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(networkError(err), isLogin)
	}

	if resp.StatusCode >= 400 {
		return c.fail(parseError(resp.StatusCode, respBody), isLogin)
	}

	if result != nil && len(respBody) > 0 {
		var env envelope
		if err := json.Unmarshal(respBody, &env); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, result); err != nil {
				return fmt.Errorf("failed to parse response data: %w", err)
			}
		}
	}

	return nil
}

// fail applies the uniform failure policy: at most one user-facing notice
// per failed call, the auth-rejected signal on 401, and the error itself
// always propagated to the caller.
func (c *Client) fail(e *Error, isLogin bool) error {
	if e.Kind == KindAuthRejected {
		if isLogin {
			// The login caller renders invalid-credentials itself.
			return e
		}
		if c.onAuthRejected != nil {
			c.onAuthRejected()
		}
	}
	if msg, ok := noticeFor(e); ok {
		c.notifier.Notify(Notice{Severity: SeverityError, Message: msg})
	}
	return e
}

// token reads the current bearer token, if a source is configured.
func (c *Client) token() string {
	if c.tokenSource == nil {
		return ""
	}
	return c.tokenSource()
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, result any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, result)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, result)
}

// put performs a PUT request.
func (c *Client) put(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPut, path, body, result)
}

// patch performs a PATCH request.
func (c *Client) patch(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPatch, path, body, result)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil)
}
