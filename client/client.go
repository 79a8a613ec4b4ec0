// Package client talks to the remote event-booking API. Responses use the
// {"result": ...} / {"error": "..."} envelope; every failure surfaces as a
// *RequestError and is never retried here.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the API base URL, e.g. "http://api:8081/api/events".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestError carries the server-provided message for non-2xx responses,
// or wraps the transport cause when the call never produced one.
type RequestError struct {
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

// Send issues one request and unwraps the response envelope. A non-2xx status
// fails with the server error string, falling back to a generic status message.
func (c *Client) Send(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, c.fail(&RequestError{Message: "could not encode request body", Err: err})
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, c.fail(&RequestError{Message: "could not build request", Err: err})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(&RequestError{Message: "booking API unreachable", Err: err})
	}
	defer resp.Body.Close()

	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, c.fail(&RequestError{Status: resp.StatusCode, Message: "malformed response body", Err: err})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("HTTP error, status=%d", resp.StatusCode)
		}
		return nil, c.fail(&RequestError{Status: resp.StatusCode, Message: msg})
	}

	return env.Result, nil
}

// fail logs for diagnostics and hands the error back untouched.
func (c *Client) fail(reqErr *RequestError) error {
	log.Printf("API request failed: %v (status=%d cause=%v)", reqErr.Message, reqErr.Status, reqErr.Err)
	return reqErr
}
