// Package compute is the HTTP client for the remote viscosity computation
// service. All numerical work (viscosity index, Walther interpolation,
// blending, the constrained solver) happens server-side; this package only
// speaks the request/response contract.
package compute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is used when no service URL is configured.
const DefaultBaseURL = "http://localhost:5000"

// APIError is a non-200 service reply. Message is the server-provided
// human-readable text, empty when the body carried none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("service error (HTTP %d)", e.Status)
}

// Client talks to one service instance. The zero timeout means none: a
// hung request is left to the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for baseURL. timeout<=0 disables the HTTP
// client timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	hc := &http.Client{}
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &Client{baseURL: baseURL, http: hc}
}

// BaseURL returns the configured service URL.
func (c *Client) BaseURL() string { return c.baseURL }

// ViscosityIndex computes v40, v100 and the VI from two reference points.
func (c *Client) ViscosityIndex(ctx context.Context, req VIRequest) (*VIResponse, error) {
	var resp VIResponse
	if err := c.post(ctx, "/api/vi", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ViscosityTemperature returns the sampled viscosity/temperature table and
// the optional target viscosity.
func (c *Client) ViscosityTemperature(ctx context.Context, req TemperatureRequest) (*TemperatureResponse, error) {
	var resp TemperatureResponse
	if err := c.post(ctx, "/api/viscosity_temperature", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Mixture blends the given components.
func (c *Client) Mixture(ctx context.Context, req MixtureRequest) (*MixtureResponse, error) {
	var resp MixtureResponse
	if err := c.post(ctx, "/api/mixture", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Mix2 solves the two-base proportion problem.
func (c *Client) Mix2(ctx context.Context, req Mix2Request) (*Mix2Response, error) {
	var resp Mix2Response
	if err := c.post(ctx, "/api/mix2", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Solve runs the constrained mixture design solver.
func (c *Client) Solve(ctx context.Context, req SolverRequest) (*SolverResponse, error) {
	var resp SolverResponse
	if err := c.post(ctx, "/api/solver", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// errEnvelope is the service's error body: {"error": "..."}.
type errEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	url := c.baseURL + path
	Debugf("POST %s %s", url, body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var env errEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		Warnf("POST %s -> HTTP %d: %s", path, resp.StatusCode, env.Error)
		return &APIError{Status: resp.StatusCode, Message: env.Error}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed service response: %w", err)
	}
	return nil
}
