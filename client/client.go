// Package client is the façade UI code and the CLI use to talk to the relay.
//
// Every call owns its own deadline. Transport failures are classified into
// NetworkError, TimeoutError and ProtocolError; failures reported by the relay
// surface as ApiError, ParseError or RelayError. Nothing is retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTimeout applied to every call when Config.Timeout is zero
const DefaultTimeout = 30 * time.Second

// DefaultPrefix of the relay routes
const DefaultPrefix = "/relay"

// Config of the façade
type Config struct {
	// BaseURL of the relay origin, e.g. http://localhost:3000
	BaseURL    string
	Prefix     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is safe for concurrent use
type Client struct {
	base    string
	timeout time.Duration
	http    *http.Client
}

// New builds a façade client
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &Client{
		base:    strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.Trim(cfg.Prefix, "/"),
		timeout: cfg.Timeout,
		http:    cfg.HTTPClient,
	}
}

// InitializePayment starts a hosted checkout. The provider body is returned as is on success.
func (c *Client) InitializePayment(ctx context.Context, req model.PaymentInitRequest) (*Result, error) {
	const op = "initialize payment"
	res, err := c.request(ctx, op, http.MethodPost, "/initialize", req)
	if err != nil {
		return nil, err
	}
	if err := relayFailure(op, res); err != nil {
		return nil, err
	}
	return res, nil
}

// VerifyTransaction returns the provider body unchanged, including declared failures such as an unknown reference
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*Result, error) {
	const op = "verify transaction"
	res, err := c.request(ctx, op, http.MethodGet, "/verify/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}
	if err := relayFailure(op, res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetBanks returns the flattened bank list whatever nesting the relay used
func (c *Client) GetBanks(ctx context.Context) ([]model.Bank, error) {
	const op = "get banks"
	res, err := c.request(ctx, op, http.MethodGet, "/banks", nil)
	if err != nil {
		return nil, err
	}
	if err := relayFailure(op, res); err != nil {
		return nil, err
	}
	if res.Status == string(model.StatusFailed) {
		msg := res.Message
		if msg == "" {
			msg = "Failed to fetch banks from Chapa API"
		}
		return nil, &RelayError{Op: op, StatusCode: res.HTTPStatus, Message: msg}
	}
	return normalizeBanks(op, res)
}

// InitializeTransfer runs the demo transfer route
func (c *Client) InitializeTransfer(ctx context.Context, req model.TransferRequest) (*Result, error) {
	const op = "initialize transfer"
	res, err := c.request(ctx, op, http.MethodPost, "/transfer", req)
	if err != nil {
		return nil, err
	}
	if err := relayFailure(op, res); err != nil {
		return nil, err
	}
	return res, nil
}

// VerifyTransfer runs the demo transfer verification route
func (c *Client) VerifyTransfer(ctx context.Context, reference string) (*Result, error) {
	const op = "verify transfer"
	res, err := c.request(ctx, op, http.MethodGet, "/transfer/verify/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}
	if err := relayFailure(op, res); err != nil {
		return nil, err
	}
	return res, nil
}

// CheckHealth issues a HEAD on the bank list and reports whether it answered 2xx
func (c *Client) CheckHealth(ctx context.Context) bool {
	status, _, err := c.do(ctx, "check health", http.MethodHead, "/banks", nil)
	if err != nil {
		return false
	}
	return status >= 200 && status < 300
}

// request is the JSON primitive: any status is returned as long as the body parses
func (c *Client) request(ctx context.Context, op, method, path string, in interface{}) (*Result, error) {
	var body []byte
	if in != nil {
		var err error
		if body, err = jsonCodec.Marshal(in); err != nil {
			return nil, errors.Wrapf(err, "%s: unable to encode request", op)
		}
	}
	status, respBody, err := c.do(ctx, op, method, path, body)
	if err != nil {
		return nil, err
	}
	if !model.IsJSON(respBody) {
		return nil, &ProtocolError{Op: op, StatusCode: status, Body: truncate(string(respBody), 500)}
	}
	return parseResult(status, respBody), nil
}

// do sends one call under its own deadline and reads the whole body before the deadline is released
func (c *Client) do(parent context.Context, op, method, path string, body []byte) (int, []byte, error) {
	timeout := c.timeout
	if deadline, ok := parent.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "%s: unable to build request", op)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, classify(ctx, parent, op, timeout, err)
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, classify(ctx, parent, op, timeout, err)
	}
	log.Debug().Str("section", "client").Str("op", op).Int("status", resp.StatusCode).Dur("latency", time.Since(start)).Msg("Relay call completed")
	return resp.StatusCode, respBody, nil
}

// classify reports the deadline that actually expired, the caller's when it was the shorter one
func classify(ctx, parent context.Context, op string, timeout time.Duration, err error) error {
	// the caller cancelled: report it as such and not as a transport failure
	if parent.Err() == context.Canceled {
		return errors.Wrap(parent.Err(), op)
	}
	if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Op: op, After: timeout.Round(time.Millisecond)}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Op: op, After: timeout.Round(time.Millisecond)}
	}
	return &NetworkError{Op: op, Err: err}
}

// relayFailure turns a failed envelope carrying an error_type into a typed error.
// Provider bodies never carry error_type, so declared provider failures pass through.
func relayFailure(op string, res *Result) error {
	if res.Status != string(model.StatusFailed) || res.ErrorType == "" {
		return nil
	}
	switch model.ErrorType(res.ErrorType) {
	case model.ErrorTypeAPI:
		code := res.StatusCode
		if code == 0 {
			code = res.HTTPStatus
		}
		return &ApiError{Op: op, StatusCode: code, Message: res.Message, RawResponse: res.RawResponse}
	case model.ErrorTypeParse:
		return &ParseError{Op: op, Message: res.Message, RawResponse: res.RawResponse}
	}
	return &RelayError{Op: op, ErrorType: res.ErrorType, StatusCode: res.HTTPStatus, Message: res.Message}
}

// normalizeBanks checks data, then data.data, then chapa_response. The first array found wins.
func normalizeBanks(op string, res *Result) ([]model.Bank, error) {
	candidates := []json.RawMessage{res.Data}
	if isObject(res.Data) {
		var nested struct {
			Data json.RawMessage `json:"data"`
		}
		if err := jsonCodec.Unmarshal(res.Data, &nested); err == nil {
			candidates = append(candidates, nested.Data)
		}
	}
	candidates = append(candidates, res.ChapaResponse)

	for _, raw := range candidates {
		if !isArray(raw) {
			continue
		}
		banks := []model.Bank{}
		if err := jsonCodec.Unmarshal(raw, &banks); err != nil {
			return nil, &FormatError{Op: op}
		}
		return banks, nil
	}
	return nil, &FormatError{Op: op}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
