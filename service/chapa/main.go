package chapa

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gitlab.com/paramountdax-exchange/psp_dashboard/monitor"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	OperationBanks      = "banks"
	OperationInitialize = "initialize"
	OperationVerify     = "verify"
	OperationHealth     = "health"
)

// Response is the raw provider answer. Body is left unparsed.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports a 2xx status
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusText is the reason phrase without the numeric code, e.g. "Unauthorized"
func (r *Response) StatusText() string {
	text := strings.TrimSpace(strings.TrimPrefix(r.Status, fmt.Sprint(r.StatusCode)))
	if text == "" {
		return http.StatusText(r.StatusCode)
	}
	return text
}

// Processor calls the payment provider API with the server held credential.
// It is safe for concurrent use; the configuration is read-only after Init.
type Processor struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// Init a new processor. A nil client uses a 30 second timeout.
func Init(baseURL, secretKey string, client *http.Client) *Processor {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Processor{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		client:    client,
	}
}

// ListBanks GET /banks
func (p *Processor) ListBanks(ctx context.Context) (*Response, error) {
	return p.request(ctx, OperationBanks, http.MethodGet, "/banks", nil)
}

// CheckHealth issues the bank list call and only reports whether it answered with 2xx
func (p *Processor) CheckHealth(ctx context.Context) (bool, error) {
	resp, err := p.request(ctx, OperationHealth, http.MethodGet, "/banks", nil)
	if err != nil {
		return false, err
	}
	return resp.OK(), nil
}

// InitializePayment POST /transaction/initialize
func (p *Processor) InitializePayment(ctx context.Context, payload InitializePayload) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode initialize payload")
	}
	return p.request(ctx, OperationInitialize, http.MethodPost, "/transaction/initialize", body)
}

// VerifyTransaction GET /transaction/verify/{reference}. The reference is opaque and only path escaped.
func (p *Processor) VerifyTransaction(ctx context.Context, reference string) (*Response, error) {
	return p.request(ctx, OperationVerify, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
}

func (p *Processor) request(ctx context.Context, operation, method, path string, body []byte) (*Response, error) {
	defer monitor.ObserveUpstream(operation, time.Now())

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build provider request")
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.secretKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, p.redact(err)
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(p.redact(err), "unable to read provider response")
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       respBody,
	}, nil
}

// redact strips the credential from transport errors so it can be echoed to callers
func (p *Processor) redact(err error) error {
	if p.secretKey == "" || !strings.Contains(err.Error(), p.secretKey) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), p.secretKey, "[redacted]"))
}
