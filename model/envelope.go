package model

import "encoding/json"

// EnvelopeStatus is the relay's own judgement of a call
type EnvelopeStatus string

const (
	StatusSuccess EnvelopeStatus = "success"
	StatusFailed  EnvelopeStatus = "failed"
)

// ErrorType classifies a relay level failure
type ErrorType string

const (
	// ErrorTypeAPI the provider answered with a non 2xx status
	ErrorTypeAPI ErrorType = "api_error"
	// ErrorTypeParse the provider body was not valid JSON
	ErrorTypeParse ErrorType = "parse_error"
	// ErrorTypeBackend the relay could not complete the call at all
	ErrorTypeBackend ErrorType = "backend_error"
)

// Envelope is the uniform wrapper used by the relay for the bank list and for its own failures.
//
// Data holds the parsed provider body on success and is null on failure.
// ChapaResponse duplicates Data for callers that expect the list one level higher.
type Envelope struct {
	Message       string          `json:"message"`
	Status        EnvelopeStatus  `json:"status"`
	Data          json.RawMessage `json:"data"`
	ErrorType     ErrorType       `json:"error_type,omitempty"`
	StatusCode    int             `json:"status_code,omitempty"`
	RawResponse   *string         `json:"raw_response,omitempty"`
	ChapaResponse json.RawMessage `json:"chapa_response,omitempty"`
}

var null = json.RawMessage("null")

// Failed builds a failure envelope with a null data field
func Failed(errType ErrorType, message string) Envelope {
	return Envelope{
		Message:   message,
		Status:    StatusFailed,
		Data:      null,
		ErrorType: errType,
	}
}

// WithRawResponse attaches the unparsed provider body for diagnostics
func (e Envelope) WithRawResponse(raw []byte) Envelope {
	s := string(raw)
	e.RawResponse = &s
	return e
}

// IsJSON reports whether body is exactly one JSON value. Trailing bytes after
// the value make it invalid.
func IsJSON(body []byte) bool {
	return json.Valid(body)
}
