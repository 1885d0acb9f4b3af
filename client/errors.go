package client

import (
	"fmt"
	"time"
)

// NetworkError the relay could not be reached (DNS, refused or reset connection)
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error - please check your internet connection: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError the call did not complete before its deadline and was aborted
type TimeoutError struct {
	Op    string
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: request timeout after %s - please try again", e.Op, e.After)
}

// Timeout lets callers treat the error like a net.Error
func (e *TimeoutError) Timeout() bool { return true }

// ProtocolError the relay answered with a body that is not JSON
type ProtocolError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: invalid JSON from proxy (status %d)", e.Op, e.StatusCode)
}

// FormatError the bank list did not match any known nesting
type FormatError struct {
	Op string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unexpected response format", e.Op)
}

// ApiError the payment provider answered with a non 2xx status
type ApiError struct {
	Op          string
	StatusCode  int
	Message     string
	RawResponse string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// ParseError the relay could not parse the provider body
type ParseError struct {
	Op          string
	Message     string
	RawResponse string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// RelayError any other failure reported by the relay itself, e.g. backend_error
type RelayError struct {
	Op         string
	ErrorType  string
	StatusCode int
	Message    string
}

func (e *RelayError) Error() string {
	if e.ErrorType == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Op, e.Message, e.ErrorType)
}
