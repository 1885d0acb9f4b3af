package httputils

// RequestError is the body returned when a request is rejected before reaching the relay
type RequestError struct {
	Error string `json:"error"`
}
