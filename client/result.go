package client

import (
	"bytes"
	"encoding/json"

	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

// Result is a parsed relay answer. Raw is the body exactly as received.
type Result struct {
	HTTPStatus int
	Raw        json.RawMessage

	Message       string
	Status        string
	Data          json.RawMessage
	ErrorType     string
	StatusCode    int
	RawResponse   string
	ChapaResponse json.RawMessage
}

// Decode the whole body into v
func (r *Result) Decode(v interface{}) error {
	return jsonCodec.Unmarshal(r.Raw, v)
}

// DecodeData decodes the data field into v
func (r *Result) DecodeData(v interface{}) error {
	return jsonCodec.Unmarshal(r.Data, v)
}

// IsSuccess reports whether the body declares status success
func (r *Result) IsSuccess() bool {
	return r.Status == string(model.StatusSuccess)
}

// parseResult reads the envelope fields it recognises and ignores the rest.
// Bodies that are not objects keep only Raw.
func parseResult(status int, body []byte) *Result {
	res := &Result{HTTPStatus: status, Raw: json.RawMessage(body)}
	var fields map[string]json.RawMessage
	if err := jsonCodec.Unmarshal(body, &fields); err != nil {
		return res
	}
	res.Message = stringField(fields["message"])
	res.Status = stringField(fields["status"])
	res.ErrorType = stringField(fields["error_type"])
	res.RawResponse = stringField(fields["raw_response"])
	res.Data = fields["data"]
	res.ChapaResponse = fields["chapa_response"]
	if raw, ok := fields["status_code"]; ok {
		_ = jsonCodec.Unmarshal(raw, &res.StatusCode)
	}
	return res
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || jsonCodec.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
