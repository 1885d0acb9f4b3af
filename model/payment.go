package model

import "encoding/json"

// Customization of the hosted checkout page
type Customization struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// PaymentMeta optional provider flags
type PaymentMeta struct {
	HideReceipt string `json:"hide_receipt,omitempty"`
}

// PaymentInitRequest is the body accepted by the initialize relay route
type PaymentInitRequest struct {
	Amount        Amount         `json:"amount"`
	Currency      string         `json:"currency"`
	Email         string         `json:"email"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	PhoneNumber   string         `json:"phone_number,omitempty"`
	TxRef         string         `json:"tx_ref"`
	CallbackURL   string         `json:"callback_url"`
	ReturnURL     string         `json:"return_url"`
	Description   string         `json:"description,omitempty"`
	Customization *Customization `json:"customization,omitempty"`
	Meta          *PaymentMeta   `json:"meta,omitempty"`
}

// CheckoutData is the data part of a successful initialize response
type CheckoutData struct {
	CheckoutURL string `json:"checkout_url"`
}

// VerificationResult mirrors the provider verification payload. Meta is provider defined.
type VerificationResult struct {
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Currency      string          `json:"currency"`
	Amount        Amount          `json:"amount"`
	Charge        Amount          `json:"charge"`
	Mode          string          `json:"mode"`
	Method        string          `json:"method"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Reference     string          `json:"reference"`
	TxRef         string          `json:"tx_ref"`
	Customization Customization   `json:"customization"`
	Meta          json.RawMessage `json:"meta"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// ProviderResponse is the generic shape of a provider body: message, status and data
type ProviderResponse struct {
	Message json.RawMessage `json:"message"`
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
}

// PaymentRecord the last payment attempted in a browser session
type PaymentRecord struct {
	TxRef       string `json:"tx_ref"`
	Amount      Amount `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// NewPaymentRecord from an initialize request
func NewPaymentRecord(req PaymentInitRequest) PaymentRecord {
	description := req.Description
	if description == "" && req.Customization != nil {
		description = req.Customization.Description
	}
	return PaymentRecord{
		TxRef:       req.TxRef,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Email:       req.Email,
		Description: description,
	}
}

// PaymentStatus reported on the payment result page
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentResult shown after the provider redirects back
type PaymentResult struct {
	TxRef    string        `json:"tx_ref"`
	RefID    string        `json:"ref_id,omitempty"`
	Status   PaymentStatus `json:"status"`
	Amount   Amount        `json:"amount,omitempty"`
	Currency string        `json:"currency,omitempty"`
	Email    string        `json:"email,omitempty"`
	// Verified is true once the status comes from the provider and not from the session record
	Verified     bool                `json:"verified"`
	Source       string              `json:"source"`
	Verification *VerificationResult `json:"verification,omitempty"`
}
