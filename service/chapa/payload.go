package chapa

import "gitlab.com/paramountdax-exchange/psp_dashboard/model"

const (
	DefaultTitle       = "Payment via Chapa Dashboard"
	DefaultDescription = "Online payment"
	DefaultHideReceipt = "false"
)

// InitializePayload is the flat key set expected by the provider
type InitializePayload struct {
	Amount                   string `json:"amount"`
	Currency                 string `json:"currency"`
	Email                    string `json:"email"`
	FirstName                string `json:"first_name"`
	LastName                 string `json:"last_name"`
	PhoneNumber              string `json:"phone_number"`
	TxRef                    string `json:"tx_ref"`
	CallbackURL              string `json:"callback_url"`
	ReturnURL                string `json:"return_url"`
	CustomizationTitle       string `json:"customization[title]"`
	CustomizationDescription string `json:"customization[description]"`
	MetaHideReceipt          string `json:"meta[hide_receipt]"`
}

// NewInitializePayload flattens the relay request and fills in the checkout defaults
func NewInitializePayload(req model.PaymentInitRequest) InitializePayload {
	payload := InitializePayload{
		Amount:                   req.Amount.String(),
		Currency:                 req.Currency,
		Email:                    req.Email,
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		PhoneNumber:              req.PhoneNumber,
		TxRef:                    req.TxRef,
		CallbackURL:              req.CallbackURL,
		ReturnURL:                req.ReturnURL,
		CustomizationTitle:       DefaultTitle,
		CustomizationDescription: DefaultDescription,
		MetaHideReceipt:          DefaultHideReceipt,
	}
	if req.Description != "" {
		payload.CustomizationDescription = req.Description
	}
	if c := req.Customization; c != nil {
		if c.Title != "" {
			payload.CustomizationTitle = c.Title
		}
		if c.Description != "" {
			payload.CustomizationDescription = c.Description
		}
	}
	if req.Meta != nil && req.Meta.HideReceipt != "" {
		payload.MetaHideReceipt = req.Meta.HideReceipt
	}
	return payload
}
