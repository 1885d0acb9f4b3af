package model

// TransferRequest body accepted by the transfer relay route
type TransferRequest struct {
	Amount        Amount `json:"amount"`
	Currency      string `json:"currency"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	TxRef         string `json:"tx_ref"`
	Reference     string `json:"reference,omitempty"`
}

// TransferRecord returned by the demo transfer routes
type TransferRecord struct {
	TransferID string `json:"transfer_id,omitempty"`
	TxRef      string `json:"tx_ref"`
	Status     string `json:"status"`
	Amount     Amount `json:"amount"`
	Currency   string `json:"currency"`
}
