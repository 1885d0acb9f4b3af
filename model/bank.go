package model

// Bank as listed by the payment provider. Nullable capability flags stay nil when the provider sends null.
type Bank struct {
	ID            int64  `json:"id"`
	Slug          string `json:"slug"`
	Swift         string `json:"swift"`
	Name          string `json:"name"`
	AcctLength    int    `json:"acct_length"`
	CountryID     int64  `json:"country_id"`
	IsMobileMoney *bool  `json:"is_mobilemoney"`
	IsActive      int    `json:"is_active"`
	IsRTGS        int    `json:"is_rtgs"`
	Active        int    `json:"active"`
	Is24Hrs       *int   `json:"is_24hrs"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	Currency      string `json:"currency"`
}
