package actions

import (
	"github.com/gin-gonic/gin"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

const (
	sourceCallback = "callback"
	sourceSession  = "session"
)

// GetPaymentResult godoc
// GET /payment-result?trx_ref=&ref_id=&status=
//
// Builds the result shown after the provider redirect. Without callback parameters it falls back to the
// payment remembered in the session, reported as pending until the provider confirms otherwise.
// In both cases the provider is asked for the verified status, which wins when available.
func (actions *Actions) GetPaymentResult(c *gin.Context) {
	result, ok := actions.resultFromCallback(c)
	if !ok {
		record, found := actions.loadLastPayment(c)
		if !found {
			abortWithError(c, NotFound, "No payment information found")
			return
		}
		result = model.PaymentResult{
			TxRef:    record.TxRef,
			Status:   model.PaymentPending,
			Amount:   record.Amount,
			Currency: record.Currency,
			Email:    record.Email,
			Source:   sourceSession,
		}
	}
	actions.applyVerification(c, &result)
	c.JSON(OK, result)
}

func (actions *Actions) resultFromCallback(c *gin.Context) (model.PaymentResult, bool) {
	txRef := c.Query("trx_ref")
	refID := c.Query("ref_id")
	status := model.PaymentStatus(c.Query("status"))
	if txRef == "" || refID == "" || status == "" {
		return model.PaymentResult{}, false
	}
	switch status {
	case model.PaymentSuccess, model.PaymentPending, model.PaymentFailed:
	default:
		status = model.PaymentPending
	}
	return model.PaymentResult{
		TxRef:  txRef,
		RefID:  refID,
		Status: status,
		Source: sourceCallback,
	}, true
}

func (actions *Actions) applyVerification(c *gin.Context, result *model.PaymentResult) {
	log := getlog(c)
	resp, err := actions.provider.VerifyTransaction(c.Request.Context(), result.TxRef)
	if err != nil {
		log.Warn().Err(err).Str("section", "payment_result").Msg("Unable to verify transaction")
		return
	}
	var body model.ProviderResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Status != string(model.StatusSuccess) {
		return
	}
	var verification model.VerificationResult
	if err := json.Unmarshal(body.Data, &verification); err != nil {
		log.Warn().Err(err).Str("section", "payment_result").Msg("Unexpected verification payload")
		return
	}
	result.Verification = &verification
	result.Verified = true
	switch status := model.PaymentStatus(verification.Status); status {
	case model.PaymentSuccess, model.PaymentPending, model.PaymentFailed:
		result.Status = status
	}
	if result.Amount == "" {
		result.Amount = verification.Amount
	}
	if result.Currency == "" {
		result.Currency = verification.Currency
	}
	if result.Email == "" {
		result.Email = verification.Email
	}
}
