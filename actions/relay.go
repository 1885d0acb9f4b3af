package actions

import (
	"fmt"
	"io/ioutil"

	"github.com/gin-gonic/gin"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
	"gitlab.com/paramountdax-exchange/psp_dashboard/monitor"
	"gitlab.com/paramountdax-exchange/psp_dashboard/service/chapa"
)

const (
	msgBanksFetched = "Banks fetched successfully from Chapa API"
	msgInvalidJSON  = "Invalid JSON response from Chapa API"
)

const jsonContentType = "application/json; charset=utf-8"

// ListBanks godoc
// GET /relay/banks
//
// Wraps the provider bank list in a success envelope. The parsed body is
// returned both under data and under chapa_response.
func (actions *Actions) ListBanks(c *gin.Context) {
	resp, err := actions.provider.ListBanks(c.Request.Context())
	if err != nil {
		actions.backendError(c, chapa.OperationBanks, err)
		return
	}
	if !resp.OK() {
		actions.apiError(c, chapa.OperationBanks, resp)
		return
	}
	if !model.IsJSON(resp.Body) {
		actions.parseError(c, chapa.OperationBanks, resp)
		return
	}
	monitor.RelayRequests.WithLabelValues(chapa.OperationBanks, "success").Inc()
	c.JSON(OK, model.Envelope{
		Message:       msgBanksFetched,
		Status:        model.StatusSuccess,
		Data:          resp.Body,
		ChapaResponse: resp.Body,
	})
}

// BanksHealth godoc
// HEAD /relay/banks
//
// Same upstream call as ListBanks, answering with the status code only.
func (actions *Actions) BanksHealth(c *gin.Context) {
	resp, err := actions.provider.ListBanks(c.Request.Context())
	switch {
	case err != nil:
		l := getlog(c)
		l.Warn().Err(err).Str("section", "relay").Str("operation", chapa.OperationHealth).Msg("Provider unreachable")
		c.Status(ServerError)
	case !resp.OK():
		c.Status(resp.StatusCode)
	case !model.IsJSON(resp.Body):
		c.Status(ServerError)
	default:
		c.Status(OK)
	}
}

// InitializePayment godoc
// POST /relay/initialize
//
// Flattens the request into the provider payload and passes the provider body through on success.
// The attempt is remembered in the session so the payment result page can find it after the redirect.
func (actions *Actions) InitializePayment(c *gin.Context) {
	body, err := ioutil.ReadAll(c.Request.Body)
	if err != nil {
		actions.backendError(c, chapa.OperationInitialize, err)
		return
	}
	var req model.PaymentInitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		actions.backendError(c, chapa.OperationInitialize, err)
		return
	}

	if err := actions.saveLastPayment(c, model.NewPaymentRecord(req)); err != nil {
		l := getlog(c)
		l.Warn().Err(err).Str("section", "relay").Msg("Unable to remember last payment")
	}

	resp, err := actions.provider.InitializePayment(c.Request.Context(), chapa.NewInitializePayload(req))
	if err != nil {
		actions.backendError(c, chapa.OperationInitialize, err)
		return
	}
	if !resp.OK() {
		actions.apiError(c, chapa.OperationInitialize, resp)
		return
	}
	if !model.IsJSON(resp.Body) {
		actions.parseError(c, chapa.OperationInitialize, resp)
		return
	}
	monitor.RelayRequests.WithLabelValues(chapa.OperationInitialize, "success").Inc()
	c.Data(OK, jsonContentType, resp.Body)
}

// VerifyTransaction godoc
// GET /relay/verify/:reference
//
// Any JSON body from the provider is passed through, including declared failures such as an unknown reference.
func (actions *Actions) VerifyTransaction(c *gin.Context) {
	reference := c.Param("reference")
	resp, err := actions.provider.VerifyTransaction(c.Request.Context(), reference)
	if err != nil {
		actions.backendError(c, chapa.OperationVerify, err)
		return
	}
	if !model.IsJSON(resp.Body) {
		actions.parseError(c, chapa.OperationVerify, resp)
		return
	}
	outcome := "success"
	if !resp.OK() {
		outcome = "provider_failed"
	}
	monitor.RelayRequests.WithLabelValues(chapa.OperationVerify, outcome).Inc()
	c.Data(OK, jsonContentType, resp.Body)
}

func (actions *Actions) backendError(c *gin.Context, operation string, err error) {
	l := getlog(c)
	l.Error().Err(err).Str("section", "relay").Str("operation", operation).Msg("Relay call failed")
	monitor.RelayRequests.WithLabelValues(operation, string(model.ErrorTypeBackend)).Inc()
	c.JSON(ServerError, model.Failed(model.ErrorTypeBackend, fmt.Sprintf("Backend error: %s", err.Error())))
}

func (actions *Actions) apiError(c *gin.Context, operation string, resp *chapa.Response) {
	l := getlog(c)
	l.Warn().Str("section", "relay").Str("operation", operation).Int("status_code", resp.StatusCode).Msg("Provider returned an error status")
	monitor.RelayRequests.WithLabelValues(operation, string(model.ErrorTypeAPI)).Inc()
	env := model.Failed(model.ErrorTypeAPI, fmt.Sprintf("Chapa API error: %d - %s", resp.StatusCode, resp.StatusText())).
		WithRawResponse(resp.Body)
	env.StatusCode = resp.StatusCode
	c.JSON(resp.StatusCode, env)
}

func (actions *Actions) parseError(c *gin.Context, operation string, resp *chapa.Response) {
	l := getlog(c)
	l.Warn().Str("section", "relay").Str("operation", operation).Int("status_code", resp.StatusCode).Msg("Provider returned a non JSON body")
	monitor.RelayRequests.WithLabelValues(operation, string(model.ErrorTypeParse)).Inc()
	c.JSON(ServerError, model.Failed(model.ErrorTypeParse, msgInvalidJSON).WithRawResponse(resp.Body))
}
