package actions

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
	"gitlab.com/paramountdax-exchange/psp_dashboard/monitor"
)

const (
	operationTransfer       = "transfer"
	operationTransferVerify = "transfer_verify"

	msgTransferInitialized = "Transfer initialized successfully (Demo Mode - Transfer API not available in test environment)"
	msgTransferVerified    = "Transfer verified successfully (Demo Mode)"
)

// InitializeTransfer godoc
// POST /relay/transfer
//
// Demo mode only: transfers are never sent to the provider.
func (actions *Actions) InitializeTransfer(c *gin.Context) {
	body, err := ioutil.ReadAll(c.Request.Body)
	if err != nil {
		actions.backendError(c, operationTransfer, err)
		return
	}
	var req model.TransferRequest
	if err := json.Unmarshal(body, &req); err != nil {
		actions.backendError(c, operationTransfer, err)
		return
	}
	record := model.TransferRecord{
		TransferID: fmt.Sprintf("transfer_%d", time.Now().UnixNano()/int64(time.Millisecond)),
		TxRef:      req.TxRef,
		Status:     string(model.PaymentPending),
		Amount:     req.Amount,
		Currency:   req.Currency,
	}
	actions.demoEnvelope(c, operationTransfer, msgTransferInitialized, record)
}

// VerifyTransfer godoc
// GET /relay/transfer/verify/:reference
func (actions *Actions) VerifyTransfer(c *gin.Context) {
	record := model.TransferRecord{
		TxRef:    c.Param("reference"),
		Status:   string(model.PaymentSuccess),
		Amount:   "1000",
		Currency: "ETB",
	}
	actions.demoEnvelope(c, operationTransferVerify, msgTransferVerified, record)
}

func (actions *Actions) demoEnvelope(c *gin.Context, operation, message string, record model.TransferRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		actions.backendError(c, operation, err)
		return
	}
	monitor.RelayRequests.WithLabelValues(operation, "demo").Inc()
	c.JSON(OK, model.Envelope{
		Message: message,
		Status:  model.StatusSuccess,
		Data:    data,
	})
}
