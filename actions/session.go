package actions

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

const lastPaymentKey = "last_payment"

// the record is stored as a JSON string so the cookie codec needs no gob registration
func (actions *Actions) saveLastPayment(c *gin.Context, record model.PaymentRecord) error {
	// a cookie signed with an older secret still yields a fresh session
	session, err := actions.store.Get(c.Request, actions.cfg.Session.Name)
	if session == nil {
		return errors.Wrap(err, "unable to open session")
	}
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "unable to encode payment record")
	}
	session.Values[lastPaymentKey] = string(data)
	return session.Save(c.Request, c.Writer)
}

func (actions *Actions) loadLastPayment(c *gin.Context) (model.PaymentRecord, bool) {
	var record model.PaymentRecord
	session, err := actions.store.Get(c.Request, actions.cfg.Session.Name)
	if err != nil {
		return record, false
	}
	raw, ok := session.Values[lastPaymentKey].(string)
	if !ok || raw == "" {
		return record, false
	}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		l := getlog(c)
		l.Warn().Err(err).Str("section", "session").Msg("Unable to decode last payment")
		return record, false
	}
	return record, true
}

func (actions *Actions) clearSession(c *gin.Context) error {
	session, err := actions.store.Get(c.Request, actions.cfg.Session.Name)
	if session == nil {
		return errors.Wrap(err, "unable to open session")
	}
	session.Options.MaxAge = -1
	return session.Save(c.Request, c.Writer)
}
