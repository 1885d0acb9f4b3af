package actions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

const verifiedBody = `{"message":"Payment details","status":"success","data":{"first_name":"A","last_name":"B","email":"a@b.co","currency":"ETB","amount":100,"charge":3.5,"mode":"test","method":"test","type":"API","status":"success","reference":"APabc","tx_ref":"tx-123","customization":{"title":"Payment","description":"Online payment"},"meta":null,"created_at":"2024-01-15T10:00:00.000000Z","updated_at":"2024-01-15T10:00:05.000000Z"}}`

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) model.PaymentResult {
	var result model.PaymentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func sessionCookie(t *testing.T, r http.Handler) map[string]string {
	w := do(r, http.MethodPost, "/relay/initialize", `{"amount":"100","currency":"ETB","email":"a@b.co","tx_ref":"tx-123","description":"Coffee"}`, nil)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return map[string]string{"Cookie": cookies[0].Name + "=" + cookies[0].Value}
}

func TestPaymentResult(t *testing.T) {
	t.Run("No callback and no session is not found", func(t *testing.T) {
		r, _ := setup(t, http.StatusOK, verifiedBody, false)
		w := do(r, http.MethodGet, "/payment-result", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Session fallback stays pending when verification fails", func(t *testing.T) {
		r, up := setup(t, http.StatusOK, `{"status":"success"}`, false)
		header := sessionCookie(t, r)

		up.lock.Lock()
		up.status = http.StatusBadRequest
		up.body = `{"message":"Transaction not found","status":"failed","data":null}`
		up.lock.Unlock()

		w := do(r, http.MethodGet, "/payment-result", "", header)
		require.Equal(t, http.StatusOK, w.Code)
		result := decodeResult(t, w)
		require.Equal(t, model.PaymentPending, result.Status)
		require.False(t, result.Verified)
		require.Equal(t, "tx-123", result.TxRef)
		require.Equal(t, "session", result.Source)
		require.Equal(t, "/transaction/verify/tx-123", up.lastURI)
	})

	t.Run("Session fallback takes the verified status", func(t *testing.T) {
		r, up := setup(t, http.StatusOK, `{"status":"success"}`, false)
		header := sessionCookie(t, r)

		up.lock.Lock()
		up.body = verifiedBody
		up.lock.Unlock()

		result := decodeResult(t, do(r, http.MethodGet, "/payment-result", "", header))
		require.Equal(t, model.PaymentSuccess, result.Status)
		require.True(t, result.Verified)
		require.Equal(t, model.Amount("100"), result.Amount)
		require.NotNil(t, result.Verification)
		require.Equal(t, "APabc", result.Verification.Reference)
	})

	t.Run("Callback parameters are used and then verified", func(t *testing.T) {
		r, up := setup(t, http.StatusOK, verifiedBody, false)
		result := decodeResult(t, do(r, http.MethodGet, "/payment-result?trx_ref=tx-123&ref_id=APabc&status=pending", "", nil))
		require.Equal(t, "callback", result.Source)
		require.Equal(t, "APabc", result.RefID)
		require.Equal(t, model.PaymentSuccess, result.Status)
		require.Equal(t, "ETB", result.Currency)
		require.Equal(t, "/transaction/verify/tx-123", up.lastURI)
	})

	t.Run("Unreachable provider keeps the callback status", func(t *testing.T) {
		r, up := setup(t, http.StatusOK, `not json`, false)
		result := decodeResult(t, do(r, http.MethodGet, "/payment-result?trx_ref=tx-9&ref_id=r&status=failed", "", nil))
		require.Equal(t, model.PaymentFailed, result.Status)
		require.False(t, result.Verified)
		require.Equal(t, 1, up.calls)
	})
}
