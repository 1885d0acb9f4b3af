package cmd

import (
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"gitlab.com/paramountdax-exchange/psp_dashboard/conv"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

var payment model.PaymentInitRequest
var paymentAmount string
var initializeJSON bool

func init() {
	f := initializeCmd.Flags()
	f.StringVar(&paymentAmount, "amount", "", "amount to charge")
	f.StringVar(&payment.Currency, "currency", "ETB", "currency of the amount")
	f.StringVar(&payment.Email, "email", "", "payer email")
	f.StringVar(&payment.FirstName, "first-name", "", "payer first name")
	f.StringVar(&payment.LastName, "last-name", "", "payer last name")
	f.StringVar(&payment.PhoneNumber, "phone", "", "payer phone number")
	f.StringVar(&payment.TxRef, "tx-ref", "", "transaction reference (generated when empty)")
	f.StringVar(&payment.CallbackURL, "callback-url", "", "URL called by the provider when the payment completes")
	f.StringVar(&payment.ReturnURL, "return-url", "", "URL the payer is sent back to")
	f.StringVar(&payment.Description, "description", "", "payment description")
	f.BoolVar(&initializeJSON, "json", false, "print the whole provider answer instead of the checkout url")
	_ = initializeCmd.MarkFlagRequired("amount")
	_ = initializeCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Initialize a hosted checkout through a running relay and print the checkout url",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := payment
		req.Amount = model.Amount(paymentAmount)
		if !req.Amount.IsNumeric() || !conv.IsPositiveAmount(paymentAmount) {
			return errors.Errorf("amount %q is not a positive number", paymentAmount)
		}
		if req.TxRef == "" {
			req.TxRef = "tx-" + xid.New().String()
		}
		res, err := newRelayClient().InitializePayment(commandContext(cmd), req)
		if err != nil {
			return err
		}
		if initializeJSON {
			return printJSON(res.Raw)
		}
		return printCheckout(res)
	},
}
