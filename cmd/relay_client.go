package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/paramountdax-exchange/psp_dashboard/client"
	"gitlab.com/paramountdax-exchange/psp_dashboard/config"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

var output io.Writer = os.Stdout

func newRelayClient() *client.Client {
	cfg := config.LoadConfig(viper.GetViper())
	return client.New(client.Config{
		BaseURL: cfg.Client.BaseURL,
		Prefix:  cfg.Relay.Prefix,
		Timeout: cfg.Client.Timeout,
	})
}

func printJSON(v interface{}) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, string(data))
	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// printCheckout prints the hosted checkout link of an initialize answer
func printCheckout(res *client.Result) error {
	var checkout model.CheckoutData
	if err := res.DecodeData(&checkout); err != nil {
		return errors.Wrap(err, "unable to decode checkout data")
	}
	if checkout.CheckoutURL == "" {
		return errors.Errorf("no checkout url in answer: %s", res.Message)
	}
	_, err := fmt.Fprintln(output, checkout.CheckoutURL)
	return err
}

// printVerification prints a one line summary of a verify answer.
// Declared failures carry no data and are printed with the provider message.
func printVerification(res *client.Result) error {
	var body struct {
		Data *model.VerificationResult `json:"data"`
	}
	if err := res.Decode(&body); err != nil {
		return errors.Wrap(err, "unable to decode verification")
	}
	if body.Data == nil {
		_, err := fmt.Fprintf(output, "%s: %s\n", res.Status, res.Message)
		return err
	}
	v := body.Data
	_, err := fmt.Fprintf(output, "%s: %s %s ref=%s tx_ref=%s\n", v.Status, v.Amount, v.Currency, v.Reference, v.TxRef)
	return err
}
