package cmd

import (
	"github.com/spf13/cobra"
)

var verifyJSON bool

func init() {
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "print the provider answer unchanged")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify <reference>",
	Short: "Verify a transaction by reference through a running relay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newRelayClient().VerifyTransaction(commandContext(cmd), args[0])
		if err != nil {
			return err
		}
		if verifyJSON {
			return printJSON(res.Raw)
		}
		return printVerification(res)
	},
}
