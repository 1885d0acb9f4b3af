package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var banksJSON bool

func init() {
	banksCmd.Flags().BoolVar(&banksJSON, "json", false, "print the bank list as JSON")
	rootCmd.AddCommand(banksCmd)
}

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the banks supported by the payment provider through a running relay",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		banks, err := newRelayClient().GetBanks(commandContext(cmd))
		if err != nil {
			return err
		}
		if banksJSON {
			return printJSON(banks)
		}
		w := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSWIFT\tCURRENCY\tACCT LENGTH")
		for _, b := range banks {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", b.ID, b.Name, b.Swift, b.Currency, b.AcctLength)
		}
		return w.Flush()
	},
}
