package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List vault entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := a.openVault()
			if err != nil {
				return err
			}
			entries := v.List()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "vault is empty - run 'authvault add' to enroll an account")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "POS\tNAME\tISSUER\tADDED")
			for i, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, e.Name, e.Issuer, e.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}
