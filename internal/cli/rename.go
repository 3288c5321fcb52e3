package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldName, newName := args[0], args[1]
			v, passphrase, err := a.openVault()
			if err != nil {
				return err
			}
			if err := v.Rename(oldName, newName); err != nil {
				return err
			}
			if err := a.saveVault(v, passphrase); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", oldName, newName)
			return nil
		},
	}
}
