package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authvault/internal/vaultfile"
	"github.com/dmitrymomot/authvault/pkg/vault"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new empty vault",
		Long: `Creates an empty encrypted vault file. The passphrase entered here
protects every seed added later, so pick a strong one: it is the only
thing standing between the file and your accounts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if vaultfile.Exists(a.file) {
				return fmt.Errorf("vault already exists at %s", a.file)
			}
			passphrase, err := a.passphrase(true)
			if err != nil {
				return err
			}
			if err := a.saveVault(vault.New(), passphrase); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created vault at %s\n", a.file)
			return nil
		},
	}
}
