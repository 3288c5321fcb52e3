package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authvault/internal/prompt"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the vault as an encrypted backup",
		Long: `Exports every entry as a single encrypted text blob. The backup gets
its own passphrase, prompted twice, so it can be stored or shared on a
different trust level than the vault itself.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := a.openVault()
			if err != nil {
				return err
			}
			backupPass, err := prompt.PasswordConfirmed("Enter backup passphrase: ", "Confirm backup passphrase: ", a.cfg.Passphrase)
			if err != nil {
				return err
			}
			envelope, err := v.Export(backupPass)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), envelope)
				return nil
			}
			if err := os.WriteFile(output, []byte(envelope+"\n"), 0o600); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", v.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the backup to a file instead of stdout")

	return cmd
}
