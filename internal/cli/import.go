package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authvault/internal/prompt"
)

func newImportCmd(a *app) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import entries from an encrypted backup",
		Long: `Imports entries from a backup produced by 'authvault export'. Entries
whose names are already present are skipped unless --replace is given,
which swaps the whole vault for the backup's contents. Pass "-" to read
the backup from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				envelope []byte
				err      error
			)
			if args[0] == "-" {
				envelope, err = io.ReadAll(cmd.InOrStdin())
			} else {
				envelope, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading backup: %w", err)
			}

			v, passphrase, err := a.openVault()
			if err != nil {
				return err
			}
			backupPass, err := prompt.Password("Enter backup passphrase: ", a.cfg.Passphrase)
			if err != nil {
				return err
			}
			added, err := v.Import(string(envelope), backupPass, replace)
			if err != nil {
				return err
			}
			if err := a.saveVault(v, passphrase); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries (%d total)\n", added, v.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "replace the vault contents instead of merging")

	return cmd
}
