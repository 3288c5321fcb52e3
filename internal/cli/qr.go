package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authvault/pkg/provision"
)

func newQRCmd(a *app) *cobra.Command {
	var (
		output string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "qr NAME",
		Short: "Write an enrollment QR code for an entry",
		Long: `Renders the entry's otpauth:// URI as a QR code PNG, ready to scan
with a phone authenticator. The image encodes the seed, so it is
written with owner-only permissions; delete it after scanning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := a.openVault()
			if err != nil {
				return err
			}
			entry, err := v.Get(args[0])
			if err != nil {
				return err
			}
			uri, err := provision.URI(provisionParams(entry))
			if err != nil {
				return err
			}
			png, err := provision.QRPNG(uri, size)
			if err != nil {
				return err
			}

			if output == "" {
				output = entry.Name + ".png"
			}
			if err := os.WriteFile(output, png, 0o600); err != nil {
				return fmt.Errorf("writing QR code: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote QR code for %q to %s\n", entry.Name, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default NAME.png)")
	cmd.Flags().IntVar(&size, "size", 256, "image size in pixels")

	return cmd
}
