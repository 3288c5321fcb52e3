package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authvault/pkg/provision"
	"github.com/dmitrymomot/authvault/pkg/vault"
)

func newURICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uri NAME",
		Short: "Print the otpauth:// enrollment URI for an entry",
		Long: `Prints the otpauth:// URI for one entry so it can be enrolled in
another authenticator app. The URI contains the seed in the clear, so
treat the output like the seed itself.`,
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
			fmt.Fprintln(cmd.OutOrStdout(), uri)
			return nil
		},
	}
}

// provisionParams maps a vault entry onto enrollment parameters. Entries
// without an issuer fall back to the application name so authenticator
// apps still group them under a label.
func provisionParams(entry vault.Entry) provision.URIParams {
	issuer := entry.Issuer
	if issuer == "" {
		issuer = "authvault"
	}
	return provision.URIParams{
		Seed:    entry.Seed,
		Account: entry.Name,
		Issuer:  issuer,
	}
}
