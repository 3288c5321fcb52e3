package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authvault/internal/prompt"
	"github.com/dmitrymomot/authvault/pkg/seed"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		issuer   string
		seedFlag string
		generate bool
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an account to the vault",
		Long: `Adds an account. The Base32 seed is read from a hidden prompt so it
never lands in shell history; pass --seed only in scripts. With
--generate a fresh random seed is created instead, ready to be enrolled
on other devices via 'authvault qr'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			var secret string
			switch {
			case generate && seedFlag != "":
				return fmt.Errorf("--seed and --generate are mutually exclusive")
			case generate:
				generated, err := seed.Generate()
				if err != nil {
					return err
				}
				secret = generated
			case seedFlag != "":
				secret = seedFlag
			default:
				entered, err := prompt.Password("Enter seed: ", "")
				if err != nil {
					return fmt.Errorf("reading seed: %w (or pass --seed / --generate)", err)
				}
				secret = entered
			}

			v, passphrase, err := a.openVault()
			if err != nil {
				return err
			}
			if _, err := v.Add(name, issuer, secret); err != nil {
				return err
			}
			if err := a.saveVault(v, passphrase); err != nil {
				return err
			}

			if generate {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q with a generated seed - run 'authvault qr %s' to enroll other devices\n", name, name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&issuer, "issuer", "i", "", "issuer shown in authenticator apps")
	cmd.Flags().StringVar(&seedFlag, "seed", "", "Base32 seed (prompted when omitted)")
	cmd.Flags().BoolVar(&generate, "generate", false, "generate a fresh random seed")

	return cmd
}
