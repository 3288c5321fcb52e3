package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authvault/internal/prompt"
	"github.com/dmitrymomot/authvault/pkg/vaultcrypt"
)

func newCryptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crypt",
		Short: "Encrypt or decrypt arbitrary text with a passphrase",
		Long: `Standalone encryption using the vault's envelope format: notes,
recovery codes, anything small enough to paste. The vault file is not
touched. Text is taken from the argument or, when omitted, from stdin.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "encrypt [TEXT]",
			Short: "Encrypt text into a portable envelope",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := textArg(cmd, args)
				if err != nil {
					return err
				}
				passphrase, err := prompt.PasswordConfirmed("Enter passphrase: ", "Confirm passphrase: ", a.cfg.Passphrase)
				if err != nil {
					return err
				}
				envelope, err := vaultcrypt.Encrypt(text, passphrase)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), envelope)
				return nil
			},
		},
		&cobra.Command{
			Use:   "decrypt [ENVELOPE]",
			Short: "Decrypt an envelope back to plaintext",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				envelope, err := textArg(cmd, args)
				if err != nil {
					return err
				}
				passphrase, err := prompt.Password("Enter passphrase: ", a.cfg.Passphrase)
				if err != nil {
					return err
				}
				plaintext, err := vaultcrypt.Decrypt(envelope, passphrase)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), plaintext)
				return nil
			},
		},
	)

	return cmd
}

// textArg returns the positional argument, falling back to stdin so the
// command composes with pipes.
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input: pass TEXT as an argument or pipe it on stdin")
	}
	return text, nil
}
