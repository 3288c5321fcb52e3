// Package cli wires the cobra command tree. Every command resolves the
// vault file and passphrase the same way: the --file flag overrides
// AUTHVAULT_FILE, and AUTHVAULT_PASSPHRASE suppresses interactive prompts
// for scripting.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authvault/internal/config"
	"github.com/dmitrymomot/authvault/internal/logger"
	"github.com/dmitrymomot/authvault/internal/prompt"
	"github.com/dmitrymomot/authvault/internal/tui"
	"github.com/dmitrymomot/authvault/internal/vaultfile"
	"github.com/dmitrymomot/authvault/pkg/vault"
)

var version = "dev" // set by the linker

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// The error is already printed by cobra.
		os.Exit(1)
	}
}

// app carries the state shared by all commands of one invocation.
type app struct {
	cfg  config.Config
	log  *slog.Logger
	file string
}

// NewRootCmd creates a fresh, fully wired command tree. Tests build their
// own instances for isolation.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "authvault",
		Short: "authvault is an offline TOTP authenticator vault.",
		Long: `authvault keeps authenticator seeds in a single password-encrypted
file and turns them into the same rolling codes your phone app shows.
Everything happens locally: no account, no sync, no network.

Running without a subcommand launches the interactive live-code view.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWatch()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.file, "file", "f", "",
		"vault file (default $AUTHVAULT_FILE or ~/.authvault/vault.enc)")

	cmd.AddCommand(
		newInitCmd(a),
		newAddCmd(a),
		newListCmd(a),
		newCodeCmd(a),
		newRemoveCmd(a),
		newRenameCmd(a),
		newMoveCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newURICmd(a),
		newQRCmd(a),
		newCryptCmd(a),
		newWatchCmd(a),
	)

	return cmd
}

// setup loads configuration and builds the logger. Runs before every
// command.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.file == "" {
		a.file = cfg.File
	}
	a.log = logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
	)
	return nil
}

// passphrase resolves the vault passphrase: env override first, then an
// interactive prompt. Confirm is set when a new passphrase is being
// established.
func (a *app) passphrase(confirm bool) (string, error) {
	if confirm {
		return prompt.PasswordConfirmed("Enter passphrase: ", "Confirm passphrase: ", a.cfg.Passphrase)
	}
	return prompt.Password("Enter passphrase: ", a.cfg.Passphrase)
}

// openVault loads the vault file, returning the vault together with the
// passphrase that opened it so mutations can be saved without re-prompting.
func (a *app) openVault() (*vault.Vault, string, error) {
	if !vaultfile.Exists(a.file) {
		return nil, "", fmt.Errorf("no vault at %s (run 'authvault init' first)", a.file)
	}
	passphrase, err := a.passphrase(false)
	if err != nil {
		return nil, "", err
	}
	v, err := vaultfile.Load(a.file, passphrase)
	if err != nil {
		return nil, "", err
	}
	a.log.Debug("vault loaded", slog.String("path", a.file), slog.Int("entries", v.Len()))
	return v, passphrase, nil
}

func (a *app) saveVault(v *vault.Vault, passphrase string) error {
	if err := vaultfile.Save(a.file, v, passphrase); err != nil {
		return err
	}
	a.log.Debug("vault saved", slog.String("path", a.file), slog.Int("entries", v.Len()))
	return nil
}

func (a *app) runWatch() error {
	v, passphrase, err := a.openVault()
	if err != nil {
		return err
	}
	return tui.Run(v, a.file, passphrase)
}
