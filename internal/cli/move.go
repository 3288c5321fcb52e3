package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move NAME POSITION",
		Short: "Move an entry to a new position in the list",
		Long: `Moves an entry to the given 1-based position. Positions past either
end clamp to the first or last slot.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			pos, err := strconv.Atoi(args[1])
			if err != nil || pos < 1 {
				return fmt.Errorf("position must be a positive number, got %q", args[1])
			}
			v, passphrase, err := a.openVault()
			if err != nil {
				return err
			}
			if err := v.Move(name, pos-1); err != nil {
				return err
			}
			if err := a.saveVault(v, passphrase); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %q to position %d\n", name, pos)
			return nil
		},
	}
}
