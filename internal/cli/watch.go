package cli

import (
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Open the interactive live-code view",
		Long: `Opens the full-screen view with live codes for every entry, the same
one a bare 'authvault' launches. Codes refresh in place, entries can be
reordered, and the highlighted code is a keypress away from the
clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWatch()
		},
	}
}
