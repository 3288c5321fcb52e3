package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authvault/pkg/totp"
)

func newCodeCmd(a *app) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "code NAME",
		Short: "Print the current code for an entry",
		Long: `Prints the current six-digit code for one entry. The bare form writes
just the code to stdout so it can be piped. With --follow the line is
redrawn every second with a countdown until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			v, _, err := a.openVault()
			if err != nil {
				return err
			}

			if !follow {
				code, err := v.Code(name, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), code)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			out := cmd.OutOrStdout()
			for {
				now := time.Now()
				code, err := v.Code(name, now)
				if err != nil {
					fmt.Fprintln(out)
					return err
				}
				secondsLeft := int(totp.Remaining(now, totp.DefaultPeriod).Seconds())
				dots := min((secondsLeft+2)/3, 10)
				fmt.Fprintf(out, "\r%s:  %s  %s%s",
					now.Format("15:04:05"),
					totp.FormatCode(code),
					strings.Repeat(".", dots),
					strings.Repeat(" ", 10-dots))
				select {
				case <-ctx.Done():
					fmt.Fprintln(out)
					return nil
				case <-ticker.C:
				}
			}
		},
	}

	cmd.Flags().BoolVar(&follow, "follow", false, "redraw the code every second until interrupted")

	return cmd
}
