package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jparise/zoned/internal/convert"
	"github.com/spf13/cobra"
)

var zone string

var formatCmd = &cobra.Command{
	Use:   "format [--zone <token>] <time>...",
	Short: "Format times in the zoned date-time pattern",
	Long: `Format times in the "MM/dd/yyyy hh:mm a z" pattern.

<time> can be:
  YYYY-MM-DD            Midnight in the target zone
  YYYY-MM-DD HH:MM:SS   Wall-clock time in the target zone
  RFC3339               An instant, converted to the target zone

The zone token written is the identifier of the target zone, so with
--utc-id Etc/UTC the default zone formats as "Etc/UTC".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&zone, "zone", "z", "",
		"target zone token (default: UTC)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := convert.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize(), newResolver())
	return c.Run(ctx, &convert.Options{
		Inputs: args,
		Mode:   convert.ModeFormat,
		Zone:   zone,
		Jobs:   jobs,
	})
}
