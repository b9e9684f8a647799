package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jparise/zoned/internal/convert"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [<value>...]",
	Short: "Parse zoned date-time strings",
	Long: `Parse values in the "MM/dd/yyyy hh:mm a z" pattern and print the
instant and the zone identifier the zone token resolved to.

Values are read from standard input, one per line, when none are given.`,
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inputs, err := readInputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	c := convert.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize(), newResolver())
	return c.Run(ctx, &convert.Options{
		Inputs: inputs,
		Mode:   convert.ModeParse,
		Jobs:   jobs,
	})
}
