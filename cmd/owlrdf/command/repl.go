package command

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/owlrdf/internal/repl"
)

func NewReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Stream triples interactively and parse class expressions.",
		PreRun: func(cmd *cobra.Command, args []string) {
			bindTranslateFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sessionConfig()
			if err != nil {
				return err
			}
			timeout, _ := cmd.Flags().GetDuration("timeout")
			ctx, cancel := getContext()
			defer cancel()
			return repl.Repl(ctx, cfg, timeout)
		},
	}
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "elapsed time until :load or :end times out")
	registerTranslateFlags(cmd)
	return cmd
}
