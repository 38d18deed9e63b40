package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlrdf/expression"
	"github.com/cayleygraph/owlrdf/internal"
)

func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <document> <expression>...",
		Short: "Parse class expressions against the entities of a translated document.",
		Args:  cobra.MinimumNArgs(2),
		PreRun: func(cmd *cobra.Command, args []string) {
			bindTranslateFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sessionConfig()
			if err != nil {
				return err
			}
			ctx, cancel := getContext()
			defer cancel()
			res, err := internal.Load(ctx, args[0], viper.GetString(KeyLoadFormat), cfg)
			if err != nil {
				return err
			}
			p := expression.NewClassExpressionParser(expression.NewOntologyChecker(res.Axioms))
			for _, s := range args[1:] {
				c, err := p.Parse(s)
				if err != nil {
					return fmt.Errorf("%q: %w", s, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	registerTranslateFlags(cmd)
	return cmd
}
