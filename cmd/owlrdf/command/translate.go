package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlrdf/clog"
	"github.com/cayleygraph/owlrdf/consumer"
	"github.com/cayleygraph/owlrdf/internal"
	"github.com/cayleygraph/owlrdf/owl"
)

const (
	flagOutput        = "output"
	flagStats         = "stats"
	flagFailOnResidue = "fail_on_residue"
)

// ErrResidue is returned by translate with --fail_on_residue when triples
// are left untranslated.
var ErrResidue = errors.New("triples left untranslated")

func NewTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <document>...",
		Short: "Translate RDF documents into OWL axioms in functional-style syntax.",
		Long: "Translate RDF documents into OWL axioms in functional-style syntax.\n\n" +
			"Each document is translated in its own session. Documents may be local files " +
			"or http(s) URLs, optionally compressed with gzip, bzip2 or zstd.",
		Args: cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			bindTranslateFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sessionConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if path, _ := cmd.Flags().GetString(flagOutput); path != "" && path != "-" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			stats, _ := cmd.Flags().GetBool(flagStats)
			failOnResidue, _ := cmd.Flags().GetBool(flagFailOnResidue)

			ctx, cancel := getContext()
			defer cancel()
			residue := 0
			for _, path := range args {
				start := time.Now()
				res, err := internal.Load(ctx, path, viper.GetString(KeyLoadFormat), cfg)
				if err != nil {
					return err
				}
				clog.Infof("translated %q in %v", path, time.Since(start))
				if err = owl.WriteFunctional(out, &res.Ontology, res.Axioms); err != nil {
					return err
				}
				printResidue(cmd.ErrOrStderr(), res)
				if stats {
					fmt.Fprintf(cmd.ErrOrStderr(), "\n%s:\n\n", path)
					if err = WriteStats(cmd.ErrOrStderr(), res); err != nil {
						return err
					}
				}
				residue += len(res.Residue) + res.Dropped
			}
			if failOnResidue && residue != 0 {
				return fmt.Errorf("%w: %d", ErrResidue, residue)
			}
			return nil
		},
	}
	registerTranslateFlags(cmd)
	cmd.Flags().StringP(flagOutput, "o", "", `file to write the axioms to ("-" for stdout)`)
	cmd.Flags().Bool(flagStats, false, "print axiom and residue statistics to stderr")
	cmd.Flags().Bool(flagFailOnResidue, false, "exit with an error if any triple is left untranslated")
	return cmd
}

func printResidue(w io.Writer, res *consumer.Result) {
	for _, u := range res.Residue {
		fmt.Fprintln(w, residueColor(u.Error()))
	}
}
