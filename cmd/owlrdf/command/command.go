// Package command implements the owlrdf command line tools.
package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlrdf/consumer"
)

const (
	KeyStrict     = "translate.strict"
	KeyMaxSweeps  = "translate.max_sweeps"
	KeyBlankNodes = "translate.blank_nodes"
	KeyLoadFormat = "load.format"
)

const (
	flagStrict     = "strict"
	flagMaxSweeps  = "max_sweeps"
	flagBlankNodes = "blank_nodes"
	flagLoadFormat = "load_format"
)

func getContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		select {
		case <-ch:
		case <-ctx.Done():
		}
		signal.Stop(ch)
		cancel()
	}()
	return ctx, cancel
}

// registerTranslateFlags adds the session flags and binds them to their
// configuration keys.
func registerTranslateFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(flagStrict, false, "reject constructs that are not fully typed")
	cmd.Flags().Int(flagMaxSweeps, 0, "maximal number of sweeps over deferred triples (0 means no limit)")
	cmd.Flags().String(flagBlankNodes, "preserve", `blank node policy ("preserve", "shared", "fresh")`)
	var names []string
	for _, f := range quad.Formats() {
		if f.Reader != nil {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	cmd.Flags().String(flagLoadFormat, "", `document format to use instead of auto-detection ("`+strings.Join(names, `", "`)+`")`)
}

func bindTranslateFlags(cmd *cobra.Command) {
	viper.BindPFlag(KeyStrict, cmd.Flags().Lookup(flagStrict))
	viper.BindPFlag(KeyMaxSweeps, cmd.Flags().Lookup(flagMaxSweeps))
	viper.BindPFlag(KeyBlankNodes, cmd.Flags().Lookup(flagBlankNodes))
	viper.BindPFlag(KeyLoadFormat, cmd.Flags().Lookup(flagLoadFormat))
}

// sessionConfig builds the session configuration from the configuration keys.
func sessionConfig() (consumer.Config, error) {
	policy, err := consumer.ParseBlankNodePolicy(viper.GetString(KeyBlankNodes))
	if err != nil {
		return consumer.Config{}, err
	}
	n := viper.GetInt(KeyMaxSweeps)
	if n < 0 {
		return consumer.Config{}, fmt.Errorf("%s must not be negative", KeyMaxSweeps)
	}
	return consumer.Config{
		Strict:     viper.GetBool(KeyStrict),
		MaxSweeps:  n,
		BlankNodes: policy,
	}, nil
}
