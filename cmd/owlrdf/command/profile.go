package command

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/owlrdf/clog"
)

// Profile holds the CPU and heap profile destinations of a command run.
type Profile struct {
	cpu     *os.File
	memPath string
}

// RegisterProfileFlags adds the --cpuprofile and --memprofile flags.
func RegisterProfileFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("cpuprofile", "", "path to output the CPU profile")
	cmd.PersistentFlags().String("memprofile", "", "path to output the heap profile")
}

// StartProfile starts CPU profiling if requested.
func StartProfile(cmd *cobra.Command) (*Profile, error) {
	p := &Profile{}
	if f := cmd.Flag("memprofile"); f != nil {
		p.memPath = f.Value.String()
	}
	if f := cmd.Flag("cpuprofile"); f != nil && f.Value.String() != "" {
		path := f.Value.String()
		out, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("could not open CPU profile file %s: %w", path, err)
		}
		if err = pprof.StartCPUProfile(out); err != nil {
			out.Close()
			return nil, err
		}
		p.cpu = out
	}
	return p, nil
}

// Finish stops CPU profiling and writes the heap profile.
func (p *Profile) Finish() {
	if p == nil {
		return
	}
	if p.cpu != nil {
		pprof.StopCPUProfile()
		p.cpu.Close()
	}
	if p.memPath != "" {
		f, err := os.Create(p.memPath)
		if err != nil {
			clog.Errorf("could not open memory profile file %s: %v", p.memPath, err)
			return
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			clog.Errorf("could not write memory profile file %s: %v", p.memPath, err)
		}
	}
}
