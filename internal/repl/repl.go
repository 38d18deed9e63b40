// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package repl is an interactive translation session. Triples are streamed
// one at a time, the model is ended on request, and class expressions are
// parsed against the axioms translated so far.
package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/cayleygraph/owlrdf/clog"
	"github.com/cayleygraph/owlrdf/consumer"
	"github.com/cayleygraph/owlrdf/expression"
	"github.com/cayleygraph/owlrdf/internal"
	"github.com/cayleygraph/owlrdf/owl"
)

const (
	ps1 = "owlrdf> "

	history = ".owlrdf_history"
)

var (
	axiomColor = color.New(color.FgGreen).SprintFunc()
	exprColor  = color.New(color.FgCyan).SprintFunc()
	errColor   = color.New(color.FgRed).SprintFunc()
	warnColor  = color.New(color.FgYellow).SprintFunc()
)

const help = `Commands:
	:a <triple>            stream a triple in N-Triples syntax
	:load <path> [format]  stream every triple of a document
	:end                   end the model and sweep the remaining triples
	:axioms                list the axioms translated so far
	:reset                 start a new session
	:strict [t|f]          show or set strict mode, resetting the session
	:debug [t|f]           enable or disable debug logging
	help                   this help
	exit                   exit
Any other line is parsed as a class expression, such as "A and (p some B)".
`

// Interpreter executes REPL lines against one translation session.
type Interpreter struct {
	cfg     consumer.Config
	ses     *consumer.Session
	res     *consumer.Result
	timeout time.Duration
	out     io.Writer
}

// NewInterpreter creates an interpreter writing to out. A non-zero timeout
// bounds :end and :load.
func NewInterpreter(cfg consumer.Config, timeout time.Duration, out io.Writer) *Interpreter {
	in := &Interpreter{cfg: cfg, timeout: timeout, out: out}
	in.reset()
	return in
}

func (in *Interpreter) reset() {
	in.ses = consumer.NewSession(in.cfg)
	in.res = nil
}

func (in *Interpreter) context(ctx context.Context) (context.Context, context.CancelFunc) {
	if in.timeout > 0 {
		return context.WithTimeout(ctx, in.timeout)
	}
	return context.WithCancel(ctx)
}

func (in *Interpreter) printf(format string, args ...interface{}) {
	fmt.Fprintf(in.out, format, args...)
}

// Exec runs one line. It returns io.EOF when the line asks to exit.
func (in *Interpreter) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return nil
	}
	cmd, args := splitLine(line)
	args = strings.TrimSpace(args)
	switch cmd {
	case "exit":
		return io.EOF
	case "help":
		in.printf("%s", help)
	case ":debug":
		debug, ok := parseBool(args)
		if !ok {
			return fmt.Errorf("cannot parse %q as a valid boolean - acceptable values: 't'|'true' or 'f'|'false'", args)
		}
		if debug {
			clog.SetV(2)
		} else {
			clog.SetV(0)
		}
		in.printf("Debug set to %t\n", debug)
	case ":strict":
		if args != "" {
			strict, ok := parseBool(args)
			if !ok {
				return fmt.Errorf("cannot parse %q as a valid boolean", args)
			}
			in.cfg.Strict = strict
			in.reset()
		}
		in.printf("Strict mode is %t\n", in.cfg.Strict)
	case ":reset":
		in.reset()
		in.printf("New session\n")
	case ":a":
		q, err := nquads.Parse(args)
		if err != nil {
			return fmt.Errorf("not a valid triple: %w", err)
		}
		return in.add(q)
	case ":load":
		return in.load(ctx, args)
	case ":end":
		return in.end(ctx)
	case ":axioms":
		for _, ax := range in.axioms() {
			in.printf("%s\n", axiomColor(ax.String()))
		}
	default:
		if cmd[0] == ':' {
			return fmt.Errorf("unknown command: %q", cmd)
		}
		return in.parse(line)
	}
	return nil
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "t", "":
		return true, true
	case "f":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}

func (in *Interpreter) axioms() []*owl.Axiom {
	if in.res != nil {
		return in.res.Axioms
	}
	return in.ses.Axioms()
}

// add streams q and prints the axioms it produced.
func (in *Interpreter) add(q quad.Quad) error {
	if in.res != nil {
		return fmt.Errorf("model already ended, use :reset to start over")
	}
	before := len(in.ses.Axioms())
	streamed := in.ses.Stats().Streamed
	if err := in.ses.HandleTriple(q); err != nil {
		return err
	}
	if in.ses.Stats().Streamed == streamed {
		in.printf("%s\n", warnColor("deferred"))
		return nil
	}
	for _, ax := range in.ses.Axioms()[before:] {
		in.printf("%s\n", axiomColor(ax.String()))
	}
	return nil
}

func (in *Interpreter) load(ctx context.Context, args string) error {
	if in.res != nil {
		return fmt.Errorf("model already ended, use :reset to start over")
	}
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 2 {
		return fmt.Errorf("usage: :load <path> [format]")
	}
	typ := ""
	if len(fields) == 2 {
		typ = fields[1]
	}
	ctx, cancel := in.context(ctx)
	defer cancel()
	rc, err := internal.Open(ctx, fields[0])
	if err != nil {
		return err
	}
	defer rc.Close()
	qr, err := internal.NewReader(rc, fields[0], typ)
	if err != nil {
		return err
	}
	defer qr.Close()
	n := 0
	for {
		q, err := qr.ReadQuad()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = in.ses.HandleTriple(q); err != nil {
			return err
		}
		n++
	}
	st := in.ses.Stats()
	in.printf("Read %d triples, %d axioms, %d triples deferred\n", n, len(in.ses.Axioms()), st.Deferred)
	return nil
}

func (in *Interpreter) end(ctx context.Context) error {
	if in.res != nil {
		return fmt.Errorf("model already ended, use :reset to start over")
	}
	ctx, cancel := in.context(ctx)
	defer cancel()
	start := time.Now()
	res, err := in.ses.EndModel(ctx)
	if res != nil {
		in.res = res
	}
	if err != nil {
		return err
	}
	for _, u := range res.Residue {
		in.printf("%s\n", errColor(u.Error()))
	}
	in.printf("-----------\n%d axioms, %d residue, %d dropped, %d sweeps\nElapsed time: %g ms\n",
		len(res.Axioms), len(res.Residue), res.Dropped, res.Stats.Sweeps,
		float64(time.Since(start).Microseconds())/1e3)
	return nil
}

func (in *Interpreter) parse(line string) error {
	p := expression.NewClassExpressionParser(expression.NewOntologyChecker(in.axioms()))
	c, err := p.Parse(line)
	if err != nil {
		return err
	}
	in.printf("%s\n", exprColor(c.String()))
	return nil
}

// Repl runs an interactive session on the terminal.
func Repl(ctx context.Context, cfg consumer.Config, timeout time.Duration) error {
	term, err := terminal(history)
	if os.IsNotExist(err) {
		fmt.Printf("creating new history file: %q\n", history)
	}
	defer persist(term, history)

	in := NewInterpreter(cfg, timeout, os.Stdout)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line, err := term.Prompt(ps1)
		if err != nil {
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}
		term.AppendHistory(line)
		if err := in.Exec(ctx, line); err == io.EOF {
			return nil
		} else if err != nil {
			fmt.Println(errColor("Error: "), err)
		}
	}
}

// Splits a line into a command and its arguments
// e.g. ":a b c d ." will be split into ":a" and " b c d ."
func splitLine(line string) (string, string) {
	var command, arguments string

	line = strings.TrimSpace(line)

	// An empty line/a line consisting of whitespace contains neither command nor arguments
	if len(line) > 0 {
		command = strings.Fields(line)[0]

		// A line containing only a command has no arguments
		if len(line) > len(command) {
			arguments = line[len(command):]
		}
	}

	return command, arguments
}

func terminal(path string) (*liner.State, error) {
	term := liner.NewLiner()

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, os.Kill)
		<-c

		err := persist(term, history)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to properly clean up terminal: %v\n", err)
			os.Exit(1)
		}

		os.Exit(0)
	}()

	f, err := os.Open(path)
	if err != nil {
		return term, err
	}
	defer f.Close()
	_, err = term.ReadHistory(f)
	return term, err
}

func persist(term *liner.State, path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return fmt.Errorf("could not open %q to append history: %v", path, err)
	}
	defer f.Close()
	_, err = term.WriteHistory(f)
	if err != nil {
		return fmt.Errorf("could not write history to %q: %v", path, err)
	}
	return term.Close()
}
