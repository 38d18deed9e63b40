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

package repl

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlrdf/consumer"
	"github.com/cayleygraph/owlrdf/expression"
)

var testSplitLines = []struct {
	line              string
	expectedCommand   string
	expectedArguments string
}{
	{
		line:              ":a arg1 arg2 arg3 .",
		expectedCommand:   ":a",
		expectedArguments: " arg1 arg2 arg3 .",
	},
	{
		line:              ":debug t",
		expectedCommand:   ":debug",
		expectedArguments: " t",
	},
	{
		line: "",
		// expectedCommand is nil
		// expectedArguments is nil
	},
	{
		line:              `:a <http://one.example/subject1> <http://one.example/predicate1> <http://one.example/object1> . # comments here`,
		expectedCommand:   ":a",
		expectedArguments: ` <http://one.example/subject1> <http://one.example/predicate1> <http://one.example/object1> . # comments here`,
	},
	{
		line:              `  :a  subject  "predicate with spaces" object  . `,
		expectedCommand:   ":a",
		expectedArguments: `  subject  "predicate with spaces" object  .`,
	},
}

func TestSplitLines(t *testing.T) {
	for _, testcase := range testSplitLines {
		command, arguments := splitLine(testcase.line)

		require.Equal(t, testcase.expectedCommand, command)
		require.Equal(t, testcase.expectedArguments, arguments)
	}
}

func init() {
	color.NoColor = true
}

const (
	equivalence = `:a <http://example.org/A> <http://www.w3.org/2002/07/owl#equivalentClass> <http://example.org/B> .`
	label       = `:a <http://example.org/A> <http://www.w3.org/2000/01/rdf-schema#label> "A" .`
)

func exec(t *testing.T, in *Interpreter, out *bytes.Buffer, line string) (string, error) {
	out.Reset()
	err := in.Exec(context.Background(), line)
	return out.String(), err
}

func TestInterpreter(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(consumer.Config{}, 0, &out)

	got, err := exec(t, in, &out, equivalence)
	require.NoError(t, err)
	require.Equal(t, "EquivalentClasses(<http://example.org/A> <http://example.org/B>)\n", got)

	got, err = exec(t, in, &out, label)
	require.NoError(t, err)
	require.Equal(t, "deferred\n", got)

	got, err = exec(t, in, &out, ":end")
	require.NoError(t, err)
	require.Contains(t, got, "2 axioms, 0 residue, 0 dropped, 2 sweeps")

	got, err = exec(t, in, &out, "A and B")
	require.NoError(t, err)
	require.Equal(t, "ObjectIntersectionOf(<http://example.org/A> <http://example.org/B>)\n", got)

	_, err = exec(t, in, &out, "A and Unicorn")
	var perr *expression.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 7, perr.Column)

	_, err = exec(t, in, &out, label)
	require.ErrorContains(t, err, "model already ended")

	got, err = exec(t, in, &out, ":reset")
	require.NoError(t, err)
	require.Equal(t, "New session\n", got)
	got, err = exec(t, in, &out, ":axioms")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestInterpreterStrict(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(consumer.Config{}, 0, &out)

	got, err := exec(t, in, &out, ":strict t")
	require.NoError(t, err)
	require.Equal(t, "Strict mode is true\n", got)

	got, err = exec(t, in, &out, equivalence)
	require.NoError(t, err)
	require.Equal(t, "deferred\n", got)

	got, err = exec(t, in, &out, ":end")
	require.NoError(t, err)
	require.Contains(t, got, "0 axioms, 1 residue")
	require.Contains(t, got, "unresolvable")
}

func TestInterpreterCommands(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(consumer.Config{}, 0, &out)

	got, err := exec(t, in, &out, "  # comment")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = exec(t, in, &out, ":bogus")
	require.ErrorContains(t, err, "unknown command")

	_, err = exec(t, in, &out, ":a not a triple")
	require.ErrorContains(t, err, "not a valid triple")

	_, err = exec(t, in, &out, ":debug maybe")
	require.Error(t, err)

	_, err = exec(t, in, &out, ":load")
	require.ErrorContains(t, err, "usage")

	got, err = exec(t, in, &out, "help")
	require.NoError(t, err)
	require.Contains(t, got, ":end")

	_, err = exec(t, in, &out, "exit")
	require.ErrorIs(t, err, io.EOF)
}
