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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlrdf/clog"
	_ "github.com/cayleygraph/owlrdf/clog/glog"
	"github.com/cayleygraph/owlrdf/cmd/owlrdf/command"
)

// Filled in by `go build ldflags="-X main.Version `ver`"`.
var (
	BuildDate string
	Version   string
)

var profile *command.Profile

var rootCmd = &cobra.Command{
	Use:   "owlrdf",
	Short: "owlrdf translates RDF documents into OWL ontologies.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := readConfig(cmd); err != nil {
			return err
		}
		if Version != "" {
			clog.Infof("owlrdf %s built %s", Version, BuildDate)
		}
		var err error
		profile, err = command.StartProfile(cmd)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		profile.Finish()
	},
}

func readConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("owlrdf")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	file, _ := cmd.Flags().GetString("config")
	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("owlrdf")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.owlrdf")
		viper.AddConfigPath("/etc/")
	}
	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && file == "" {
		clog.Infof("no configuration file found, using flags and defaults")
		return nil
	} else if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	clog.Infof("using config file: %s", viper.ConfigFileUsed())
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version of owlrdf.",
	Run: func(cmd *cobra.Command, args []string) {
		if Version != "" {
			fmt.Println("owlrdf", Version, "built", BuildDate)
		} else {
			fmt.Println("owlrdf snapshot")
		}
		fmt.Println("Go", runtime.Version())
	},
}

func init() {
	// glog flags
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to an explicit configuration file")
	command.RegisterProfileFlags(rootCmd)

	rootCmd.AddCommand(
		versionCmd,
		command.NewTranslateCmd(),
		command.NewParseCmd(),
		command.NewHttpCmd(),
		command.NewReplCmd(),
		command.NewHealthCmd(),
	)
}

func main() {
	// glog reads its flags from the standard set.
	flag.CommandLine.Parse([]string{})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
