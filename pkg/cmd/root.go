// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "bitvec",
	Short:         "Arithmetic on big-endian bit vectors.",
	Long:          "Conversion, logical and arithmetic operations on big-endian bit vectors.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !getFlag(cmd, "version") {
			return cmd.Help()
		}
		//
		fmt.Fprint(cmd.OutOrStdout(), "bitvec ")
		//
		if Version != "" {
			// Built via "make"
			fmt.Fprintf(cmd.OutOrStdout(), "%s", Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			// Built via "go install"
			fmt.Fprintf(cmd.OutOrStdout(), "%s", info.Main.Version)
		} else {
			// Unknown, perhaps "go run"
			fmt.Fprintf(cmd.OutOrStdout(), "(unknown version)")
		}
		//
		fmt.Fprintln(cmd.OutOrStdout())
		//
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var usage *usageError
	//
	if err := rootCmd.Execute(); err == nil {
		return
	} else if errors.As(err, &usage) {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage.cmd.UsageString())
		os.Exit(1)
	} else {
		log.Error(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("ansi-escapes", term.IsTerminal(int(os.Stdout.Fd())),
		"enable/disable coloured output using ANSI escapes")
}
