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
	"fmt"

	"github.com/consensys/go-bitvec/pkg/bitvec"
	"github.com/spf13/cobra"
)

// usageError signals that a command was invoked incorrectly, rather than that it
// failed whilst running.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// Wrap a positional argument check so that failures are reported as usage
// errors.
func checkArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{cmd, err}
		}
		//
		return nil
	}
}

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	//
	return r
}

// Parse a bit vector given on the command line, identifying which operand it
// was in the event of an error.
func parseOperand(name string, text string) (bitvec.Vector, error) {
	bits, err := bitvec.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s operand %q: %w", name, text, err)
	}
	//
	return bits, nil
}
