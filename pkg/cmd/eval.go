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
	"sort"
	"strings"

	"github.com/consensys/go-bitvec/pkg/bitvec"
	"github.com/consensys/go-bitvec/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// operation describes an operator which can be evaluated from the command line.
type operation struct {
	// Number of operands expected
	arity int
	// Symbol used when reporting
	symbol string
	// Apply the operation.  The right operand is ignored for unary operations.
	apply func(left, right bitvec.Vector) (bitvec.Vector, error)
}

var operations = map[string]operation{
	"and": {2, "&", bitvec.And},
	"or":  {2, "|", bitvec.Or},
	"xor": {2, "^", bitvec.Xor},
	"not": {1, "~", func(bits, _ bitvec.Vector) (bitvec.Vector, error) {
		return bitvec.Not(bits), nil
	}},
	"add": {2, "+", func(left, right bitvec.Vector) (bitvec.Vector, error) {
		return bitvec.Add(left, right), nil
	}},
}

var evalCmd = &cobra.Command{
	Use:   "eval [flags] operation left [right]",
	Short: "evaluate a single operation on bit vectors.",
	Long: `Evaluate a single operation (one of and, or, xor, not, add) on the
	given bit vectors.  Vectors can be written as digits (1011), with a binary
	prefix (0b1011) or as a list ([1,0,1,1]).`,
	Args: checkArgs(cobra.RangeArgs(2, 3)),
	RunE: func(cmd *cobra.Command, args []string) error {
		binary := getFlag(cmd, "binary")
		number := getFlag(cmd, "number")
		trim := getFlag(cmd, "trim")
		escapes := getFlag(cmd, "ansi-escapes")
		//
		result, err := evaluate(cmd, args)
		if err != nil {
			return err
		}
		// Post-process (if requested)
		if trim {
			result = bitvec.Trim(result)
		}
		//
		text := result.String()
		if binary {
			text = result.Binary()
		}
		//
		if escapes {
			text = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN).Build() + text + termio.ResetAnsiEscape().Build()
		}
		//
		if number {
			text = fmt.Sprintf("%s (%d)", text, bitvec.ToNumber(result))
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), text)
		//
		return nil
	},
}

// Evaluate the operation described by the given arguments.
func evaluate(cmd *cobra.Command, args []string) (bitvec.Vector, error) {
	var right bitvec.Vector
	//
	name := strings.ToLower(args[0])
	op, ok := operations[name]
	//
	if !ok {
		return nil, &usageError{cmd, fmt.Errorf("unknown operation %q (expected one of %s)", args[0],
			strings.Join(operationNames(), ", "))}
	} else if len(args)-1 != op.arity {
		return nil, &usageError{cmd, fmt.Errorf("operation %s expects %d operand(s), got %d", name, op.arity,
			len(args)-1)}
	}
	//
	left, err := parseOperand("left", args[1])
	if err != nil {
		return nil, err
	}
	//
	if op.arity == 2 {
		if right, err = parseOperand("right", args[2]); err != nil {
			return nil, err
		}
		//
		log.Debugf("evaluating %s %s %s", left, op.symbol, right)
	} else {
		log.Debugf("evaluating %s%s", op.symbol, left)
	}
	//
	result, err := op.apply(left, right)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	//
	return result, nil
}

func operationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	return names
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("binary", false, "print result as digits rather than a list")
	evalCmd.Flags().Bool("number", false, "also print the numeric value of the result")
	evalCmd.Flags().Bool("trim", false, "strip superfluous leading zeros from the result")
}
