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
	"strconv"
	"strings"

	"github.com/consensys/go-bitvec/pkg/bitvec"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] value...",
	Short: "convert between numbers and bit vectors.",
	Long: `Convert each value between its decimal and bit vector forms.  By
	default, values written as lists ([1,1,0,0]) or with a binary prefix
	(0b1100) are converted into numbers, whilst all other values are treated as
	decimal numbers and converted into bit vectors.`,
	Args: checkArgs(cobra.MinimumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		toBits := getFlag(cmd, "to-bits")
		toNumber := getFlag(cmd, "to-number")
		//
		if toBits && toNumber {
			return &usageError{cmd, errors.New("flags --to-bits and --to-number are mutually exclusive")}
		}
		//
		for _, arg := range args {
			var (
				text string
				err  error
			)
			//
			if toNumber || (!toBits && isBitVector(arg)) {
				text, err = convertToNumber(arg)
			} else {
				text, err = convertToBits(arg)
			}
			//
			if err != nil {
				return err
			}
			//
			fmt.Fprintf(cmd.OutOrStdout(), "%s => %s\n", arg, text)
		}
		//
		return nil
	},
}

// Check whether a given value is explicitly written as a bit vector.
func isBitVector(text string) bool {
	text = strings.TrimSpace(text)
	//
	return strings.HasPrefix(text, "[") || strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B")
}

func convertToNumber(arg string) (string, error) {
	bits, err := parseOperand("input", arg)
	if err != nil {
		return "", err
	}
	//
	if bits.Len() > 32 {
		log.Warnf("%s exceeds 32 bits, result is truncated", arg)
	}
	//
	return strconv.FormatUint(uint64(bitvec.ToNumber(bits)), 10), nil
}

func convertToBits(arg string) (string, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 32)
	if err != nil {
		return "", fmt.Errorf("input %q: %w", arg, err)
	}
	//
	return bitvec.FromNumber(uint32(n)).String(), nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().Bool("to-bits", false, "treat every value as a decimal number")
	convertCmd.Flags().Bool("to-number", false, "treat every value as a bit vector")
}
