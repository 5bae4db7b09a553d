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
package bitvec

import (
	"strconv"
	"strings"
	"unicode"
)

// New constructs a vector from the given values, checking each is either 0 or 1.
// The operators themselves never perform this check.
func New(bits ...uint8) (Vector, error) {
	result := make(Vector, len(bits))
	//
	for i, b := range bits {
		if b > 1 {
			return nil, &InvalidBitError{uint(i), strconv.Itoa(int(b))}
		}
		//
		result[i] = Bit(b)
	}
	//
	return result, nil
}

// Validate checks that every element of a given vector is either 0 or 1,
// reporting the first which is not.
func Validate(bits Vector) error {
	for i, b := range bits {
		if b > One {
			return &InvalidBitError{uint(i), strconv.Itoa(int(b))}
		}
	}
	//
	return nil
}

// Parse a vector from text.  Three forms are accepted: plain digits ("1011"),
// digits with a binary prefix ("0b1011") and a bracketed list ("[1, 0, 1, 1]").
// Whitespace is ignored throughout, and underscores may separate digits in the
// first two forms (e.g. "1010_1110").
func Parse(text string) (Vector, error) {
	text = strings.TrimSpace(text)
	//
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		return parseList(text[1 : len(text)-1])
	} else if strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B") {
		text = text[2:]
	}
	//
	return parseDigits(text)
}

func parseList(text string) (Vector, error) {
	var bits Vector
	//
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyVector
	}
	//
	for i, item := range strings.Split(text, ",") {
		switch strings.TrimSpace(item) {
		case "0":
			bits = append(bits, Zero)
		case "1":
			bits = append(bits, One)
		default:
			return nil, &InvalidBitError{uint(i), strings.TrimSpace(item)}
		}
	}
	//
	return bits, nil
}

func parseDigits(text string) (Vector, error) {
	var bits Vector
	//
	for _, c := range text {
		switch {
		case c == '0':
			bits = append(bits, Zero)
		case c == '1':
			bits = append(bits, One)
		case unicode.IsSpace(c) || c == '_':
			continue
		default:
			return nil, &InvalidBitError{uint(len(bits)), string(c)}
		}
	}
	//
	if len(bits) == 0 {
		return nil, ErrEmptyVector
	}
	//
	return bits, nil
}
