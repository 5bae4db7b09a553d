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
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch matches (via errors.Is) any LengthMismatchError.
	ErrLengthMismatch = errors.New("bit mismatch")
	// ErrInvalidBit matches (via errors.Is) any InvalidBitError.
	ErrInvalidBit = errors.New("invalid bit")
	// ErrEmptyVector is returned when parsing text which contains no bits.
	ErrEmptyVector = errors.New("empty bit vector")
)

// LengthMismatchError arises when a binary operator is applied to vectors of
// different lengths.
type LengthMismatchError struct {
	// Length of the left operand.
	Left uint
	// Length of the right operand.
	Right uint
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("bit mismatch (l= %d, r= %d)", e.Left, e.Right)
}

// Is supports errors.Is against ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// InvalidBitError arises when a value other than 0 or 1 is found where a bit was
// expected.
type InvalidBitError struct {
	// Position of the offending element.
	Index uint
	// Text of the offending element.
	Value string
}

func (e *InvalidBitError) Error() string {
	return fmt.Sprintf("invalid bit %q at index %d", e.Value, e.Index)
}

// Is supports errors.Is against ErrInvalidBit.
func (e *InvalidBitError) Is(target error) bool {
	return target == ErrInvalidBit
}
