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
package termio

import (
	"fmt"
	"strings"
)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_BLUE represents blue
const TERM_BLUE = uint(4)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape represents a sequence of SGR parameters which, once built, formats
// text in a terminal.
type AnsiEscape struct {
	params []string
}

// NewAnsiEscape constructs an escape with no parameters.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape constructs an escape which clears all formatting.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"0"}}
}

// Bold adds bold weight to this escape.
func (p AnsiEscape) Bold() AnsiEscape {
	return p.with("1")
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.with(fmt.Sprintf("%d", col+30))
}

// BgColour sets the background colour
func (p AnsiEscape) BgColour(col uint) AnsiEscape {
	return p.with(fmt.Sprintf("%d", col+40))
}

// Build constructs the final escape.  An escape without parameters builds to the
// empty string.
func (p AnsiEscape) Build() string {
	if len(p.params) == 0 {
		return ""
	}
	//
	return fmt.Sprintf("\033[%sm", strings.Join(p.params, ";"))
}

func (p AnsiEscape) with(param string) AnsiEscape {
	params := make([]string, len(p.params), len(p.params)+1)
	copy(params, p.params)
	//
	return AnsiEscape{append(params, param)}
}
