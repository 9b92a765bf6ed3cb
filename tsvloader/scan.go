// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsvloader

import "strconv"

// scanDigits parses s as a non-negative integer made of ASCII digits only
// -- no sign, no fraction, no exponent (spec.md 4.7 performance contract).
// It reports false for an empty string or any non-digit byte.
func scanDigits(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// dimName resolves dimension parameter naming (spec.md 4.7): the supplied
// parameter name at the 1-based index if a name list was given, else the
// zero-based index rendered as a decimal string.
func dimName(oneBasedIdx int, names []string) string {
	zeroBased := oneBasedIdx - 1
	if len(names) > 0 && zeroBased >= 0 && zeroBased < len(names) {
		return names[zeroBased]
	}
	return strconv.Itoa(zeroBased)
}
