// Copyright (c) 2014, Kevin Walsh.  All rights reserved.
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

// Package logic implements the predicate/arithmetic conjunction data model:
// PredConj, NegatedConjunctions, and the Conjunction clause type, together
// with the set-algebra (Diff/Partition/Update) the matcher relies on to
// find newly added facts and clauses.
package logic

// Quantifier distinguishes existential from universal binders in a
// clause's quantifier prefix.
type Quantifier int

const (
	EX Quantifier = iota
	ALL
)

// Dual returns the opposite quantifier.
func (q Quantifier) Dual() Quantifier {
	if q == EX {
		return ALL
	}
	return EX
}

func (q Quantifier) String() string {
	if q == EX {
		return "EX"
	}
	return "ALL"
}

// AllEX reports whether every quantifier in prefix is EX. The matcher only
// ever accepts clauses satisfying this.
func AllEX(prefix []Quantifier) bool {
	for _, q := range prefix {
		if q != EX {
			return false
		}
	}
	return true
}
