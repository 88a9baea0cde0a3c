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

package logic

import (
	"strings"

	"github.com/proverkit/qmatch/term"
)

// ArithConj is the minimal carrier of arithmetic literals the matcher
// needs: a list of positive and negative linear equations. The arithmetic
// decision procedure that would normalise, solve, or eliminate these is an
// out-of-scope external collaborator (see EqSolver in package matcher);
// ArithConj only needs to support the operations the matcher itself
// performs on equation lists.
type ArithConj struct {
	PositiveEqs []term.Equation
	NegativeEqs []term.Equation
}

// IsFalse reports whether any positive equation is trivially
// unsatisfiable (the "false propagation" property a Reducer must respect).
func (a ArithConj) IsFalse() bool {
	for _, eq := range a.PositiveEqs {
		if eq.IsTriviallyFalse() {
			return true
		}
	}
	return false
}

// WithPositiveEqs returns a copy of a with its positive equations replaced.
func (a ArithConj) WithPositiveEqs(eqs []term.Equation) ArithConj {
	return ArithConj{PositiveEqs: eqs, NegativeEqs: a.NegativeEqs}
}

// Combine returns the conjunction of a and b's equations.
func (a ArithConj) Combine(b ArithConj) ArithConj {
	pos := make([]term.Equation, 0, len(a.PositiveEqs)+len(b.PositiveEqs))
	pos = append(pos, a.PositiveEqs...)
	pos = append(pos, b.PositiveEqs...)
	neg := make([]term.Equation, 0, len(a.NegativeEqs)+len(b.NegativeEqs))
	neg = append(neg, a.NegativeEqs...)
	neg = append(neg, b.NegativeEqs...)
	return ArithConj{PositiveEqs: pos, NegativeEqs: neg}
}

// IsEmpty reports whether a carries no literals at all.
func (a ArithConj) IsEmpty() bool {
	return len(a.PositiveEqs) == 0 && len(a.NegativeEqs) == 0
}

// HasConstants reports whether any equation mentions a nonzero constant
// term, used by the reduceClauses fast path (spec invariant 6): a clause
// with no constants and no ground atoms is already fully reduced.
func (a ArithConj) HasConstants() bool {
	for _, eq := range a.PositiveEqs {
		if eq.LHS.Const != 0 {
			return true
		}
	}
	for _, eq := range a.NegativeEqs {
		if eq.LHS.Const != 0 {
			return true
		}
	}
	return false
}

// Resort rebuilds every equation's canonical form under a new term order.
func (a ArithConj) Resort(order term.Order) ArithConj {
	pos := make([]term.Equation, len(a.PositiveEqs))
	for i, eq := range a.PositiveEqs {
		pos[i] = eq.Resort(order)
	}
	neg := make([]term.Equation, len(a.NegativeEqs))
	for i, eq := range a.NegativeEqs {
		neg[i] = eq.Resort(order)
	}
	return ArithConj{PositiveEqs: pos, NegativeEqs: neg}
}

func (a ArithConj) tag(buf *strings.Builder) {
	buf.WriteString("A[")
	for _, eq := range a.PositiveEqs {
		eq.LHS.Tag(buf)
		buf.WriteByte(';')
	}
	buf.WriteString("]!A[")
	for _, eq := range a.NegativeEqs {
		eq.LHS.Tag(buf)
		buf.WriteByte(';')
	}
	buf.WriteByte(']')
}

func (a ArithConj) String() string {
	var parts []string
	for _, eq := range a.PositiveEqs {
		parts = append(parts, eq.String())
	}
	for _, eq := range a.NegativeEqs {
		parts = append(parts, "!("+eq.String()+")")
	}
	return strings.Join(parts, " & ")
}
