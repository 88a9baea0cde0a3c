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

package term

import (
	"strings"
)

// Atom is a predicate symbol applied to a fixed number of LC arguments.
type Atom struct {
	Pred string
	Args []LC
}

// NewAtom returns an atom over pred with the given arguments.
func NewAtom(pred string, args ...LC) Atom {
	cp := make([]LC, len(args))
	copy(cp, args)
	return Atom{Pred: pred, Args: cp}
}

// Arity returns the number of arguments.
func (a Atom) Arity() int { return len(a.Args) }

// Equal reports whether a and other are the same predicate applied to
// structurally equal arguments, assuming both are canonical under the same
// order.
func (a Atom) Equal(other Atom) bool {
	if a.Pred != other.Pred || len(a.Args) != len(other.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// IsGround reports whether every argument is ground.
func (a Atom) IsGround() bool {
	for _, arg := range a.Args {
		if !arg.IsGround() {
			return false
		}
	}
	return true
}

// Shift shifts every argument's bound variables by n; see LC.Shift.
func (a Atom) Shift(order Order, n int) Atom {
	out := Atom{Pred: a.Pred, Args: make([]LC, len(a.Args))}
	for i, arg := range a.Args {
		out.Args[i] = arg.Shift(order, n)
	}
	return out
}

// Resort rebuilds every argument's canonical form under a new term order;
// used by IterativeClauseMatcher.SortBy.
func (a Atom) Resort(order Order) Atom {
	out := Atom{Pred: a.Pred, Args: make([]LC, len(a.Args))}
	for i, arg := range a.Args {
		out.Args[i] = NewLC(order, arg.Const, arg.Terms...)
	}
	return out
}

// Tag returns a canonical string key for a, stable for structurally equal
// atoms under the same order and suitable as a map/tree key for
// dedup and program-cache lookups.
func (a Atom) Tag() string {
	var b strings.Builder
	b.WriteString(a.Pred)
	for _, arg := range a.Args {
		b.WriteByte('|')
		arg.Tag(&b)
	}
	return b.String()
}

func (a Atom) String() string {
	var b strings.Builder
	b.WriteString(a.Pred)
	if len(a.Args) > 0 {
		b.WriteByte('(')
		for i, arg := range a.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}
