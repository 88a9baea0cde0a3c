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

// Equation represents the constraint LHS == 0, produced by unifying two
// linear combinations. It is the common currency between the matcher and
// the (external) arithmetic reducer: a conjunction's positive equations
// are exactly a list of these.
type Equation struct {
	LHS LC
}

// IsTriviallyTrue reports whether the equation holds independent of any
// variable assignment (LHS is the ground zero combination).
func (e Equation) IsTriviallyTrue() bool {
	return e.LHS.isClosedForm() && e.LHS.Const == 0
}

// IsTriviallyFalse reports whether the equation can never hold (LHS is a
// nonzero closed-form combination).
func (e Equation) IsTriviallyFalse() bool {
	return e.LHS.isClosedForm() && e.LHS.Const != 0
}

func (e Equation) String() string { return e.LHS.String() + " = 0" }

// Resort rebuilds e's canonical form under a new term order.
func (e Equation) Resort(order Order) Equation {
	return Equation{LHS: NewLC(order, e.LHS.Const, e.LHS.Terms...)}
}

// UnificationConditions returns the equation asserting a == b.
func UnificationConditions(order Order, a, b LC) Equation {
	return Equation{LHS: a.Sub(order, b)}
}

// MayAlias is an overapproximating, symmetric predicate: true means a and
// b may denote the same value under the current context. It is always
// injected by the caller (the core never decides aliasing on its own); see
// DefaultMayAlias for the conservative stand-in used in tests.
type MayAlias func(a, b LC) bool

// DefaultMayAlias returns a MayAlias that only rules out aliasing between
// two distinct fully-ground constants; every other pair, including any
// pair involving a variable, is reported as potentially aliasing. This is
// the cheapest sound overapproximation and is what the test suite uses in
// place of the real context-sensitive alias analysis.
func DefaultMayAlias(order Order) MayAlias {
	_ = order
	return func(a, b LC) bool {
		if a.IsGround() && b.IsGround() {
			return a.Equal(b)
		}
		return true
	}
}

// UnifyAtoms attempts to unify a and b: same predicate and arity required.
// It returns the list of equations asserting argument-wise equality
// (omitting arguments already syntactically equal, and omitting trivially
// true equations) and ok=false if any argument pair is provably distinct.
func UnifyAtoms(order Order, a, b Atom) (eqs []Equation, ok bool) {
	if a.Pred != b.Pred || len(a.Args) != len(b.Args) {
		return nil, false
	}
	for i := range a.Args {
		if a.Args[i].Equal(b.Args[i]) {
			continue
		}
		eq := UnificationConditions(order, a.Args[i], b.Args[i])
		if eq.IsTriviallyFalse() {
			return nil, false
		}
		if eq.IsTriviallyTrue() {
			continue
		}
		eqs = append(eqs, eq)
	}
	return eqs, true
}
