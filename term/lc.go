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
	"fmt"
	"sort"
	"strings"
)

// Monomial is a single coefficient-times-variable term of a
// LinearCombination.
type Monomial struct {
	Coeff int64
	V     Var
}

// LC is a canonical linear combination: a constant plus a sorted,
// duplicate-free, zero-coefficient-free list of monomials. Two LCs built
// by NewLC under the same Order are equal iff structurally identical.
type LC struct {
	Terms []Monomial
	Const int64
}

// ConstLC returns the ground linear combination equal to the constant c.
func ConstLC(c int64) LC { return LC{Const: c} }

// SingleLC returns the linear combination coeff*v.
func SingleLC(coeff int64, v Var) LC {
	if coeff == 0 {
		return LC{}
	}
	return LC{Terms: []Monomial{{Coeff: coeff, V: v}}}
}

// NewLC builds a canonical linear combination from a constant and a list
// of monomials, merging monomials over the same variable, dropping
// zero-coefficient monomials, and sorting by order.
func NewLC(order Order, constant int64, terms ...Monomial) LC {
	merged := make(map[Var]int64, len(terms))
	var keys []Var
	for _, m := range terms {
		if _, ok := merged[m.V]; !ok {
			keys = append(keys, m.V)
		}
		merged[m.V] += m.Coeff
	}
	out := make([]Monomial, 0, len(keys))
	for _, k := range keys {
		if c := merged[k]; c != 0 {
			out = append(out, Monomial{Coeff: c, V: k})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return CompareVar(order, out[i].V, out[j].V) < 0
	})
	return LC{Terms: out, Const: constant}
}

// IsGround reports whether the combination carries no bound (quantified)
// variables. Free constant symbols don't disqualify a combination from
// being ground: a fact's arguments are ground once every quantifier has
// been eliminated, even though they still mention named domain elements.
func (l LC) IsGround() bool {
	for _, m := range l.Terms {
		if m.V.IsBound() {
			return false
		}
	}
	return true
}

// isClosedForm reports whether the combination denotes a single concrete
// integer with no symbols of any kind -- the narrower notion
// Equation.IsTriviallyTrue/IsTriviallyFalse need, since an equation
// between two distinct free constants isn't decidable without further
// unification (see UnifyAtoms, which checks structural equality first).
func (l LC) isClosedForm() bool { return len(l.Terms) == 0 }

// Add returns l + other, canonicalized under order.
func (l LC) Add(order Order, other LC) LC {
	terms := make([]Monomial, 0, len(l.Terms)+len(other.Terms))
	terms = append(terms, l.Terms...)
	terms = append(terms, other.Terms...)
	return NewLC(order, l.Const+other.Const, terms...)
}

// Scale returns k*l, canonicalized under order.
func (l LC) Scale(order Order, k int64) LC {
	if k == 0 {
		return LC{}
	}
	terms := make([]Monomial, len(l.Terms))
	for i, m := range l.Terms {
		terms[i] = Monomial{Coeff: m.Coeff * k, V: m.V}
	}
	return NewLC(order, l.Const*k, terms...)
}

// Sub returns l - other, canonicalized under order.
func (l LC) Sub(order Order, other LC) LC {
	return l.Add(order, other.Scale(order, -1))
}

// Shift adds n to every bound variable's De Bruijn index, leaving free
// constants untouched. Used when a subterm moves under (n>0) or out from
// under (n<0) additional quantifiers.
func (l LC) Shift(order Order, n int) LC {
	if n == 0 || len(l.Terms) == 0 {
		return l
	}
	terms := make([]Monomial, len(l.Terms))
	for i, m := range l.Terms {
		terms[i] = Monomial{Coeff: m.Coeff, V: m.V.shift(n)}
	}
	return NewLC(order, l.Const, terms...)
}

// Equal reports structural equality, assuming both operands are canonical
// under the same order.
func (l LC) Equal(other LC) bool {
	if l.Const != other.Const || len(l.Terms) != len(other.Terms) {
		return false
	}
	for i := range l.Terms {
		if l.Terms[i].Coeff != other.Terms[i].Coeff || !l.Terms[i].V.Equal(other.Terms[i].V) {
			return false
		}
	}
	return true
}

// FreeBoundVars returns the set of De Bruijn indices of bound variables
// occurring in l.
func (l LC) FreeBoundVars() map[int]bool {
	if len(l.Terms) == 0 {
		return nil
	}
	out := make(map[int]bool)
	for _, m := range l.Terms {
		if m.V.IsBound() {
			out[m.V.Index()] = true
		}
	}
	return out
}

// Tag writes a canonical, order-dependent encoding of l to buf, suitable
// for building Atom/Conjunction dedup tags.
func (l LC) Tag(buf *strings.Builder) {
	fmt.Fprintf(buf, "%d", l.Const)
	for _, m := range l.Terms {
		if m.V.IsBound() {
			fmt.Fprintf(buf, "+%d*b%d", m.Coeff, m.V.Index())
		} else {
			fmt.Fprintf(buf, "+%d*c%p", m.Coeff, m.V.Const())
		}
	}
}

func (l LC) String() string {
	var b strings.Builder
	if l.Const != 0 || len(l.Terms) == 0 {
		fmt.Fprintf(&b, "%d", l.Const)
	}
	for _, m := range l.Terms {
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%d*%s", m.Coeff, m.V.String())
	}
	return b.String()
}
