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

import "strconv"

// Var is a monomial's variable: either a De Bruijn-indexed bound variable
// (index 0 innermost, per the clause's quantifier prefix) or a free
// constant symbol.
type Var struct {
	bound bool
	idx   int
	sym   *Const
}

// Bound returns the bound variable at De Bruijn index idx.
func Bound(idx int) Var {
	return Var{bound: true, idx: idx}
}

// FromConst returns the variable wrapping a free constant symbol.
func FromConst(c *Const) Var {
	return Var{sym: c}
}

// IsBound reports whether v is a bound (quantified) variable.
func (v Var) IsBound() bool { return v.bound }

// Index returns the De Bruijn index of a bound variable. Only meaningful
// when IsBound() is true.
func (v Var) Index() int { return v.idx }

// Const returns the constant symbol of a free variable. Only meaningful
// when IsBound() is false.
func (v Var) Const() *Const { return v.sym }

// Equal reports whether two variables denote the same slot: same De Bruijn
// index for bound variables, same pointer identity for constants.
func (v Var) Equal(other Var) bool {
	if v.bound != other.bound {
		return false
	}
	if v.bound {
		return v.idx == other.idx
	}
	return v.sym == other.sym
}

// shift adds n to a bound variable's De Bruijn index; used when a
// subterm is moved under (or out from under) additional quantifiers.
// Free constants are unaffected.
func (v Var) shift(n int) Var {
	if !v.bound {
		return v
	}
	return Bound(v.idx + n)
}

func (v Var) String() string {
	if v.bound {
		return "#" + strconv.Itoa(v.idx)
	}
	return v.sym.String()
}
