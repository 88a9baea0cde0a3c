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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proverkit/qmatch/term"
)

func TestArithConjIsFalse(t *testing.T) {
	falseEq := term.Equation{LHS: term.ConstLC(1)}
	a := ArithConj{PositiveEqs: []term.Equation{falseEq}}
	assert.True(t, a.IsFalse())

	trueEq := term.Equation{LHS: term.ConstLC(0)}
	b := ArithConj{PositiveEqs: []term.Equation{trueEq}}
	assert.False(t, b.IsFalse())
}

func TestArithConjCombineAndHasConstants(t *testing.T) {
	order := term.DefaultOrder{}
	x := term.NewConst("x")
	eq1 := term.Equation{LHS: term.NewLC(order, 0, term.Monomial{Coeff: 1, V: term.FromConst(x)})}
	eq2 := term.Equation{LHS: term.ConstLC(5)}

	a := ArithConj{PositiveEqs: []term.Equation{eq1}}
	b := ArithConj{PositiveEqs: []term.Equation{eq2}}
	c := a.Combine(b)

	assert.Len(t, c.PositiveEqs, 2)
	assert.True(t, c.HasConstants())
	assert.False(t, a.HasConstants())
}
