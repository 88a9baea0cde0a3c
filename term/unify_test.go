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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyAtomsSameGroundArgs(t *testing.T) {
	order := DefaultOrder{}
	a := NewConst("a")
	p1 := NewAtom("p", SingleLC(1, FromConst(a)))
	p2 := NewAtom("p", SingleLC(1, FromConst(a)))
	eqs, ok := UnifyAtoms(order, p1, p2)
	require.True(t, ok)
	assert.Empty(t, eqs)
}

func TestUnifyAtomsDistinctConstsProduceEquation(t *testing.T) {
	order := DefaultOrder{}
	a := NewConst("a")
	b := NewConst("b")
	p1 := NewAtom("p", SingleLC(1, FromConst(a)))
	p2 := NewAtom("p", SingleLC(1, FromConst(b)))
	eqs, ok := UnifyAtoms(order, p1, p2)
	require.True(t, ok)
	require.Len(t, eqs, 1)
	assert.True(t, eqs[0].LHS.Equal(SingleLC(1, FromConst(a)).Sub(order, SingleLC(1, FromConst(b)))))
}

func TestUnifyAtomsBoundVarProducesEquation(t *testing.T) {
	order := DefaultOrder{}
	a := NewConst("a")
	p1 := NewAtom("p", SingleLC(1, Bound(0)))
	p2 := NewAtom("p", SingleLC(1, FromConst(a)))
	eqs, ok := UnifyAtoms(order, p1, p2)
	require.True(t, ok)
	require.Len(t, eqs, 1)
	assert.True(t, eqs[0].LHS.Equal(SingleLC(1, Bound(0)).Sub(order, SingleLC(1, FromConst(a)))))
}

func TestUnifyAtomsDifferentPredOrArity(t *testing.T) {
	order := DefaultOrder{}
	p := NewAtom("p", ConstLC(1))
	q := NewAtom("q", ConstLC(1))
	_, ok := UnifyAtoms(order, p, q)
	assert.False(t, ok)

	r1 := NewAtom("r", ConstLC(1))
	r2 := NewAtom("r", ConstLC(1), ConstLC(2))
	_, ok = UnifyAtoms(order, r1, r2)
	assert.False(t, ok)
}

func TestDefaultMayAlias(t *testing.T) {
	order := DefaultOrder{}
	mayAlias := DefaultMayAlias(order)
	assert.True(t, mayAlias(ConstLC(1), ConstLC(1)))
	assert.False(t, mayAlias(ConstLC(1), ConstLC(2)))
	assert.True(t, mayAlias(SingleLC(1, Bound(0)), ConstLC(2)))
}
