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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proverkit/qmatch/term"
)

// atomCmpOpts compares term.Atom/term.LC by their own Equal methods rather
// than by reflecting into Var's unexported De Bruijn/constant fields --
// go-cmp's structural diff is still useful for pinpointing which literal
// in a slice differs, testify's reflect.DeepEqual just reports pass/fail.
var atomCmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b term.Atom) bool { return a.Equal(b) }),
}

func TestConjunctionState(t *testing.T) {
	order := term.DefaultOrder{}
	p := term.NewAtom("p", term.SingleLC(1, term.Bound(0)))
	q := term.NewAtom("q", term.SingleLC(1, term.Bound(0)))

	t.Run("unmatchable when empty", func(t *testing.T) {
		c := New([]Quantifier{EX}, ArithConj{}, TRUE(), EmptyNegatedConjunctions())
		assert.Equal(t, Unmatchable, c.State(AlwaysPositive{}))
	})

	t.Run("complete when every literal matched and no nested clauses", func(t *testing.T) {
		c := New([]Quantifier{EX}, ArithConj{}, NewPredConj([]term.Atom{p}, nil), EmptyNegatedConjunctions())
		assert.Equal(t, Complete, c.State(AlwaysPositive{}))
	})

	t.Run("producesLits when residual predicate content remains", func(t *testing.T) {
		_ = order
		c := New([]Quantifier{EX}, ArithConj{}, NewPredConj([]term.Atom{p, q}, nil), EmptyNegatedConjunctions())
		oracle := onlyPred{pred: "p"}
		assert.Equal(t, ProducesLits, c.State(oracle))
	})

	t.Run("producesLits when predicate-bearing nested negated clauses remain", func(t *testing.T) {
		r := term.NewAtom("r", term.ConstLC(1))
		nested := New(nil, ArithConj{}, NewPredConj([]term.Atom{r}, nil), EmptyNegatedConjunctions())
		c := New([]Quantifier{EX}, ArithConj{}, NewPredConj([]term.Atom{p}, nil), NewNegatedConjunctions(nested))
		assert.Equal(t, ProducesLits, c.State(AlwaysPositive{}))
	})
}

type onlyPred struct{ pred string }

func (o onlyPred) PositiveIsMatched(pred string) bool { return pred == o.pred }

func TestConjunctionIsFalseAndNew(t *testing.T) {
	assert.True(t, False().IsFalse())

	require.Panics(t, func() {
		New([]Quantifier{ALL}, ArithConj{}, TRUE(), EmptyNegatedConjunctions())
	})
}

func TestConjunctionReferencesPredicate(t *testing.T) {
	p := term.NewAtom("edge", term.ConstLC(1), term.ConstLC(2))
	inner := New(nil, ArithConj{}, NewPredConj([]term.Atom{p}, nil), EmptyNegatedConjunctions())
	outer := New(nil, ArithConj{}, TRUE(), NewNegatedConjunctions(inner))

	assert.True(t, outer.ReferencesPredicate("edge"))
	assert.False(t, outer.ReferencesPredicate("missing"))
}

func TestConjunctionTagDeterministic(t *testing.T) {
	p := term.NewAtom("p", term.ConstLC(5))
	a := New([]Quantifier{EX}, ArithConj{}, NewPredConj([]term.Atom{p}, nil), EmptyNegatedConjunctions())
	b := New([]Quantifier{EX}, ArithConj{}, NewPredConj([]term.Atom{p}, nil), EmptyNegatedConjunctions())
	assert.Equal(t, a.Tag(), b.Tag())
}

func TestConjunctionInstantiate(t *testing.T) {
	order := term.DefaultOrder{}
	p := term.NewAtom("p", term.SingleLC(1, term.Bound(0)))
	c := New([]Quantifier{EX}, ArithConj{}, NewPredConj([]term.Atom{p}, nil), EmptyNegatedConjunctions())

	ground := c.Instantiate(order, map[int]term.LC{0: term.ConstLC(7)})
	lits := ground.Pred.AllPositive()
	require.Len(t, lits, 1)
	assert.True(t, lits[0].IsGround())
	assert.Equal(t, int64(7), lits[0].Args[0].Const)

	want := []term.Atom{term.NewAtom("p", term.ConstLC(7))}
	if diff := cmp.Diff(want, lits, atomCmpOpts...); diff != "" {
		t.Errorf("instantiated literals mismatch (-want +got):\n%s", diff)
	}
}
