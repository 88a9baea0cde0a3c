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

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proverkit/qmatch/logic"
	"github.com/proverkit/qmatch/term"
)

func identityReducer(c logic.Conjunction) logic.Conjunction { return c }

func neverIrrelevant(logic.Conjunction) bool { return false }

func loadClause(t *testing.T, m *IterativeClauseMatcher, order term.Order, c logic.Conjunction) *IterativeClauseMatcher {
	t.Helper()
	clauses := logic.NewNegatedConjunctions(c)
	_, next := m.UpdateClauses(clauses, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)
	return next
}

// pqClause builds EX X. p(X) & q(X, a): two literals sharing the bound
// variable, the second pinned to the free constant a.
func pqClause(a *term.Const) logic.Conjunction {
	p := term.NewAtom("p", term.SingleLC(1, term.Bound(0)))
	q := term.NewAtom("q", term.SingleLC(1, term.Bound(0)), term.SingleLC(1, term.FromConst(a)))
	return logic.New([]logic.Quantifier{logic.EX}, logic.ArithConj{}, logic.NewPredConj([]term.Atom{p, q}, nil), logic.EmptyNegatedConjunctions())
}

func atomsOfConst(names ...string) map[string]*term.Const {
	out := make(map[string]*term.Const, len(names))
	for _, n := range names {
		out[n] = term.NewConst(n)
	}
	return out
}

func TestScenarioABasicMatch(t *testing.T) {
	order := term.DefaultOrder{}
	consts := atomsOfConst("a")
	a := consts["a"]

	m := loadClause(t, Empty(false), order, pqClause(a))

	facts := logic.NewPredConj([]term.Atom{
		term.NewAtom("p", term.SingleLC(1, term.FromConst(a))),
		term.NewAtom("q", term.SingleLC(1, term.FromConst(a)), term.SingleLC(1, term.FromConst(a))),
	}, nil)

	instances, _ := m.UpdateFacts(facts, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)
	require.Len(t, instances, 1)
	assert.True(t, instances[0].Pred.IsEmpty())
}

func TestScenarioBNoCrossMatch(t *testing.T) {
	order := term.DefaultOrder{}
	consts := atomsOfConst("a", "b")
	a, b := consts["a"], consts["b"]

	m := loadClause(t, Empty(false), order, pqClause(a))

	facts := logic.NewPredConj([]term.Atom{
		term.NewAtom("p", term.SingleLC(1, term.FromConst(a))),
		term.NewAtom("q", term.SingleLC(1, term.FromConst(b)), term.SingleLC(1, term.FromConst(a))),
	}, nil)

	instances, _ := m.UpdateFacts(facts, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)
	assert.Empty(t, instances)
}

func TestScenarioCDedupOnReplay(t *testing.T) {
	order := term.DefaultOrder{}
	consts := atomsOfConst("a")
	a := consts["a"]

	m := loadClause(t, Empty(false), order, pqClause(a))
	facts := logic.NewPredConj([]term.Atom{
		term.NewAtom("p", term.SingleLC(1, term.FromConst(a))),
		term.NewAtom("q", term.SingleLC(1, term.FromConst(a)), term.SingleLC(1, term.FromConst(a))),
	}, nil)

	first, m2 := m.UpdateFacts(facts, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)
	require.Len(t, first, 1)

	second, _ := m2.UpdateFacts(facts, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)
	assert.Empty(t, second)
}

func TestScenarioDIncrementalGrowth(t *testing.T) {
	order := term.DefaultOrder{}
	consts := atomsOfConst("a", "b")
	a, b := consts["a"], consts["b"]

	m := loadClause(t, Empty(false), order, pqClause(a))

	step1 := logic.NewPredConj([]term.Atom{term.NewAtom("p", term.SingleLC(1, term.FromConst(a)))}, nil)
	_, m2 := m.UpdateFacts(step1, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)

	step2 := logic.NewPredConj([]term.Atom{
		term.NewAtom("p", term.SingleLC(1, term.FromConst(a))),
		term.NewAtom("p", term.SingleLC(1, term.FromConst(b))),
		term.NewAtom("q", term.SingleLC(1, term.FromConst(a)), term.SingleLC(1, term.FromConst(a))),
	}, nil)
	instances, _ := m2.UpdateFacts(step2, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)
	assert.Len(t, instances, 1)
}

// alwaysAlias is the permissive end of the MayAlias contract: every pair
// may alias. Used here instead of term.DefaultMayAlias to exercise the
// axiom matcher's pairing-and-unification mechanism directly, independent
// of whatever context-sensitive alias analysis a real caller injects.
func alwaysAlias(term.LC, term.LC) bool { return true }

func TestScenarioEAxiomMatcher(t *testing.T) {
	order := term.DefaultOrder{}
	consts := atomsOfConst("a", "b")
	a, b := consts["a"], consts["b"]

	m := Empty(true)
	facts := logic.NewPredConj([]term.Atom{
		term.NewAtom("p", term.SingleLC(1, term.FromConst(a))),
		term.NewAtom("p", term.SingleLC(1, term.FromConst(b))),
	}, nil)

	instances, _ := m.UpdateFacts(facts, alwaysAlias, identityReducer, neverIrrelevant, NopLogger{}, order)
	require.Len(t, instances, 1)
	require.Len(t, instances[0].Arith.PositiveEqs, 1)
}

func TestScenarioFClauseRemoval(t *testing.T) {
	order := term.DefaultOrder{}
	consts := atomsOfConst("a")
	a := consts["a"]

	m := loadClause(t, Empty(false), order, pqClause(a))
	facts := logic.NewPredConj([]term.Atom{
		term.NewAtom("p", term.SingleLC(1, term.FromConst(a))),
		term.NewAtom("q", term.SingleLC(1, term.FromConst(a)), term.SingleLC(1, term.FromConst(a))),
	}, nil)
	_, m2 := m.UpdateFacts(facts, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)

	removed, m3 := m2.Remove(func(pred string) bool { return pred == "p" })
	require.Len(t, removed, 1)

	again, _ := m3.UpdateFacts(facts, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)
	assert.Empty(t, again)
}

func TestUpdateFactsIdempotent(t *testing.T) {
	order := term.DefaultOrder{}
	m := Empty(false)
	instances, next := m.UpdateFacts(m.currentFacts, term.DefaultMayAlias(order), identityReducer, neverIrrelevant, NopLogger{}, order)
	assert.Empty(t, instances)
	assert.Same(t, m, next)
}

func TestReduceClausesSkipsAlreadyReduced(t *testing.T) {
	order := term.DefaultOrder{}
	// Purely variable-bound, no constants anywhere: the "nothing concrete
	// to reduce" case ReduceClauses's fast path is meant to catch.
	clause := logic.New([]logic.Quantifier{logic.EX}, logic.ArithConj{}, logic.NewPredConj([]term.Atom{term.NewAtom("p", term.SingleLC(1, term.Bound(0)))}, nil), logic.EmptyNegatedConjunctions())
	m := loadClause(t, Empty(false), order, clause)

	calls := 0
	countingReducer := func(c logic.Conjunction) logic.Conjunction {
		calls++
		return c
	}
	reductions, _ := m.ReduceClauses(countingReducer, order)
	assert.Empty(t, reductions)
	assert.Zero(t, calls)
}

func TestReduceClausesReducesClauseWithGroundAtom(t *testing.T) {
	order := term.DefaultOrder{}
	a := term.NewConst("a")
	// Carries a ground atom, so there is something concrete for the
	// reducer to act on even though Arith has no constants of its own.
	clause := logic.New(nil, logic.ArithConj{}, logic.NewPredConj([]term.Atom{term.NewAtom("p", term.SingleLC(1, term.FromConst(a)))}, nil), logic.EmptyNegatedConjunctions())
	m := loadClause(t, Empty(false), order, clause)

	calls := 0
	countingReducer := func(c logic.Conjunction) logic.Conjunction {
		calls++
		return c
	}
	m.ReduceClauses(countingReducer, order)
	assert.Equal(t, 1, calls)
}

func TestSortByFixedPoint(t *testing.T) {
	order := term.DefaultOrder{}
	m := Empty(false)
	same := m.SortBy(order)
	assert.Same(t, m, same)
}
