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

// Package matcher implements the matcher executor and the incremental
// IterativeClauseMatcher state that the rest of a prover drives against a
// growing fact base and clause set.
package matcher

import (
	"github.com/proverkit/qmatch/logic"
	"github.com/proverkit/qmatch/term"
)

// Reducer is the injected projection simplifier: idempotent
// (r(r(c)) == r(c)), sound, and order-preserving (spec.md §4.3). The core
// never constructs one.
type Reducer func(logic.Conjunction) logic.Conjunction

// IsIrrelevantMatch drops "shielded" formulas from a batch of produced
// instances; pure, injected per call.
type IsIrrelevantMatch func(logic.Conjunction) bool

// EqSolver solves an equation system produced at an InstantiateClause site
// in logging mode, returning a full ground substitution for De Bruijn
// indices [0, numVars) or ok=false if no such substitution exists (which is
// a clause-compiler bug, not a user error: see spec.md §7.3).
type EqSolver interface {
	Solve(eqs []term.Equation, numVars int) (subst map[int]term.LC, ok bool)
}

// Logger is the inference sink the executor reports ground instantiations
// and predicate unifications to. IsLogging toggles between logging mode
// (ground instantiation via EqSolver) and non-logging mode (symbolic
// equation accumulation) at the InstantiateClause site.
type Logger interface {
	IsLogging() bool
	GroundInstantiateQuantifier(negClause logic.Conjunction, terms []term.LC, negResult logic.Conjunction, order term.Order)
	UnifyPredicates(a, b term.Atom, eqs []term.Equation, order term.Order)
}

// NopLogger is a Logger that never logs; IsLogging always reports false, so
// the executor always takes the non-logging (symbolic) InstantiateClause
// path. Suitable for provers that only need produced instances, not an
// inference trace.
type NopLogger struct{}

func (NopLogger) IsLogging() bool { return false }
func (NopLogger) GroundInstantiateQuantifier(logic.Conjunction, []term.LC, logic.Conjunction, term.Order) {
}
func (NopLogger) UnifyPredicates(term.Atom, term.Atom, []term.Equation, term.Order) {}

// noEqSolver is the default EqSolver installed by Empty: it always fails,
// since the default Logger (NopLogger) never enters logging mode and so
// never calls it. A prover that supplies its own logging Logger must also
// install a real solver via IterativeClauseMatcher.WithEqSolver.
type noEqSolver struct{}

func (noEqSolver) Solve([]term.Equation, int) (map[int]term.LC, bool) { return nil, false }
