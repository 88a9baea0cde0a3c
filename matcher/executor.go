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
	"fmt"

	"github.com/proverkit/qmatch/logic"
	"github.com/proverkit/qmatch/matchprog"
	"github.com/proverkit/qmatch/term"
)

// executeMatcher interprets program, starting from the already-selected
// atom startLit in slot 0, and returns every instance it produces, in
// first-seen order, deduplicated within this call (spec.md §4.2).
//
// litFacts is the "old facts" pool the program matches non-start literals
// against; addPos/addNeg are the additional buffers of atoms already
// processed earlier in the same updateFacts batch.
func executeMatcher(
	startLit term.Atom,
	program matchprog.Statement,
	litFacts logic.PredConj,
	addPos, addNeg []term.Atom,
	mayAlias term.MayAlias,
	reducer Reducer,
	logger Logger,
	eqSolver EqSolver,
	order term.Order,
) []logic.Conjunction {
	ex := &execution{
		litFacts: litFacts,
		addPos:   addPos,
		addNeg:   addNeg,
		mayAlias: mayAlias,
		reducer:  reducer,
		logger:   logger,
		eqSolver: eqSolver,
		order:    order,
		results:  newInstanceSet(),
	}
	ex.run(program, []term.Atom{startLit})
	return ex.results.Items()
}

type execution struct {
	litFacts logic.PredConj
	addPos   []term.Atom
	addNeg   []term.Atom
	mayAlias term.MayAlias
	reducer  Reducer
	logger   Logger
	eqSolver EqSolver
	order    term.Order
	results  *instanceSet
}

func (ex *execution) run(stmt matchprog.Statement, selected []term.Atom) {
	switch stmt.Kind() {
	case matchprog.KindSelectLiteral:
		s := stmt.(*matchprog.SelectLiteral)
		ex.runSelectLiteral(s, selected)
	case matchprog.KindCheckMayAlias:
		s := stmt.(*matchprog.CheckMayAlias)
		a := selected[s.SlotA].Args[s.ArgA]
		b := selected[s.SlotB].Args[s.ArgB]
		if ex.mayAlias(a, b) {
			ex.run(s.Next, selected)
		}
	case matchprog.KindCheckMayAliasUnary:
		s := stmt.(*matchprog.CheckMayAliasUnary)
		a := selected[s.Slot].Args[s.Arg]
		if ex.mayAlias(a, s.LC) {
			ex.run(s.Next, selected)
		}
	case matchprog.KindInstantiateClause:
		s := stmt.(*matchprog.InstantiateClause)
		ex.runInstantiateClause(s, selected)
	case matchprog.KindUnifyLiterals:
		s := stmt.(*matchprog.UnifyLiterals)
		ex.runUnifyLiterals(s, selected)
	case matchprog.KindChoice:
		s := stmt.(*matchprog.Choice)
		for _, opt := range s.Options {
			ex.run(opt, selected)
		}
	default:
		panic(fmt.Sprintf("matcher: unknown statement kind %v", stmt.Kind()))
	}
}

// runSelectLiteral binds the next slot to every candidate atom of the
// requested predicate/polarity drawn from litFacts plus the appropriate
// additional buffer, recursing on Next for each, then discards the
// binding -- the buffer is a scratch slot, never observed outside this call.
func (ex *execution) runSelectLiteral(s *matchprog.SelectLiteral, selected []term.Atom) {
	var candidates []term.Atom
	if s.Neg {
		candidates = append(candidates, ex.litFacts.NegativeLitsWithPred(s.Pred)...)
		candidates = append(candidates, filterPred(ex.addNeg, s.Pred)...)
	} else {
		candidates = append(candidates, ex.litFacts.PositiveLitsWithPred(s.Pred)...)
		candidates = append(candidates, filterPred(ex.addPos, s.Pred)...)
	}
	for _, a := range candidates {
		ex.run(s.Next, append(selected, a))
	}
}

func filterPred(atoms []term.Atom, pred string) []term.Atom {
	var out []term.Atom
	for _, a := range atoms {
		if a.Pred == pred {
			out = append(out, a)
		}
	}
	return out
}

func (ex *execution) runInstantiateClause(s *matchprog.InstantiateClause, selected []term.Atom) {
	var eqs []term.Equation
	for i, lit := range s.MatchedLits {
		pairEqs, ok := term.UnifyAtoms(ex.order, lit.Atom, selected[i])
		if !ok {
			return
		}
		eqs = append(eqs, pairEqs...)
	}
	eqs = append(eqs, s.Arith.PositiveEqs...)

	for _, eq := range eqs {
		if eq.IsTriviallyFalse() {
			return
		}
	}

	if ex.logger.IsLogging() {
		ex.instantiateGround(s, eqs)
		return
	}

	remainingPos, remainingNeg := splitByPolarity(s.RemainingLits)
	newArith := s.Arith.WithPositiveEqs(eqs)
	newConj := logic.New(s.Quans, newArith, logic.NewPredConj(remainingPos, remainingNeg), s.NegConjs)
	ex.results.Add(ex.reducer(newConj))
}

func (ex *execution) instantiateGround(s *matchprog.InstantiateClause, eqs []term.Equation) {
	if !s.OriginalClause.IsAllEX() {
		panic("matcher: logging-mode InstantiateClause on a clause with a non-EX quantifier")
	}
	numVars := len(s.Quans)
	subst, ok := ex.eqSolver.Solve(eqs, numVars)
	if !ok {
		panic("matcher: logging-mode InstantiateClause could not eliminate all quantifiers")
	}
	terms := make([]term.LC, numVars)
	for i := 0; i < numVars; i++ {
		lc, ok := subst[i]
		if !ok || !lc.IsGround() {
			panic("matcher: logging-mode ground instantiation left a free variable")
		}
		terms[i] = lc
	}
	instantiated := s.OriginalClause.Instantiate(ex.order, subst)
	reduced := ex.reducer(instantiated)
	if reduced.IsFalse() {
		return
	}
	ex.logger.GroundInstantiateQuantifier(s.OriginalClause, terms, reduced, ex.order)
	ex.results.Add(reduced)
}

func (ex *execution) runUnifyLiterals(s *matchprog.UnifyLiterals, selected []term.Atom) {
	a, b := selected[s.SlotA], selected[s.SlotB]
	eqs, ok := term.UnifyAtoms(ex.order, a, b)
	if !ok {
		return
	}
	if ex.logger.IsLogging() {
		if s.SlotA != 0 || s.SlotB != 1 {
			panic("matcher: logging-mode UnifyLiterals requires slots (0, 1)")
		}
		ex.logger.UnifyPredicates(a, b, eqs, ex.order)
	}
	conj := logic.New(nil, logic.ArithConj{PositiveEqs: eqs}, logic.TRUE(), logic.EmptyNegatedConjunctions())
	ex.results.Add(ex.reducer(conj))
}

func splitByPolarity(lits []logic.MatchedLit) (pos, neg []term.Atom) {
	for _, l := range lits {
		if l.Neg {
			neg = append(neg, l.Atom)
		} else {
			pos = append(pos, l.Atom)
		}
	}
	return pos, neg
}
