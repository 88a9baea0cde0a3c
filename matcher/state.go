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
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/proverkit/qmatch/logic"
	"github.com/proverkit/qmatch/matchprog"
	"github.com/proverkit/qmatch/term"
)

// DebugChecks toggles the precondition assertions described in spec.md §7.2
// (sortedness, all-EX clause prefixes) in UpdateFacts, UpdateClauses and
// ReduceClauses; each check adds a pass over the clause set. Off by
// default, matching "opt-in check" in Design Notes §9; the test suite
// leaves it off.
var DebugChecks = false

// IterativeClauseMatcher is the incremental matcher state: the fact base,
// the matchable clause set, the compiled-program cache, and the
// deduplication set of every instance produced by this state's ancestry
// (spec.md §3). It is logically immutable: every mutator below returns a
// new value sharing structural substructure with the receiver; callers that
// backtrack retain the previous value.
type IterativeClauseMatcher struct {
	order              term.Order
	currentFacts       logic.PredConj
	clauses            logic.NegatedConjunctions
	matchAxioms        bool
	oracle             logic.PolarityOracle
	programs           *programCache
	generatedInstances generatedSet
	eqSolver           EqSolver
	log                *logrus.Entry
}

// Empty returns a fresh matcher state with no facts and no clauses.
// matchAxioms controls whether an axiom matcher is installed per predicate
// (spec.md §3). Logging-mode ground instantiation is left unsupported
// (every InstantiateClause reached with a logging Logger will panic per
// spec.md §7.3) until WithEqSolver installs a real solver; this keeps
// EqSolver out of the public per-call signatures spec.md §6 defines, as a
// construction-time collaborator instead.
func Empty(matchAxioms bool) *IterativeClauseMatcher {
	log := logrus.WithField("component", "matcher")
	return &IterativeClauseMatcher{
		order:              term.DefaultOrder{},
		currentFacts:       logic.TRUE(),
		clauses:            logic.EmptyNegatedConjunctions(),
		matchAxioms:        matchAxioms,
		oracle:             logic.AlwaysPositive{},
		programs:           newProgramCache(log),
		generatedInstances: newGeneratedSet(),
		eqSolver:           noEqSolver{},
		log:                log,
	}
}

// WithEqSolver returns a copy of m that uses solver for logging-mode ground
// instantiation.
func (m *IterativeClauseMatcher) WithEqSolver(solver EqSolver) *IterativeClauseMatcher {
	next := *m
	next.eqSolver = solver
	return &next
}

// WithOracle returns a copy of m that uses oracle to decide, per predicate,
// which polarity the matcher targets (spec.md Design Notes §9).
func (m *IterativeClauseMatcher) WithOracle(oracle logic.PolarityOracle) *IterativeClauseMatcher {
	next := *m
	next.oracle = oracle
	next.programs = newProgramCache(m.log)
	return &next
}

// Clauses returns the currently matchable clause set.
func (m *IterativeClauseMatcher) Clauses() logic.NegatedConjunctions { return m.clauses }

// IsSortedBy reports whether the order m was built or last sorted under is
// equal to order (compared with reflect.DeepEqual), making SortBy(order) a
// no-op (spec.md invariant 7).
func (m *IterativeClauseMatcher) IsSortedBy(order term.Order) bool {
	return reflect.DeepEqual(m.order, order)
}

// FactsAreOutdated is a debug helper: it reports whether actual differs
// from m's currentFacts, which a caller can use to detect a stale state
// being driven against a newer fact base than it was built for.
func (m *IterativeClauseMatcher) FactsAreOutdated(actual logic.PredConj) bool {
	return !m.currentFacts.Equal(actual)
}

// SortBy rebuilds facts, clauses, and the dedup set under a new term order.
func (m *IterativeClauseMatcher) SortBy(order term.Order) *IterativeClauseMatcher {
	if m.IsSortedBy(order) {
		return m
	}
	next := *m
	next.order = order
	next.currentFacts = m.currentFacts.Resort(order)
	next.clauses = m.clauses.Resort(order)
	next.generatedInstances = m.generatedInstances.reduceAll(func(c logic.Conjunction) logic.Conjunction {
		return c.Resort(order)
	})
	next.programs = newProgramCache(m.log)
	return &next
}

func (m *IterativeClauseMatcher) assertPreconditions(order term.Order) {
	if !DebugChecks {
		return
	}
	errs := collectPreconditionErrors(m, order)
	if len(errs) > 0 {
		panic(combinePreconditionErrors(errs))
	}
}

// UpdateFacts advances m to newFacts, running the compiled matcher programs
// for every newly added atom against the previously-shared fact pool plus
// whatever has already been processed earlier in this same call (spec.md
// §4.4). It returns the newly produced, non-duplicate, relevant instances
// and the resulting state.
func (m *IterativeClauseMatcher) UpdateFacts(
	newFacts logic.PredConj,
	mayAlias term.MayAlias,
	reducer Reducer,
	isIrrelevantMatch IsIrrelevantMatch,
	logger Logger,
	order term.Order,
) ([]logic.Conjunction, *IterativeClauseMatcher) {
	m.assertPreconditions(order)
	if m.currentFacts.Equal(newFacts) {
		return nil, m
	}

	// this = old facts, other = new facts: shared = old ∩ new (the pool
	// added atoms match against), added = new \ old (the atoms that seed
	// new matches). Only `added` atoms trigger program execution.
	shared, added := m.currentFacts.Diff(newFacts)
	batch, gi, programs := m.matchAddedAtoms(shared, added, mayAlias, reducer, isIrrelevantMatch, logger, order)

	next := *m
	next.currentFacts = newFacts
	next.generatedInstances = gi
	next.programs = programs
	m.log.WithFields(logrus.Fields{"added": len(batch)}).Debug("updateFacts produced instances")
	return batch, &next
}

// matchAddedAtoms runs the per-(pred,polarity) program for every atom in
// added, in the order spec.md §4.4/§9 require: positive buffer before
// negative, each atom entering its own buffer only after its own matches
// have all been enumerated. It shares m.programs (building/caching lazily)
// since fact updates never invalidate compiled programs.
func (m *IterativeClauseMatcher) matchAddedAtoms(
	shared, added logic.PredConj,
	mayAlias term.MayAlias,
	reducer Reducer,
	isIrrelevantMatch IsIrrelevantMatch,
	logger Logger,
	order term.Order,
) ([]logic.Conjunction, generatedSet, *programCache) {
	var batch []logic.Conjunction
	gi := m.generatedInstances
	programs := m.programs
	var addPos, addNeg []term.Atom

	process := func(a term.Atom, neg bool) {
		key := programKey{pred: a.Pred, neg: neg}
		prog := programs.get(key, func() matchprog.Statement {
			return buildProgram(order, m.clauses, m.oracle, m.matchAxioms, a.Pred, neg, len(a.Args))
		})
		produced := executeMatcher(a, prog, shared, addPos, addNeg, mayAlias, reducer, logger, m.eqSolver, order)
		for _, inst := range produced {
			if gi.contains(inst) || isIrrelevantMatch(inst) {
				continue
			}
			gi = gi.add(inst)
			batch = append(batch, inst)
		}
	}

	for _, a := range added.AllPositive() {
		process(a, false)
		addPos = append(addPos, a)
	}
	for _, a := range added.AllNegative() {
		process(a, true)
		addNeg = append(addNeg, a)
	}

	return batch, gi, programs
}

// UpdateClauses advances m to newClauses. Newly added clauses are matched
// against the current facts as if they had just been installed (spec.md
// §4.4); the program cache is always rebuilt since it is indexed by the
// (now-changed) clause set.
func (m *IterativeClauseMatcher) UpdateClauses(
	newClauses logic.NegatedConjunctions,
	mayAlias term.MayAlias,
	reducer Reducer,
	isIrrelevantMatch IsIrrelevantMatch,
	logger Logger,
	order term.Order,
) ([]logic.Conjunction, *IterativeClauseMatcher) {
	m.assertPreconditions(order)
	if m.clauses.Equal(newClauses) {
		return nil, m
	}

	// this = old clauses, other = new clauses: newlyAdded = new \ old, the
	// clauses to match against currentFacts as if just installed.
	_, added := m.clauses.Diff(newClauses)

	probe := &IterativeClauseMatcher{
		order:              order,
		currentFacts:       logic.TRUE(),
		clauses:            added,
		matchAxioms:        false,
		oracle:             m.oracle,
		programs:           newProgramCache(m.log),
		generatedInstances: m.generatedInstances,
		eqSolver:           m.eqSolver,
		log:                m.log,
	}
	batch, gi, _ := probe.matchAddedAtoms(logic.TRUE(), m.currentFacts, mayAlias, reducer, isIrrelevantMatch, logger, order)

	next := *m
	next.clauses = newClauses
	next.generatedInstances = gi
	next.programs = newProgramCache(m.log)
	return batch, &next
}

// PredicatePredicate is a boolean test over predicate symbols, injected
// into Remove (spec.md §4.4's "partition... by the supplied predicate").
type PredicatePredicate func(pred string) bool

// Remove drops every clause and fact whose predicate satisfies
// removePred, returning the removed clauses (spec.md §4.4,
// "remove(predicate)"). The program cache is reset only when a clause was
// actually dropped.
func (m *IterativeClauseMatcher) Remove(removePred PredicatePredicate) ([]logic.Conjunction, *IterativeClauseMatcher) {
	keptClauses, removedClauses := m.clauses.Partition(func(c logic.Conjunction) bool {
		return !c.ReferencesAnyPredicate(removePred)
	})
	keptFacts, removedFacts := m.currentFacts.Partition(func(a term.Atom) bool {
		return !removePred(a.Pred)
	})

	removedFactCount := len(removedFacts.AllPositive()) + len(removedFacts.AllNegative())
	m.log.WithFields(logrus.Fields{
		"clauses": removedClauses.Len(),
		"facts":   removedFactCount,
	}).Debug("remove dropped clauses and facts")

	next := *m
	next.currentFacts = keptFacts
	if removedClauses.Len() == 0 {
		return nil, &next
	}
	next.clauses = keptClauses
	next.programs = newProgramCache(m.log)
	return removedClauses.Items(), &next
}

// ReduceClauses applies reducer to every clause (skipping ones with no
// constants and no ground atoms at all, already fully reduced), and to the
// deduplication set, so future dedup is modulo the new arithmetic context
// (spec.md §4.4). It returns the clauses that changed.
func (m *IterativeClauseMatcher) ReduceClauses(reducer Reducer, order term.Order) ([]logic.Conjunction, *IterativeClauseMatcher) {
	m.assertPreconditions(order)

	reducedClauses := make([]logic.Conjunction, 0, m.clauses.Len())
	for _, c := range m.clauses.Items() {
		if !c.Arith.HasConstants() && !hasGroundAtom(c) {
			reducedClauses = append(reducedClauses, c)
			continue
		}
		reducedClauses = append(reducedClauses, reducer(c))
	}
	newClauses := logic.NewNegatedConjunctions(reducedClauses...)

	_, reductions := m.clauses.Diff(newClauses)

	next := *m
	next.generatedInstances = m.generatedInstances.reduceAll(reducer)
	if reductions.Len() > 0 {
		next.clauses = newClauses
		next.programs = newProgramCache(m.log)
	}
	return reductions.Items(), &next
}

// hasGroundAtom reports whether c carries at least one fully-ground
// literal (of either polarity) -- something a reducer could actually act
// on. A clause whose atoms all mention bound variables has nothing
// concrete to reduce.
func hasGroundAtom(c logic.Conjunction) bool {
	for _, a := range c.Pred.AllPositive() {
		if a.IsGround() {
			return true
		}
	}
	for _, a := range c.Pred.AllNegative() {
		if a.IsGround() {
			return true
		}
	}
	return false
}
