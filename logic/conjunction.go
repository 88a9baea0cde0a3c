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
	"strings"

	"github.com/proverkit/qmatch/term"
)

// Conjunction is a clause: a quantifier prefix, an arithmetic conjunction,
// a predicate conjunction, and an ordered list of nested negated clauses.
// The matcher only ever accepts or produces clauses whose Quans prefix is
// all-EX; this is enforced at construction (New) and checked again by
// IterativeClauseMatcher's UpdateFacts, UpdateClauses and ReduceClauses
// when matcher.DebugChecks is set.
type Conjunction struct {
	Quans        []Quantifier
	Arith        ArithConj
	Pred         PredConj
	NegatedConjs NegatedConjunctions
}

// New builds a Conjunction, panicking if the quantifier prefix is not
// all-EX -- this invariant is enforced at construction, per spec.md §3.
func New(quans []Quantifier, arith ArithConj, pred PredConj, neg NegatedConjunctions) Conjunction {
	if !AllEX(quans) {
		panic("logic: clause quantifier prefix must be all-EX")
	}
	return Conjunction{Quans: quans, Arith: arith, Pred: pred, NegatedConjs: neg}
}

var falseConj = Conjunction{
	Arith: ArithConj{PositiveEqs: []term.Equation{{LHS: term.ConstLC(1)}}},
	Pred:  TRUE(),
	NegatedConjs: EmptyNegatedConjunctions(),
}

// False returns the canonical contradictory conjunction. IsFalse reports
// true for it, and IterativeClauseMatcher.generatedInstances always
// contains it (spec.md invariant 1).
func False() Conjunction { return falseConj }

// IsFalse reports whether c is semantically FALSE: its arithmetic part is
// trivially unsatisfiable, with no other literals that could make the
// clause escape unsatisfiability (a projecting Reducer is expected to
// normalise to exactly this shape, per the "false propagation" contract).
func (c Conjunction) IsFalse() bool {
	return c.Arith.IsFalse() && c.Pred.IsEmpty() && c.NegatedConjs.Len() == 0
}

// IsAllEX reports whether c's quantifier prefix is entirely EX.
func (c Conjunction) IsAllEX() bool { return AllEX(c.Quans) }

// ClauseState is the per-clause state a caller observes (spec.md §4.5).
type ClauseState int

const (
	// Unmatchable means no literal of the clause is positively matched.
	Unmatchable ClauseState = iota
	// ProducesLits means the clause has matched literals and residual
	// predicate content: instantiation yields a clause still containing
	// predicates.
	ProducesLits
	// Complete means every predicate literal is matched and there are no
	// predicate-bearing nested negated conjunctions: instantiation yields
	// a pure arithmetic result.
	Complete
)

// MatchedLit pairs an atom with the polarity (negated or not) it occurs
// with inside a PredConj.
type MatchedLit struct {
	Atom term.Atom
	Neg  bool
}

// PolarityOracle decides, per predicate, which polarity the matcher
// targets ("is positively matched" in spec.md terms). The source hardcodes
// "always true" but treats this as pluggable from day one (spec.md §9);
// AlwaysPositive reproduces the hardcoded default.
type PolarityOracle interface {
	// PositiveIsMatched reports whether positive literals of pred are the
	// ones the matcher targets (if false, negative literals are targeted
	// instead).
	PositiveIsMatched(pred string) bool
}

// AlwaysPositive is the default oracle: positive literals of every
// predicate are matched.
type AlwaysPositive struct{}

func (AlwaysPositive) PositiveIsMatched(string) bool { return true }

// matched reports whether lit is targeted by oracle.
func matched(oracle PolarityOracle, lit MatchedLit) bool {
	return !lit.Neg == oracle.PositiveIsMatched(lit.Atom.Pred)
}

// DetermineMatchedLits splits pc's literals into matchedLits (targeted by
// oracle) and remainingLits (the rest), in pc's stable order: positive
// atoms first, then negative.
func DetermineMatchedLits(pc PredConj, oracle PolarityOracle) (matchedLits, remainingLits []MatchedLit) {
	for _, a := range pc.AllPositive() {
		l := MatchedLit{Atom: a, Neg: false}
		if matched(oracle, l) {
			matchedLits = append(matchedLits, l)
		} else {
			remainingLits = append(remainingLits, l)
		}
	}
	for _, a := range pc.AllNegative() {
		l := MatchedLit{Atom: a, Neg: true}
		if matched(oracle, l) {
			matchedLits = append(matchedLits, l)
		} else {
			remainingLits = append(remainingLits, l)
		}
	}
	return matchedLits, remainingLits
}

// State computes c's clause state under oracle (spec.md §4.5).
func (c Conjunction) State(oracle PolarityOracle) ClauseState {
	matchedLits, remainingLits := DetermineMatchedLits(c.Pred, oracle)
	if len(matchedLits) == 0 {
		return Unmatchable
	}
	if len(remainingLits) > 0 {
		return ProducesLits
	}
	for _, nc := range c.NegatedConjs.Items() {
		if nc.ReferencesAnyPredicate(func(string) bool { return true }) {
			return ProducesLits
		}
	}
	return Complete
}

// ReferencesPredicate reports whether pred occurs anywhere in c: its own
// predicate conjunction, or recursively inside any nested negated clause.
func (c Conjunction) ReferencesPredicate(pred string) bool {
	return c.ReferencesAnyPredicate(func(p string) bool { return p == pred })
}

// ReferencesAnyPredicate reports whether any predicate symbol occurring
// anywhere in c -- its own predicate conjunction, or recursively inside any
// nested negated clause -- satisfies test.
func (c Conjunction) ReferencesAnyPredicate(test func(string) bool) bool {
	for _, a := range c.Pred.AllPositive() {
		if test(a.Pred) {
			return true
		}
	}
	for _, a := range c.Pred.AllNegative() {
		if test(a.Pred) {
			return true
		}
	}
	for _, nc := range c.NegatedConjs.Items() {
		if nc.ReferencesAnyPredicate(test) {
			return true
		}
	}
	return false
}

// Instantiate substitutes every bound variable index mentioned in subst
// (the outermost EX prefix's variables) with its ground term, and drops
// the whole quantifier prefix; used by the executor's logging-mode
// InstantiateClause, after an EqSolver has produced a full ground
// assignment.
func (c Conjunction) Instantiate(order term.Order, subst map[int]term.LC) Conjunction {
	n := len(c.Quans)
	pos := make([]term.Atom, 0, len(c.Pred.AllPositive()))
	for _, a := range c.Pred.AllPositive() {
		pos = append(pos, substAtom(order, a, subst, n))
	}
	neg := make([]term.Atom, 0, len(c.Pred.AllNegative()))
	for _, a := range c.Pred.AllNegative() {
		neg = append(neg, substAtom(order, a, subst, n))
	}
	posEqs := make([]term.Equation, len(c.Arith.PositiveEqs))
	for i, eq := range c.Arith.PositiveEqs {
		posEqs[i] = term.Equation{LHS: substLC(order, eq.LHS, subst, n)}
	}
	negEqs := make([]term.Equation, len(c.Arith.NegativeEqs))
	for i, eq := range c.Arith.NegativeEqs {
		negEqs[i] = term.Equation{LHS: substLC(order, eq.LHS, subst, n)}
	}
	negConjs := make([]Conjunction, 0, c.NegatedConjs.Len())
	for _, nc := range c.NegatedConjs.Items() {
		negConjs = append(negConjs, nc.Instantiate(order, subst))
	}
	return Conjunction{
		Quans:        nil,
		Arith:        ArithConj{PositiveEqs: posEqs, NegativeEqs: negEqs},
		Pred:         NewPredConj(pos, neg),
		NegatedConjs: NewNegatedConjunctions(negConjs...),
	}
}

func substLC(order term.Order, lc term.LC, subst map[int]term.LC, n int) term.LC {
	out := term.ConstLC(lc.Const)
	for _, m := range lc.Terms {
		if m.V.IsBound() && m.V.Index() < n {
			if repl, ok := subst[m.V.Index()]; ok {
				out = out.Add(order, repl.Scale(order, m.Coeff))
				continue
			}
		}
		out = out.Add(order, term.SingleLC(m.Coeff, m.V))
	}
	return out
}

func substAtom(order term.Order, a term.Atom, subst map[int]term.LC, n int) term.Atom {
	args := make([]term.LC, len(a.Args))
	for i, arg := range a.Args {
		args[i] = substLC(order, arg, subst, n)
	}
	return term.NewAtom(a.Pred, args...)
}

// Resort rebuilds c's canonical form (and every nested negated clause's)
// under a new term order. Required before any operation whose precondition
// includes "sorted by" (spec.md §4.4, IterativeClauseMatcher.sortBy).
func (c Conjunction) Resort(order term.Order) Conjunction {
	return Conjunction{
		Quans:        c.Quans,
		Arith:        c.Arith.Resort(order),
		Pred:         c.Pred.Resort(order),
		NegatedConjs: c.NegatedConjs.Resort(order),
	}
}

// Tag returns a canonical string key for c, equal for two conjunctions iff
// they are identical (modulo nothing further: De Bruijn indices already
// fix variable identity). This is the dedup key used by
// IterativeClauseMatcher.generatedInstances and by the clause store.
func (c Conjunction) Tag() string {
	var b strings.Builder
	b.WriteString("Q[")
	for _, q := range c.Quans {
		b.WriteString(q.String())
	}
	b.WriteString("]")
	c.Arith.tag(&b)
	c.Pred.tag(&b)
	b.WriteString("N[")
	for _, nc := range c.NegatedConjs.Items() {
		b.WriteString(nc.Tag())
		b.WriteByte(';')
	}
	b.WriteString("]")
	return b.String()
}

func (c Conjunction) String() string {
	var parts []string
	for _, q := range c.Quans {
		parts = append(parts, q.String())
	}
	body := c.Arith.String()
	predStr := c.Pred.String()
	if body != "" && predStr != "" {
		body += " & " + predStr
	} else if predStr != "" {
		body = predStr
	}
	if negStr := c.NegatedConjs.String(); negStr != "" {
		if body != "" {
			body += " & "
		}
		body += negStr
	}
	prefix := strings.Join(parts, " ")
	if prefix == "" {
		return body
	}
	return prefix + ". " + body
}
