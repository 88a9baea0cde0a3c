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

package matchprog

import (
	"strings"

	"github.com/proverkit/qmatch/logic"
	"github.com/proverkit/qmatch/term"
)

// aliasSite records that slot-Slot's argument Arg was seen carrying a given
// linear combination, so later arguments carrying the same combination can
// be checked against it instead of against the whole history.
type aliasSite struct {
	Slot, Arg int
}

// Compile builds the matcher program that finds ground instances of c whose
// first matched literal equals start (with polarity startNeg), per spec.md
// §4.1. It panics if start is not among c's matched literals under oracle --
// a programming error in the caller, not a runtime condition.
func Compile(order term.Order, c logic.Conjunction, start term.Atom, startNeg bool, oracle logic.PolarityOracle) Statement {
	matchedLits, remainingLits := logic.DetermineMatchedLits(c.Pred, oracle)

	startIdx := -1
	for i, lit := range matchedLits {
		if lit.Neg == startNeg && lit.Atom.Equal(start) {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		panic("matchprog: start literal is not a matched literal of the clause")
	}

	nonStart := make([]logic.MatchedLit, 0, len(matchedLits)-1)
	for i, lit := range matchedLits {
		if i != startIdx {
			nonStart = append(nonStart, lit)
		}
	}

	// Collect node builders in forward emission order (slot 0's alias
	// checks first, matching spec.md step 2 running before step 3), so
	// `seen` is populated in the same order the program will actually
	// check it at runtime.
	seen := make(map[string][]aliasSite)
	var builders []func(Statement) Statement
	builders = append(builders, checkBuilders(start, 0, seen)...)

	for i, lit := range nonStart {
		slot := i + 1
		lit := lit
		builders = append(builders, func(next Statement) Statement {
			return &SelectLiteral{Pred: lit.Atom.Pred, Neg: lit.Neg, Next: next}
		})
		builders = append(builders, checkBuilders(lit.Atom, slot, seen)...)
	}

	tail := Statement(&InstantiateClause{
		OriginalClause: c,
		MatchedLits:    reorderStartFirst(matchedLits, startIdx),
		Quans:          c.Quans,
		Arith:          c.Arith,
		RemainingLits:  remainingLits,
		NegConjs:       c.NegatedConjs,
	})
	for i := len(builders) - 1; i >= 0; i-- {
		tail = builders[i](tail)
	}
	return tail
}

// checkBuilders returns, in argument order, a CheckMayAliasUnary builder for
// every ground argument and a CheckMayAlias builder for every earlier site
// (possibly an earlier argument of the same atom) carrying the same linear
// combination, recording this slot's arguments into seen as it goes -- spec.md
// step 2/3's alias-check emission.
func checkBuilders(atom term.Atom, slot int, seen map[string][]aliasSite) []func(Statement) Statement {
	var builders []func(Statement) Statement
	for j, lc := range atom.Args {
		j, lc := j, lc
		key := lcKey(lc)
		for _, site := range seen[key] {
			site := site
			builders = append(builders, func(next Statement) Statement {
				return &CheckMayAlias{SlotA: slot, ArgA: j, SlotB: site.Slot, ArgB: site.Arg, Next: next}
			})
		}
		if lc.IsGround() {
			builders = append(builders, func(next Statement) Statement {
				return &CheckMayAliasUnary{Slot: slot, Arg: j, LC: lc, Next: next}
			})
		}
		seen[key] = append(seen[key], aliasSite{Slot: slot, Arg: j})
	}
	return builders
}

func lcKey(lc term.LC) string {
	var b strings.Builder
	lc.Tag(&b)
	return b.String()
}

func reorderStartFirst(matchedLits []logic.MatchedLit, startIdx int) []logic.MatchedLit {
	out := make([]logic.MatchedLit, 0, len(matchedLits))
	out = append(out, matchedLits[startIdx])
	for i, lit := range matchedLits {
		if i != startIdx {
			out = append(out, lit)
		}
	}
	return out
}

// CompileAxiom builds the two-slot axiom program for predicate pred of the
// given arity: SelectLiteral(pred, startNeg) into slot 1, CheckMayAlias(0,
// i, 1, i) for every argument index i, then UnifyLiterals(0, 1). It pairs a
// new atom of polarity startNeg with every other atom of pred of the same
// polarity and unifies their arguments (spec.md §4.1, "Axiom matcher").
func CompileAxiom(pred string, startNeg bool, arity int) Statement {
	tail := Statement(&UnifyLiterals{SlotA: 0, SlotB: 1})
	for i := arity - 1; i >= 0; i-- {
		tail = &CheckMayAlias{SlotA: 0, ArgA: i, SlotB: 1, ArgB: i, Next: tail}
	}
	return &SelectLiteral{Pred: pred, Neg: startNeg, Next: tail}
}
