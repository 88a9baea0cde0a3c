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

// Package matchprog compiles a clause and a designated start literal into a
// small instruction program (a MatchStatement chain) that the matcher
// executor interprets to enumerate ground instances. See package matcher for
// the interpreter.
package matchprog

import (
	"github.com/proverkit/qmatch/logic"
	"github.com/proverkit/qmatch/term"
)

// StmtKind tags the concrete type of a Statement, letting the executor
// dispatch with a single switch on Kind() instead of walking an
// inheritance hierarchy.
type StmtKind int

const (
	KindSelectLiteral StmtKind = iota
	KindCheckMayAlias
	KindCheckMayAliasUnary
	KindInstantiateClause
	KindUnifyLiterals
	KindChoice
)

func (k StmtKind) String() string {
	switch k {
	case KindSelectLiteral:
		return "SelectLiteral"
	case KindCheckMayAlias:
		return "CheckMayAlias"
	case KindCheckMayAliasUnary:
		return "CheckMayAliasUnary"
	case KindInstantiateClause:
		return "InstantiateClause"
	case KindUnifyLiterals:
		return "UnifyLiterals"
	case KindChoice:
		return "Choice"
	default:
		return "?"
	}
}

// Statement is one node of a matcher program. Every concrete type below
// implements it; the value Kind() returns identifies which one a Statement
// actually is, mirroring the tagged-node style of text/template's parser
// rather than a class hierarchy.
type Statement interface {
	Kind() StmtKind
}

// SelectLiteral binds the next scratch slot to some atom of predicate Pred
// and polarity Neg, drawn from the fact base plus the additional buffers;
// Next is the continuation tried for every binding found.
type SelectLiteral struct {
	Pred string
	Neg  bool
	Next Statement
}

func (*SelectLiteral) Kind() StmtKind { return KindSelectLiteral }

// CheckMayAlias requires that argument ArgA of the slot-SlotA atom may alias
// argument ArgB of the slot-SlotB atom.
type CheckMayAlias struct {
	SlotA, ArgA int
	SlotB, ArgB int
	Next        Statement
}

func (*CheckMayAlias) Kind() StmtKind { return KindCheckMayAlias }

// CheckMayAliasUnary requires that argument Arg of the slot-Slot atom may
// alias the fixed linear combination LC.
type CheckMayAliasUnary struct {
	Slot, Arg int
	LC        term.LC
	Next      Statement
}

func (*CheckMayAliasUnary) Kind() StmtKind { return KindCheckMayAliasUnary }

// InstantiateClause is a terminal statement: it emits an instance built from
// the original clause, the matched literals (start literal first), the
// clause's quantifier prefix and arithmetic conjunction, the literals that
// were not matched, and the clause's nested negated conjunctions.
type InstantiateClause struct {
	OriginalClause logic.Conjunction
	MatchedLits    []logic.MatchedLit
	Quans          []logic.Quantifier
	Arith          logic.ArithConj
	RemainingLits  []logic.MatchedLit
	NegConjs       logic.NegatedConjunctions
}

func (*InstantiateClause) Kind() StmtKind { return KindInstantiateClause }

// UnifyLiterals is a terminal statement used by the axiom matcher: it
// unifies the atoms bound to slots SlotA and SlotB.
type UnifyLiterals struct {
	SlotA, SlotB int
}

func (*UnifyLiterals) Kind() StmtKind { return KindUnifyLiterals }

// Choice is a nondeterministic union of programs. It must be the last
// statement of any chain it appears in; NewChoice is the only supported
// constructor, enforcing that invariant by never attaching a Next.
type Choice struct {
	Options []Statement
}

func (*Choice) Kind() StmtKind { return KindChoice }

// NewChoice wraps options in a Choice. A nil/empty options list yields a
// no-op Choice, matching the compiler's "empty program list" case.
func NewChoice(options ...Statement) *Choice {
	return &Choice{Options: options}
}
