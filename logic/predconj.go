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

	iradix "github.com/hashicorp/go-immutable-radix/v2"
	"github.com/proverkit/qmatch/term"
)

// PredConj is a predicate conjunction: a pair of atom sets (positive,
// negative), closed under the term order and free of duplicates. It is
// backed by two persistent radix trees keyed by each atom's canonical tag,
// giving structural sharing across the states an IterativeClauseMatcher
// returns and a deterministic (tag-lexicographic) "stable order" for
// iteration, as spec.md requires of PositiveLitsWithPred/NegativeLitsWithPred.
type PredConj struct {
	pos *iradix.Tree[term.Atom]
	neg *iradix.Tree[term.Atom]
}

// TRUE is the empty predicate conjunction (vacuously true).
func TRUE() PredConj {
	return PredConj{pos: iradix.New[term.Atom](), neg: iradix.New[term.Atom]()}
}

// NewPredConj builds a PredConj from explicit positive and negative atom
// lists, deduplicating by tag.
func NewPredConj(pos, neg []term.Atom) PredConj {
	pc := TRUE()
	for _, a := range pos {
		pc.pos, _, _ = pc.pos.Insert([]byte(a.Tag()), a)
	}
	for _, a := range neg {
		pc.neg, _, _ = pc.neg.Insert([]byte(a.Tag()), a)
	}
	return pc
}

func treeAtoms(t *iradix.Tree[term.Atom]) []term.Atom {
	if t == nil {
		return nil
	}
	out := make([]term.Atom, 0, t.Len())
	it := t.Iterator()
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// PositiveLitsWithPred returns the positive atoms of predicate pred, in a
// stable (tag-lexicographic) order.
func (p PredConj) PositiveLitsWithPred(pred string) []term.Atom {
	return filterPred(treeAtoms(p.pos), pred)
}

// NegativeLitsWithPred returns the negative atoms of predicate pred, in a
// stable order.
func (p PredConj) NegativeLitsWithPred(pred string) []term.Atom {
	return filterPred(treeAtoms(p.neg), pred)
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

// AllPositive returns every positive atom, in a stable order.
func (p PredConj) AllPositive() []term.Atom { return treeAtoms(p.pos) }

// AllNegative returns every negative atom, in a stable order.
func (p PredConj) AllNegative() []term.Atom { return treeAtoms(p.neg) }

// IsEmpty reports whether p carries no literals.
func (p PredConj) IsEmpty() bool {
	return (p.pos == nil || p.pos.Len() == 0) && (p.neg == nil || p.neg.Len() == 0)
}

// Equal reports whether p and other carry the same atoms on both
// polarities.
func (p PredConj) Equal(other PredConj) bool {
	return sameTree(p.pos, other.pos) && sameTree(p.neg, other.neg)
}

func sameTree(a, b *iradix.Tree[term.Atom]) bool {
	aLen, bLen := treeLen(a), treeLen(b)
	if aLen != bLen {
		return false
	}
	atoms := treeAtoms(a)
	for _, at := range atoms {
		if b == nil {
			return false
		}
		if _, ok := b.Get([]byte(at.Tag())); !ok {
			return false
		}
	}
	return true
}

func treeLen(t *iradix.Tree[term.Atom]) int {
	if t == nil {
		return 0
	}
	return t.Len()
}

// Diff treats p as "this" and other as "other": it returns shared = this ∩
// other and newlyAdded = other \ this, independently on each polarity, per
// spec.md §3's PredConj.diff contract.
func (p PredConj) Diff(other PredConj) (shared, newlyAdded PredConj) {
	sharedPos, addedPos := diffTree(p.pos, other.pos)
	sharedNeg, addedNeg := diffTree(p.neg, other.neg)
	return PredConj{pos: sharedPos, neg: sharedNeg}, PredConj{pos: addedPos, neg: addedNeg}
}

func diffTree(this, other *iradix.Tree[term.Atom]) (shared, added *iradix.Tree[term.Atom]) {
	shared, added = iradix.New[term.Atom](), iradix.New[term.Atom]()
	for _, a := range treeAtoms(other) {
		if this != nil {
			if _, ok := this.Get([]byte(a.Tag())); ok {
				shared, _, _ = shared.Insert([]byte(a.Tag()), a)
				continue
			}
		}
		added, _, _ = added.Insert([]byte(a.Tag()), a)
	}
	return shared, added
}

// Partition splits p into the atoms for which q holds (kept) and the rest
// (removed), independently on each polarity.
func (p PredConj) Partition(q func(term.Atom) bool) (kept, removed PredConj) {
	keptPos, removedPos := partitionTree(p.pos, q)
	keptNeg, removedNeg := partitionTree(p.neg, q)
	return PredConj{pos: keptPos, neg: keptNeg}, PredConj{pos: removedPos, neg: removedNeg}
}

func partitionTree(t *iradix.Tree[term.Atom], q func(term.Atom) bool) (kept, removed *iradix.Tree[term.Atom]) {
	kept, removed = iradix.New[term.Atom](), iradix.New[term.Atom]()
	for _, a := range treeAtoms(t) {
		if q(a) {
			kept, _, _ = kept.Insert([]byte(a.Tag()), a)
		} else {
			removed, _, _ = removed.Insert([]byte(a.Tag()), a)
		}
	}
	return kept, removed
}

// Resort rebuilds every atom's canonical form under a new term order.
func (p PredConj) Resort(order term.Order) PredConj {
	pos := make([]term.Atom, 0, treeLen(p.pos))
	for _, a := range treeAtoms(p.pos) {
		pos = append(pos, a.Resort(order))
	}
	neg := make([]term.Atom, 0, treeLen(p.neg))
	for _, a := range treeAtoms(p.neg) {
		neg = append(neg, a.Resort(order))
	}
	return NewPredConj(pos, neg)
}

func (p PredConj) tag(buf *strings.Builder) {
	buf.WriteString("P[")
	for _, a := range treeAtoms(p.pos) {
		buf.WriteString(a.Tag())
		buf.WriteByte(';')
	}
	buf.WriteString("]!P[")
	for _, a := range treeAtoms(p.neg) {
		buf.WriteString(a.Tag())
		buf.WriteByte(';')
	}
	buf.WriteByte(']')
}

func (p PredConj) String() string {
	var parts []string
	for _, a := range treeAtoms(p.pos) {
		parts = append(parts, a.String())
	}
	for _, a := range treeAtoms(p.neg) {
		parts = append(parts, "!"+a.String())
	}
	return strings.Join(parts, " & ")
}
