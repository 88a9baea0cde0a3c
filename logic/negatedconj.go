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
	iradix "github.com/hashicorp/go-immutable-radix/v2"

	"github.com/proverkit/qmatch/term"
)

// NegatedConjunctions is an ordered list of clauses (a clause being a
// Conjunction), backed by a persistent radix tree keyed by each clause's
// canonical tag. Like PredConj, iteration order is tag-lexicographic,
// which is a stable order but need not match insertion order; Diff,
// Partition, and set-minus semantics mirror PredConj's exactly, as
// spec.md §3 requires.
type NegatedConjunctions struct {
	items *iradix.Tree[Conjunction]
}

// EmptyNegatedConjunctions returns the empty clause list.
func EmptyNegatedConjunctions() NegatedConjunctions {
	return NegatedConjunctions{items: iradix.New[Conjunction]()}
}

// NewNegatedConjunctions builds a NegatedConjunctions from an explicit
// clause list, deduplicating by tag.
func NewNegatedConjunctions(clauses ...Conjunction) NegatedConjunctions {
	nc := EmptyNegatedConjunctions()
	for _, c := range clauses {
		nc.items, _, _ = nc.items.Insert([]byte(c.Tag()), c)
	}
	return nc
}

func (n NegatedConjunctions) tree() *iradix.Tree[Conjunction] {
	if n.items == nil {
		return iradix.New[Conjunction]()
	}
	return n.items
}

// Items returns every clause, in a stable order.
func (n NegatedConjunctions) Items() []Conjunction {
	t := n.tree()
	out := make([]Conjunction, 0, t.Len())
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

// Len returns the number of clauses.
func (n NegatedConjunctions) Len() int { return n.tree().Len() }

// Equal reports whether n and other contain the same clauses.
func (n NegatedConjunctions) Equal(other NegatedConjunctions) bool {
	a, b := n.tree(), other.tree()
	if a.Len() != b.Len() {
		return false
	}
	for _, c := range n.Items() {
		if _, ok := b.Get([]byte(c.Tag())); !ok {
			return false
		}
	}
	return true
}

// Diff treats n as "this" and other as "other": shared = this ∩ other,
// newlyAdded = other \ this, exactly as PredConj.Diff.
func (n NegatedConjunctions) Diff(other NegatedConjunctions) (shared, newlyAdded NegatedConjunctions) {
	sharedTree, addedTree := iradix.New[Conjunction](), iradix.New[Conjunction]()
	thisTree := n.tree()
	for _, c := range other.Items() {
		if _, ok := thisTree.Get([]byte(c.Tag())); ok {
			sharedTree, _, _ = sharedTree.Insert([]byte(c.Tag()), c)
			continue
		}
		addedTree, _, _ = addedTree.Insert([]byte(c.Tag()), c)
	}
	return NegatedConjunctions{items: sharedTree}, NegatedConjunctions{items: addedTree}
}

// Partition splits n into clauses for which q holds (kept) and the rest
// (removed).
func (n NegatedConjunctions) Partition(q func(Conjunction) bool) (kept, removed NegatedConjunctions) {
	keptTree, removedTree := iradix.New[Conjunction](), iradix.New[Conjunction]()
	for _, c := range n.Items() {
		if q(c) {
			keptTree, _, _ = keptTree.Insert([]byte(c.Tag()), c)
		} else {
			removedTree, _, _ = removedTree.Insert([]byte(c.Tag()), c)
		}
	}
	return NegatedConjunctions{items: keptTree}, NegatedConjunctions{items: removedTree}
}

// Update returns a new NegatedConjunctions with each clause replaced by
// replace(clause) whenever it differs, alongside the replacement clauses
// (post-image) for every clause that changed.
func (n NegatedConjunctions) Update(replace func(Conjunction) Conjunction) (changed []Conjunction, result NegatedConjunctions) {
	out := iradix.New[Conjunction]()
	for _, c := range n.Items() {
		r := replace(c)
		out, _, _ = out.Insert([]byte(r.Tag()), r)
		if r.Tag() != c.Tag() {
			changed = append(changed, r)
		}
	}
	return changed, NegatedConjunctions{items: out}
}

// Resort rebuilds every clause's canonical form under a new term order.
func (n NegatedConjunctions) Resort(order term.Order) NegatedConjunctions {
	out := make([]Conjunction, 0, n.Len())
	for _, c := range n.Items() {
		out = append(out, c.Resort(order))
	}
	return NewNegatedConjunctions(out...)
}

func (n NegatedConjunctions) String() string {
	s := ""
	for i, c := range n.Items() {
		if i > 0 {
			s += " | "
		}
		s += "!(" + c.String() + ")"
	}
	return s
}
