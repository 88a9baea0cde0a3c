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
	"github.com/benbjohnson/immutable"

	"github.com/proverkit/qmatch/logic"
)

// generatedSet is the deduplication set of every instance ever produced by
// a matcher state's ancestry, backed by a persistent hash map keyed by
// canonical tag so that backtracking (discarding a state for an earlier
// one) is structural-sharing rather than a deep copy (spec.md Design Notes
// §9; SPEC_FULL.md domain stack).
type generatedSet struct {
	m *immutable.Map[string, logic.Conjunction]
}

func newGeneratedSet() generatedSet {
	gs := generatedSet{m: immutable.NewMap[string, logic.Conjunction](nil)}
	return gs.add(logic.False())
}

func (g generatedSet) contains(c logic.Conjunction) bool {
	_, ok := g.m.Get(c.Tag())
	return ok
}

func (g generatedSet) add(c logic.Conjunction) generatedSet {
	return generatedSet{m: g.m.Set(c.Tag(), c)}
}

func (g generatedSet) addAll(cs []logic.Conjunction) generatedSet {
	out := g
	for _, c := range cs {
		out = out.add(c)
	}
	return out
}

// reduceAll rebuilds the set by replacing every member with reducer(member),
// used by reduceClauses to keep dedup modulo the new arithmetic context.
// The canonical FALSE is carried over as it is (newGeneratedSet already
// holds it) rather than passed through reducer.
func (g generatedSet) reduceAll(reducer Reducer) generatedSet {
	out := newGeneratedSet()
	falseTag := logic.False().Tag()
	it := g.m.Iterator()
	for !it.Done() {
		tag, c, _ := it.Next()
		if tag == falseTag {
			continue
		}
		out = out.add(reducer(c))
	}
	return out
}

func (g generatedSet) len() int { return g.m.Len() }
