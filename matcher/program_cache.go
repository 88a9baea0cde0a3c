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

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/proverkit/qmatch/logic"
	"github.com/proverkit/qmatch/matchprog"
	"github.com/proverkit/qmatch/term"
)

// programKey is the compiled-program memoisation key: (predicate, negative
// polarity of the start literal), per spec.md §4.1's "Cache key" note.
type programKey struct {
	pred string
	neg  bool
}

func (k programKey) String() string { return fmt.Sprintf("%s/%v", k.pred, k.neg) }

// programCache lazily builds and memoises the Choice program for each
// (predicate, polarity) pair observed by a matcher state. It is bounded by
// an LRU so provers with very large predicate alphabets don't grow the
// cache without limit (spec.md Design Notes §9; SPEC_FULL.md domain stack).
type programCache struct {
	cache *lru.Cache[programKey, matchprog.Statement]
	log   *logrus.Entry
}

const programCacheSize = 4096

func newProgramCache(log *logrus.Entry) *programCache {
	c, err := lru.New[programKey, matchprog.Statement](programCacheSize)
	if err != nil {
		panic(err)
	}
	return &programCache{cache: c, log: log}
}

// get returns the memoised program for key, building it via build on a miss.
func (pc *programCache) get(key programKey, build func() matchprog.Statement) matchprog.Statement {
	if prog, ok := pc.cache.Get(key); ok {
		pc.log.WithField("key", key).Debug("program cache hit")
		return prog
	}
	pc.log.WithField("key", key).Debug("program cache miss, compiling")
	prog := build()
	pc.cache.Add(key, prog)
	return prog
}

// buildProgram compiles the Choice over every clause whose matched literal
// set contains an atom of (pred, neg), plus the axiom program for pred when
// matchAxioms holds. arity is taken from the triggering atom, since the
// axiom program needs it at compile time and predicate arity is otherwise
// fixed for a given symbol.
func buildProgram(order term.Order, clauses logic.NegatedConjunctions, oracle logic.PolarityOracle, matchAxioms bool, pred string, neg bool, arity int) matchprog.Statement {
	var options []matchprog.Statement
	for _, c := range clauses.Items() {
		matchedLits, _ := logic.DetermineMatchedLits(c.Pred, oracle)
		for _, lit := range matchedLits {
			if lit.Atom.Pred == pred && lit.Neg == neg {
				options = append(options, matchprog.Compile(order, c, lit.Atom, lit.Neg, oracle))
			}
		}
	}
	if matchAxioms {
		options = append(options, matchprog.CompileAxiom(pred, neg, arity))
	}
	return matchprog.NewChoice(options...)
}
