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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/proverkit/qmatch/term"
)

func clauseWithConst(c int64) Conjunction {
	p := term.NewAtom("p", term.ConstLC(c))
	return New(nil, ArithConj{}, NewPredConj([]term.Atom{p}, nil), EmptyNegatedConjunctions())
}

func TestNegatedConjunctionsDiff(t *testing.T) {
	c1, c2, c3 := clauseWithConst(1), clauseWithConst(2), clauseWithConst(3)
	current := NewNegatedConjunctions(c1, c2)
	updated := NewNegatedConjunctions(c1, c2, c3)

	shared, added := current.Diff(updated)
	assert.Equal(t, 2, shared.Len())
	assert.Equal(t, 1, added.Len())
	assert.ElementsMatch(t, []Conjunction{c3}, added.Items())
}

func TestNegatedConjunctionsUpdate(t *testing.T) {
	c1, c2 := clauseWithConst(1), clauseWithConst(2)
	nc := NewNegatedConjunctions(c1, c2)

	changed, result := nc.Update(func(c Conjunction) Conjunction {
		if c.Tag() == c1.Tag() {
			return False()
		}
		return c
	})
	assert.Len(t, changed, 1)
	assert.Equal(t, 2, result.Len())
}

func TestNegatedConjunctionsDedup(t *testing.T) {
	c1 := clauseWithConst(1)
	nc := NewNegatedConjunctions(c1, c1)
	assert.Equal(t, 1, nc.Len())
}
