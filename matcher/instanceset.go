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
	hashset "github.com/hashicorp/go-set/v3"

	"github.com/proverkit/qmatch/logic"
)

// instanceSet is an insertion-ordered, tag-deduplicated collector of
// produced instances, scoped to a single executeMatcher call (spec.md §4.2,
// "a linked-hash set instances : Set[Conjunction] preserving insertion
// order for reproducibility"). The membership test and the insertion order
// are tracked separately: go-set/v3 gives an O(1) tag membership test, and
// order is a plain slice, since the set itself carries no ordering
// guarantee. It lives entirely on the call stack.
type instanceSet struct {
	order []logic.Conjunction
	seen  *hashset.Set[string]
}

func newInstanceSet() *instanceSet {
	return &instanceSet{seen: hashset.New[string](0)}
}

// Add appends c if its tag has not already been recorded in this call.
func (s *instanceSet) Add(c logic.Conjunction) {
	tag := c.Tag()
	if s.seen.Contains(tag) {
		return
	}
	s.seen.Insert(tag)
	s.order = append(s.order, c)
}

func (s *instanceSet) Items() []logic.Conjunction { return s.order }
