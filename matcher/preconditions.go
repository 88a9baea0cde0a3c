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
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/proverkit/qmatch/term"
)

var (
	errNotSorted   = errors.New("matcher: state is not sorted by the supplied order")
	errNonEXClause = errors.New("matcher: a clause in the state has a non-EX outer quantifier")
)

// collectPreconditionErrors gathers every precondition violation the
// debug-mode checks can detect in one pass, rather than surfacing only the
// first (spec.md §7, category 2).
func collectPreconditionErrors(m *IterativeClauseMatcher, order term.Order) []error {
	var errs []error
	if !m.IsSortedBy(order) {
		errs = append(errs, errNotSorted)
	}
	for _, c := range m.clauses.Items() {
		if !c.IsAllEX() {
			errs = append(errs, errNonEXClause)
			break
		}
	}
	return errs
}

func combinePreconditionErrors(errs []error) error {
	var result *multierror.Error
	for _, e := range errs {
		result = multierror.Append(result, e)
	}
	return result
}
