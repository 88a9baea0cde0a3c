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

// Package term implements the canonical term/atom data model: linear
// combinations of constants and bound (De Bruijn) variables, predicate
// atoms built from them, a pluggable total term order, and the
// unification/may-alias primitives the matcher relies on.
package term

import "sync/atomic"

var constSerial int64

// Const is a free constant symbol, such as a skolem constant introduced
// during proof search. Identity is by pointer, not by Name: two distinct
// *Const values with the same Name denote different symbols, mirroring how
// the teacher's DistinctConst/DistinctVar pointer-identity trick works for
// variables that share a textual name. Serial breaks ties deterministically
// when two live constants share a Name, without relying on memory
// addresses (which are not reproducible across runs).
type Const struct {
	Name   string
	serial int64
}

// NewConst returns a fresh constant symbol with the given display name.
func NewConst(name string) *Const {
	return &Const{Name: name, serial: atomic.AddInt64(&constSerial, 1)}
}

func (c *Const) String() string {
	if c == nil {
		return "<nil-const>"
	}
	return c.Name
}
