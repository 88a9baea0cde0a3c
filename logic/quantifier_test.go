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
)

func TestQuantifierDual(t *testing.T) {
	assert.Equal(t, ALL, EX.Dual())
	assert.Equal(t, EX, ALL.Dual())
}

func TestAllEX(t *testing.T) {
	assert.True(t, AllEX([]Quantifier{EX, EX, EX}))
	assert.False(t, AllEX([]Quantifier{EX, ALL}))
	assert.True(t, AllEX(nil))
}
