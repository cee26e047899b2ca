//  Copyright (c) 2023 Uber Technologies, Inc.
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

package equivalence

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/aris/expr"
)

// forEachTruthTable calls f once for every truth assignment over n boolean
// variables.
func forEachTruthTable(n int, f func(table []bool)) {
	table := make([]bool, n)
	for x := 0; x < (1 << n); x++ {
		for i := 0; i < n; i++ {
			table[i] = x&(1<<i) != 0
		}
		f(table)
	}
}

// TestEquivalenceCatalogTruthTables is the brute-force check that every
// registered equivalence actually is one: for every reduction (lhs, rhs) in
// every purely-propositional catalog rule, lhs and rhs must evaluate
// identically under every truth assignment over their shared free
// variables.
func TestEquivalenceCatalogTruthTables(t *testing.T) {
	built := Build()
	for _, name := range bruteForceTruthTableRules {
		rule, ok := built[name]
		require.True(t, ok, "rule %q missing from the catalog", name)

		for _, red := range rule.Reductions() {
			fvSet := expr.FreeVars(red.Pattern)
			fvSet.InsertSet(expr.FreeVars(red.Replacement))
			fv := fvSet.Slice()
			sort.Strings(fv)

			forEachTruthTable(len(fv), func(table []bool) {
				env := make(map[string]bool, len(fv))
				for i, name := range fv {
					env[name] = table[i]
				}
				lhs, err := expr.Eval(red.Pattern, env)
				require.NoError(t, err)
				rhs, err := expr.Eval(red.Replacement, env)
				require.NoError(t, err)
				require.Equalf(t, lhs, rhs, "rule %s: %v != %v under %v", name, red.Pattern, red.Replacement, env)
			})
		}
	}
}
