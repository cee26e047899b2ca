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

package rewrite

import "go.uber.org/aris/expr"

// permutations returns every ordering of list. Used to expand a pattern's
// commutative Assoc nodes into one rule per argument ordering; deliberately
// slow, and deliberately only ever run on small, fixed rule patterns at
// catalog-construction time.
func permutations(list []expr.Expr) [][]expr.Expr {
	if len(list) <= 1 {
		cp := make([]expr.Expr, len(list))
		copy(cp, list)
		return [][]expr.Expr{cp}
	}
	var result [][]expr.Expr
	for i := range list {
		rest := make([]expr.Expr, 0, len(list)-1)
		rest = append(rest, list[:i]...)
		rest = append(rest, list[i+1:]...)
		for _, perm := range permutations(rest) {
			combo := make([]expr.Expr, 0, len(list))
			combo = append(combo, list[i])
			combo = append(combo, perm...)
			result = append(result, combo)
		}
	}
	return result
}

// multiCartesianProduct returns the Cartesian product of the given slices.
func multiCartesianProduct(slices [][]expr.Expr) [][]expr.Expr {
	result := [][]expr.Expr{{}}
	for _, s := range slices {
		var next [][]expr.Expr
		for _, combo := range result {
			for _, e := range s {
				nc := make([]expr.Expr, len(combo), len(combo)+1)
				copy(nc, combo)
				next = append(next, append(nc, e))
			}
		}
		result = next
	}
	return result
}
