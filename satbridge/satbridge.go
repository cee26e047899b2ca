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

// Package satbridge hands a propositional formula, already reduced to CNF by the normalform
// package, to an external SAT oracle. The checker uses this to decide truth-functional
// consequence: a claimed conclusion follows from a set of premises iff premises-and-not-conclusion
// is unsatisfiable.
package satbridge

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
	"go.uber.org/aris/normalform"
)

// Solver decides satisfiability of a CNF formula.
type Solver interface {
	// Satisfiable reports whether the given CNF (as produced by CnfExpr.ToSATFormula) has a
	// satisfying assignment.
	Satisfiable(f normalform.SATFormula) (bool, error)
}

// Gophersat is the default Solver, backed by github.com/crillab/gophersat.
type Gophersat struct{}

var _ Solver = Gophersat{}

// Satisfiable implements Solver.
func (Gophersat) Satisfiable(f normalform.SATFormula) (bool, error) {
	pb, err := solver.ParseSlice(f.Clauses)
	if err != nil {
		return false, fmt.Errorf("satbridge: could not build problem: %w", err)
	}
	s := solver.New(pb)
	return s.Solve() == solver.Sat, nil
}

// IsUnsatisfiable is a convenience wrapper used to decide entailment: premises entail
// conclusion iff premises-and-not-conclusion, rendered as f, is unsatisfiable.
func IsUnsatisfiable(s Solver, f normalform.SATFormula) (bool, error) {
	sat, err := s.Satisfiable(f)
	if err != nil {
		return false, err
	}
	return !sat, nil
}
