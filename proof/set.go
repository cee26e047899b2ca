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

package proof

// Set is a set of PjRef, returned by the queries that collect lines from
// across a proof tree (ContainedJustifications, TransitiveDependencies,
// TransitiveDependents). PremiseRef and JustificationRef are comparable
// structs, so the interface values holding them are valid map keys.
type Set struct {
	m map[PjRef]struct{}
}

func newSet() *Set {
	return &Set{m: make(map[PjRef]struct{})}
}

func (s *Set) add(r PjRef) { s.m[r] = struct{}{} }

func (s *Set) remove(r PjRef) { delete(s.m, r) }

// Contains reports whether r is a member of the set.
func (s *Set) Contains(r PjRef) bool {
	_, ok := s.m[r]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.m) }

// Slice returns the set's members in unspecified order.
func (s *Set) Slice() []PjRef {
	out := make([]PjRef, 0, len(s.m))
	for r := range s.m {
		out = append(out, r)
	}
	return out
}
