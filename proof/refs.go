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

import "fmt"

// LineID is a monotonically increasing identifier backing every reference
// type in a proof tree. IDs are unique across an entire proof, including
// its nested subproofs, and are never reused, which is what makes
// references stable across edits.
type LineID uint64

// RuleID names a rule by its checker-registered identifier. The proof
// package treats it as opaque; dispatch and validation live in the checker
// package, which avoids a dependency cycle (a Rule's Check function needs
// to read the Proof it is validating).
type RuleID string

// PremiseRef names a premise line. It is stable for the premise's lifetime:
// only removing that exact premise invalidates it.
type PremiseRef struct{ id LineID }

// JustificationRef names a justification (non-premise) line.
type JustificationRef struct{ id LineID }

// SubproofRef names a nested subproof.
type SubproofRef struct{ id LineID }

func (r PremiseRef) ID() LineID       { return r.id }
func (r JustificationRef) ID() LineID { return r.id }
func (r SubproofRef) ID() LineID      { return r.id }

func (r PremiseRef) String() string       { return fmt.Sprintf("PremiseRef(%d)", r.id) }
func (r JustificationRef) String() string { return fmt.Sprintf("JustificationRef(%d)", r.id) }
func (r SubproofRef) String() string      { return fmt.Sprintf("SubproofRef(%d)", r.id) }

// PjRef names any line: a premise or a justification.
type PjRef interface {
	ID() LineID
	isPjRef()
}

func (r PremiseRef) isPjRef()       {}
func (r JustificationRef) isPjRef() {}

// PjsRef names any line or subproof.
type PjsRef interface {
	ID() LineID
	isPjsRef()
}

func (r PremiseRef) isPjsRef()       {}
func (r JustificationRef) isPjsRef() {}
func (r SubproofRef) isPjsRef()      {}

// lineTag is the payload of one entry in a proof's line order: either a
// justification or a nested subproof, named by the enclosing proof's
// LineID -> storage maps.
type lineTagKind int

const (
	lineTagJustification lineTagKind = iota
	lineTagSubproof
)

type lineTag struct {
	kind lineTagKind
	id   LineID
}

func (t lineTag) pjsRef(owner *Proof) PjsRef {
	if t.kind == lineTagJustification {
		return JustificationRef{id: t.id}
	}
	return SubproofRef{id: t.id}
}
