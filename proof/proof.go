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

// Package proof implements the nested Fitch-proof data model: opaque,
// stable references to premises, justifications, and subproofs, backed by
// a pooled arena keyed by monotonically increasing LineIDs, with scope and
// dependency queries and edits that preserve reference stability.
package proof

import "go.uber.org/aris/expr"

// Justification is a non-premise line: a conclusion derived by Rule from
// Deps (cited lines) and SDeps (cited subproofs).
type Justification struct {
	Conclusion expr.Expr
	Rule       RuleID
	Deps       []PjRef
	SDeps      []SubproofRef
}

// Proof is one node of a nested Fitch proof: its own premises and items
// (justifications and subproofs), plus a link to its parent and the
// reference by which its parent knows it. The whole tree shares one
// monotonic ID counter, so references are unique across the entire proof,
// not just within one node.
type Proof struct {
	counter *LineID
	parent  *Proof
	selfRef *SubproofRef

	premises       map[LineID]expr.Expr
	justifications map[LineID]*Justification
	subproofs      map[LineID]*Proof

	premiseOrder *zipperVec[LineID]
	lineOrder    *zipperVec[lineTag]
}

// New creates an empty root proof.
func New() *Proof {
	counter := LineID(0)
	return newProofNode(&counter, nil, nil)
}

func newProofNode(counter *LineID, parent *Proof, selfRef *SubproofRef) *Proof {
	return &Proof{
		counter:        counter,
		parent:         parent,
		selfRef:        selfRef,
		premises:       make(map[LineID]expr.Expr),
		justifications: make(map[LineID]*Justification),
		subproofs:      make(map[LineID]*Proof),
		premiseOrder:   newZipperVec[LineID](),
		lineOrder:      newZipperVec[lineTag](),
	}
}

func (p *Proof) nextID() LineID {
	*p.counter++
	return *p.counter
}

// AddPremise appends a new premise.
func (p *Proof) AddPremise(e expr.Expr) PremiseRef {
	id := p.nextID()
	p.premises[id] = e
	p.premiseOrder.pushBack(id)
	return PremiseRef{id: id}
}

// AddPremiseRelative inserts a new premise immediately before or after
// neighbor, returning ok=false if neighbor is not a premise of this proof.
func (p *Proof) AddPremiseRelative(e expr.Expr, neighbor PremiseRef, after bool) (PremiseRef, bool) {
	id := p.nextID()
	ok := p.premiseOrder.insertRelative(id, func(x LineID) bool { return x == neighbor.id }, after)
	if !ok {
		return PremiseRef{}, false
	}
	p.premises[id] = e
	return PremiseRef{id: id}, true
}

// AddStep appends a new justification.
func (p *Proof) AddStep(j Justification) JustificationRef {
	id := p.nextID()
	jCopy := j
	p.justifications[id] = &jCopy
	p.lineOrder.pushBack(lineTag{kind: lineTagJustification, id: id})
	return JustificationRef{id: id}
}

// AddStepRelative inserts a new justification immediately before or after
// neighbor (a justification or subproof line of this proof).
func (p *Proof) AddStepRelative(j Justification, neighbor PjsRef, after bool) (JustificationRef, bool) {
	id := p.nextID()
	ok := p.lineOrder.insertRelative(lineTag{kind: lineTagJustification, id: id}, func(t lineTag) bool { return t.id == neighbor.ID() }, after)
	if !ok {
		return JustificationRef{}, false
	}
	jCopy := j
	p.justifications[id] = &jCopy
	return JustificationRef{id: id}, true
}

// AddSubproof appends a new, empty nested subproof.
func (p *Proof) AddSubproof() SubproofRef {
	id := p.nextID()
	ref := SubproofRef{id: id}
	p.subproofs[id] = newProofNode(p.counter, p, &ref)
	p.lineOrder.pushBack(lineTag{kind: lineTagSubproof, id: id})
	return ref
}

// AddSubproofRelative inserts a new, empty nested subproof immediately
// before or after neighbor.
func (p *Proof) AddSubproofRelative(neighbor PjsRef, after bool) (SubproofRef, bool) {
	id := p.nextID()
	ref := SubproofRef{id: id}
	ok := p.lineOrder.insertRelative(lineTag{kind: lineTagSubproof, id: id}, func(t lineTag) bool { return t.id == neighbor.ID() }, after)
	if !ok {
		return SubproofRef{}, false
	}
	p.subproofs[id] = newProofNode(p.counter, p, &ref)
	return ref, true
}

// WithMutPremise replaces the assumption at ref, returning false if ref is
// not a premise of this proof.
func (p *Proof) WithMutPremise(ref PremiseRef, f func(expr.Expr) expr.Expr) bool {
	old, ok := p.premises[ref.id]
	if !ok {
		return false
	}
	p.premises[ref.id] = f(old)
	return true
}

// WithMutStep mutates the justification at ref in place, returning false if
// ref is not a justification of this proof.
func (p *Proof) WithMutStep(ref JustificationRef, f func(*Justification)) bool {
	j, ok := p.justifications[ref.id]
	if !ok {
		return false
	}
	f(j)
	return true
}

// WithMutSubproof mutates the subproof at ref in place, returning false if
// ref is not a subproof of this proof.
func (p *Proof) WithMutSubproof(ref SubproofRef, f func(*Proof)) bool {
	sub, ok := p.subproofs[ref.id]
	if !ok {
		return false
	}
	f(sub)
	return true
}

// LookupExpr returns the premise's assumption or the justification's
// conclusion.
func (p *Proof) LookupExpr(ref PjRef) (expr.Expr, bool) {
	switch r := ref.(type) {
	case PremiseRef:
		e, ok := p.premises[r.id]
		return e, ok
	case JustificationRef:
		j, ok := p.justifications[r.id]
		if !ok {
			return nil, false
		}
		return j.Conclusion, true
	default:
		return nil, false
	}
}

// LookupPremise returns the premise's assumption.
func (p *Proof) LookupPremise(ref PremiseRef) (expr.Expr, bool) {
	e, ok := p.premises[ref.id]
	return e, ok
}

// LookupStep returns the justification at ref.
func (p *Proof) LookupStep(ref JustificationRef) (*Justification, bool) {
	j, ok := p.justifications[ref.id]
	return j, ok
}

// LookupSubproof returns the subproof at ref.
func (p *Proof) LookupSubproof(ref SubproofRef) (*Proof, bool) {
	s, ok := p.subproofs[ref.id]
	return s, ok
}

// LookupPremiseOrDie is LookupPremise but returns a NotFoundError instead
// of ok=false.
func (p *Proof) LookupPremiseOrDie(ref PremiseRef) (expr.Expr, error) {
	e, ok := p.LookupPremise(ref)
	if !ok {
		return nil, &NotFoundError{Ref: ref.id, Of: "premise"}
	}
	return e, nil
}

// LookupStepOrDie is LookupStep but returns a NotFoundError instead of
// ok=false.
func (p *Proof) LookupStepOrDie(ref JustificationRef) (*Justification, error) {
	j, ok := p.LookupStep(ref)
	if !ok {
		return nil, &NotFoundError{Ref: ref.id, Of: "justification"}
	}
	return j, nil
}

// LookupSubproofOrDie is LookupSubproof but returns a NotFoundError instead
// of ok=false.
func (p *Proof) LookupSubproofOrDie(ref SubproofRef) (*Proof, error) {
	s, ok := p.LookupSubproof(ref)
	if !ok {
		return nil, &NotFoundError{Ref: ref.id, Of: "subproof"}
	}
	return s, nil
}

// Premises returns this proof's premises, in order.
func (p *Proof) Premises() []PremiseRef {
	ids := p.premiseOrder.iter()
	out := make([]PremiseRef, len(ids))
	for i, id := range ids {
		out[i] = PremiseRef{id: id}
	}
	return out
}

// Lines returns this proof's items (justifications and subproofs), in
// order.
func (p *Proof) Lines() []PjsRef {
	tags := p.lineOrder.iter()
	out := make([]PjsRef, len(tags))
	for i, t := range tags {
		out[i] = t.pjsRef(p)
	}
	return out
}

// DirectLines returns this proof's justifications only, in order.
func (p *Proof) DirectLines() []JustificationRef {
	var out []JustificationRef
	for _, t := range p.lineOrder.iter() {
		if t.kind == lineTagJustification {
			out = append(out, JustificationRef{id: t.id})
		}
	}
	return out
}

// Exprs returns the references of every line in this proof that carries an
// Expr: its premises, followed by its justifications.
func (p *Proof) Exprs() []PjRef {
	out := make([]PjRef, 0, p.premiseOrder.len())
	for _, r := range p.Premises() {
		out = append(out, r)
	}
	for _, r := range p.DirectLines() {
		out = append(out, r)
	}
	return out
}

// ResolveExpr looks up ref anywhere in the tree rooted at p, regardless of
// which node directly owns it. Call this on the root proof when a
// reference's owner is not already known, e.g. while dispatching a
// justification whose deps may live in an ancestor proof.
func (p *Proof) ResolveExpr(ref PjRef) (expr.Expr, bool) {
	owner := p.findOwner(ref.ID())
	if owner == nil {
		return nil, false
	}
	return owner.LookupExpr(ref)
}

// ResolveSubproof looks up ref anywhere in the tree rooted at p.
func (p *Proof) ResolveSubproof(ref SubproofRef) (*Proof, bool) {
	owner := p.findOwner(ref.id)
	if owner == nil {
		return nil, false
	}
	return owner.LookupSubproof(ref)
}

// orderIndex returns the position of id within this proof's combined
// premise-then-item order, or false if id is not a direct line of this
// proof.
func (p *Proof) orderIndex(id LineID) (int, bool) {
	if idx := p.premiseOrder.indexOf(func(x LineID) bool { return x == id }); idx >= 0 {
		return idx, true
	}
	if idx := p.lineOrder.indexOf(func(t lineTag) bool { return t.id == id }); idx >= 0 {
		return p.premiseOrder.len() + idx, true
	}
	return 0, false
}

// findOwner returns the Proof node that directly holds id (as a premise,
// justification, or subproof), searching p and its descendants.
func (p *Proof) findOwner(id LineID) *Proof {
	if _, ok := p.premises[id]; ok {
		return p
	}
	if _, ok := p.justifications[id]; ok {
		return p
	}
	if _, ok := p.subproofs[id]; ok {
		return p
	}
	for _, child := range p.subproofs {
		if owner := child.findOwner(id); owner != nil {
			return owner
		}
	}
	return nil
}

// ParentOfLine returns the subproof directly enclosing ref, searching this
// proof and its descendants, or ok=false if ref is a line of this proof
// itself (i.e. has no enclosing subproof relative to the root this is
// called on).
func (p *Proof) ParentOfLine(ref PjsRef) (SubproofRef, bool) {
	owner := p.findOwner(ref.ID())
	if owner == nil || owner.selfRef == nil {
		return SubproofRef{}, false
	}
	return *owner.selfRef, true
}

// DepthOfLine returns ref's distance from the root this is called on.
func (p *Proof) DepthOfLine(ref PjsRef) int {
	owner := p.findOwner(ref.ID())
	depth := 0
	for owner != nil && owner.selfRef != nil {
		depth++
		owner = owner.parent
	}
	return depth
}

// ContainedJustifications returns the justifications in this proof and,
// transitively, in its nested subproofs; includePremises additionally adds
// every premise encountered the same way.
func (p *Proof) ContainedJustifications(includePremises bool) *Set {
	s := newSet()
	p.collectContained(includePremises, s)
	return s
}

func (p *Proof) collectContained(includePremises bool, s *Set) {
	if includePremises {
		for _, r := range p.Premises() {
			s.add(r)
		}
	}
	for _, r := range p.DirectLines() {
		s.add(r)
	}
	for _, child := range p.subproofs {
		child.collectContained(includePremises, s)
	}
}

// TransitiveDependencies returns every line reachable from line by
// following dependency edges: a justification's direct Deps, plus --
// transitively -- every contained justification (and its deps) of any
// subproof line cites via SDeps. Call this on the root proof so that
// dependencies anywhere in the tree resolve.
func (p *Proof) TransitiveDependencies(line PjRef) *Set {
	visited := newSet()
	queue := []PjRef{line}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited.Contains(cur) {
			continue
		}
		visited.add(cur)

		j, ok := cur.(JustificationRef)
		if !ok {
			continue // premises have no further dependencies
		}
		owner := p.findOwner(j.id)
		if owner == nil {
			continue
		}
		jv, ok := owner.justifications[j.id]
		if !ok {
			continue
		}
		queue = append(queue, jv.Deps...)
		for _, sd := range jv.SDeps {
			sub, ok := owner.subproofs[sd.id]
			if !ok {
				continue
			}
			for _, inner := range sub.ContainedJustifications(false).Slice() {
				queue = append(queue, inner.(JustificationRef))
			}
		}
	}
	visited.remove(line)
	return visited
}

// TransitiveDependents returns every line whose TransitiveDependencies
// includes line: the inverse of TransitiveDependencies, used to invalidate
// cached checker state when an upstream line is edited.
func (p *Proof) TransitiveDependents(line PjRef) *Set {
	dependents := newSet()
	for _, r := range p.ContainedJustifications(false).Slice() {
		jr := r.(JustificationRef)
		if jr == line {
			continue
		}
		if p.TransitiveDependencies(jr).Contains(line) {
			dependents.add(jr)
		}
	}
	return dependents
}

// CanReferenceDep decides, in O(depth), whether to is in scope at from per
// the scope invariants: a line or subproof reference must lie strictly
// above from within a common enclosing proof (from's own proof, or an
// ancestor of it, where "above" is measured against the boundary of the
// subproof that contains from). Call this on the root proof.
func (p *Proof) CanReferenceDep(from, to PjsRef) bool {
	fOwner := p.findOwner(from.ID())
	if fOwner == nil {
		return false
	}
	fromIdx, ok := fOwner.orderIndex(from.ID())
	if !ok {
		return false
	}

	toOwner := p.findOwner(to.ID())
	if toOwner == nil {
		return false
	}
	if toOwner == fOwner {
		toIdx, ok := toOwner.orderIndex(to.ID())
		return ok && toIdx < fromIdx
	}

	for cur := fOwner; cur.parent != nil; cur = cur.parent {
		if cur.parent == toOwner {
			boundaryIdx, ok := toOwner.orderIndex(cur.selfRef.id)
			if !ok {
				return false
			}
			toIdx, ok := toOwner.orderIndex(to.ID())
			return ok && toIdx < boundaryIdx
		}
	}
	return false
}

// PossibleDepsForLine enumerates every line and subproof reference in the
// whole tree rooted at p that CanReferenceDep(line, .) would accept.
func (p *Proof) PossibleDepsForLine(line PjsRef) (deps []PjRef, sdeps []SubproofRef) {
	p.walk(func(n *Proof) {
		for _, r := range n.Exprs() {
			if p.CanReferenceDep(line, r) {
				deps = append(deps, r)
			}
		}
		for _, t := range n.lineOrder.iter() {
			if t.kind == lineTagSubproof {
				ref := SubproofRef{id: t.id}
				if p.CanReferenceDep(line, ref) {
					sdeps = append(sdeps, ref)
				}
			}
		}
	})
	return deps, sdeps
}

// walk visits p and every descendant subproof.
func (p *Proof) walk(f func(*Proof)) {
	f(p)
	for _, child := range p.subproofs {
		child.walk(f)
	}
}

// RemoveLine deletes the premise or justification at ref. Surviving lines
// keep their references.
func (p *Proof) RemoveLine(ref PjRef) bool {
	owner := p.findOwner(ref.ID())
	if owner == nil {
		return false
	}
	switch r := ref.(type) {
	case PremiseRef:
		if _, ok := owner.premises[r.id]; !ok {
			return false
		}
		delete(owner.premises, r.id)
		idx := owner.premiseOrder.indexOf(func(x LineID) bool { return x == r.id })
		if idx >= 0 {
			owner.premiseOrder.pop(idx)
		}
		return true
	case JustificationRef:
		if _, ok := owner.justifications[r.id]; !ok {
			return false
		}
		delete(owner.justifications, r.id)
		idx := owner.lineOrder.indexOf(func(t lineTag) bool { return t.id == r.id })
		if idx >= 0 {
			owner.lineOrder.pop(idx)
		}
		return true
	default:
		return false
	}
}

// RemoveSubproof deletes the subproof at ref, recursively removing
// everything it owns.
func (p *Proof) RemoveSubproof(ref SubproofRef) bool {
	owner := p.findOwner(ref.id)
	if owner == nil {
		return false
	}
	if _, ok := owner.subproofs[ref.id]; !ok {
		return false
	}
	delete(owner.subproofs, ref.id)
	idx := owner.lineOrder.indexOf(func(t lineTag) bool { return t.id == ref.id })
	if idx >= 0 {
		owner.lineOrder.pop(idx)
	}
	return true
}
