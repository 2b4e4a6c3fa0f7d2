// Package iso: the explicit-stack search engine.
//
// The classic VF2 formulation is recursive; here each recursion level is a
// tagged frame on a heap-owned stack inside the Matcher, so the search can
// suspend after yielding a mapping and resume on the next call to Next.
// Dropping the Matcher discards the stack and both states; nothing else is
// held.

package iso

import "github.com/katalvlaran/isograph/core"

// openList tags which candidate list produced a pair, so further
// alternatives for the same g0 vertex are drawn from the same list.
type openList uint8

const (
	listOut   openList = iota // out-frontier (Tout)
	listIn                    // in-frontier (Tin), directed only
	listOther                 // disconnected remainder
)

// frameKind distinguishes the three stack frame roles.
type frameKind uint8

const (
	frameOuter  frameKind = iota // pick a fresh candidate pair
	frameInner                   // a candidate pair awaiting feasibility+commit
	frameUnwind                  // a committed pair awaiting rollback
)

// frame is one suspended step of the depth-first search.
type frame struct {
	kind   frameKind
	n0, n1 int // candidate pair (dense indices), unused for frameOuter
	list   openList
}

// Matcher is a suspended (sub)graph-isomorphism search between two graphs.
// Each call to Next resumes the search until the next complete mapping is
// found or the space is exhausted. A Matcher is single-use and must not be
// shared across goroutines; the underlying graphs must not be mutated while
// it is in use.
type Matcher struct {
	st0, st1 *vf2State

	nodeMatch NodeMatcher
	edgeMatch EdgeMatcher
	subgraph  bool // embed g0 into g1 instead of exact equality

	stack []frame

	// When g0 starts out empty the stack machine cannot produce a pair,
	// yet the empty mapping is the unique valid result. oneShot overrides
	// the search and serves that mapping exactly once.
	oneShot     bool
	oneShotLeft Mapping
}

// NewMatcher builds a resumable matcher over g0 and g1. subgraph selects
// node-induced-subgraph mode (embed g0 into g1); false selects exact
// isomorphism. Unlike the boolean queries, no count precondition is applied
// here — the caller gets the raw engine.
//
// Errors:
//   - ErrGraphNil          if either graph is nil.
//   - ErrEdgeKindMismatch  if the graphs disagree on directedness.
//
// Complexity: O(V² + E log E) construction (adjacency snapshots).
func NewMatcher(g0, g1 *core.Graph, nodeMatch NodeMatcher, edgeMatch EdgeMatcher, subgraph bool) (*Matcher, error) {
	if g0 == nil || g1 == nil {
		return nil, ErrGraphNil
	}
	if g0.Directed() != g1.Directed() {
		return nil, ErrEdgeKindMismatch
	}

	st0, err := newVF2State(g0)
	if err != nil {
		return nil, err
	}
	st1, err := newVF2State(g1)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		st0:       st0,
		st1:       st1,
		nodeMatch: nodeMatch,
		edgeMatch: edgeMatch,
		subgraph:  subgraph,
		stack:     []frame{{kind: frameOuter}},
	}
	if st0.isComplete() {
		m.oneShot = true
		m.oneShotLeft = append(Mapping{}, st0.mapping...)
	}

	return m, nil
}

// Next resumes the search and returns the next complete mapping, or
// (nil, false) once the search space is exhausted. The returned Mapping is
// a copy owned by the caller.
func (m *Matcher) Next() (Mapping, bool) {
	if m.oneShot {
		if m.oneShotLeft == nil {
			return nil, false
		}
		res := m.oneShotLeft
		m.oneShotLeft = nil

		return res, true
	}

	for len(m.stack) > 0 {
		f := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]

		var result Mapping
		switch f.kind {
		case frameUnwind:
			// Roll back the committed pair, then try the next g1
			// alternative for the same g0 vertex from the same list.
			m.popState(f.n0, f.n1)
			if nx := m.nextFromIndex(f.n1, f.list); nx >= 0 {
				m.stack = append(m.stack, frame{kind: frameInner, n0: f.n0, n1: nx, list: f.list})
			}

		case frameOuter:
			if n0, n1, list, ok := m.nextCandidate(); ok {
				m.stack = append(m.stack, frame{kind: frameInner, n0: n0, n1: n1, list: list})
			}

		case frameInner:
			if isFeasible(m.st0, m.st1, f.n0, f.n1, m.nodeMatch, m.edgeMatch) {
				m.pushState(f.n0, f.n1)
				if m.st0.isComplete() {
					result = append(Mapping{}, m.st0.mapping...)
				}
				// Frontier-cardinality look-ahead: deepen only while the
				// remaining frontiers can still be reconciled.
				if m.lookAhead() {
					m.stack = append(m.stack,
						frame{kind: frameUnwind, n0: f.n0, n1: f.n1, list: f.list},
						frame{kind: frameOuter},
					)
					if result != nil {
						return result, true
					}

					continue
				}
				m.popState(f.n0, f.n1)
			}
			if nx := m.nextFromIndex(f.n1, f.list); nx >= 0 {
				m.stack = append(m.stack, frame{kind: frameInner, n0: f.n0, n1: nx, list: f.list})
			}
		}

		// A completed mapping is yielded even when the look-ahead refused
		// to deepen; the state was already rolled back above.
		if result != nil {
			return result, true
		}
	}

	return nil, false
}

// lookAhead compares the frontier cardinalities of the two states after a
// commit. Exact mode demands pairwise equality; subgraph mode only demands
// that g0's frontiers fit inside g1's.
func (m *Matcher) lookAhead() bool {
	if m.subgraph {
		return m.st0.outCount <= m.st1.outCount && m.st0.inCount <= m.st1.inCount
	}

	return m.st0.outCount == m.st1.outCount && m.st0.inCount == m.st1.inCount
}

// nextCandidate picks a fresh pair: g1's least eligible vertex is located
// first, then g0's, preferring the out-frontier, then the in-frontier, then
// the disconnected remainder.
func (m *Matcher) nextCandidate() (n0, n1 int, list openList, ok bool) {
	list = listOut
	n0 = -1
	n1 = m.st1.nextOutIndex(0)
	if n1 >= 0 {
		n0 = m.st0.nextOutIndex(0)
	}
	if n1 < 0 || n0 < 0 {
		n1 = m.st1.nextInIndex(0)
		if n1 >= 0 {
			n0 = m.st0.nextInIndex(0)
			list = listIn
		}
	}
	if n1 < 0 || n0 < 0 {
		n1 = m.st1.nextRestIndex(0)
		if n1 >= 0 {
			n0 = m.st0.nextRestIndex(0)
			list = listOther
		}
	}
	if n1 < 0 || n0 < 0 {
		return 0, 0, 0, false
	}

	return n0, n1, list, true
}

// nextFromIndex scans g1's list for the next alternative after n1 for the
// same g0 vertex; -1 when the list is exhausted.
func (m *Matcher) nextFromIndex(n1 int, list openList) int {
	start := n1 + 1
	switch list {
	case listOut:
		return m.st1.nextOutIndex(start)
	case listIn:
		return m.st1.nextInIndex(start)
	default:
		return m.st1.nextRestIndex(start)
	}
}

// pushState commits the pair into both states.
func (m *Matcher) pushState(n0, n1 int) {
	m.st0.pushMapping(n0, n1)
	m.st1.pushMapping(n1, n0)
}

// popState rolls the pair back out of both states.
func (m *Matcher) popState(n0, n1 int) {
	m.st0.popMapping(n0)
	m.st1.popMapping(n1)
}

// IDs translates a mapping yielded by this Matcher into vertex-ID pairs:
// g0 ID → matched g1 ID.
func (m *Matcher) IDs(mp Mapping) map[string]string {
	out := make(map[string]string, len(mp))
	for i, j := range mp {
		if i >= len(m.st0.ids) || j < 0 || j >= len(m.st1.ids) {
			continue
		}
		out[m.st0.ids[i]] = m.st1.ids[j]
	}

	return out
}

// factorials holds 0!..20!, the largest factorials representable in uint64.
var factorials = [...]uint64{
	1,
	1,
	2,
	6,
	24,
	120,
	720,
	5040,
	40320,
	362880,
	3628800,
	39916800,
	479001600,
	6227020800,
	87178291200,
	1307674368000,
	20922789888000,
	355687428096000,
	6402373705728000,
	121645100408832000,
	2432902008176640000,
}

// SizeHint reports advisory bounds on how many mappings remain: the lower
// bound is always 0; the upper bound is n! for graphs of up to 20 vertices
// and unbounded (bounded == false) beyond that. Consumers must not rely on
// it for correctness — it exists for progress UIs and preallocation hints.
func (m *Matcher) SizeHint() (lower, upper uint64, bounded bool) {
	n := len(m.st0.mapping)
	if n >= len(factorials) {
		return 0, 0, false
	}

	return 0, factorials[n], true
}
