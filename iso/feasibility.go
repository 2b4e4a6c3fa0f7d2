// Package iso: the feasibility check.
//
// isFeasible decides whether the candidate pair (n0 in g0, n1 in g1) may be
// added to the current partial mapping. The same rule is evaluated for both
// role assignments by calling each helper twice with the state pair swapped,
// which replaces the original's mirrored-code pattern with one generic
// "this state vs. the other state" implementation while preserving the exact
// evaluation order.

package iso

// isFeasible runs the admissibility rules in short-circuit order:
//
//  1. R_succ: every mapped outgoing neighbor of n0 must land on an outgoing
//     neighbor of n1 (and vice versa); then the mapped-successor counts must
//     satisfy count(g0) ≤ count(g1). The adjacency checks run in both
//     directions, which is what makes exact mode exact; the ≤ comparison is
//     what leaves room for subgraph embeddings.
//  2. R_pred: the same rule over incoming edges, directed graphs only.
//  3. Node semantic rule, when a NodeMatcher is supplied.
//  4. Edge semantic rule, when an EdgeMatcher is supplied.
func isFeasible(s0, s1 *vf2State, n0, n1 int, nodeMatch NodeMatcher, edgeMatch EdgeMatcher) bool {
	// 1. R_succ for both role assignments.
	c0, ok := succCount(s0, s1, n0, n1)
	if !ok {
		return false
	}
	c1, ok := succCount(s1, s0, n1, n0)
	if !ok {
		return false
	}
	if c0 > c1 {
		return false
	}

	// 2. R_pred, only meaningful when edges have direction.
	if s0.directed {
		p0, ok := predCount(s0, s1, n0, n1)
		if !ok {
			return false
		}
		p1, ok := predCount(s1, s0, n1, n0)
		if !ok {
			return false
		}
		if p0 > p1 {
			return false
		}
	}

	// 3. Semantic feasibility: associated node data.
	if nodeMatch != nil {
		v0, v1 := s0.vertexAt(n0), s1.vertexAt(n1)
		if v0 == nil || v1 == nil {
			return false // fail closed on missing data
		}
		if !nodeMatch(v0, v1) {
			return false
		}
	}

	// 4. Semantic feasibility: associated edge data, both role assignments.
	if edgeMatch != nil {
		if !edgesCompatible(s0, s1, n0, n1, edgeMatch, true) {
			return false
		}
		if !edgesCompatible(s1, s0, n1, n0, edgeMatch, false) {
			return false
		}
	}

	return true
}

// succCount walks the outgoing neighbors of an in s. For every neighbor
// already in the mapping it requires the image to be adjacent (outgoing)
// to bn in the other graph; any miss fails the whole candidate. Returns the
// total outgoing-neighbor count for the cardinality comparison.
//
// A self-loop neighbor is not in the mapping yet; it resolves to the paired
// candidate bn instead of a stale mapping lookup.
func succCount(s, other *vf2State, an, bn int) (int, bool) {
	count := 0
	for _, nb := range s.out[an] {
		count++
		var m int
		if nb != an {
			m = s.mapping[nb]
		} else {
			m = bn
		}
		if m == unmapped {
			continue
		}
		if !other.am.IsAdjacent(bn, m) {
			return 0, false
		}
	}

	return count, true
}

// predCount is succCount over incoming neighbors; the required image edge
// points into bn. The self-loop case is already handled on the outgoing
// side, so the mapping is read directly.
func predCount(s, other *vf2State, an, bn int) (int, bool) {
	count := 0
	for _, nb := range s.in[an] {
		count++
		m := s.mapping[nb]
		if m == unmapped {
			continue
		}
		if !other.am.IsAdjacent(m, bn) {
			return 0, false
		}
	}

	return count, true
}

// edgesCompatible checks the edge predicate over every already-mapped
// outgoing (and, when directed, incoming) neighbor edge of an, against the
// corresponding edge in the other graph. sIsG0 keeps the predicate's
// argument order fixed at (g0 edge, g1 edge) regardless of which role
// assignment is being scanned. Missing edges fail closed.
func edgesCompatible(s, other *vf2State, an, bn int, edgeMatch EdgeMatcher, sIsG0 bool) bool {
	eq := func(es, eo int, os, oo int) bool {
		a, b := s.edgeAt(es, eo), other.edgeAt(os, oo)
		if a == nil || b == nil {
			return false
		}
		if sIsG0 {
			return edgeMatch(a, b)
		}

		return edgeMatch(b, a)
	}

	for _, nb := range s.out[an] {
		var m int
		if nb != an {
			m = s.mapping[nb]
		} else {
			m = bn // self-loop: pair with the candidate itself
		}
		if m == unmapped {
			continue
		}
		if !eq(an, nb, bn, m) {
			return false
		}
	}
	if s.directed {
		for _, nb := range s.in[an] {
			m := s.mapping[nb] // self-loop handled in outgoing
			if m == unmapped {
				continue
			}
			if !eq(nb, an, m, bn) {
				return false
			}
		}
	}

	return true
}
