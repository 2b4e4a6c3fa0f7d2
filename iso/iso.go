// Package iso: public query layer.
//
// Four boolean queries (exact/semantic × full/subgraph) plus the lazy
// enumeration entry point. Each query fast-fails on vertex/edge counts that
// already rule out a match before constructing any search state; those
// precondition failures are ordinary "no match" outcomes, never errors.

package iso

import "github.com/katalvlaran/isograph/core"

// IsIsomorphic reports whether g0 and g1 are structurally identical,
// matching structure only.
//
// Returns false without searching when vertex or edge counts differ.
//
// Errors:
//   - ErrGraphNil          if either graph is nil.
//   - ErrEdgeKindMismatch  if the graphs disagree on directedness.
func IsIsomorphic(g0, g1 *core.Graph) (bool, error) {
	return IsIsomorphicMatching(g0, g1, nil, nil)
}

// IsIsomorphicMatching reports whether g0 and g1 are isomorphic under both
// structural and semantic rules: matched vertices must satisfy nodeMatch
// and matched edges must satisfy edgeMatch (nil predicates match anything).
//
// Returns false without searching when vertex or edge counts differ.
func IsIsomorphicMatching(g0, g1 *core.Graph, nodeMatch NodeMatcher, edgeMatch EdgeMatcher) (bool, error) {
	if err := validatePair(g0, g1); err != nil {
		return false, err
	}
	if g0.VertexCount() != g1.VertexCount() || g0.EdgeCount() != g1.EdgeCount() {
		return false, nil
	}

	m, err := NewMatcher(g0, g1, nodeMatch, edgeMatch, false)
	if err != nil {
		return false, err
	}
	_, found := m.Next()

	return found, nil
}

// IsSubgraphIsomorphic reports whether g0 is isomorphic to a node-induced
// subgraph of g1, matching structure only.
//
// Returns false without searching when g0 has more vertices or edges
// than g1.
func IsSubgraphIsomorphic(g0, g1 *core.Graph) (bool, error) {
	return IsSubgraphIsomorphicMatching(g0, g1, nil, nil)
}

// IsSubgraphIsomorphicMatching reports whether g0 is isomorphic to a
// node-induced subgraph of g1 under both structural and semantic rules.
//
// Returns false without searching when g0 has more vertices or edges
// than g1.
func IsSubgraphIsomorphicMatching(g0, g1 *core.Graph, nodeMatch NodeMatcher, edgeMatch EdgeMatcher) (bool, error) {
	if err := validatePair(g0, g1); err != nil {
		return false, err
	}
	if g0.VertexCount() > g1.VertexCount() || g0.EdgeCount() > g1.EdgeCount() {
		return false, nil
	}

	m, err := NewMatcher(g0, g1, nodeMatch, edgeMatch, true)
	if err != nil {
		return false, err
	}
	_, found := m.Next()

	return found, nil
}

// SubgraphIsomorphisms returns a lazy enumeration of every mapping from g0
// onto a node-induced subgraph of g1 satisfying the semantic predicates
// (nil predicates match anything). When g0's vertex or edge count already
// exceeds g1's, there is nothing to enumerate and the result is
// (nil, nil) — a nil Matcher, not an error.
//
// Pull mappings with Next; stop pulling to abandon the search at any point.
func SubgraphIsomorphisms(g0, g1 *core.Graph, nodeMatch NodeMatcher, edgeMatch EdgeMatcher) (*Matcher, error) {
	if err := validatePair(g0, g1); err != nil {
		return nil, err
	}
	if g0.VertexCount() > g1.VertexCount() || g0.EdgeCount() > g1.EdgeCount() {
		return nil, nil
	}

	return NewMatcher(g0, g1, nodeMatch, edgeMatch, true)
}

// validatePair applies the input contract shared by every two-graph query.
func validatePair(g0, g1 *core.Graph) error {
	if g0 == nil || g1 == nil {
		return ErrGraphNil
	}
	if g0.Directed() != g1.Directed() {
		return ErrEdgeKindMismatch
	}

	return nil
}
