// Package iso decides graph and subgraph isomorphism on core.Graph pairs
// with the VF2 algorithm, and lazily enumerates every structural
// correspondence between two graphs.
//
// What:
//
//   - IsIsomorphic / IsIsomorphicMatching: exact structural identity of two
//     graphs, optionally refined by caller-supplied node/edge predicates.
//   - IsSubgraphIsomorphic / IsSubgraphIsomorphicMatching: does g0 embed into
//     g1 as a node-induced subgraph?
//   - SubgraphIsomorphisms: a resumable Matcher yielding every mapping from
//     g0's vertices onto a node-induced subgraph of g1, one at a time.
//   - NewMatcher: the same engine with the search mode chosen explicitly.
//
// Why:
//   - Deduplicate structurally identical topologies (circuits, molecules, ASTs)
//   - Find pattern occurrences inside a larger graph
//   - Verify that two independently built graphs encode the same structure
//
// How it works:
//
//	The engine keeps one search state per graph: the partial mapping, plus
//	generation-stamped Tout/Tin frontier sets maintained incrementally on
//	every commit and undone in O(degree) on rollback. Candidate pairs are
//	drawn out-frontier first, then in-frontier, then the disconnected
//	remainder; each pair passes a feasibility check (successor/predecessor
//	cardinality rules plus the semantic predicates) before being committed,
//	and a frontier-cardinality look-ahead prunes hopeless branches early.
//	The naturally recursive backtracking is driven by an explicit stack of
//	outer/inner/unwind frames carried inside the Matcher, so enumeration
//	suspends after each found mapping and resumes exactly where it paused.
//
// Key Types:
//
//   - NodeMatcher, EdgeMatcher: semantic predicates (nil = structural only)
//   - Mapping: dense g0-index → g1-index assignment of one found match
//   - Matcher: the suspended search; Next() resumes it
//
// Complexity:
//
//   - Worst case exponential (the problem is NP-complete for subgraphs);
//     the frontier look-ahead keeps typical instances tractable.
//   - Memory O(V²) for the adjacency snapshots plus O(V) per search depth.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrEdgeKindMismatch  one graph is directed, the other undirected
//
// Count preconditions (node/edge totals that already rule out a match) are
// ordinary "no match" outcomes — false or a nil Matcher — never errors.
//
// Caveats:
//
//   - Multigraphs are unsupported; core.Graph cannot represent them.
//   - "Subgraph" always means node-induced subgraph. For embeddings that
//     need not realize every induced edge, the literature term is
//     monomorphism; that variant is not implemented here.
//
// Reference:
//
//   - Luigi P. Cordella, Pasquale Foggia, Carlo Sansone, Mario Vento;
//     "A (Sub)Graph Isomorphism Algorithm for Matching Large Graphs"
package iso
