// Package isograph answers "are these two graphs the same shape?" — and,
// when they are not, "does the small one hide inside the big one?" — with a
// thread-safe graph model and a resumable VF2 matching engine.
//
// 🚀 What is isograph?
//
//	A modern, thread-safe, zero-dependency library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Matrix views: dense adjacency snapshots with a stable ID⇄index bijection
//		• Builders: deterministic Path/Cycle/Complete/Star fixtures
//		• Exact isomorphism: IsIsomorphic, IsIsomorphicMatching
//		• Subgraph isomorphism: node-induced embeddings, semantic predicates
//		• Lazy enumeration: pull mappings one at a time, abandon anytime
//
// ✨ Why choose isograph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, explicit sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Lazy by design – the matcher suspends between results, so the first
//     match of a huge search space costs only its own path
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	matrix/  — dense adjacency snapshots + the ID⇄index bijection
//	builder/ — composable deterministic topology constructors
//	iso/     — the VF2 engine: queries, matchers, lazy enumeration
//
// Quick ASCII example:
//
//	    A───B        W───X
//	    │   │   ≅    │   │
//	    C───D        Y───Z
//
//	two squares with different labels: IsIsomorphic reports true.
//
// Dive into the iso package docs for the full query surface, semantic
// matching, and enumeration semantics.
//
//	go get github.com/katalvlaran/isograph
package isograph
