// SPDX-License-Identifier: MIT
// Package builder assembles deterministic graph fixtures from composable
// topology constructors.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, cons...). Creates g, runs cons in order.
//   - Constructors validate parameters early and return sentinel errors; never panic.
//   - Determinism: same inputs and constructor order ⇒ identical graphs.
//     Vertex IDs are "V0".."V{n-1}"; edges are emitted in ascending index order.
//
// Errors:
//
//	ErrTooFewVertices  - a constructor received an n below its minimum.
//	ErrConstructFailed - a nil constructor was passed to BuildGraph.
package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/isograph/core"
)

var (
	// ErrTooFewVertices indicates a topology was requested with fewer
	// vertices than its minimum (e.g. Cycle needs n ≥ 3).
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrConstructFailed indicates BuildGraph received a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Constructor applies a deterministic graph mutation. Constructors MUST
// validate parameters early, respect core policy flags, and preserve
// determinism for the same call order.
type Constructor func(g *core.Graph) error

// BuildGraph creates a new core.Graph with graph options gopts and applies
// all constructors in order. Any constructor error is wrapped with the
// context "BuildGraph: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(len(cons)).
func BuildGraph(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// VertexID returns the builder's canonical ID for dense index i ("V{i}").
func VertexID(i int) string { return "V" + strconv.Itoa(i) }

// Path builds a simple path P_n: V0-V1-…-V{n-1} (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 2 {
			return ErrTooFewVertices
		}
		for i := 0; i < n-1; i++ {
			if err := g.AddEdge(VertexID(i), VertexID(i+1), 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 3 {
			return ErrTooFewVertices
		}
		for i := 0; i < n; i++ {
			if err := g.AddEdge(VertexID(i), VertexID((i+1)%n), 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds the complete graph K_n (n ≥ 1); on directed graphs both
// orientations of every pair are added.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 1 {
			return ErrTooFewVertices
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(VertexID(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(VertexID(i), VertexID(j), 0); err != nil {
					return err
				}
				if g.Directed() {
					if err := g.AddEdge(VertexID(j), VertexID(i), 0); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Star builds a star S_n: V0 as the center joined to n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 2 {
			return ErrTooFewVertices
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(VertexID(0), VertexID(i), 0); err != nil {
				return err
			}
		}

		return nil
	}
}
