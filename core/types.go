// Package core defines the central Graph, Vertex, and Edge types consumed by
// the matching engine, and provides thread-safe primitives for building and
// querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices, muEdgeAdj for edges and adjacency), so you can safely mutate
// graphs across goroutines with minimal contention.
//
// This file declares Vertex, Edge, Graph, Direction, GraphOption,
// VertexOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add a parallel edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	// Parallel edges are never permitted: the matching engine treats
	// multigraphs as out of contract, so core makes them unrepresentable.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Direction selects which incident edges of a vertex to enumerate.
//
// For undirected graphs the two directions coincide; Incoming is only
// meaningful when the graph was built with WithDirected(true).
type Direction uint8

const (
	// Outgoing enumerates edges leaving the vertex (successors).
	Outgoing Direction = iota

	// Incoming enumerates edges entering the vertex (predecessors).
	Incoming
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. Weight and Metadata
// carry user data for semantic matching; neither affects structure.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Weight is an optional integer payload, compared by iso.NodesByWeight.
	Weight int64

	// Metadata stores arbitrary user data. It is never inspected by core.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// For undirected graphs the stored From→To orientation is incidental; the
// edge is reachable from both endpoints.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the payload of the edge, compared by iso.EdgesByWeight.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures properties of individual vertices when added.
type VertexOption func(*Vertex)

// WithVertexWeight sets the vertex payload weight.
func WithVertexWeight(w int64) VertexOption {
	return func(v *Vertex) { v.Weight = w }
}

// WithVertexMetadata attaches a metadata map to the vertex. The map is
// stored by reference, not copied.
func WithVertexMetadata(md map[string]interface{}) VertexOption {
	return func(v *Vertex) { v.Metadata = md }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected and weighted vs. unweighted modes plus
// an opt-in self-loop policy. Parallel edges are always rejected.
// muVert protects vertices; muEdgeAdj protects adjacency and the edge count.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	// Configuration flags (immutable after construction)
	directed   bool // all edges directed
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	vertices map[string]*Vertex // vertex ID → Vertex

	// adjOut[from][to] holds the edge leaving `from` toward `to`.
	// Undirected edges are mirrored into both orientations (same *Edge).
	adjOut map[string]map[string]*Edge

	// adjIn[to][from] holds the edge entering `to` from `from`.
	// Maintained only for directed graphs.
	adjIn map[string]map[string]*Edge

	edgeCount int // each AddEdge counts once, mirrored or not
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, and loop-free.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		adjOut:   make(map[string]map[string]*Edge),
		adjIn:    make(map[string]map[string]*Edge),
	}
	// Apply options deterministically, left to right.
	for _, opt := range opts {
		opt(g)
	}

	return g
}
