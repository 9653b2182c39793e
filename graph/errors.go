package graph

import "errors"

// ErrTooManyVertices indicates n exceeds bitset.MaxVertices, the largest
// universe a bitset.Set can represent. New also returns it for a negative n.
var ErrTooManyVertices = errors.New("graph: vertex count exceeds bitset.MaxVertices")

// ErrInvalidEdge indicates an edge endpoint is out of range [0,n) or is a
// self-loop; the engine's input premise is a simple, loop-free graph.
var ErrInvalidEdge = errors.New("graph: invalid edge")
