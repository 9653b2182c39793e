package decomp

import "errors"

var (
	// ErrInvalidInput is returned when the input graph fails basic
	// well-formedness (nil graph, or a labels slice not matching g.N()).
	ErrInvalidInput = errors.New("decomp: invalid input graph")

	// ErrInterrupted is returned when opts.Ctx is cancelled mid-search; any
	// partial state from the interrupted trial is discarded.
	ErrInterrupted = errors.New("decomp: search interrupted")

	// ErrNoDecomposition is returned when opts.UpperBound is reached without
	// the search having succeeded at any trial width below it.
	ErrNoDecomposition = errors.New("decomp: upper bound reached without success")
)
