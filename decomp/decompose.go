package decomp

import (
	"context"

	"github.com/arbortw/treedecomp/bitset"
	"github.com/arbortw/treedecomp/graph"
)

// Outcome classifies a Result. Success/Interrupted/InvalidInput are the
// three outcomes of a single trial width's search (spec §7); NoDecomposition
// is the ambient extension for an external UpperBound hint being exhausted
// (spec §6's "An external upper-bound may abort the search") rather than a
// fourth core-search outcome.
type Outcome int

const (
	Success Outcome = iota
	Interrupted
	InvalidInput
	NoDecomposition
)

// Options carries the hints Decompose accepts: a cancellation context and
// the optional lower/upper-bound search hints of spec §6, plus the
// MaxGlueStepsPerPop safety valve for spec §9's Open Question.
type Options struct {
	Ctx context.Context

	// LowerBound seeds the first trial width; widths below max(LowerBound, 1)
	// are never attempted. 0 means unset.
	LowerBound int

	// UpperBound, if positive, aborts the search once the trial width would
	// reach it without having succeeded. 0 means unset (search until success).
	UpperBound int

	// MaxGlueStepsPerPop caps the number of trie-subset steps a single
	// frontier pop's glue expansion may take before yielding to the next
	// pop. 0 means unbounded, matching the source algorithm's literal
	// behaviour.
	MaxGlueStepsPerPop int
}

// Result is the outcome of a Decompose call.
type Result struct {
	Outcome       Outcome
	Decomposition *Decomposition
	Err           error
}

// Decompose computes a minimum-width tree decomposition of g. labels[i] is
// the external label emitted for internal vertex id i; len(labels) must
// equal g.N().
func Decompose(g *graph.Graph, labels []string, opts Options) Result {
	if g == nil || len(labels) != g.N() {
		return Result{Outcome: InvalidInput, Err: ErrInvalidInput}
	}

	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	n := g.N()
	if n == 0 {
		return Result{Outcome: Success, Decomposition: &Decomposition{Width: 0, Bags: []Bag{{ID: 0, Vertices: []string{}}}}}
	}

	k := opts.LowerBound
	if k < 1 {
		k = 1
	}

	for {
		if opts.UpperBound > 0 && k >= opts.UpperBound {
			return Result{Outcome: NoDecomposition, Err: ErrNoDecomposition}
		}
		if ctx.Err() != nil {
			return Result{Outcome: Interrupted, Err: ErrInterrupted}
		}

		done, witness, tr, interrupted := runTrial(ctx, g, k, opts.MaxGlueStepsPerPop)
		if interrupted {
			return Result{Outcome: Interrupted, Err: ErrInterrupted}
		}
		if done {
			return Result{Outcome: Success, Decomposition: reconstruct(tr.store, g, labels, witness, k)}
		}
		k++
	}
}

// runTrial runs the clean-and-glue search (C5) for a single trial width k,
// exactly as spec §4.4 describes: per-trial initialisation followed by the
// pop/fly/glue main loop.
func runTrial(ctx context.Context, g *graph.Graph, k, maxGlueStepsPerPop int) (done bool, witness bitset.Set, tr *trial, interrupted bool) {
	n := g.N()
	tr = newTrial(g, k)

	for v := 0; v < n; v++ {
		s := g.Saturate(bitset.Set{}.Add(v))
		if ok, w := tr.offer(s, nil); ok {
			return true, w, tr, false
		}
	}

	for {
		if ctx.Err() != nil {
			return false, bitset.Set{}, tr, true
		}
		s, ok := tr.front.pop()
		if !ok {
			return false, bitset.Set{}, tr, false
		}

		delta := g.ExteriorBorder(s)
		done, witness := tr.processPop(s, delta, maxGlueStepsPerPop)
		if done {
			return true, witness, tr, false
		}
	}
}

// processPop handles one frontier pop: for each v in delta it indexes S into
// tries[v], attempts the fly move, then runs the glue-expansion stack.
func (tr *trial) processPop(s, delta bitset.Set, maxGlueStepsPerPop int) (done bool, witness bitset.Set) {
	result := false
	var resultWitness bitset.Set
	steps := 0

	delta.ForEach(func(v int) bool {
		tr.tries[v].Insert(s)

		flyS := tr.g.Saturate(s.Add(v))
		if ok, w := tr.offer(flyS, []bitset.Set{s}); ok {
			result, resultWitness = true, w
			return false
		}

		if maxGlueStepsPerPop > 0 && steps >= maxGlueStepsPerPop {
			return true
		}
		if ok, w := tr.glueExpand(s, v, &steps, maxGlueStepsPerPop); ok {
			result, resultWitness = true, w
			return false
		}
		return true
	})

	return result, resultWitness
}

// glueExpand runs the glue-expansion work stack for one (S, v) pair: it
// looks up every stored T ⊆ mask in tries[v], builds U = C ∪ T, and either
// offers U⁺ = U ∪ {v} saturated, continues glueing U itself, or both.
// steps is the pop-wide step count shared by every v of the same pop.
func (tr *trial) glueExpand(s bitset.Set, v int, steps *int, maxGlueStepsPerPop int) (done bool, witness bitset.Set) {
	stack := []bitset.Set{s}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mask := c.Union(tr.g.ExteriorBorder(c)).Complement(tr.n)

		stop := false
		result := false
		var resultWitness bitset.Set

		tr.tries[v].SubsetsOf(mask, func(t bitset.Set) bool {
			*steps++
			nc := tr.g.ExteriorBorder(c)
			nt := tr.g.ExteriorBorder(t)
			if nc.Union(nt).Cardinality() > tr.k+1 {
				if maxGlueStepsPerPop > 0 && *steps >= maxGlueStepsPerPop {
					stop = true
					return false
				}
				return true
			}

			u := c.Union(t)
			a := tr.g.Absorbable(u)
			if a == -1 || a == v {
				uPlus := tr.g.Saturate(u.Add(v))
				if ok, w := tr.offer(uPlus, []bitset.Set{c, t}); ok {
					result, resultWitness, stop = true, w, true
					return false
				}
			}
			if a == -1 && !tr.store.recorded(u) {
				tr.store.recordOnce(u, []bitset.Set{c, t})
				stack = append(stack, u)
			}

			if maxGlueStepsPerPop > 0 && *steps >= maxGlueStepsPerPop {
				stop = true
				return false
			}
			return true
		})

		if result {
			return true, resultWitness
		}
		if stop {
			break
		}
	}

	return false, bitset.Set{}
}
