// constants.go — shared defaults used across constructors.
package builder

// Canonical constructor names, used to prefix wrapped errors with context.
const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	methodPlatonicSolid     = "PlatonicSolid"
	methodCompleteBipartite = "CompleteBipartite"
)

// centerVertexID is the fixed hub ID used by Star, Wheel, and stellated
// Platonic solids.
const centerVertexID = "Center"

// Minimum node counts per topology.
const (
	minCycleNodes           = 3
	minPathNodes            = 2
	minStarNodes            = 2
	minWheelNodes           = 4 // outer ring is Cycle(n-1), which needs n-1 >= 3
	minGridDim              = 1
	minRandomSparseVertices = 1
	minRandomRegularNodes   = 1
	minPartitionSize        = 1
)

// Probability bounds for RandomSparse.
const (
	minProbability = 0.0
	maxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular's retry loop when a shuffled
// stub matching produces a loop or a repeated edge.
const maxStubMatchingAttempts = 64
