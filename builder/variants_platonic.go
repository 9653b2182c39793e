// SPDX-License-Identifier: MIT
// variants_platonic.go — canonical data for the five Platonic solid shells.
//
// Single source of truth for vertex counts and shell edges. Edge sets are
// fixed literal slices with U < V in every edge, emitted in the listed order,
// so emission order is deterministic regardless of map iteration.
package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String provides a readable identifier for error messages.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// chord is an unordered shell edge given as zero-based vertex indices, U<V.
type chord struct {
	U int
	V int
}

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][]chord{
	// Tetrahedron: complete graph K4 on vertices 0..3.
	Tetrahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	},

	// Cube: bottom face 0-1-2-3-0, top face 4-5-6-7-4, verticals 0-4,1-5,2-6,3-7.
	Cube: {
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 0, V: 3},
		{U: 0, V: 4}, {U: 1, V: 5}, {U: 2, V: 6}, {U: 3, V: 7},
		{U: 4, V: 5}, {U: 4, V: 7}, {U: 5, V: 6}, {U: 6, V: 7},
	},

	// Octahedron: poles {0,1}, equatorial ring {2,3,4,5}.
	Octahedron: {
		{U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
		{U: 2, V: 4}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 3, V: 5},
	},

	// Dodecahedron: top pentagon 0-4, bottom pentagon 5-9, middle 10-cycle
	// 10-19, spokes from top/bottom pentagons to even/odd middle indices.
	Dodecahedron: {
		{U: 0, V: 1}, {U: 0, V: 4}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4},
		{U: 5, V: 6}, {U: 5, V: 9}, {U: 6, V: 7}, {U: 7, V: 8}, {U: 8, V: 9},
		{U: 10, V: 11}, {U: 10, V: 19}, {U: 11, V: 12}, {U: 12, V: 13}, {U: 13, V: 14},
		{U: 14, V: 15}, {U: 15, V: 16}, {U: 16, V: 17}, {U: 17, V: 18}, {U: 18, V: 19},
		{U: 0, V: 10}, {U: 1, V: 12}, {U: 2, V: 14}, {U: 3, V: 16}, {U: 4, V: 18},
		{U: 5, V: 11}, {U: 6, V: 13}, {U: 7, V: 15}, {U: 8, V: 17}, {U: 9, V: 19},
	},

	// Icosahedron: top pole 0, top ring 1-5, bottom ring 6-10, bottom pole 11.
	Icosahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 5}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5},
		{U: 1, V: 6}, {U: 1, V: 7}, {U: 2, V: 7}, {U: 2, V: 8}, {U: 3, V: 8},
		{U: 3, V: 9}, {U: 4, V: 9}, {U: 4, V: 10}, {U: 5, V: 6}, {U: 5, V: 10},
		{U: 6, V: 7}, {U: 6, V: 10}, {U: 7, V: 8}, {U: 8, V: 9}, {U: 9, V: 10},
		{U: 6, V: 11}, {U: 7, V: 11}, {U: 8, V: 11}, {U: 9, V: 11}, {U: 10, V: 11},
	},
}
