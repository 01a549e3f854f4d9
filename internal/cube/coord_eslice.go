package cube

// ESliceSep tracks which 4 of the 12 edge slots hold the E-slice
// edges (BL, FL, FR, BR), ignoring their identity and order within
// that group and the arrangement of the other 8 edges.
var eSliceGroup = []int{int(EdgeBL), int(EdgeFL), int(EdgeFR), int(EdgeBR)}
var eSliceOutGroup = []int{int(EdgeUB), int(EdgeUL), int(EdgeUF), int(EdgeUR), int(EdgeDB), int(EdgeDL), int(EdgeDF), int(EdgeDR)}

// eSliceUDSwapPositions pairs each E-slice edge slot with the U-layer
// slot above it (BL/UB, FL/UL, FR/UF, BR/UR). The E-slice group sits
// in the middle of the 12-slot edge array in the solved state;
// swapping these position pairs before distributing moves the group
// to the array's low end so the solved coordinate comes out to 0. The
// swap is its own inverse, so the same pairs undo it on decode.
var eSliceUDSwapPositions = [4][2]int{
	{int(EdgeUB), int(EdgeBL)},
	{int(EdgeUL), int(EdgeFL)},
	{int(EdgeUF), int(EdgeFR)},
	{int(EdgeUR), int(EdgeBR)},
}

func applyESliceUDSwap(identities []int) {
	for _, pair := range eSliceUDSwapPositions {
		identities[pair[0]], identities[pair[1]] = identities[pair[1]], identities[pair[0]]
	}
}

var ESliceSep = CoordinateKind{
	Name:         "ESliceSep",
	Size:         binomial(12, 4),
	AllowedTurns: OuterLayerTurns(),
	RawToCoord:   eSliceSepRawToCoord,
	CoordToExampleRaw: func(coord int) RawState {
		raw := SolvedRawState()
		edges := mergeByDistribution(coord, eSliceGroup, eSliceOutGroup)
		applyESliceUDSwap(edges)
		for i, id := range edges {
			raw.Edges.Set(i, Edge(id))
		}
		return raw
	},
	SolvedCoords: []int{0},
}

func eSliceSepRawToCoord(raw RawState) int {
	identities := append([]int(nil), edgeIdentities(raw.Edges)...)
	applyESliceUDSwap(identities)
	state := make([]bool, len(identities))
	for i, id := range identities {
		state[i] = inGroup(id, eSliceGroup)
	}
	return distToCoord(state)
}

func inGroup(id int, group []int) bool {
	for _, g := range group {
		if id == g {
			return true
		}
	}
	return false
}
