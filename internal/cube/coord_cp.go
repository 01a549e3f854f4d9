package cube

// CornerPerm tracks the full permutation of all 8 corners as a
// factoradic coordinate.
var CornerPerm = CoordinateKind{
	Name:         "CornerPerm",
	Size:         factorial(8),
	SolvedCoords: []int{0},
	AllowedTurns: OuterLayerTurns(),
	RawToCoord:   cornerPermRawToCoord,
	CoordToExampleRaw: func(coord int) RawState {
		raw := SolvedRawState()
		perm := coordToPerm(coord, 8)
		for i, id := range perm {
			raw.Corners.Set(i, Corner(id))
		}
		return raw
	},
}

func cornerPermRawToCoord(raw RawState) int {
	return permToCoord(cornerIdentities(raw.Corners))
}
