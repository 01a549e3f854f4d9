package cube

// EOFB tracks the orientation of all 12 edges relative to the FB axis.
// The total number of badly-flipped edges is always even, so the
// first 11 flips determine the twelfth; the coordinate only needs to
// carry those 11 bits.
const eofbTrackedEdges = 11

var EOFB = CoordinateKind{
	Name:         "EOFB",
	Size:         1 << eofbTrackedEdges,
	SolvedCoords: []int{0},
	AllowedTurns: OuterLayerTurns(),
	RawToCoord:   eofbRawToCoord,
	CoordToExampleRaw: func(coord int) RawState {
		raw := SolvedRawState()
		flips := coordToFlip(coord, eofbTrackedEdges)
		sum := 0
		for i := 0; i < eofbTrackedEdges; i++ {
			raw.Flips.Set(i, flips[i])
			sum += int(flips[i])
		}
		raw.Flips.Set(eofbTrackedEdges, Flip(sum%2))
		return raw
	},
}

func eofbRawToCoord(raw RawState) int {
	flips := raw.Flips.Slice()[:eofbTrackedEdges]
	return flipToCoord(flips)
}
