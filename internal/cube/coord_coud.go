package cube

// COUD tracks the orientation of all 8 corners relative to the UD
// axis. The twists always sum to 0 mod 3, so the first 7 twists
// determine the eighth.
const coudTrackedCorners = 7

var COUD = CoordinateKind{
	Name:         "COUD",
	Size:         intPow(3, coudTrackedCorners),
	SolvedCoords: []int{0},
	AllowedTurns: OuterLayerTurns(),
	RawToCoord:   coudRawToCoord,
	CoordToExampleRaw: func(coord int) RawState {
		raw := SolvedRawState()
		twists := coordToTwist(coord, coudTrackedCorners)
		sum := 0
		for i := 0; i < coudTrackedCorners; i++ {
			raw.Twists.Set(i, twists[i])
			sum += int(twists[i])
		}
		raw.Twists.Set(coudTrackedCorners, Twist((3-sum%3)%3))
		return raw
	},
}

func coudRawToCoord(raw RawState) int {
	twists := raw.Twists.Slice()[:coudTrackedCorners]
	return twistToCoord(twists)
}

func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
