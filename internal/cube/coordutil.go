package cube

// Bijections between cube sub-states and dense integer coordinates.
// Every encode/decode pair here must satisfy decode(encode(x)) == x and
// encode(decode(c)) == c on its stated domain; see coordutil_test.go.

// flipToCoord treats flips as a little-endian bit string and folds from
// the high end inward, matching coordToFlip's low-to-high unpacking.
func flipToCoord(flips []Flip) int {
	coord := 0
	for i := len(flips) - 1; i >= 0; i-- {
		coord <<= 1
		coord += int(flips[i])
	}
	return coord
}

// coordToFlip unpacks a base-2 coordinate into numPieces flips.
func coordToFlip(coord, numPieces int) []Flip {
	flips := make([]Flip, numPieces)
	for i := 0; i < numPieces; i++ {
		flips[i] = Flip(coord % 2)
		coord /= 2
	}
	return flips
}

// twistToCoord is the base-3 analogue of flipToCoord.
func twistToCoord(twists []Twist) int {
	coord := 0
	for i := len(twists) - 1; i >= 0; i-- {
		coord *= 3
		coord += int(twists[i])
	}
	return coord
}

// coordToTwist unpacks a base-3 coordinate into numPieces twists.
func coordToTwist(coord, numPieces int) []Twist {
	twists := make([]Twist, numPieces)
	for i := 0; i < numPieces; i++ {
		twists[i] = Twist(coord % 3)
		coord /= 3
	}
	return twists
}

// isEvenParity reports whether positions is an even permutation, by
// counting inversions. O(n^2) is fine at n <= 12.
func isEvenParity(positions []int) bool {
	result := true
	n := len(positions)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if positions[i] > positions[j] {
				result = !result
			}
		}
	}
	return result
}

// permToCoord encodes a permutation of distinct comparable values as a
// factoradic (Lehmer code) coordinate in [0, n!).
func permToCoord(positions []int) int {
	coord := 0
	for i := len(positions) - 1; i >= 1; i-- {
		for j := 0; j < i; j++ {
			if positions[i] < positions[j] {
				coord++
			}
		}
		coord *= i
	}
	return coord
}

// coordToPerm decodes a factoradic coordinate back into a permutation of
// [0, numPieces).
func coordToPerm(coord, numPieces int) []int {
	state := make([]int, numPieces)
	available := make([]int, numPieces)
	for i := 0; i < numPieces; i++ {
		available[i] = numPieces - 1 - i
	}
	for i := numPieces - 1; i >= 0; i-- {
		factor := factorial(i)
		index := coord / factor
		state[i] = available[index]
		available = append(available[:index], available[index+1:]...)
		coord %= factor
	}
	return state
}

// permToCoordEvenParity encodes a permutation assumed to have even
// parity, omitting the first two positions (their order is determined
// by the rest). Codomain is [0, n!/2).
func permToCoordEvenParity(positions []int) int {
	coord := 0
	for i := len(positions) - 1; i >= 2; i-- {
		for j := 0; j < i; j++ {
			if positions[i] < positions[j] {
				coord++
			}
		}
		if i > 2 {
			coord *= i
		}
	}
	return coord
}

// coordToPermEvenParity inverts permToCoordEvenParity: it decodes
// coord*2 as a full permutation and swaps the first two positions if
// that guess has odd parity.
func coordToPermEvenParity(coord, numPieces int) []int {
	state := coordToPerm(coord*2, numPieces)
	if !isEvenParity(state) {
		state[0], state[1] = state[1], state[0]
	}
	return state
}

// distToCoord encodes which positions (high end first) are "true" as a
// combinadic coordinate in [0, C(len(state), k)) where k is the number
// of true entries.
func distToCoord(state []bool) int {
	coord := 0
	n := 0
	k := 0
	for i := len(state) - 1; i >= 0; i-- {
		if state[i] {
			k++
			n++
		} else {
			n++
			if n >= 1 && k >= 1 {
				coord += binomial(n-1, k-1)
			}
		}
	}
	return coord
}

// coordToDist inverts distToCoord for numPositions slots holding
// numTrue "true" entries.
func coordToDist(coord, numPositions, numTrue int) []bool {
	state := make([]bool, numPositions)
	numLeft := numTrue
	for j := 0; j < numPositions; j++ {
		n := numPositions - j - 1
		nChooseK := binomial(n, numLeft-1)
		if coord >= nChooseK {
			coord -= nChooseK
		} else {
			state[j] = true
			numLeft--
		}
		if numLeft == 0 {
			break
		}
	}
	return state
}

// mergeByDistribution interleaves inGroup and outOfGroup pieces
// according to a distribution coordinate, the inverse of splitting a
// piece list into "in this layer/slice" and "not" sublists.
func mergeByDistribution(coord int, inGroup, outOfGroup []int) []int {
	numPositions := len(inGroup) + len(outOfGroup)
	dist := coordToDist(coord, numPositions, len(inGroup))

	pieces := make([]int, numPositions)
	onIdx, offIdx := 0, 0
	for i, belongs := range dist {
		if belongs {
			pieces[i] = inGroup[onIdx]
			onIdx++
		} else {
			pieces[i] = outOfGroup[offIdx]
			offIdx++
		}
	}
	return pieces
}
