package cube

import "testing"

func TestFlipCoordRoundTrip(t *testing.T) {
	const n = 11
	for c := 0; c < 1<<n; c++ {
		flips := coordToFlip(c, n)
		if got := flipToCoord(flips); got != c {
			t.Fatalf("flipToCoord(coordToFlip(%d)) = %d, want %d", c, got, c)
		}
	}
}

func TestTwistCoordRoundTrip(t *testing.T) {
	const n = 7
	for c := 0; c < 2187; c++ {
		twists := coordToTwist(c, n)
		if got := twistToCoord(twists); got != c {
			t.Fatalf("twistToCoord(coordToTwist(%d)) = %d, want %d", c, got, c)
		}
	}
}

func TestPermCoordRoundTrip(t *testing.T) {
	const n = 6
	for c := 0; c < 720; c++ {
		perm := coordToPerm(c, n)
		if got := permToCoord(perm); got != c {
			t.Fatalf("permToCoord(coordToPerm(%d)) = %d, want %d", c, got, c)
		}
	}
}

func TestPermCoordEvenParityRoundTrip(t *testing.T) {
	const n = 8
	for c := 0; c < factorial(n)/2; c++ {
		perm := coordToPermEvenParity(c, n)
		if !isEvenParity(perm) {
			t.Fatalf("coordToPermEvenParity(%d) produced an odd permutation: %v", c, perm)
		}
		if got := permToCoordEvenParity(perm); got != c {
			t.Fatalf("permToCoordEvenParity(coordToPermEvenParity(%d)) = %d, want %d", c, got, c)
		}
	}
}

func TestDistCoordRoundTrip(t *testing.T) {
	const positions = 12
	const numTrue = 4
	max := binomial(positions, numTrue)
	for c := 0; c < max; c++ {
		state := coordToDist(c, positions, numTrue)
		count := 0
		for _, b := range state {
			if b {
				count++
			}
		}
		if count != numTrue {
			t.Fatalf("coordToDist(%d) has %d true entries, want %d", c, count, numTrue)
		}
		if got := distToCoord(state); got != c {
			t.Fatalf("distToCoord(coordToDist(%d)) = %d, want %d", c, got, c)
		}
	}
}

func TestIsEvenParity(t *testing.T) {
	if !isEvenParity([]int{0, 1, 2, 3}) {
		t.Error("identity permutation should be even")
	}
	if isEvenParity([]int{1, 0, 2, 3}) {
		t.Error("single transposition should be odd")
	}
	if !isEvenParity([]int{1, 0, 3, 2}) {
		t.Error("two transpositions should be even")
	}
}

func TestMergeByDistribution(t *testing.T) {
	in := []int{4, 5, 6, 7}
	out := []int{0, 1, 2, 3, 8, 9, 10, 11}
	coord := 0 // the lowest distribution coordinate
	merged := mergeByDistribution(coord, in, out)
	if len(merged) != len(in)+len(out) {
		t.Fatalf("mergeByDistribution returned %d pieces, want %d", len(merged), len(in)+len(out))
	}
}
