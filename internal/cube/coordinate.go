package cube

/*
A coordinate is a dense integer encoding of some projection of the raw
cube state: the corner twists, the edge flips, which slots a group of
pieces occupies, or a permutation of some subset of pieces. Each
concrete coordinate is described by a CoordinateKind: a small record of
closures and constants rather than an interface, since every
coordinate needs the same handful of operations and none of them need
receiver state beyond what the closures already capture.
*/
type CoordinateKind struct {
	// Name identifies the coordinate in output and error messages.
	Name string

	// Size is the number of distinct coordinate values, i.e. the
	// coordinate's domain is [0, Size).
	Size int

	// SolvedCoords lists every coordinate value a solved cube can
	// present as (usually one value, but coordinates that only track a
	// subset of pieces may have several raw states map to "solved").
	SolvedCoords []int

	// AllowedTurns is the turn set a move table should be built over
	// for this coordinate.
	AllowedTurns []Turn

	// RawToCoord projects a full raw state down to this coordinate.
	RawToCoord func(RawState) int

	// CoordToExampleRaw builds some raw state that projects back to
	// coord. It need not be the unique preimage: callers only use the
	// result to apply a turn and re-project, never to inspect pieces
	// the coordinate doesn't track.
	CoordToExampleRaw func(coord int) RawState
}

// ApplyBaseTurn computes the coordinate reached by applying t to some
// raw state currently at coord. It is used to populate a move table
// one base turn at a time; it is too slow to call per lookup, which is
// exactly what a MoveTable precomputes.
func ApplyBaseTurn(k CoordinateKind, coord int, t Turn) int {
	raw := k.CoordToExampleRaw(coord)
	raw.Apply(t)
	return k.RawToCoord(raw)
}

// IsSolved reports whether coord is one of k's solved values.
func (k CoordinateKind) IsSolved(coord int) bool {
	for _, solved := range k.SolvedCoords {
		if coord == solved {
			return true
		}
	}
	return false
}
