package cube

/*
The state of the cube is represented by a set of five state-lists, one
per piece/orientation kind. A state-list over alphabet T is a
fixed-length vector indexed by position; the element at index p
reports what is currently at position p.
*/

// StateList is a fixed-length vector indexed by position. Swapping is
// generic over the stored type; orientation deltas (flips, twists) are
// applied by the free functions applyFlips/applyTwists below, since Go
// does not allow methods specialized to one instantiation of a generic
// type.
type StateList[T any] struct {
	states []T
}

// NewStateList wraps states in a StateList, taking ownership of the
// slice.
func NewStateList[T any](states []T) StateList[T] {
	return StateList[T]{states: states}
}

// Get returns the value currently at position.
func (s StateList[T]) Get(position int) T {
	return s.states[position]
}

// Set overwrites the value at position.
func (s *StateList[T]) Set(position int, value T) {
	s.states[position] = value
}

// Slice returns the underlying values in position order.
func (s StateList[T]) Slice() []T {
	return s.states
}

// Clone returns a StateList holding an independent copy of the
// underlying slice.
func (s StateList[T]) Clone() StateList[T] {
	cp := make([]T, len(s.states))
	copy(cp, s.states)
	return StateList[T]{states: cp}
}

// ApplySwaps exchanges the values at each swap's two positions, in
// order.
func (s *StateList[T]) ApplySwaps(swaps []Swap) {
	for _, sw := range swaps {
		s.states[sw.A], s.states[sw.B] = s.states[sw.B], s.states[sw.A]
	}
}

// applyFlips flips the edges at the given positions in place.
func applyFlips(s *StateList[Flip], positions []int) {
	for _, pos := range positions {
		s.Set(pos, s.Get(pos).Flipped())
	}
}

// applyTwists adds each twist's amount to the corner at its position.
func applyTwists(s *StateList[Twist], twists []cornerTwist) {
	for _, t := range twists {
		s.Set(t.Pos, s.Get(t.Pos).TwistBy(t.Amount))
	}
}

// RawState is the raw piece-level state of a 3x3x3 cube: corner
// positions, corner twists, edge positions, edge flips, and centre
// positions.
type RawState struct {
	Corners StateList[Corner]
	Twists  StateList[Twist]
	Edges   StateList[Edge]
	Flips   StateList[Flip]
	Centres StateList[Centre]
}

// SolvedRawState returns the raw state of a solved cube: every
// state-list is the identity permutation, with zero twists and good
// flips throughout.
func SolvedRawState() RawState {
	return RawState{
		Corners: NewStateList([]Corner{CornerUBL, CornerUFL, CornerUFR, CornerUBR, CornerDBL, CornerDFL, CornerDFR, CornerDBR}),
		Twists:  NewStateList([]Twist{TwistNone, TwistNone, TwistNone, TwistNone, TwistNone, TwistNone, TwistNone, TwistNone}),
		Edges:   NewStateList([]Edge{EdgeUB, EdgeUL, EdgeUF, EdgeUR, EdgeBL, EdgeFL, EdgeFR, EdgeBR, EdgeDB, EdgeDL, EdgeDF, EdgeDR}),
		Flips:   NewStateList([]Flip{FlipGood, FlipGood, FlipGood, FlipGood, FlipGood, FlipGood, FlipGood, FlipGood, FlipGood, FlipGood, FlipGood, FlipGood}),
		Centres: NewStateList([]Centre{CentreU, CentreL, CentreF, CentreR, CentreB, CentreD}),
	}
}

// Clone returns a RawState holding independent copies of every
// state-list.
func (s RawState) Clone() RawState {
	return RawState{
		Corners: s.Corners.Clone(),
		Twists:  s.Twists.Clone(),
		Edges:   s.Edges.Clone(),
		Flips:   s.Flips.Clone(),
		Centres: s.Centres.Clone(),
	}
}

// cornerIdentities returns the corner state-list's values as plain
// ints, for use with the generic permutation coordinate helpers.
func cornerIdentities(s StateList[Corner]) []int {
	vals := s.Slice()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	return out
}

// edgeIdentities returns the edge state-list's values as plain ints.
func edgeIdentities(s StateList[Edge]) []int {
	vals := s.Slice()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	return out
}
