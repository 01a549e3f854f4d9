package cube

import "fmt"

/*
A TurnEffect is the raw-state delta produced by one quarter turn of a
single layer: which corner positions swap, which corners twist and by
how much, which edge positions swap, which edge positions flip, and
which centre positions swap. Effects are defined once per base layer
(R, M, L, U, E, D, F, S, B); every other turn is replayed against
RawState by decomposing it into base layer quarter turns.

Orientation reference: edges flip only on F and B quarter turns
(reference axis FB); corners twist only on L, R, F and B quarter turns
(reference axis UD). U, D, M, E and S quarter turns permute pieces but
never change orientation. M, E and S additionally permute the four
centres that lie in their slice; the six outer turns never touch a
centre.
*/
type TurnEffect struct {
	CornerSwaps  []Swap
	CornerTwists []cornerTwist
	EdgeSwaps    []Swap
	EdgeFlips    []int
	CentreSwaps  []Swap
}

// cycleSwaps turns a content-flow cycle (the piece at positions[0]
// moves to positions[1], positions[1] to positions[2], ..., the last
// back to positions[0]) into the sequence of pairwise swaps that
// realizes it against a StateList.
func cycleSwaps(positions []int) []Swap {
	swaps := make([]Swap, 0, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		swaps = append(swaps, Swap{A: positions[0], B: positions[i]})
	}
	return swaps
}

// alternatingTwists pairs a corner cycle with alternating +1/+2 twist
// deltas; the four deltas always sum to 0 mod 3, preserving the total
// corner twist invariant.
func alternatingTwists(positions []int) []cornerTwist {
	twists := make([]cornerTwist, len(positions))
	for i, pos := range positions {
		amount := TwistCW
		if i%2 == 1 {
			amount = TwistACW
		}
		twists[i] = cornerTwist{Pos: pos, Amount: amount}
	}
	return twists
}

var baseTurnEffects map[Turn]TurnEffect

func init() {
	corner := func(c Corner) int { return int(c) }
	edge := func(e Edge) int { return int(e) }
	centre := func(c Centre) int { return int(c) }

	rCorners := []int{corner(CornerUFR), corner(CornerDFR), corner(CornerDBR), corner(CornerUBR)}
	rEdges := []int{edge(EdgeUR), edge(EdgeFR), edge(EdgeDR), edge(EdgeBR)}

	lCorners := []int{corner(CornerUBL), corner(CornerUFL), corner(CornerDFL), corner(CornerDBL)}
	lEdges := []int{edge(EdgeUL), edge(EdgeFL), edge(EdgeDL), edge(EdgeBL)}

	uCorners := []int{corner(CornerUBL), corner(CornerUFL), corner(CornerUFR), corner(CornerUBR)}
	uEdges := []int{edge(EdgeUB), edge(EdgeUL), edge(EdgeUF), edge(EdgeUR)}

	dCorners := []int{corner(CornerDBL), corner(CornerDFL), corner(CornerDFR), corner(CornerDBR)}
	dEdges := []int{edge(EdgeDB), edge(EdgeDL), edge(EdgeDF), edge(EdgeDR)}

	fCorners := []int{corner(CornerUFL), corner(CornerUFR), corner(CornerDFR), corner(CornerDFL)}
	fEdges := []int{edge(EdgeUF), edge(EdgeFR), edge(EdgeDF), edge(EdgeFL)}

	bCorners := []int{corner(CornerUBL), corner(CornerUBR), corner(CornerDBR), corner(CornerDBL)}
	bEdges := []int{edge(EdgeUB), edge(EdgeBR), edge(EdgeDB), edge(EdgeBL)}

	mEdges := []int{edge(EdgeUB), edge(EdgeUF), edge(EdgeDF), edge(EdgeDB)}
	mCentres := []int{centre(CentreU), centre(CentreF), centre(CentreD), centre(CentreB)}

	eEdges := []int{edge(EdgeFL), edge(EdgeFR), edge(EdgeBR), edge(EdgeBL)}
	eCentres := []int{centre(CentreL), centre(CentreF), centre(CentreR), centre(CentreB)}

	sEdges := []int{edge(EdgeUL), edge(EdgeUR), edge(EdgeDR), edge(EdgeDL)}
	sCentres := []int{centre(CentreU), centre(CentreL), centre(CentreD), centre(CentreR)}

	baseTurnEffects = map[Turn]TurnEffect{
		TurnRight: {
			CornerSwaps:  cycleSwaps(rCorners),
			CornerTwists: alternatingTwists(rCorners),
			EdgeSwaps:    cycleSwaps(rEdges),
		},
		TurnLeft: {
			CornerSwaps:  cycleSwaps(lCorners),
			CornerTwists: alternatingTwists(lCorners),
			EdgeSwaps:    cycleSwaps(lEdges),
		},
		TurnUp: {
			CornerSwaps: cycleSwaps(uCorners),
			EdgeSwaps:   cycleSwaps(uEdges),
		},
		TurnDown: {
			CornerSwaps: cycleSwaps(dCorners),
			EdgeSwaps:   cycleSwaps(dEdges),
		},
		TurnFront: {
			CornerSwaps:  cycleSwaps(fCorners),
			CornerTwists: alternatingTwists(fCorners),
			EdgeSwaps:    cycleSwaps(fEdges),
			EdgeFlips:    fEdges,
		},
		TurnBack: {
			CornerSwaps:  cycleSwaps(bCorners),
			CornerTwists: alternatingTwists(bCorners),
			EdgeSwaps:    cycleSwaps(bEdges),
			EdgeFlips:    bEdges,
		},
		TurnMiddle: {
			EdgeSwaps:   cycleSwaps(mEdges),
			CentreSwaps: cycleSwaps(mCentres),
		},
		TurnEquator: {
			EdgeSwaps:   cycleSwaps(eEdges),
			CentreSwaps: cycleSwaps(eCentres),
		},
		TurnSlice: {
			EdgeSwaps:   cycleSwaps(sEdges),
			CentreSwaps: cycleSwaps(sCentres),
		},
	}
}

// EffectForTurn returns the defined raw-state effect for a base layer
// quarter turn. It only recognizes the nine base layer turns (R, M, L,
// U, E, D, F, S, B); mirror turns and any compound turn return ok=false.
func EffectForTurn(t Turn) (TurnEffect, bool) {
	effect, ok := baseTurnEffects[t]
	return effect, ok
}

// Apply decomposes t into base layer quarter turns and replays each
// one against the raw state in order. It panics if t decomposes into
// anything other than the nine defined base layer turns (in
// particular, the mirror turns have no raw-state effect and must not
// reach Apply).
func (s *RawState) Apply(t Turn) {
	for _, base := range t.ToBaseTurns() {
		effect, ok := EffectForTurn(base)
		if !ok {
			panic(fmt.Sprintf("cube: turn %s has no raw-state effect", base))
		}
		effect.applyTo(s)
	}
}

// applyTo mutates s by this effect's swaps and orientation deltas,
// swapping positions before updating the orientation of whatever piece
// now occupies them.
func (e TurnEffect) applyTo(s *RawState) {
	s.Corners.ApplySwaps(e.CornerSwaps)
	s.Twists.ApplySwaps(e.CornerSwaps)
	applyTwists(&s.Twists, e.CornerTwists)
	s.Edges.ApplySwaps(e.EdgeSwaps)
	s.Flips.ApplySwaps(e.EdgeSwaps)
	applyFlips(&s.Flips, e.EdgeFlips)
	s.Centres.ApplySwaps(e.CentreSwaps)
}
