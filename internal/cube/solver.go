package cube

import (
	"fmt"
	"time"
)

/*
SolveCoord is a gradient-descent optimal solver over a single
coordinate: at each step it picks the first turn, in the coordinate's
fixed allowed-turn order, whose move table strictly decreases the
pruning table's distance-to-solved. Because the pruning table's
distances are exact (built by full breadth-first search), this greedy
choice always exists away from a solved coordinate and the resulting
algorithm is length-optimal for that single coordinate.
*/
func SolveCoord(mt *MoveTable, pt *PruningTable, start int) ([]Turn, error) {
	if mt.Kind.Name != pt.Kind.Name {
		return nil, fmt.Errorf("cube: move table %s and pruning table %s do not match", mt.Kind.Name, pt.Kind.Name)
	}

	var turns []Turn
	coord := start
	for pt.Distance(coord) > 0 {
		currentDist := pt.Distance(coord)
		found := false
		for _, t := range mt.Turns {
			next := mt.Apply(coord, t)
			if pt.Distance(next) < currentDist {
				turns = append(turns, t)
				coord = next
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("cube: no turn decreases distance from coordinate %d (distance %d) in %s", coord, currentDist, mt.Kind.Name)
		}
	}
	return turns, nil
}

// SolveResult bundles the algorithm found by a solve with bookkeeping
// about the search that produced it.
type SolveResult struct {
	Algorithm string
	Turns     []Turn
	Steps     int
	Duration  time.Duration
}

// SolveScramble scrambles a solved cube with scrambleAlg, projects the
// result onto mt's coordinate, and solves it.
func SolveScramble(mt *MoveTable, pt *PruningTable, scrambleAlg string) (*SolveResult, error) {
	scramble, err := ParseAlgorithm(scrambleAlg)
	if err != nil {
		return nil, err
	}

	raw := SolvedRawState()
	for _, t := range scramble {
		raw.Apply(t)
	}

	start := mt.Kind.RawToCoord(raw)

	begin := time.Now()
	turns, err := SolveCoord(mt, pt, start)
	if err != nil {
		return nil, fmt.Errorf("cube: solving scramble %q: %w", scrambleAlg, err)
	}

	return &SolveResult{
		Algorithm: TurnsToAlgorithm(turns),
		Turns:     turns,
		Steps:     len(turns),
		Duration:  time.Since(begin),
	}, nil
}
