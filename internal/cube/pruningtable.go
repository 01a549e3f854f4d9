package cube

import "fmt"

// MaxPruningDistance bounds how many moves a pruning table search will
// explore before giving up. No coordinate used by the solvers in this
// package needs anywhere near this many moves from solved; exceeding it
// means the move table or coordinate is broken.
const MaxPruningDistance = 25

// PruningTable holds, for every coordinate value, the minimum number of
// turns needed to reach a solved coordinate.
type PruningTable struct {
	Kind CoordinateKind
	dist []int8
}

// Distance returns the precomputed distance-to-solved for coord.
func (pt *PruningTable) Distance(coord int) int {
	return int(pt.dist[coord])
}

// BuildPruningTable runs a breadth-first search over mt's coordinate
// space, starting from every solved coordinate simultaneously. Once more
// than half the coordinate space has been discovered, the search
// switches to scanning the remaining unknown coordinates and pulling
// in any that border the previous frontier, which is cheaper once most
// of the space has already been discovered.
func BuildPruningTable(mt *MoveTable) (*PruningTable, error) {
	size := mt.Kind.Size
	dist := make([]int8, size)
	for i := range dist {
		dist[i] = -1
	}

	frontier := make([]int, 0, len(mt.Kind.SolvedCoords))
	for _, s := range mt.Kind.SolvedCoords {
		if dist[s] == -1 {
			dist[s] = 0
			frontier = append(frontier, s)
		}
	}

	discovered := len(frontier)
	forward := true
	var depth int8

	for discovered < size {
		depth++
		if int(depth) > MaxPruningDistance {
			return nil, fmt.Errorf("cube: pruning table %s exceeded max distance %d with %d of %d coordinates discovered", mt.Kind.Name, MaxPruningDistance, discovered, size)
		}

		var next []int
		if forward {
			for _, coord := range frontier {
				for _, t := range mt.Turns {
					nc := mt.Apply(coord, t)
					if dist[nc] == -1 {
						dist[nc] = depth
						next = append(next, nc)
					}
				}
			}
		} else {
			for coord := 0; coord < size; coord++ {
				if dist[coord] != -1 {
					continue
				}
				for _, t := range mt.Turns {
					nc := mt.Apply(coord, t)
					if dist[nc] == depth-1 {
						dist[coord] = depth
						next = append(next, coord)
						break
					}
				}
			}
		}

		discovered += len(next)
		frontier = next

		if forward && discovered*2 > size {
			forward = false
		}
	}

	return &PruningTable{Kind: mt.Kind, dist: dist}, nil
}
