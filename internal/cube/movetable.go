package cube

import (
	"fmt"
	"sync"
)

/*
A MoveTable is coord -> coord for every turn in a coordinate's allowed
turn set, precomputed once so that replaying a turn during search is an
array lookup instead of a raw-state round trip. Building one row is
independent of every other row, so rows are built concurrently; each
goroutine only ever writes to its own row, so no locking is needed.

Only base (quarter) turns are built via the raw-state round trip.
Compound turns (doubles, inverses) are composed from the already-built
base rows, never re-entering the raw-state path.
*/
type MoveTable struct {
	Kind  CoordinateKind
	Turns []Turn
	rows  [][]int32
	index map[Turn]int
}

// BuildMoveTable constructs the move table for k: base turns by
// applying them to every coordinate value, compound turns by composing
// the resulting base rows via Turn.ToBaseTurns.
func BuildMoveTable(k CoordinateKind) *MoveTable {
	turns := k.AllowedTurns
	rows := make([][]int32, len(turns))
	index := make(map[Turn]int, len(turns))
	for ti, t := range turns {
		index[t] = ti
	}

	baseTurns := map[Turn]bool{}
	for _, t := range turns {
		if t.IsBaseMove() {
			baseTurns[t] = true
		} else {
			for _, b := range t.ToBaseTurns() {
				baseTurns[b] = true
			}
		}
	}

	baseRows := make(map[Turn][]int32, len(baseTurns))
	var wg sync.WaitGroup
	for t := range baseTurns {
		row := make([]int32, k.Size)
		baseRows[t] = row
		wg.Add(1)
		go func(t Turn, row []int32) {
			defer wg.Done()
			for c := 0; c < k.Size; c++ {
				row[c] = int32(ApplyBaseTurn(k, c, t))
			}
		}(t, row)
	}
	wg.Wait()

	for ti, t := range turns {
		if t.IsBaseMove() {
			rows[ti] = baseRows[t]
			continue
		}
		wg.Add(1)
		go func(ti int, t Turn) {
			defer wg.Done()
			sequence := t.ToBaseTurns()
			row := make([]int32, k.Size)
			for c := 0; c < k.Size; c++ {
				coord := c
				for _, base := range sequence {
					coord = int(baseRows[base][coord])
				}
				row[c] = int32(coord)
			}
			rows[ti] = row
		}(ti, t)
	}
	wg.Wait()

	return &MoveTable{Kind: k, Turns: turns, rows: rows, index: index}
}

// Apply returns the coordinate reached by turning t from coord.
func (mt *MoveTable) Apply(coord int, t Turn) int {
	ti, ok := mt.index[t]
	if !ok {
		panic(fmt.Sprintf("cube: turn %s is not in %s's allowed turn set", t, mt.Kind.Name))
	}
	return int(mt.rows[ti][coord])
}

// Validate checks that every row of the table is a bijection on
// [0, Size), the invariant every move table must hold since every turn
// is reversible.
func (mt *MoveTable) Validate() error {
	seen := make([]bool, mt.Kind.Size)
	for ti, t := range mt.Turns {
		for i := range seen {
			seen[i] = false
		}
		row := mt.rows[ti]
		for _, dest := range row {
			if seen[dest] {
				return fmt.Errorf("cube: move table %s turn %s is not a bijection: coord %d reached twice", mt.Kind.Name, t, dest)
			}
			seen[dest] = true
		}
	}
	return nil
}
