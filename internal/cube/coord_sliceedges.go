package cube

import "sort"

/*
An E/M/S-slice edge permutation coordinate tracks both which 4 of the
12 edge slots hold one slice's edges and the order those 4 edges sit
in, combining a distribution coordinate (495 = C(12,4)) with a
permutation coordinate of the 4 group members (24 = 4!). Like
UCornerPerm and DCornerPerm, it does not track the internal order of the other 8
edges: CoordToExampleRaw always arranges them in a fixed canonical
order.
*/
const sliceEdgePermSize = 24 // 4!

func newSliceEdgeCoord(name string, group []int) CoordinateKind {
	sortedGroup := append([]int(nil), group...)
	sort.Ints(sortedGroup)

	rank := func(id int) int {
		for i, g := range sortedGroup {
			if g == id {
				return i
			}
		}
		panic("cube: id not in slice edge group")
	}

	outGroup := make([]int, 0, 8)
	for id := 0; id < 12; id++ {
		if !inGroup(id, group) {
			outGroup = append(outGroup, id)
		}
	}

	rawToCoord := func(raw RawState) int {
		identities := edgeIdentities(raw.Edges)
		state := make([]bool, len(identities))
		ranks := make([]int, 0, 4)
		for i, id := range identities {
			if inGroup(id, group) {
				state[i] = true
				ranks = append(ranks, rank(id))
			}
		}
		distCoord := distToCoord(state)
		return distCoord*sliceEdgePermSize + permToCoord(ranks)
	}

	coordToExampleRaw := func(coord int) RawState {
		raw := SolvedRawState()
		distCoord := coord / sliceEdgePermSize
		permCoord := coord % sliceEdgePermSize
		ranks := coordToPerm(permCoord, 4)
		groupIdentities := make([]int, len(ranks))
		for i, r := range ranks {
			groupIdentities[i] = sortedGroup[r]
		}
		edges := mergeByDistribution(distCoord, groupIdentities, outGroup)
		for i, id := range edges {
			raw.Edges.Set(i, Edge(id))
		}
		return raw
	}

	kind := CoordinateKind{
		Name:              name,
		Size:              binomial(12, 4) * sliceEdgePermSize,
		AllowedTurns:      OuterLayerTurns(),
		RawToCoord:        rawToCoord,
		CoordToExampleRaw: coordToExampleRaw,
	}
	kind.SolvedCoords = []int{rawToCoord(SolvedRawState())}
	return kind
}

var (
	ESliceEdgePerm = newSliceEdgeCoord("ESliceEdgePerm", []int{int(EdgeBL), int(EdgeFL), int(EdgeFR), int(EdgeBR)})
	MSliceEdgePerm = newSliceEdgeCoord("MSliceEdgePerm", []int{int(EdgeUB), int(EdgeUF), int(EdgeDB), int(EdgeDF)})
	SSliceEdgePerm = newSliceEdgeCoord("SSliceEdgePerm", []int{int(EdgeUL), int(EdgeUR), int(EdgeDL), int(EdgeDR)})
)
