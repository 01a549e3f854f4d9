package cube

import "sort"

/*
UCornerPerm and DCornerPerm each track which 4 of the 8 corner slots
hold one layer's corners and the relative order of those four corners
among themselves, combining a distribution coordinate (70 = C(8,4))
with a permutation coordinate of the 4 group members (24 = 4!). Neither
tracks the internal order of the other layer's corners:
CoordToExampleRaw always arranges them in their canonical order.
*/
const cornerLayerPermSize = 24 // 4!

func newCornerLayerCoord(name string, group []int) CoordinateKind {
	sortedGroup := append([]int(nil), group...)
	sort.Ints(sortedGroup)

	rank := func(id int) int {
		for i, g := range sortedGroup {
			if g == id {
				return i
			}
		}
		panic("cube: id not in corner layer group")
	}

	outGroup := make([]int, 0, 4)
	for id := 0; id < 8; id++ {
		if !inGroup(id, group) {
			outGroup = append(outGroup, id)
		}
	}

	rawToCoord := func(raw RawState) int {
		identities := cornerIdentities(raw.Corners)
		state := make([]bool, len(identities))
		ranks := make([]int, 0, 4)
		for i, id := range identities {
			if inGroup(id, group) {
				state[i] = true
				ranks = append(ranks, rank(id))
			}
		}
		distCoord := distToCoord(state)
		return distCoord*cornerLayerPermSize + permToCoord(ranks)
	}

	coordToExampleRaw := func(coord int) RawState {
		raw := SolvedRawState()
		distCoord := coord / cornerLayerPermSize
		permCoord := coord % cornerLayerPermSize
		ranks := coordToPerm(permCoord, 4)
		groupIdentities := make([]int, len(ranks))
		for i, r := range ranks {
			groupIdentities[i] = sortedGroup[r]
		}
		corners := mergeByDistribution(distCoord, groupIdentities, outGroup)
		for i, id := range corners {
			raw.Corners.Set(i, Corner(id))
		}
		return raw
	}

	kind := CoordinateKind{
		Name:              name,
		Size:              binomial(8, 4) * cornerLayerPermSize,
		AllowedTurns:      OuterLayerTurns(),
		RawToCoord:        rawToCoord,
		CoordToExampleRaw: coordToExampleRaw,
	}
	kind.SolvedCoords = []int{rawToCoord(SolvedRawState())}
	return kind
}

var (
	UCornerPerm = newCornerLayerCoord("UCornerPerm", []int{int(CornerUBL), int(CornerUFL), int(CornerUFR), int(CornerUBR)})
	DCornerPerm = newCornerLayerCoord("DCornerPerm", []int{int(CornerDBL), int(CornerDFL), int(CornerDFR), int(CornerDBR)})
)
