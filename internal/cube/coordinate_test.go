package cube

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CoordinateSuite exercises the bijection, move-table and pruning-table
// invariants every concrete coordinate must satisfy.
type CoordinateSuite struct {
	suite.Suite
}

func (s *CoordinateSuite) allCoordinates() []CoordinateKind {
	names := CoordinateNames()
	kinds := make([]CoordinateKind, 0, len(names))
	for _, name := range names {
		kind, err := LookupCoordinate(name)
		s.Require().NoError(err)
		kinds = append(kinds, kind)
	}
	return kinds
}

func (s *CoordinateSuite) TestRoundTrip() {
	for _, kind := range s.allCoordinates() {
		kind := kind
		s.Run(kind.Name, func() {
			for c := 0; c < kind.Size; c++ {
				raw := kind.CoordToExampleRaw(c)
				require.Equal(s.T(), c, kind.RawToCoord(raw), "round trip at coordinate %d", c)
			}
		})
	}
}

func (s *CoordinateSuite) TestSolvedStateProjectsToASolvedCoord() {
	solved := SolvedRawState()
	for _, kind := range s.allCoordinates() {
		s.Truef(kind.IsSolved(kind.RawToCoord(solved)), "%s: solved raw state did not project to a solved coordinate", kind.Name)
	}
}

func (s *CoordinateSuite) TestMoveTableIsABijection() {
	for _, kind := range s.allCoordinates() {
		mt := BuildMoveTable(kind)
		s.NoError(mt.Validate(), "%s: move table is not a bijection", kind.Name)
	}
}

func (s *CoordinateSuite) TestPruningTableSolvedCoordsHaveZeroDistance() {
	for _, kind := range s.allCoordinates() {
		mt := BuildMoveTable(kind)
		pt, err := BuildPruningTable(mt)
		s.Require().NoError(err)
		for _, solved := range kind.SolvedCoords {
			s.Equalf(0, pt.Distance(solved), "%s: solved coord %d has nonzero distance", kind.Name, solved)
		}
	}
}

func TestCoordinateSuite(t *testing.T) {
	suite.Run(t, new(CoordinateSuite))
}
