package cube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveScrambleOnSolvedCube(t *testing.T) {
	kind, err := LookupCoordinate("eofb")
	require.NoError(t, err)

	mt := BuildMoveTable(kind)
	pt, err := BuildPruningTable(mt)
	require.NoError(t, err)

	result, err := SolveScramble(mt, pt, "")
	require.NoError(t, err)
	require.Equal(t, 0, result.Steps)
	require.Empty(t, result.Algorithm)
}

func TestSolveScrambleSolvesBackToSolved(t *testing.T) {
	kind, err := LookupCoordinate("coud")
	require.NoError(t, err)

	mt := BuildMoveTable(kind)
	pt, err := BuildPruningTable(mt)
	require.NoError(t, err)

	result, err := SolveScramble(mt, pt, "R U R' U'")
	require.NoError(t, err)

	raw := SolvedRawState()
	for _, turn := range result.Turns {
		raw.Apply(turn)
	}

	scramble, err := ParseAlgorithm("R U R' U'")
	require.NoError(t, err)
	scrambled := SolvedRawState()
	for _, turn := range scramble {
		scrambled.Apply(turn)
	}
	for _, turn := range result.Turns {
		scrambled.Apply(turn)
	}

	solvedCoord := kind.RawToCoord(scrambled)
	require.True(t, kind.IsSolved(solvedCoord))
}

func TestSolveCoordRejectsMismatchedTables(t *testing.T) {
	eofb, err := LookupCoordinate("eofb")
	require.NoError(t, err)
	coud, err := LookupCoordinate("coud")
	require.NoError(t, err)

	mt := BuildMoveTable(eofb)
	pt, err := BuildPruningTable(BuildMoveTable(coud))
	require.NoError(t, err)

	_, err = SolveCoord(mt, pt, 0)
	require.Error(t, err)
}

func TestSolveScrambleRejectsUnparseableAlgorithm(t *testing.T) {
	kind, err := LookupCoordinate("eofb")
	require.NoError(t, err)
	mt := BuildMoveTable(kind)
	pt, err := BuildPruningTable(mt)
	require.NoError(t, err)

	_, err = SolveScramble(mt, pt, "Q")
	require.Error(t, err)
}
