package cli

import (
	"fmt"
	"os"

	"github.com/behrlich/cubecoord/internal/cube"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check coordinate, move-table and pruning-table invariants",
	Long: `Verify runs the round-trip, move-table permutation, and pruning-table
BFS invariant checks for a named coordinate (or every coordinate, with
--all) and reports pass or fail for each.`,
	Run: func(cmd *cobra.Command, args []string) {
		coordName, _ := cmd.Flags().GetString("coord")
		all, _ := cmd.Flags().GetBool("all")

		names := []string{coordName}
		if all {
			names = cube.CoordinateNames()
		}

		failed := false
		for _, name := range names {
			kind, err := cube.LookupCoordinate(name)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			if !verifyCoordinate(kind) {
				failed = true
			}
		}

		if failed {
			os.Exit(1)
		}
	},
}

func verifyCoordinate(kind cube.CoordinateKind) bool {
	ok := true

	for c := 0; c < kind.Size; c++ {
		raw := kind.CoordToExampleRaw(c)
		if got := kind.RawToCoord(raw); got != c {
			fmt.Printf("%s: FAIL round-trip at %d: got %d back\n", kind.Name, c, got)
			ok = false
			break
		}
	}

	mt := cube.BuildMoveTable(kind)
	if err := mt.Validate(); err != nil {
		fmt.Printf("%s: FAIL move table: %v\n", kind.Name, err)
		ok = false
	}

	pt, err := cube.BuildPruningTable(mt)
	if err != nil {
		fmt.Printf("%s: FAIL pruning table: %v\n", kind.Name, err)
		ok = false
	} else {
		for _, solved := range kind.SolvedCoords {
			if pt.Distance(solved) != 0 {
				fmt.Printf("%s: FAIL pruning table: solved coord %d has distance %d\n", kind.Name, solved, pt.Distance(solved))
				ok = false
			}
		}
	}

	if ok {
		fmt.Printf("%s: PASS\n", kind.Name)
	}
	return ok
}

func init() {
	verifyCmd.Flags().StringP("coord", "c", "eofb", fmt.Sprintf("Coordinate to verify (%v)", cube.CoordinateNames()))
	verifyCmd.Flags().Bool("all", false, "Verify every known coordinate")
}
