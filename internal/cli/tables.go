package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/behrlich/cubecoord/internal/cube"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build move and pruning tables and report build stats",
	Long: `Tables builds the move table and pruning table for a named coordinate
(or every coordinate, with --all) and reports size, build time, and the
maximum distance-to-solved found.`,
	Run: func(cmd *cobra.Command, args []string) {
		coordName, _ := cmd.Flags().GetString("coord")
		all, _ := cmd.Flags().GetBool("all")

		names := []string{coordName}
		if all {
			names = cube.CoordinateNames()
		}

		for _, name := range names {
			kind, err := cube.LookupCoordinate(name)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			reportTableStats(kind)
		}
	},
}

func reportTableStats(kind cube.CoordinateKind) {
	start := time.Now()
	mt := cube.BuildMoveTable(kind)
	moveTableTime := time.Since(start)

	if err := mt.Validate(); err != nil {
		fmt.Printf("%s: move table FAILED validation: %v\n", kind.Name, err)
		return
	}

	start = time.Now()
	pt, err := cube.BuildPruningTable(mt)
	pruningTableTime := time.Since(start)
	if err != nil {
		fmt.Printf("%s: pruning table FAILED: %v\n", kind.Name, err)
		return
	}

	maxDist := 0
	for c := 0; c < kind.Size; c++ {
		if d := pt.Distance(c); d > maxDist {
			maxDist = d
		}
	}

	fmt.Printf("%s: size=%d moveTable=%v pruningTable=%v maxDistance=%d\n",
		kind.Name, kind.Size, moveTableTime, pruningTableTime, maxDist)
}

func init() {
	tablesCmd.Flags().StringP("coord", "c", "eofb", fmt.Sprintf("Coordinate to build (%v)", cube.CoordinateNames()))
	tablesCmd.Flags().Bool("all", false, "Build tables for every known coordinate")
}
