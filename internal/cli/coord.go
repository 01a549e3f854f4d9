package cli

import (
	"fmt"
	"os"

	"github.com/behrlich/cubecoord/internal/cube"
	"github.com/spf13/cobra"
)

var coordCmd = &cobra.Command{
	Use:   "coord [scramble]",
	Short: "Print the coordinate value of a scramble",
	Long: `Coord applies a scramble to a solved cube and projects the result onto
the named coordinate, printing the resulting integer.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		coordName, _ := cmd.Flags().GetString("coord")

		kind, err := cube.LookupCoordinate(coordName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		turns, err := cube.ParseAlgorithm(scramble)
		if err != nil {
			fmt.Printf("Error parsing scramble: %v\n", err)
			os.Exit(1)
		}

		raw := cube.SolvedRawState()
		for _, t := range turns {
			raw.Apply(t)
		}

		value := kind.RawToCoord(raw)
		fmt.Printf("%s(%s) = %d\n", kind.Name, scramble, value)
	},
}

func init() {
	coordCmd.Flags().StringP("coord", "c", "eofb", fmt.Sprintf("Coordinate to evaluate (%v)", cube.CoordinateNames()))
}
