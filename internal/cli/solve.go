package cli

import (
	"fmt"
	"os"

	"github.com/behrlich/cubecoord/internal/cube"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled coordinate by gradient descent",
	Long: `Solve projects a scramble onto the named coordinate and finds the
shortest sequence of turns, in that coordinate's allowed turn set, that
returns it to a solved value.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		coordName, _ := cmd.Flags().GetString("coord")
		headless, _ := cmd.Flags().GetBool("headless")

		kind, err := cube.LookupCoordinate(coordName)
		if err != nil {
			if !headless {
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}

		if !headless {
			fmt.Printf("Solving coordinate %s for scramble: %s\n", kind.Name, scramble)
		}

		mt := cube.BuildMoveTable(kind)
		pt, err := cube.BuildPruningTable(mt)
		if err != nil {
			if !headless {
				fmt.Printf("Error building pruning table: %v\n", err)
			}
			os.Exit(1)
		}

		result, err := cube.SolveScramble(mt, pt, scramble)
		if err != nil {
			if !headless {
				fmt.Printf("Error solving scramble: %v\n", err)
			}
			os.Exit(1)
		}

		if headless {
			fmt.Print(result.Algorithm)
		} else {
			fmt.Printf("Solution: %s\n", result.Algorithm)
			fmt.Printf("Steps: %d\n", result.Steps)
			fmt.Printf("Time: %v\n", result.Duration)
		}
	},
}

func init() {
	solveCmd.Flags().StringP("coord", "c", "eofb", fmt.Sprintf("Coordinate to solve (%v)", cube.CoordinateNames()))
	solveCmd.Flags().Bool("headless", false, "Output only the solution's space-separated moves")
}
