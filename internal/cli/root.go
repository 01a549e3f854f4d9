package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A coordinate-indexed optimal Rubik's cube solver",
	Long: `Cube builds move and pruning tables over compact integer coordinates
and solves a single coordinate's distance to zero by gradient descent.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(coordCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}
