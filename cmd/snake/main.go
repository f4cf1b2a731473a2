// snake is a terminal rendition of a grid snake game driven by a
// tilt-style direction arbiter.
//
// Usage:
//
//	snake play               - Play in the local terminal
//	snake scores             - Show recorded results
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set fruit RNG seed (0 = random based on time)
//	--db <path>     - Set database path (default: ~/.snake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a tilt-steered grid snake game in your terminal",
	Long: `Snake is a terminal snake game on a 16x16 grid. Direction changes
go through a tilt arbiter: the stronger axis wins and reversing onto
yourself is ignored. Eat fruit to grow; hitting a wall or your own
body ends the round.

Available commands:
  play     - Play in the local terminal
  scores   - View recorded results
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --seed 90
  snake scores --plain
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Fruit RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
