// bombs is a terminal sandbox for a grid detonation toy: load or generate
// a terrain, place bombs and walls, and watch blasts carve through it.
//
// Usage:
//
//	bombs play [terrain-file]   - Open the interactive sandbox
//	bombs blast <terrain-file>  - Detonate headlessly and print the result
//	bombs gen                   - Generate a terrain file
//	bombs show <terrain-file>   - Print a terrain file
//
// Global flags:
//
//	--config <path>  - Path to a YAML config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "bombs",
	Short: "Grid detonation sandbox for the terminal",
	Long: `bombs loads a text terrain file into a grid of walls and bombs,
then lets you set off detonations and watch flames propagate, destroy
walls and chain-react with other bombs.

Examples:
  bombs gen -o arena.txt --layout classic
  bombs play arena.txt
  bombs blast arena.txt --at 5,5
  bombs show arena.txt`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(blastCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
