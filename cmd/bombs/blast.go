package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/amalg/go-bombs/internal/game"
	"github.com/amalg/go-bombs/internal/terrain"
)

var (
	flagAt  string
	flagOut string
)

var blastCmd = &cobra.Command{
	Use:   "blast <terrain-file>",
	Short: "Detonate a bomb headlessly and print the result",
	Long: `Load a terrain file, detonate the bomb at the given position and
print the terrain before and after, along with the change-set. With -o the
post-blast terrain is written back to a file.

Example:
  bombs blast arena.txt --at 5,5 -o after.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runBlast,
}

func init() {
	blastCmd.Flags().StringVar(&flagAt, "at", "", "Bomb position as X,Y (required)")
	blastCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write the post-blast terrain to this file")
	blastCmd.MarkFlagRequired("at")
}

func runBlast(cmd *cobra.Command, args []string) error {
	var pos terrain.Position
	if _, err := fmt.Sscanf(flagAt, "%d,%d", &pos.X, &pos.Y); err != nil {
		return fmt.Errorf("bad --at value %q, want X,Y: %w", flagAt, err)
	}

	t, err := terrain.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Println("before:")
	fmt.Print(t.String())

	changes := game.Detonate(pos, t)
	log.Info("detonated", "at", pos, "cells", len(changes))
	if len(changes) == 0 {
		fmt.Printf("no bomb at %v, nothing changed\n", pos)
		return nil
	}

	for _, p := range sortedKeys(changes) {
		fmt.Printf("  %v -> %q\n", p, changes[p].String())
	}

	if err := t.Apply(changes); err != nil {
		return err
	}
	fmt.Println("after:")
	fmt.Print(t.String())

	if flagOut != "" {
		if err := terrain.Save(t, flagOut); err != nil {
			return err
		}
		log.Info("wrote terrain", "path", flagOut)
	}
	return nil
}

func sortedKeys(changes map[terrain.Position]terrain.Token) []terrain.Position {
	keys := make([]terrain.Position, 0, len(changes))
	for p := range changes {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}
