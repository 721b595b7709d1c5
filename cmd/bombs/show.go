package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amalg/go-bombs/internal/terrain"
)

var showCmd = &cobra.Command{
	Use:   "show <terrain-file>",
	Short: "Print a terrain file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := terrain.Load(args[0])
		if err != nil {
			return err
		}

		bombs, walls := 0, 0
		for _, tok := range t.All() {
			switch tok {
			case terrain.Bomb:
				bombs++
			case terrain.Wall:
				walls++
			}
		}

		fmt.Print(t.String())
		fmt.Printf("%dx%d, %d walls, %d bombs\n", t.Width(), t.Height(), walls, bombs)
		return nil
	},
}
