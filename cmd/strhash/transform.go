package main

import (
	"github.com/urfave/cli/v2"

	"strhash/pkg/strhash"
)

var transformCommand = &cli.Command{
	Name:      "transform",
	Usage:     "apply a single rotate/substitute/XOR pass",
	ArgsUsage: "[text...]",
	Description: `Runs one transform pass over the arguments (joined with
spaces), or stdin when no arguments are given. Output has the same number
of characters as the input; no salt, rounds or padding are applied.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "escape",
			Aliases: []string{"e"},
			Usage:   "print the result Go-quoted",
		},
	},
	Action: transformCmd,
}

func transformCmd(c *cli.Context) error {
	input, err := readInput(c)
	if err != nil {
		return err
	}
	emit(c, strhash.Transform(input))
	return nil
}
