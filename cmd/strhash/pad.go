package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"strhash/pkg/strhash"
)

var padCommand = &cli.Command{
	Name:      "pad",
	Usage:     "pad or truncate text to an exact length",
	ArgsUsage: "<text> <length>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "escape",
			Aliases: []string{"e"},
			Usage:   "print the result Go-quoted",
		},
	},
	Action: padCmd,
}

func padCmd(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("pad needs exactly <text> and <length>, got %d arguments", c.NArg())
	}
	length, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid length %q: %w", c.Args().Get(1), err)
	}
	emit(c, strhash.Pad(c.Args().Get(0), length))
	return nil
}
