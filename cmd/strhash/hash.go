package main

import (
	"github.com/urfave/cli/v2"

	"strhash/internal/fn"
	"strhash/pkg/config"
	"strhash/pkg/log"
	"strhash/pkg/strhash"
)

var hashCommand = &cli.Command{
	Name:      "hash",
	Usage:     "stretch input into a fixed-length string",
	ArgsUsage: "[text...]",
	Description: `Hashes the arguments (joined with spaces), or stdin when no
arguments are given. Flag values of "" / 0 fall back to the configured
defaults, exactly like the library API.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "salt",
			Aliases: []string{"s"},
			Usage:   "per-call salt (empty uses the configured default)",
		},
		&cli.IntFlag{
			Name:    "rounds",
			Aliases: []string{"r"},
			Usage:   "transform rounds (0 uses the configured default)",
		},
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"l"},
			Usage:   "output length (0 uses the configured default)",
		},
		&cli.BoolFlag{
			Name:    "escape",
			Aliases: []string{"e"},
			Usage:   "print the result Go-quoted",
		},
	},
	Action: hashCmd,
}

func hashCmd(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if cfg.Debug {
		log.Init(true)
	}

	input, err := readInput(c)
	if err != nil {
		return err
	}

	rounds := fn.Or(c.Int("rounds"), cfg.DefaultRounds)
	h := strhash.New(strhash.Config{
		Rounds: rounds,
		Salt:   fn.Or(c.String("salt"), cfg.DefaultSalt),
		Length: fn.Or(c.Int("length"), cfg.HashLength),
	})
	log.Debug().
		Int("rounds", rounds).
		Int("length", h.Length()).
		Int("input_len", len(input)).
		Msg("hashing")

	emit(c, h.Hash(input))
	return nil
}
