package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"strhash/internal/fn"
	"strhash/pkg/log"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "strhash",
		Usage:   "deterministic string stretcher (marketed as a hash, not one)",
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to strhash.yaml (default: search . and ~/.strhash)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			log.Init(c.Bool("debug"))
			return nil
		},
		Commands: []*cli.Command{
			hashCommand,
			transformCommand,
			padCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

// readInput joins the positional arguments with spaces, or reads stdin
// when there are none. A single trailing newline from stdin is dropped so
// `echo text | strhash hash` matches `strhash hash text`.
func readInput(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// emit prints the result, Go-quoted when asked for. The raw output often
// contains control bytes, so --escape is the terminal-friendly mode.
func emit(c *cli.Context, s string) {
	fmt.Println(fn.T(c.Bool("escape"), strconv.Quote(s), s))
}
