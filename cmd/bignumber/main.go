// Command bignumber evaluates short notation expressions.
//
//  $ bignumber 1.5k*2M
//  3B
//  $ bignumber --compact -- -1234567.891
//  -1M-234k-567
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zeebo/errs"
	"gopkg.in/urfave/cli.v1"

	bignumber "github.com/ITGourmand/bigNumber"
	"github.com/ITGourmand/bigNumber/block"
)

var (
	compactFlag = cli.BoolFlag{
		Name:  "compact, c",
		Usage: "render as a sum of suffixed terms",
	}
	minExpFlag = cli.IntFlag{
		Name:  "min-exp",
		Usage: "lowest block exponent to render",
	}
	fullFlag = cli.BoolFlag{
		Name:  "full",
		Usage: "render every block down to the lowest one",
	}
)

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "bignumber"
	app.Usage = "evaluate short notation expressions"
	app.ArgsUsage = "EXPRESSION..."
	app.HideVersion = true
	app.Writer = stdout
	app.Flags = []cli.Flag{
		compactFlag,
		minExpFlag,
		fullFlag,
	}
	app.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			return errs.New("missing expression")
		}

		d := block.Display{
			Compact: c.Bool("compact"),
			MinExp:  c.Int("min-exp"),
			Full:    c.Bool("full"),
		}

		n, err := bignumber.New(strings.Join(c.Args(), " "), d)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(stdout, n)

		return err
	}

	return app
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
