package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli"
)

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "unfold"
	app.Usage = "print sequences produced by unfold generators"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:   "limit, n",
			Usage:  "stop after `N` items (0 means no limit)",
			EnvVar: "UNFOLD_LIMIT",
		},
		cli.BoolFlag{
			Name:  "sum",
			Usage: "print the sum of the items instead of the items",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "range",
			Usage:     "count from start up to, but not including, stop",
			ArgsUsage: "START STOP",
			Action:    rangeAction,
		},
		{
			Name:   "fib",
			Usage:  "the Fibonacci sequence (needs --limit)",
			Action: fibAction,
		},
		{
			Name:      "collatz",
			Usage:     "the Collatz sequence of N",
			ArgsUsage: "N",
			Action:    collatzAction,
		},
		{
			Name:      "digits",
			Usage:     "decimal digits of N, least significant first",
			ArgsUsage: "N",
			Action:    digitsAction,
		},
	}
	return app
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("unfold: ")

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
