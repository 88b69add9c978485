package main

import (
	"fmt"
	"iter"
	"math"
	"strconv"

	"github.com/tmr232/unfold"
	"github.com/tmr232/unfold/sample"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"
)

func intArg(c *cli.Context, index int, name string) (int, error) {
	raw := c.Args().Get(index)
	if raw == "" {
		return 0, xerrors.Errorf("%s: missing argument %s", c.Command.Name, name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, xerrors.Errorf("%s: invalid %s %q: %w", c.Command.Name, name, raw, err)
	}
	return value, nil
}

// emit writes the items of gen to the app writer, honoring --limit and
// --sum. An error reported by gen is returned after the items it produced.
func emit[A any](c *cli.Context, gen *unfold.Unfold[A, int]) error {
	limit := c.GlobalInt("limit")
	if limit < 0 {
		return xerrors.Errorf("invalid limit %d: must not be negative", limit)
	}
	seq := gen.All()
	if limit > 0 {
		seq = unfold.Take(seq, limit)
	}

	out := c.App.Writer
	if c.GlobalBool("sum") {
		total, err := checkedSum(seq)
		if err != nil {
			return err
		}
		if err := gen.Error(); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, total)
		return err
	}
	for value := range seq {
		if _, err := fmt.Fprintln(out, value); err != nil {
			return err
		}
	}
	return gen.Error()
}

func checkedSum(seq iter.Seq[int]) (int, error) {
	total := 0
	for value := range seq {
		if (value > 0 && total > math.MaxInt-value) || (value < 0 && total < math.MinInt-value) {
			return 0, xerrors.Errorf("sum: adding %d to %d: %w", value, total, sample.ErrOverflow)
		}
		total += value
	}
	return total, nil
}

func rangeAction(c *cli.Context) error {
	start, err := intArg(c, 0, "START")
	if err != nil {
		return err
	}
	stop, err := intArg(c, 1, "STOP")
	if err != nil {
		return err
	}
	return emit(c, sample.Range(start, stop))
}

func fibAction(c *cli.Context) error {
	if c.GlobalInt("limit") == 0 {
		return xerrors.New("fib: the sequence is infinite, set --limit")
	}
	return emit(c, sample.Fibonacci())
}

func collatzAction(c *cli.Context) error {
	n, err := intArg(c, 0, "N")
	if err != nil {
		return err
	}
	return emit(c, sample.Collatz(n))
}

func digitsAction(c *cli.Context) error {
	raw := c.Args().First()
	if raw == "" {
		return xerrors.New("digits: missing argument N")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return xerrors.Errorf("digits: invalid N %q: %w", raw, err)
	}
	return emit(c, sample.Digits(n))
}
