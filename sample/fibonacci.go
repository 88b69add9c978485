package sample

import (
	"math"

	"github.com/tmr232/unfold"
	"golang.org/x/xerrors"
)

// fibPair holds two consecutive Fibonacci numbers. bOverflow is set once b
// no longer fits in an int.
type fibPair struct {
	a, b      int
	aOverflow bool
	bOverflow bool
}

// Fibonacci yields 1, 1, 2, 3, 5, ... for as long as the items fit in an
// int. The 93rd item does not; the sequence then ends and Error reports
// ErrOverflow.
func Fibonacci() *unfold.Unfold[fibPair, int] {
	return unfold.NewFallible(fibPair{a: 1, b: 1}, func(p *fibPair) (fibPair, int, bool, error) {
		if p.aOverflow {
			return *p, 0, false, xerrors.Errorf("fibonacci: item 93: %w", ErrOverflow)
		}
		next := fibPair{a: p.b, aOverflow: p.bOverflow}
		if p.bOverflow || p.b > math.MaxInt-p.a {
			next.bOverflow = true
		} else {
			next.b = p.a + p.b
		}
		return next, p.a, true, nil
	})
}

// ChannelFibonacci produces the first n Fibonacci numbers on a goroutine.
// The channel is buffered for all n items, so the goroutine finishes even
// if the caller stops reading early.
func ChannelFibonacci(n int) chan int {
	c := make(chan int, max(n, 0))
	go func() {
		defer close(c)
		x, y := 1, 1
		for i := 0; i < n; i++ {
			c <- x
			x, y = y, x+y
		}
	}()
	return c
}
