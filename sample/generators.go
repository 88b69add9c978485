// Package sample holds generators built on unfold.
package sample

import (
	"math"

	"github.com/tmr232/unfold"
	"golang.org/x/xerrors"
)

// ErrOverflow is reported by generators whose next item does not fit in an int.
var ErrOverflow = xerrors.New("integer overflow")

// Range yields start, start+1, ..., stop-1.
func Range(start, stop int) *unfold.Unfold[int, int] {
	return unfold.New(start, func(i *int) (int, int, bool) {
		if *i >= stop {
			return *i, 0, false
		}
		return *i + 1, *i, true
	})
}

func Countdown(from int) *unfold.Unfold[int, int] {
	return unfold.New(from, func(i *int) (int, int, bool) {
		if *i < 0 {
			return *i, 0, false
		}
		return *i - 1, *i, true
	})
}

type upDown struct {
	value int
	up    bool
}

// UpAndDown yields 0 up to stop and then back down to 0.
func UpAndDown(stop int) *unfold.Unfold[upDown, int] {
	return unfold.New(upDown{up: true}, func(s *upDown) (upDown, int, bool) {
		switch {
		case s.up && s.value < stop:
			return upDown{s.value + 1, true}, s.value, true
		case s.up:
			return upDown{s.value - 1, false}, s.value, true
		case s.value >= 0:
			return upDown{s.value - 1, false}, s.value, true
		}
		return *s, 0, false
	})
}

type collatzTerm struct {
	value    int
	overflow bool
}

// Collatz yields the Collatz sequence of n, ending with 1.
// Nothing is produced for n < 1. If a term does not fit in an int the
// sequence stops after the last representable term and Error reports
// ErrOverflow.
func Collatz(n int) *unfold.Unfold[collatzTerm, int] {
	return unfold.NewFallible(collatzTerm{value: n}, func(t *collatzTerm) (collatzTerm, int, bool, error) {
		x := t.value
		switch {
		case t.overflow:
			return *t, 0, false, xerrors.Errorf("collatz: term after %d: %w", x, ErrOverflow)
		case x < 1:
			return *t, 0, false, nil
		case x == 1:
			return collatzTerm{}, 1, true, nil
		case x%2 == 0:
			return collatzTerm{value: x / 2}, x, true, nil
		case x > (math.MaxInt-1)/3:
			return collatzTerm{value: x, overflow: true}, x, true, nil
		}
		return collatzTerm{value: 3*x + 1}, x, true, nil
	})
}

// Digits yields the decimal digits of n, least significant first.
func Digits(n uint64) *unfold.Unfold[uint64, int] {
	first := true
	return unfold.New(n, func(x *uint64) (uint64, int, bool) {
		if *x == 0 && !first {
			return 0, 0, false
		}
		first = false
		return *x / 10, int(*x % 10), true
	})
}

// Counter yields how many times it was stepped. The count lives in the
// closure, not in the unfold state.
func Counter() *unfold.Unfold[struct{}, int] {
	count := 0
	return unfold.New(struct{}{}, func(s *struct{}) (struct{}, int, bool) {
		count++
		return *s, count, true
	})
}
