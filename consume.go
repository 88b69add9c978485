package unfold

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Collect drains seq into a slice. A sequence with no items gives a nil slice.
func Collect[T any](seq iter.Seq[T]) (slice []T) {
	for value := range seq {
		slice = append(slice, value)
	}
	return
}

func Fold[T, R any](seq iter.Seq[T], initial R, f func(R, T) R) R {
	acc := initial
	for value := range seq {
		acc = f(acc, value)
	}
	return acc
}

func Sum[T Number](seq iter.Seq[T]) T {
	return Fold(seq, T(0), func(acc, value T) T { return acc + value })
}

// Take yields at most n items of seq. It stops pulling from seq as soon
// as n items were produced, so it is safe on infinite sequences.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for value := range seq {
			if !yield(value) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// TakeWhile yields items of seq until pred first returns false.
func TakeWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range seq {
			if !pred(value) || !yield(value) {
				return
			}
		}
	}
}

// Drain pulls every item out of it and returns them along with its error.
func Drain[T any](it Iterator[T]) (slice []T, err error) {
	for it.Next() {
		slice = append(slice, it.Value())
	}
	return slice, it.Error()
}
