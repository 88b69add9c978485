package unfold

import (
	"cmp"
	"slices"
)

// FromSlice yields the elements of slice in order. The state is the index
// of the next element.
func FromSlice[T any](slice []T) *Unfold[int, T] {
	return New(0, func(index *int) (int, T, bool) {
		if *index >= len(slice) {
			var zero T
			return *index, zero, false
		}
		return *index + 1, slice[*index], true
	})
}

type Pair[First, Second any] struct {
	First  First
	Second Second
}

func NewPair[First, Second any](first First, second Second) Pair[First, Second] {
	return Pair[First, Second]{First: first, Second: second}
}

// FromMap yields the entries of map_ sorted by key.
// The map is copied when FromMap is called; later changes to it are not seen.
func FromMap[K cmp.Ordered, V any](map_ map[K]V) *Unfold[int, Pair[K, V]] {
	items := make([]Pair[K, V], 0, len(map_))
	for key, value := range map_ {
		items = append(items, NewPair(key, value))
	}
	slices.SortFunc(items, func(a, b Pair[K, V]) int {
		return cmp.Compare(a.First, b.First)
	})
	return FromSlice(items)
}

// Iterate yields seed, f(seed), f(f(seed)) and so on, forever.
func Iterate[T any](seed T, f func(T) T) *Unfold[T, T] {
	return New(seed, func(x *T) (T, T, bool) {
		return f(*x), *x, true
	})
}

// Repeat yields value forever.
func Repeat[T any](value T) *Unfold[struct{}, T] {
	return New(struct{}{}, func(s *struct{}) (struct{}, T, bool) {
		return *s, value, true
	})
}
