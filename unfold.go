// Package unfold provides a lazy generator that produces values by
// repeatedly applying a transition function to an internal state.
package unfold

import "iter"

// Iterator is the pull protocol implemented by every generator in this package.
type Iterator[T any] interface {
	Next() bool
	Value() T
	Error() error
}

// Stepper computes the next state and the emitted value from the current state.
// Returning ok == false signals exhaustion.
type Stepper[A, B any] interface {
	Step(base *A) (next A, value B, ok bool)
}

// TransitionFunc adapts an ordinary function to the Stepper interface.
type TransitionFunc[A, B any] func(base *A) (next A, value B, ok bool)

func (f TransitionFunc[A, B]) Step(base *A) (A, B, bool) {
	return f(base)
}

// FallibleFunc is a transition that may fail.
// A non-nil error ends the sequence and is reported by Error.
type FallibleFunc[A, B any] func(base *A) (next A, value B, ok bool, err error)

// Unfold maps its base state to an optional (next, value) pair on every step.
// When the pair is present the base is replaced by next and value is produced.
// Otherwise the sequence is exhausted.
//
// The transition is invoked on every call to Step, exhausted or not.
// Exhaustion is only stable if the transition reports it consistently for
// the unchanged base.
//
// An Unfold is not safe for concurrent use.
type Unfold[A, B any] struct {
	base  A
	step  Stepper[A, B]
	fail  FallibleFunc[A, B]
	value B
	err   error
}

// New creates an Unfold starting at seed.
func New[A, B any](seed A, f TransitionFunc[A, B]) *Unfold[A, B] {
	return &Unfold[A, B]{base: seed, step: f}
}

// NewStepper creates an Unfold driven by an arbitrary Stepper.
func NewStepper[A, B any](seed A, s Stepper[A, B]) *Unfold[A, B] {
	return &Unfold[A, B]{base: seed, step: s}
}

// NewFallible creates an Unfold whose transition can return an error.
// The error is kept as returned and no further steps are taken once it occurs.
func NewFallible[A, B any](seed A, f FallibleFunc[A, B]) *Unfold[A, B] {
	return &Unfold[A, B]{base: seed, fail: f}
}

// Step advances the generator once.
func (u *Unfold[A, B]) Step() (value B, ok bool) {
	var next A
	if u.fail != nil {
		if u.err != nil {
			return value, false
		}
		var err error
		next, value, ok, err = u.fail(&u.base)
		if err != nil {
			u.err = err
			var zero B
			return zero, false
		}
	} else {
		next, value, ok = u.step.Step(&u.base)
	}
	if !ok {
		var zero B
		return zero, false
	}
	u.base = next
	return value, true
}

func (u *Unfold[A, B]) Next() bool {
	value, ok := u.Step()
	u.value = value
	return ok
}

// Value returns the item produced by the last successful call to Next.
func (u *Unfold[A, B]) Value() B {
	return u.value
}

func (u *Unfold[A, B]) Error() error {
	return u.err
}

// State returns the current base.
func (u *Unfold[A, B]) State() A {
	return u.base
}

// All returns the remaining items as a sequence.
// Ranging over it advances the generator, so it can be consumed only once.
func (u *Unfold[A, B]) All() iter.Seq[B] {
	return func(yield func(B) bool) {
		for {
			value, ok := u.Step()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
