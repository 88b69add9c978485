package unfold

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSlice(t *testing.T) {
	tests := []struct {
		name string
		want []int
	}{
		{"nil", nil},
		{"single", []int{1}},
		{"multiple", []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collect(FromSlice(tt.want).All()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromSliceState(t *testing.T) {
	gen := FromSlice([]string{"a", "b"})
	gen.Step()
	assert.Equal(t, 1, gen.State())
	gen.Step()
	gen.Step()
	assert.Equal(t, 2, gen.State())
}

func TestFromMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[int]string
		want []Pair[int, string]
	}{
		{"empty", map[int]string{}, nil},
		{"single", map[int]string{1: "a"}, []Pair[int, string]{{1, "a"}}},
		{"multiple", map[int]string{3: "c", 1: "a", 2: "b"}, []Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collect(FromMap(tt.in).All()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIterate(t *testing.T) {
	powers := Iterate(1, func(x int) int { return x * 2 })
	assert.Equal(t, []int{1, 2, 4, 8, 16}, Collect(Take(powers.All(), 5)))
	assert.Equal(t, 32, powers.State())

	words := Iterate("a", func(s string) string { return s + "a" })
	assert.Equal(t, []string{"a", "aa", "aaa"}, Collect(TakeWhile(words.All(), func(s string) bool {
		return !strings.HasPrefix(s, "aaaa")
	})))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []string{"x", "x", "x"}, Collect(Take(Repeat("x").All(), 3)))
}
