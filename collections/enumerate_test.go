package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-indexed-collections/collections"
)

type visit struct {
	item  string
	index int
}

// recorder returns an enumerator that records every visit and never breaks.
func recorder(visits *[]visit) collections.Enumerator[string] {
	return func(s string, i int, _ *strs) collections.Signal {
		*visits = append(*visits, visit{s, i})
		return collections.Continue
	}
}

func TestEnumerateVisitsPresentIndicesInOrder(t *testing.T) {
	c := collections.New("c", "d").Prepend("b", "a")
	c.Delete(0)

	var visits []visit
	outcome := c.Enumerate(recorder(&visits))

	assert.Equal(t, collections.Exhausted, outcome)
	assert.Equal(t, []visit{{"a", -2}, {"b", -1}, {"d", 1}}, visits)
}

func TestEnumerateReverse(t *testing.T) {
	var visits []visit
	letters().EnumerateReverse(recorder(&visits))
	assert.Equal(t, []visit{{"e", 4}, {"d", 3}, {"c", 2}, {"b", 1}, {"a", 0}}, visits)
}

func TestEnumeratePassesCollection(t *testing.T) {
	c := letters()
	c.Enumerate(func(_ string, _ int, got *strs) collections.Signal {
		assert.Same(t, c, got)
		return collections.Continue
	})
}

func TestEnumerateEmpty(t *testing.T) {
	calls := 0
	outcome := collections.Empty[string]().Enumerate(func(string, int, *strs) collections.Signal {
		calls++
		return collections.Continue
	})
	assert.Equal(t, collections.Exhausted, outcome)
	assert.Zero(t, calls)
}

func TestEnumerateBreak(t *testing.T) {
	var visited []string
	outcome := letters().Enumerate(func(s string, _ int, _ *strs) collections.Signal {
		visited = append(visited, s)
		if s == "b" {
			return collections.Break
		}
		return collections.Continue
	})

	assert.Equal(t, collections.Broken, outcome)
	assert.Equal(t, []string{"a", "b"}, visited)
}

func TestEnumerateReverseBreak(t *testing.T) {
	var visited []string
	outcome := letters().EnumerateReverse(func(s string, _ int, _ *strs) collections.Signal {
		visited = append(visited, s)
		if s == "d" {
			return collections.Break
		}
		return collections.Continue
	})

	assert.Equal(t, collections.Broken, outcome)
	assert.Equal(t, []string{"e", "d"}, visited)
}

func TestEnumerateWhileStopsOnGuard(t *testing.T) {
	var (
		guarded []string
		visits  []visit
	)
	outcome := letters().EnumerateWhile(
		func(s string, _ int, _ *strs) bool {
			guarded = append(guarded, s)
			return s < "c"
		},
		recorder(&visits),
	)

	assert.Equal(t, collections.Guarded, outcome)
	assert.Equal(t, []string{"a", "b", "c"}, guarded)
	assert.Equal(t, []visit{{"a", 0}, {"b", 1}}, visits)
}

func TestEnumerateWhileBreakWinsOverGuard(t *testing.T) {
	outcome := letters().EnumerateWhile(
		func(string, int, *strs) bool { return true },
		func(string, int, *strs) collections.Signal { return collections.Break },
	)
	assert.Equal(t, collections.Broken, outcome)
}

func TestEnumerateRanges(t *testing.T) {
	c := letters()
	always := func(string, int, *strs) bool { return true }
	upToC := func(s string, _ int, _ *strs) bool { return s <= "c" }
	fromC := func(s string, _ int, _ *strs) bool { return s >= "c" }

	tests := []struct {
		name string
		walk func(fn collections.Enumerator[string]) collections.Outcome
		want []string
	}{
		{"Between", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateBetween(1, 3, fn) }, []string{"b", "c", "d"}},
		{"BetweenReverse", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateBetweenReverse(1, 3, fn) }, []string{"d", "c", "b"}},
		{"BetweenClamped", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateBetween(-100, 100, fn) }, []string{"a", "b", "c", "d", "e"}},
		{"BetweenOutside", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateBetween(10, 20, fn) }, nil},
		{"BetweenInverted", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateBetween(3, 1, fn) }, nil},
		{"From", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateFrom(2, fn) }, []string{"c", "d", "e"}},
		{"To", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateTo(2, fn) }, []string{"a", "b", "c"}},
		{"FromReverse", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateFromReverse(2, fn) }, []string{"c", "b", "a"}},
		{"ToReverse", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateToReverse(2, fn) }, []string{"e", "d", "c"}},
		{"BetweenWhile", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateBetweenWhile(1, 4, always, fn) }, []string{"b", "c", "d", "e"}},
		{"FromWhile", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateFromWhile(1, upToC, fn) }, []string{"b", "c"}},
		{"ToWhile", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateToWhile(3, upToC, fn) }, []string{"a", "b", "c"}},
		{"ReverseWhile", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateReverseWhile(fromC, fn) }, []string{"e", "d", "c"}},
		{"BetweenReverseWhile", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateBetweenReverseWhile(0, 3, fromC, fn) }, []string{"d", "c"}},
		{"FromReverseWhile", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateFromReverseWhile(3, always, fn) }, []string{"d", "c", "b", "a"}},
		{"ToReverseWhile", func(fn collections.Enumerator[string]) collections.Outcome { return c.EnumerateToReverseWhile(1, fromC, fn) }, []string{"e", "d", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			tt.walk(func(s string, _ int, _ *strs) collections.Signal {
				got = append(got, s)
				return collections.Continue
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumerateToleratesDeletingVisitedIndex(t *testing.T) {
	c := letters()
	var visited []string
	c.Enumerate(func(s string, i int, col *strs) collections.Signal {
		visited = append(visited, s)
		col.Delete(i)
		return collections.Continue
	})

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, visited)
	assert.True(t, c.IsEmpty())
}

func TestEnumerateSkipsIndexDeletedAhead(t *testing.T) {
	var visited []string
	letters().Enumerate(func(s string, i int, col *strs) collections.Signal {
		visited = append(visited, s)
		if s == "b" {
			col.Delete(i + 1)
		}
		return collections.Continue
	})
	assert.Equal(t, []string{"a", "b", "d", "e"}, visited)
}

func TestEnumerateBoundsFixedAtStart(t *testing.T) {
	var visited []string
	collections.New("a", "b").Enumerate(func(s string, _ int, col *strs) collections.Signal {
		visited = append(visited, s)
		if s == "a" {
			col.Append("c")
		}
		return collections.Continue
	})
	assert.Equal(t, []string{"a", "b"}, visited)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "exhausted", collections.Exhausted.String())
	assert.Equal(t, "broken", collections.Broken.String())
	assert.Equal(t, "guarded", collections.Guarded.String())
	assert.Equal(t, "unknown", collections.Outcome(42).String())
}
