package sequence

import (
	"testing"

	"github.com/cosmichound/multitimer/internal/core/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func abc() Sequence {
	return Sequence{
		timer.New("A", 30, "Alpha"),
		timer.New("B", 60, "Bravo"),
		timer.New("C", 45, "Charlie"),
	}
}

func TestInsert(t *testing.T) {
	base := Sequence{timer.New("A", 30, ""), timer.New("B", 60, "")}
	c := timer.New("C", 45, "")

	tests := []struct {
		name     string
		position *int
		expected []string
	}{
		{name: "omitted position appends", position: nil, expected: []string{"A", "B", "C"}},
		{name: "position at length appends", position: intPtr(2), expected: []string{"A", "B", "C"}},
		{name: "position past length appends", position: intPtr(10), expected: []string{"A", "B", "C"}},
		{name: "zero prepends", position: intPtr(0), expected: []string{"C", "A", "B"}},
		{name: "negative prepends", position: intPtr(-3), expected: []string{"C", "A", "B"}},
		{name: "middle splices", position: intPtr(1), expected: []string{"A", "C", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Insert(base, c, tt.position)
			assert.Equal(t, tt.expected, IDs(out))
			assert.Equal(t, []string{"A", "B"}, IDs(base), "input must not change")
		})
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	out := Insert(nil, timer.New("A", 30, ""), nil)
	assert.Equal(t, []string{"A"}, IDs(out))
}

func TestInsertDoesNotShareBackingArray(t *testing.T) {
	base := make(Sequence, 2, 8)
	base[0] = timer.New("A", 30, "")
	base[1] = timer.New("B", 60, "")

	first := Insert(base, timer.New("C", 1, ""), nil)
	second := Insert(base, timer.New("D", 1, ""), nil)

	assert.Equal(t, []string{"A", "B", "C"}, IDs(first))
	assert.Equal(t, []string{"A", "B", "D"}, IDs(second))
}

func TestRemove(t *testing.T) {
	seq := abc()

	out := Remove(seq, "B")
	assert.Equal(t, []string{"A", "C"}, IDs(out))
	assert.Equal(t, []string{"A", "B", "C"}, IDs(seq))

	missing := Remove(seq, "Z")
	assert.Equal(t, seq, missing)
}

func TestInsertThenRemoveRestores(t *testing.T) {
	seq := abc()
	for _, pos := range []*int{nil, intPtr(0), intPtr(1), intPtr(2), intPtr(7)} {
		withD := Insert(seq, timer.New("D", 10, ""), pos)
		assert.Equal(t, IDs(seq), IDs(Remove(withD, "D")))
	}
}

func TestMoveTo(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		position int
		expected []string
	}{
		{name: "move to front", id: "B", position: 0, expected: []string{"B", "A", "C"}},
		{name: "move to back", id: "A", position: 2, expected: []string{"B", "C", "A"}},
		{name: "move forward one", id: "A", position: 1, expected: []string{"B", "A", "C"}},
		{name: "move back one", id: "C", position: 1, expected: []string{"A", "C", "B"}},
		{name: "already there", id: "B", position: 1, expected: []string{"A", "B", "C"}},
		{name: "negative position", id: "B", position: -1, expected: []string{"A", "B", "C"}},
		{name: "position at length", id: "B", position: 3, expected: []string{"A", "B", "C"}},
		{name: "unknown id", id: "Z", position: 0, expected: []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := abc()
			out := MoveTo(seq, tt.id, tt.position)
			assert.Equal(t, tt.expected, IDs(out))
			assert.Equal(t, []string{"A", "B", "C"}, IDs(seq), "input must not change")
		})
	}
}

func TestMoveToNoOpReturnsEquivalentValue(t *testing.T) {
	seq := abc()
	assert.Equal(t, seq, MoveTo(seq, "B", 1))
	assert.Equal(t, seq, MoveTo(seq, "nope", 0))
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected []string
	}{
		{name: "full permutation", ids: []string{"C", "A", "B"}, expected: []string{"C", "A", "B"}},
		{name: "identity", ids: []string{"A", "B", "C"}, expected: []string{"A", "B", "C"}},
		{name: "too short", ids: []string{"C", "A"}, expected: []string{"A", "B", "C"}},
		{name: "too long", ids: []string{"C", "A", "B", "D"}, expected: []string{"A", "B", "C"}},
		{name: "unknown id", ids: []string{"C", "A", "Z"}, expected: []string{"A", "B", "C"}},
		{name: "duplicate id", ids: []string{"A", "A", "B"}, expected: []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := abc()
			out := Reorder(seq, tt.ids)
			assert.Equal(t, tt.expected, IDs(out))
		})
	}
}

func TestReorderKeepsTimerState(t *testing.T) {
	seq := abc()
	seq[1] = timer.Tick(timer.Start(seq[1]), 5)

	out := Reorder(seq, []string{"B", "C", "A"})
	require.Len(t, out, 3)
	assert.Equal(t, seq[1], out[0])
}

func TestNextAfter(t *testing.T) {
	seq := abc()

	_, ok := NextAfter(Sequence{}, nil)
	assert.False(t, ok, "empty sequence")

	_, ok = NextAfter(nil, strPtr("A"))
	assert.False(t, ok, "empty sequence with id")

	first, ok := NextAfter(seq, nil)
	require.True(t, ok)
	assert.Equal(t, "A", first.ID)

	next, ok := NextAfter(seq, strPtr("A"))
	require.True(t, ok)
	assert.Equal(t, "B", next.ID)

	next, ok = NextAfter(seq, strPtr("B"))
	require.True(t, ok)
	assert.Equal(t, "C", next.ID)

	_, ok = NextAfter(seq, strPtr("C"))
	assert.False(t, ok, "last element has no successor")

	fallback, ok := NextAfter(seq, strPtr("missing"))
	require.True(t, ok)
	assert.Equal(t, "A", fallback.ID)
}

func TestFindAndIndexOf(t *testing.T) {
	seq := abc()
	assert.Equal(t, 2, IndexOf(seq, "C"))
	assert.Equal(t, -1, IndexOf(seq, "Z"))

	found, ok := Find(seq, "B")
	assert.True(t, ok)
	assert.Equal(t, "Bravo", found.Name)

	_, ok = Find(seq, "Z")
	assert.False(t, ok)
}

func TestReplace(t *testing.T) {
	seq := abc()
	updated := timer.WithName(seq[0], "Renamed")

	out := Replace(seq, updated)
	assert.Equal(t, "Renamed", out[0].Name)
	assert.Equal(t, "Alpha", seq[0].Name)

	assert.Equal(t, seq, Replace(seq, timer.New("Z", 1, "")))
}

func TestMap(t *testing.T) {
	seq := abc()
	out := Map(seq, timer.Start)
	for i := range out {
		assert.True(t, out[i].IsRunning)
		assert.False(t, seq[i].IsRunning)
	}
}
