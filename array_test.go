package treeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treeval/treeval/checkerr"
)

func TestArrayLength(t *testing.T) {
	l, err := Wrap([]any{1, 2, 3}).ArrayLength()
	require.NoError(t, err)
	assert.Equal(t, 3, l)

	l, err = Wrap([]string{"a"}).ArrayLength()
	require.NoError(t, err)
	assert.Equal(t, 1, l)

	_, err = Wrap(nil).ArrayLength()
	assert.ErrorIs(t, err, checkerr.ErrType)

	_, err = Wrap("abc").ArrayLength()
	assert.ErrorIs(t, err, checkerr.ErrType)
}

func TestArrayGetItem(t *testing.T) {
	s := []any{"a", "b", "c"}

	tests := []struct {
		name     string
		value    any
		offset   int
		expected any
		wantErr  *checkerr.Error
	}{
		{name: "first", value: s, offset: 0, expected: "a"},
		{name: "last", value: s, offset: 2, expected: "c"},
		{name: "typed slice", value: []int{5, 6}, offset: 1, expected: 6},
		{name: "negative offset", value: s, offset: -1, wantErr: checkerr.ErrIndexOutOfRange},
		{name: "offset at length", value: s, offset: 3, wantErr: checkerr.ErrIndexOutOfRange},
		{name: "null value", value: nil, offset: 0, wantErr: checkerr.ErrType},
		{name: "non-sequence", value: "abc", offset: 0, wantErr: checkerr.ErrType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Wrap(tt.value).ArrayGetItem(tt.offset)
			if tt.wantErr != nil {
				assert.ErrorIs(t, out.Err(), tt.wantErr)
				return
			}
			require.NoError(t, out.Err())
			assert.Equal(t, tt.expected, out.Unwrap())
		})
	}
}

func TestArraySetItem(t *testing.T) {
	t.Run("in-range assignment", func(t *testing.T) {
		s := []any{1, 2, 3}
		require.NoError(t, Wrap(s).ArraySetItem(1, 20).Err())
		assert.Equal(t, []any{1, 20, 3}, s)
	})

	t.Run("offset at length appends", func(t *testing.T) {
		n := Wrap([]any{1})
		require.NoError(t, n.ArraySetItem(1, 2).Err())
		assert.Equal(t, []any{1, 2}, n.Unwrap())
	})

	t.Run("offset beyond length", func(t *testing.T) {
		err := Wrap([]any{1}).ArraySetItem(3, 9).Err()
		assert.ErrorIs(t, err, checkerr.ErrIndexOutOfRange)
	})

	t.Run("null is a no-op", func(t *testing.T) {
		assert.NoError(t, Wrap(nil).ArraySetItem(0, 1).Err())
	})

	t.Run("non-sequence", func(t *testing.T) {
		assert.ErrorIs(t, Wrap("x").ArraySetItem(0, 1).Err(), checkerr.ErrType)
	})
}

func TestArrayPushAndUnshift(t *testing.T) {
	n := Wrap([]any{2})
	require.NoError(t, n.ArrayPushItem(3).ArrayUnshiftItem(1).Err())
	assert.Equal(t, []any{1, 2, 3}, n.Unwrap())

	assert.NoError(t, Wrap(nil).ArrayPushItem(1).Err(), "null is a no-op")
	assert.NoError(t, Wrap(nil).ArrayUnshiftItem(1).Err(), "null is a no-op")
}

func TestArrayPopItem(t *testing.T) {
	n := Wrap([]any{"a", "b"})

	out := n.ArrayPopItem()
	require.NoError(t, out.Err())
	assert.Equal(t, "b", out.Unwrap())
	assert.Equal(t, "/[1]", out.Path(), "path records the removed element's index")
	assert.Equal(t, []any{"a"}, n.Unwrap())

	assert.ErrorIs(t, Wrap([]any{}).ArrayPopItem().Err(), checkerr.ErrIndexOutOfRange)
	assert.ErrorIs(t, Wrap(nil).ArrayPopItem().Err(), checkerr.ErrType)
}

func TestArrayShiftItem(t *testing.T) {
	n := Wrap([]any{"a", "b"})

	out := n.ArrayShiftItem()
	require.NoError(t, out.Err())
	assert.Equal(t, "a", out.Unwrap())
	assert.Equal(t, "/[0]", out.Path())
	assert.Equal(t, []any{"b"}, n.Unwrap())

	assert.ErrorIs(t, Wrap([]any{}).ArrayShiftItem().Err(), checkerr.ErrIndexOutOfRange)
	assert.ErrorIs(t, Wrap(nil).ArrayShiftItem().Err(), checkerr.ErrType)
}

func TestMutationVisibleThroughParent(t *testing.T) {
	root := map[string]any{"items": []any{1, 2}}

	n := Wrap(root).Sub("items").ArrayPushItem(3)
	require.NoError(t, n.Err())
	assert.Equal(t, []any{1, 2, 3}, root["items"], "the parent container sees the new slice header")

	require.NoError(t, Wrap(root).Sub("items").ArrayShiftItem().Err())
	assert.Equal(t, []any{2, 3}, root["items"])
}

func TestSelectFromArray(t *testing.T) {
	seq := []any{"zero", "one", "two"}

	tests := []struct {
		name     string
		value    any
		expected any
		wantErr  *checkerr.Error
	}{
		{name: "in range", value: 1, expected: "one"},
		{name: "whole float index", value: 2.0, expected: "two"},
		{name: "negative", value: -1, wantErr: checkerr.ErrIndexOutOfRange},
		{name: "at length", value: 3, wantErr: checkerr.ErrIndexOutOfRange},
		{name: "fractional", value: 1.5, wantErr: checkerr.ErrType},
		{name: "null", value: nil, wantErr: checkerr.ErrType},
		{name: "not numeric", value: "1", wantErr: checkerr.ErrType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Wrap(tt.value).SelectFromArray(seq)
			if tt.wantErr != nil {
				assert.ErrorIs(t, out.Err(), tt.wantErr)
				return
			}
			require.NoError(t, out.Err())
			assert.Equal(t, tt.expected, out.Unwrap())
		})
	}
}

func TestSelectFromArrayBoundsErrorKind(t *testing.T) {
	// Bounds failures are index errors, never threshold errors.
	err := Wrap(9).SelectFromArray([]any{"a"}).Err()
	assert.ErrorIs(t, err, checkerr.ErrIndexOutOfRange)
	assert.NotErrorIs(t, err, checkerr.ErrValueOutOfRange)
}

func TestArrayForEachForward(t *testing.T) {
	n := Wrap([]any{1, 2, 3})

	var visited []any
	require.NoError(t, n.ArrayForEach(func(child *Node, _ *Loop) error {
		visited = append(visited, child.Unwrap())
		return nil
	}).Err())
	assert.Equal(t, []any{1, 2, 3}, visited)
}

func TestArrayForEachReverse(t *testing.T) {
	n := Wrap([]any{1, 2, 3})

	var visited []any
	require.NoError(t, n.ArrayForEach(func(child *Node, _ *Loop) error {
		visited = append(visited, child.Unwrap())
		return nil
	}, true).Err())
	assert.Equal(t, []any{3, 2, 1}, visited)
}

func TestArrayForEachForwardDeletion(t *testing.T) {
	n := Wrap([]any{1, 2, 3, 4})

	var visited []any
	require.NoError(t, n.ArrayForEach(func(child *Node, ctl *Loop) error {
		visited = append(visited, child.Unwrap())
		if child.Unwrap().(int)%2 == 0 {
			ctl.Delete()
		}
		return nil
	}).Err())

	assert.Equal(t, []any{1, 2, 3, 4}, visited, "deletion never skips the next unvisited element")
	assert.Equal(t, []any{1, 3}, n.Unwrap())
}

func TestArrayForEachStop(t *testing.T) {
	n := Wrap([]any{1, 2, 3, 4})

	var visited []any
	require.NoError(t, n.ArrayForEach(func(child *Node, ctl *Loop) error {
		visited = append(visited, child.Unwrap())
		if child.Unwrap().(int) == 2 {
			ctl.Stop()
		}
		return nil
	}).Err())

	assert.Equal(t, []any{1, 2}, visited)
}

func TestArrayForEachReverseStopAndDelete(t *testing.T) {
	// Regression fixture: reverse iteration over [-2,-1,0,1,2,3,4,5],
	// stopping when the value is <= 0 and deleting even values, must
	// leave exactly [-2,-1,1,3,5]: the deletion of 0 is applied before
	// the stop takes effect.
	n := Wrap([]any{-2, -1, 0, 1, 2, 3, 4, 5})

	require.NoError(t, n.ArrayForEach(func(child *Node, ctl *Loop) error {
		v := child.Unwrap().(int)
		if v <= 0 {
			ctl.Stop()
		}
		if v%2 == 0 {
			ctl.Delete()
		}
		return nil
	}, true).Err())

	assert.Equal(t, []any{-2, -1, 1, 3, 5}, n.Unwrap())
}

func TestArrayForEachNullIsNoop(t *testing.T) {
	called := false
	require.NoError(t, Wrap(nil).ArrayForEach(func(*Node, *Loop) error {
		called = true
		return nil
	}).Err())
	assert.False(t, called)
}

func TestArrayForEachCallbackError(t *testing.T) {
	n := Wrap([]any{1, "two", 3})

	var visited int
	err := n.ArrayForEach(func(child *Node, _ *Loop) error {
		visited++
		return child.Numeric().Err()
	}).Err()

	assert.ErrorIs(t, err, checkerr.ErrType)
	assert.Equal(t, 2, visited, "iteration aborts at the failing element")
}

func TestArrayForEachWithDeletion(t *testing.T) {
	n := Wrap([]any{1, 2, 3, 4, 5})

	require.NoError(t, n.ArrayForEachWithDeletion(func(child *Node) (bool, error) {
		return child.Unwrap().(int)%2 != 0, nil
	}).Err())

	assert.Equal(t, []any{2, 4}, n.Unwrap())
}

func TestArrayMinMaxLength(t *testing.T) {
	tests := []struct {
		name    string
		run     func() error
		wantErr *checkerr.Error
	}{
		{name: "min ok", run: func() error { return Wrap([]any{1, 2}).ArrayMinLength(2).Err() }},
		{name: "min violated", run: func() error { return Wrap([]any{1}).ArrayMinLength(2).Err() }, wantErr: checkerr.ErrSize},
		{name: "max ok", run: func() error { return Wrap([]any{1, 2}).ArrayMaxLength(2).Err() }},
		{name: "max violated", run: func() error { return Wrap([]any{1, 2, 3}).ArrayMaxLength(2).Err() }, wantErr: checkerr.ErrSize},
		{name: "min null is noop", run: func() error { return Wrap(nil).ArrayMinLength(5).Err() }},
		{name: "max null is noop", run: func() error { return Wrap(nil).ArrayMaxLength(0).Err() }},
		{name: "min non-sequence", run: func() error { return Wrap(1).ArrayMinLength(0).Err() }, wantErr: checkerr.ErrType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
