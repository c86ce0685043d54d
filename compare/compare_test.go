package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalNumeric(t *testing.T) {
	n := Natural{}

	tests := []struct {
		name string
		a, b any
		lt   bool
		eq   bool
	}{
		{name: "int lt", a: 1, b: 2, lt: true, eq: false},
		{name: "int eq", a: 2, b: 2, lt: false, eq: true},
		{name: "int gt", a: 3, b: 2, lt: false, eq: false},
		{name: "mixed int float", a: 1, b: 1.5, lt: true, eq: false},
		{name: "int equals float", a: 2, b: 2.0, lt: false, eq: true},
		{name: "int64 vs int", a: int64(5), b: 5, lt: false, eq: true},
		{name: "negative", a: -3, b: -2, lt: true, eq: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lt, n.Lt(tt.a, tt.b))
			assert.Equal(t, tt.eq, n.Eq(tt.a, tt.b))
			assert.Equal(t, tt.lt || tt.eq, n.Le(tt.a, tt.b))
			assert.Equal(t, !tt.lt && !tt.eq, n.Gt(tt.a, tt.b))
			assert.Equal(t, !tt.lt, n.Ge(tt.a, tt.b))
		})
	}
}

func TestNaturalString(t *testing.T) {
	n := Natural{}

	assert.True(t, n.Lt("apple", "banana"))
	assert.False(t, n.Lt("banana", "apple"))
	assert.True(t, n.Eq("a", "a"))
	assert.True(t, n.Ge("b", "a"))
	assert.True(t, n.Le("a", "a"))
}

func TestNaturalBool(t *testing.T) {
	n := Natural{}

	assert.True(t, n.Lt(false, true))
	assert.False(t, n.Lt(true, false))
	assert.True(t, n.Eq(true, true))
	assert.True(t, n.Gt(true, false))
}

func TestNaturalStructured(t *testing.T) {
	n := Natural{}

	// Structured values are never ordered by the default comparator, only
	// tested for deep equality.
	a := []any{1, 2}
	b := []any{1, 2}
	assert.True(t, n.Eq(a, b))
	assert.False(t, n.Lt(a, b))
	assert.False(t, n.Gt(a, b))
	assert.True(t, n.Le(a, b))
	assert.True(t, n.Ge(a, b))
}

// lenComparator orders strings by length, exercising comparator injection.
type lenComparator struct{}

func (lenComparator) Eq(a, b any) bool { return len(a.(string)) == len(b.(string)) }
func (lenComparator) Le(a, b any) bool { return len(a.(string)) <= len(b.(string)) }
func (lenComparator) Lt(a, b any) bool { return len(a.(string)) < len(b.(string)) }
func (lenComparator) Ge(a, b any) bool { return len(a.(string)) >= len(b.(string)) }
func (lenComparator) Gt(a, b any) bool { return len(a.(string)) > len(b.(string)) }

func TestCustomComparator(t *testing.T) {
	var c Comparator = lenComparator{}

	assert.True(t, c.Lt("ab", "abc"))
	assert.True(t, c.Eq("xy", "ab"))
	assert.False(t, c.Gt("a", "abc"))
}
