package plotgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatSet(t *testing.T) {
	a := NewFloatSet()
	a.Add(17)
	a.Add(-2)
	a.Add(17)
	assert.Len(t, a, 2)
}

func TestStringSet(t *testing.T) {
	s := NewStringSetFrom([]string{"b", "a", "c", "a"})
	assert.Len(t, s, 3)
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("zz"))
}

func TestStringPool(t *testing.T) {
	sp := NewStringPool()
	assert.Equal(t, 0, sp.Add("x"))
	assert.Equal(t, 1, sp.Add("y"))
	assert.Equal(t, 0, sp.Add("x"))
	assert.Equal(t, 2, sp.Len())

	assert.Equal(t, 1, sp.Find("y"))
	assert.Equal(t, -1, sp.Find("z"))
	assert.Equal(t, "y", sp.Get(1))
	assert.Equal(t, "NA", sp.Get(7))
	assert.Equal(t, "NA", sp.Get(-1))
}
