package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineRing(t *testing.T) {
	r := NewLineRing(3)
	assert.Empty(t, r.Snapshot())

	r.Add("a")
	r.Add("b")
	assert.Equal(t, []string{"a", "b"}, r.Snapshot())

	r.Add("c")
	r.Add("d")
	r.Add("e")
	assert.Equal(t, []string{"c", "d", "e"}, r.Snapshot())
	assert.Equal(t, 2, r.Dropped())
}

func TestLineRing_DefaultSize(t *testing.T) {
	r := NewLineRing(0)
	for i := 0; i < DefaultLogLines+1; i++ {
		r.Add("x")
	}
	assert.Len(t, r.Snapshot(), DefaultLogLines)
	assert.Equal(t, 1, r.Dropped())
}
