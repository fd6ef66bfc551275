package regexfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFind(t *testing.T) {
	u := NewUnionFind(6)
	assert.True(t, u.Union(4, 1))
	assert.True(t, u.Union(5, 3))
	assert.True(t, u.Union(3, 1))
	assert.False(t, u.Union(5, 4))

	assert.Equal(t, u.Find(1), u.Find(5))
	assert.NotEqual(t, u.Find(0), u.Find(2))

	assert.Equal(t, [][]int{{0}, {1, 3, 4, 5}, {2}}, u.Classes())
}

func TestUnionFindEmpty(t *testing.T) {
	assert.Empty(t, NewUnionFind(0).Classes())
}
