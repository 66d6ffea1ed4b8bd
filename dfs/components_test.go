package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synonet/dfs"
)

func TestFindComponents(t *testing.T) {
	sg := build(t,
		"happy,glad,joyful",
		"joyful,elated",
		"sad,gloomy",
		"alone",
	)
	c, err := dfs.FindComponents(sg.Graph())
	require.NoError(t, err)

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 4, c.Largest())

	id := func(w string) int {
		v, ok := sg.IndexOf(w)
		require.True(t, ok, w)
		return v
	}
	assert.True(t, c.Same(id("glad"), id("elated")))
	assert.False(t, c.Same(id("glad"), id("sad")))
	assert.True(t, c.Same(id("alone"), id("alone")))
	assert.False(t, c.Same(-1, -1))

	assert.Equal(t, 0, c.Of(id("elated")))
	assert.Equal(t, 1, c.Of(id("gloomy")))
	assert.Equal(t, 2, c.Of(id("alone")))
	assert.Equal(t, dfs.Unvisited, c.Of(99))

	assert.Equal(t, 4, c.Size(0))
	assert.Equal(t, 2, c.Size(1))
	assert.Equal(t, 1, c.Size(2))
	assert.Zero(t, c.Size(3))
}

func TestFindComponents_NilGraph(t *testing.T) {
	_, err := dfs.FindComponents(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
