package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecorationList(t *testing.T) {
	tree := UserTree{}
	assert.Equal(t, []string{}, tree.DecorationList())

	tree.Decorations = "lights,star"
	assert.Equal(t, []string{"lights", "star"}, tree.DecorationList())
}

func TestAddDecoration(t *testing.T) {
	tree := UserTree{}

	tree.AddDecoration("lights")
	assert.Equal(t, "lights", tree.Decorations)

	tree.AddDecoration("star")
	assert.Equal(t, "lights,star", tree.Decorations)

	// Duplicates and empties are no-ops.
	tree.AddDecoration("lights")
	tree.AddDecoration("")
	assert.Equal(t, "lights,star", tree.Decorations)

	assert.True(t, tree.HasDecoration("star"))
	assert.False(t, tree.HasDecoration("tinsel"))
}
