package asset

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultServer(t *testing.T) {
	s, err := NewDefaultServer(zerolog.Nop())
	require.NoError(t, err)

	handles, err := s.LoadAll("laser_blue", "laser_red", "enemy")
	require.NoError(t, err)
	require.Len(t, handles, 3)

	w, h, ok := s.Size(handles[2])
	require.True(t, ok)
	assert.Equal(t, 93.0, w)
	assert.Equal(t, 84.0, h)

	player, err := s.Load("player")
	require.NoError(t, err)
	sp, ok := s.Get(player)
	require.True(t, ok)
	assert.Equal(t, "A", sp.Glyph)
}

func TestLoadMissingSprite(t *testing.T) {
	s := NewServer(zerolog.Nop())
	_, err := s.Load("ghost")
	assert.ErrorContains(t, err, `sprite "ghost" not found`)

	_, err = s.LoadAll("ghost")
	assert.ErrorContains(t, err, "failed to load asset set")
}

func TestLoadSheetRejectsBadInput(t *testing.T) {
	s := NewServer(zerolog.Nop())

	assert.Error(t, s.LoadSheet([]byte("- name: [")))
	assert.ErrorContains(t, s.LoadSheet([]byte("- width: 1\n  height: 1\n")), "has no name")
	assert.ErrorContains(t, s.LoadSheet([]byte("- name: flat\n  width: 4\n  height: 0\n")), "non-positive size")
}

func TestLoadSheetReplacesByName(t *testing.T) {
	s := NewServer(zerolog.Nop())
	require.NoError(t, s.LoadSheet([]byte("- name: rock\n  width: 2\n  height: 2\n")))
	first, err := s.Load("rock")
	require.NoError(t, err)

	require.NoError(t, s.LoadSheet([]byte("- name: rock\n  width: 8\n  height: 8\n")))
	second, err := s.Load("rock")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	w, _, _ := s.Size(second)
	assert.Equal(t, 8.0, w)
}

func TestZeroHandle(t *testing.T) {
	s := NewServer(zerolog.Nop())
	assert.True(t, Handle(0).IsZero())
	_, ok := s.Get(0)
	assert.False(t, ok)
	_, _, ok = s.Size(5)
	assert.False(t, ok)
}
