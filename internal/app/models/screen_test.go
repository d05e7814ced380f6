package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreen(t *testing.T) {
	for _, s := range AllScreens {
		got, err := ParseScreen(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseScreen("  MAP ")
	require.NoError(t, err)
	assert.Equal(t, ScreenMap, got)

	_, err = ParseScreen("settings")
	assert.ErrorIs(t, err, ErrUnknownScreen)
}

func TestScreenPath(t *testing.T) {
	assert.Equal(t, "/", ScreenHome.Path())
	assert.Equal(t, "/chat", ScreenChat.Path())
	assert.Equal(t, "/planner", ScreenPlanner.Path())
	assert.Equal(t, "/map", ScreenMap.Path())
}

func TestMainNavCoversEveryScreen(t *testing.T) {
	require.Len(t, MainNav.Items, len(AllScreens))
	for i, item := range MainNav.Items {
		assert.Equal(t, AllScreens[i], item.Screen)
		assert.Equal(t, item.Screen.Path(), item.URL)
	}
}
