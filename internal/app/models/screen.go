package models

import (
	"fmt"
	"strings"
)

// Screen is one of the four mutually exclusive views.
type Screen string

const (
	ScreenHome    Screen = "home"
	ScreenChat    Screen = "chat"
	ScreenPlanner Screen = "planner"
	ScreenMap     Screen = "map"
)

var AllScreens = []Screen{ScreenHome, ScreenChat, ScreenPlanner, ScreenMap}

// ParseScreen maps a screen name to its value.
func ParseScreen(name string) (Screen, error) {
	s := Screen(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllScreens {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}

// Path is the URL the screen is served from.
func (s Screen) Path() string {
	if s == ScreenHome {
		return "/"
	}
	return "/" + string(s)
}

func (s Screen) Title() string {
	switch s {
	case ScreenChat:
		return "Chat"
	case ScreenPlanner:
		return "Planner"
	case ScreenMap:
		return "Map"
	default:
		return "Home"
	}
}
