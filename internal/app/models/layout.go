package models

import "github.com/a-h/templ"

type NavItem struct {
	Name   string
	URL    string
	Screen Screen
}

type Navigation struct {
	Items []NavItem
}

type LayoutTempl struct {
	Title     string
	Nav       Navigation
	ActiveNav Screen
	Content   templ.Component
	Map       MapMount
}

// MapMount carries what the layout needs to host the persistent map pane.
type MapMount struct {
	Enabled bool
	Visible bool
	SDKURL  string
	PinsURL string
}

var MainNav = Navigation{
	Items: []NavItem{
		{Name: "Home", URL: ScreenHome.Path(), Screen: ScreenHome},
		{Name: "Chat", URL: ScreenChat.Path(), Screen: ScreenChat},
		{Name: "Planner", URL: ScreenPlanner.Path(), Screen: ScreenPlanner},
		{Name: "Map", URL: ScreenMap.Path(), Screen: ScreenMap},
	},
}
