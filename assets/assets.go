// Package assets embeds the stylesheet and the map widget script.
package assets

import "embed"

//go:embed css js
var Assets embed.FS
