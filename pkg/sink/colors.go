package sink

import "strings"

var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#e74c3c",
	"blue":      "#3498db",
	"green":     "#2ecc71",
	"yellow":    "#f1c40f",
	"magenta":   "#c0399f",
	"orange":    "#e67e22",
	"cyan":      "#1abc9c",
	"gray":      "#95a5a6",
	"grey":      "#95a5a6",
	"darkgray":  "#555555",
	"lightgray": "#d0d0d0",
	"pink":      "#ff8fab",
	"purple":    "#8e44ad",
	"brown":     "#8b5a2b",
}

// Hex resolves a color name to "#rrggbb". Hex input and unknown names are
// returned as given.
func Hex(color string) string {
	if strings.HasPrefix(color, "#") {
		return color
	}
	if h, ok := namedColors[strings.ToLower(color)]; ok {
		return h
	}
	return color
}
