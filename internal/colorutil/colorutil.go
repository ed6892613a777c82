// Package colorutil converts between the CSS-style color strings stored on
// elements and image/color values used by drawing surfaces.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned when a color string is neither a CSS color
// name nor a hex triplet.
var ErrUnknownColor = errors.New("unknown color")

var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// IsNone reports whether s means "paint nothing".
func IsNone(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "transparent":
		return true
	}
	return false
}

// Parse resolves a CSS color name ("red"), or a "#rgb"/"#rrggbb" hex string.
func Parse(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "transparent" {
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrUnknownColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

// ParseOr is Parse with a fallback for strings that do not resolve.
func ParseOr(s string, fallback color.Color) color.Color {
	c, err := Parse(s)
	if err != nil {
		return fallback
	}
	return c
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
