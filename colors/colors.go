// Package colors names the handful of quat3d.Colors the gizmo and the quat3d command draw with, including the
// colors of the rotated X, Y, and Z axes.
package colors

import (
	"sort"
	"strings"

	"github.com/solarlune/quat3d"
)

// Transparent returns the color transparent.
func Transparent() quat3d.Color {
	return quat3d.NewColor(0, 0, 0, 0)
}

// White returns the color white.
func White() quat3d.Color {
	return quat3d.NewColor(1, 1, 1, 1)
}

// Black returns the color black.
func Black() quat3d.Color {
	return quat3d.NewColor(0, 0, 0, 1)
}

// Gray returns the color gray.
func Gray() quat3d.Color {
	return quat3d.NewColor(0.5, 0.5, 0.5, 1)
}

// LightGray returns the color light gray.
func LightGray() quat3d.Color {
	return quat3d.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray returns the color dark gray.
func DarkGray() quat3d.Color {
	return quat3d.NewColor(0.2, 0.2, 0.2, 1)
}

// DarkestGray is the default gizmo background.
func DarkestGray() quat3d.Color {
	return quat3d.NewColor(0.05, 0.05, 0.05, 1)
}

// XAxis returns the color used for the X axis.
func XAxis() quat3d.Color {
	return quat3d.NewColor(0.9, 0.2, 0.25, 1)
}

// YAxis returns the color used for the Y axis.
func YAxis() quat3d.Color {
	return quat3d.NewColor(0.35, 0.8, 0.2, 1)
}

// ZAxis returns the color used for the Z axis.
func ZAxis() quat3d.Color {
	return quat3d.NewColor(0.2, 0.45, 0.95, 1)
}

var named = map[string]func() quat3d.Color{
	"transparent": Transparent,
	"white":       White,
	"black":       Black,
	"gray":        Gray,
	"lightgray":   LightGray,
	"darkgray":    DarkGray,
	"darkestgray": DarkestGray,
	"x":           XAxis,
	"y":           YAxis,
	"z":           ZAxis,
}

// Named returns the color with the given name (case-insensitive, so "DarkGray" and "darkgray" are the same), or false
// if there's no such color. The axis colors are named "x", "y", and "z".
func Named(name string) (quat3d.Color, bool) {
	fn, ok := named[strings.ToLower(name)]
	if !ok {
		return quat3d.Color{}, false
	}
	return fn(), true
}

// Names returns the names Named accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
