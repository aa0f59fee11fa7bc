package quat3d

import (
	"image/color"

	"github.com/solarlune/quat3d/math32"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// Mix returns the Color linearly blended towards the other Color by the given percentage (0 being this Color, 1 being the other).
func (c Color) Mix(other Color, percentage float32) Color {
	percentage = math32.Clamp(percentage, 0, 1)
	return Color{
		R: c.R + (other.R-c.R)*percentage,
		G: c.G + (other.G-c.G)*percentage,
		B: c.B + (other.B-c.B)*percentage,
		A: c.A + (other.A-c.A)*percentage,
	}
}

// AddRGB returns the Color with the value added to each of its R, G, and B components.
func (c Color) AddRGB(value float32) Color {
	c.R += value
	c.G += value
	c.B += value
	return c
}

// ToNRGBA converts the Color to a color.NRGBA, clamping each component to the 0-1 range.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math32.Round(math32.Clamp(c.R, 0, 1) * 255)),
		G: uint8(math32.Round(math32.Clamp(c.G, 0, 1) * 255)),
		B: uint8(math32.Round(math32.Clamp(c.B, 0, 1) * 255)),
		A: uint8(math32.Round(math32.Clamp(c.A, 0, 1) * 255)),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA().RGBA()
}
