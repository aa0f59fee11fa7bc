// Package gizmo draws the orientation a Quaternion represents as an image: the world X, Y, and Z axes, rotated by the
// Quaternion and viewed head-on from +Z, with +Y pointing up. Axes pointing away from the viewer are drawn first and faded
// towards the background color.
package gizmo

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"sort"

	"github.com/solarlune/quat3d"
	"github.com/solarlune/quat3d/colors"
	"github.com/solarlune/quat3d/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Options controls how a gizmo is drawn.
type Options struct {
	Size       int          // Width and height of the image in pixels
	Background quat3d.Color // Color the image is cleared to
	Scale      float32      // Length of each axis as a fraction of half of Size
	LineWidth  float32      // Thickness of the axis lines in pixels
	Labels     bool         // If the X, Y, and Z labels should be drawn at the tip of each axis
}

// DefaultOptions returns a set of Options for a 256x256 gizmo on a dark background.
func DefaultOptions() *Options {
	return &Options{
		Size:       256,
		Background: colors.DarkestGray(),
		Scale:      0.75,
		LineWidth:  6,
		Labels:     true,
	}
}

type axis struct {
	label string
	dir   quat3d.Vector3
	color quat3d.Color
}

// Render draws the gizmo for the given rotation. The rotation is normalized first; a null Quaternion draws the
// unrotated axes. Passing nil for options uses DefaultOptions().
func Render(rotation quat3d.Quaternion, options *Options) *image.RGBA {

	if options == nil {
		options = DefaultOptions()
	}

	size := options.Size
	if size <= 0 {
		size = DefaultOptions().Size
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(options.Background.ToNRGBA()), image.Point{}, draw.Src)

	rotation = rotation.Normalized()
	if rotation.IsNull() {
		rotation = quat3d.NewQuaternionIdentity()
	}

	x, y, z := rotation.Axes()

	axes := []axis{
		{"X", x, colors.XAxis()},
		{"Y", y, colors.YAxis()},
		{"Z", z, colors.ZAxis()},
	}

	// Back-to-front, so axes pointing towards the viewer are drawn over the others.
	sort.SliceStable(axes, func(i, j int) bool { return axes[i].dir.Z < axes[j].dir.Z })

	center := float32(size) / 2
	length := center * options.Scale

	for _, a := range axes {

		c := a.color
		if a.dir.Z < 0 {
			c = c.Mix(options.Background, math32.Min(-a.dir.Z, 1)*0.6)
		}

		tipX := center + a.dir.X*length
		tipY := center - a.dir.Y*length

		drawLine(img, center, center, tipX, tipY, options.LineWidth, c)
		drawSquare(img, tipX, tipY, options.LineWidth*1.5, c)

		if options.Labels {
			drawLabel(img, a.label, tipX, tipY, a.dir, options.LineWidth, c.AddRGB(0.15))
		}

	}

	return img

}

func drawLine(img *image.RGBA, x0, y0, x1, y1, width float32, c quat3d.Color) {

	direction := quat3d.NewVector3(x1-x0, y1-y0, 0)
	if math32.FuzzyIsNull(direction.Magnitude()) {
		return
	}

	// Offset both ends sideways by half of the width to make a quad.
	side := direction.Unit().Cross(quat3d.WorldBackward).Scale(width / 2)

	bounds := img.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.MoveTo(x0+side.X, y0+side.Y)
	r.LineTo(x1+side.X, y1+side.Y)
	r.LineTo(x1-side.X, y1-side.Y)
	r.LineTo(x0-side.X, y0-side.Y)
	r.ClosePath()
	r.Draw(img, bounds, image.NewUniform(c.ToNRGBA()), image.Point{})

}

func drawSquare(img *image.RGBA, x, y, size float32, c quat3d.Color) {

	half := size / 2

	bounds := img.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.MoveTo(x-half, y-half)
	r.LineTo(x+half, y-half)
	r.LineTo(x+half, y+half)
	r.LineTo(x-half, y+half)
	r.ClosePath()
	r.Draw(img, bounds, image.NewUniform(c.ToNRGBA()), image.Point{})

}

func measureText(text string, fontFace font.Face) image.Rectangle {
	bounds, _ := font.BoundString(fontFace, text)
	return image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(), bounds.Max.X.Ceil(), bounds.Max.Y.Ceil())
}

func drawLabel(img *image.RGBA, label string, tipX, tipY float32, dir quat3d.Vector3, lineWidth float32, c quat3d.Color) {

	face := basicfont.Face7x13

	// Push the label out past the tip, along the axis on screen.
	onScreen := quat3d.NewVector3(dir.X, -dir.Y, 0).Unit().Scale(lineWidth + 8)

	// Center the label's glyph bounds on that point.
	bounds := measureText(label, face)
	x := tipX + onScreen.X - float32(bounds.Min.X+bounds.Max.X)/2
	y := tipY + onScreen.Y - float32(bounds.Min.Y+bounds.Max.Y)/2

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.ToNRGBA()),
		Face: face,
		Dot:  fixed.P(int(math32.Round(x)), int(math32.Round(y))),
	}

	drawer.DrawString(label)

}

// WritePNG renders the gizmo for the given rotation and writes it to w as a PNG.
func WritePNG(w io.Writer, rotation quat3d.Quaternion, options *Options) error {
	if err := png.Encode(w, Render(rotation, options)); err != nil {
		return fmt.Errorf("gizmo: encoding png: %w", err)
	}
	return nil
}
