// Command quat3d builds a rotation from Euler angles, an axis and angle, or quaternion components, and prints it in
// each of the forms quat3d converts between. It can also interpolate towards a second rotation, draw the result as a
// gizmo PNG, or list the rotations in a glTF file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/solarlune/quat3d"
	"github.com/solarlune/quat3d/colors"
	"github.com/solarlune/quat3d/gizmo"
	"github.com/solarlune/quat3d/math32"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("quat3d: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {

	flags := flag.NewFlagSet("quat3d", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		euler    = flags.String("euler", "", "rotation as pitch,yaw,roll in degrees")
		axis     = flags.String("axis", "", "rotation axis as x,y,z (used with -angle)")
		angle    = flags.Float64("angle", 0, "rotation angle in degrees around -axis")
		quat     = flags.String("quat", "", "rotation as quaternion components w,x,y,z")
		slerpTo  = flags.String("slerp-to", "", "second rotation as w,x,y,z to interpolate towards")
		t        = flags.Float64("t", 0.5, "interpolation amount for -slerp-to")
		nlerp    = flags.Bool("nlerp", false, "interpolate with nlerp instead of slerp")
		pngPath  = flags.String("png", "", "write a gizmo of the rotation to this PNG file")
		pngSize  = flags.Int("size", 256, "gizmo image size in pixels")
		bg       = flags.String("background", "darkestgray", "gizmo background color name ("+strings.Join(colors.Names(), ", ")+")")
		gltfPath = flags.String("gltf", "", "list the node rotations and rotation animations in a .gltf or .glb file")
		verbose  = flags.Bool("v", false, "enable debug logging")
	)

	if err := flags.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	quat3d.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if *gltfPath != "" {
		return listGLTF(stdout, *gltfPath)
	}

	rotation, err := parseRotation(*euler, *axis, float32(*angle), *quat)
	if err != nil {
		return err
	}

	if *slerpTo != "" {

		target, err := parseFloats(*slerpTo, 4)
		if err != nil {
			return fmt.Errorf("parsing -slerp-to: %w", err)
		}

		to := quat3d.NewQuaternion(target[0], target[1], target[2], target[3]).Normalized()

		if *nlerp {
			rotation = quat3d.Nlerp(rotation, to, float32(*t))
		} else {
			rotation = quat3d.Slerp(rotation, to, float32(*t))
		}

	}

	report(stdout, rotation)

	if *pngPath != "" {

		background, ok := colors.Named(*bg)
		if !ok {
			return fmt.Errorf("unknown -background color %q", *bg)
		}

		options := gizmo.DefaultOptions()
		options.Size = *pngSize
		options.Background = background

		f, err := os.Create(*pngPath)
		if err != nil {
			return err
		}

		if err := gizmo.WritePNG(f, rotation, options); err != nil {
			f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return err
		}

		quat3d.Logger().Debug("wrote gizmo", "path", *pngPath, "size", options.Size)

	}

	return nil

}

func parseRotation(euler, axis string, angle float32, quat string) (quat3d.Quaternion, error) {

	given := 0
	for _, s := range []string{euler, axis, quat} {
		if s != "" {
			given++
		}
	}

	if given > 1 {
		return quat3d.Quaternion{}, errors.New("only one of -euler, -axis, or -quat may be given")
	}

	switch {

	case euler != "":
		v, err := parseFloats(euler, 3)
		if err != nil {
			return quat3d.Quaternion{}, fmt.Errorf("parsing -euler: %w", err)
		}
		return quat3d.NewQuaternionFromEulerAngles(v[0], v[1], v[2]), nil

	case axis != "":
		v, err := parseFloats(axis, 3)
		if err != nil {
			return quat3d.Quaternion{}, fmt.Errorf("parsing -axis: %w", err)
		}
		return quat3d.NewQuaternionFromAxisAngleComponents(v[0], v[1], v[2], angle), nil

	case quat != "":
		v, err := parseFloats(quat, 4)
		if err != nil {
			return quat3d.Quaternion{}, fmt.Errorf("parsing -quat: %w", err)
		}
		return quat3d.NewQuaternion(v[0], v[1], v[2], v[3]), nil

	}

	return quat3d.NewQuaternionIdentity(), nil

}

func parseFloats(s string, count int) ([]float32, error) {

	parts := strings.Split(s, ",")
	if len(parts) != count {
		return nil, fmt.Errorf("expected %d comma-separated numbers, got %d", count, len(parts))
	}

	out := make([]float32, count)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
		if math32.IsNaN(out[i]) || math32.IsInf(out[i], 0) {
			return nil, fmt.Errorf("%q is not a finite number", strings.TrimSpace(p))
		}
	}

	return out, nil

}

func report(w io.Writer, rotation quat3d.Quaternion) {

	axis, angle := rotation.AxisAndAngle()
	pitch, yaw, roll := rotation.EulerAngles()
	x, y, z := rotation.Axes()

	fmt.Fprintf(w, "quaternion: %s\n", rotation)
	fmt.Fprintf(w, "length:     %g\n", rotation.Length())
	fmt.Fprintf(w, "axis/angle: %s %g\n", axis, angle)
	fmt.Fprintf(w, "euler:      pitch %g, yaw %g, roll %g\n", pitch, yaw, roll)
	fmt.Fprintf(w, "matrix:\n %s\n", rotation.Normalized().ToRotationMatrix())
	fmt.Fprintf(w, "axes:       x %s, y %s, z %s\n", x, y, z)

}

func listGLTF(w io.Writer, path string) error {

	library, err := quat3d.LoadGLTFFile(path, nil)
	if err != nil {
		return err
	}

	for _, name := range library.NodeNames() {
		rotation, _ := library.NodeRotation(name)
		pitch, yaw, roll := rotation.EulerAngles()
		fmt.Fprintf(w, "node %s: %s (euler %g, %g, %g)\n", name, rotation, pitch, yaw, roll)
	}

	animNames := make([]string, 0, len(library.Animations))
	for name := range library.Animations {
		animNames = append(animNames, name)
	}
	sort.Strings(animNames)

	for _, name := range animNames {
		anim := library.Animations[name]
		fmt.Fprintf(w, "animation %s: %d rotation tracks, %gs\n", name, len(anim.Tracks), anim.Length())
	}

	return nil

}
