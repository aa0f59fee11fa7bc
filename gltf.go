package quat3d

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/solarlune/quat3d/math32"
)

type GLTFLoadOptions struct {
	// NormalizeRotations normalizes every node rotation and keyframe as it is loaded. glTF requires unit rotations, but
	// exporters don't always write them with full float32 precision.
	NormalizeRotations bool
	// SkipAnimations skips loading animations entirely, leaving only the node rest rotations.
	SkipAnimations bool
}

// DefaultGLTFLoadOptions creates an instance of GLTFLoadOptions with some sensible defaults.
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{
		NormalizeRotations: true,
	}
}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options.
// LoadGLTFFile will return a Library, and an error if the process fails.
func LoadGLTFFile(path string, loadOptions *GLTFLoadOptions) (*Library, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("quat3d: reading glTF file: %w", err)
	}

	return LoadGLTFData(fileData, loadOptions)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options. Buffers referenced by relative URIs can't be
// resolved from raw data; use LoadGLTFFile or embedded (data URI / GLB) buffers for those.
func LoadGLTFData(data []byte, loadOptions *GLTFLoadOptions) (*Library, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("quat3d: decoding glTF data: %w", err)
	}

	return LoadGLTFDocument(doc, loadOptions)

}

// LoadGLTFDocument loads the node rotations and rotation animations out of an already decoded glTF document.
// Passing nil for loadOptions will load the document using default load options.
func LoadGLTFDocument(doc *gltf.Document, loadOptions *GLTFLoadOptions) (*Library, error) {

	if loadOptions == nil {
		loadOptions = DefaultGLTFLoadOptions()
	}

	library := NewLibrary()

	for i, node := range doc.Nodes {

		name := gltfNodeName(doc, i)

		rotation := gltfNodeRotation(node)

		if loadOptions.NormalizeRotations {
			rotation = normalizeLoadedRotation(rotation, name)
		}

		library.NodeRotations[name] = rotation

	}

	if loadOptions.SkipAnimations {
		return library, nil
	}

	for animIndex, gltfAnim := range doc.Animations {

		animName := gltfAnim.Name
		if animName == "" {
			animName = "animation" + strconv.Itoa(animIndex)
		}

		anim := NewAnimation(animName)
		library.Animations[animName] = anim

		for _, channel := range gltfAnim.Channels {

			channelName := "root"
			if channel.Target.Node != nil {
				channelName = gltfNodeName(doc, int(*channel.Target.Node))
			}

			if channel.Target.Path != gltf.TRSRotation {
				Logger().Debug("skipping non-rotation animation channel", "animation", animName, "target", channelName, "path", channel.Target.Path)
				continue
			}

			if channel.Sampler < 0 || channel.Sampler >= len(gltfAnim.Samplers) {
				Logger().Warn("skipping animation channel without a sampler", "animation", animName, "target", channelName)
				continue
			}

			sampler := gltfAnim.Samplers[channel.Sampler]

			track, err := loadRotationTrack(doc, sampler, channelName, loadOptions)
			if err != nil {
				return nil, fmt.Errorf("quat3d: loading animation %q, channel %q: %w", animName, channelName, err)
			}

			anim.Tracks[channelName] = track

		}

	}

	return library, nil

}

func loadRotationTrack(doc *gltf.Document, sampler *gltf.AnimationSampler, name string, loadOptions *GLTFLoadOptions) (*RotationTrack, error) {

	if sampler.Input < 0 || sampler.Input >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: keyframe time accessor %d does not exist", ErrUnexpectedAccessorData, sampler.Input)
	}

	if sampler.Output < 0 || sampler.Output >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: keyframe value accessor %d does not exist", ErrUnexpectedAccessorData, sampler.Output)
	}

	id, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Input], nil)

	if err != nil {
		return nil, err
	}

	inputData, ok := id.([]float32)
	if !ok {
		return nil, fmt.Errorf("%w: keyframe times are %T", ErrUnexpectedAccessorData, id)
	}

	od, err := modeler.ReadAccessor(doc, doc.Accessors[sampler.Output], nil)

	if err != nil {
		return nil, err
	}

	outputAccessor := doc.Accessors[sampler.Output]
	outputData, err := rotationAccessorData(od, outputAccessor.Normalized)
	if err != nil {
		return nil, err
	}

	for i, t := range inputData {
		if math32.IsNaN(t) || math32.IsInf(t, 0) {
			return nil, fmt.Errorf("%w: keyframe time %d is %v", ErrUnexpectedAccessorData, i, t)
		}
	}

	for i, v := range outputData {
		if !NewQuaternion(v[3], v[0], v[1], v[2]).IsFinite() {
			return nil, fmt.Errorf("%w: keyframe value %d is %v", ErrUnexpectedAccessorData, i, v)
		}
	}

	var mode InterpolationMode

	switch sampler.Interpolation {
	case gltf.InterpolationLinear:
		mode = InterpolationLinear
	case gltf.InterpolationStep:
		mode = InterpolationStep
	case gltf.InterpolationCubicSpline:
		mode = InterpolationCubicSpline
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedInterpolation, sampler.Interpolation)
	}

	track := NewRotationTrack(name, mode)

	valuesPerKey := 1
	if mode == InterpolationCubicSpline {
		valuesPerKey = 3
	}

	if len(outputData) != len(inputData)*valuesPerKey {
		return nil, fmt.Errorf("%w: %d times, %d values", ErrKeyframeCountMismatch, len(inputData), len(outputData))
	}

	convert := func(p [4]float32) Quaternion {
		// glTF stores rotations in (x, y, z, w) order.
		return NewQuaternion(p[3], p[0], p[1], p[2])
	}

	for i, t := range inputData {

		if mode == InterpolationCubicSpline {
			inTangent := convert(outputData[i*3])
			value := convert(outputData[i*3+1])
			outTangent := convert(outputData[i*3+2])
			if loadOptions.NormalizeRotations {
				value = normalizeLoadedRotation(value, name)
			}
			track.AddCubicKeyframe(t, inTangent, value, outTangent)
			continue
		}

		value := convert(outputData[i])
		if loadOptions.NormalizeRotations {
			value = normalizeLoadedRotation(value, name)
		}
		track.AddKeyframe(t, value)

	}

	return track, nil

}

// rotationAccessorData converts rotation output data into float32s, decoding the normalized integer formats glTF
// allows for rotations.
func rotationAccessorData(data any, normalized bool) ([][4]float32, error) {

	switch values := data.(type) {

	case [][4]float32:
		return values, nil

	case [][4]int8:
		if !normalized {
			break
		}
		out := make([][4]float32, len(values))
		for i, v := range values {
			for c := range v {
				out[i][c] = math32.Max(float32(v[c])/127, -1)
			}
		}
		return out, nil

	case [][4]uint8:
		if !normalized {
			break
		}
		out := make([][4]float32, len(values))
		for i, v := range values {
			for c := range v {
				out[i][c] = float32(v[c]) / 255
			}
		}
		return out, nil

	case [][4]int16:
		if !normalized {
			break
		}
		out := make([][4]float32, len(values))
		for i, v := range values {
			for c := range v {
				out[i][c] = math32.Max(float32(v[c])/32767, -1)
			}
		}
		return out, nil

	case [][4]uint16:
		if !normalized {
			break
		}
		out := make([][4]float32, len(values))
		for i, v := range values {
			for c := range v {
				out[i][c] = float32(v[c]) / 65535
			}
		}
		return out, nil

	}

	return nil, fmt.Errorf("%w: rotations are %T (normalized: %t)", ErrUnexpectedAccessorData, data, normalized)

}

func gltfNodeName(doc *gltf.Document, index int) string {
	if index >= 0 && index < len(doc.Nodes) && doc.Nodes[index].Name != "" {
		return doc.Nodes[index].Name
	}
	return "node" + strconv.Itoa(index)
}

// gltfNodeRotation returns a node's local rotation, from its matrix if it has one, or its rotation otherwise.
// Nodes that were built in memory rather than decoded have zeroed out matrices and rotations; both mean "no rotation".
func gltfNodeRotation(node *gltf.Node) Quaternion {

	mtData := node.Matrix

	// glTF matrices are column-major.
	matrix := Matrix3{}
	empty := true
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			value := float32(mtData[col*4+row])
			if value != 0 {
				empty = false
			}
			if row < 3 && col < 3 {
				matrix[row][col] = value
			}
		}
	}

	if !empty && !matrix.IsIdentity() {

		// Strip out any scale from the basis before conversion.
		x := matrix.Column(0).Unit()
		y := matrix.Column(1).Unit()
		z := matrix.Column(2).Unit()
		return NewQuaternionFromAxes(x, y, z)

	}

	rotation := NewQuaternion(float32(node.Rotation[3]), float32(node.Rotation[0]), float32(node.Rotation[1]), float32(node.Rotation[2]))

	if rotation.IsNull() {
		return NewQuaternionIdentity()
	}

	return rotation

}

func normalizeLoadedRotation(rotation Quaternion, name string) Quaternion {
	if length := rotation.Length(); !math32.FuzzyEqual(length, 1) {
		Logger().Warn("non-unit rotation in glTF data", "target", name, "length", length)
	}
	return rotation.Normalized()
}
