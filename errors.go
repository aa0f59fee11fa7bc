package quat3d

import "errors"

const (
	errorInvalidQuaternionData   = "quat3d: encoded quaternion data must be 16 bytes long"
	errorUnexpectedAccessorData  = "quat3d: accessor data is not of the expected type"
	errorKeyframeCountMismatch   = "quat3d: animation sampler input and output keyframe counts do not match"
	errorUnsupportedInterpolator = "quat3d: unsupported animation sampler interpolation"
)

var (
	// ErrInvalidQuaternionData is returned when decoding a binary Quaternion from a buffer of the wrong length.
	ErrInvalidQuaternionData = errors.New(errorInvalidQuaternionData)

	// ErrUnexpectedAccessorData is returned by the glTF loader when an accessor doesn't hold the kind of data
	// (scalar times, or 4-component rotations) its role requires.
	ErrUnexpectedAccessorData = errors.New(errorUnexpectedAccessorData)

	// ErrKeyframeCountMismatch is returned by the glTF loader when an animation sampler has a different number of
	// keyframe times than keyframe values.
	ErrKeyframeCountMismatch = errors.New(errorKeyframeCountMismatch)

	ErrUnsupportedInterpolation = errors.New(errorUnsupportedInterpolator)
)
