package quat3d

import (
	"sort"

	"github.com/solarlune/quat3d/math32"
)

// InterpolationMode indicates how a RotationTrack blends between its keyframes.
type InterpolationMode int

const (
	InterpolationLinear           InterpolationMode = iota // Spherical linear interpolation (Slerp); constant angular speed.
	InterpolationStep                                      // No blending; each keyframe holds until the next one.
	InterpolationNormalizedLinear                          // Normalized linear interpolation (Nlerp); cheaper, but not constant speed.
	InterpolationCubicSpline                               // Cubic Hermite spline over the keyframes' tangents, as glTF defines it.
	InterpolationSquad                                     // Spherical quadrangle interpolation, with control points from the neighbouring keyframes.
)

func (mode InterpolationMode) String() string {
	switch mode {
	case InterpolationLinear:
		return "linear"
	case InterpolationStep:
		return "step"
	case InterpolationNormalizedLinear:
		return "normalized linear"
	case InterpolationCubicSpline:
		return "cubic spline"
	case InterpolationSquad:
		return "squad"
	}
	return "unknown"
}

// Keyframe is a single rotation at a point in time on a RotationTrack. InTangent and OutTangent are only used by
// InterpolationCubicSpline.
type Keyframe struct {
	Time       float32
	Rotation   Quaternion
	InTangent  Quaternion
	OutTangent Quaternion
}

// RotationTrack is a series of rotation keyframes, sorted by time.
type RotationTrack struct {
	Name          string
	Interpolation InterpolationMode
	Keyframes     []Keyframe
}

// NewRotationTrack returns a new, empty RotationTrack.
func NewRotationTrack(name string, interpolation InterpolationMode) *RotationTrack {
	return &RotationTrack{
		Name:          name,
		Interpolation: interpolation,
		Keyframes:     []Keyframe{},
	}
}

// AddKeyframe adds a rotation keyframe at the given time, keeping the track sorted. Keyframes added at the same time
// as an existing keyframe go after it.
func (track *RotationTrack) AddKeyframe(time float32, rotation Quaternion) {
	track.insert(Keyframe{Time: time, Rotation: rotation})
}

// AddCubicKeyframe adds a rotation keyframe with spline tangents at the given time, keeping the track sorted.
func (track *RotationTrack) AddCubicKeyframe(time float32, inTangent, rotation, outTangent Quaternion) {
	track.insert(Keyframe{Time: time, Rotation: rotation, InTangent: inTangent, OutTangent: outTangent})
}

func (track *RotationTrack) insert(keyframe Keyframe) {
	i := sort.Search(len(track.Keyframes), func(i int) bool { return track.Keyframes[i].Time > keyframe.Time })
	track.Keyframes = append(track.Keyframes, Keyframe{})
	copy(track.Keyframes[i+1:], track.Keyframes[i:])
	track.Keyframes[i] = keyframe
}

// Length returns the time of the track's last keyframe, or 0 for an empty track.
func (track *RotationTrack) Length() float32 {
	if len(track.Keyframes) == 0 {
		return 0
	}
	return track.Keyframes[len(track.Keyframes)-1].Time
}

// Sample returns the track's rotation at the given time. Times before the first keyframe or after the last one
// return the first or last keyframe's rotation; an empty track returns the identity Quaternion.
func (track *RotationTrack) Sample(time float32) Quaternion {

	if len(track.Keyframes) == 0 {
		return NewQuaternionIdentity()
	}

	if first := track.Keyframes[0]; time <= first.Time {
		return first.Rotation
	} else if last := track.Keyframes[len(track.Keyframes)-1]; time >= last.Time {
		return last.Rotation
	}

	index := sort.Search(len(track.Keyframes), func(i int) bool { return track.Keyframes[i].Time > time })

	first := track.Keyframes[index-1]
	last := track.Keyframes[index]

	if time == first.Time {
		return first.Rotation
	}

	duration := last.Time - first.Time
	t := (time - first.Time) / duration

	switch track.Interpolation {

	case InterpolationStep:
		return first.Rotation

	case InterpolationNormalizedLinear:
		return Nlerp(first.Rotation, last.Rotation, t)

	case InterpolationCubicSpline:
		return cubicHermite(first.Rotation, first.OutTangent, last.Rotation, last.InTangent, duration, t).Normalized()

	case InterpolationSquad:

		previous := first
		if index-2 >= 0 {
			previous = track.Keyframes[index-2]
		}
		next := last
		if index+1 < len(track.Keyframes) {
			next = track.Keyframes[index+1]
		}

		end := last.Rotation
		if first.Rotation.Dot(end) < 0 {
			end = end.Negated()
		}

		a := NewQuaternionSquadControl(previous.Rotation, first.Rotation, end)
		b := NewQuaternionSquadControl(first.Rotation, end, next.Rotation)

		return Squad(first.Rotation, a, b, end, t).Normalized()

	default:
		return Slerp(first.Rotation, last.Rotation, t)

	}

}

// cubicHermite evaluates the glTF cubic spline between v0 and v1, where b0 is v0's out tangent and a1 is v1's in tangent,
// both scaled by the keyframe spacing.
func cubicHermite(v0, b0, v1, a1 Quaternion, duration, t float32) Quaternion {

	t2 := t * t
	t3 := t2 * t

	return v0.Scale(2*t3 - 3*t2 + 1).
		Add(b0.Scale(duration * (t3 - 2*t2 + t))).
		Add(v1.Scale(-2*t3 + 3*t2)).
		Add(a1.Scale(duration * (t3 - t2)))

}

// Animation is a named set of RotationTracks, keyed by the name of the thing each track rotates.
type Animation struct {
	Name   string
	Tracks map[string]*RotationTrack
}

// NewAnimation returns a new Animation without any tracks.
func NewAnimation(name string) *Animation {
	return &Animation{
		Name:   name,
		Tracks: map[string]*RotationTrack{},
	}
}

// AddTrack creates a new RotationTrack under the given name, replacing any track already there, and returns it.
func (animation *Animation) AddTrack(name string, interpolation InterpolationMode) *RotationTrack {
	newTrack := NewRotationTrack(name, interpolation)
	animation.Tracks[name] = newTrack
	return newTrack
}

// Length returns the length of the Animation in seconds; this is the length of its longest track.
func (animation *Animation) Length() float32 {
	length := float32(0)
	for _, track := range animation.Tracks {
		length = math32.Max(length, track.Length())
	}
	return length
}

// Sample samples every track of the Animation at the given time, returning the rotations by track name.
func (animation *Animation) Sample(time float32) map[string]Quaternion {
	pose := make(map[string]Quaternion, len(animation.Tracks))
	for name, track := range animation.Tracks {
		pose[name] = track.Sample(time)
	}
	return pose
}

const (
	FinishModeLoop     = iota // Wrap the playhead back around to the other end of the Animation.
	FinishModePingPong        // Reverse the play direction at either end of the Animation.
	FinishModeStop            // Stop playing at the end of the Animation.
)

// AnimationPlayer plays back an Animation over time, keeping the most recently sampled rotations in Pose.
type AnimationPlayer struct {
	Animation  *Animation
	Pose       map[string]Quaternion
	Playhead   float32
	PlaySpeed  float32
	Playing    bool
	FinishMode int
	OnFinish   func()
}

// NewAnimationPlayer returns a new AnimationPlayer, set to play forwards at normal speed and stop when finished.
func NewAnimationPlayer() *AnimationPlayer {
	return &AnimationPlayer{
		Pose:       map[string]Quaternion{},
		PlaySpeed:  1,
		FinishMode: FinishModeStop,
	}
}

// Play starts playing the given Animation from the beginning, unless it is already playing.
func (ap *AnimationPlayer) Play(animation *Animation) {

	if ap.Animation != animation || !ap.Playing {
		ap.Animation = animation
		ap.Playhead = 0
		ap.Playing = true
	}

}

// Update samples the Animation at the playhead into Pose, and then advances the playhead by dt seconds.
func (ap *AnimationPlayer) Update(dt float32) {

	if !ap.Playing || ap.Animation == nil {
		return
	}

	for name, rotation := range ap.Animation.Sample(ap.Playhead) {
		ap.Pose[name] = rotation
	}

	ap.Playhead += dt * ap.PlaySpeed

	length := ap.Animation.Length()

	if ap.Playhead <= length && ap.Playhead >= 0 {
		return
	}

	switch ap.FinishMode {

	case FinishModeLoop:

		if length > 0 {
			ap.Playhead = math32.Mod(ap.Playhead, length)
			if ap.Playhead < 0 {
				ap.Playhead += length
			}
		} else {
			ap.Playhead = 0
		}

		if ap.OnFinish != nil {
			ap.OnFinish()
		}

	case FinishModePingPong:

		if ap.Playhead > length {
			ap.Playhead = length
		} else {
			ap.Playhead = 0
			if ap.OnFinish != nil {
				ap.OnFinish()
			}
		}

		ap.PlaySpeed *= -1

	case FinishModeStop:

		ap.Playhead = math32.Clamp(ap.Playhead, 0, length)
		ap.Playing = false

		if ap.OnFinish != nil {
			ap.OnFinish()
		}

	}

}
