package quat3d

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RotationTween eases a rotation from one Quaternion to another over time. The easing function shapes the progress of
// the tween; easings that overshoot (like ease.OutBack) carry the rotation past its target when Mode is InterpolationLinear.
//
// Advance it manually each frame:
//
//	tween := quat3d.NewRotationTween(from, to, 0.5, ease.OutCubic)
//	rotation, done := tween.Update(dt)
type RotationTween struct {
	From, To Quaternion
	// Mode selects how rotations are blended: InterpolationLinear (slerp, the default) or InterpolationNormalizedLinear
	// (nlerp). Other modes behave like InterpolationLinear.
	Mode InterpolationMode
	Done bool

	progress *gween.Tween
	current  Quaternion
}

// NewRotationTween creates a new RotationTween from one rotation to another, lasting duration seconds. Passing nil for
// easing uses ease.Linear.
func NewRotationTween(from, to Quaternion, duration float32, easing ease.TweenFunc) *RotationTween {
	if easing == nil {
		easing = ease.Linear
	}
	return &RotationTween{
		From:     from,
		To:       to,
		Mode:     InterpolationLinear,
		progress: gween.New(0, 1, duration, easing),
		current:  from,
	}
}

// Update advances the tween by dt seconds, returning the current rotation and whether the tween has finished.
func (tween *RotationTween) Update(dt float32) (Quaternion, bool) {
	t, done := tween.progress.Update(dt)
	return tween.apply(t, done)
}

// Set moves the tween to the given time in seconds, returning the rotation there and whether that's at (or past) the end.
func (tween *RotationTween) Set(time float32) (Quaternion, bool) {
	t, done := tween.progress.Set(time)
	return tween.apply(t, done)
}

// Reset rewinds the tween back to its start.
func (tween *RotationTween) Reset() {
	tween.progress.Reset()
	tween.current = tween.From
	tween.Done = false
}

// Current returns the most recently computed rotation of the tween.
func (tween *RotationTween) Current() Quaternion {
	return tween.current
}

func (tween *RotationTween) apply(t float32, done bool) (Quaternion, bool) {

	if done {
		tween.current = tween.To
	} else if tween.Mode == InterpolationNormalizedLinear {
		tween.current = Nlerp(tween.From, tween.To, t)
	} else {
		tween.current = Slerp(tween.From, tween.To, t)
	}

	tween.Done = done

	return tween.current, done

}
