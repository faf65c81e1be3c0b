package ldtk

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LevelPan eases a camera point from one level's bounds to another's over
// a fixed duration. It only produces positions; applying them to a camera
// is the host's job.
type LevelPan struct {
	x, y *gween.Tween
	last Vec2
	done bool
}

// NewLevelPan creates a pan between two world-space points using the given
// easing function. A nil easing function means ease.OutQuad.
func NewLevelPan(from, to Vec2, duration float32, fn ease.TweenFunc) *LevelPan {
	if fn == nil {
		fn = ease.OutQuad
	}
	return &LevelPan{
		x:    gween.New(float32(from.X), float32(to.X), duration, fn),
		y:    gween.New(float32(from.Y), float32(to.Y), duration, fn),
		last: from,
	}
}

// NewLevelPanBounds pans between the centers of two level bounds.
func NewLevelPanBounds(from, to Rect, duration float32, fn ease.TweenFunc) *LevelPan {
	return NewLevelPan(from.Center(), to.Center(), duration, fn)
}

// Update advances the pan by dt seconds and returns the current point and
// whether the pan has finished. After finishing it keeps returning the
// destination.
func (p *LevelPan) Update(dt float32) (Vec2, bool) {
	if p.done {
		return p.last, true
	}
	cx, fx := p.x.Update(dt)
	cy, fy := p.y.Update(dt)
	p.last = Vec2{X: float64(cx), Y: float64(cy)}
	p.done = fx && fy
	return p.last, p.done
}

// LevelBounds returns a level's world-space rectangle from its position
// and pixel size in the project's world layout.
func LevelBounds(level *Level) Rect {
	return Rect{
		X:      float64(level.WorldX),
		Y:      float64(level.WorldY),
		Width:  float64(level.PxWid),
		Height: float64(level.PxHei),
	}
}
