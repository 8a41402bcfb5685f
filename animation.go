package trashdesk

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	trashBumpScale    = 1.3
	trashBumpDuration = 0.3 // seconds
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; values are written back to the fields as they advance.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenValue creates a TweenGroup that animates *field from its current value
// to the target over the duration using the easing function.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// bumpTrash enlarges the trash bin and eases it back to its resting size.
// Any bump still in flight is replaced.
func (s *Scene) bumpTrash() {
	s.trash.Scale = trashBumpScale
	kept := s.tweens[:0]
	for _, g := range s.tweens {
		if g.fields[0] != &s.trash.Scale {
			kept = append(kept, g)
		}
	}
	s.tweens = append(kept, TweenValue(&s.trash.Scale, 1, trashBumpDuration, ease.OutBack))
}

// updateTweens advances running tweens by one tick and drops finished ones.
func (s *Scene) updateTweens() {
	if len(s.tweens) == 0 {
		return
	}
	tps := s.TPS
	if tps <= 0 {
		tps = defaultTPS
	}
	dt := float32(1.0 / float64(tps))
	kept := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			kept = append(kept, g)
		}
	}
	for i := len(kept); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = kept
}
