package component

import (
	"slices"

	"github.com/milk9111/vibeshowdown/common"
)

// Player is static; only its position matters.
type Player struct {
	Pos common.Vec2
}

// Boss carries health and the current shake magnitude. Shake decays
// geometrically toward zero and is re-jolted by hits.
type Boss struct {
	Pos    common.Vec2
	Health Health
	Shake  float64
}

// Jolt sets the shake magnitude to mag.
func (b *Boss) Jolt(mag float64) {
	if b == nil || mag < 0 {
		return
	}
	b.Shake = mag
}

// DecayShake scales the shake magnitude by factor.
func (b *Boss) DecayShake(factor float64) {
	if b == nil {
		return
	}
	b.Shake *= factor
	if b.Shake < 0 {
		b.Shake = 0
	}
}

// State is everything the battle simulates. Projectiles and Effects are kept
// in creation order.
type State struct {
	Player      Player
	Boss        Boss
	Projectiles []Projectile
	Effects     []HitEffect
}

// Clone returns a deep copy safe to hand to readers.
func (s State) Clone() State {
	s.Projectiles = slices.Clone(s.Projectiles)
	s.Effects = slices.Clone(s.Effects)
	return s
}
