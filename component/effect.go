package component

import "github.com/milk9111/vibeshowdown/common"

type EffectKind int

const (
	EffectHit EffectKind = iota
)

// HitEffect is a floating damage number. Life counts down in ticks, like TTL.
type HitEffect struct {
	Kind   EffectKind
	Pos    common.Vec2
	Life   int
	Damage int
}
