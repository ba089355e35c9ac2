package system

import "github.com/milk9111/vibeshowdown/component"

// VisualizerSystem advances the rhythm visualizer.
type VisualizerSystem struct{}

func NewVisualizerSystem() *VisualizerSystem { return &VisualizerSystem{} }

func (s *VisualizerSystem) Update(b *Battle) {
	b.viz.Advance()
}

// ShakeSystem decays the boss shake geometrically.
type ShakeSystem struct{}

func NewShakeSystem() *ShakeSystem { return &ShakeSystem{} }

func (s *ShakeSystem) Update(b *Battle) {
	b.state.Boss.DecayShake(b.cfg.ShakeDecay)
}

// ProjectileSystem moves projectiles upward and resolves the ones that cross
// the boss line. Only the vertical axis is tested.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem { return &ProjectileSystem{} }

func (s *ProjectileSystem) Update(b *Battle) {
	threshold := b.state.Boss.Pos.Y
	live := b.state.Projectiles
	kept := live[:0]
	var landed []component.Projectile
	for _, p := range live {
		p.Pos.Y -= p.Speed
		if p.Pos.Y <= threshold {
			landed = append(landed, p)
			continue
		}
		kept = append(kept, p)
	}
	clear(live[len(kept):])
	b.state.Projectiles = kept

	for _, p := range landed {
		b.resolveImpact(p)
	}
}

// EffectSystem counts hit effects down and drops them when their life runs out.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem { return &EffectSystem{} }

func (s *EffectSystem) Update(b *Battle) {
	live := b.state.Effects
	kept := live[:0]
	for _, e := range live {
		e.Life--
		if e.Life <= 0 {
			continue
		}
		kept = append(kept, e)
	}
	clear(live[len(kept):])
	b.state.Effects = kept
}
