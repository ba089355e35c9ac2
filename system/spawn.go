package system

import (
	"github.com/milk9111/vibeshowdown/common"
	"github.com/milk9111/vibeshowdown/component"
)

func (b *Battle) spawnProjectile(arm Armament) component.Projectile {
	p := component.Projectile{
		Kind:   arm.Kind,
		Pos:    b.state.Player.Pos.Add(common.Vec2{Y: -b.cfg.SpecialSpawnOffset}),
		Speed:  b.cfg.SpecialSpeed,
		Damage: arm.Damage,
	}
	b.state.Projectiles = append(b.state.Projectiles, p)
	return p
}

func (b *Battle) spawnHitEffect(pos common.Vec2, life, damage int) {
	b.state.Effects = append(b.state.Effects, component.HitEffect{
		Kind:   component.EffectHit,
		Pos:    pos,
		Life:   life,
		Damage: damage,
	})
}
