package system

import (
	"github.com/milk9111/vibeshowdown/common"
	"github.com/milk9111/vibeshowdown/component"
)

// FireBasicAttack hits the boss directly. It does nothing outside the
// playing phase.
func (b *Battle) FireBasicAttack() {
	if b == nil || b.phase != component.PhasePlaying {
		return
	}

	boss := &b.state.Boss
	boss.Health.ApplyDamage(b.cfg.BasicDamage)
	boss.Jolt(b.cfg.BasicJolt)

	offset := common.RangeInt(b.rng, -b.cfg.BasicSpread, b.cfg.BasicSpread)
	pos := boss.Pos.Add(common.Vec2{X: float64(offset), Y: -b.cfg.BasicRise})
	b.spawnHitEffect(pos, b.cfg.BasicEffectLife, b.cfg.BasicDamage)

	b.events.Emit(component.CombatEvent{Type: component.EventHit, Damage: b.cfg.BasicDamage, Pos: pos, Frame: b.frame})
	b.checkDefeat()
}

// FireSpecialAttack launches a random projectile from the player and returns
// the line to announce it. ok is false when the attack was suppressed.
func (b *Battle) FireSpecialAttack() (msg string, ok bool) {
	if b == nil || b.phase != component.PhasePlaying || len(b.cfg.Arsenal) == 0 {
		return "", false
	}

	arm := b.cfg.Arsenal[common.Pick(b.rng, len(b.cfg.Arsenal))]
	p := b.spawnProjectile(arm)

	b.events.Emit(component.CombatEvent{Type: component.EventLaunch, Damage: arm.Damage, Pos: p.Pos, Kind: arm.Kind, Frame: b.frame})
	return arm.Kind.Announcement(), true
}

// resolveImpact converts a projectile that reached the boss into damage, a
// jolt and a hit effect at its last position.
func (b *Battle) resolveImpact(p component.Projectile) {
	boss := &b.state.Boss
	boss.Health.ApplyDamage(p.Damage)
	boss.Jolt(b.cfg.SpecialJolt)
	b.spawnHitEffect(p.Pos, b.cfg.SpecialEffectLife, p.Damage)

	b.events.Emit(component.CombatEvent{Type: component.EventHit, Damage: p.Damage, Pos: p.Pos, Kind: p.Kind, Frame: b.frame})
}
