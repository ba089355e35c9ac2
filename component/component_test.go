package component

import "testing"

func TestHealthApplyDamage(t *testing.T) {
	cases := []struct {
		name      string
		start     int
		damage    int
		want      int
		wantAlive bool
		applied   bool
	}{
		{"basic_hit", 15, 10, 5, true, true},
		{"lethal_floors_at_zero", 5, 10, 0, false, true},
		{"exact_kill", 200, 200, 0, false, true},
		{"zero_damage_ignored", 50, 0, 50, true, false},
		{"negative_damage_ignored", 50, -5, 50, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(1000)
			h.SetCurrentHP(c.start)
			if got := h.ApplyDamage(c.damage); got != c.applied {
				t.Fatalf("ApplyDamage returned %v, want %v", got, c.applied)
			}
			if h.CurrentHP() != c.want {
				t.Fatalf("expected health %d, got %d", c.want, h.CurrentHP())
			}
			if h.IsAlive() != c.wantAlive {
				t.Fatalf("expected alive=%v", c.wantAlive)
			}
		})
	}
}

func TestHealthDeadIgnoresFurtherDamage(t *testing.T) {
	h := NewHealth(10)
	h.ApplyDamage(10)
	if h.ApplyDamage(10) {
		t.Fatalf("dead health should not take damage")
	}
	if h.CurrentHP() != 0 {
		t.Fatalf("expected 0, got %d", h.CurrentHP())
	}
}

func TestHealthFraction(t *testing.T) {
	h := NewHealth(1000)
	h.ApplyDamage(250)
	if got := h.Fraction(); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
	if NewHealth(0).Max != 1 {
		t.Fatalf("non-positive max should be bumped to 1")
	}
}

func TestProjectileKindNames(t *testing.T) {
	for _, k := range ProjectileKinds {
		parsed, err := ParseProjectileKind(k.String())
		if err != nil || parsed != k {
			t.Fatalf("round trip of %v failed: %v %v", k, parsed, err)
		}
	}
	if _, err := ParseProjectileKind("mario"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if got := ProjectileNorris.Announcement(); got != "UNLEASHED THE NORRIS VIBE!" {
		t.Fatalf("unexpected announcement %q", got)
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	s := State{Projectiles: []Projectile{{Damage: 50}}, Effects: []HitEffect{{Life: 20}}}
	c := s.Clone()
	c.Projectiles[0].Damage = 1
	c.Effects[0].Life = 1
	if s.Projectiles[0].Damage != 50 || s.Effects[0].Life != 20 {
		t.Fatalf("clone shares backing arrays with the original")
	}
}

func TestEmitterFansOut(t *testing.T) {
	var em CombatEventEmitter
	var got []CombatEventType
	em.Subscribe(func(evt CombatEvent) { got = append(got, evt.Type) })
	em.Subscribe(nil)
	em.Subscribe(func(evt CombatEvent) { got = append(got, evt.Type) })
	em.Emit(CombatEvent{Type: EventHit})
	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
}
