package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/milk9111/vibeshowdown/common"
	"github.com/milk9111/vibeshowdown/component"
	"github.com/milk9111/vibeshowdown/prefabs"
	"github.com/milk9111/vibeshowdown/rhythm"
)

// Armament binds a projectile kind to the damage it deals.
type Armament struct {
	Kind   component.ProjectileKind
	Damage int
}

// Config holds every number the battle runs on. Distances are pixels,
// speeds pixels per tick, lifetimes ticks.
type Config struct {
	TickRate     int
	IntroSeconds float64

	PlayerPos common.Vec2
	BossPos   common.Vec2
	MaxHealth int

	ShakeDecay float64

	BasicDamage     int
	BasicJolt       float64
	BasicEffectLife int
	BasicSpread     int
	BasicRise       float64

	SpecialSpeed       float64
	SpecialSpawnOffset float64
	SpecialJolt        float64
	SpecialEffectLife  int
	Arsenal            []Armament

	Rhythm rhythm.Config
}

func DefaultConfig() Config {
	return Config{
		TickRate:     common.TicksPerSecond,
		IntroSeconds: 3,

		PlayerPos: common.Vec2{X: common.BaseWidth / 2, Y: common.BaseHeight - 40},
		BossPos:   common.Vec2{X: common.BaseWidth / 2, Y: common.BaseHeight - 130},
		MaxHealth: 1000,

		ShakeDecay: 0.9,

		BasicDamage:     10,
		BasicJolt:       10,
		BasicEffectLife: 20,
		BasicSpread:     80,
		BasicRise:       50,

		SpecialSpeed:       8,
		SpecialSpawnOffset: 40,
		SpecialJolt:        20,
		SpecialEffectLife:  20,
		Arsenal: []Armament{
			{Kind: component.ProjectileRobotnik, Damage: 50},
			{Kind: component.ProjectileSpaghetti, Damage: 30},
			{Kind: component.ProjectileNorris, Damage: 200},
		},

		Rhythm: rhythm.DefaultConfig(),
	}
}

// IntroTicks is the length of the intro countdown.
func (c Config) IntroTicks() int {
	return int(math.Round(c.IntroSeconds * float64(c.TickRate)))
}

// ConfigFromSpec converts a validated tuning document into a Config.
func ConfigFromSpec(s *prefabs.BattleSpec) (Config, error) {
	if err := s.Validate(); err != nil {
		return Config{}, err
	}

	arsenal := make([]Armament, 0, len(s.SpecialAttack.Projectiles))
	for _, p := range s.SpecialAttack.Projectiles {
		kind, err := component.ParseProjectileKind(p.Kind)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", prefabs.ErrInvalidSpec, err)
		}
		arsenal = append(arsenal, Armament{Kind: kind, Damage: p.Damage})
	}

	palette := make([]color.NRGBA, 0, len(s.Rhythm.Palette))
	for _, c := range s.Rhythm.Palette {
		palette = append(palette, c.NRGBA())
	}

	r := s.Rhythm
	return Config{
		TickRate:     s.Viewport.TickRate,
		IntroSeconds: s.IntroSeconds,

		PlayerPos: common.Vec2{X: s.Player.X, Y: s.Player.Y},
		BossPos:   common.Vec2{X: s.Boss.X, Y: s.Boss.Y},
		MaxHealth: s.Boss.MaxHealth,

		ShakeDecay: s.Boss.ShakeDecay,

		BasicDamage:     s.BasicAttack.Damage,
		BasicJolt:       s.BasicAttack.Jolt,
		BasicEffectLife: s.BasicAttack.EffectLife,
		BasicSpread:     s.BasicAttack.Spread,
		BasicRise:       s.BasicAttack.Rise,

		SpecialSpeed:       s.SpecialAttack.Speed,
		SpecialSpawnOffset: s.SpecialAttack.SpawnOffset,
		SpecialJolt:        s.SpecialAttack.Jolt,
		SpecialEffectLife:  s.SpecialAttack.EffectLife,
		Arsenal:            arsenal,

		Rhythm: rhythm.Config{
			Width:      s.Viewport.Width,
			Height:     s.Viewport.Height,
			BeatPeriod: r.BeatPeriod,
			PulsePeak:  uint8(r.PulsePeak),
			PulseDecay: uint8(common.ClampInt(r.PulseDecay, 1, 255)),
			MinNotes:   r.MinNotes,
			MaxNotes:   r.MaxNotes,
			MinSpeed:   r.MinSpeed,
			MaxSpeed:   r.MaxSpeed,
			MinSize:    r.MinSize,
			MaxSize:    r.MaxSize,
			Margin:     r.Margin,
			Palette:    palette,
		},
	}, nil
}

// LoadConfig reads the tuning document and converts it.
func LoadConfig() (Config, error) {
	spec, err := prefabs.LoadBattleSpec()
	if err != nil {
		return Config{}, err
	}
	return ConfigFromSpec(spec)
}
