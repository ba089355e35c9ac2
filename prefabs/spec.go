package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// BattleFile is the tuning document loaded at start-up.
const BattleFile = "battle.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := DecodeSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func DecodeSpec[T any](data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

type BattleSpec struct {
	Name          string            `yaml:"name"`
	Viewport      ViewportSpec      `yaml:"viewport"`
	IntroSeconds  float64           `yaml:"intro_seconds"`
	Player        PositionSpec      `yaml:"player"`
	Boss          BossSpec          `yaml:"boss"`
	BasicAttack   BasicAttackSpec   `yaml:"basic_attack"`
	SpecialAttack SpecialAttackSpec `yaml:"special_attack"`
	Rhythm        RhythmSpec        `yaml:"rhythm"`
}

type ViewportSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"`
}

type PositionSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BossSpec struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	MaxHealth  int     `yaml:"max_health"`
	ShakeDecay float64 `yaml:"shake_decay"`
}

type BasicAttackSpec struct {
	Damage     int     `yaml:"damage"`
	Jolt       float64 `yaml:"jolt"`
	EffectLife int     `yaml:"effect_life"`
	Spread     int     `yaml:"spread"`
	Rise       float64 `yaml:"rise"`
}

type SpecialAttackSpec struct {
	Speed       float64          `yaml:"speed"`
	SpawnOffset float64          `yaml:"spawn_offset"`
	Jolt        float64          `yaml:"jolt"`
	EffectLife  int              `yaml:"effect_life"`
	Projectiles []ProjectileSpec `yaml:"projectiles"`
}

type ProjectileSpec struct {
	Kind   string `yaml:"kind"`
	Damage int    `yaml:"damage"`
}

type RhythmSpec struct {
	BeatPeriod int         `yaml:"beat_period"`
	PulsePeak  int         `yaml:"pulse_peak"`
	PulseDecay int         `yaml:"pulse_decay"`
	MinNotes   int         `yaml:"min_notes"`
	MaxNotes   int         `yaml:"max_notes"`
	MinSpeed   float64     `yaml:"min_speed"`
	MaxSpeed   float64     `yaml:"max_speed"`
	MinSize    int         `yaml:"min_size"`
	MaxSize    int         `yaml:"max_size"`
	Margin     float64     `yaml:"margin"`
	Palette    []YAMLColor `yaml:"palette"`
}

func LoadBattleSpec() (*BattleSpec, error) {
	spec, err := LoadSpec[BattleSpec](BattleFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", BattleFile, err)
	}
	return &spec, nil
}

// Validate rejects documents the battle cannot run with.
func (s *BattleSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	var errs []error
	check := func(ok bool, field string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidSpec, field))
		}
	}

	check(s.Viewport.Width > 0 && s.Viewport.Height > 0, "viewport size must be positive")
	check(s.Viewport.TickRate > 0, "viewport.tick_rate must be positive")
	check(s.IntroSeconds >= 0, "intro_seconds must not be negative")
	check(s.Boss.MaxHealth > 0, "boss.max_health must be positive")
	check(s.Boss.ShakeDecay >= 0 && s.Boss.ShakeDecay < 1, "boss.shake_decay must be in [0, 1)")
	check(s.Boss.Y < s.Player.Y, "boss must sit above the player")
	check(s.BasicAttack.Damage > 0, "basic_attack.damage must be positive")
	check(s.BasicAttack.EffectLife > 0, "basic_attack.effect_life must be positive")
	check(s.BasicAttack.Spread >= 0, "basic_attack.spread must not be negative")
	check(s.SpecialAttack.Speed > 0, "special_attack.speed must be positive")
	check(s.SpecialAttack.EffectLife > 0, "special_attack.effect_life must be positive")
	check(len(s.SpecialAttack.Projectiles) > 0, "special_attack.projectiles must not be empty")
	for i, p := range s.SpecialAttack.Projectiles {
		check(p.Kind != "", fmt.Sprintf("special_attack.projectiles[%d].kind is empty", i))
		check(p.Damage > 0, fmt.Sprintf("special_attack.projectiles[%d].damage must be positive", i))
	}

	r := s.Rhythm
	check(r.BeatPeriod > 0, "rhythm.beat_period must be positive")
	check(r.PulsePeak >= 0 && r.PulsePeak <= 255, "rhythm.pulse_peak must be in [0, 255]")
	check(r.PulseDecay > 0, "rhythm.pulse_decay must be positive")
	check(r.MinNotes > 0 && r.MinNotes <= r.MaxNotes, "rhythm note count range is invalid")
	check(r.MinSpeed > 0 && r.MinSpeed <= r.MaxSpeed, "rhythm speed range is invalid")
	check(r.MinSize > 0 && r.MinSize <= r.MaxSize, "rhythm size range is invalid")
	check(r.Margin >= 0 && 2*r.Margin <= s.Viewport.Height, "rhythm.margin does not fit the viewport")
	check(len(r.Palette) > 0, "rhythm.palette must not be empty")

	return errors.Join(errs...)
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the color as non-premultiplied RGBA. A nil color is opaque white.
func (c YAMLColor) NRGBA() color.NRGBA {
	if c.Color == nil {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
