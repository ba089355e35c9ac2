package render

import (
	"math"
	"strconv"

	"github.com/milk9111/vibeshowdown/common"
	"github.com/milk9111/vibeshowdown/component"
	"github.com/milk9111/vibeshowdown/rhythm"
)

// View is the read-only slice of a battle the scene needs. *system.Battle
// satisfies it.
type View interface {
	Phase() component.Phase
	Frame() uint64
	State() component.State
	Renderables() (uint8, []rhythm.Note)
}

const backgroundStripes = 15

// Scene builds frames for a fixed viewport. Its random source is only used
// for the boss shake offset.
type Scene struct {
	Width, Height float64
	rng           common.Rand
}

func NewScene(rng common.Rand) *Scene {
	if rng == nil {
		rng = common.NewRand(1)
	}
	return &Scene{Width: common.BaseWidth, Height: common.BaseHeight, rng: rng}
}

// Build paints the current view into a new frame.
func (s *Scene) Build(v View) Frame {
	var f Frame
	switch v.Phase() {
	case component.PhaseIntro:
		s.intro(&f)
	case component.PhaseGameOver:
		s.gameOver(&f)
	default:
		s.playing(&f, v)
	}
	return f
}

func (s *Scene) intro(f *Frame) {
	f.Rect(0, 0, s.Width, s.Height, Black)

	const w, h = 80.0, 200.0
	x, y := s.Width/2-w/2, s.Height/2-h/2
	f.Rect(x+10, y+10, w, h, LogoShadow)
	f.Rect(x, y, w, h, LogoGreen)
	f.Rect(x-20, y, w+40, h/4, LogoGreen)
	f.Rect(x-20, y+h-h/4, w+40, h/4, LogoGreen)
	f.Text("Inteternenet", s.Width/2, s.Height-40, 30, LogoGreen)
}

func (s *Scene) gameOver(f *Frame) {
	f.Rect(0, 0, s.Width, s.Height, Black)
	f.Text("WEEGEE IS DEFEATED", s.Width/2, s.Height/2, 50, White)
	f.Text("YOU HAVE SAVED THE INTERNET", s.Width/2, s.Height/2+50, 20, White)
}

func (s *Scene) playing(f *Frame, v View) {
	frame := v.Frame()
	state := v.State()

	f.Rect(0, 0, s.Width, s.Height, DarkRed)
	s.background(f, frame)
	s.visualizer(f, v)
	s.boss(f, state.Boss, frame)
	s.player(f, state.Player)
	for _, p := range state.Projectiles {
		s.projectile(f, p, frame)
	}
	for _, e := range state.Effects {
		f.Text(strconv.Itoa(e.Damage), e.Pos.X, e.Pos.Y, 30, SpaghettiYellow)
	}
}

// background draws grey city stripes that drift by a per-stripe rate every
// six frames.
func (s *Scene) background(f *Frame, frame uint64) {
	drift := int(frame / 6)
	span := int(s.Width) + 100
	for i := range backgroundStripes {
		seed := i * 337
		x := floorMod(i*70+drift*(seed%5-2), span) - 50
		h := float64(100 + seed%150)
		w := float64(40 + seed%30)
		cv := uint8(60 + seed%40)
		f.Rect(float64(x), s.Height-h, w, h, colorGrey(cv))
	}
}

func (s *Scene) visualizer(f *Frame, v View) {
	pulse, notes := v.Renderables()
	if pulse > 0 {
		wash := PulseColor
		wash.A = pulse
		f.Rect(0, 0, s.Width, s.Height, wash)
	}
	for _, n := range notes {
		f.Rect(n.Pos.X, n.Pos.Y, float64(n.Size), 4, n.Color)
	}
}

func (s *Scene) boss(f *Frame, b component.Boss, frame uint64) {
	shakeX := (s.rng.Float64() - 0.5) * b.Shake
	shakeY := (s.rng.Float64() - 0.5) * b.Shake
	x, y := b.Pos.X+shakeX, b.Pos.Y+shakeY

	f.Rect(x-120, y-80, 240, 300, WeegeeBlue)
	f.Rect(x-110, y-80, 220, 150, WeegeeGreen)
	f.Circle(x-60, y, 20, SpaghettiYellow)
	f.Circle(x+60, y, 20, SpaghettiYellow)
	f.Ellipse(x-100, y-200, 200, 220, WeegeeSkin)
	f.Rect(x-80, y-250, 160, 50, WeegeeGreen)
	f.Ellipse(x-50, y-225, 100, 50, WeegeeGreen)

	phase := float64(frame) / 12
	f.Circle(x-40, y-150, 20+math.Sin(phase)*5, WeegeeEyes)
	f.Circle(x+40, y-150, 20+math.Cos(phase)*5, WeegeeEyes)
	f.Rect(x-60, y-120, 120, 20, Black)
}

func (s *Scene) player(f *Frame, p component.Player) {
	x, y := p.Pos.X, p.Pos.Y
	f.Rect(x-12, y, 24, 20, MarioBlue)
	f.Rect(x-12, y, 24, 10, MarioRed)
	f.Circle(x, y-10, 10, WeegeeSkin)
	f.Rect(x-10, y-25, 20, 8, MarioRed)
	f.Circle(x, y-18, 8, MarioRed)
}

func (s *Scene) projectile(f *Frame, p component.Projectile, frame uint64) {
	x, y := p.Pos.X, p.Pos.Y
	switch p.Kind {
	case component.ProjectileRobotnik:
		f.Ellipse(x-20, y-15, 40, 30, NorrisBrown)
		f.Ellipse(x-25, y, 50, 15, RobotnikOrange)
		f.Rect(x-15, y-10, 30, 5, Black)
	case component.ProjectileSpaghetti:
		f.Circle(x, y, 20, White)
		for i := range 10 {
			jx, jy := meatballOffset(frame, i)
			f.Circle(x+jx, y+jy, 5, SpaghettiYellow)
		}
	case component.ProjectileNorris:
		f.Rect(x-30, y-10, 60, 15, NorrisBrown)
		f.Rect(x-20, y-25, 40, 15, NorrisBrown)
		f.Circle(x, y, 30+math.Sin(float64(frame)/6)*10, NorrisAura)
	}
}

// meatballOffset scatters meatball i within ±15px, reshuffling every frame
// without consuming randomness.
func meatballOffset(frame uint64, i int) (float64, float64) {
	t := float64(frame)*1.7 + float64(i)*2.3
	return math.Round(15 * math.Sin(t)), math.Round(15 * math.Cos(t*1.3+float64(i)))
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
