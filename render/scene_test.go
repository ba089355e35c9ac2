package render

import (
	"reflect"
	"slices"
	"testing"

	"github.com/milk9111/vibeshowdown/common"
	"github.com/milk9111/vibeshowdown/component"
	"github.com/milk9111/vibeshowdown/rhythm"
	"github.com/milk9111/vibeshowdown/system"
)

var _ View = (*system.Battle)(nil)

type fakeView struct {
	phase component.Phase
	frame uint64
	state component.State
	pulse uint8
	notes []rhythm.Note
}

func (v fakeView) Phase() component.Phase              { return v.phase }
func (v fakeView) Frame() uint64                       { return v.frame }
func (v fakeView) State() component.State              { return v.state.Clone() }
func (v fakeView) Renderables() (uint8, []rhythm.Note) { return v.pulse, slices.Clone(v.notes) }

func playingView() fakeView {
	return fakeView{
		phase: component.PhasePlaying,
		frame: 0,
		state: component.State{
			Player: component.Player{Pos: common.Vec2{X: 300, Y: 320}},
			Boss:   component.Boss{Pos: common.Vec2{X: 300, Y: 230}, Health: component.NewHealth(1000)},
		},
	}
}

func TestSceneCaptionsPerPhase(t *testing.T) {
	cases := []struct {
		name  string
		phase component.Phase
		want  []string
	}{
		{"intro", component.PhaseIntro, []string{"Inteternenet"}},
		{"playing", component.PhasePlaying, nil},
		{"gameover", component.PhaseGameOver, []string{"WEEGEE IS DEFEATED", "YOU HAVE SAVED THE INTERNET"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := playingView()
			v.phase = c.phase
			f := NewScene(common.NewRand(1)).Build(v)
			if got := f.Texts(); !reflect.DeepEqual(got, c.want) {
				t.Fatalf("expected captions %v, got %v", c.want, got)
			}
			first := f.Primitives[0]
			if first.Shape != ShapeRect || first.W != common.BaseWidth || first.H != common.BaseHeight {
				t.Fatalf("expected a full-surface fill first, got %+v", first)
			}
		})
	}
}

func TestScenePulseAndNotes(t *testing.T) {
	v := playingView()
	v.pulse = 64
	v.notes = []rhythm.Note{
		{Pos: common.Vec2{X: 500, Y: 100}, Size: 12, Color: rhythm.NoteRed},
		{Pos: common.Vec2{X: 450, Y: 200}, Size: 25, Color: rhythm.NoteWhite},
	}
	f := NewScene(common.NewRand(1)).Build(v)

	wash := -1
	for i, p := range f.Primitives {
		if p.Shape == ShapeRect && p.Color.A == 64 && p.W == common.BaseWidth {
			wash = i
			break
		}
	}
	if wash < 0 {
		t.Fatalf("expected a pulse wash with alpha 64")
	}
	for i, n := range v.notes {
		p := f.Primitives[wash+1+i]
		if p.X != n.Pos.X || p.Y != n.Pos.Y || p.W != float64(n.Size) || p.H != 4 || p.Color != n.Color {
			t.Fatalf("note %d drawn as %+v", i, p)
		}
	}

	v.pulse = 0
	f = NewScene(common.NewRand(1)).Build(v)
	for _, p := range f.Primitives {
		if p.Color.R == PulseColor.R && p.Color.A < 0xff && p.W == common.BaseWidth {
			t.Fatalf("no wash expected with zero pulse")
		}
	}
}

func TestSceneEntities(t *testing.T) {
	v := playingView()
	v.state.Projectiles = []component.Projectile{
		{Kind: component.ProjectileRobotnik, Pos: common.Vec2{X: 300, Y: 270}},
		{Kind: component.ProjectileSpaghetti, Pos: common.Vec2{X: 300, Y: 260}},
		{Kind: component.ProjectileNorris, Pos: common.Vec2{X: 300, Y: 250}},
	}
	v.state.Effects = []component.HitEffect{
		{Pos: common.Vec2{X: 280, Y: 180}, Life: 20, Damage: 10},
		{Pos: common.Vec2{X: 300, Y: 228}, Life: 5, Damage: 200},
	}
	f := NewScene(common.NewRand(1)).Build(v)

	// boss: 2 buttons + 2 eyes, player: 2, spaghetti: plate + 10, norris: aura
	if got := f.Count(ShapeCircle); got != 4+2+11+1 {
		t.Fatalf("unexpected circle count %d", got)
	}
	// boss: face + cap brim, robotnik: 2
	if got := f.Count(ShapeEllipse); got != 4 {
		t.Fatalf("unexpected ellipse count %d", got)
	}
	if got := f.Texts(); !reflect.DeepEqual(got, []string{"10", "200"}) {
		t.Fatalf("expected damage numbers, got %v", got)
	}
}

func TestSceneEyesBreatheWithFrame(t *testing.T) {
	v := playingView()
	f := NewScene(common.NewRand(1)).Build(v)

	var eyes []Primitive
	for _, p := range f.Primitives {
		if p.Shape == ShapeCircle && p.Color == WeegeeEyes {
			eyes = append(eyes, p)
		}
	}
	if len(eyes) != 2 || eyes[0].R != 20 || eyes[1].R != 25 {
		t.Fatalf("unexpected eyes at frame 0: %+v", eyes)
	}
}

func TestSceneOnlyShakeUsesRandomness(t *testing.T) {
	v := playingView()
	v.frame = 1234
	v.state.Projectiles = []component.Projectile{{Kind: component.ProjectileSpaghetti, Pos: common.Vec2{X: 300, Y: 260}}}

	a := NewScene(common.NewRand(1)).Build(v)
	b := NewScene(common.NewRand(2)).Build(v)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("frames differ with zero shake")
	}

	v.state.Boss.Shake = 20
	c := NewScene(common.NewRand(1)).Build(v)
	for _, p := range c.Primitives {
		if p.Color == WeegeeBlue {
			dx := p.X - (300 - 120)
			if dx < -10 || dx > 10 {
				t.Fatalf("shake offset %v exceeds half the magnitude", dx)
			}
		}
	}
}

func TestFloorMod(t *testing.T) {
	cases := []struct{ a, n, want int }{
		{5, 3, 2},
		{-1, 700, 699},
		{-700, 700, 0},
		{0, 7, 0},
	}
	for _, c := range cases {
		if got := floorMod(c.a, c.n); got != c.want {
			t.Fatalf("floorMod(%d, %d) = %d, want %d", c.a, c.n, got, c.want)
		}
	}
}

func TestSceneWithLiveBattle(t *testing.T) {
	b := system.NewBattle(system.DefaultConfig(), common.NewRand(4))
	scene := NewScene(common.NewRand(4))
	for range b.Config().IntroTicks() {
		b.Tick()
	}
	b.FireBasicAttack()
	b.FireSpecialAttack()
	b.Tick()

	f := scene.Build(b)
	if got := f.Texts(); len(got) != 1 || got[0] != "10" {
		t.Fatalf("expected a single damage number, got %v", got)
	}
}
