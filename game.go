package main

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/vibeshowdown/common"
	"github.com/milk9111/vibeshowdown/component"
	"github.com/milk9111/vibeshowdown/prefabs"
	"github.com/milk9111/vibeshowdown/render"
	"github.com/milk9111/vibeshowdown/system"
)

const (
	statusIntro    = "The grand finale begins..."
	statusDirect   = "A direct hit!"
	statusGameOver = "VIBE OVERLOAD... CRITICAL FAILURE!"
)

type Game struct {
	debug bool
	seed  uint64

	battle *system.Battle
	scene  *render.Scene
	frame  render.Frame
	panel  *Panel

	watcher *prefabs.Watcher
}

func NewGame(seed uint64, debug, watch bool) (*Game, error) {
	cfg, err := system.LoadConfig()
	if err != nil {
		log.Printf("failed to load tuning, using defaults: %v", err)
		cfg = system.DefaultConfig()
	}

	g := &Game{
		debug: debug,
		seed:  seed,
		scene: render.NewScene(common.NewRand(seed + 1)),
	}
	g.panel = NewPanel(g.attack, g.special)
	g.panel.SetStatus(statusIntro)
	g.startBattle(cfg)

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", prefabs.Dir, err)
		}
		g.watcher = w
	}
	return g, nil
}

func (g *Game) startBattle(cfg system.Config) {
	g.battle = system.NewBattle(cfg, common.NewRand(g.seed))
	g.battle.Events().Subscribe(g.onCombatEvent)
	g.frame = g.scene.Build(g.battle)
}

func (g *Game) onCombatEvent(evt component.CombatEvent) {
	switch evt.Type {
	case component.EventPhaseChanged:
		if evt.Phase == component.PhaseGameOver {
			g.panel.SetStatus(statusGameOver)
		}
	case component.EventHit:
		if g.debug {
			log.Printf("hit: %d damage at (%.0f, %.0f) frame=%d", evt.Damage, evt.Pos.X, evt.Pos.Y, evt.Frame)
		}
	}
}

func (g *Game) attack() {
	if g.battle.Phase() != component.PhasePlaying {
		return
	}
	g.battle.FireBasicAttack()
	if g.battle.Phase() == component.PhasePlaying {
		g.panel.SetStatus(statusDirect)
	}
}

func (g *Game) special() {
	if msg, ok := g.battle.FireSpecialAttack(); ok {
		g.panel.SetStatus(msg)
	}
}

func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadTuning(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadTuning(name string) {
	if name != prefabs.BattleFile {
		return
	}
	cfg, err := system.LoadConfig()
	if err != nil {
		log.Printf("reload %s: %v", name, err)
		return
	}
	if g.battle.Phase() != component.PhaseIntro {
		log.Printf("reload %s: battle already started, keeping current tuning", name)
		return
	}
	log.Printf("reload %s: restarting intro with new tuning", name)
	g.startBattle(cfg)
}

func (g *Game) Update() error {
	g.pollTuning()
	g.panel.UI.Update()
	g.handleKeys()

	g.battle.Tick()
	g.frame = g.scene.Build(g.battle)
	return nil
}

// handleKeys mirrors the panel buttons on the keyboard.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.attack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.special()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	play := screen.SubImage(image.Rect(0, 0, common.BaseWidth, common.BaseHeight)).(*ebiten.Image)
	DrawFrame(play, g.frame)

	g.panel.Draw(screen, g.battle.Health(), g.battle.MaxHealth())

	if g.debug {
		s := g.battle.State()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  frame: %d  phase: %s\nprojectiles: %d  effects: %d",
			ebiten.ActualFPS(), g.battle.Frame(), g.battle.Phase(), len(s.Projectiles), len(s.Effects)))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight + common.PanelHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
