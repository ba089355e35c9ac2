package system

import (
	"log"

	"github.com/milk9111/vibeshowdown/common"
	"github.com/milk9111/vibeshowdown/component"
	"github.com/milk9111/vibeshowdown/rhythm"
)

// Battle owns the game-state machine and every entity in the fight. Hosts
// call Tick at a steady rate, fire the two actions, and read the rest.
type Battle struct {
	cfg Config
	rng common.Rand

	phase      component.Phase
	introTimer int
	frame      uint64

	state     component.State
	viz       *rhythm.Visualizer
	scheduler *Scheduler
	events    component.CombatEventEmitter
}

// NewBattle creates a battle in the intro phase.
func NewBattle(cfg Config, rng common.Rand) *Battle {
	if rng == nil {
		rng = common.NewRand(1)
	}
	b := &Battle{
		cfg:        cfg,
		rng:        rng,
		phase:      component.PhaseIntro,
		introTimer: cfg.IntroTicks(),
		state: component.State{
			Player: component.Player{Pos: cfg.PlayerPos},
			Boss: component.Boss{
				Pos:    cfg.BossPos,
				Health: component.NewHealth(cfg.MaxHealth),
			},
		},
		viz: rhythm.NewVisualizer(cfg.Rhythm, rng),
	}
	b.scheduler = NewScheduler(
		NewVisualizerSystem(),
		NewShakeSystem(),
		NewProjectileSystem(),
		NewEffectSystem(),
	)
	return b
}

// Tick advances the battle by one frame.
func (b *Battle) Tick() {
	if b == nil {
		return
	}
	b.frame++

	switch b.phase {
	case component.PhaseIntro:
		b.introTimer--
		if b.introTimer <= 0 {
			b.setPhase(component.PhasePlaying)
		}
	case component.PhasePlaying:
		b.scheduler.Update(b)
		b.checkDefeat()
	}
}

func (b *Battle) checkDefeat() {
	if b.phase == component.PhasePlaying && !b.state.Boss.Health.IsAlive() {
		b.setPhase(component.PhaseGameOver)
	}
}

func (b *Battle) setPhase(p component.Phase) {
	if b.phase == p {
		return
	}
	log.Printf("battle: %s -> %s at frame %d", b.phase, p, b.frame)
	b.phase = p
	b.events.Emit(component.CombatEvent{Type: component.EventPhaseChanged, Phase: p, Frame: b.frame})
}

func (b *Battle) Phase() component.Phase {
	if b == nil {
		return component.PhaseIntro
	}
	return b.phase
}

// Frame counts ticks since construction in every phase. Presentation uses it
// for all time-based animation.
func (b *Battle) Frame() uint64 {
	if b == nil {
		return 0
	}
	return b.frame
}

// Health is the boss's current health, never negative.
func (b *Battle) Health() int {
	if b == nil {
		return 0
	}
	return b.state.Boss.Health.CurrentHP()
}

func (b *Battle) MaxHealth() int {
	if b == nil {
		return 0
	}
	return b.state.Boss.Health.MaxHP()
}

// State returns a copy of every entity in the fight.
func (b *Battle) State() component.State {
	if b == nil {
		return component.State{}
	}
	return b.state.Clone()
}

// Renderables forwards the visualizer's pulse and notes.
func (b *Battle) Renderables() (uint8, []rhythm.Note) {
	if b == nil {
		return 0, nil
	}
	return b.viz.Renderables()
}

// Events lets hosts subscribe to hits, launches and phase changes.
func (b *Battle) Events() *component.CombatEventEmitter {
	if b == nil {
		return nil
	}
	return &b.events
}

func (b *Battle) Config() Config {
	return b.cfg
}
