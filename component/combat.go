package component

import "github.com/milk9111/vibeshowdown/common"

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit          CombatEventType = "hit"
	EventLaunch       CombatEventType = "launch"
	EventPhaseChanged CombatEventType = "phase_changed"
)

// CombatEvent is emitted by the battle as things happen during a tick or an action.
type CombatEvent struct {
	Type   CombatEventType
	Damage int
	Pos    common.Vec2
	Kind   ProjectileKind
	Phase  Phase
	Frame  uint64
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans events out to registered handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe registers h. Nil handlers are ignored.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
