package rhythm

import (
	"reflect"
	"slices"
	"testing"

	"github.com/milk9111/vibeshowdown/common"
)

// zeroRand always picks the low end of every range.
type zeroRand struct{}

func (zeroRand) IntN(int) int     { return 0 }
func (zeroRand) Float64() float64 { return 0 }

func advance(v *Visualizer, ticks int) {
	for range ticks {
		v.Advance()
	}
}

func TestVisualizerSpawnsOnBeat(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVisualizer(cfg, common.NewRand(7))

	advance(v, cfg.BeatPeriod-1)
	if pulse, notes := v.Renderables(); pulse != 0 || len(notes) != 0 {
		t.Fatalf("expected nothing before the first beat, got pulse=%d notes=%d", pulse, len(notes))
	}

	v.Advance()
	pulse, notes := v.Renderables()
	if pulse != cfg.PulsePeak-cfg.PulseDecay {
		t.Fatalf("expected pulse %d on the beat tick, got %d", cfg.PulsePeak-cfg.PulseDecay, pulse)
	}
	if len(notes) < cfg.MinNotes || len(notes) > cfg.MaxNotes {
		t.Fatalf("expected %d..%d notes, got %d", cfg.MinNotes, cfg.MaxNotes, len(notes))
	}
	for i, n := range notes {
		if n.Speed < cfg.MinSpeed || n.Speed >= cfg.MaxSpeed {
			t.Fatalf("note %d speed %v out of range", i, n.Speed)
		}
		if n.Size < cfg.MinSize || n.Size > cfg.MaxSize {
			t.Fatalf("note %d size %d out of range", i, n.Size)
		}
		if n.Pos.Y < cfg.Margin || n.Pos.Y > cfg.Height-cfg.Margin {
			t.Fatalf("note %d y %v out of range", i, n.Pos.Y)
		}
		if n.Pos.X != cfg.Width-n.Speed {
			t.Fatalf("note %d should have moved once from the right edge, x=%v", i, n.Pos.X)
		}
		if !slices.Contains(cfg.Palette, n.Color) {
			t.Fatalf("note %d color %v not in palette", i, n.Color)
		}
	}
}

func TestVisualizerPulseDecay(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVisualizer(cfg, zeroRand{})
	advance(v, cfg.BeatPeriod)

	steps := int(cfg.PulsePeak / cfg.PulseDecay)
	for i := 1; i < steps; i++ {
		v.Advance()
		want := int(cfg.PulsePeak) - (i+1)*int(cfg.PulseDecay)
		if pulse, _ := v.Renderables(); int(pulse) != want {
			t.Fatalf("tick %d: expected pulse %d, got %d", i, want, pulse)
		}
	}

	for v.Beat() != cfg.BeatPeriod-1 {
		v.Advance()
		if pulse, _ := v.Renderables(); pulse != 0 {
			t.Fatalf("pulse should stay at zero between beats, got %d", pulse)
		}
	}

	v.Advance()
	if pulse, _ := v.Renderables(); pulse != cfg.PulsePeak-cfg.PulseDecay {
		t.Fatalf("expected pulse to re-trigger, got %d", pulse)
	}
}

func TestVisualizerPrunesNotesPastLeftEdge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BeatPeriod = 200
	v := NewVisualizer(cfg, zeroRand{})

	advance(v, cfg.BeatPeriod)
	if v.Len() != cfg.MinNotes {
		t.Fatalf("expected %d notes, got %d", cfg.MinNotes, v.Len())
	}

	// Speed is MinSpeed: x hits exactly 0 after Width/MinSpeed moves and is
	// removed on the move after that.
	moves := int(cfg.Width / cfg.MinSpeed)
	advance(v, moves-1)
	_, notes := v.Renderables()
	if len(notes) != cfg.MinNotes || notes[0].Pos.X != 0 {
		t.Fatalf("expected notes parked at x=0, got %+v", notes)
	}

	v.Advance()
	if v.Len() != 0 {
		t.Fatalf("expected notes past the left edge to be dropped, %d remain", v.Len())
	}
}

func TestVisualizerRenderablesIsReadOnly(t *testing.T) {
	v := NewVisualizer(DefaultConfig(), zeroRand{})
	advance(v, 20)

	_, notes := v.Renderables()
	notes[0].Pos.X = -100
	_, again := v.Renderables()
	if again[0].Pos.X == -100 {
		t.Fatalf("Renderables leaked internal storage")
	}
}

func TestVisualizerIsSeedReproducible(t *testing.T) {
	a := NewVisualizer(DefaultConfig(), common.NewRand(42))
	b := NewVisualizer(DefaultConfig(), common.NewRand(42))
	advance(a, 500)
	advance(b, 500)

	pa, na := a.Renderables()
	pb, nb := b.Renderables()
	if pa != pb || !reflect.DeepEqual(na, nb) {
		t.Fatalf("same seed produced different streams")
	}
}
