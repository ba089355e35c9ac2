// Package rhythm produces the procedural "music" on screen: a background
// pulse and bars of notes that scroll right to left on every beat. It is
// driven only by Advance calls; nothing in here reads a clock.
package rhythm

import (
	"image/color"
	"slices"

	"github.com/milk9111/vibeshowdown/common"
)

// Config tunes the visualizer. Speeds are pixels per tick.
type Config struct {
	Width, Height float64

	BeatPeriod int
	PulsePeak  uint8
	PulseDecay uint8

	MinNotes, MaxNotes int
	MinSpeed, MaxSpeed float64
	MinSize, MaxSize   int
	Margin             float64

	Palette []color.NRGBA
}

var (
	NoteRed    = color.NRGBA{R: 255, G: 50, B: 50, A: 255}
	NoteYellow = color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	NoteWhite  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func DefaultConfig() Config {
	return Config{
		Width:      common.BaseWidth,
		Height:     common.BaseHeight,
		BeatPeriod: 20,
		PulsePeak:  128,
		PulseDecay: 8,
		MinNotes:   2,
		MaxNotes:   5,
		MinSpeed:   4.0,
		MaxSpeed:   8.0,
		MinSize:    10,
		MaxSize:    30,
		Margin:     50,
		Palette:    []color.NRGBA{NoteRed, NoteYellow, NoteWhite},
	}
}

// Note is one scrolling bar. Pos is its top-left corner.
type Note struct {
	Pos   common.Vec2
	Speed float64
	Color color.NRGBA
	Size  int
}

// Visualizer spawns a batch of notes every BeatPeriod ticks and fades a pulse
// between beats. Notes that leave the left edge are gone for good.
type Visualizer struct {
	cfg   Config
	rng   common.Rand
	beat  int
	pulse uint8
	notes []Note
}

func NewVisualizer(cfg Config, rng common.Rand) *Visualizer {
	if cfg.BeatPeriod <= 0 {
		cfg.BeatPeriod = 1
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = []color.NRGBA{NoteWhite}
	}
	return &Visualizer{cfg: cfg, rng: rng}
}

// Advance moves the visualizer forward by one tick.
func (v *Visualizer) Advance() {
	if v == nil {
		return
	}

	v.beat = (v.beat + 1) % v.cfg.BeatPeriod
	if v.beat == 0 {
		v.pulse = v.cfg.PulsePeak
		v.spawn()
	}

	kept := v.notes[:0]
	for _, n := range v.notes {
		n.Pos.X -= n.Speed
		if n.Pos.X < 0 {
			continue
		}
		kept = append(kept, n)
	}
	clear(v.notes[len(kept):])
	v.notes = kept

	if v.pulse > v.cfg.PulseDecay {
		v.pulse -= v.cfg.PulseDecay
	} else {
		v.pulse = 0
	}
}

func (v *Visualizer) spawn() {
	count := common.RangeInt(v.rng, v.cfg.MinNotes, v.cfg.MaxNotes)
	lo := int(v.cfg.Margin)
	hi := int(v.cfg.Height - v.cfg.Margin)
	for range count {
		v.notes = append(v.notes, Note{
			Pos:   common.Vec2{X: v.cfg.Width, Y: float64(common.RangeInt(v.rng, lo, hi))},
			Speed: common.RangeFloat(v.rng, v.cfg.MinSpeed, v.cfg.MaxSpeed),
			Color: v.cfg.Palette[common.Pick(v.rng, len(v.cfg.Palette))],
			Size:  common.RangeInt(v.rng, v.cfg.MinSize, v.cfg.MaxSize),
		})
	}
}

// Renderables returns the pulse intensity and a copy of the live notes in
// creation order.
func (v *Visualizer) Renderables() (uint8, []Note) {
	if v == nil {
		return 0, nil
	}
	return v.pulse, slices.Clone(v.notes)
}

// Beat is the position within the current beat period.
func (v *Visualizer) Beat() int {
	if v == nil {
		return 0
	}
	return v.beat
}

// Len is the number of live notes.
func (v *Visualizer) Len() int {
	if v == nil {
		return 0
	}
	return len(v.notes)
}
