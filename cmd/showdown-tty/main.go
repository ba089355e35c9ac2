// Command showdown-tty runs the boss fight in a terminal. The play area is
// rasterized into character cells; a status line sits underneath.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/vibeshowdown/common"
	"github.com/milk9111/vibeshowdown/component"
	"github.com/milk9111/vibeshowdown/render"
	"github.com/milk9111/vibeshowdown/system"
)

const statusRows = 2

type Game struct {
	screen tcell.Screen
	battle *system.Battle
	scene  *render.Scene
	raster *render.Raster
	status string
}

func NewGame(seed uint64, cfg system.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen: screen,
		battle: system.NewBattle(cfg, common.NewRand(seed)),
		scene:  render.NewScene(common.NewRand(seed + 1)),
		raster: render.NewRaster(0, 0, common.BaseWidth, common.BaseHeight),
		status: "The grand finale begins...",
	}
	g.battle.Events().Subscribe(func(evt component.CombatEvent) {
		if evt.Type == component.EventPhaseChanged && evt.Phase == component.PhaseGameOver {
			g.status = "VIBE OVERLOAD... CRITICAL FAILURE!"
		}
	})
	g.handleResize()
	return g, nil
}

func (g *Game) handleResize() {
	w, h := g.screen.Size()
	g.raster.Resize(w, max(h-statusRows, 0))
	g.screen.Sync()
}

// handleInput returns false when the player asks to quit.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'a':
			if g.battle.Phase() == component.PhasePlaying {
				g.battle.FireBasicAttack()
				if g.battle.Phase() == component.PhasePlaying {
					g.status = "A direct hit!"
				}
			}
		case 's':
			if msg, ok := g.battle.FireSpecialAttack(); ok {
				g.status = msg
			}
		}
	case *tcell.EventResize:
		g.handleResize()
	}
	return true
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (g *Game) draw() {
	g.raster.Draw(g.scene.Build(g.battle))

	for row := range g.raster.Rows {
		for col := range g.raster.Cols {
			c := g.raster.At(col, row)
			style := tcell.StyleDefault.Foreground(rgb(c.FG)).Background(rgb(c.BG))
			g.screen.SetContent(col, row, c.Rune, nil, style)
		}
	}

	g.drawStatus()
	g.screen.Show()
}

func (g *Game) drawStatus() {
	w, _ := g.screen.Size()
	row := g.raster.Rows
	base := tcell.StyleDefault.Background(tcell.NewRGBColor(30, 30, 30))

	barWidth := max(w-24, 0)
	filled := 0
	if g.battle.MaxHealth() > 0 {
		filled = barWidth * g.battle.Health() / g.battle.MaxHealth()
	}
	line := fmt.Sprintf("WEEGEE'S SOUL %4d [%s%s]", g.battle.Health(),
		strings.Repeat("█", filled), strings.Repeat(" ", barWidth-filled))
	g.putLine(row, line, base.Foreground(tcell.ColorRed))

	help := "  [a] Attack  [s] Unleash Vibe  [q] Quit  " + g.status
	g.putLine(row+1, help, base.Foreground(tcell.NewRGBColor(255, 10, 10)))
}

func (g *Game) putLine(row int, s string, style tcell.Style) {
	w, h := g.screen.Size()
	if row >= h {
		return
	}
	runes := []rune(s)
	for col := range w {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		g.screen.SetContent(col, row, ch, nil, style)
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(time.Second / common.TicksPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.battle.Tick()
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
}

func main() {
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	logPath := flag.String("log", "", "append logs to this file (the terminal is busy drawing)")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	cfg, err := system.LoadConfig()
	if err != nil {
		log.Printf("failed to load tuning, using defaults: %v", err)
		cfg = system.DefaultConfig()
	}

	game, err := NewGame(*seed, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
