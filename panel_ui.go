package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/vibeshowdown/common"
)

var (
	panelGrey     = color.NRGBA{R: 30, G: 30, B: 30, A: 0xff}
	buttonGrey    = color.NRGBA{R: 50, G: 50, B: 50, A: 0xff}
	buttonHover   = color.NRGBA{R: 120, G: 120, B: 120, A: 0xff}
	labelWhite    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	statusRed     = color.NRGBA{R: 255, G: 10, B: 10, A: 0xff}
	healthRed     = color.NRGBA{R: 0xff, A: 0xff}
	healthTrough  = color.NRGBA{R: 30, G: 30, B: 30, A: 0xff}
	healthOutline = color.NRGBA{R: 120, G: 120, B: 120, A: 0xff}
)

// Panel is the control strip under the play area: the boss health bar, the
// two action buttons and a status line.
type Panel struct {
	UI *ebitenui.UI

	status     *widget.Text
	healthSlot *widget.Container
}

// NewPanel builds the bottom panel. The health bar itself is painted into
// an empty slot by Draw, since it has to follow the battle every frame.
func NewPanel(onAttack, onSpecial func()) *Panel {
	panelImg := imageui.NewNineSliceColor(panelGrey)
	btnImg := imageui.NewNineSliceColor(buttonGrey)
	btnHoverImg := imageui.NewNineSliceColor(buttonHover)

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: labelWhite}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("WEEGEE'S SOUL", &face, labelWhite),
		widget.TextOpts.WidgetOpts(centered),
	)

	healthSlot := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth-100, 18),
			centered,
		),
	)

	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHoverImg, Pressed: btnHoverImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(130, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(centered),
	)
	controls.AddChild(newButton("Attack", onAttack))
	controls.AddChild(newButton("Unleash Vibe", onSpecial))

	status := widget.NewText(
		widget.TextOpts.Text("", &face, statusRed),
		widget.TextOpts.WidgetOpts(centered),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth, common.PanelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(healthSlot)
	panel.AddChild(controls)
	panel.AddChild(status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &Panel{
		UI:         &ebitenui.UI{Container: root},
		status:     status,
		healthSlot: healthSlot,
	}
}

func (p *Panel) SetStatus(s string) {
	p.status.Label = s
}

// Draw paints the widgets and the health bar in its slot.
func (p *Panel) Draw(screen *ebiten.Image, health, maxHealth int) {
	p.UI.Draw(screen)

	r := p.healthSlot.GetWidget().Rect
	if r.Empty() {
		r = image.Rect(50, common.BaseHeight+30, common.BaseWidth-50, common.BaseHeight+48)
	}
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	vector.FillRect(screen, x, y, w, h, healthTrough, false)
	if maxHealth > 0 && health > 0 {
		frac := float32(common.Clamp(float64(health)/float64(maxHealth), 0, 1))
		vector.FillRect(screen, x, y, w*frac, h, healthRed, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, healthOutline, false)
}
