package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

func opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

var (
	Black = opaque(colornames.Black)
	White = opaque(colornames.White)

	PulseColor = color.NRGBA{R: 20, G: 0, B: 0, A: 0xff}
	DarkRed    = color.NRGBA{R: 100, G: 0, B: 0, A: 0xff}

	WeegeeGreen = color.NRGBA{R: 0, G: 100, B: 20, A: 0xff}
	WeegeeBlue  = color.NRGBA{R: 40, G: 40, B: 180, A: 0xff}
	WeegeeSkin  = color.NRGBA{R: 200, G: 220, B: 180, A: 0xff}
	WeegeeEyes  = color.NRGBA{R: 255, G: 10, B: 10, A: 0xff}

	MarioRed  = color.NRGBA{R: 200, G: 0, B: 0, A: 0xff}
	MarioBlue = color.NRGBA{R: 0, G: 0, B: 200, A: 0xff}

	SpaghettiYellow = color.NRGBA{R: 255, G: 220, B: 100, A: 0xff}
	RobotnikOrange  = color.NRGBA{R: 255, G: 140, B: 0, A: 0xff}
	NorrisBrown     = color.NRGBA{R: 139, G: 69, B: 19, A: 0xff}
	NorrisAura      = color.NRGBA{R: 255, G: 255, B: 0, A: 100}

	LogoGreen  = color.NRGBA{R: 0, G: 200, B: 50, A: 0xff}
	LogoShadow = color.NRGBA{R: 0, G: 100, B: 25, A: 0xff}
)

func colorGrey(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 0xff}
}
