// Package render synthesizes the small bitmap assets the style builders
// attach to widget styles: bordered input frames, focus rings, chevrons and
// toggle indicators. Assets are drawn once per distinct recolor request and
// cached; they are sized for 9-slice stretching by the host engine.
package render

import (
	"image"
	"image/color"

	"github.com/fynestrap/fynestrap/colorutil"
)

// templateFunc rasterizes a template with the given fill colors. Templates
// document how many fills they read; missing trailing fills mean the
// corresponding region stays transparent.
type templateFunc func(fills []colorutil.Color) *image.NRGBA

// Template raster dimensions in pixels. Kept small: the host engine
// stretches them via 9-slice borders, so only corner fidelity matters.
const (
	squareSize  = 16
	inputSize   = 24
	inputRadius = 5
	ringSize    = 28
	ringWidth   = 2
	chevronSize = 14
	toggleSize  = 18
	switchW     = 36
	switchH     = 18
	stripeSize  = 16
	stripeStep  = 4
	sepLong     = 16
	sepShort    = 2
)

// templates maps every known template name to its rasterizer.
// Fill order per template:
//
//	square      fill
//	input       border, interior
//	focusring   ring, interior
//	chevron     arrow
//	check       border, interior, mark
//	radio       border, interior, dot
//	knob        border, interior
//	switch-off  trough border, trough, handle
//	switch-on   trough border, trough, handle
//	striped     stripe, ground
//	hsep        fill
//	vsep        fill
var templates = map[string]templateFunc{
	"square":     drawSquare,
	"input":      drawInput,
	"focusring":  drawFocusRing,
	"chevron":    drawChevron,
	"check":      drawCheck,
	"radio":      drawRadio,
	"knob":       drawKnob,
	"switch-off": func(f []colorutil.Color) *image.NRGBA { return drawSwitch(f, false) },
	"switch-on":  func(f []colorutil.Color) *image.NRGBA { return drawSwitch(f, true) },
	"striped":    drawStriped,
	"hsep":       func(f []colorutil.Color) *image.NRGBA { return drawBar(f, sepLong, sepShort) },
	"vsep":       func(f []colorutil.Color) *image.NRGBA { return drawBar(f, sepShort, sepLong) },
}

// TemplateNames lists the built-in template vocabulary. Used by the demo app
// and by tests; the slice is a copy.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}

var transparent = color.NRGBA{}

func nrgba(c colorutil.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// fillAt returns the i-th fill as a paintable color, transparent when the
// caller supplied fewer fills.
func fillAt(fills []colorutil.Color, i int) color.NRGBA {
	if i >= len(fills) {
		return transparent
	}
	return nrgba(fills[i])
}

func canvas(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

// inRoundRect reports whether the pixel (x,y) lies inside a rounded
// rectangle spanning [x0,x1)x[y0,y1) with corner radius r.
func inRoundRect(x, y, x0, y0, x1, y1, r int) bool {
	if x < x0 || x >= x1 || y < y0 || y >= y1 {
		return false
	}
	cx, cy := 0, 0
	switch {
	case x < x0+r && y < y0+r:
		cx, cy = x0+r, y0+r
	case x >= x1-r && y < y0+r:
		cx, cy = x1-r-1, y0+r
	case x < x0+r && y >= y1-r:
		cx, cy = x0+r, y1-r-1
	case x >= x1-r && y >= y1-r:
		cx, cy = x1-r-1, y1-r-1
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

func inCircle(x, y, cx, cy, r int) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

func drawSquare(fills []colorutil.Color) *image.NRGBA {
	img := canvas(squareSize, squareSize)
	fill := fillAt(fills, 0)
	for y := 0; y < squareSize; y++ {
		for x := 0; x < squareSize; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	return img
}

// drawInput renders the bordered rounded-rect frame used by entries,
// comboboxes and spinboxes.
func drawInput(fills []colorutil.Color) *image.NRGBA {
	img := canvas(inputSize, inputSize)
	border, interior := fillAt(fills, 0), fillAt(fills, 1)
	for y := 0; y < inputSize; y++ {
		for x := 0; x < inputSize; x++ {
			switch {
			case inRoundRect(x, y, 1, 1, inputSize-1, inputSize-1, inputRadius-1):
				img.SetNRGBA(x, y, interior)
			case inRoundRect(x, y, 0, 0, inputSize, inputSize, inputRadius):
				img.SetNRGBA(x, y, border)
			}
		}
	}
	return img
}

// drawFocusRing renders a 2px ring with a transparent (or interior-filled)
// center, slightly larger than the input frame so it halos the widget.
func drawFocusRing(fills []colorutil.Color) *image.NRGBA {
	img := canvas(ringSize, ringSize)
	ring, interior := fillAt(fills, 0), fillAt(fills, 1)
	for y := 0; y < ringSize; y++ {
		for x := 0; x < ringSize; x++ {
			switch {
			case inRoundRect(x, y, ringWidth, ringWidth, ringSize-ringWidth, ringSize-ringWidth, inputRadius):
				img.SetNRGBA(x, y, interior)
			case inRoundRect(x, y, 0, 0, ringSize, ringSize, inputRadius+ringWidth):
				img.SetNRGBA(x, y, ring)
			}
		}
	}
	return img
}

// drawChevron renders a downward V arrow on a transparent ground.
func drawChevron(fills []colorutil.Color) *image.NRGBA {
	img := canvas(chevronSize, chevronSize)
	arrow := fillAt(fills, 0)
	const thickness = 2
	top := chevronSize/2 - 3
	half := chevronSize / 2
	for dx := 0; dx <= half-2; dx++ {
		for t := 0; t < thickness; t++ {
			y := top + dx + t
			if y >= chevronSize {
				continue
			}
			img.SetNRGBA(2+dx, y, arrow)
			img.SetNRGBA(chevronSize-3-dx, y, arrow)
		}
	}
	return img
}

// drawCheck renders the checkbutton indicator: a rounded box, optionally
// with a check mark.
func drawCheck(fills []colorutil.Color) *image.NRGBA {
	img := canvas(toggleSize, toggleSize)
	border, interior, mark := fillAt(fills, 0), fillAt(fills, 1), fillAt(fills, 2)
	for y := 0; y < toggleSize; y++ {
		for x := 0; x < toggleSize; x++ {
			switch {
			case inRoundRect(x, y, 1, 1, toggleSize-1, toggleSize-1, 2):
				img.SetNRGBA(x, y, interior)
			case inRoundRect(x, y, 0, 0, toggleSize, toggleSize, 3):
				img.SetNRGBA(x, y, border)
			}
		}
	}
	if mark.A != 0 {
		// Short descending stroke then long ascending stroke.
		for i := 0; i < 3; i++ {
			img.SetNRGBA(4+i, 9+i, mark)
			img.SetNRGBA(4+i, 10+i, mark)
		}
		for i := 0; i < 6; i++ {
			img.SetNRGBA(7+i, 11-i, mark)
			img.SetNRGBA(7+i, 12-i, mark)
		}
	}
	return img
}

// drawRadio renders the radiobutton indicator: a circle, optionally with a
// center dot.
func drawRadio(fills []colorutil.Color) *image.NRGBA {
	img := canvas(toggleSize, toggleSize)
	border, interior, dot := fillAt(fills, 0), fillAt(fills, 1), fillAt(fills, 2)
	c := toggleSize / 2
	for y := 0; y < toggleSize; y++ {
		for x := 0; x < toggleSize; x++ {
			switch {
			case dot.A != 0 && inCircle(x, y, c, c, c-5):
				img.SetNRGBA(x, y, dot)
			case inCircle(x, y, c, c, c-2):
				img.SetNRGBA(x, y, interior)
			case inCircle(x, y, c, c, c-1):
				img.SetNRGBA(x, y, border)
			}
		}
	}
	return img
}

// drawKnob renders the round slider handle used by scales and round
// scrollbars.
func drawKnob(fills []colorutil.Color) *image.NRGBA {
	img := canvas(toggleSize, toggleSize)
	border, interior := fillAt(fills, 0), fillAt(fills, 1)
	c := toggleSize / 2
	for y := 0; y < toggleSize; y++ {
		for x := 0; x < toggleSize; x++ {
			switch {
			case inCircle(x, y, c, c, c-2):
				img.SetNRGBA(x, y, interior)
			case inCircle(x, y, c, c, c-1):
				img.SetNRGBA(x, y, border)
			}
		}
	}
	return img
}

// drawSwitch renders the toggle pill with the handle parked left (off) or
// right (on).
func drawSwitch(fills []colorutil.Color, on bool) *image.NRGBA {
	img := canvas(switchW, switchH)
	border, trough, handle := fillAt(fills, 0), fillAt(fills, 1), fillAt(fills, 2)
	r := switchH / 2
	for y := 0; y < switchH; y++ {
		for x := 0; x < switchW; x++ {
			switch {
			case inRoundRect(x, y, 1, 1, switchW-1, switchH-1, r-1):
				img.SetNRGBA(x, y, trough)
			case inRoundRect(x, y, 0, 0, switchW, switchH, r):
				img.SetNRGBA(x, y, border)
			}
		}
	}
	cx := r
	if on {
		cx = switchW - r
	}
	for y := 0; y < switchH; y++ {
		for x := 0; x < switchW; x++ {
			if inCircle(x, y, cx, r, r-3) {
				img.SetNRGBA(x, y, handle)
			}
		}
	}
	return img
}

// drawStriped renders 45-degree stripes, used by the striped progressbar
// variant.
func drawStriped(fills []colorutil.Color) *image.NRGBA {
	img := canvas(stripeSize, stripeSize)
	stripe, ground := fillAt(fills, 0), fillAt(fills, 1)
	for y := 0; y < stripeSize; y++ {
		for x := 0; x < stripeSize; x++ {
			if ((x+y)/stripeStep)%2 == 0 {
				img.SetNRGBA(x, y, stripe)
			} else {
				img.SetNRGBA(x, y, ground)
			}
		}
	}
	return img
}

func drawBar(fills []colorutil.Color, w, h int) *image.NRGBA {
	img := canvas(w, h)
	fill := fillAt(fills, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	return img
}
