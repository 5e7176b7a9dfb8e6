// Package canvas provides the render target the flower pipeline draws on.
package canvas

import (
	"errors"
	"image/color"
)

var ErrEmptySurface = errors.New("canvas surface has zero size")

// Surface is the capability set the interpreter and motif renderer need.
// Coordinates are logical pixels; rotations are radians, clockwise on screen.
type Surface interface {
	Size() (width, height float64)
	Clear(c color.Color)
	ResetTransform()
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(theta float64)
	SetFill(c color.NRGBA)
	// Ellipse fills an ellipse of the given diameters centred on the
	// current origin.
	Ellipse(width, height float64)
}
