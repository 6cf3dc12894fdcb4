package pixavatar

import (
	"fmt"
	"strconv"
)

// Shape draws a single grid cell. It receives the cell size and the column
// and row index of the cell, and returns a fragment of an SVG path definition.
type Shape interface {
	Path(resolution, col, row int) string
}

// ShapeFunc adapts an ordinary function to the Shape interface.
type ShapeFunc func(resolution, col, row int) string

// Path calls f(resolution, col, row).
func (f ShapeFunc) Path(resolution, col, row int) string {
	return f(resolution, col, row)
}

// ShapeType is the name of a built-in shape.
type ShapeType string

const (
	SquareShape ShapeType = "square"
	CircleShape ShapeType = "circle"
)

var (
	// Square fills the whole cell.
	Square Shape = ShapeFunc(squarePath)
	// Circle draws a circle inscribed into the cell.
	Circle Shape = ShapeFunc(circlePath)
)

// ShapeByName returns the built-in shape registered under name.
func ShapeByName(name string) (Shape, error) {
	switch ShapeType(name) {
	case SquareShape:
		return Square, nil
	case CircleShape:
		return Circle, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// squarePath draws a closed square path of resolution x resolution size.
func squarePath(resolution, col, row int) string {
	return fmt.Sprintf("M%d,%d h%d v%d h%dZ",
		col*resolution, row*resolution,
		resolution, resolution, -resolution,
	)
}

// circlePath draws a circle out of two half arcs, starting from the left edge of the cell.
func circlePath(resolution, col, row int) string {
	radius := float64(resolution) / 2
	r := formatFloat(radius)

	return fmt.Sprintf("M%d,%s a%s %s 0 1,1 %d,0 a%s %s 0 1,1 -%d,0",
		col*resolution, formatFloat(float64(row*resolution)+radius),
		r, r, resolution,
		r, r, resolution,
	)
}

// formatFloat prints f in its shortest form, without the trailing fraction of whole numbers.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
