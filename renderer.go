package pixavatar

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// DefaultSize is the default size of the SVG viewBox in user units.
const DefaultSize = 256

// Renderer turns avatar data into an SVG document.
type Renderer struct {
	// Shape draws the filled cells. Defaults to Square when nil.
	Shape Shape
	// Size is the side length of the viewBox.
	Size int
	// Separator splits the tokens of the avatar data.
	Separator string
}

// NewRenderer returns a renderer initialized with the default options.
func NewRenderer() *Renderer {
	return &Renderer{
		Shape:     Square,
		Size:      DefaultSize,
		Separator: DefaultSeparator,
	}
}

// Render returns the SVG markup of the avatar described by data.
func (r *Renderer) Render(data string) (string, error) {
	var buf bytes.Buffer

	if err := r.render(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo writes the SVG markup of the avatar described by data into w.
func (r *Renderer) RenderTo(w io.Writer, data string) error {
	var buf bytes.Buffer

	if err := r.render(&buf, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Bitmap returns the cell matrix of the avatar indexed by row then column.
// A cell is true when it gets drawn.
func (r *Renderer) Bitmap(data string) ([][]bool, error) {
	d, err := r.decode(data)
	if err != nil {
		return nil, err
	}
	rows, cols := d.grid()

	bitmap := make([][]bool, len(rows))
	for y, row := range rows {
		bitmap[y] = make([]bool, len(cols))
		for x, col := range cols {
			bitmap[y][x] = row != col
		}
	}
	return bitmap, nil
}

// decode parses and validates the avatar data.
func (r *Renderer) decode(data string) (AvatarData, error) {
	d, err := Decode(data, r.Separator)
	if err != nil {
		return d, err
	}
	if !d.Valid() {
		return d, fmt.Errorf("%w: complexity %d, x axis %d", ErrInvalidAvatarData, d.Complexity(), d.XAxis)
	}
	return d, nil
}

// grid returns the row and column bits of the avatar.
func (d AvatarData) grid() (rows, cols []bool) {
	c := d.Complexity()
	return bitList(d.YAxis, c), bitList(d.XAxis, c)
}

func (r *Renderer) render(w io.Writer, data string) error {
	d, err := r.decode(data)
	if err != nil {
		return err
	}

	shape := r.Shape
	if shape == nil {
		shape = Square
	}
	complexity := d.Complexity()
	resolution := r.Size / complexity
	rows, cols := d.grid()

	canvas := svg.New(w)
	canvas.StartviewUnit(100, 100, "%", 0, 0, r.Size, r.Size)

	cells := make([]string, 0, complexity)
	for y, row := range rows {
		cells = cells[:0]
		// The columns are shared by every row, so each row is either
		// identical to the columns or drawn where it differs from them.
		for x, col := range cols {
			if row != col {
				cells = append(cells, shape.Path(resolution, x, y))
			}
		}
		canvas.Path(strings.Join(cells, " "), fmt.Sprintf(`fill="#%s"`, d.ColorMap[y]))
	}
	canvas.End()

	return nil
}
