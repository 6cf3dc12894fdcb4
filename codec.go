package pixavatar

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSeparator joins the tokens of the avatar data.
const DefaultSeparator = "-"

// colorMask keeps the 24 bits of an RGB color.
const colorMask = 0xffffff

// AvatarData holds the decoded form of the avatar data text.
// ColorMap contains one 6 digit lowercase hex color (without the # prefix) per grid row,
// so its length defines the complexity of the avatar.
type AvatarData struct {
	XAxis    uint64
	YAxis    uint64
	ColorMap []string
}

// Complexity returns the grid side length in cells.
func (d AvatarData) Complexity() int {
	return len(d.ColorMap)
}

// Valid reports whether the data can be rendered: it needs at least one row
// and an x axis fitting into complexity bits.
func (d AvatarData) Valid() bool {
	c := d.Complexity()
	if c < 1 {
		return false
	}
	if c < 64 && d.XAxis >= 1<<uint(c) {
		return false
	}
	return true
}

// Encode serializes the avatar data back into its text form.
func (d AvatarData) Encode(sep string) (string, error) {
	if sep == "" {
		return "", ErrInvalidSeparator
	}
	colors := make([]uint32, len(d.ColorMap))
	for i, c := range d.ColorMap {
		v, err := strconv.ParseUint(c, 16, 32)
		if err != nil {
			return "", fmt.Errorf("%w: color %d %q", ErrMalformedToken, i, c)
		}
		colors[i] = uint32(v)
	}
	return Encode(d.XAxis, d.YAxis, colors, sep), nil
}

// Encode produces the avatar data text: the x axis, the y axis and
// every color as base36 numbers joined by the separator.
func Encode(xAxis, yAxis uint64, colors []uint32, sep string) string {
	var sb strings.Builder

	sb.WriteString(strconv.FormatUint(xAxis, 36))
	sb.WriteString(sep)
	sb.WriteString(strconv.FormatUint(yAxis, 36))
	for _, c := range colors {
		sb.WriteString(sep)
		sb.WriteString(strconv.FormatUint(uint64(c), 36))
	}
	return sb.String()
}

// Decode parses the avatar data text. An empty text decodes into the zero AvatarData.
// Every token has to be a valid base36 number, otherwise an error wrapping
// ErrMalformedToken is returned.
func Decode(text, sep string) (AvatarData, error) {
	data := AvatarData{ColorMap: []string{}}

	if sep == "" {
		return data, ErrInvalidSeparator
	}
	if text == "" {
		return data, nil
	}

	for i, token := range strings.Split(text, sep) {
		v, err := strconv.ParseUint(token, 36, 64)
		if err != nil {
			return AvatarData{ColorMap: []string{}}, fmt.Errorf("%w: token %d %q", ErrMalformedToken, i, token)
		}

		switch i {
		case 0:
			data.XAxis = v
		case 1:
			data.YAxis = v
		default:
			data.ColorMap = append(data.ColorMap, hexColor(v))
		}
	}
	return data, nil
}

// hexColor formats the lower 24 bits of v as a zero padded hex color.
func hexColor(v uint64) string {
	return fmt.Sprintf("%06x", v&colorMask)
}

// bitList returns the size lowest bits of n, the most significant one first.
func bitList(n uint64, size int) []bool {
	if size < 0 {
		size = 0
	}
	bits := make([]bool, size)
	for i := range bits {
		shift := size - 1 - i
		if shift < 64 {
			bits[i] = (n>>uint(shift))&1 == 1
		}
	}
	return bits
}
