package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_DecorateText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SuccessColor+"ok"+DefaultColor, DecorateText("ok", SuccessMessage))
	assert.Equal(ErrorColor+"fail"+DefaultColor, DecorateText("fail", ErrorMessage))
	assert.Equal("plain", DecorateText("plain", MessageType(42)))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_Bitmap(t *testing.T) {
	out := Bitmap([][]bool{
		{true, false},
		{false, true},
	})
	assert.Equal(t, "██  \n  ██\n", out)
}

func TestUtils_MinMaxClamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(2, Max(1, 2))
	assert.Equal(0.5, Max(-0.5, 0.5))
	assert.Equal(20, Clamp(42, 1, 20))
	assert.Equal(1, Clamp(-3, 1, 20))
	assert.Equal(7, Clamp(7, 1, 20))
}

func TestUtils_SpinnerShouldPrintStopMessage(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinnerWriter(&buf, "generating", time.Millisecond, false)
	s.Start()
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.StopMsg = "done"
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.True(t, strings.Contains(out, "generating"))
	assert.True(t, strings.HasSuffix(out, "done"))
}

func TestUtils_StripColors(t *testing.T) {
	assert.Equal(t, "⚡ avatar", stripColors(DecorateText("⚡ avatar", StatusMessage)))
}
