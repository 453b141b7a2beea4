package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(3.5, Abs(-3.5))
	assert.Equal(0, Clamp(-4, 0, 255))
	assert.Equal(255, Clamp(300, 0, 255))
	assert.Equal(3, Clamp(3, 1, 3))

	assert.Equal(3, FloorDiv(7, 2))
	assert.Equal(-2, FloorDiv(-3, 2))
	assert.Equal(-1, FloorDiv(-2, 2))
	assert.Equal(0, FloorDiv(0, 2))
}

func TestUtils_DecorateText(t *testing.T) {
	defer SetPlain(false)

	SetPlain(false)
	assert.Equal(t, ErrorColor+"boom"+DefaultColor, DecorateText("boom", ErrorMessage))

	SetPlain(true)
	assert.Equal(t, "boom", DecorateText("boom", ErrorMessage))
}

func TestUtils_FormatTime(t *testing.T) {
	assert.Equal(t, "1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal(t, "2m 3.00s", FormatTime(2*time.Minute+3*time.Second))
	assert.Equal(t, "1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_IsFontData(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsFontData(goregular.TTF))
	assert.False(IsFontData([]byte("<svg xmlns=\"http://www.w3.org/2000/svg\"></svg>")))
	assert.False(IsFontData([]byte("plain text\n")))
	assert.True(strings.HasPrefix(DetectContentType(goregular.TTF), "font/"))
}

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"svg", "digits"}, "digits"))
	assert.False(t, Contains([]string{"svg", "digits"}, "all"))
	assert.False(t, Contains([]int(nil), 1))
}

func TestUtils_Spinner(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "working", time.Millisecond, false)
	s.StopMsg = "done\n"

	s.Start()
	s.SetMessage("still working")
	time.Sleep(10 * time.Millisecond)
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "working")
	assert.True(t, strings.HasSuffix(out, "done\n"))
	assert.Equal(t, 1, strings.Count(out, "done\n"))
}
