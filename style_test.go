package plotgrid

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"lightcoral", color.NRGBA{0xf0, 0x80, 0x80, 0xff}},
		{"skyblue", color.NRGBA{0x87, 0xce, 0xeb, 0xff}},
		{"SkyBlue", color.NRGBA{0x87, 0xce, 0xeb, 0xff}},
		{" red ", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"gray50", color.NRGBA{0x7f, 0x7f, 0x7f, 0xff}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}},
		{"#AbCdEf80", color.NRGBA{0xab, 0xcd, 0xef, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, color.NRGBAModel.Convert(c))
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12345", "#1234567", "#gggggg"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			assert.ErrorIs(t, err, ErrUnknownColor)
		})
	}
}

func TestSetAlphaAndHex(t *testing.T) {
	c := SetAlpha(color.RGBA{0x87, 0xce, 0xeb, 0xff}, 0.5)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	assert.Equal(t, uint8(0x80), n.A)
	assert.Equal(t, uint8(0x87), n.R)

	assert.Equal(t, "#87ceeb", HexColor(c))
	assert.Equal(t, "#f08080", HexColor(color.RGBA{0xf0, 0x80, 0x80, 0xff}))
	assert.Equal(t, "", HexColor(nil))
	assert.Nil(t, SetAlpha(nil, 1))

	assert.Equal(t, uint8(0xff), color.NRGBAModel.Convert(SetAlpha(c, 7)).(color.NRGBA).A)
	assert.Equal(t, uint8(0), color.NRGBAModel.Convert(SetAlpha(c, -1)).(color.NRGBA).A)
}
