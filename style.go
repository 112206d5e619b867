package plotgrid

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// BuiltinColors are the gray levels understood in addition to the
// CSS color names.
var BuiltinColors = map[string]color.RGBA{
	"gray20": {0x33, 0x33, 0x33, 0xff},
	"gray40": {0x66, 0x66, 0x66, 0xff},
	"gray50": {0x7f, 0x7f, 0x7f, 0xff},
	"gray60": {0x99, 0x99, 0x99, 0xff},
	"gray80": {0xcc, 0xcc, 0xcc, 0xff},
}

// ParseColor interprets s as a color. Understood are "#rrggbb" and
// "#rrggbbaa" hex values, the gray levels in BuiltinColors and the CSS
// color names like "lightcoral" or "skyblue" (case insensitive).
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		return parseHexColor(s, name[1:])
	}
	if col, ok := BuiltinColors[name]; ok {
		return col, nil
	}
	if col, ok := colornames.Map[name]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

func parseHexColor(s, hex string) (color.Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("%w %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownColor, s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// SetAlpha returns c with its opacity replaced by a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	if c == nil {
		return nil
	}
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*0xff + 0.5)
	return n
}

// HexColor formats c as "#rrggbb", dropping opacity.
func HexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
