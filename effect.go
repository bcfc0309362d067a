package shapeview

import (
	"math"
	"strings"
)

// EffectStyle is a translucency preset: the backdrop behind the view is
// blurred by BlurRadius and tinted.
type EffectStyle uint8

const (
	EffectNone EffectStyle = iota
	EffectExtraLight
	EffectLight
	EffectDark
	EffectRegular
	EffectProminent
)

var effectNames = [...]string{
	EffectNone:       "None",
	EffectExtraLight: "ExtraLight",
	EffectLight:      "Light",
	EffectDark:       "Dark",
	EffectRegular:    "Regular",
	EffectProminent:  "Prominent",
}

// String returns the preset name.
func (s EffectStyle) String() string {
	if int(s) < len(effectNames) {
		return effectNames[s]
	}
	return unknownStr
}

// ParseEffectStyle looks up a preset by name, ignoring case.
func ParseEffectStyle(name string) (EffectStyle, bool) {
	for i, n := range effectNames {
		if strings.EqualFold(n, name) {
			return EffectStyle(i), true
		}
	}
	return EffectNone, false
}

// BlurRadius returns the backdrop blur radius of the preset in points.
func (s EffectStyle) BlurRadius() float64 {
	switch s {
	case EffectExtraLight, EffectLight, EffectDark:
		return 20
	case EffectRegular:
		return 15
	case EffectProminent:
		return 25
	default:
		return 0
	}
}

// Tint returns the color laid over the blurred backdrop.
func (s EffectStyle) Tint() RGBA {
	switch s {
	case EffectExtraLight:
		return RGBA2(0.97, 0.97, 0.97, 0.8)
	case EffectLight:
		return RGBA2(1, 1, 1, 0.3)
	case EffectDark:
		return RGBA2(0.11, 0.11, 0.11, 0.73)
	case EffectRegular:
		return RGBA2(1, 1, 1, 0.5)
	case EffectProminent:
		return RGBA2(0.9, 0.9, 0.9, 0.65)
	default:
		return Transparent
	}
}

// Effect selects a translucency preset and an alpha applied on top of the
// preset's own intensity. The zero value is no effect.
type Effect struct {
	Style EffectStyle
	Alpha float64
}

// Active reports whether the effect paints anything.
func (e Effect) Active() bool {
	return e.Style != EffectNone && e.Alpha > 0
}

// Validate reports a contract violation in the effect parameters.
func (e Effect) Validate(op string) error {
	if int(e.Style) >= len(effectNames) {
		return effectError(op, "style", float64(e.Style), "unknown preset")
	}
	if math.IsNaN(e.Alpha) || e.Alpha < 0 || e.Alpha > 1 {
		return effectError(op, "alpha", e.Alpha, "must be within [0, 1]")
	}
	return nil
}
