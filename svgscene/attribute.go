package svgscene

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/svgview/svgview/svgmath"
)

// Color is an RGBA color with 8 bits per channel. The zero value is
// fully transparent and stands for "none".
type Color struct {
	R, G, B, A uint8
}

// IsNone reports whether c is the absent color.
func (c Color) IsNone() bool { return c == Color{} }

// parseColor interprets a hex color attribute. The accepted forms are
// #RRGGBB (opaque) and #RRGGBBAA, with the leading '#' optional, plus
// "none" and the empty string. Anything else degrades to transparent
// rather than failing, since a misspelt color should not abort the
// whole document.
func parseColor(s string) Color {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return Color{}
	}
	s = strings.TrimPrefix(s, "#")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Color{}
	}
	switch len(raw) {
	case 3:
		return Color{raw[0], raw[1], raw[2], 255}
	case 4:
		return Color{raw[0], raw[1], raw[2], raw[3]}
	}
	return Color{}
}

// parseNumber reads a plain decimal number. A malformed literal is a
// fatal parse error.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

// unit conversion factors to pixels, at the CSS ratio of 96 pixels
// per inch
var unitToPx = map[string]float64{
	"cm": 9600. / 254.,
	"mm": 960. / 254.,
	"Q":  240. / 254.,
	"in": 96,
	"pc": 16,
	"pt": 96. / 72.,
	"px": 1,
}

// parseLength reads a number with an optional unit suffix and returns
// its value in pixels. An unknown unit or malformed number is fatal.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for unit, factor := range unitToPx {
		if v, ok := strings.CutSuffix(s, unit); ok {
			n, err := parseNumber(v)
			return n * factor, err
		}
	}
	return parseNumber(s)
}

func isSeparator(r rune) bool { return r == ',' || unicode.IsSpace(r) }

// parseNumberList splits s on commas and whitespace and parses each
// field as a number.
func parseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, isSeparator)
	out := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		if out[i], err = parseNumber(f); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// parsePointList reads a points attribute: an even-length number list
// taken pairwise. An odd count is fatal.
func parsePointList(s string) ([]svgmath.Vec2[float64], error) {
	nums, err := parseNumberList(s)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("points list has odd length %d", len(nums))
	}
	out := make([]svgmath.Vec2[float64], len(nums)/2)
	for i := range out {
		out[i] = svgmath.Vec2[float64]{X: nums[2*i], Y: nums[2*i+1]}
	}
	return out, nil
}

// parseTransform reads a transform list and composes it into a single
// matrix, multiplying in textual order so the leftmost entry applies
// first. Unrecognized function names and wrong argument counts skip
// that entry; malformed numbers are fatal.
func parseTransform(s string) (svgmath.Mat3[float64], error) {
	out := svgmath.Identity[float64]()
	for _, entry := range strings.Split(s, ")") {
		name, args, found := strings.Cut(entry, "(")
		if !found {
			continue
		}
		nums, err := parseNumberList(args)
		if err != nil {
			return svgmath.Mat3[float64]{}, err
		}
		m, ok := transformEntry(strings.TrimFunc(name, isSeparator), nums)
		if !ok {
			continue
		}
		out = out.Mul(m)
	}
	return out, nil
}

func transformEntry(name string, args []float64) (svgmath.Mat3[float64], bool) {
	switch name {
	case "matrix":
		if len(args) == 6 {
			return svgmath.Affine(args[0], args[1], args[2], args[3], args[4], args[5]), true
		}
	case "translate":
		switch len(args) {
		case 1:
			return svgmath.Translate(args[0], 0), true
		case 2:
			return svgmath.Translate(args[0], args[1]), true
		}
	case "scale":
		switch len(args) {
		case 1:
			return svgmath.Scale(args[0], args[0]), true
		case 2:
			return svgmath.Scale(args[0], args[1]), true
		}
	case "rotate":
		switch len(args) {
		case 1:
			return svgmath.Rotate(radians(args[0])), true
		case 3:
			return svgmath.RotateAround(radians(args[0]), args[1], args[2]), true
		}
	case "skewX":
		if len(args) == 1 {
			return svgmath.SkewX(radians(args[0])), true
		}
	case "skewY":
		if len(args) == 1 {
			return svgmath.SkewY(radians(args[0])), true
		}
	}
	return svgmath.Mat3[float64]{}, false
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
