package dom

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Interpolator emits a committed value for a progression in [0, 1].
// Matches the engine's interpolator contract: `{getValue(easing) -> value}`.
type Interpolator interface {
	GetValue(progression float64) string
}

// Options carries the context an interpolator needs to interpret from/to,
// mirroring `{fromIsDom, propName, type}`.
type Options struct {
	FromIsDOM bool
	PropName  string
	Kind      PropertyKind
}

// CreateInterpolator tries each interpolator family in order of
// specificity — numeric, color, token-array, constant — and falls back to
// the instant interpolator, a last-resort fallback that never fails.
func CreateInterpolator(from, to string, opts Options) (Interpolator, error) {
	if n, ok := newNumericInterpolator(from, to); ok {
		return n, nil
	}
	if c, ok := newColorInterpolator(from, to); ok {
		return c, nil
	}
	if t, ok := newTokenArrayInterpolator(from, to); ok {
		return t, nil
	}
	if from == to {
		return constantInterpolator{value: to}, nil
	}
	return instantInterpolator{from: from, to: to}, nil
}

var numericRe = regexp.MustCompile(`^(-?[0-9]*\.?[0-9]+)([a-zA-Z%]*)$`)

func parseNumeric(s string) (value float64, unit string, ok bool) {
	m := numericRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return v, m[2], true
}

type numericInterpolator struct {
	from, to float64
	unit     string
}

func newNumericInterpolator(from, to string) (Interpolator, bool) {
	fv, fu, fok := parseNumeric(from)
	tv, tu, tok := parseNumeric(to)
	if !fok || !tok || fu != tu {
		return nil, false
	}
	return numericInterpolator{from: fv, to: tv, unit: fu}, true
}

func (n numericInterpolator) GetValue(progression float64) string {
	v := n.from + (n.to-n.from)*progression
	return formatNumber(v) + n.unit
}

func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s
}

type colorInterpolator struct {
	from, to Color
}

func newColorInterpolator(from, to string) (Interpolator, bool) {
	fc, fok := ParseColor(from)
	tc, tok := ParseColor(to)
	if !fok || !tok {
		return nil, false
	}
	return colorInterpolator{from: fc, to: tc}, true
}

func (c colorInterpolator) GetValue(progression float64) string {
	fr, fg, fb, fa := c.from.RGBAF()
	tr, tg, tb, ta := c.to.RGBAF()
	lerp := func(a, b float64) float64 { return a + (b-a)*progression }
	return RGBA(
		byteClamp(lerp(fr, tr)*255),
		byteClamp(lerp(fg, tg)*255),
		byteClamp(lerp(fb, tb)*255),
		lerp(fa, ta),
	).String()
}

func byteClamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// tokenArrayInterpolator interpolates a whitespace-separated list of tokens
// position-wise, e.g. "0px 0px 4px #000" -> "2px 2px 8px #333" for a
// box-shadow-shaped property. Tokens that aren't numeric or color and are
// equal on both sides pass through unchanged; any other mismatch disqualifies
// this interpolator.
type tokenArrayInterpolator struct {
	tokens []Interpolator
}

func newTokenArrayInterpolator(from, to string) (Interpolator, bool) {
	fTokens := strings.Fields(from)
	tTokens := strings.Fields(to)
	if len(fTokens) < 2 || len(fTokens) != len(tTokens) {
		return nil, false
	}
	interps := make([]Interpolator, len(fTokens))
	for i := range fTokens {
		if n, ok := newNumericInterpolator(fTokens[i], tTokens[i]); ok {
			interps[i] = n
			continue
		}
		if c, ok := newColorInterpolator(fTokens[i], tTokens[i]); ok {
			interps[i] = c
			continue
		}
		if fTokens[i] == tTokens[i] {
			interps[i] = constantInterpolator{value: fTokens[i]}
			continue
		}
		return nil, false
	}
	return tokenArrayInterpolator{tokens: interps}, true
}

func (t tokenArrayInterpolator) GetValue(progression float64) string {
	parts := make([]string, len(t.tokens))
	for i, interp := range t.tokens {
		parts[i] = interp.GetValue(progression)
	}
	return strings.Join(parts, " ")
}

// constantInterpolator always returns the same value — used when from and
// to are identical strings that don't parse as numbers or colors.
type constantInterpolator struct {
	value string
}

func (c constantInterpolator) GetValue(float64) string { return c.value }

// instantInterpolator is the never-fails fallback: it jumps from `from` to
// `to` exactly at progression 1, matching "last-resort instant interpolator"
// of committed values.
type instantInterpolator struct {
	from, to string
}

func (i instantInterpolator) GetValue(progression float64) string {
	if progression >= 1 {
		return i.to
	}
	return i.from
}

// ensure interface compliance at compile time.
var (
	_ Interpolator = numericInterpolator{}
	_ Interpolator = colorInterpolator{}
	_ Interpolator = tokenArrayInterpolator{}
	_ Interpolator = constantInterpolator{}
	_ Interpolator = instantInterpolator{}
)

// ErrNoInterpolator is returned (never, currently — instant always
// succeeds) to document the failure mode callers should still handle per
// the interpolator-options signature `create(...) -> ... | null`.
var ErrNoInterpolator = fmt.Errorf("dom: no interpolator matched")
