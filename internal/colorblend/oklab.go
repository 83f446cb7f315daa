// Package colorblend mixes per-day category colors in the Oklab perceptual
// space. Blending there preserves perceived hue and chroma; a naive linear
// RGB average of two saturated hues collapses toward gray.
package colorblend

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Oklab forward/inverse: sRGB -> linear light -> LMS (M1) -> cbrt -> Lab (M2),
// and back. Matrix pair per Björn Ottosson's reference formulation.

func toOklab(c colorful.Color) (L, a, b float64) {
	r, g, bl := c.LinearRgb()

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*bl
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*bl
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*bl

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	L = 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	a = 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	b = 0.0259040371*l + 0.7827717662*m - 0.8086757660*s
	return L, a, b
}

func fromOklab(L, a, b float64) colorful.Color {
	l := L + 0.3963377774*a + 0.2158037573*b
	m := L - 0.1055613458*a - 0.0638541728*b
	s := L - 0.0894841775*a - 1.2914855480*b

	l = l * l * l
	m = m * m * m
	s = s * s * s

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return colorful.LinearRgb(r, g, bl).Clamped()
}

// MixOklab blends two colors in Oklab at fraction t of c2.
func MixOklab(c1, c2 colorful.Color, t float64) colorful.Color {
	l1, a1, b1 := toOklab(c1)
	l2, a2, b2 := toOklab(c2)
	return fromOklab(l1+t*(l2-l1), a1+t*(a2-a1), b1+t*(b2-b1))
}

// MustHex parses a #rrggbb string, returning black for garbage input so a
// bad theme value degrades instead of panicking mid-render.
func MustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
