package colorblend

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Classification thresholds over the top-two combined weight, plus the
// share of the top-three total required for an accent.
const (
	pureThreshold     = 0.80
	dominantThreshold = 0.65
	accentThreshold   = 0.12

	tintFraction   = 0.2
	accentFraction = 0.1
)

// Entry is one category color active on a day with its message-count weight.
type Entry struct {
	Color  colorful.Color
	Weight float64
}

// Kind classifies how a day's colors combine.
type Kind int

const (
	Pure Kind = iota
	Dominant
	Balanced
)

// Blend describes how to produce a day's representative color.
type Blend struct {
	Kind      Kind
	Primary   colorful.Color
	Secondary colorful.Color
	Ratio     float64 // balanced only: second / (first + second)
	HasAccent bool
	Accent    colorful.Color
}

// ClassifyDayBlend sorts entries by weight (descending, stable for ties)
// and classifies by the top entry's share of the top-two total:
// >= 0.80 pure, [0.65, 0.80) dominant, otherwise balanced. A balanced blend
// gains an accent when a third entry holds >= 0.12 of the top-three total.
func ClassifyDayBlend(entries []Entry, fallback colorful.Color) Blend {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	switch len(sorted) {
	case 0:
		return Blend{Kind: Pure, Primary: fallback}
	case 1:
		return Blend{Kind: Pure, Primary: sorted[0].Color}
	}

	topTwo := sorted[0].Weight + sorted[1].Weight
	if topTwo <= 0 {
		return Blend{Kind: Pure, Primary: sorted[0].Color}
	}
	share := sorted[0].Weight / topTwo

	if share >= pureThreshold {
		return Blend{Kind: Pure, Primary: sorted[0].Color}
	}
	if share >= dominantThreshold {
		return Blend{Kind: Dominant, Primary: sorted[0].Color, Secondary: sorted[1].Color}
	}

	b := Blend{
		Kind:      Balanced,
		Primary:   sorted[0].Color,
		Secondary: sorted[1].Color,
		Ratio:     sorted[1].Weight / topTwo,
	}
	if len(sorted) >= 3 {
		topThree := topTwo + sorted[2].Weight
		if topThree > 0 && sorted[2].Weight/topThree >= accentThreshold {
			b.HasAccent = true
			b.Accent = sorted[2].Color
		}
	}
	return b
}

// Color resolves the blend descriptor to a single RGB color. Pure passes
// the color through; dominant tints the primary toward the secondary at a
// fixed small fraction; balanced mixes at the weight ratio and then folds
// in the accent, all in Oklab.
func (b Blend) Color() colorful.Color {
	switch b.Kind {
	case Dominant:
		return MixOklab(b.Primary, b.Secondary, tintFraction)
	case Balanced:
		mixed := MixOklab(b.Primary, b.Secondary, b.Ratio)
		if b.HasAccent {
			mixed = MixOklab(mixed, b.Accent, accentFraction)
		}
		return mixed
	default:
		return b.Primary
	}
}

// Intensity maps a day's value onto [minVisible, 1] with logarithmic
// scaling, so a few heavy days don't wash every lighter day out to
// near-background, and low-but-nonzero days keep a visible floor.
func Intensity(value, maxValue, minVisible float64) float64 {
	if maxValue <= 0 || value <= 0 {
		return minVisible
	}
	frac := math.Log1p(value) / math.Log1p(maxValue)
	if frac > 1 {
		frac = 1
	}
	return minVisible + (1-minVisible)*frac
}

// Shade mixes the background toward the blended hue in linear RGB at the
// given fraction, producing the final displayed cell color.
func Shade(background, hue colorful.Color, frac float64) colorful.Color {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	r1, g1, b1 := background.LinearRgb()
	r2, g2, b2 := hue.LinearRgb()
	return colorful.LinearRgb(
		r1+frac*(r2-r1),
		g1+frac*(g2-g1),
		b1+frac*(b2-b1),
	).Clamped()
}
