package colorblend

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	red    = colorful.Color{R: 1, G: 0, B: 0}
	green  = colorful.Color{R: 0, G: 1, B: 0}
	blue   = colorful.Color{R: 0, G: 0, B: 1}
	yellow = colorful.Color{R: 1, G: 1, B: 0}
	gray   = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
)

func TestOklabRoundTrip(t *testing.T) {
	t.Run("neutral grays are exact-ish", func(t *testing.T) {
		for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
			in := colorful.Color{R: v, G: v, B: v}
			L, a, b := toOklab(in)
			out := fromOklab(L, a, b)
			if math.Abs(out.R-in.R) > 1e-6 || math.Abs(out.G-in.G) > 1e-6 || math.Abs(out.B-in.B) > 1e-6 {
				t.Errorf("gray %v round-trip drifted to %v", in, out)
			}
		}
	})

	t.Run("chromatic colors within tolerance", func(t *testing.T) {
		for _, in := range []colorful.Color{red, green, blue, yellow, {R: 0.85, G: 0.47, B: 0.34}} {
			L, a, b := toOklab(in)
			out := fromOklab(L, a, b)
			if math.Abs(out.R-in.R) > 1e-4 || math.Abs(out.G-in.G) > 1e-4 || math.Abs(out.B-in.B) > 1e-4 {
				t.Errorf("%v round-trip drifted to %v", in, out)
			}
		}
	})
}

func TestClassifyDayBlend_Pure(t *testing.T) {
	t.Run("empty uses fallback", func(t *testing.T) {
		b := ClassifyDayBlend(nil, gray)
		if b.Kind != Pure || b.Primary != gray {
			t.Errorf("got kind=%v primary=%v", b.Kind, b.Primary)
		}
	})

	t.Run("single entry", func(t *testing.T) {
		b := ClassifyDayBlend([]Entry{{Color: red, Weight: 3}}, gray)
		if b.Kind != Pure || b.Primary != red {
			t.Errorf("got kind=%v primary=%v", b.Kind, b.Primary)
		}
	})

	t.Run("dominance at 0.80 is pure", func(t *testing.T) {
		b := ClassifyDayBlend([]Entry{{Color: red, Weight: 8}, {Color: blue, Weight: 2}}, gray)
		if b.Kind != Pure {
			t.Errorf("kind = %v, want Pure", b.Kind)
		}
	})
}

func TestClassifyDayBlend_Dominant(t *testing.T) {
	// 7/(7+3) = 0.70, in [0.65, 0.80)
	b := ClassifyDayBlend([]Entry{{Color: red, Weight: 7}, {Color: blue, Weight: 3}}, gray)
	if b.Kind != Dominant {
		t.Fatalf("kind = %v, want Dominant", b.Kind)
	}
	if b.Primary != red || b.Secondary != blue {
		t.Errorf("primary/secondary = %v/%v", b.Primary, b.Secondary)
	}
}

func TestClassifyDayBlend_Balanced(t *testing.T) {
	b := ClassifyDayBlend([]Entry{{Color: red, Weight: 5}, {Color: blue, Weight: 5}}, gray)
	if b.Kind != Balanced {
		t.Fatalf("kind = %v, want Balanced", b.Kind)
	}
	if math.Abs(b.Ratio-0.5) > 1e-9 {
		t.Errorf("ratio = %f, want 0.5", b.Ratio)
	}
	if b.HasAccent {
		t.Error("no third entry but accent attached")
	}
}

func TestClassifyDayBlend_Accent(t *testing.T) {
	t.Run("third above threshold attaches", func(t *testing.T) {
		// 2/(5+5+2) ≈ 0.167 >= 0.12
		b := ClassifyDayBlend([]Entry{
			{Color: red, Weight: 5}, {Color: blue, Weight: 5}, {Color: green, Weight: 2},
		}, gray)
		if b.Kind != Balanced || !b.HasAccent || b.Accent != green {
			t.Errorf("got kind=%v hasAccent=%v", b.Kind, b.HasAccent)
		}
	})

	t.Run("third below threshold ignored", func(t *testing.T) {
		// 1/(5+5+1) ≈ 0.091 < 0.12
		b := ClassifyDayBlend([]Entry{
			{Color: red, Weight: 5}, {Color: blue, Weight: 5}, {Color: green, Weight: 1},
		}, gray)
		if b.HasAccent {
			t.Error("accent attached below threshold")
		}
	})
}

func TestClassifyDayBlend_OrderIndependent(t *testing.T) {
	fwd := ClassifyDayBlend([]Entry{{Color: red, Weight: 7}, {Color: blue, Weight: 3}}, gray)
	rev := ClassifyDayBlend([]Entry{{Color: blue, Weight: 3}, {Color: red, Weight: 7}}, gray)
	if fwd != rev {
		t.Errorf("classification depends on input order: %v vs %v", fwd, rev)
	}
}

func TestBlendColor_StaysChromatic(t *testing.T) {
	// A 50/50 Oklab blend of yellow and blue must not collapse to the
	// neutral gray a linear RGB average would give.
	b := ClassifyDayBlend([]Entry{{Color: yellow, Weight: 5}, {Color: blue, Weight: 5}}, gray)
	mixed := b.Color()

	lin := Shade(yellow, blue, 0.5)
	_, satMixed, _ := mixed.Hsv()
	_, satLin, _ := lin.Hsv()
	if satMixed <= satLin {
		t.Errorf("Oklab blend saturation %f not above linear average %f", satMixed, satLin)
	}
	if satMixed < 0.15 {
		t.Errorf("blend desaturated to near-gray: saturation %f", satMixed)
	}
}

func TestBlendColor_PurePassthrough(t *testing.T) {
	b := Blend{Kind: Pure, Primary: red}
	if got := b.Color(); got != red {
		t.Errorf("pure blend changed the color: %v", got)
	}
}

func TestIntensity(t *testing.T) {
	const minVis = 0.2

	t.Run("zero value sits at floor", func(t *testing.T) {
		if got := Intensity(0, 100, minVis); got != minVis {
			t.Errorf("Intensity = %f, want %f", got, minVis)
		}
	})

	t.Run("max value reaches 1", func(t *testing.T) {
		if got := Intensity(100, 100, minVis); math.Abs(got-1) > 1e-9 {
			t.Errorf("Intensity = %f, want 1", got)
		}
	})

	t.Run("logarithmic midpoint above linear", func(t *testing.T) {
		got := Intensity(10, 100, minVis)
		linear := minVis + (1-minVis)*0.1
		if got <= linear {
			t.Errorf("log scaling %f not above linear %f", got, linear)
		}
	})

	t.Run("monotonic", func(t *testing.T) {
		prev := 0.0
		for v := 1.0; v <= 100; v += 7 {
			cur := Intensity(v, 100, minVis)
			if cur < prev {
				t.Fatalf("Intensity not monotonic at %f", v)
			}
			prev = cur
		}
	})
}

func TestResolveBackground(t *testing.T) {
	noEnv := func(string) string { return "" }

	t.Run("theme wins", func(t *testing.T) {
		got := ResolveBackground("#101010", func(string) string { return "15;0" })
		if got.Hex() != "#101010" {
			t.Errorf("got %s, want #101010", got.Hex())
		}
	})

	t.Run("COLORFGBG fallback", func(t *testing.T) {
		got := ResolveBackground("", func(k string) string {
			if k == "COLORFGBG" {
				return "15;0"
			}
			return ""
		})
		if got.Hex() != "#000000" {
			t.Errorf("got %s, want #000000", got.Hex())
		}
	})

	t.Run("three-field COLORFGBG uses last", func(t *testing.T) {
		got := ResolveBackground("", func(string) string { return "0;default;15" })
		if got.Hex() != "#ffffff" {
			t.Errorf("got %s, want #ffffff", got.Hex())
		}
	})

	t.Run("default when nothing set", func(t *testing.T) {
		if got := ResolveBackground("", noEnv); got.Hex() != DefaultBackground {
			t.Errorf("got %s, want %s", got.Hex(), DefaultBackground)
		}
	})

	t.Run("garbage COLORFGBG ignored", func(t *testing.T) {
		if got := ResolveBackground("", func(string) string { return "lolwut" }); got.Hex() != DefaultBackground {
			t.Errorf("got %s, want %s", got.Hex(), DefaultBackground)
		}
	})
}

func TestShade(t *testing.T) {
	bg := MustHex("#1a1b2e")

	near := func(a, b colorful.Color) bool {
		return math.Abs(a.R-b.R) < 1e-9 && math.Abs(a.G-b.G) < 1e-9 && math.Abs(a.B-b.B) < 1e-9
	}

	if got := Shade(bg, red, 0); !near(got, bg.Clamped()) {
		t.Errorf("frac 0 moved off the background: %v", got)
	}
	if got := Shade(bg, red, 1); !near(got, red.Clamped()) {
		t.Errorf("frac 1 did not reach the hue: %v", got)
	}
	if got := Shade(bg, red, -2); !near(got, Shade(bg, red, 0)) {
		t.Errorf("negative frac not clamped: %v", got)
	}
	if got := Shade(bg, red, 5); !near(got, Shade(bg, red, 1)) {
		t.Errorf("frac above 1 not clamped: %v", got)
	}

	// The midpoint mixes in linear light, not in gamma-encoded sRGB.
	r1, g1, b1 := bg.LinearRgb()
	r2, g2, b2 := red.LinearRgb()
	want := colorful.LinearRgb((r1+r2)/2, (g1+g2)/2, (b1+b2)/2).Clamped()
	got := Shade(bg, red, 0.5)
	if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 || math.Abs(got.B-want.B) > 1e-9 {
		t.Errorf("midpoint %v, want linear-light mix %v", got, want)
	}
}
