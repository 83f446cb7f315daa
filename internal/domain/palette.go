package domain

import (
	"sort"

	"github.com/anomredux/usage-cal/internal/modelid"
)

// PaletteSize bounds how many families get their own legend color.
const PaletteSize = 4

// PaletteEntry assigns a display family its vendor-derived color.
type PaletteEntry struct {
	Family string
	Color  string // hex
	Tokens int
}

// UsagePalette is the bounded set of most significant families in a
// window, ordered by descending token volume, plus one reserved color for
// everything outside the top set.
type UsagePalette struct {
	Entries []PaletteEntry
	Other   string // hex
}

// ColorFor returns the palette color for a model key, falling back to the
// reserved "other" color.
func (p UsagePalette) ColorFor(modelKey string) string {
	family := Family(modelKey)
	for _, e := range p.Entries {
		if e.Family == family {
			return e.Color
		}
	}
	return p.Other
}

// ChoosePalette picks the top families by in-window token volume and
// colors each by its vendor. Ties order alphabetically so the palette is
// stable across recomputation.
func ChoosePalette(files []LogFile, cutoff string, otherColor string) UsagePalette {
	type volume struct {
		family string
		vendor string
		tokens int
	}
	byFamily := make(map[string]*volume)

	for _, f := range files {
		for _, r := range f.Records {
			if r.Date < cutoff {
				continue
			}
			family := Family(r.ModelKey)
			v, ok := byFamily[family]
			if !ok {
				v = &volume{family: family, vendor: Provider(r.ModelKey)}
				byFamily[family] = v
			}
			v.tokens += r.Tokens
		}
	}

	volumes := make([]*volume, 0, len(byFamily))
	for _, v := range byFamily {
		volumes = append(volumes, v)
	}
	sort.Slice(volumes, func(i, j int) bool {
		if volumes[i].tokens != volumes[j].tokens {
			return volumes[i].tokens > volumes[j].tokens
		}
		return volumes[i].family < volumes[j].family
	})

	if len(volumes) > PaletteSize {
		volumes = volumes[:PaletteSize]
	}

	p := UsagePalette{Other: otherColor}
	for _, v := range volumes {
		p.Entries = append(p.Entries, PaletteEntry{
			Family: v.family,
			Color:  modelid.VendorColor(v.vendor),
			Tokens: v.tokens,
		})
	}
	return p
}
