package domain

import (
	"math"
	"sort"

	"github.com/anomredux/usage-cal/internal/modelid"
)

// Row is one line of a breakdown table, keyed by provider or by model
// family. Share is an independently rounded integer percentage of the
// window total, so a table's shares may sum to 99 or 101.
type Row struct {
	Name     string
	Sessions int
	Messages int
	Tokens   int
	Cost     float64
	Share    int
}

// rowAccum tracks a group under construction plus its contributing files.
type rowAccum struct {
	row   Row
	files map[string]struct{}
}

func breakdown(files []LogFile, cutoff string, key func(modelKey string) string) []Row {
	groups := make(map[string]*rowAccum)

	for _, f := range files {
		for _, r := range f.Records {
			if r.Date < cutoff {
				continue
			}
			name := key(r.ModelKey)
			g, ok := groups[name]
			if !ok {
				g = &rowAccum{row: Row{Name: name}, files: make(map[string]struct{})}
				groups[name] = g
			}
			g.row.Messages++
			g.row.Tokens += r.Tokens
			g.row.Cost += r.Cost
			g.files[f.Path] = struct{}{}
		}
	}

	rows := make([]Row, 0, len(groups))
	totalCost, totalMessages := 0.0, 0
	for _, g := range groups {
		g.row.Sessions = len(g.files)
		rows = append(rows, g.row)
		totalCost += g.row.Cost
		totalMessages += g.row.Messages
	}

	// Cost orders the table when any is present; message count otherwise.
	// Ties break by count, then name.
	byCost := totalCost > 0
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if byCost && a.Cost != b.Cost {
			return a.Cost > b.Cost
		}
		if a.Messages != b.Messages {
			return a.Messages > b.Messages
		}
		return a.Name < b.Name
	})

	for i := range rows {
		if byCost {
			rows[i].Share = int(math.Round(rows[i].Cost / totalCost * 100))
		} else if totalMessages > 0 {
			rows[i].Share = int(math.Round(float64(rows[i].Messages) / float64(totalMessages) * 100))
		}
	}

	return rows
}

// ComputeProviderBreakdown groups in-window records by canonical provider.
func ComputeProviderBreakdown(files []LogFile, cutoff string) []Row {
	return breakdown(files, cutoff, func(modelKey string) string {
		return modelid.CanonicalProvider(Provider(modelKey))
	})
}

// ComputeModelBreakdown groups in-window records by display family.
func ComputeModelBreakdown(files []LogFile, cutoff string) []Row {
	return breakdown(files, cutoff, Family)
}
