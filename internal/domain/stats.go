package domain

// DayStats aggregates one calendar day. Totals always equal the sum over
// ModelCounts and the per-record token/cost contributions for the day.
type DayStats struct {
	Date          string
	ModelCounts   map[string]int // modelKey -> message count
	TotalMessages int
	TotalTokens   int
	TotalCost     float64
}

// Stats is the full rollup for one window. Everything here is recomputed
// from scratch on every window change; nothing is incremental.
type Stats struct {
	Days          map[string]*DayStats // day key -> stats
	ModelMessages map[string]int       // modelKey -> messages in window
	SessionCount  int
	TotalMessages int
	TotalTokens   int
	TotalCost     float64
	// MaxDayValue is the largest per-day message count and normalizes
	// the heatmap intensity ramp. Intensity tracks message volume, not
	// cost: an expensive day with few messages renders dim.
	MaxDayValue int
}

// AvgCostPerSession returns totalCost / sessionCount, or 0 with no sessions.
func (s Stats) AvgCostPerSession() float64 {
	if s.SessionCount == 0 {
		return 0
	}
	return s.TotalCost / float64(s.SessionCount)
}

// Day returns the stats for a day key, or nil when the day saw no usage.
func (s Stats) Day(date string) *DayStats {
	return s.Days[date]
}

// ComputeStats folds records dated on or after cutoff into per-day and
// per-model rollups. A file counts as a session only when at least one of
// its records survives the cutoff.
func ComputeStats(files []LogFile, cutoff string) Stats {
	stats := Stats{
		Days:          make(map[string]*DayStats),
		ModelMessages: make(map[string]int),
	}

	for _, f := range files {
		contributed := false
		for _, r := range f.Records {
			if r.Date < cutoff {
				continue
			}
			contributed = true

			day, ok := stats.Days[r.Date]
			if !ok {
				day = &DayStats{Date: r.Date, ModelCounts: make(map[string]int)}
				stats.Days[r.Date] = day
			}
			day.ModelCounts[r.ModelKey]++
			day.TotalMessages++
			day.TotalTokens += r.Tokens
			day.TotalCost += r.Cost
			if day.TotalMessages > stats.MaxDayValue {
				stats.MaxDayValue = day.TotalMessages
			}

			stats.ModelMessages[r.ModelKey]++
			stats.TotalMessages++
			stats.TotalTokens += r.Tokens
			stats.TotalCost += r.Cost
		}
		if contributed {
			stats.SessionCount++
		}
	}

	return stats
}
