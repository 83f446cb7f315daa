package scanner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/anomredux/usage-cal/internal/domain"
	"github.com/anomredux/usage-cal/internal/modelid"
	"github.com/anomredux/usage-cal/internal/timeutil"
)

// parseState carries the per-file fallbacks accumulated while streaming:
// the session start timestamp and the most recent model_change marker.
type parseState struct {
	sessionStart time.Time
	hasStart     bool
	lastProvider string
	lastModel    string
}

// ParseReader streams one session log line by line. Malformed lines are
// skipped silently; only assistant-authored messages yield records; a
// record needs a resolvable timestamp (message, entry, session start) or
// it is discarded. Records dated before floorKey are dropped. The context
// is checked between lines so a cancel unwinds promptly mid-file.
func ParseReader(ctx context.Context, r io.Reader, floorKey string) ([]domain.UsageRecord, error) {
	var records []domain.UsageRecord
	var state parseState

	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line

	for scan.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := scan.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry rawEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}

		switch entry.Type {
		case "session":
			if entry.Timestamp.Set {
				state.sessionStart = entry.Timestamp.Value
				state.hasStart = true
			}
		case "model_change":
			if p, ok := firstString(&entry, providerChain); ok {
				state.lastProvider = p
			}
			if m, ok := firstString(&entry, modelChain); ok {
				state.lastModel = m
			}
		case "message":
			if rec, ok := buildRecord(&entry, state); ok && rec.Date >= floorKey {
				records = append(records, rec)
			}
		}
	}
	// A scanner error means an unreadable tail; keep what parsed cleanly.
	_ = scan.Err()

	return records, nil
}

// buildRecord finalizes one assistant message into a UsageRecord.
func buildRecord(entry *rawEntry, state parseState) (domain.UsageRecord, bool) {
	if extractRole(entry) != "assistant" {
		return domain.UsageRecord{}, false
	}

	ts, ok := extractTimestamp(entry)
	if !ok {
		if !state.hasStart {
			return domain.UsageRecord{}, false // no resolvable timestamp
		}
		ts = state.sessionStart
	}

	model, ownModel := firstString(entry, modelChain)
	if !ownModel {
		model = state.lastModel
	}
	provider, ok := firstString(entry, providerChain)
	if !ok && !ownModel {
		// The marker's provider only speaks for the marker's model. A
		// message naming its own model resolves its vendor itself.
		provider = state.lastProvider
	}
	if model == "" {
		model = "unknown"
	}
	id := modelid.Resolve(provider, model)

	cost := extractCost(entry)
	if cost < 0 {
		cost = 0
	}
	tokens := extractTokens(entry)
	if tokens < 0 {
		tokens = 0
	}

	return domain.UsageRecord{
		ModelKey: id.Key(),
		Cost:     cost,
		Tokens:   tokens,
		Date:     timeutil.DayKey(ts.Local()),
	}, true
}
