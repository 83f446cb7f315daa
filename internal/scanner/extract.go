package scanner

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Historical log schemas moved usage fields around: flat on the entry,
// nested under the message object, cost as a number, a string, or an
// object with a "total". Each logical field gets an ordered extractor
// chain with first-non-empty-wins semantics instead of ad hoc existence
// checks scattered through the parser.

// flexNumber accepts a JSON number or a numeric string.
type flexNumber struct {
	Value float64
	Set   bool
}

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil // tolerate, the chain moves on
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			f.Value, f.Set = v, true
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		f.Value, f.Set = v, true
	}
	return nil
}

// flexCost additionally accepts {"total": <number|string>}.
type flexCost struct {
	Value float64
	Set   bool
}

func (f *flexCost) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		var nested struct {
			Total flexNumber `json:"total"`
		}
		if err := json.Unmarshal(data, &nested); err == nil && nested.Total.Set {
			f.Value, f.Set = nested.Total.Value, true
		}
		return nil
	}
	var n flexNumber
	if err := n.UnmarshalJSON(data); err == nil && n.Set {
		f.Value, f.Set = n.Value, true
	}
	return nil
}

// flexTime accepts an RFC3339(-ish) string or an epoch-milliseconds number.
type flexTime struct {
	Value time.Time
	Set   bool
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				f.Value, f.Set = ts, true
				return nil
			}
		}
		return nil
	}
	var ms float64
	if err := json.Unmarshal(data, &ms); err == nil && ms > 0 {
		f.Value, f.Set = time.UnixMilli(int64(ms)), true
	}
	return nil
}

type rawUsage struct {
	TotalTokens      flexNumber `json:"totalTokens"`
	Total            flexNumber `json:"total_tokens"`
	Input            flexNumber `json:"input"`
	Output           flexNumber `json:"output"`
	PromptTokens     flexNumber `json:"prompt_tokens"`
	CompletionTokens flexNumber `json:"completion_tokens"`
	CacheRead        flexNumber `json:"cacheRead"`
	CacheWrite       flexNumber `json:"cacheWrite"`
	Cost             flexCost   `json:"cost"`
}

type rawMessage struct {
	Role      string    `json:"role"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	ModelID   string    `json:"modelId"`
	Timestamp flexTime  `json:"timestamp"`
	Tokens    flexNumber `json:"tokens"`
	Usage     *rawUsage `json:"usage"`
	Cost      flexCost  `json:"cost"`
}

type rawEntry struct {
	Type      string      `json:"type"`
	Role      string      `json:"role"`
	Timestamp flexTime    `json:"timestamp"`
	Provider  string      `json:"provider"`
	Model     string      `json:"model"`
	ModelID   string      `json:"modelId"`
	Tokens    flexNumber  `json:"tokens"`
	Usage     *rawUsage   `json:"usage"`
	Cost      flexCost    `json:"cost"`
	Message   *rawMessage `json:"message"`
}

type stringExtractor func(*rawEntry) (string, bool)

func firstString(e *rawEntry, chain []stringExtractor) (string, bool) {
	for _, fn := range chain {
		if v, ok := fn(e); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

var modelChain = []stringExtractor{
	func(e *rawEntry) (string, bool) { return e.Model, e.Model != "" },
	func(e *rawEntry) (string, bool) { return e.ModelID, e.ModelID != "" },
	func(e *rawEntry) (string, bool) {
		if e.Message == nil {
			return "", false
		}
		return e.Message.Model, e.Message.Model != ""
	},
	func(e *rawEntry) (string, bool) {
		if e.Message == nil {
			return "", false
		}
		return e.Message.ModelID, e.Message.ModelID != ""
	},
}

var providerChain = []stringExtractor{
	func(e *rawEntry) (string, bool) { return e.Provider, e.Provider != "" },
	func(e *rawEntry) (string, bool) {
		if e.Message == nil {
			return "", false
		}
		return e.Message.Provider, e.Message.Provider != ""
	},
}

// extractRole checks both locations; the assistant filter runs on this.
func extractRole(e *rawEntry) string {
	if e.Role != "" {
		return e.Role
	}
	if e.Message != nil {
		return e.Message.Role
	}
	return ""
}

// extractTimestamp prefers the message's own timestamp over the entry's.
func extractTimestamp(e *rawEntry) (time.Time, bool) {
	if e.Message != nil && e.Message.Timestamp.Set {
		return e.Message.Timestamp.Value, true
	}
	if e.Timestamp.Set {
		return e.Timestamp.Value, true
	}
	return time.Time{}, false
}

// usageTokens resolves one usage object: direct total, nested total, or
// the prompt+completion (or input+output, plus cache) sum.
func usageTokens(u *rawUsage) (int, bool) {
	if u == nil {
		return 0, false
	}
	if u.TotalTokens.Set {
		return int(u.TotalTokens.Value), true
	}
	if u.Total.Set {
		return int(u.Total.Value), true
	}
	if u.Input.Set || u.Output.Set {
		sum := u.Input.Value + u.Output.Value + u.CacheRead.Value + u.CacheWrite.Value
		return int(sum), true
	}
	if u.PromptTokens.Set || u.CompletionTokens.Set {
		return int(u.PromptTokens.Value + u.CompletionTokens.Value), true
	}
	return 0, false
}

// extractTokens walks flat fields and both usage locations.
func extractTokens(e *rawEntry) int {
	if e.Tokens.Set {
		return int(e.Tokens.Value)
	}
	if e.Message != nil && e.Message.Tokens.Set {
		return int(e.Message.Tokens.Value)
	}
	if n, ok := usageTokens(e.Usage); ok {
		return n
	}
	if e.Message != nil {
		if n, ok := usageTokens(e.Message.Usage); ok {
			return n
		}
	}
	return 0
}

// extractCost walks flat cost, message cost, then usage-nested cost.
func extractCost(e *rawEntry) float64 {
	if e.Cost.Set {
		return e.Cost.Value
	}
	if e.Message != nil && e.Message.Cost.Set {
		return e.Message.Cost.Value
	}
	if e.Usage != nil && e.Usage.Cost.Set {
		return e.Usage.Cost.Value
	}
	if e.Message != nil && e.Message.Usage != nil && e.Message.Usage.Cost.Set {
		return e.Message.Usage.Cost.Value
	}
	return 0
}
