package domain

// UsageRecord is one assistant-authored message recovered from a session
// log. Date is the local calendar day ("2006-01-02") derived from the
// message timestamp, or the session start when the message carries none.
type UsageRecord struct {
	ModelKey string // "vendor/family"
	Cost     float64
	Tokens   int
	Date     string
}

// LogFile is one append-only session log. Records keep file order, which
// is chronological within a session.
type LogFile struct {
	Path    string
	Records []UsageRecord
}

// Provider returns the vendor half of a model key.
func Provider(modelKey string) string {
	for i := 0; i < len(modelKey); i++ {
		if modelKey[i] == '/' {
			return modelKey[:i]
		}
	}
	return modelKey
}

// Family returns the family half of a model key, with the provider prefix
// stripped for display.
func Family(modelKey string) string {
	for i := 0; i < len(modelKey); i++ {
		if modelKey[i] == '/' {
			return modelKey[i+1:]
		}
	}
	return modelKey
}
