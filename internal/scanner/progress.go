package scanner

import "time"

// Phase tags a progress event so the UI can render each stage distinctly.
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseParsing
	PhaseFinalizing
)

// Progress is a tagged update; only the fields relevant to its phase are
// set. Scanning carries FilesFound, parsing carries FilesParsed/TotalFiles
// and the current file name.
type Progress struct {
	Phase       Phase
	FilesFound  int
	FilesParsed int
	TotalFiles  int
	CurrentFile string
}

// ProgressFunc receives throttled progress updates during collection.
type ProgressFunc func(Progress)

// throttle gates progress callbacks so thousands of small files don't
// flood the host UI. Phase transitions always pass.
type throttle struct {
	notify    ProgressFunc
	lastPhase Phase
	lastSent  time.Time
	minGap    time.Duration
}

func newThrottle(notify ProgressFunc) *throttle {
	return &throttle{notify: notify, lastPhase: -1, minGap: 100 * time.Millisecond}
}

func (t *throttle) send(p Progress) {
	if t.notify == nil {
		return
	}
	now := time.Now()
	if p.Phase == t.lastPhase && now.Sub(t.lastSent) < t.minGap {
		return
	}
	t.lastPhase = p.Phase
	t.lastSent = now
	t.notify(p)
}

// force bypasses the rate gate for phase-final updates.
func (t *throttle) force(p Progress) {
	if t.notify == nil {
		return
	}
	t.lastPhase = p.Phase
	t.lastSent = time.Now()
	t.notify(p)
}
