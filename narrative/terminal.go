package narrative

import (
	"strings"
	"time"
)

// Kind classifies a terminal line for coloring.
type Kind int

const (
	KindInfo Kind = iota
	KindError
	KindWarning
	KindResult
	KindSecret
	KindProcess
)

// DefaultLogLimit is how many earlier lines survive when a new one is added.
const DefaultLogLimit = 50

// Entry is one time-stamped terminal line.
type Entry struct {
	Text string
	Kind Kind
	At   time.Time
}

// Stamp formats the entry time as HH:MM:SS.
func (e Entry) Stamp() string {
	return e.At.Format("15:04:05")
}

// Classify picks the kind of a line from the first matching marker.
func Classify(text string) Kind {
	switch {
	case strings.Contains(text, "ERRO"), strings.Contains(text, "ERROR"):
		return KindError
	case strings.Contains(text, "ALERTA"), strings.Contains(text, "AVISO"):
		return KindWarning
	case strings.Contains(text, "RESULTADO"):
		return KindResult
	case strings.Contains(text, "SECRETO"):
		return KindSecret
	case strings.Contains(text, "PROCESSO"):
		return KindProcess
	default:
		return KindInfo
	}
}

// TerminalLog is the scrolling system log of the restoration phase.
type TerminalLog struct {
	Limit int
	Clock func() time.Time

	entries []Entry
}

// NewTerminalLog creates a log stamped by clock and seeded with lines.
func NewTerminalLog(clock func() time.Time, seed ...string) *TerminalLog {
	if clock == nil {
		clock = time.Now
	}
	l := &TerminalLog{Limit: DefaultLogLimit, Clock: clock}
	for _, s := range seed {
		l.Add(s)
	}
	return l
}

// Add appends text, keeping at most Limit earlier lines.
func (l *TerminalLog) Add(text string) {
	if drop := len(l.entries) - l.Limit; drop > 0 {
		l.entries = append(l.entries[:0], l.entries[drop:]...)
	}
	l.entries = append(l.entries, Entry{
		Text: text,
		Kind: Classify(text),
		At:   l.Clock(),
	})
}

// Entries returns the lines oldest first. The slice must not be modified.
func (l *TerminalLog) Entries() []Entry {
	return l.entries
}

// Len returns the number of lines.
func (l *TerminalLog) Len() int {
	return len(l.entries)
}

// Tail returns up to n of the most recent lines.
func (l *TerminalLog) Tail(n int) []Entry {
	if n >= len(l.entries) {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}
