package session

// DefaultMaxLines is the transcript capacity used when none is configured.
const DefaultMaxLines = 20

// EntryKind tells the renderer how to style an entry. It never affects the
// entry text.
type EntryKind int

const (
	EntryOutput EntryKind = iota
	EntryPrompt
	EntrySuccess
	EntryError
)

// Entry is one line of transcript history.
type Entry struct {
	Text string
	Kind EntryKind
}

// Transcript is an ordered log of entries bounded at maxLines. The oldest
// entry is evicted first.
type Transcript struct {
	entries  []Entry
	maxLines int
}

// NewTranscript creates a transcript holding at most maxLines entries.
// Values below 1 fall back to DefaultMaxLines.
func NewTranscript(maxLines int) *Transcript {
	if maxLines < 1 {
		maxLines = DefaultMaxLines
	}
	return &Transcript{
		entries:  make([]Entry, 0, maxLines),
		maxLines: maxLines,
	}
}

// Append adds e at the end, evicting the single oldest entry first when the
// transcript is full.
func (t *Transcript) Append(e Entry) {
	if len(t.entries) == t.maxLines {
		copy(t.entries, t.entries[1:])
		t.entries = t.entries[:len(t.entries)-1]
	}
	t.entries = append(t.entries, e)
}

// Clear removes every entry.
func (t *Transcript) Clear() {
	t.entries = t.entries[:0]
}

// Entries returns a copy of the entries, oldest first.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries held.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Cap returns the maximum number of entries.
func (t *Transcript) Cap() int {
	return t.maxLines
}
