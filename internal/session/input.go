package session

// InputBuffer holds the command line being typed. Runes are stored whole so
// the buffer never exposes a partial UTF-8 sequence.
type InputBuffer struct {
	runes []rune
}

// Insert appends r to the end of the buffer. Any rune is accepted.
func (b *InputBuffer) Insert(r rune) {
	b.runes = append(b.runes, r)
}

// Append inserts each rune in order.
func (b *InputBuffer) Append(runes []rune) {
	for _, r := range runes {
		b.Insert(r)
	}
}

// DeleteLast removes the last rune. It is a no-op on an empty buffer.
func (b *InputBuffer) DeleteLast() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Reset clears the buffer.
func (b *InputBuffer) Reset() {
	b.runes = b.runes[:0]
}

// Value returns the buffer contents.
func (b *InputBuffer) Value() string {
	return string(b.runes)
}

// Len returns the number of runes in the buffer.
func (b *InputBuffer) Len() int {
	return len(b.runes)
}
