// Package query holds the single-line, cursor-addressable text buffer that
// feeds the layout matcher.
package query

// Buffer stores the query text and a rune-indexed cursor. The cursor always
// satisfies 0 <= cursor <= Len() once an operation returns.
type Buffer struct {
	text   []rune
	cursor int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// String returns the current query text.
func (b *Buffer) String() string {
	return string(b.text)
}

// Len returns the query length in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Cursor returns the cursor position clamped to the buffer bounds.
func (b *Buffer) Cursor() int {
	if b.cursor < 0 {
		return 0
	}
	if b.cursor > len(b.text) {
		return len(b.text)
	}
	return b.cursor
}

// Split returns the text before and after the cursor.
func (b *Buffer) Split() (string, string) {
	pos := b.Cursor()
	return string(b.text[:pos]), string(b.text[pos:])
}

// Insert places r at the cursor and advances the cursor by one. An empty
// buffer always inserts at position zero, whatever cursor value was stored.
func (b *Buffer) Insert(r rune) bool {
	if len(b.text) == 0 {
		b.text = []rune{r}
		b.cursor = 1
		return true
	}
	pos := b.Cursor()
	updated := make([]rune, 0, len(b.text)+1)
	updated = append(updated, b.text[:pos]...)
	updated = append(updated, r)
	updated = append(updated, b.text[pos:]...)
	b.text = updated
	b.cursor = pos + 1
	return true
}

// DeleteBeforeCursor removes the rune immediately before the cursor. It does
// nothing at the start of the buffer.
func (b *Buffer) DeleteBeforeCursor() bool {
	pos := b.Cursor()
	if pos == 0 || len(b.text) == 0 {
		b.cursor = pos
		return false
	}
	b.text = append(b.text[:pos-1], b.text[pos:]...)
	b.cursor = pos - 1
	return true
}

// MoveLeft moves the cursor one rune backward.
func (b *Buffer) MoveLeft() bool {
	pos := b.Cursor()
	if pos == 0 {
		b.cursor = 0
		return false
	}
	b.cursor = pos - 1
	return true
}

// MoveRight moves the cursor one rune forward.
func (b *Buffer) MoveRight() bool {
	pos := b.Cursor()
	if pos >= len(b.text) {
		b.cursor = len(b.text)
		return false
	}
	b.cursor = pos + 1
	return true
}
