package state

import "unicode"

// Query is the search input: the text plus a rune cursor in [0, len].
type Query struct {
	text   []rune
	cursor int
}

// Text returns the query string.
func (q *Query) Text() string {
	return string(q.text)
}

// Len returns the query length in runes.
func (q *Query) Len() int {
	return len(q.text)
}

// Cursor returns the rune offset of the caret.
func (q *Query) Cursor() int {
	if q.cursor < 0 {
		return 0
	}
	if q.cursor > len(q.text) {
		return len(q.text)
	}
	return q.cursor
}

// AtEnd reports whether the caret sits after the last rune.
func (q *Query) AtEnd() bool {
	return q.Cursor() == len(q.text)
}

// SetText replaces the query and moves the caret to the end.
func (q *Query) SetText(text string) {
	q.text = []rune(text)
	q.cursor = len(q.text)
}

// Reset clears the query.
func (q *Query) Reset() {
	q.text = nil
	q.cursor = 0
}

// Insert adds text at the caret.
func (q *Query) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	pos := q.Cursor()
	updated := make([]rune, 0, len(q.text)+len(insert))
	updated = append(updated, q.text[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, q.text[pos:]...)
	q.text = updated
	q.cursor = pos + len(insert)
	return true
}

// Backspace deletes the rune before the caret.
func (q *Query) Backspace() bool {
	pos := q.Cursor()
	if pos == 0 {
		return false
	}
	q.text = append(q.text[:pos-1:pos-1], q.text[pos:]...)
	q.cursor = pos - 1
	return true
}

// DeleteWordBackward deletes the word preceding the caret.
func (q *Query) DeleteWordBackward() bool {
	pos := q.Cursor()
	if pos == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(q.text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(q.text[i-1]) {
		i--
	}
	q.text = append(q.text[:i:i], q.text[pos:]...)
	q.cursor = i
	return true
}

// Left moves the caret one rune back.
func (q *Query) Left() bool {
	pos := q.Cursor()
	if pos == 0 {
		return false
	}
	q.cursor = pos - 1
	return true
}

// Right moves the caret one rune forward.
func (q *Query) Right() bool {
	pos := q.Cursor()
	if pos >= len(q.text) {
		return false
	}
	q.cursor = pos + 1
	return true
}

// Start moves the caret to the beginning.
func (q *Query) Start() bool {
	if q.Cursor() == 0 {
		return false
	}
	q.cursor = 0
	return true
}

// End moves the caret after the last rune.
func (q *Query) End() bool {
	if q.AtEnd() {
		return false
	}
	q.cursor = len(q.text)
	return true
}
