package state

// Cursor is a selection index into a list of n items plus the first visible
// row. Index is -1 when nothing is selected.
type Cursor struct {
	Index  int
	Offset int
}

// NoSelection is the Index value of an empty cursor.
const NoSelection = -1

// Valid reports whether the cursor addresses an item of a list of n.
func (c *Cursor) Valid(n int) bool {
	return c.Index >= 0 && c.Index < n
}

// Reset selects the first item, or nothing for an empty list.
func (c *Cursor) Reset(n int) {
	c.Offset = 0
	if n == 0 {
		c.Index = NoSelection
		return
	}
	c.Index = 0
}

// Next moves down one item, wrapping from the last item to the first.
func (c *Cursor) Next(n int) bool {
	if n == 0 {
		c.Index = NoSelection
		return false
	}
	old := c.Index
	if c.Index < 0 || c.Index >= n-1 {
		c.Index = 0
	} else {
		c.Index++
	}
	return old != c.Index
}

// Prev moves up one item, wrapping from the first item to the last.
func (c *Cursor) Prev(n int) bool {
	if n == 0 {
		c.Index = NoSelection
		return false
	}
	old := c.Index
	if c.Index <= 0 || c.Index >= n {
		c.Index = n - 1
	} else {
		c.Index--
	}
	return old != c.Index
}

// Home moves to the first item.
func (c *Cursor) Home(n int) bool {
	if n == 0 {
		c.Index = NoSelection
		return false
	}
	old := c.Index
	c.Index = 0
	return old != c.Index
}

// End moves to the last item.
func (c *Cursor) End(n int) bool {
	if n == 0 {
		c.Index = NoSelection
		return false
	}
	old := c.Index
	c.Index = n - 1
	return old != c.Index
}

// Set selects index i when it is in range.
func (c *Cursor) Set(i, n int) bool {
	if i < 0 || i >= n {
		return false
	}
	c.Index = i
	return true
}

// EnsureVisible adjusts Offset so the selected row is inside a window of
// maxVisible rows.
func (c *Cursor) EnsureVisible(n, maxVisible int) {
	if n == 0 {
		c.Index = NoSelection
		c.Offset = 0
		return
	}
	if c.Index >= n {
		c.Index = n - 1
	}
	if maxVisible <= 0 {
		c.Offset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.Offset > maxOffset {
		c.Offset = maxOffset
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.Index < 0 {
		return
	}
	if c.Index < c.Offset {
		c.Offset = c.Index
	}
	if upper := c.Offset + maxVisible - 1; c.Index > upper {
		c.Offset = c.Index - maxVisible + 1
		if c.Offset > maxOffset {
			c.Offset = maxOffset
		}
	}
}
