package logic

// Cursor is the highlighted position in a list of n items. Every method takes
// the current list length so the cursor never outlives the list it indexes.
type Cursor struct {
	index int
}

// Index returns the highlighted position
func (c *Cursor) Index() int {
	return c.index
}

// Advance moves down one row, wrapping from the last row to the first
func (c *Cursor) Advance(n int) {
	if n == 0 {
		return
	}
	c.index = (c.index + 1) % n
}

// Retreat moves up one row, wrapping from the first row to the last
func (c *Cursor) Retreat(n int) {
	if n == 0 {
		return
	}
	c.index = (c.index - 1 + n) % n
}

// Reset moves back to the first row
func (c *Cursor) Reset() {
	c.index = 0
}
