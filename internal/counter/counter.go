// Package counter is the tally widget: a single value that never drops below zero.
package counter

// Counter holds a non-negative tally.
type Counter struct {
	value int
}

func New(start int) *Counter {
	c := &Counter{}
	c.Set(start)
	return c
}

func (c *Counter) Value() int { return c.value }

func (c *Counter) Increment() int {
	c.value++
	return c.value
}

// Decrement lowers the tally, stopping at zero.
func (c *Counter) Decrement() int {
	c.value = max(0, c.value-1)
	return c.value
}

func (c *Counter) Reset() {
	c.value = 0
}

// Set restores a stored value; negatives clamp to zero.
func (c *Counter) Set(n int) {
	c.value = max(0, n)
}
