package orbit

// apply runs op now when ready, otherwise queues it for Init
func (c *Controls) apply(op func()) {
	if c.ready {
		op()
		return
	}
	c.pending = append(c.pending, op)
}

// flush runs queued mutations once, in call order
func (c *Controls) flush() {
	pending := c.pending
	c.pending = nil
	for _, op := range pending {
		op()
	}
}

// Pending returns the number of mutations waiting for Init
func (c *Controls) Pending() int {
	return len(c.pending)
}
