package diagnostic

// Collector accumulates diagnostics for one top-level item so that
// checking can continue past the first failure: the compiler does not
// halt at the first error within an item.
type Collector struct {
	items []*Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report records a diagnostic, preserving discovery order.
func (c *Collector) Report(d *Diagnostic) {
	if d == nil {
		return
	}
	c.items = append(c.items, d)
}

// HasErrors reports whether any diagnostic was recorded.
func (c *Collector) HasErrors() bool { return len(c.items) > 0 }

// Len returns the number of diagnostics recorded so far.
func (c *Collector) Len() int { return len(c.items) }

// Items returns the recorded diagnostics in discovery order.
func (c *Collector) Items() []*Diagnostic {
	out := make([]*Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Finish returns this item's result: nil if no diagnostics, the single
// diagnostic if exactly one, or a MultipleErrors wrapper if two or more.
func (c *Collector) Finish() *Diagnostic {
	switch len(c.items) {
	case 0:
		return nil
	case 1:
		return c.items[0]
	default:
		return Wrap(c.Items())
	}
}
