package boot

// Callback is a hook invoked with the Builder at a fixed point of execution.
type Callback func(b *Builder) error

// Chain is an ordered, append-only list of callbacks.
//
// The zero value is an empty chain ready to use.
type Chain struct {
	callbacks []Callback
}

// Append adds cb to the end of the chain. A nil cb is ignored.
func (c *Chain) Append(cb Callback) {
	if cb == nil {
		return
	}
	c.callbacks = append(c.callbacks, cb)
}

// Len returns the number of registered callbacks.
func (c *Chain) Len() int { return len(c.callbacks) }

// Invoke calls every callback in registration order.
//
// It stops at the first error and returns that error unchanged. Callbacks
// appended while Invoke is running are not called by that invocation.
func (c *Chain) Invoke(b *Builder) error {
	for _, cb := range c.callbacks {
		if err := cb(b); err != nil {
			return err
		}
	}
	return nil
}
