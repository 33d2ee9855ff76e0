package button

// Chain reads through an ordered list of accessors, defaulting to released.
//
// Each Read tries the accessors in order and returns the first successful
// result. If every accessor fails, the read collapses to "not pressed"
// instead of surfacing an error; the next poll retries the whole chain.
// Read never returns a non-nil error.
type Chain struct {
	readers []Reader
}

// NewChain creates a Chain over the given accessors, tried in order.
// A chain with no accessors always reads released.
func NewChain(readers ...Reader) *Chain {
	return &Chain{readers: readers}
}

// Read returns the first accessor's successful result, or false if all fail.
func (c *Chain) Read() (bool, error) {
	for _, r := range c.readers {
		pressed, err := r.Read()
		if err == nil {
			return pressed, nil
		}
	}
	return false, nil
}

// Close closes every accessor. The first error wins.
func (c *Chain) Close() error {
	var first error
	for _, r := range c.readers {
		if err := r.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
