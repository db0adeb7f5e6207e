package wildcard

// Clock is the epoch counter shared by every store of one engine.
// Each mutation of a store advances it; caches compare epochs to detect
// staleness.
type Clock struct {
	epoch uint64
}

// NewClock returns a clock at epoch 0.
func NewClock() *Clock { return &Clock{} }

// Tick advances the epoch and returns the new value.
func (c *Clock) Tick() uint64 {
	c.epoch++
	return c.epoch
}

// Now returns the current epoch.
func (c *Clock) Now() uint64 { return c.epoch }
