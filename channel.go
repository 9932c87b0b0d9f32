package wfq

// Channel holds the per-connection scheduling state: a stable index
// (assigned in order of first appearance, used only to break
// ties between equal finish tags), the channel's current weight, its
// pending FIFO of not-yet-transmitted packets, and the finish tag of the
// most recently tagged packet on the channel.
//
// A Channel is always reached through a *Channel handle obtained from a
// channelTable, never copied by value: the table and the scheduler's ready
// heap hold the same pointer, so the two structures
// never drift out of sync and never need a repeated lookup by key.
type Channel struct {
	index      int
	key        ConnKey
	weight     float64
	pending    []*queuedPacket
	lastFinish float64
}

// Index reports the channel's 0-based first-appearance ordinal.
func (c *Channel) Index() int { return c.index }

// Weight reports the channel's current weight.
func (c *Channel) Weight() float64 { return c.weight }

func (c *Channel) empty() bool { return len(c.pending) == 0 }

func (c *Channel) front() *queuedPacket {
	return c.pending[0]
}

func (c *Channel) enqueue(p *queuedPacket) {
	c.pending = append(c.pending, p)
}

// dequeue removes and returns the head of the FIFO. The slice header's
// backing array is not compacted on every pop (that would make every
// departure O(n)); lookup_or_create never hands out a stale Channel, so
// retaining the full backing array briefly is harmless.
func (c *Channel) dequeue() *queuedPacket {
	p := c.pending[0]
	c.pending = c.pending[1:]
	return p
}

// channelTable is component B: a mapping from connection-key to Channel,
// plus the monotonic counter that assigns channel-index on first sight of
// a key.
//
// Channels are allocated individually (one *Channel per connection) and
// only ever referenced by pointer: the arena that remembers them in
// first-appearance order is a slice of those pointers, so appending to the
// arena — which does reallocate its own backing array as the table grows —
// never invalidates a Channel that a caller (or the ready heap) is already
// holding a handle to. This gives every Channel a stable handle
// without requiring an address-stable hash table.
type channelTable struct {
	byKey         map[ConnKey]*Channel
	arena         []*Channel
	defaultWeight float64
}

func newChannelTable(defaultWeight float64) *channelTable {
	if defaultWeight <= 0 {
		defaultWeight = 1.0
	}
	return &channelTable{
		byKey:         make(map[ConnKey]*Channel),
		defaultWeight: defaultWeight,
	}
}

// lookupOrCreate returns the Channel for key, creating it with index =
// len(arena), weight defaultWeight, an empty FIFO, and F_last = 0 if this
// is the first time key has been seen.
func (ct *channelTable) lookupOrCreate(key ConnKey) *Channel {
	if c, ok := ct.byKey[key]; ok {
		return c
	}
	c := &Channel{
		index:  len(ct.arena),
		key:    key,
		weight: ct.defaultWeight,
	}
	ct.byKey[key] = c
	ct.arena = append(ct.arena, c)
	return c
}

// channels returns every channel ever seen, in first-appearance (index)
// order. Used only by reporting code; the scheduling loop never
// iterates the table directly.
func (ct *channelTable) channels() []*Channel {
	return ct.arena
}
