package wfq

import "math"

// tagPacket implements component C, the Parekh-Gallager virtual-time
// recurrence: given the scheduler's current virtual time v and the channel
// a packet of length length is arriving on, compute the packet's start tag
// S = max(v, C.F_last) and finish tag F = S + length/C.weight, record F as
// the channel's new F_last, and return F.
//
// Weight updates must be applied to c.weight by the caller before calling
// tagPacket for the packet that carries the update, so the update is
// reflected in this computation.
func tagPacket(v float64, c *Channel, length uint64) float64 {
	start := math.Max(v, c.lastFinish)
	finish := start + float64(length)/c.weight
	c.lastFinish = finish
	return finish
}
