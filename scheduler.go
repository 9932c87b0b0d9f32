package wfq

// scheduler.go holds the Scheduler value that owns the channel table, the
// ready heap, virtual time, and the look-ahead slot, and drives the
// interleaved read/select/emit loop.

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Scheduler is a single run of the WFQ transducer. Construct one with
// NewScheduler per input stream; a Scheduler is not reusable once
// RunToCompletion returns, and is not safe for concurrent use.
type Scheduler struct {
	table *channelTable
	ready *readyHeap
	src   *lineSource

	v   float64 // system virtual time
	tau uint64  // simulated-now

	trace  *RunTrace
	served []uint64 // bytes emitted so far, indexed by Channel.Index()
}

// NewScheduler returns a Scheduler that will read arrivals from r, using
// cfg's default channel weight for channels not yet assigned an explicit
// weight. Pass DefaultConfig() to get the core transducer's exact
// behavior.
func NewScheduler(r io.Reader, cfg Config) *Scheduler {
	return &Scheduler{
		table: newChannelTable(cfg.DefaultWeight),
		ready: newReadyHeap(),
		src:   newLineSource(r),
	}
}

// SetTrace attaches an execution trace. A nil trace (the default) disables
// tracing entirely; callers only need to call this when --trace is active.
func (s *Scheduler) SetTrace(t *RunTrace) {
	s.trace = t
}

// Channels exposes the channel table for end-of-run reporting. It
// should only be read after RunToCompletion returns.
func (s *Scheduler) Channels() []*Channel {
	return s.table.channels()
}

// BytesServed reports the total bytes emitted per channel, indexed by
// Channel.Index(), for use by BuildFairnessReport. It should only be read
// after RunToCompletion returns.
func (s *Scheduler) BytesServed() []uint64 {
	return s.served
}

func (s *Scheduler) accountService(idx int, length uint64) {
	for len(s.served) <= idx {
		s.served = append(s.served, 0)
	}
	s.served[idx] += length
}

// absorb folds a single arrival into the scheduler: look up or create the
// owning channel, apply an explicit weight update, append the packet to
// the channel's FIFO, and tag+push it if it became the new head of a
// previously empty queue.
func (s *Scheduler) absorb(a *Arrival) {
	c := s.table.lookupOrCreate(a.Key())
	if a.HasWeight {
		c.weight = a.Weight
	}

	p := &queuedPacket{
		arrivalTime: a.Time,
		length:      a.Length,
		weight:      a.Weight,
		hasWeight:   a.HasWeight,
	}

	wasEmpty := c.empty()
	c.enqueue(p)
	if wasEmpty {
		p.finishTag = tagPacket(s.v, c, p.length)
		s.ready.pushEntry(p.finishTag, c)
	}
}

// readUntil consumes arrivals in input order while the look-ahead arrival's
// T satisfies T <= tMax, absorbing each. It returns the count consumed.
func (s *Scheduler) readUntil(tMax uint64) (int, error) {
	count := 0
	for {
		a, err := s.src.peek()
		if err != nil {
			return count, err
		}
		if a == nil || a.Time > tMax {
			return count, nil
		}
		s.src.take()
		s.absorb(a)
		count++
	}
}

// readBatch pulls exactly the set of simultaneously-arriving packets at the
// earliest unconsumed T, or does nothing if input is exhausted.
func (s *Scheduler) readBatch() (int, error) {
	a, err := s.src.peek()
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 0, nil
	}
	return s.readUntil(a.Time)
}

// readAllUpTo repeatedly invokes readUntil(tMax) until it consumes zero,
// draining arrivals across multiple batch boundaries up to the bound.
func (s *Scheduler) readAllUpTo(tMax uint64) (int, error) {
	total := 0
	for {
		n, err := s.readUntil(tMax)
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
		total += n
	}
}

// RunToCompletion drives the main scheduling loop to exhaustion, writing one
// output line per transmitted packet to w. It returns a non-nil error for a
// MalformedLineError from the underlying input, or when reading the input or
// writing to w fails; every other internal condition that would indicate a
// bug in the scheduler panics instead.
func (s *Scheduler) RunToCompletion(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for {
		if s.ready.empty() {
			n, err := s.readBatch()
			if err != nil {
				return err
			}
			if n == 0 {
				return bw.Flush()
			}
			top := (*s.ready)[0]
			s.tau = top.channel.front().arrivalTime
		}

		entry := s.ready.popEntry()
		c := entry.channel
		s.v = math.Max(s.v, entry.finishTag)

		p := c.dequeue()
		if _, err := fmt.Fprintln(bw, formatLine(s.tau, c.key, p)); err != nil {
			return err
		}
		if s.trace != nil {
			s.trace.record(c.index, entry.finishTag, s.tau)
		}
		s.accountService(c.index, p.length)
		s.tau += p.length

		if !c.empty() {
			head := c.front()
			head.finishTag = tagPacket(s.v, c, head.length)
			s.ready.pushEntry(head.finishTag, c)
		}

		if _, err := s.readAllUpTo(s.tau); err != nil {
			return err
		}
	}
}
