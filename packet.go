package wfq

import "fmt"

// ConnKey identifies a connection (a flow sharing one source/destination
// address/port 4-tuple). Lexical equality of the composed string defines
// connection identity; the four fields are never inspected individually
// once an Arrival has been parsed.
type ConnKey string

// connKey composes the four address/port tokens into the canonical
// connection-key, preserving input order and single-space separation.
func connKey(srcAddr, srcPort, dstAddr, dstPort string) ConnKey {
	return ConnKey(srcAddr + " " + srcPort + " " + dstAddr + " " + dstPort)
}

// Arrival is one parsed input line: a packet entering the scheduler at
// time T on some connection. It is immutable once parsed and is consumed
// by the batch reader, which copies the fields it needs into a queuedPacket
// and discards the Arrival itself.
type Arrival struct {
	Time      uint64
	SrcAddr   string
	SrcPort   string
	DstAddr   string
	DstPort   string
	Length    uint64
	Weight    float64 // meaningful only if HasWeight
	HasWeight bool
}

// Key returns the connection-key this arrival belongs to.
func (a *Arrival) Key() ConnKey {
	return connKey(a.SrcAddr, a.SrcPort, a.DstAddr, a.DstPort)
}

// queuedPacket is a packet that has been absorbed into a channel's FIFO.
// Its finish tag is computed once, when the packet becomes the head of its
// channel's queue (on arrival to an empty queue, or when the packet ahead of
// it departs), and is immutable afterward.
type queuedPacket struct {
	arrivalTime uint64
	length      uint64
	weight      float64 // the explicit weight the arrival carried; 0 if none
	hasWeight   bool    // true if the literal weight should be echoed on output
	finishTag   float64
}

// formatLine renders the output line for a packet departing at simulated
// time now, on the connection identified by key, in the wire format:
// "<now>: <T> <src> <sport> <dst> <dport> <L>[ <W>]".
func formatLine(now uint64, key ConnKey, p *queuedPacket) string {
	if p.hasWeight {
		return fmt.Sprintf("%d: %d %s %d %.2f", now, p.arrivalTime, string(key), p.length, p.weight)
	}
	return fmt.Sprintf("%d: %d %s %d", now, p.arrivalTime, string(key), p.length)
}
