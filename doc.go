// Package wfq implements a weighted fair queueing scheduler: it reads a
// time-ordered trace of packet arrivals on multiple connections and emits
// the transmission order and timing of a single output link serving those
// connections one packet at a time, approximating Generalized Processor
// Sharing.
package wfq
