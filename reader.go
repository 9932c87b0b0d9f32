package wfq

import (
	"bufio"
	"errors"
	"io"
)

// lineSource pulls parsed arrivals off an underlying stream one line at a
// time, remembering at most one arrival that has been parsed but not yet
// consumed by a caller (the look-ahead slot). It knows nothing
// about channels, tags, or the ready heap; that integration lives in the
// batch-reading methods of Scheduler.
type lineSource struct {
	scanner *bufio.Scanner
	lineNo  int
	next    *Arrival
	atEOF   bool
}

func newLineSource(r io.Reader) *lineSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	return &lineSource{scanner: sc}
}

// fill ensures the look-ahead slot holds the next arrival, parsing a new
// line if necessary. It returns false once the stream is exhausted and the
// look-ahead slot is empty.
func (ls *lineSource) fill() (bool, error) {
	if ls.next != nil {
		return true, nil
	}
	for ls.scanner.Scan() {
		ls.lineNo++
		line := ls.scanner.Text()
		if len(line) == 0 {
			continue
		}
		a, err := parseLine(ls.lineNo, line)
		if err != nil {
			return false, err
		}
		ls.next = &a
		return true, nil
	}
	if err := ls.scanner.Err(); err != nil {
		return false, err
	}
	ls.atEOF = true
	return false, nil
}

// peek reports the look-ahead arrival without consuming it.
func (ls *lineSource) peek() (*Arrival, error) {
	ok, err := ls.fill()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return ls.next, nil
}

// take consumes and returns the look-ahead arrival, which must be present
// (callers always peek first).
func (ls *lineSource) take() *Arrival {
	if ls.next == nil {
		panic(errors.New("take called with no look-ahead arrival"))
	}
	a := ls.next
	ls.next = nil
	return a
}
