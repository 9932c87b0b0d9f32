package wfq

import (
	"strconv"
	"strings"
)

// parseLine implements component A: it turns one input line into an
// Arrival, or reports a MalformedLineError if the line does not have
// exactly 6 or 7 whitespace-separated tokens of the expected shape.
//
// No validation of address/port syntax is performed; the four tokens are
// treated as opaque and are never inspected beyond being joined into a
// connection-key.
func parseLine(lineNo int, line string) (Arrival, error) {
	fields := strings.Fields(line)

	if len(fields) != 6 && len(fields) != 7 {
		return Arrival{}, &MalformedLineError{
			LineNo: lineNo,
			Line:   line,
			Reason: "expected 6 or 7 fields",
		}
	}

	t, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Arrival{}, &MalformedLineError{LineNo: lineNo, Line: line, Reason: "bad arrival time"}
	}

	length, err := strconv.ParseUint(fields[5], 10, 64)
	if err != nil {
		return Arrival{}, &MalformedLineError{LineNo: lineNo, Line: line, Reason: "bad length"}
	}

	a := Arrival{
		Time:    t,
		SrcAddr: fields[1],
		SrcPort: fields[2],
		DstAddr: fields[3],
		DstPort: fields[4],
		Length:  length,
	}

	if len(fields) == 7 {
		w, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			return Arrival{}, &MalformedLineError{LineNo: lineNo, Line: line, Reason: "bad weight"}
		}
		a.Weight = w
		a.HasWeight = true
	}

	return a, nil
}
